// Package storage persists finalized charts so the API can serve them by ID.
//
// Three backends implement [Store]:
//   - [MemoryStore]: process-local, for tests and single-instance serving
//   - [FileStore]: one JSON file per chart under a directory
//   - [MongoStore]: a MongoDB collection shared by every API replica
//
// Records carry the canonical option document exactly as serialized at
// finalize; stores never re-encode it.
package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/chartopt/pkg/chart"
	"github.com/matzehuels/chartopt/pkg/errors"
)

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 50

// Record is one stored chart.
type Record struct {
	ID          string          `json:"id"`
	Name        string          `json:"name,omitempty"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Axes        int             `json:"axes"`
	Series      int             `json:"series"`
	Rows        int             `json:"rows"`
	Document    json.RawMessage `json:"option,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewRecord captures snap under a fresh ID.
func NewRecord(name, title string, snap *chart.Snapshot) *Record {
	return NewDocumentRecord(name, title, snap.Serialize(), snap.AxisCount(), snap.SeriesCount(), snap.RowCount())
}

// NewDocumentRecord captures an already serialized document, such as one
// served from the document cache, under a fresh ID.
func NewDocumentRecord(name, title string, doc chart.Document, axes, series, rows int) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Name:      name,
		Title:     title,
		Axes:      axes,
		Series:    series,
		Rows:      rows,
		Document:  json.RawMessage(doc),
		CreatedAt: time.Now().UTC(),
	}
}

// Summary returns a copy of r without the document.
func (r *Record) Summary() *Record {
	s := *r
	s.Document = nil
	return &s
}

func (r *Record) clone() *Record {
	c := *r
	if r.Document != nil {
		c.Document = append(json.RawMessage(nil), r.Document...)
	}
	return &c
}

// Store is the interface for chart storage backends.
type Store interface {
	// Put stores rec, replacing any record with the same ID.
	Put(ctx context.Context, rec *Record) error

	// Get returns the record with the given ID, or a CHART_NOT_FOUND error.
	Get(ctx context.Context, id string) (*Record, error)

	// Delete removes the record with the given ID, or returns a
	// CHART_NOT_FOUND error when there is none.
	Delete(ctx context.Context, id string) error

	// List returns up to limit record summaries, newest first.
	List(ctx context.Context, limit int) ([]*Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeChartNotFound, "chart %s not found", id)
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
