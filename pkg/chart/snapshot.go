package chart

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/matzehuels/chartopt/pkg/errors"
)

// Document is the canonical JSON text of a finalized chart.
type Document []byte

// String returns the document text.
func (d Document) String() string { return string(d) }

// document is the root of the emitted option. Field order is the fixed
// schema order of the consuming engine.
type document struct {
	BackgroundColor *string           `json:"backgroundColor,omitempty"`
	Legend          *legendDoc        `json:"legend,omitempty"`
	Tooltip         *tooltipDoc       `json:"tooltip,omitempty"`
	ParallelAxis    []parallelAxisDoc `json:"parallelAxis,omitempty"`
	VisualMap       *visualMapDoc     `json:"visualMap,omitempty"`
	Parallel        *parallelDoc      `json:"parallel,omitempty"`
	Series          []any             `json:"series,omitempty"`
}

// SeriesInfo summarizes one series of a snapshot.
type SeriesInfo struct {
	Kind SeriesKind
	Name string
	Rows int
}

// Snapshot is a validated, immutable chart. It can only be obtained from
// [Chart.Finalize] and exposes no mutators.
type Snapshot struct {
	encoded []byte
	axes    int
	series  []SeriesInfo
}

// snapshot copies the chart into its emitted form and encodes it once.
// validate must have succeeded.
func (c *Chart) snapshot() (*Snapshot, error) {
	doc := document{
		BackgroundColor: c.backgroundColor,
		Legend:          c.legend,
		Tooltip:         c.tooltip,
		VisualMap:       c.visualMap,
		Parallel:        c.parallel,
	}
	if len(c.axes) > 0 {
		doc.ParallelAxis = make([]parallelAxisDoc, len(c.axes))
		copy(doc.ParallelAxis, c.axes)
	}

	infos := make([]SeriesInfo, len(c.series))
	if len(c.series) > 0 {
		doc.Series = make([]any, len(c.series))
	}
	for i, s := range c.series {
		doc.Series[i] = seriesDocument(s)
		infos[i] = SeriesInfo{Kind: s.SeriesKind(), Name: s.SeriesName(), Rows: s.Len()}
	}

	// validate rejected every non-finite number, the only input the
	// encoder refuses.
	encoded, err := encode(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode option document")
	}

	return &Snapshot{encoded: encoded, axes: len(c.axes), series: infos}, nil
}

// encode marshals v as compact JSON without HTML escaping.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Serialize returns the canonical compact document. Calling it repeatedly
// yields byte-identical output; the returned slice is owned by the caller.
func (s *Snapshot) Serialize() Document {
	if s == nil {
		return Document("{}")
	}
	return Document(bytes.Clone(s.encoded))
}

// SerializeIndent returns the document indented like json.MarshalIndent.
func (s *Snapshot) SerializeIndent(prefix, indent string) Document {
	var buf bytes.Buffer
	// The compact form is valid JSON, so Indent cannot fail.
	_ = json.Indent(&buf, s.Serialize(), prefix, indent)
	return Document(buf.Bytes())
}

// String returns the compact document text.
func (s *Snapshot) String() string { return string(s.Serialize()) }

// WriteTo writes the compact document to w.
func (s *Snapshot) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Serialize())
	return int64(n), err
}

// AxisCount returns the number of parallel axes.
func (s *Snapshot) AxisCount() int { return s.axes }

// SeriesCount returns the number of series.
func (s *Snapshot) SeriesCount() int { return len(s.series) }

// Series returns a summary of every series in attachment order.
func (s *Snapshot) Series() []SeriesInfo {
	out := make([]SeriesInfo, len(s.series))
	copy(out, s.series)
	return out
}

// RowCount returns the total number of data rows across all series.
func (s *Snapshot) RowCount() int {
	n := 0
	for _, info := range s.series {
		n += info.Rows
	}
	return n
}
