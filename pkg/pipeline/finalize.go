package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/chartopt/pkg/chart"
)

// Finalized is a validated chart document with its summary counts.
type Finalized struct {
	Document    chart.Document
	Snapshot    *chart.Snapshot // nil when read from cache
	AxisCount   int
	SeriesCount int
	RowCount    int
}

// Finalize builds the chart described by in and validates it. Chart
// violations come back as a *errors.ValidationError listing all of them.
func Finalize(in *Input) (*Finalized, error) {
	c, err := in.Definition.Build(in.Dataset)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	snap, err := c.Finalize()
	if err != nil {
		return nil, err
	}
	return &Finalized{
		Document:    snap.Serialize(),
		Snapshot:    snap,
		AxisCount:   snap.AxisCount(),
		SeriesCount: snap.SeriesCount(),
		RowCount:    snap.RowCount(),
	}, nil
}

// cachedDocument is the cache entry for a finalized document.
type cachedDocument struct {
	Axes   int             `json:"axes"`
	Series int             `json:"series"`
	Rows   int             `json:"rows"`
	Option json.RawMessage `json:"option"`
}

func marshalFinalized(f *Finalized) ([]byte, error) {
	return encodeJSON(cachedDocument{
		Axes:   f.AxisCount,
		Series: f.SeriesCount,
		Rows:   f.RowCount,
		Option: json.RawMessage(f.Document),
	})
}

func unmarshalFinalized(data []byte) (*Finalized, error) {
	var cd cachedDocument
	if err := json.Unmarshal(data, &cd); err != nil {
		return nil, err
	}
	if len(cd.Option) == 0 {
		return nil, fmt.Errorf("cached document has no option")
	}
	return &Finalized{
		Document:    chart.Document(cd.Option),
		AxisCount:   cd.Axes,
		SeriesCount: cd.Series,
		RowCount:    cd.Rows,
	}, nil
}
