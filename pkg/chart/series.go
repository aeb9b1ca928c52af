package chart

// SeriesKind names a chart series variant. The set is closed.
type SeriesKind string

const (
	KindParallel SeriesKind = "parallel"
	KindLine     SeriesKind = "line"
	KindScatter  SeriesKind = "scatter"
)

// Series is one plotted data series. It is implemented only by
// [*ParallelSeries], [*LineSeries] and [*ScatterSeries].
type Series interface {
	// SeriesKind reports the variant.
	SeriesKind() SeriesKind
	// SeriesName returns the display name, or "" when unset.
	SeriesName() string
	// Len returns the number of data rows.
	Len() int

	rows() []Row
	clone() Series
	numbers(visit visitFunc)
}

// cloneRows deep-copies rows so the copy shares no backing arrays.
func cloneRows(rows []Row) []Row {
	if rows == nil {
		return nil
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.clone()
	}
	return out
}

func nameOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// =============================================================================
// Parallel
// =============================================================================

// ParallelSeries draws each row as a polyline across the parallel axes.
// Row position i holds the value for the axis whose dimension index is i.
type ParallelSeries struct{ doc parallelSeriesDoc }

type parallelSeriesDoc struct {
	Type            SeriesKind    `json:"type"`
	Name            *string       `json:"name,omitempty"`
	Smooth          *bool         `json:"smooth,omitempty"`
	InactiveOpacity *float64      `json:"inactiveOpacity,omitempty"`
	ActiveOpacity   *float64      `json:"activeOpacity,omitempty"`
	LineStyle       *lineStyleDoc `json:"lineStyle,omitempty"`
	Data            []Row         `json:"data,omitempty"`
}

// NewParallel returns an empty parallel series.
func NewParallel() *ParallelSeries { return &ParallelSeries{} }

// Name sets the display name.
func (s *ParallelSeries) Name(n string) *ParallelSeries { s.doc.Name = ptr(n); return s }

// Smooth sets whether lines are drawn as curves.
func (s *ParallelSeries) Smooth(v bool) *ParallelSeries { s.doc.Smooth = ptr(v); return s }

// InactiveOpacity sets the opacity of lines outside an axis selection.
func (s *ParallelSeries) InactiveOpacity(v float64) *ParallelSeries { s.doc.InactiveOpacity = ptr(v); return s }

// ActiveOpacity sets the opacity of selected lines.
func (s *ParallelSeries) ActiveOpacity(v float64) *ParallelSeries { s.doc.ActiveOpacity = ptr(v); return s }

// LineStyle sets the stroke of every polyline.
func (s *ParallelSeries) LineStyle(ls *LineStyle) *ParallelSeries {
	s.doc.LineStyle = ls.snapshot()
	return s
}

// Data replaces the rows of the series.
func (s *ParallelSeries) Data(rows []Row) *ParallelSeries {
	s.doc.Data = cloneRows(rows)
	return s
}

// AddRow appends one row. Its length is checked at finalize, not here.
func (s *ParallelSeries) AddRow(values ...Value) *ParallelSeries {
	s.doc.Data = append(s.doc.Data, Row(values).clone())
	return s
}

func (s *ParallelSeries) SeriesKind() SeriesKind { return KindParallel }
func (s *ParallelSeries) SeriesName() string     { return nameOf(s.doc.Name) }
func (s *ParallelSeries) Len() int               { return len(s.doc.Data) }
func (s *ParallelSeries) rows() []Row            { return s.doc.Data }

func (s *ParallelSeries) clone() Series {
	c := &ParallelSeries{doc: s.doc}
	c.doc.Data = cloneRows(s.doc.Data)
	return c
}

// =============================================================================
// Line
// =============================================================================

// LineSeries draws rows as a connected line on a cartesian grid.
type LineSeries struct{ doc lineSeriesDoc }

type lineSeriesDoc struct {
	Type       SeriesKind    `json:"type"`
	Name       *string       `json:"name,omitempty"`
	Smooth     *bool         `json:"smooth,omitempty"`
	Symbol     *string       `json:"symbol,omitempty"`
	SymbolSize *float64      `json:"symbolSize,omitempty"`
	LineStyle  *lineStyleDoc `json:"lineStyle,omitempty"`
	Data       []Row         `json:"data,omitempty"`
}

// NewLine returns an empty line series.
func NewLine() *LineSeries { return &LineSeries{} }

// Name sets the display name.
func (s *LineSeries) Name(n string) *LineSeries { s.doc.Name = ptr(n); return s }

// Smooth sets whether lines are drawn as curves.
func (s *LineSeries) Smooth(v bool) *LineSeries { s.doc.Smooth = ptr(v); return s }

// Symbol sets the marker shape, such as "circle" or "none".
func (s *LineSeries) Symbol(v string) *LineSeries { s.doc.Symbol = ptr(v); return s }

// SymbolSize sets the marker size in pixels.
func (s *LineSeries) SymbolSize(v float64) *LineSeries { s.doc.SymbolSize = ptr(v); return s }

// LineStyle sets the stroke of the line.
func (s *LineSeries) LineStyle(ls *LineStyle) *LineSeries {
	s.doc.LineStyle = ls.snapshot()
	return s
}

// Data replaces the rows of the series.
func (s *LineSeries) Data(rows []Row) *LineSeries {
	s.doc.Data = cloneRows(rows)
	return s
}

// AddRow appends one row.
func (s *LineSeries) AddRow(values ...Value) *LineSeries {
	s.doc.Data = append(s.doc.Data, Row(values).clone())
	return s
}

func (s *LineSeries) SeriesKind() SeriesKind { return KindLine }
func (s *LineSeries) SeriesName() string     { return nameOf(s.doc.Name) }
func (s *LineSeries) Len() int               { return len(s.doc.Data) }
func (s *LineSeries) rows() []Row            { return s.doc.Data }

func (s *LineSeries) clone() Series {
	c := &LineSeries{doc: s.doc}
	c.doc.Data = cloneRows(s.doc.Data)
	return c
}

// =============================================================================
// Scatter
// =============================================================================

// ScatterSeries draws each row as a point on a cartesian grid.
type ScatterSeries struct{ doc scatterSeriesDoc }

type scatterSeriesDoc struct {
	Type       SeriesKind `json:"type"`
	Name       *string    `json:"name,omitempty"`
	Symbol     *string    `json:"symbol,omitempty"`
	SymbolSize *float64   `json:"symbolSize,omitempty"`
	Data       []Row      `json:"data,omitempty"`
}

// NewScatter returns an empty scatter series.
func NewScatter() *ScatterSeries { return &ScatterSeries{} }

// Name sets the display name.
func (s *ScatterSeries) Name(n string) *ScatterSeries { s.doc.Name = ptr(n); return s }

// Symbol sets the marker shape, such as "circle" or "none".
func (s *ScatterSeries) Symbol(v string) *ScatterSeries { s.doc.Symbol = ptr(v); return s }

// SymbolSize sets the marker size in pixels.
func (s *ScatterSeries) SymbolSize(v float64) *ScatterSeries { s.doc.SymbolSize = ptr(v); return s }

// Data replaces the rows of the series.
func (s *ScatterSeries) Data(rows []Row) *ScatterSeries {
	s.doc.Data = cloneRows(rows)
	return s
}

// AddRow appends one row.
func (s *ScatterSeries) AddRow(values ...Value) *ScatterSeries {
	s.doc.Data = append(s.doc.Data, Row(values).clone())
	return s
}

func (s *ScatterSeries) SeriesKind() SeriesKind { return KindScatter }
func (s *ScatterSeries) SeriesName() string     { return nameOf(s.doc.Name) }
func (s *ScatterSeries) Len() int               { return len(s.doc.Data) }
func (s *ScatterSeries) rows() []Row            { return s.doc.Data }

func (s *ScatterSeries) clone() Series {
	c := &ScatterSeries{doc: s.doc}
	c.doc.Data = cloneRows(s.doc.Data)
	return c
}

// seriesDocument maps a series to its emitted form. The switch is exhaustive
// over the sealed variant set.
func seriesDocument(s Series) any {
	switch v := s.(type) {
	case *ParallelSeries:
		d := v.doc
		d.Type = KindParallel
		return d
	case *LineSeries:
		d := v.doc
		d.Type = KindLine
		return d
	case *ScatterSeries:
		d := v.doc
		d.Type = KindScatter
		return d
	default:
		panic("chart: unknown series variant")
	}
}
