package chart

// AxisType selects how an axis interprets the values in its dimension.
type AxisType string

const (
	// AxisValue treats the dimension as continuous numbers.
	AxisValue AxisType = "value"
	// AxisCategory treats the dimension as an ordered list of labels.
	AxisCategory AxisType = "category"
)

// ParallelAxis describes one dimension of a parallel-coordinates chart.
//
// The dimension index set with [ParallelAxis.Dim] is the position of the
// governed value inside every data row of a parallel series, and the target
// of [VisualMap.Dimension]. It is independent of the order in which axes are
// attached to the chart, which only controls presentation order.
type ParallelAxis struct{ doc parallelAxisDoc }

type parallelAxisDoc struct {
	Dim           *int          `json:"dim,omitempty"`
	Type          *AxisType     `json:"type,omitempty"`
	Name          *string       `json:"name,omitempty"`
	Inverse       *bool         `json:"inverse,omitempty"`
	Min           *float64      `json:"min,omitempty"`
	Max           *float64      `json:"max,omitempty"`
	NameLocation  *string       `json:"nameLocation,omitempty"`
	NameGap       *float64      `json:"nameGap,omitempty"`
	NameTextStyle *textStyleDoc `json:"nameTextStyle,omitempty"`
	AxisLine      *axisLineDoc  `json:"axisLine,omitempty"`
	AxisTick      *axisTickDoc  `json:"axisTick,omitempty"`
	AxisLabel     *axisLabelDoc `json:"axisLabel,omitempty"`
	SplitLine     *splitLineDoc `json:"splitLine,omitempty"`
	Data          []string      `json:"data,omitempty"`
}

// NewParallelAxis returns an axis with every field absent. A dimension index
// must be set before the chart can be finalized.
func NewParallelAxis() *ParallelAxis { return &ParallelAxis{} }

// Dim sets the dimension index, the row position this axis reads.
func (a *ParallelAxis) Dim(i int) *ParallelAxis { a.doc.Dim = ptr(i); return a }

// Type sets the axis type.
func (a *ParallelAxis) Type(t AxisType) *ParallelAxis { a.doc.Type = ptr(t); return a }

// Name sets the display name.
func (a *ParallelAxis) Name(n string) *ParallelAxis { a.doc.Name = ptr(n); return a }

// Inverse reverses the axis direction.
func (a *ParallelAxis) Inverse(v bool) *ParallelAxis { a.doc.Inverse = ptr(v); return a }

// Min sets the lower bound.
func (a *ParallelAxis) Min(v float64) *ParallelAxis { a.doc.Min = ptr(v); return a }

// Max sets the upper bound.
func (a *ParallelAxis) Max(v float64) *ParallelAxis { a.doc.Max = ptr(v); return a }

// NameLocation places the name at "start", "middle" or "end".
func (a *ParallelAxis) NameLocation(v string) *ParallelAxis { a.doc.NameLocation = ptr(v); return a }

// NameGap sets the distance between the name and the axis line.
func (a *ParallelAxis) NameGap(v float64) *ParallelAxis { a.doc.NameGap = ptr(v); return a }

// NameTextStyle sets the font of the axis name.
func (a *ParallelAxis) NameTextStyle(ts *TextStyle) *ParallelAxis {
	a.doc.NameTextStyle = ts.snapshot()
	return a
}

// AxisLine sets the baseline decoration.
func (a *ParallelAxis) AxisLine(l *AxisLine) *ParallelAxis {
	a.doc.AxisLine = l.snapshot()
	return a
}

// AxisTick sets the tick decoration.
func (a *ParallelAxis) AxisTick(t *AxisTick) *ParallelAxis {
	a.doc.AxisTick = t.snapshot()
	return a
}

// AxisLabel sets the tick label decoration.
func (a *ParallelAxis) AxisLabel(l *AxisLabel) *ParallelAxis {
	a.doc.AxisLabel = l.snapshot()
	return a
}

// SplitLine sets the split line decoration.
func (a *ParallelAxis) SplitLine(s *SplitLine) *ParallelAxis {
	a.doc.SplitLine = s.snapshot()
	return a
}

// Data sets the ordered labels of a category axis.
func (a *ParallelAxis) Data(labels ...string) *ParallelAxis {
	a.doc.Data = cloneStrings(labels)
	return a
}

// kind resolves the effective axis type: the axis' own type, then the
// coordinate default, then value.
func (d *parallelAxisDoc) kind(def *parallelAxisDefaultDoc) AxisType {
	if d.Type != nil {
		return *d.Type
	}
	if def != nil && def.Type != nil {
		return *def.Type
	}
	return AxisValue
}

// labelIndex returns the position of label in the category list.
func (d *parallelAxisDoc) labelIndex(label string) int {
	for i, l := range d.Data {
		if l == label {
			return i
		}
	}
	return -1
}
