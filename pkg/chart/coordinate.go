package chart

// ParallelCoordinate positions the parallel-coordinates area and carries the
// defaults shared by every [ParallelAxis].
type ParallelCoordinate struct{ doc parallelDoc }

type parallelDoc struct {
	Left                *string                 `json:"left,omitempty"`
	Top                 *string                 `json:"top,omitempty"`
	Right               *string                 `json:"right,omitempty"`
	Bottom              *string                 `json:"bottom,omitempty"`
	Width               *string                 `json:"width,omitempty"`
	Height              *string                 `json:"height,omitempty"`
	Layout              *string                 `json:"layout,omitempty"`
	ParallelAxisDefault *parallelAxisDefaultDoc `json:"parallelAxisDefault,omitempty"`
}

// NewParallelCoordinate returns a coordinate system with every field absent.
func NewParallelCoordinate() *ParallelCoordinate { return &ParallelCoordinate{} }

// Left sets the distance from the left edge, in pixels or percent.
func (p *ParallelCoordinate) Left(v string) *ParallelCoordinate { p.doc.Left = ptr(v); return p }

// Top sets the distance from the top edge, in pixels or percent.
func (p *ParallelCoordinate) Top(v string) *ParallelCoordinate { p.doc.Top = ptr(v); return p }

// Right sets the distance from the right edge, in pixels or percent.
func (p *ParallelCoordinate) Right(v string) *ParallelCoordinate { p.doc.Right = ptr(v); return p }

// Bottom sets the distance from the bottom edge, in pixels or percent.
func (p *ParallelCoordinate) Bottom(v string) *ParallelCoordinate { p.doc.Bottom = ptr(v); return p }

// Width sets the coordinate system width.
func (p *ParallelCoordinate) Width(v string) *ParallelCoordinate { p.doc.Width = ptr(v); return p }

// Height sets the coordinate system height.
func (p *ParallelCoordinate) Height(v string) *ParallelCoordinate { p.doc.Height = ptr(v); return p }

// Layout sets "horizontal" (axes side by side) or "vertical".
func (p *ParallelCoordinate) Layout(v string) *ParallelCoordinate {
	p.doc.Layout = ptr(v)
	return p
}

// ParallelAxisDefault sets the fallback applied to every axis field the axis
// itself leaves absent.
func (p *ParallelCoordinate) ParallelAxisDefault(d *ParallelAxisDefault) *ParallelCoordinate {
	p.doc.ParallelAxisDefault = d.snapshot()
	return p
}

func (p *ParallelCoordinate) snapshot() *parallelDoc {
	if p == nil {
		return nil
	}
	d := p.doc
	return &d
}

// ParallelAxisDefault holds the axis settings shared by all parallel axes.
type ParallelAxisDefault struct{ doc parallelAxisDefaultDoc }

type parallelAxisDefaultDoc struct {
	Type          *AxisType     `json:"type,omitempty"`
	Name          *string       `json:"name,omitempty"`
	NameLocation  *string       `json:"nameLocation,omitempty"`
	NameGap       *float64      `json:"nameGap,omitempty"`
	NameTextStyle *textStyleDoc `json:"nameTextStyle,omitempty"`
	AxisLine      *axisLineDoc  `json:"axisLine,omitempty"`
	AxisTick      *axisTickDoc  `json:"axisTick,omitempty"`
	AxisLabel     *axisLabelDoc `json:"axisLabel,omitempty"`
	SplitLine     *splitLineDoc `json:"splitLine,omitempty"`
}

// NewParallelAxisDefault returns axis defaults with every field absent.
func NewParallelAxisDefault() *ParallelAxisDefault { return &ParallelAxisDefault{} }

// Type sets the default axis type.
func (d *ParallelAxisDefault) Type(t AxisType) *ParallelAxisDefault { d.doc.Type = ptr(t); return d }

// Name sets the fallback axis name.
func (d *ParallelAxisDefault) Name(n string) *ParallelAxisDefault { d.doc.Name = ptr(n); return d }

// NameLocation places the name at "start", "middle" or "end".
func (d *ParallelAxisDefault) NameLocation(v string) *ParallelAxisDefault { d.doc.NameLocation = ptr(v); return d }

// NameGap sets the distance between axis names and axis lines.
func (d *ParallelAxisDefault) NameGap(v float64) *ParallelAxisDefault { d.doc.NameGap = ptr(v); return d }

// NameTextStyle sets the font of axis names.
func (d *ParallelAxisDefault) NameTextStyle(ts *TextStyle) *ParallelAxisDefault {
	d.doc.NameTextStyle = ts.snapshot()
	return d
}

// AxisLine sets the default baseline decoration.
func (d *ParallelAxisDefault) AxisLine(l *AxisLine) *ParallelAxisDefault {
	d.doc.AxisLine = l.snapshot()
	return d
}

// AxisTick sets the default tick decoration.
func (d *ParallelAxisDefault) AxisTick(t *AxisTick) *ParallelAxisDefault {
	d.doc.AxisTick = t.snapshot()
	return d
}

// AxisLabel sets the default tick label decoration.
func (d *ParallelAxisDefault) AxisLabel(l *AxisLabel) *ParallelAxisDefault {
	d.doc.AxisLabel = l.snapshot()
	return d
}

// SplitLine sets the default split line decoration.
func (d *ParallelAxisDefault) SplitLine(s *SplitLine) *ParallelAxisDefault {
	d.doc.SplitLine = s.snapshot()
	return d
}

func (d *ParallelAxisDefault) snapshot() *parallelAxisDefaultDoc {
	if d == nil {
		return nil
	}
	c := d.doc
	return &c
}
