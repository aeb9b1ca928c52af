package chart

// VisualMap colors series lines by the value of one dimension.
type VisualMap struct{ doc visualMapDoc }

type visualMapDoc struct {
	Type       *string         `json:"type,omitempty"`
	Show       *bool           `json:"show,omitempty"`
	Min        *float64        `json:"min,omitempty"`
	Max        *float64        `json:"max,omitempty"`
	Dimension  *int            `json:"dimension,omitempty"`
	Calculable *bool           `json:"calculable,omitempty"`
	Orient     *string         `json:"orient,omitempty"`
	Left       *string         `json:"left,omitempty"`
	Top        *string         `json:"top,omitempty"`
	Right      *string         `json:"right,omitempty"`
	Bottom     *string         `json:"bottom,omitempty"`
	InRange    *visualRangeDoc `json:"inRange,omitempty"`
	OutOfRange *visualRangeDoc `json:"outOfRange,omitempty"`
	TextStyle  *textStyleDoc   `json:"textStyle,omitempty"`
}

// NewVisualMap returns a visual map with every field absent.
func NewVisualMap() *VisualMap { return &VisualMap{} }

// Type sets "continuous" or "piecewise".
func (v *VisualMap) Type(t string) *VisualMap { v.doc.Type = ptr(t); return v }

// Show sets whether the visual map is displayed.
func (v *VisualMap) Show(b bool) *VisualMap { v.doc.Show = ptr(b); return v }

// Min sets the lower bound.
func (v *VisualMap) Min(f float64) *VisualMap { v.doc.Min = ptr(f); return v }

// Max sets the upper bound.
func (v *VisualMap) Max(f float64) *VisualMap { v.doc.Max = ptr(f); return v }

// Dimension sets the data dimension whose values drive the colors.
func (v *VisualMap) Dimension(i int) *VisualMap { v.doc.Dimension = ptr(i); return v }

// Calculable shows drag handles on a continuous visual map.
func (v *VisualMap) Calculable(b bool) *VisualMap { v.doc.Calculable = ptr(b); return v }

// Orient lays the component out "horizontal" or "vertical".
func (v *VisualMap) Orient(s string) *VisualMap { v.doc.Orient = ptr(s); return v }

// Left sets the distance from the left edge, in pixels or percent.
func (v *VisualMap) Left(s string) *VisualMap { v.doc.Left = ptr(s); return v }

// Top sets the distance from the top edge, in pixels or percent.
func (v *VisualMap) Top(s string) *VisualMap { v.doc.Top = ptr(s); return v }

// Right sets the distance from the right edge, in pixels or percent.
func (v *VisualMap) Right(s string) *VisualMap { v.doc.Right = ptr(s); return v }

// Bottom sets the distance from the bottom edge, in pixels or percent.
func (v *VisualMap) Bottom(s string) *VisualMap { v.doc.Bottom = ptr(s); return v }

// InRange sets the visual encoding for values inside [min, max].
func (v *VisualMap) InRange(r *VisualRange) *VisualMap {
	v.doc.InRange = r.snapshot()
	return v
}

// OutOfRange sets the visual encoding for values outside [min, max].
func (v *VisualMap) OutOfRange(r *VisualRange) *VisualMap {
	v.doc.OutOfRange = r.snapshot()
	return v
}

// TextStyle sets the font of the range handles.
func (v *VisualMap) TextStyle(ts *TextStyle) *VisualMap {
	v.doc.TextStyle = ts.snapshot()
	return v
}

func (v *VisualMap) snapshot() *visualMapDoc {
	if v == nil {
		return nil
	}
	d := v.doc
	return &d
}

// VisualRange is the visual encoding used by a [VisualMap] inside or outside
// its range.
type VisualRange struct{ doc visualRangeDoc }

type visualRangeDoc struct {
	Color   []string `json:"color,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
}

// NewVisualRange returns a visual range with every field absent.
func NewVisualRange() *VisualRange { return &VisualRange{} }

// Color sets the ordered color ramp. A ramp needs at least two colors.
func (r *VisualRange) Color(colors ...string) *VisualRange {
	r.doc.Color = cloneStrings(colors)
	return r
}

// Opacity sets a fixed opacity for the mapped elements.
func (r *VisualRange) Opacity(f float64) *VisualRange {
	r.doc.Opacity = ptr(f)
	return r
}

func (r *VisualRange) snapshot() *visualRangeDoc {
	if r == nil {
		return nil
	}
	d := r.doc
	return &d
}
