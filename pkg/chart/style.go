package chart

// ptr returns a pointer to a copy of v. Every mutator stores through it so a
// record never shares a field pointer with a caller.
func ptr[T any](v T) *T { return &v }

// cloneStrings copies a caller-owned slice so later writes to it cannot reach
// the record.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// =============================================================================
// TextStyle
// =============================================================================

// TextStyle configures font rendering for names, labels and legend entries.
type TextStyle struct{ doc textStyleDoc }

type textStyleDoc struct {
	Color      *string  `json:"color,omitempty"`
	FontStyle  *string  `json:"fontStyle,omitempty"`
	FontWeight *string  `json:"fontWeight,omitempty"`
	FontFamily *string  `json:"fontFamily,omitempty"`
	FontSize   *float64 `json:"fontSize,omitempty"`
	LineHeight *float64 `json:"lineHeight,omitempty"`
}

// NewTextStyle returns a text style with every field absent.
func NewTextStyle() *TextStyle { return &TextStyle{} }

// Color sets the text color.
func (s *TextStyle) Color(c string) *TextStyle { s.doc.Color = ptr(c); return s }

// FontStyle sets the font style.
func (s *TextStyle) FontStyle(v string) *TextStyle { s.doc.FontStyle = ptr(v); return s }

// FontWeight sets the font weight.
func (s *TextStyle) FontWeight(v string) *TextStyle { s.doc.FontWeight = ptr(v); return s }

// FontFamily sets the font family.
func (s *TextStyle) FontFamily(v string) *TextStyle { s.doc.FontFamily = ptr(v); return s }

// FontSize sets the font size.
func (s *TextStyle) FontSize(v float64) *TextStyle { s.doc.FontSize = ptr(v); return s }

// LineHeight sets the line height.
func (s *TextStyle) LineHeight(v float64) *TextStyle { s.doc.LineHeight = ptr(v); return s }

func (s *TextStyle) snapshot() *textStyleDoc {
	if s == nil {
		return nil
	}
	d := s.doc
	return &d
}

// =============================================================================
// LineStyle
// =============================================================================

// LineStyle configures stroke rendering for series lines, ticks and split lines.
type LineStyle struct{ doc lineStyleDoc }

type lineStyleDoc struct {
	Color   *string  `json:"color,omitempty"`
	Width   *float64 `json:"width,omitempty"`
	Type    *string  `json:"type,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
}

// NewLineStyle returns a line style with every field absent.
func NewLineStyle() *LineStyle { return &LineStyle{} }

// Color sets the line color.
func (s *LineStyle) Color(c string) *LineStyle { s.doc.Color = ptr(c); return s }

// Width sets the line width.
func (s *LineStyle) Width(v float64) *LineStyle { s.doc.Width = ptr(v); return s }

// Type sets the dash pattern: "solid", "dashed" or "dotted".
func (s *LineStyle) Type(v string) *LineStyle { s.doc.Type = ptr(v); return s }

// Opacity sets the stroke opacity, from 0 to 1.
func (s *LineStyle) Opacity(v float64) *LineStyle { s.doc.Opacity = ptr(v); return s }

func (s *LineStyle) snapshot() *lineStyleDoc {
	if s == nil {
		return nil
	}
	d := s.doc
	return &d
}

// =============================================================================
// Axis decorations
// =============================================================================

// AxisLine configures the axis baseline.
type AxisLine struct{ doc axisLineDoc }

type axisLineDoc struct {
	Show      *bool         `json:"show,omitempty"`
	LineStyle *lineStyleDoc `json:"lineStyle,omitempty"`
}

// NewAxisLine returns an axis line with every field absent.
func NewAxisLine() *AxisLine { return &AxisLine{} }

// Show sets whether the axis line is displayed.
func (a *AxisLine) Show(v bool) *AxisLine { a.doc.Show = ptr(v); return a }

// LineStyle sets the stroke of the baseline.
func (a *AxisLine) LineStyle(ls *LineStyle) *AxisLine {
	a.doc.LineStyle = ls.snapshot()
	return a
}

func (a *AxisLine) snapshot() *axisLineDoc {
	if a == nil {
		return nil
	}
	d := a.doc
	return &d
}

// AxisTick configures the tick marks along an axis.
type AxisTick struct{ doc axisTickDoc }

type axisTickDoc struct {
	Show      *bool         `json:"show,omitempty"`
	Length    *float64      `json:"length,omitempty"`
	LineStyle *lineStyleDoc `json:"lineStyle,omitempty"`
}

// NewAxisTick returns an axis tick with every field absent.
func NewAxisTick() *AxisTick { return &AxisTick{} }

// Show sets whether the tick is displayed.
func (a *AxisTick) Show(v bool) *AxisTick { a.doc.Show = ptr(v); return a }

// Length sets the tick length in pixels.
func (a *AxisTick) Length(v float64) *AxisTick { a.doc.Length = ptr(v); return a }

// LineStyle sets the stroke of every tick.
func (a *AxisTick) LineStyle(ls *LineStyle) *AxisTick {
	a.doc.LineStyle = ls.snapshot()
	return a
}

func (a *AxisTick) snapshot() *axisTickDoc {
	if a == nil {
		return nil
	}
	d := a.doc
	return &d
}

// AxisLabel configures the tick labels.
type AxisLabel struct{ doc axisLabelDoc }

type axisLabelDoc struct {
	Show      *bool    `json:"show,omitempty"`
	Color     *string  `json:"color,omitempty"`
	FontSize  *float64 `json:"fontSize,omitempty"`
	Formatter *string  `json:"formatter,omitempty"`
	Rotate    *float64 `json:"rotate,omitempty"`
}

// NewAxisLabel returns an axis label with every field absent.
func NewAxisLabel() *AxisLabel { return &AxisLabel{} }

// Show sets whether the label is displayed.
func (a *AxisLabel) Show(v bool) *AxisLabel { a.doc.Show = ptr(v); return a }

// Color sets the label color.
func (a *AxisLabel) Color(c string) *AxisLabel { a.doc.Color = ptr(c); return a }

// FontSize sets the font size.
func (a *AxisLabel) FontSize(v float64) *AxisLabel { a.doc.FontSize = ptr(v); return a }

// Formatter sets the label template.
func (a *AxisLabel) Formatter(f string) *AxisLabel { a.doc.Formatter = ptr(f); return a }

// Rotate sets the label rotation in degrees.
func (a *AxisLabel) Rotate(deg float64) *AxisLabel { a.doc.Rotate = ptr(deg); return a }

func (a *AxisLabel) snapshot() *axisLabelDoc {
	if a == nil {
		return nil
	}
	d := a.doc
	return &d
}

// SplitLine configures the grid lines drawn across the coordinate area.
type SplitLine struct{ doc splitLineDoc }

type splitLineDoc struct {
	Show      *bool         `json:"show,omitempty"`
	LineStyle *lineStyleDoc `json:"lineStyle,omitempty"`
}

// NewSplitLine returns a split line with every field absent.
func NewSplitLine() *SplitLine { return &SplitLine{} }

// Show sets whether the split line is displayed.
func (s *SplitLine) Show(v bool) *SplitLine { s.doc.Show = ptr(v); return s }

// LineStyle sets the stroke of the split lines.
func (s *SplitLine) LineStyle(ls *LineStyle) *SplitLine {
	s.doc.LineStyle = ls.snapshot()
	return s
}

func (s *SplitLine) snapshot() *splitLineDoc {
	if s == nil {
		return nil
	}
	d := s.doc
	return &d
}
