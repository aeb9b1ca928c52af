package chart

// =============================================================================
// Legend
// =============================================================================

// Legend lists the series names and lets the viewer toggle them.
type Legend struct{ doc legendDoc }

type legendDoc struct {
	Show       *bool         `json:"show,omitempty"`
	Left       *string       `json:"left,omitempty"`
	Top        *string       `json:"top,omitempty"`
	Right      *string       `json:"right,omitempty"`
	Bottom     *string       `json:"bottom,omitempty"`
	Orient     *string       `json:"orient,omitempty"`
	Padding    *float64      `json:"padding,omitempty"`
	ItemGap    *float64      `json:"itemGap,omitempty"`
	ItemWidth  *float64      `json:"itemWidth,omitempty"`
	ItemHeight *float64      `json:"itemHeight,omitempty"`
	TextStyle  *textStyleDoc `json:"textStyle,omitempty"`
	Data       []string      `json:"data,omitempty"`
}

// NewLegend returns a legend with every field absent.
func NewLegend() *Legend { return &Legend{} }

// Show sets whether the legend is displayed.
func (l *Legend) Show(v bool) *Legend { l.doc.Show = ptr(v); return l }

// Left sets the distance from the left edge, in pixels or percent.
func (l *Legend) Left(v string) *Legend { l.doc.Left = ptr(v); return l }

// Top sets the distance from the top edge, in pixels or percent.
func (l *Legend) Top(v string) *Legend { l.doc.Top = ptr(v); return l }

// Right sets the distance from the right edge, in pixels or percent.
func (l *Legend) Right(v string) *Legend { l.doc.Right = ptr(v); return l }

// Bottom sets the distance from the bottom edge, in pixels or percent.
func (l *Legend) Bottom(v string) *Legend { l.doc.Bottom = ptr(v); return l }

// Orient lays entries out "horizontal" or "vertical".
func (l *Legend) Orient(v string) *Legend { l.doc.Orient = ptr(v); return l }

// Padding sets the inner padding in pixels.
func (l *Legend) Padding(v float64) *Legend { l.doc.Padding = ptr(v); return l }

// ItemGap sets the spacing between entries in pixels.
func (l *Legend) ItemGap(v float64) *Legend { l.doc.ItemGap = ptr(v); return l }

// ItemWidth sets the width of the entry marker.
func (l *Legend) ItemWidth(v float64) *Legend { l.doc.ItemWidth = ptr(v); return l }

// ItemHeight sets the height of the entry marker.
func (l *Legend) ItemHeight(v float64) *Legend { l.doc.ItemHeight = ptr(v); return l }

// TextStyle sets the font of the legend entries.
func (l *Legend) TextStyle(ts *TextStyle) *Legend {
	l.doc.TextStyle = ts.snapshot()
	return l
}

// Data sets the series names shown in the legend, in display order.
func (l *Legend) Data(names ...string) *Legend {
	l.doc.Data = cloneStrings(names)
	return l
}

func (l *Legend) snapshot() *legendDoc {
	if l == nil {
		return nil
	}
	d := l.doc
	return &d
}

// =============================================================================
// Tooltip
// =============================================================================

// Tooltip configures the hover box.
type Tooltip struct{ doc tooltipDoc }

type tooltipDoc struct {
	Show            *bool         `json:"show,omitempty"`
	Trigger         *string       `json:"trigger,omitempty"`
	Formatter       *string       `json:"formatter,omitempty"`
	Padding         *float64      `json:"padding,omitempty"`
	BackgroundColor *string       `json:"backgroundColor,omitempty"`
	BorderColor     *string       `json:"borderColor,omitempty"`
	BorderWidth     *float64      `json:"borderWidth,omitempty"`
	TextStyle       *textStyleDoc `json:"textStyle,omitempty"`
}

// NewTooltip returns a tooltip with every field absent.
func NewTooltip() *Tooltip { return &Tooltip{} }

// Show sets whether the tooltip is displayed.
func (t *Tooltip) Show(v bool) *Tooltip { t.doc.Show = ptr(v); return t }

// Trigger sets what the tooltip reacts to, such as "item".
func (t *Tooltip) Trigger(v string) *Tooltip { t.doc.Trigger = ptr(v); return t }

// Formatter sets the content template.
func (t *Tooltip) Formatter(v string) *Tooltip { t.doc.Formatter = ptr(v); return t }

// Padding sets the inner padding in pixels.
func (t *Tooltip) Padding(v float64) *Tooltip { t.doc.Padding = ptr(v); return t }

// BackgroundColor sets the background color.
func (t *Tooltip) BackgroundColor(c string) *Tooltip { t.doc.BackgroundColor = ptr(c); return t }

// BorderColor sets the border color.
func (t *Tooltip) BorderColor(c string) *Tooltip { t.doc.BorderColor = ptr(c); return t }

// BorderWidth sets the border width.
func (t *Tooltip) BorderWidth(v float64) *Tooltip { t.doc.BorderWidth = ptr(v); return t }

// TextStyle sets the font of the tooltip content.
func (t *Tooltip) TextStyle(ts *TextStyle) *Tooltip {
	t.doc.TextStyle = ts.snapshot()
	return t
}

func (t *Tooltip) snapshot() *tooltipDoc {
	if t == nil {
		return nil
	}
	d := t.doc
	return &d
}
