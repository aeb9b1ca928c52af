package chart

// Chart accumulates the components and series of one option document.
//
// Every mutator records its argument verbatim and returns the chart for
// chaining; nothing is validated until [Chart.Finalize]. Records attached to
// the chart are copied at attach time, so later changes to the attached
// record do not reach the chart.
//
// A Chart is owned by a single caller and is not safe for concurrent use.
type Chart struct {
	backgroundColor *string
	legend          *legendDoc
	tooltip         *tooltipDoc
	axes            []parallelAxisDoc
	visualMap       *visualMapDoc
	parallel        *parallelDoc
	series          []Series
}

// New returns an empty chart.
func New() *Chart { return &Chart{} }

// BackgroundColor sets the color painted behind the whole chart.
func (c *Chart) BackgroundColor(color string) *Chart {
	c.backgroundColor = ptr(color)
	return c
}

// Legend sets the legend component.
func (c *Chart) Legend(l *Legend) *Chart {
	c.legend = l.snapshot()
	return c
}

// Tooltip sets the tooltip component.
func (c *Chart) Tooltip(t *Tooltip) *Chart {
	c.tooltip = t.snapshot()
	return c
}

// ParallelAxis appends an axis. Attachment order is presentation order.
func (c *Chart) ParallelAxis(a *ParallelAxis) *Chart {
	if a != nil {
		c.axes = append(c.axes, a.doc)
	}
	return c
}

// VisualMap sets the visual map component.
func (c *Chart) VisualMap(v *VisualMap) *Chart {
	c.visualMap = v.snapshot()
	return c
}

// Parallel sets the parallel coordinate system and its axis defaults.
func (c *Chart) Parallel(p *ParallelCoordinate) *Chart {
	c.parallel = p.snapshot()
	return c
}

// Series appends a series. Attachment order is rendering and legend order.
func (c *Chart) Series(s Series) *Chart {
	if s != nil {
		c.series = append(c.series, s.clone())
	}
	return c
}

// Finalize validates the chart and returns an immutable [Snapshot].
//
// All violations are collected in one pass and returned together as an
// *errors.ValidationError; no snapshot is produced when any is found. The
// chart itself is left untouched and may be finalized again.
func (c *Chart) Finalize() (*Snapshot, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c.snapshot()
}

// Finalize is the function form of [Chart.Finalize].
func Finalize(c *Chart) (*Snapshot, error) {
	return c.Finalize()
}

func (c *Chart) axisDefaults() *parallelAxisDefaultDoc {
	if c.parallel == nil {
		return nil
	}
	return c.parallel.ParallelAxisDefault
}
