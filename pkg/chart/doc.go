// Package chart builds parallel-coordinates chart options and serializes them
// to the canonical JSON document consumed by an ECharts-compatible renderer.
//
// # Overview
//
// A chart is assembled from small records, each created with a New*
// constructor and configured with chained mutators:
//
//	c := chart.New().
//	    BackgroundColor("#333").
//	    ParallelAxis(chart.NewParallelAxis().Dim(0).Name("X")).
//	    Series(chart.NewParallel().Name("s").AddRow(chart.Int(1), chart.Int(2)))
//
//	snap, err := c.Finalize()
//	if err != nil {
//	    // err is an *errors.ValidationError listing every violation
//	}
//	fmt.Println(snap.Serialize())
//
// # Presence
//
// Every field starts absent. A field that was never set is omitted from the
// document; a field set to a zero value (false, 0, "") is emitted. Records
// attached to a parent are copied at attach time.
//
// # Dimensions
//
// A [ParallelAxis] owns the row position equal to its dimension index: in
// every [ParallelSeries] row, position i holds the value for the axis with
// Dim(i). Axis attachment order only controls presentation order. A row must
// provide a slot for every declared axis; trailing positions beyond the
// highest declared dimension are emitted but not checked.
//
// # Finalize
//
// [Chart.Finalize] validates the whole chart in one pass and either returns a
// [Snapshot] or an *errors.ValidationError carrying every violation:
// duplicate or missing dimension indices, inverted ranges, row widths that do
// not cover the declared axes, empty category axes, visual maps pointing at
// undeclared dimensions, text on value axes, unknown category labels, short
// color ramps and non-finite numbers.
//
// # Serialization
//
// [Snapshot.Serialize] is total and deterministic. Fields are emitted in
// schema order, axes and series in attachment order. Integral numbers carry
// no fractional part; text escapes only quote, backslash and control
// characters.
package chart
