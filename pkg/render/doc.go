// Package render turns finalized chart snapshots into viewable output.
//
// # HTML
//
// [RenderHTML] wraps the option document in a standalone page that loads an
// ECharts-compatible script and initializes one chart element:
//
//	page, err := render.RenderHTML(snap,
//	    render.WithTitle("AQI"),
//	    render.WithSize("1200px", "800px"))
//
// The document is embedded as a script literal with <, > and & escaped, so
// text values cannot terminate the surrounding script block. Every page gets
// a fresh element ID unless [WithElementID] fixes one. [WithDescription]
// adds Markdown text below the chart.
package render
