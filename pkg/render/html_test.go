package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/chartopt/pkg/chart"
)

func finalize(t *testing.T, c *chart.Chart) *chart.Snapshot {
	t.Helper()
	snap, err := c.Finalize()
	if err != nil {
		t.Fatalf("Finalize error: %v", err)
	}
	return snap
}

func TestRenderHTML(t *testing.T) {
	snap := finalize(t, chart.New().
		BackgroundColor("#333").
		ParallelAxis(chart.NewParallelAxis().Dim(0).Name("日期")))

	page, err := RenderHTML(snap,
		WithTitle("AQI"),
		WithElementID("main"),
		WithSize("1200px", "80%"),
		WithScriptURL("https://example.com/echarts.js"))
	if err != nil {
		t.Fatalf("RenderHTML error: %v", err)
	}
	html := string(page)

	for _, want := range []string{
		"<title>AQI</title>",
		`<script src="https://example.com/echarts.js"></script>`,
		`<div id="main" style="width:1200px;height:80%;"></div>`,
		`document.getElementById("main")`,
		`chart.setOption({"backgroundColor":"#333","parallelAxis":[{"dim":0,"name":"日期"}]});`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page lacks %s\n%s", want, html)
		}
	}
}

func TestRenderHTMLDefaults(t *testing.T) {
	snap := finalize(t, chart.New())

	a, err := RenderHTML(snap)
	if err != nil {
		t.Fatalf("RenderHTML error: %v", err)
	}
	b, _ := RenderHTML(snap)

	page := string(a)
	if !strings.Contains(page, DefaultScriptURL) {
		t.Error("page should load the default script")
	}
	if !strings.Contains(page, "width:"+DefaultWidth) {
		t.Error("page should use the default width")
	}
	if !strings.Contains(page, `id="chart-`) {
		t.Error("page should generate an element id")
	}
	if string(a) == string(b) {
		t.Error("generated element ids should differ between pages")
	}
}

func TestRenderHTMLEscapesScriptBreakout(t *testing.T) {
	snap := finalize(t, chart.New().
		Tooltip(chart.NewTooltip().Formatter("</script><script>alert(1)</script>")))

	page, err := RenderHTML(snap, WithTitle("<b>x</b>"), WithElementID("c"))
	if err != nil {
		t.Fatalf("RenderHTML error: %v", err)
	}
	html := string(page)

	if strings.Contains(html, "<script>alert(1)") {
		t.Error("text values must not close the script block")
	}
	if !strings.Contains(html, `\u003c/script\u003e`) {
		t.Error("angle brackets in the option should be unicode-escaped")
	}
	if !strings.Contains(html, "<title>&lt;b&gt;x&lt;/b&gt;</title>") {
		t.Error("title should be HTML-escaped")
	}
}

func TestRenderDocumentHTML(t *testing.T) {
	snap := finalize(t, chart.New().BackgroundColor("#333"))

	fromSnap, _ := RenderHTML(snap, WithElementID("c"))
	fromDoc, err := RenderDocumentHTML(snap.Serialize(), WithElementID("c"))
	if err != nil {
		t.Fatalf("RenderDocumentHTML error: %v", err)
	}
	if string(fromSnap) != string(fromDoc) {
		t.Error("pages from a snapshot and from its document differ")
	}
}

func TestRenderHTMLDescription(t *testing.T) {
	snap := finalize(t, chart.New())

	page, err := RenderHTML(snap, WithDescription("Daily **AQI** readings.\n\n<script>alert(1)</script>\n"))
	if err != nil {
		t.Fatalf("RenderHTML error: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, "<p>Daily <strong>AQI</strong> readings.</p>") {
		t.Errorf("description not rendered:\n%s", html)
	}
	if strings.Contains(html, "alert(1)") {
		t.Error("raw HTML in the description should be dropped")
	}

	plain, _ := RenderHTML(snap)
	if strings.Contains(string(plain), `class="description"`) {
		t.Error("page without a description should have no description block")
	}
}
