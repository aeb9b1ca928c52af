package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"

	"github.com/matzehuels/chartopt/pkg/buildinfo"
	"github.com/matzehuels/chartopt/pkg/chart"
)

// Defaults for [RenderHTML].
const (
	DefaultScriptURL = "https://cdn.jsdelivr.net/npm/echarts@5/dist/echarts.min.js"
	DefaultWidth     = "900px"
	DefaultHeight    = "500px"
	DefaultTitle     = "chartopt"
)

// HTMLOption configures page rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title       string
	description string
	width       string
	height      string
	scriptURL   string
	elementID   string
}

func WithTitle(t string) HTMLOption      { return func(r *htmlRenderer) { r.title = t } }
func WithScriptURL(u string) HTMLOption  { return func(r *htmlRenderer) { r.scriptURL = u } }
func WithElementID(id string) HTMLOption { return func(r *htmlRenderer) { r.elementID = id } }
func WithSize(w, h string) HTMLOption    { return func(r *htmlRenderer) { r.width, r.height = w, h } }

// WithDescription adds a Markdown description below the chart. Raw HTML in
// the source is dropped.
func WithDescription(md string) HTMLOption { return func(r *htmlRenderer) { r.description = md } }

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="generator" content="{{.Generator}}">
  <title>{{.Title}}</title>
  <script src="{{.ScriptURL}}"></script>
</head>
<body>
  <div id="{{.ElementID}}" style="width:{{.Width}};height:{{.Height}};"></div>
{{- if .Description}}
  <div class="description">
{{.Description}}  </div>
{{- end}}
  <script>
    var chart = echarts.init(document.getElementById({{.ElementID}}));
    chart.setOption({{.Option}});
  </script>
</body>
</html>
`))

type pageData struct {
	Generator   string
	Title       string
	ScriptURL   string
	ElementID   string
	Width       string
	Height      string
	Description template.HTML
	Option      template.JS
}

// RenderHTML returns a standalone HTML page displaying snap.
func RenderHTML(snap *chart.Snapshot, opts ...HTMLOption) ([]byte, error) {
	return RenderDocumentHTML(snap.Serialize(), opts...)
}

// RenderDocumentHTML is RenderHTML for an already serialized document, such
// as one read back from a cache or a chart store.
func RenderDocumentHTML(doc chart.Document, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{
		title:     DefaultTitle,
		width:     DefaultWidth,
		height:    DefaultHeight,
		scriptURL: DefaultScriptURL,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.elementID == "" {
		r.elementID = "chart-" + uuid.NewString()
	}

	var option bytes.Buffer
	json.HTMLEscape(&option, doc)

	var desc bytes.Buffer
	if r.description != "" {
		if err := goldmark.Convert([]byte(r.description), &desc); err != nil {
			return nil, fmt.Errorf("render description: %w", err)
		}
	}

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		Generator:   buildinfo.Generator(),
		Title:       r.title,
		ScriptURL:   r.scriptURL,
		ElementID:   r.elementID,
		Width:       r.width,
		Height:      r.height,
		Description: template.HTML(desc.String()),
		Option:      template.JS(option.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}
