package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/chartopt/pkg/chart"
	"github.com/matzehuels/chartopt/pkg/errors"
	"github.com/matzehuels/chartopt/pkg/render"
)

// Render generates output artifacts in the requested formats. title is the
// page title for HTML when opts sets none.
func Render(doc chart.Document, title string, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatJSON:
			data, err = renderJSON(doc, opts.Indent)
		case FormatHTML:
			data, err = render.RenderDocumentHTML(doc, opts.HTMLOptions(title)...)
		default:
			err = errors.ValidateFormat(format, ValidFormats...)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderJSON returns the document followed by a newline, indented with two
// spaces when indent is set.
func renderJSON(doc chart.Document, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	if indent {
		if err := json.Indent(&buf, doc, "", "  "); err != nil {
			return nil, err
		}
	} else {
		buf.Write(doc)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// encodeJSON marshals v without HTML escaping, so embedded documents keep
// their bytes.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
