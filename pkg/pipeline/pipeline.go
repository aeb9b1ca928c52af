// Package pipeline provides the load → finalize → render pipeline for chartopt.
//
// The CLI and the HTTP API both run charts through a [Runner], so they
// resolve data, cache documents and render output the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a TOML chart definition and the dataset its series name
//  2. Finalize: build the chart, validate it, serialize the option document
//  3. Render: produce output in the requested formats (JSON, HTML)
//
// The finalize and render stages are cached. Documents are keyed by the
// content of the definition and dataset, artifacts by the document and the
// render options.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    DefinitionPath: "examples/aqi/chart.toml",
//	    Formats:        []string{pipeline.FormatHTML},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page := result.Artifacts[pipeline.FormatHTML]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartopt/pkg/cache"
	"github.com/matzehuels/chartopt/pkg/chart"
	"github.com/matzehuels/chartopt/pkg/errors"
	"github.com/matzehuels/chartopt/pkg/render"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatHTML = "html"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatJSON, FormatHTML}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Load options. Definition takes precedence over DefinitionPath; Data
	// over DataPath, which in turn overrides the data file named by the
	// definition.
	DefinitionPath string `json:"-"`
	Definition     []byte `json:"definition,omitempty"`
	DataPath       string `json:"-"`
	Data           []byte `json:"data,omitempty"`
	Refresh        bool   `json:"refresh,omitempty"`

	// Render options. Description is Markdown; when empty, HTML pages use
	// the definition's description.
	Formats     []string `json:"formats,omitempty"`
	Indent      bool     `json:"indent,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Width       string   `json:"width,omitempty"`
	Height      string   `json:"height,omitempty"`
	ScriptURL   string   `json:"script_url,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Name is the chart name from the definition, if any.
	Name string

	// Title is the page title used for HTML output.
	Title string

	// Description is the Markdown shown below the chart on HTML pages.
	Description string

	// Document is the canonical option document.
	Document chart.Document

	// DocumentHash is the content hash of Document.
	DocumentHash string

	// Snapshot is the finalized chart. It is nil when the document came
	// from the cache.
	Snapshot *chart.Snapshot

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	AxisCount    int
	SeriesCount  int
	RowCount     int
	LoadTime     time.Duration
	FinalizeTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	DocumentHit bool // Whether the document came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, ValidFormats...); err != nil {
			return err
		}
	}
	return nil
}

// ValidateForLoad checks that a definition source is present.
func (o *Options) ValidateForLoad() error {
	if len(o.Definition) == 0 && o.DefinitionPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "definition or definition path is required")
	}
	if len(o.Definition) == 0 {
		if err := errors.ValidatePath(o.DefinitionPath); err != nil {
			return err
		}
	}
	if o.DataPath != "" && len(o.Data) == 0 {
		if err := errors.ValidatePath(o.DataPath); err != nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

// ValidateForRender applies render defaults and checks the formats.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	o.setLogger()
	return ValidateFormats(o.Formats)
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// HTMLOptions returns the page options for HTML output. title is used when
// no explicit Title is set.
func (o *Options) HTMLOptions(title string) []render.HTMLOption {
	if o.Title != "" {
		title = o.Title
	}
	var opts []render.HTMLOption
	if title != "" {
		opts = append(opts, render.WithTitle(title))
	}
	if o.Width != "" || o.Height != "" {
		w, h := o.Width, o.Height
		if w == "" {
			w = render.DefaultWidth
		}
		if h == "" {
			h = render.DefaultHeight
		}
		opts = append(opts, render.WithSize(w, h))
	}
	if o.ScriptURL != "" {
		opts = append(opts, render.WithScriptURL(o.ScriptURL))
	}
	if o.Description != "" {
		opts = append(opts, render.WithDescription(o.Description))
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format, title string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatJSON:
		k.Indent = o.Indent
	case FormatHTML:
		k.Title = title
		if o.Title != "" {
			k.Title = o.Title
		}
		k.Width, k.Height, k.Script = o.Width, o.Height, o.ScriptURL
		k.Description = o.Description
	}
	return k
}
