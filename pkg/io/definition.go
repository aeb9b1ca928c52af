package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartopt/pkg/errors"
)

// Definition is the decoded form of a chart definition file.
type Definition struct {
	Name            string        `toml:"name"`
	Title           string        `toml:"title"`
	Description     string        `toml:"description"` // Markdown, shown on HTML pages
	Data            string        `toml:"data"`
	BackgroundColor *string       `toml:"background_color"`
	Legend          *LegendDef    `toml:"legend"`
	Tooltip         *TooltipDef   `toml:"tooltip"`
	Axes            []AxisDef     `toml:"axis"`
	VisualMap       *VisualMapDef `toml:"visual_map"`
	Parallel        *ParallelDef  `toml:"parallel"`
	Series          []SeriesDef   `toml:"series"`

	// dir is the directory of the definition file; relative dataset paths
	// resolve against it.
	dir string
}

type TextStyleDef struct {
	Color      *string  `toml:"color"`
	FontStyle  *string  `toml:"font_style"`
	FontWeight *string  `toml:"font_weight"`
	FontFamily *string  `toml:"font_family"`
	FontSize   *float64 `toml:"font_size"`
	LineHeight *float64 `toml:"line_height"`
}

type LineStyleDef struct {
	Color   *string  `toml:"color"`
	Width   *float64 `toml:"width"`
	Type    *string  `toml:"type"`
	Opacity *float64 `toml:"opacity"`
}

type AxisLineDef struct {
	Show      *bool         `toml:"show"`
	LineStyle *LineStyleDef `toml:"line_style"`
}

type AxisTickDef struct {
	Show      *bool         `toml:"show"`
	Length    *float64      `toml:"length"`
	LineStyle *LineStyleDef `toml:"line_style"`
}

type AxisLabelDef struct {
	Show      *bool    `toml:"show"`
	Color     *string  `toml:"color"`
	FontSize  *float64 `toml:"font_size"`
	Formatter *string  `toml:"formatter"`
	Rotate    *float64 `toml:"rotate"`
}

type SplitLineDef struct {
	Show      *bool         `toml:"show"`
	LineStyle *LineStyleDef `toml:"line_style"`
}

type LegendDef struct {
	Show       *bool         `toml:"show"`
	Left       *string       `toml:"left"`
	Top        *string       `toml:"top"`
	Right      *string       `toml:"right"`
	Bottom     *string       `toml:"bottom"`
	Orient     *string       `toml:"orient"`
	Padding    *float64      `toml:"padding"`
	ItemGap    *float64      `toml:"item_gap"`
	ItemWidth  *float64      `toml:"item_width"`
	ItemHeight *float64      `toml:"item_height"`
	TextStyle  *TextStyleDef `toml:"text_style"`
	Data       []string      `toml:"data"`
}

type TooltipDef struct {
	Show            *bool         `toml:"show"`
	Trigger         *string       `toml:"trigger"`
	Formatter       *string       `toml:"formatter"`
	Padding         *float64      `toml:"padding"`
	BackgroundColor *string       `toml:"background_color"`
	BorderColor     *string       `toml:"border_color"`
	BorderWidth     *float64      `toml:"border_width"`
	TextStyle       *TextStyleDef `toml:"text_style"`
}

// AxisDef is one [[axis]] table. Dim is required by finalize, not here.
type AxisDef struct {
	Dim           *int          `toml:"dim"`
	Type          *string       `toml:"type"`
	Name          *string       `toml:"name"`
	Inverse       *bool         `toml:"inverse"`
	Min           *float64      `toml:"min"`
	Max           *float64      `toml:"max"`
	NameLocation  *string       `toml:"name_location"`
	NameGap       *float64      `toml:"name_gap"`
	NameTextStyle *TextStyleDef `toml:"name_text_style"`
	AxisLine      *AxisLineDef  `toml:"axis_line"`
	AxisTick      *AxisTickDef  `toml:"axis_tick"`
	AxisLabel     *AxisLabelDef `toml:"axis_label"`
	SplitLine     *SplitLineDef `toml:"split_line"`
	Data          []string      `toml:"data"`
}

type VisualRangeDef struct {
	Color   []string `toml:"color"`
	Opacity *float64 `toml:"opacity"`
}

type VisualMapDef struct {
	Type       *string         `toml:"type"`
	Show       *bool           `toml:"show"`
	Min        *float64        `toml:"min"`
	Max        *float64        `toml:"max"`
	Dimension  *int            `toml:"dimension"`
	Calculable *bool           `toml:"calculable"`
	Orient     *string         `toml:"orient"`
	Left       *string         `toml:"left"`
	Top        *string         `toml:"top"`
	Right      *string         `toml:"right"`
	Bottom     *string         `toml:"bottom"`
	InRange    *VisualRangeDef `toml:"in_range"`
	OutOfRange *VisualRangeDef `toml:"out_of_range"`
	TextStyle  *TextStyleDef   `toml:"text_style"`
}

type AxisDefaultDef struct {
	Type          *string       `toml:"type"`
	Name          *string       `toml:"name"`
	NameLocation  *string       `toml:"name_location"`
	NameGap       *float64      `toml:"name_gap"`
	NameTextStyle *TextStyleDef `toml:"name_text_style"`
	AxisLine      *AxisLineDef  `toml:"axis_line"`
	AxisTick      *AxisTickDef  `toml:"axis_tick"`
	AxisLabel     *AxisLabelDef `toml:"axis_label"`
	SplitLine     *SplitLineDef `toml:"split_line"`
}

type ParallelDef struct {
	Left        *string         `toml:"left"`
	Top         *string         `toml:"top"`
	Right       *string         `toml:"right"`
	Bottom      *string         `toml:"bottom"`
	Width       *string         `toml:"width"`
	Height      *string         `toml:"height"`
	Layout      *string         `toml:"layout"`
	AxisDefault *AxisDefaultDef `toml:"axis_default"`
}

// SeriesDef is one [[series]] table. Rows come either from the dataset key
// in Data or inline from Rows.
type SeriesDef struct {
	Type            string        `toml:"type"`
	Name            *string       `toml:"name"`
	Smooth          *bool         `toml:"smooth"`
	InactiveOpacity *float64      `toml:"inactive_opacity"`
	ActiveOpacity   *float64      `toml:"active_opacity"`
	Symbol          *string       `toml:"symbol"`
	SymbolSize      *float64      `toml:"symbol_size"`
	LineStyle       *LineStyleDef `toml:"line_style"`
	Data            string        `toml:"data"`
	Rows            [][]any       `toml:"rows"`
}

// ReadDefinition decodes a TOML definition from r. Unknown keys are an
// INVALID_FORMAT error.
func ReadDefinition(r io.Reader) (*Definition, error) {
	var def Definition
	md, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode definition")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys in definition: %s", strings.Join(keys, ", "))
	}
	return &def, nil
}

// LoadDefinition reads the definition file at path. A relative Data path
// resolves against the file's directory.
func LoadDefinition(path string) (*Definition, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	def, err := ReadDefinition(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.dir = filepath.Dir(path)
	return def, nil
}

// DataPath returns the dataset file path, or "" when the definition names
// none.
func (d *Definition) DataPath() string {
	if d.Data == "" {
		return ""
	}
	if filepath.IsAbs(d.Data) || d.dir == "" {
		return d.Data
	}
	return filepath.Join(d.dir, d.Data)
}
