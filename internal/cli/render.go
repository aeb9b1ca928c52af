package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartopt/pkg/errors"
	"github.com/matzehuels/chartopt/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file (single format), base path (multiple) or "-" for stdout
	data      string   // dataset file overriding the one named by the definition
	formats   []string // output formats: "json", "html"
	indent    bool     // indent JSON output
	title     string   // HTML page title
	width     string   // HTML chart element width
	height    string   // HTML chart element height
	scriptURL string   // charting library URL for HTML pages
	noCache   bool     // bypass the document cache
	refresh   bool     // recompute and overwrite cached entries
}

// renderCommand creates the render command. Output paths default to the
// definition path with the format's extension, e.g. chart.toml → chart.json.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [definition.toml]",
		Short: "Render a chart definition to an option document or HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.output == "-" && len(opts.formats) != 1 {
				return errors.New(errors.ErrCodeInvalidInput, "output to stdout takes exactly one format")
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (single format), base path (multiple), or "-" for stdout`)
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "dataset file, .json or .xlsx (overrides the definition's data)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), html (comma-separated)")
	cmd.Flags().BoolVar(&opts.indent, "indent", false, "indent JSON output")
	cmd.Flags().StringVar(&opts.title, "title", "", "HTML page title (default: the definition's title)")
	cmd.Flags().StringVar(&opts.width, "width", "", "HTML chart width (CSS length)")
	cmd.Flags().StringVar(&opts.height, "height", "", "HTML chart height (CSS length)")
	cmd.Flags().StringVar(&opts.scriptURL, "script-url", "", "charting library URL for HTML pages")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached entries")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdout io.Writer, input string, opts *renderOpts) error {
	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		DefinitionPath: input,
		DataPath:       opts.data,
		Refresh:        opts.refresh,
		Formats:        opts.formats,
		Indent:         opts.indent,
		Title:          opts.title,
		Width:          opts.width,
		Height:         opts.height,
		ScriptURL:      opts.scriptURL,
	})
	if err != nil {
		if ve, ok := errors.AsValidation(err); ok {
			printViolations(input, ve)
		}
		return err
	}

	if opts.output == "-" {
		_, err := stdout.Write(result.Artifacts[opts.formats[0]])
		return err
	}

	paths := outputPaths(opts.output, input, opts.formats)
	for _, format := range opts.formats {
		if err := errors.ValidatePath(paths[format]); err != nil {
			return err
		}
		if err := os.WriteFile(paths[format], result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
	}
	prog.done("Rendered " + input)

	printSuccess("Rendered %s", chartLabel(result.Name, input))
	printStats(result.Stats.AxisCount, result.Stats.SeriesCount, result.Stats.RowCount, result.CacheInfo.DocumentHit)
	for _, format := range opts.formats {
		printFile(paths[format])
	}
	return nil
}

// outputPaths maps each format to its output file. A single format with an
// explicit output uses it verbatim; otherwise files share a base path and
// differ by extension.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.json, .html), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// chartLabel names a chart for status lines.
func chartLabel(name, input string) string {
	if name != "" {
		return name
	}
	return filepath.Base(input)
}
