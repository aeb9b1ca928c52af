package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartopt/pkg/errors"
	chartio "github.com/matzehuels/chartopt/pkg/io"
	"github.com/matzehuels/chartopt/pkg/pipeline"
)

// validateCommand creates the validate command. It exits non-zero and lists
// every violation when the chart does not finalize.
func (c *CLI) validateCommand() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "validate [definition.toml]",
		Short: "Check a chart definition and list every violation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fin, err := c.finalize(cmd.Context(), args[0], data)
			if err != nil {
				return err
			}
			printSuccess("%s is valid", args[0])
			printStats(fin.AxisCount, fin.SeriesCount, fin.RowCount, false)
			printNextStep("Render it", "chartopt render "+args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "dataset file, .json or .xlsx (overrides the definition's data)")
	return cmd
}

// inspectCommand creates the inspect command, which tabulates the axes and
// series of a valid chart.
func (c *CLI) inspectCommand() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "inspect [definition.toml]",
		Short: "Show the axes and series of a chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.load(cmd.Context(), args[0], data)
			if err != nil {
				return err
			}
			fin, err := c.finalizeInput(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}

			def := in.Definition
			fmt.Println(StyleTitle.Render(chartLabel(def.Name, args[0])))
			if def.Title != "" {
				printKeyValue("title", def.Title)
			}
			if def.Data != "" {
				printKeyValue("data", def.DataPath())
			}
			printKeyValue("axes", strconv.Itoa(fin.AxisCount))
			printKeyValue("series", strconv.Itoa(fin.SeriesCount))
			printKeyValue("rows", strconv.Itoa(fin.RowCount))

			fmt.Println(renderTable([]string{"Dim", "Name", "Type", "Range"}, axisRows(def)))

			var seriesRows [][]string
			for i, s := range fin.Snapshot.Series() {
				seriesRows = append(seriesRows, []string{strconv.Itoa(i), string(s.Kind), s.Name, strconv.Itoa(s.Rows)})
			}
			fmt.Println(renderTable([]string{"#", "Type", "Name", "Rows"}, seriesRows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "dataset file, .json or .xlsx (overrides the definition's data)")
	return cmd
}

// load reads a definition and its dataset without touching the cache.
func (c *CLI) load(ctx context.Context, input, data string) (*pipeline.Input, error) {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	return runner.Load(ctx, pipeline.Options{DefinitionPath: input, DataPath: data})
}

func (c *CLI) finalize(ctx context.Context, input, data string) (*pipeline.Finalized, error) {
	in, err := c.load(ctx, input, data)
	if err != nil {
		return nil, err
	}
	return c.finalizeInput(ctx, input, in)
}

// finalizeInput always recomputes, so the result carries a snapshot and
// the full violation list.
func (c *CLI) finalizeInput(ctx context.Context, input string, in *pipeline.Input) (*pipeline.Finalized, error) {
	prog := newProgress(c.Logger)
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	fin, err := runner.Finalize(ctx, in, pipeline.Options{})
	if ve, ok := errors.AsValidation(err); ok {
		printViolations(input, ve)
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	prog.done("Finalized " + input)
	return fin, nil
}

// axisRows describes each declared axis. The type column shows the resolved
// kind: the axis's own type, else the parallel default, else value.
func axisRows(def *chartio.Definition) [][]string {
	defaultType := "value"
	if def.Parallel != nil && def.Parallel.AxisDefault != nil && def.Parallel.AxisDefault.Type != nil {
		defaultType = *def.Parallel.AxisDefault.Type
	}

	rows := make([][]string, 0, len(def.Axes))
	for _, a := range def.Axes {
		dim := "-"
		if a.Dim != nil {
			dim = strconv.Itoa(*a.Dim)
		}
		name := ""
		if a.Name != nil {
			name = *a.Name
		}
		typ := defaultType
		if a.Type != nil {
			typ = *a.Type
		}

		var rng string
		switch {
		case len(a.Data) > 0:
			rng = strings.Join(a.Data, ", ")
		case a.Min != nil || a.Max != nil:
			rng = bound(a.Min) + " … " + bound(a.Max)
		}
		rows = append(rows, []string{dim, name, typ, rng})
	}
	return rows
}

func bound(v *float64) string {
	if v == nil {
		return "auto"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
