package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/chartopt/pkg/errors"
)

// finalizeErr finalizes c and returns its validation error, failing the test
// when finalize succeeds or returns some other error.
func finalizeErr(t *testing.T, c *Chart) *errors.ValidationError {
	t.Helper()
	snap, err := c.Finalize()
	if err == nil {
		t.Fatalf("Finalize() succeeded, want error; document: %s", snap.Serialize())
	}
	if snap != nil {
		t.Error("Finalize() returned a snapshot alongside an error")
	}
	ve, ok := errors.AsValidation(err)
	if !ok {
		t.Fatalf("Finalize() error = %T %v, want *errors.ValidationError", err, err)
	}
	return ve
}

func mustFinalize(t *testing.T, c *Chart) *Snapshot {
	t.Helper()
	snap, err := c.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	return snap
}

func dimAxes(n int) *Chart {
	c := New()
	for i := 0; i < n; i++ {
		c.ParallelAxis(NewParallelAxis().Dim(i))
	}
	return c
}

func TestFinalizeEmptyChart(t *testing.T) {
	snap := mustFinalize(t, New())
	if got := snap.String(); got != `{}` {
		t.Errorf("empty chart = %s, want {}", got)
	}
}

func TestFinalizeSingleAxis(t *testing.T) {
	c := New().
		ParallelAxis(NewParallelAxis().Dim(0).Name("X")).
		Series(NewParallel().Name("s").AddRow(Int(1), Int(2)))

	snap := mustFinalize(t, c)
	want := `{"parallelAxis":[{"dim":0,"name":"X"}],"series":[{"type":"parallel","name":"s","data":[[1,2]]}]}`
	if got := snap.String(); got != want {
		t.Errorf("Serialize() =\n%s\nwant\n%s", got, want)
	}
}

func TestFinalizeRowWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		ok    bool
	}{
		{"short", 6, false},
		{"exact", 7, true},
		{"trailing extra slot", 8, true},
		{"empty", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := make(Row, tt.width)
			for i := range row {
				row[i] = Int(i)
			}
			c := dimAxes(7).Series(NewParallel().AddRow(row...))

			_, err := c.Finalize()
			if tt.ok {
				if err != nil {
					t.Fatalf("Finalize() error: %v", err)
				}
				return
			}
			if !errors.Is(err, errors.ErrCodeDimensionMismatch) {
				t.Fatalf("Finalize() error = %v, want DIMENSION_MISMATCH", err)
			}
		})
	}
}

func TestFinalizeSparseDimensions(t *testing.T) {
	// Dimension 3 is the highest, so rows need four slots even with two axes.
	c := New().
		ParallelAxis(NewParallelAxis().Dim(3)).
		ParallelAxis(NewParallelAxis().Dim(0))

	ok := c.Series(NewParallel().AddRow(Int(1), Int(0), Int(0), Int(4)))
	mustFinalize(t, ok)

	bad := New().
		ParallelAxis(NewParallelAxis().Dim(3)).
		ParallelAxis(NewParallelAxis().Dim(0)).
		Series(NewParallel().AddRow(Int(1), Int(2)))
	ve := finalizeErr(t, bad)
	if !ve.Has(errors.ErrCodeDimensionMismatch) {
		t.Errorf("violations = %v, want DIMENSION_MISMATCH", ve)
	}
}

func TestFinalizeRaggedRows(t *testing.T) {
	c := dimAxes(2).Series(NewParallel().
		AddRow(Int(1), Int(2), Int(3)).
		AddRow(Int(1), Int(2)))

	ve := finalizeErr(t, c)
	if ve.Count(errors.ErrCodeDimensionMismatch) != 1 {
		t.Errorf("violations = %v, want one DIMENSION_MISMATCH", ve)
	}
}

func TestFinalizeDuplicateDimension(t *testing.T) {
	c := New().
		ParallelAxis(NewParallelAxis().Dim(0).Name("A")).
		ParallelAxis(NewParallelAxis().Dim(0).Name("B"))

	ve := finalizeErr(t, c)
	if !ve.Has(errors.ErrCodeDuplicateAxisDimension) {
		t.Fatalf("violations = %v, want DUPLICATE_AXIS_DIMENSION", ve)
	}
	msg := ve.Error()
	if !strings.Contains(msg, `"A"`) || !strings.Contains(msg, `"B"`) {
		t.Errorf("message %q should name both axes", msg)
	}
}

func TestFinalizeMissingDimension(t *testing.T) {
	tests := []struct {
		name string
		axis *ParallelAxis
	}{
		{"unset", NewParallelAxis().Name("X")},
		{"negative", NewParallelAxis().Dim(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := finalizeErr(t, New().ParallelAxis(tt.axis))
			if !ve.Has(errors.ErrCodeInvalidDimension) {
				t.Errorf("violations = %v, want INVALID_DIMENSION", ve)
			}
		})
	}
}

func TestFinalizeAxisRange(t *testing.T) {
	ve := finalizeErr(t, New().ParallelAxis(NewParallelAxis().Dim(0).Min(10).Max(1)))
	if !ve.Has(errors.ErrCodeInvalidRange) {
		t.Errorf("violations = %v, want INVALID_RANGE", ve)
	}

	// Equal bounds describe a single point and are accepted.
	mustFinalize(t, New().ParallelAxis(NewParallelAxis().Dim(0).Min(5).Max(5)))
	// A single bound cannot be inverted.
	mustFinalize(t, New().ParallelAxis(NewParallelAxis().Dim(0).Max(-3)))
}

func TestFinalizeVisualMapRange(t *testing.T) {
	c := New().VisualMap(NewVisualMap().Min(150).Max(0))
	ve := finalizeErr(t, c)
	if !ve.Has(errors.ErrCodeInvalidRange) {
		t.Fatalf("violations = %v, want INVALID_RANGE", ve)
	}

	snap := mustFinalize(t, New().VisualMap(NewVisualMap().Min(0).Max(150)))
	if got, want := snap.String(), `{"visualMap":{"min":0,"max":150}}`; got != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestFinalizeVisualMapDimension(t *testing.T) {
	c := dimAxes(3).VisualMap(NewVisualMap().Dimension(2))
	mustFinalize(t, c)

	c = dimAxes(3).VisualMap(NewVisualMap().Dimension(9))
	ve := finalizeErr(t, c)
	if !ve.Has(errors.ErrCodeDanglingDimension) {
		t.Errorf("violations = %v, want DANGLING_DIMENSION_REFERENCE", ve)
	}

	// Without axes every dimension reference dangles.
	ve = finalizeErr(t, New().VisualMap(NewVisualMap().Dimension(0)))
	if !ve.Has(errors.ErrCodeDanglingDimension) {
		t.Errorf("violations = %v, want DANGLING_DIMENSION_REFERENCE", ve)
	}
}

func TestFinalizeColorRamp(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
		ok     bool
	}{
		{"empty", []string{}, false},
		{"single", []string{"#50a3ba"}, false},
		{"pair", []string{"#50a3ba", "#d94e5d"}, true},
		{"three", []string{"#50a3ba", "#eac736", "#d94e5d"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New().VisualMap(NewVisualMap().InRange(NewVisualRange().Color(tt.colors...)))
			_, err := c.Finalize()
			if tt.ok != (err == nil) {
				t.Fatalf("Finalize() error = %v, want ok=%v", err, tt.ok)
			}
			if !tt.ok && !errors.Is(err, errors.ErrCodeInvalidColorRamp) {
				t.Errorf("error = %v, want INVALID_COLOR_RAMP", err)
			}
		})
	}

	// A range with only an opacity carries no ramp.
	mustFinalize(t, New().VisualMap(NewVisualMap().OutOfRange(NewVisualRange().Opacity(0.2))))
}

func TestFinalizeCategoryAxis(t *testing.T) {
	levels := []string{"low", "high"}
	base := func() *Chart {
		return New().
			ParallelAxis(NewParallelAxis().Dim(0)).
			ParallelAxis(NewParallelAxis().Dim(1).Type(AxisCategory).Data(levels...))
	}

	mustFinalize(t, base().Series(NewParallel().AddRow(Int(3), Text("high"))))
	mustFinalize(t, base().Series(NewParallel().AddRow(Int(3), Int(1))))

	tests := []struct {
		name string
		row  Row
		code errors.Code
	}{
		{"unknown label", Row{Int(3), Text("medium")}, errors.ErrCodeUnknownCategory},
		{"index past end", Row{Int(3), Int(2)}, errors.ErrCodeUnknownCategory},
		{"negative index", Row{Int(3), Int(-1)}, errors.ErrCodeUnknownCategory},
		{"fractional index", Row{Int(3), Number(0.5)}, errors.ErrCodeUnknownCategory},
		{"text on value axis", Row{Text("3"), Text("low")}, errors.ErrCodeTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := finalizeErr(t, base().Series(NewParallel().AddRow(tt.row...)))
			if !ve.Has(tt.code) {
				t.Errorf("violations = %v, want %s", ve, tt.code)
			}
		})
	}
}

func TestFinalizeEmptyCategoryList(t *testing.T) {
	ve := finalizeErr(t, New().ParallelAxis(NewParallelAxis().Dim(0).Type(AxisCategory)))
	if !ve.Has(errors.ErrCodeEmptyCategoryList) {
		t.Errorf("violations = %v, want EMPTY_CATEGORY_LIST", ve)
	}

	// The type can come from the coordinate defaults.
	c := New().
		Parallel(NewParallelCoordinate().ParallelAxisDefault(NewParallelAxisDefault().Type(AxisCategory))).
		ParallelAxis(NewParallelAxis().Dim(0))
	ve = finalizeErr(t, c)
	if !ve.Has(errors.ErrCodeEmptyCategoryList) {
		t.Errorf("violations = %v, want EMPTY_CATEGORY_LIST from default type", ve)
	}

	// An explicit value type overrides a category default.
	c = New().
		Parallel(NewParallelCoordinate().ParallelAxisDefault(NewParallelAxisDefault().Type(AxisCategory))).
		ParallelAxis(NewParallelAxis().Dim(0).Type(AxisValue))
	mustFinalize(t, c)
}

func TestFinalizeCategoryBounds(t *testing.T) {
	c := New().ParallelAxis(NewParallelAxis().Dim(0).Type(AxisCategory).Data("a").Max(3))
	ve := finalizeErr(t, c)
	if !ve.Has(errors.ErrCodeCategoryBounds) {
		t.Errorf("violations = %v, want CATEGORY_BOUNDS", ve)
	}
}

func TestFinalizeNonFinite(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name  string
		chart *Chart
		field string
	}{
		{"NaN in row", dimAxes(1).Series(NewParallel().AddRow(Number(nan))), "series #0 row 0 position 0"},
		{"Inf in line row", New().Series(NewLine().AddRow(Int(1), Number(math.Inf(-1)))), "series #0 row 0 position 1"},
		{"axis bound", New().ParallelAxis(NewParallelAxis().Dim(0).Max(math.Inf(1))), "axis #0 max"},
		{"axis label", New().ParallelAxis(NewParallelAxis().Dim(0).AxisLabel(NewAxisLabel().Rotate(nan))), "axis #0 axisLabel.rotate"},
		{"visual map bound", New().VisualMap(NewVisualMap().Min(nan)), "visual map min"},
		{"visual range", New().VisualMap(NewVisualMap().OutOfRange(NewVisualRange().Opacity(nan))), "visual map outOfRange.opacity"},
		{"series line style", New().Series(NewParallel().LineStyle(NewLineStyle().Width(nan))), "series #0 lineStyle.width"},
		{"series opacity", New().Series(NewParallel().Name("s").ActiveOpacity(nan)), `series #0 "s" activeOpacity`},
		{"symbol size", New().Series(NewScatter().SymbolSize(math.Inf(1))), "series #0 symbolSize"},
		{"legend text", New().Legend(NewLegend().TextStyle(NewTextStyle().FontSize(nan))), "legend textStyle.fontSize"},
		{"legend gap", New().Legend(NewLegend().ItemGap(nan)), "legend itemGap"},
		{"tooltip border", New().Tooltip(NewTooltip().BorderWidth(nan)), "tooltip borderWidth"},
		{
			"axis default tick",
			New().Parallel(NewParallelCoordinate().ParallelAxisDefault(NewParallelAxisDefault().
				AxisTick(NewAxisTick().LineStyle(NewLineStyle().Opacity(nan))))),
			"parallel parallelAxisDefault.axisTick.lineStyle.opacity",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := finalizeErr(t, tt.chart)
			if len(ve.Violations) != 1 || !ve.Has(errors.ErrCodeNonFiniteValue) {
				t.Fatalf("violations = %v, want one NON_FINITE_VALUE", ve)
			}
			if msg := ve.Violations[0].Message; !strings.HasPrefix(msg, tt.field+" ") {
				t.Errorf("message = %q, want it to name %s", msg, tt.field)
			}
		})
	}
}

func TestFinalizeNonFiniteStyleWithOtherViolations(t *testing.T) {
	c := New().
		ParallelAxis(NewParallelAxis().Dim(0)).
		ParallelAxis(NewParallelAxis().Dim(0)).
		Series(NewParallel().LineStyle(NewLineStyle().Opacity(math.NaN())).AddRow(Int(1)))

	ve := finalizeErr(t, c)
	for _, code := range []errors.Code{
		errors.ErrCodeDuplicateAxisDimension,
		errors.ErrCodeNonFiniteValue,
	} {
		if !ve.Has(code) {
			t.Errorf("violations = %v, missing %s", ve, code)
		}
	}
	if strings.Contains(ve.Error(), "json:") {
		t.Errorf("Error() exposes encoder text: %q", ve.Error())
	}
}

func TestFinalizeCartesianSeriesCoverAxes(t *testing.T) {
	tests := []struct {
		name   string
		series Series
		code   errors.Code
	}{
		{"short line row", NewLine().AddRow(Int(1)), errors.ErrCodeDimensionMismatch},
		{"short scatter row", NewScatter().AddRow(Int(1), Int(2)), errors.ErrCodeDimensionMismatch},
		{"text on value axis", NewScatter().AddRow(Text("a"), Int(2), Int(3)), errors.ErrCodeTypeMismatch},
		{"uneven rows", NewScatter().AddRow(Int(1), Int(2), Int(3)).AddRow(Int(1), Int(2), Int(3), Int(4)), errors.ErrCodeDimensionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := finalizeErr(t, dimAxes(3).Series(tt.series))
			if !ve.Has(tt.code) {
				t.Errorf("violations = %v, want %s", ve, tt.code)
			}
		})
	}

	mustFinalize(t, dimAxes(3).
		Series(NewLine().AddRow(Int(1), Int(2), Int(3))).
		Series(NewScatter().AddRow(Int(4), Int(5), Int(6))))

	// Without parallel axes only the row widths are compared.
	mustFinalize(t, New().Series(NewLine().AddRow(Int(1))))
}

func TestFinalizeReportsAllViolations(t *testing.T) {
	c := New().
		ParallelAxis(NewParallelAxis().Dim(0).Name("A")).
		ParallelAxis(NewParallelAxis().Dim(0).Name("B")).
		ParallelAxis(NewParallelAxis().Dim(1).Type(AxisCategory)).
		VisualMap(NewVisualMap().Min(10).Max(1).Dimension(5)).
		Series(NewParallel().Name("s").AddRow(Int(1)))

	ve := finalizeErr(t, c)
	for _, code := range []errors.Code{
		errors.ErrCodeDuplicateAxisDimension,
		errors.ErrCodeEmptyCategoryList,
		errors.ErrCodeInvalidRange,
		errors.ErrCodeDanglingDimension,
		errors.ErrCodeDimensionMismatch,
	} {
		if !ve.Has(code) {
			t.Errorf("violations missing %s: %v", code, ve)
		}
	}
	if len(ve.Violations) != 5 {
		t.Errorf("got %d violations, want 5: %v", len(ve.Violations), ve)
	}
}

func TestFinalizeIsRepeatable(t *testing.T) {
	c := dimAxes(1).Series(NewParallel().AddRow(Int(1)))
	a := mustFinalize(t, c)
	b := mustFinalize(t, c)
	if a.String() != b.String() {
		t.Errorf("repeated finalize differs:\n%s\n%s", a, b)
	}

	// A failing chart can be fixed and finalized again.
	bad := New().VisualMap(NewVisualMap().Min(150).Max(0))
	finalizeErr(t, bad)
	bad.VisualMap(NewVisualMap().Min(0).Max(150))
	mustFinalize(t, bad)
}
