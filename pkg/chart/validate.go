package chart

import (
	"fmt"
	"math"

	"github.com/matzehuels/chartopt/pkg/errors"
)

// validator accumulates violations over a single pass.
type validator struct {
	violations []*errors.Error
}

func (v *validator) add(code errors.Code, format string, args ...any) {
	v.violations = append(v.violations, errors.New(code, format, args...))
}

// finite returns a visitor reporting every non-finite number under ref.
func (v *validator) finite(ref string) visitFunc {
	return func(path string, f *float64) {
		checkFinite(v, ref+" "+path, f)
	}
}

func (v *validator) err() error {
	if len(v.violations) == 0 {
		return nil
	}
	return &errors.ValidationError{Violations: v.violations}
}

// governed is an axis that owns a row slot.
type governed struct {
	ref  string
	dim  int
	kind AxisType
	doc  *parallelAxisDoc
}

// validate walks the whole chart once and reports every violation.
func (c *Chart) validate() error {
	var v validator

	axes, required := c.validateAxes(&v)
	c.validateVisualMap(&v, axes)
	for i, s := range c.series {
		ref := seriesRef(i, s)
		validateSeries(&v, ref, s, axes, required)
		s.numbers(v.finite(ref))
	}

	c.legend.numbers("", v.finite("legend"))
	c.tooltip.numbers("", v.finite("tooltip"))
	c.parallel.numbers("", v.finite("parallel"))

	return v.err()
}

// validateAxes checks every axis and returns the axes owning a dimension
// together with the row length a series needs to cover them.
func (c *Chart) validateAxes(v *validator) (map[int]governed, int) {
	defaults := c.axisDefaults()
	byDim := make(map[int]governed, len(c.axes))
	maxDim := -1

	for i := range c.axes {
		a := &c.axes[i]
		ref := axisRef(i, a)
		kind := a.kind(defaults)

		switch {
		case a.Dim == nil:
			v.add(errors.ErrCodeInvalidDimension, "%s has no dimension index", ref)
		case *a.Dim < 0:
			v.add(errors.ErrCodeInvalidDimension, "%s has negative dimension index %d", ref, *a.Dim)
		default:
			if prev, dup := byDim[*a.Dim]; dup {
				v.add(errors.ErrCodeDuplicateAxisDimension, "%s and %s both declare dimension %d", prev.ref, ref, *a.Dim)
				break
			}
			byDim[*a.Dim] = governed{ref: ref, dim: *a.Dim, kind: kind, doc: a}
			maxDim = max(maxDim, *a.Dim)
		}

		a.numbers("", v.finite(ref))

		if kind == AxisCategory {
			if len(a.Data) == 0 {
				v.add(errors.ErrCodeEmptyCategoryList, "%s is a category axis without labels", ref)
			}
			if a.Min != nil || a.Max != nil {
				v.add(errors.ErrCodeCategoryBounds, "%s is a category axis and cannot have min/max bounds", ref)
			}
			continue
		}
		if a.Min != nil && a.Max != nil && *a.Min > *a.Max {
			v.add(errors.ErrCodeInvalidRange, "%s has min %s greater than max %s", ref, formatNumber(*a.Min), formatNumber(*a.Max))
		}
	}

	return byDim, max(len(c.axes), maxDim+1)
}

func (c *Chart) validateVisualMap(v *validator, axes map[int]governed) {
	vm := c.visualMap
	if vm == nil {
		return
	}

	vm.numbers("", v.finite("visual map"))
	if vm.Min != nil && vm.Max != nil && *vm.Min > *vm.Max {
		v.add(errors.ErrCodeInvalidRange, "visual map has min %s greater than max %s", formatNumber(*vm.Min), formatNumber(*vm.Max))
	}

	if vm.Dimension != nil {
		if _, ok := axes[*vm.Dimension]; !ok {
			v.add(errors.ErrCodeDanglingDimension, "visual map references dimension %d, which no axis declares", *vm.Dimension)
		}
	}

	checkRamp(v, "inRange", vm.InRange)
	checkRamp(v, "outOfRange", vm.OutOfRange)
}

// validateSeries checks row widths within the series and every row against
// the declared axes.
func validateSeries(v *validator, ref string, s Series, axes map[int]governed, required int) {
	checkAxes := len(axes) > 0
	width := -1

	for ri, row := range s.rows() {
		switch {
		case checkAxes && len(row) < required:
			v.add(errors.ErrCodeDimensionMismatch, "%s row %d has %d values, declared axes need %d", ref, ri, len(row), required)
		case width >= 0 && len(row) != width:
			v.add(errors.ErrCodeDimensionMismatch, "%s row %d has %d values, row 0 has %d", ref, ri, len(row), width)
		}
		if width < 0 {
			width = len(row)
		}

		for pos, val := range row {
			if !val.finite() {
				v.add(errors.ErrCodeNonFiniteValue, "%s row %d position %d is not a finite number", ref, ri, pos)
			}
		}

		if !checkAxes {
			continue
		}
		for pos, val := range row {
			if ax, ok := axes[pos]; ok {
				checkSlot(v, ref, ri, ax, val)
			}
		}
	}
}

// checkSlot verifies that val fits the kind of the axis governing its slot.
func checkSlot(v *validator, ref string, ri int, ax governed, val Value) {
	if !val.finite() {
		return
	}
	if ax.kind != AxisCategory {
		if s, isText := val.Str(); isText {
			v.add(errors.ErrCodeTypeMismatch, "%s row %d dimension %d holds text %q but %s is a value axis", ref, ri, ax.dim, s, ax.ref)
		}
		return
	}

	labels := ax.doc.Data
	if len(labels) == 0 {
		return // reported on the axis
	}
	if s, isText := val.Str(); isText {
		if ax.doc.labelIndex(s) < 0 {
			v.add(errors.ErrCodeUnknownCategory, "%s row %d dimension %d holds %q, which is not a label of %s", ref, ri, ax.dim, s, ax.ref)
		}
		return
	}
	f, _ := val.Float()
	if f != math.Trunc(f) || f < 0 || int(f) >= len(labels) {
		v.add(errors.ErrCodeUnknownCategory, "%s row %d dimension %d holds index %s outside the %d labels of %s", ref, ri, ax.dim, formatNumber(f), len(labels), ax.ref)
	}
}

func checkRamp(v *validator, name string, r *visualRangeDoc) {
	if r != nil && r.Color != nil && len(r.Color) < 2 {
		v.add(errors.ErrCodeInvalidColorRamp, "visual map %s color ramp has %d colors, need at least 2", name, len(r.Color))
	}
}

func checkFinite(v *validator, what string, f *float64) {
	if f != nil && (math.IsNaN(*f) || math.IsInf(*f, 0)) {
		v.add(errors.ErrCodeNonFiniteValue, "%s is not a finite number", what)
	}
}

func axisRef(i int, a *parallelAxisDoc) string {
	if a.Name != nil {
		return fmt.Sprintf("axis #%d %q", i, *a.Name)
	}
	return fmt.Sprintf("axis #%d", i)
}

func seriesRef(i int, s Series) string {
	if name := s.SeriesName(); name != "" {
		return fmt.Sprintf("series #%d %q", i, name)
	}
	return fmt.Sprintf("series #%d", i)
}
