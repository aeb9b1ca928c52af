package io

import (
	"fmt"

	"github.com/matzehuels/chartopt/pkg/chart"
	"github.com/matzehuels/chartopt/pkg/errors"
)

// set applies f to *p when the definition wrote the key.
func set[T, R any](p *T, f func(T) R) {
	if p != nil {
		f(*p)
	}
}

// Build assembles the chart described by d, taking series rows from ds.
//
// Build reports structural problems of the definition itself: unknown axis
// or series types, missing or ambiguous row sources, malformed inline rows.
// Chart invariants such as duplicate dimensions are left to Finalize so that
// they are reported together.
func (d *Definition) Build(ds Dataset) (*chart.Chart, error) {
	c := chart.New()
	set(d.BackgroundColor, c.BackgroundColor)
	if d.Legend != nil {
		c.Legend(d.Legend.build())
	}
	if d.Tooltip != nil {
		c.Tooltip(d.Tooltip.build())
	}

	for i := range d.Axes {
		a, err := d.Axes[i].build()
		if err != nil {
			return nil, fmt.Errorf("axis #%d: %w", i, err)
		}
		c.ParallelAxis(a)
	}

	if d.VisualMap != nil {
		c.VisualMap(d.VisualMap.build())
	}
	if d.Parallel != nil {
		p, err := d.Parallel.build()
		if err != nil {
			return nil, fmt.Errorf("parallel: %w", err)
		}
		c.Parallel(p)
	}

	for i := range d.Series {
		s, err := d.Series[i].build(ds)
		if err != nil {
			return nil, fmt.Errorf("series #%d: %w", i, err)
		}
		c.Series(s)
	}
	return c, nil
}

func axisType(s string) (chart.AxisType, error) {
	switch t := chart.AxisType(s); t {
	case chart.AxisValue, chart.AxisCategory:
		return t, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown axis type %q (want value or category)", s)
}

func (d *TextStyleDef) build() *chart.TextStyle {
	if d == nil {
		return nil
	}
	ts := chart.NewTextStyle()
	set(d.Color, ts.Color)
	set(d.FontStyle, ts.FontStyle)
	set(d.FontWeight, ts.FontWeight)
	set(d.FontFamily, ts.FontFamily)
	set(d.FontSize, ts.FontSize)
	set(d.LineHeight, ts.LineHeight)
	return ts
}

func (d *LineStyleDef) build() *chart.LineStyle {
	if d == nil {
		return nil
	}
	ls := chart.NewLineStyle()
	set(d.Color, ls.Color)
	set(d.Width, ls.Width)
	set(d.Type, ls.Type)
	set(d.Opacity, ls.Opacity)
	return ls
}

func (d *AxisLineDef) build() *chart.AxisLine {
	if d == nil {
		return nil
	}
	l := chart.NewAxisLine()
	set(d.Show, l.Show)
	if d.LineStyle != nil {
		l.LineStyle(d.LineStyle.build())
	}
	return l
}

func (d *AxisTickDef) build() *chart.AxisTick {
	if d == nil {
		return nil
	}
	t := chart.NewAxisTick()
	set(d.Show, t.Show)
	set(d.Length, t.Length)
	if d.LineStyle != nil {
		t.LineStyle(d.LineStyle.build())
	}
	return t
}

func (d *AxisLabelDef) build() *chart.AxisLabel {
	if d == nil {
		return nil
	}
	l := chart.NewAxisLabel()
	set(d.Show, l.Show)
	set(d.Color, l.Color)
	set(d.FontSize, l.FontSize)
	set(d.Formatter, l.Formatter)
	set(d.Rotate, l.Rotate)
	return l
}

func (d *SplitLineDef) build() *chart.SplitLine {
	if d == nil {
		return nil
	}
	s := chart.NewSplitLine()
	set(d.Show, s.Show)
	if d.LineStyle != nil {
		s.LineStyle(d.LineStyle.build())
	}
	return s
}

func (d *LegendDef) build() *chart.Legend {
	l := chart.NewLegend()
	set(d.Show, l.Show)
	set(d.Left, l.Left)
	set(d.Top, l.Top)
	set(d.Right, l.Right)
	set(d.Bottom, l.Bottom)
	set(d.Orient, l.Orient)
	set(d.Padding, l.Padding)
	set(d.ItemGap, l.ItemGap)
	set(d.ItemWidth, l.ItemWidth)
	set(d.ItemHeight, l.ItemHeight)
	if d.TextStyle != nil {
		l.TextStyle(d.TextStyle.build())
	}
	if d.Data != nil {
		l.Data(d.Data...)
	}
	return l
}

func (d *TooltipDef) build() *chart.Tooltip {
	t := chart.NewTooltip()
	set(d.Show, t.Show)
	set(d.Trigger, t.Trigger)
	set(d.Formatter, t.Formatter)
	set(d.Padding, t.Padding)
	set(d.BackgroundColor, t.BackgroundColor)
	set(d.BorderColor, t.BorderColor)
	set(d.BorderWidth, t.BorderWidth)
	if d.TextStyle != nil {
		t.TextStyle(d.TextStyle.build())
	}
	return t
}

func (d *AxisDef) build() (*chart.ParallelAxis, error) {
	a := chart.NewParallelAxis()
	if d.Type != nil {
		t, err := axisType(*d.Type)
		if err != nil {
			return nil, err
		}
		a.Type(t)
	}
	set(d.Dim, a.Dim)
	set(d.Name, a.Name)
	set(d.Inverse, a.Inverse)
	set(d.Min, a.Min)
	set(d.Max, a.Max)
	set(d.NameLocation, a.NameLocation)
	set(d.NameGap, a.NameGap)
	if d.NameTextStyle != nil {
		a.NameTextStyle(d.NameTextStyle.build())
	}
	if d.AxisLine != nil {
		a.AxisLine(d.AxisLine.build())
	}
	if d.AxisTick != nil {
		a.AxisTick(d.AxisTick.build())
	}
	if d.AxisLabel != nil {
		a.AxisLabel(d.AxisLabel.build())
	}
	if d.SplitLine != nil {
		a.SplitLine(d.SplitLine.build())
	}
	if d.Data != nil {
		a.Data(d.Data...)
	}
	return a, nil
}

func (d *VisualRangeDef) build() *chart.VisualRange {
	r := chart.NewVisualRange()
	if d.Color != nil {
		r.Color(d.Color...)
	}
	set(d.Opacity, r.Opacity)
	return r
}

func (d *VisualMapDef) build() *chart.VisualMap {
	v := chart.NewVisualMap()
	set(d.Type, v.Type)
	set(d.Show, v.Show)
	set(d.Min, v.Min)
	set(d.Max, v.Max)
	set(d.Dimension, v.Dimension)
	set(d.Calculable, v.Calculable)
	set(d.Orient, v.Orient)
	set(d.Left, v.Left)
	set(d.Top, v.Top)
	set(d.Right, v.Right)
	set(d.Bottom, v.Bottom)
	if d.InRange != nil {
		v.InRange(d.InRange.build())
	}
	if d.OutOfRange != nil {
		v.OutOfRange(d.OutOfRange.build())
	}
	if d.TextStyle != nil {
		v.TextStyle(d.TextStyle.build())
	}
	return v
}

func (d *AxisDefaultDef) build() (*chart.ParallelAxisDefault, error) {
	a := chart.NewParallelAxisDefault()
	if d.Type != nil {
		t, err := axisType(*d.Type)
		if err != nil {
			return nil, err
		}
		a.Type(t)
	}
	set(d.Name, a.Name)
	set(d.NameLocation, a.NameLocation)
	set(d.NameGap, a.NameGap)
	if d.NameTextStyle != nil {
		a.NameTextStyle(d.NameTextStyle.build())
	}
	if d.AxisLine != nil {
		a.AxisLine(d.AxisLine.build())
	}
	if d.AxisTick != nil {
		a.AxisTick(d.AxisTick.build())
	}
	if d.AxisLabel != nil {
		a.AxisLabel(d.AxisLabel.build())
	}
	if d.SplitLine != nil {
		a.SplitLine(d.SplitLine.build())
	}
	return a, nil
}

func (d *ParallelDef) build() (*chart.ParallelCoordinate, error) {
	p := chart.NewParallelCoordinate()
	set(d.Left, p.Left)
	set(d.Top, p.Top)
	set(d.Right, p.Right)
	set(d.Bottom, p.Bottom)
	set(d.Width, p.Width)
	set(d.Height, p.Height)
	set(d.Layout, p.Layout)
	if d.AxisDefault != nil {
		def, err := d.AxisDefault.build()
		if err != nil {
			return nil, err
		}
		p.ParallelAxisDefault(def)
	}
	return p, nil
}

// rows resolves the row source of a series.
func (d *SeriesDef) rows(ds Dataset) ([]chart.Row, error) {
	switch {
	case d.Data != "" && d.Rows != nil:
		return nil, errors.New(errors.ErrCodeInvalidInput, "both data and rows are set")
	case d.Data != "":
		if err := errors.ValidateDataKey(d.Data); err != nil {
			return nil, err
		}
		rows, ok := ds[d.Data]
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "dataset has no rows named %q", d.Data)
		}
		return rows, nil
	case d.Rows != nil:
		rows := make([]chart.Row, len(d.Rows))
		for i, raw := range d.Rows {
			row, err := decodeRow(raw)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "row %d", i)
			}
			rows[i] = row
		}
		return rows, nil
	}
	return nil, nil
}

func (d *SeriesDef) build(ds Dataset) (chart.Series, error) {
	rows, err := d.rows(ds)
	if err != nil {
		return nil, err
	}

	switch chart.SeriesKind(d.Type) {
	case chart.KindParallel, "":
		s := chart.NewParallel()
		set(d.Name, s.Name)
		set(d.Smooth, s.Smooth)
		set(d.InactiveOpacity, s.InactiveOpacity)
		set(d.ActiveOpacity, s.ActiveOpacity)
		if d.LineStyle != nil {
			s.LineStyle(d.LineStyle.build())
		}
		if rows != nil {
			s.Data(rows)
		}
		return s, nil
	case chart.KindLine:
		s := chart.NewLine()
		set(d.Name, s.Name)
		set(d.Smooth, s.Smooth)
		set(d.Symbol, s.Symbol)
		set(d.SymbolSize, s.SymbolSize)
		if d.LineStyle != nil {
			s.LineStyle(d.LineStyle.build())
		}
		if rows != nil {
			s.Data(rows)
		}
		return s, nil
	case chart.KindScatter:
		s := chart.NewScatter()
		set(d.Name, s.Name)
		set(d.Symbol, s.Symbol)
		set(d.SymbolSize, s.SymbolSize)
		if rows != nil {
			s.Data(rows)
		}
		return s, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unknown series type %q (want parallel, line or scatter)", d.Type)
}
