package chart

// visitFunc receives one optional number of a record and its field path.
type visitFunc func(path string, f *float64)

func field(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func (d *textStyleDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	visit(field(p, "fontSize"), d.FontSize)
	visit(field(p, "lineHeight"), d.LineHeight)
}

func (d *lineStyleDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	visit(field(p, "width"), d.Width)
	visit(field(p, "opacity"), d.Opacity)
}

func (d *axisLineDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	d.LineStyle.numbers(field(p, "lineStyle"), visit)
}

func (d *axisTickDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	visit(field(p, "length"), d.Length)
	d.LineStyle.numbers(field(p, "lineStyle"), visit)
}

func (d *axisLabelDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	visit(field(p, "fontSize"), d.FontSize)
	visit(field(p, "rotate"), d.Rotate)
}

func (d *splitLineDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	d.LineStyle.numbers(field(p, "lineStyle"), visit)
}

func (d *legendDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	visit(field(p, "padding"), d.Padding)
	visit(field(p, "itemGap"), d.ItemGap)
	visit(field(p, "itemWidth"), d.ItemWidth)
	visit(field(p, "itemHeight"), d.ItemHeight)
	d.TextStyle.numbers(field(p, "textStyle"), visit)
}

func (d *tooltipDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	visit(field(p, "padding"), d.Padding)
	visit(field(p, "borderWidth"), d.BorderWidth)
	d.TextStyle.numbers(field(p, "textStyle"), visit)
}

func (d *parallelAxisDoc) numbers(p string, visit visitFunc) {
	visit(field(p, "min"), d.Min)
	visit(field(p, "max"), d.Max)
	visit(field(p, "nameGap"), d.NameGap)
	d.NameTextStyle.numbers(field(p, "nameTextStyle"), visit)
	d.AxisLine.numbers(field(p, "axisLine"), visit)
	d.AxisTick.numbers(field(p, "axisTick"), visit)
	d.AxisLabel.numbers(field(p, "axisLabel"), visit)
	d.SplitLine.numbers(field(p, "splitLine"), visit)
}

func (d *visualRangeDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	visit(field(p, "opacity"), d.Opacity)
}

func (d *visualMapDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	visit(field(p, "min"), d.Min)
	visit(field(p, "max"), d.Max)
	d.InRange.numbers(field(p, "inRange"), visit)
	d.OutOfRange.numbers(field(p, "outOfRange"), visit)
	d.TextStyle.numbers(field(p, "textStyle"), visit)
}

func (d *parallelAxisDefaultDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	visit(field(p, "nameGap"), d.NameGap)
	d.NameTextStyle.numbers(field(p, "nameTextStyle"), visit)
	d.AxisLine.numbers(field(p, "axisLine"), visit)
	d.AxisTick.numbers(field(p, "axisTick"), visit)
	d.AxisLabel.numbers(field(p, "axisLabel"), visit)
	d.SplitLine.numbers(field(p, "splitLine"), visit)
}

func (d *parallelDoc) numbers(p string, visit visitFunc) {
	if d == nil {
		return
	}
	d.ParallelAxisDefault.numbers(field(p, "parallelAxisDefault"), visit)
}

func (s *ParallelSeries) numbers(visit visitFunc) {
	visit("inactiveOpacity", s.doc.InactiveOpacity)
	visit("activeOpacity", s.doc.ActiveOpacity)
	s.doc.LineStyle.numbers("lineStyle", visit)
}

func (s *LineSeries) numbers(visit visitFunc) {
	visit("symbolSize", s.doc.SymbolSize)
	s.doc.LineStyle.numbers("lineStyle", visit)
}

func (s *ScatterSeries) numbers(visit visitFunc) {
	visit("symbolSize", s.doc.SymbolSize)
}
