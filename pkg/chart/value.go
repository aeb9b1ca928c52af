package chart

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind identifies which case of a [Value] is populated.
type Kind uint8

const (
	// KindNumber marks a numeric value.
	KindNumber Kind = iota
	// KindText marks a text value.
	KindText
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k == KindText {
		return "text"
	}
	return "number"
}

// Value is a scalar inside a data row: either a number or a text.
// The zero Value is the number 0.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int returns a numeric value from an integer.
func Int(i int) Value { return Value{kind: KindNumber, num: float64(i)} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Kind reports which case v holds.
func (v Value) Kind() Kind { return v.kind }

// IsText reports whether v holds text.
func (v Value) IsText() bool { return v.kind == KindText }

// Float returns the numeric payload. ok is false for text values.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Str returns the text payload. ok is false for numeric values.
func (v Value) Str() (s string, ok bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// String renders v the way it appears in the serialized document.
func (v Value) String() string {
	if v.kind == KindText {
		b, _ := encode(v.text)
		return string(b)
	}
	return formatNumber(v.num)
}

// finite reports whether v can be serialized.
func (v Value) finite() bool {
	return v.kind == KindText || (!math.IsNaN(v.num) && !math.IsInf(v.num, 0))
}

// MarshalJSON emits numbers in their shortest form and text with only the
// JSON-syntactic characters escaped. Integral numbers below 1e21 in
// magnitude have no fractional part; larger ones and magnitudes below 1e-6
// use exponent notation. Negative zero stays -0.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindText {
		return encode(v.text)
	}
	return json.Marshal(v.num)
}

// Row is one ordered data tuple of a series.
type Row []Value

// Nums builds a row of numeric values.
func Nums(fs ...float64) Row {
	r := make(Row, len(fs))
	for i, f := range fs {
		r[i] = Number(f)
	}
	return r
}

// clone returns a copy of r that shares no backing array.
func (r Row) clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

func formatNumber(f float64) string {
	b, err := json.Marshal(f)
	if err != nil {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return string(b)
}
