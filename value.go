// Typed cell values.
//
// Value is a tagged variant covering the three column types plus an
// explicit missing marker. Missing is distinct from the empty string, so
// a text column can tell "no value recorded" apart from "recorded as
// empty" in memory even though both serialise to a zero-length field.
package typedcsv

import (
	"strconv"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind uint8

// Value variants.
const (
	KindMissing Kind = iota // no value recorded
	KindTime                // timestamp
	KindFloat               // floating point
	KindText                // plain text
)

// Missing is the marker persisted as a zero-length field.
var Missing = Value{}

// Value is one typed cell of a row.
type Value struct {
	kind Kind
	t    time.Time
	f    float64
	s    string
}

// Time returns a timestamp Value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a text Value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is the missing marker.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Time returns the timestamp held by v. The second result is false when
// v holds a different variant.
func (v Value) Time() (time.Time, bool) { return v.t, v.kind == KindTime }

// Float returns the floating-point number held by v. The second result
// is false when v holds a different variant.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Text returns the text held by v. The second result is false when v
// holds a different variant.
func (v Value) Text() (string, bool) { return v.s, v.kind == KindText }

// String renders v the way it would appear in a data row. Missing
// renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindTime:
		return v.t.Format(TimeLayout)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	default:
		return ""
	}
}
