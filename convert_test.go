package typedcsv

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseFieldTimestamp(t *testing.T) {
	v, err := parseField("2020-03-24 15:00:00.200000", TypeTimestamp)
	if err != nil {
		t.Fatalf("parseField error: %v", err)
	}
	got, ok := v.Time()
	if !ok {
		t.Fatal("value is not a timestamp")
	}
	want := time.Date(2020, 3, 24, 15, 0, 0, 200000000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parsed = %v, want %v", got, want)
	}
}

func TestParseFieldTimestampShortFraction(t *testing.T) {
	// Older recordings carry four fractional digits.
	v, err := parseField("2020-03-24 15:00:00.2500", TypeTimestamp)
	if err != nil {
		t.Fatalf("parseField error: %v", err)
	}
	got, _ := v.Time()
	if got.Nanosecond() != 250000000 {
		t.Errorf("nanoseconds = %d, want 250000000", got.Nanosecond())
	}
}

func TestParseFieldTimestampNoFraction(t *testing.T) {
	_, err := parseField("2020-03-24 15:00:00", TypeTimestamp)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}

func TestParseFieldTimestampGarbage(t *testing.T) {
	_, err := parseField("yesterday", TypeTimestamp)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}

func TestParseFieldFloat(t *testing.T) {
	v, err := parseField("-7.3", TypeFloat)
	if err != nil {
		t.Fatalf("parseField error: %v", err)
	}
	f, ok := v.Float()
	if !ok || f != -7.3 {
		t.Errorf("parsed = %v, %v, want -7.3, true", f, ok)
	}
}

func TestParseFieldFloatGarbage(t *testing.T) {
	_, err := parseField("fast", TypeFloat)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}

func TestParseFieldText(t *testing.T) {
	v, err := parseField("Walk", TypeText)
	if err != nil {
		t.Fatalf("parseField error: %v", err)
	}
	s, ok := v.Text()
	if !ok || s != "Walk" {
		t.Errorf("parsed = %q, %v, want Walk, true", s, ok)
	}
}

func TestParseFieldEmptyIsMissing(t *testing.T) {
	for _, ft := range []FieldType{TypeTimestamp, TypeFloat, TypeText} {
		v, err := parseField("", ft)
		if err != nil {
			t.Fatalf("parseField(%v) error: %v", ft, err)
		}
		if !v.IsMissing() {
			t.Errorf("parseField(%v) of empty field is not missing", ft)
		}
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Time(time.Date(2020, 3, 24, 15, 0, 0, 250000000, time.UTC)), "2020-03-24 15:00:00.250000"},
		{Float(0.7), "0.7"},
		{Float(-7.3), "-7.3"},
		{Text("Example"), "Example"},
		{Missing, ""},
	}
	for _, tc := range cases {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestParseRowArityMismatch(t *testing.T) {
	schema, _ := NewSchema(
		Field{Name: "x", Type: TypeFloat},
		Field{Name: "y", Type: TypeFloat},
	)
	_, err := parseRow([]string{"1.0"}, schema)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}

func TestParseRowNamesFailingColumn(t *testing.T) {
	schema, _ := NewSchema(
		Field{Name: "x", Type: TypeFloat},
		Field{Name: "y", Type: TypeFloat},
	)
	_, err := parseRow([]string{"1.0", "wat"}, schema)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("error = %v, want ErrFormat", err)
	}
	if want := `column "y"`; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not mention %s", err, want)
	}
}

func TestFormatRowPadsAndTruncates(t *testing.T) {
	schema, _ := NewSchema(
		Field{Name: "a", Type: TypeFloat},
		Field{Name: "b", Type: TypeFloat},
		Field{Name: "c", Type: TypeText},
	)

	// Short input pads trailing columns as missing.
	got := formatRow([]Value{Float(1.5)}, schema)
	if len(got) != 3 || got[0] != "1.5" || got[1] != "" || got[2] != "" {
		t.Errorf("padded row = %v", got)
	}

	// Long input drops values beyond the schema arity.
	got = formatRow([]Value{Float(1.5), Float(2.5), Text("x"), Text("extra")}, schema)
	if len(got) != 3 || got[2] != "x" {
		t.Errorf("truncated row = %v", got)
	}
}
