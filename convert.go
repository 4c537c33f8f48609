// Conversion between on-disk text and typed values.
//
// The same table serves both directions: parseField on read, and
// Value.String (value.go) on write. An empty field always means the
// missing marker regardless of declared type.
package typedcsv

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the fixed timestamp format used in data rows. Output
// always carries six fractional digits; input may carry fewer.
const TimeLayout = "2006-01-02 15:04:05.000000"

// parseTimeLayout accepts a variable-length fraction on input. The
// fraction itself is still mandatory; parseField checks for the dot.
const parseTimeLayout = "2006-01-02 15:04:05.999999"

// parseField converts one text field to a typed value according to the
// declared column type.
func parseField(text string, ft FieldType) (Value, error) {
	if text == "" {
		return Missing, nil
	}
	switch ft {
	case TypeTimestamp:
		t, err := time.Parse(parseTimeLayout, text)
		if err != nil || !strings.Contains(text, ".") {
			return Missing, fmt.Errorf("%w: bad timestamp %q", ErrFormat, text)
		}
		return Time(t), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Missing, fmt.Errorf("%w: bad float %q", ErrFormat, text)
		}
		return Float(f), nil
	default:
		return Text(text), nil
	}
}

// parseRow converts a full record of text fields against the schema.
// Arity must match exactly; there is no partial-row recovery.
func parseRow(record []string, schema Schema) ([]Value, error) {
	if len(record) != len(schema) {
		return nil, fmt.Errorf("%w: %d fields but schema has %d columns", ErrFormat, len(record), len(schema))
	}
	row := make([]Value, len(record))
	for i, text := range record {
		v, err := parseField(text, schema[i].Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", schema[i].Name, err)
		}
		row[i] = v
	}
	return row, nil
}

// formatRow renders values in schema order. Extra values are dropped and
// absent trailing values render as missing. Values are rendered by their
// own variant; no check is made against the declared column type.
func formatRow(vals []Value, schema Schema) []string {
	record := make([]string, len(schema))
	for i := range schema {
		if i < len(vals) {
			record[i] = vals[i].String()
		}
	}
	return record
}
