// JSON codec for schemas and values.
//
// Downstream consumers (visualisers, annotation services) talk JSON, not
// CSV. A schema serialises as an ordered array of {name, type} objects
// so column order survives the round trip; a value serialises as null
// (missing), a formatted timestamp string, a number, or a string.
package typedcsv

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalJSON encodes the type as its on-disk tag.
func (t FieldType) MarshalJSON() ([]byte, error) {
	tag := t.Tag()
	if tag == "" {
		return nil, fmt.Errorf("%w: unknown type %v", ErrSchema, t)
	}
	return json.Marshal(tag)
}

// UnmarshalJSON decodes an on-disk tag.
func (t *FieldType) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	ft, ok := fieldTypeForTag(tag)
	if !ok {
		return fmt.Errorf("%w: unknown type tag %q", ErrSchema, tag)
	}
	*t = ft
	return nil
}

// fieldJSON is the wire shape of one column declaration.
type fieldJSON struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
}

// MarshalJSON encodes the schema as an ordered array of column objects.
func (s Schema) MarshalJSON() ([]byte, error) {
	out := make([]fieldJSON, len(s))
	for i, f := range s {
		out[i] = fieldJSON{Name: f.Name, Type: f.Type}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes and validates an ordered array of column
// objects, applying the same rules as header parsing.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var raw []fieldJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fields := make([]Field, len(raw))
	for i, f := range raw {
		fields[i] = Field{Name: f.Name, Type: f.Type}
	}
	schema, err := NewSchema(fields...)
	if err != nil {
		return err
	}
	*s = schema
	return nil
}

// MarshalJSON encodes missing as null, timestamps as formatted strings,
// floats as numbers, and text as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindTime:
		return json.Marshal(v.t.Format(TimeLayout))
	case KindFloat:
		return json.Marshal(v.f)
	case KindText:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes null as missing and numbers as floats. Strings
// that parse as timestamps become timestamps; any other string is text.
//
// The string heuristic is lossy by design: a text value shaped exactly
// like a timestamp decodes as KindTime, since JSON carries no kind tag.
// Callers that must preserve the declared kind should decode against a
// Schema and re-key by column type instead of relying on Value alone.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Missing
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = Float(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: value must be null, number or string", ErrFormat)
	}
	if parsed, err := parseField(s, TypeTimestamp); err == nil && !parsed.IsMissing() {
		*v = parsed
		return nil
	}
	*v = Text(s)
	return nil
}
