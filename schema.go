// Schema declaration and the two-row self-describing header.
//
// The first row of a file lists column names and the second lists type
// tags. Header parsing and row parsing are independent steps that share
// the conversion table in convert.go.
package typedcsv

import (
	"fmt"
	"slices"
)

// FieldType is the declared type of a column.
type FieldType uint8

// Column types and their on-disk tags.
const (
	TypeTimestamp FieldType = iota + 1 // dt
	TypeFloat                          // f
	TypeText                           // s
)

// Tag returns the on-disk tag written in the second header row.
func (t FieldType) Tag() string {
	switch t {
	case TypeTimestamp:
		return "dt"
	case TypeFloat:
		return "f"
	case TypeText:
		return "s"
	default:
		return ""
	}
}

func (t FieldType) String() string {
	switch t {
	case TypeTimestamp:
		return "timestamp"
	case TypeFloat:
		return "float"
	case TypeText:
		return "text"
	default:
		return fmt.Sprintf("FieldType(%d)", uint8(t))
	}
}

// fieldTypeForTag maps an on-disk tag back to its FieldType.
func fieldTypeForTag(tag string) (FieldType, bool) {
	switch tag {
	case "dt":
		return TypeTimestamp, true
	case "f":
		return TypeFloat, true
	case "s":
		return TypeText, true
	default:
		return 0, false
	}
}

// Field is one column declaration.
type Field struct {
	Name string
	Type FieldType
}

// Schema is an ordered column declaration. Order fixes the on-disk
// column order for both header emission and row value positioning.
type Schema []Field

// NewSchema validates the given fields as a schema: at least one column,
// no duplicate names, no unknown types.
func NewSchema(fields ...Field) (Schema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no columns declared", ErrSchema)
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Type.Tag() == "" {
			return nil, fmt.Errorf("%w: column %q has unknown type %v", ErrSchema, f.Name, f.Type)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrSchema, f.Name)
		}
		seen[f.Name] = true
	}
	return Schema(slices.Clone(fields)), nil
}

// Len returns the number of columns.
func (s Schema) Len() int { return len(s) }

// Columns returns the column names in schema order.
func (s Schema) Columns() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Index returns the position of the named column, or -1 if not declared.
func (s Schema) Index(name string) int {
	for i, f := range s {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Type returns the declared type of the named column. The second result
// is false if the column is not declared.
func (s Schema) Type(name string) (FieldType, bool) {
	if i := s.Index(name); i >= 0 {
		return s[i].Type, true
	}
	return 0, false
}

// Equal reports whether two schemas declare the same columns with the
// same types in the same order.
func (s Schema) Equal(other Schema) bool {
	return slices.Equal(s, other)
}

// parseHeaders builds a Schema from the two header rows of a file.
func parseHeaders(names, tags []string) (Schema, error) {
	if len(names) != len(tags) {
		return nil, fmt.Errorf("%w: %d column names but %d type tags", ErrSchema, len(names), len(tags))
	}
	fields := make([]Field, 0, len(names))
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		ft, ok := fieldTypeForTag(tags[i])
		if !ok {
			return nil, fmt.Errorf("%w: unknown type tag %q for column %q", ErrSchema, tags[i], name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrSchema, name)
		}
		seen[name] = true
		fields = append(fields, Field{Name: name, Type: ft})
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no columns declared", ErrSchema)
	}
	return Schema(fields), nil
}

// headerRows serialises the schema as the two header rows, names then
// type tags, in schema order.
func (s Schema) headerRows() (names, tags []string) {
	names = make([]string, len(s))
	tags = make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
		tags[i] = f.Type.Tag()
	}
	return names, tags
}
