// Package typedcsv provides a typed, schema-driven data layer over CSV
// files of sensor and annotation records. Files are self-describing: the
// first row lists column names and the second row lists their type tags
// (dt, f, s). Every value crossing the file boundary is converted between
// its on-disk text form and a typed in-memory Value.
//
// A Channel wraps one file with a single sequential cursor and exposes
// row access in two shapes, ordered by schema or keyed by column name,
// for both reading and writing. Files ending in .gz or .zst are
// transparently compressed.
package typedcsv

import "errors"

// Sentinel errors for programmatic handling. Callers use errors.Is to
// distinguish misuse (ErrState), bad header declarations (ErrSchema),
// and unparseable data rows (ErrFormat). End of data is io.EOF, never
// one of these.
var (
	ErrState          = errors.New("operation not valid in current channel state")
	ErrSchema         = errors.New("invalid schema")
	ErrFormat         = errors.New("malformed row")
	ErrMissingHeaders = errors.New("file ends before two header rows")
)
