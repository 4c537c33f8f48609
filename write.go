// Schema declaration and row writing for write and append channels.
//
// A fresh file needs SetSchema then WriteHeaders before rows; an append
// channel may skip WriteHeaders since the file already carries headers.
// Values are rendered by their own variant with no check against the
// declared column type, matching the read side's trust in the headers.
package typedcsv

import (
	"fmt"
	"io"
)

// SetSchema declares the column layout for a write or append channel.
// It can be called exactly once, before any headers or rows are written.
func (c *Channel) SetSchema(schema Schema) error {
	if c.state != stateAwaitSchema {
		if c.mode == ModeRead {
			return fmt.Errorf("%w: schema of a read channel comes from the file headers", ErrState)
		}
		return fmt.Errorf("%w: schema can be set once, on an open write or append channel", ErrState)
	}

	s, err := NewSchema(schema...)
	if err != nil {
		return err
	}
	c.schema = s
	c.state = stateAwaitEmit
	return nil
}

// WriteHeaders emits the two header rows in schema order. It can be
// called exactly once, after SetSchema. Append channels writing to a
// file that already has headers skip this and write rows directly.
func (c *Channel) WriteHeaders() error {
	if c.state != stateAwaitEmit {
		return fmt.Errorf("%w: headers are written once, after SetSchema", ErrState)
	}

	names, tags := c.schema.headerRows()
	if err := c.writeRecord(names); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	if err := c.writeRecord(tags); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	c.state = stateWriting
	return nil
}

// WriteRow appends one data row from values ordered by schema. Values
// beyond the schema arity are ignored and absent trailing values are
// persisted as missing.
func (c *Channel) WriteRow(vals []Value) error {
	switch c.state {
	case stateWriting:
	case stateAwaitEmit:
		if c.mode != ModeAppend {
			return fmt.Errorf("%w: write headers before rows on a fresh file", ErrState)
		}
		c.state = stateWriting // headers already live in the appended file
	default:
		return fmt.Errorf("%w: writing rows requires a write or append channel with a schema", ErrState)
	}

	if err := c.writeRecord(formatRow(vals, c.schema)); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}

// writeRecord emits one record and flushes it. A record whose only
// field is empty is written as a quoted empty field rather than a blank
// line: encoding/csv readers skip blank lines, so an all-missing row
// under a single-column schema would otherwise vanish on read.
func (c *Channel) writeRecord(record []string) error {
	if len(record) == 1 && record[0] == "" {
		// The csv writer flushes after every record, so its buffer is
		// empty here and the raw write cannot reorder against it.
		_, err := io.WriteString(c.enc, "\"\"\n")
		return err
	}
	if err := c.writer.Write(record); err != nil {
		return err
	}
	c.writer.Flush()
	return c.writer.Error()
}

// WriteRowMap appends one data row from a name-keyed map. Keys that are
// not schema columns are ignored; schema columns absent from the map
// are persisted as missing.
func (c *Channel) WriteRowMap(vals map[string]Value) error {
	row := make([]Value, len(c.schema))
	for i, f := range c.schema {
		if v, ok := vals[f.Name]; ok {
			row[i] = v
		}
	}
	return c.WriteRow(row)
}
