// Row reading in both shapes over the shared cursor.
//
// All read paths go through ReadRow, so the ordered readers, the keyed
// readers, the bulk readers, and the iterators advance one cursor and
// exhaust one another. End of data is io.EOF and stays io.EOF on
// repeated calls; a malformed row is sticky and poisons further reads
// rather than silently resyncing on the next line.
package typedcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
)

// ReadRow returns the next data row with values ordered by schema.
// Empty fields become the missing marker. At end of data it returns
// io.EOF.
func (c *Channel) ReadRow() ([]Value, error) {
	switch c.state {
	case stateReading:
	case stateExhausted:
		return nil, io.EOF
	default:
		return nil, fmt.Errorf("%w: reading rows requires an open read channel", ErrState)
	}
	if c.readErr != nil {
		return nil, c.readErr
	}

	record, err := c.reader.Read()
	if err != nil {
		if err == io.EOF {
			c.state = stateExhausted
			return nil, io.EOF
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			c.readErr = fmt.Errorf("%w: %v", ErrFormat, err)
		} else {
			c.readErr = fmt.Errorf("read row: %w", err)
		}
		return nil, c.readErr
	}

	row, err := parseRow(record, c.schema)
	if err != nil {
		c.readErr = err
		return nil, err
	}
	return row, nil
}

// ReadRowMap returns the next data row keyed by column name. It shares
// the cursor with ReadRow.
func (c *Channel) ReadRowMap() (map[string]Value, error) {
	row, err := c.ReadRow()
	if err != nil {
		return nil, err
	}
	return c.rowMap(row), nil
}

// ReadAll drains the remaining rows from the current cursor position.
// Rows already consumed are not revisited.
func (c *Channel) ReadAll() ([][]Value, error) {
	var rows [][]Value
	for {
		row, err := c.ReadRow()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// ReadAllMaps drains the remaining rows as name-keyed maps.
func (c *Channel) ReadAllMaps() ([]map[string]Value, error) {
	var rows []map[string]Value
	for {
		row, err := c.ReadRowMap()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// Rows yields the remaining rows lazily in schema order. The sequence
// is single-pass and forward-only; it consumes the same cursor as the
// other readers, so breaking out and resuming with ReadRow continues
// where the loop stopped.
func (c *Channel) Rows() iter.Seq2[[]Value, error] {
	return func(yield func([]Value, error) bool) {
		for {
			row, err := c.ReadRow()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// RowMaps yields the remaining rows lazily as name-keyed maps, over the
// same cursor as Rows.
func (c *Channel) RowMaps() iter.Seq2[map[string]Value, error] {
	return func(yield func(map[string]Value, error) bool) {
		for {
			row, err := c.ReadRowMap()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// rowMap re-keys an ordered row by column name.
func (c *Channel) rowMap(row []Value) map[string]Value {
	m := make(map[string]Value, len(c.schema))
	for i, f := range c.schema {
		m[f.Name] = row[i]
	}
	return m
}
