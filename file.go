// One-shot file helpers.
//
// Each helper opens a channel, does all its work, and closes it in one
// call. The append helpers verify the schema fingerprint against the
// file's existing headers first, refusing to interleave rows of a
// different shape into a recording.
package typedcsv

import (
	"fmt"
	"os"
)

// SchemaOf reads just the two header rows of the file and returns the
// schema they declare.
func SchemaOf(path string) (Schema, error) {
	ch, err := New(path, ModeRead, Config{})
	if err != nil {
		return nil, err
	}
	if err := ch.Open(); err != nil {
		return nil, err
	}
	defer ch.Close()
	return ch.Schema(), nil
}

// ReadFileRows reads every row of the file in schema order.
func ReadFileRows(path string) (Schema, [][]Value, error) {
	ch, err := New(path, ModeRead, Config{})
	if err != nil {
		return nil, nil, err
	}
	if err := ch.Open(); err != nil {
		return nil, nil, err
	}
	defer ch.Close()

	rows, err := ch.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return ch.Schema(), rows, nil
}

// ReadFileRowMaps reads every row of the file keyed by column name.
func ReadFileRowMaps(path string) (Schema, []map[string]Value, error) {
	ch, err := New(path, ModeRead, Config{})
	if err != nil {
		return nil, nil, err
	}
	if err := ch.Open(); err != nil {
		return nil, nil, err
	}
	defer ch.Close()

	rows, err := ch.ReadAllMaps()
	if err != nil {
		return nil, nil, err
	}
	return ch.Schema(), rows, nil
}

// WriteFileRows creates or truncates the file, emits headers for the
// schema, and writes the rows in order.
func WriteFileRows(path string, schema Schema, rows [][]Value) error {
	ch, err := New(path, ModeWrite, Config{})
	if err != nil {
		return err
	}
	if err := ch.Open(); err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.SetSchema(schema); err != nil {
		return err
	}
	if err := ch.WriteHeaders(); err != nil {
		return err
	}
	for _, row := range rows {
		if err := ch.WriteRow(row); err != nil {
			return err
		}
	}
	return ch.Close()
}

// WriteFileRowMaps is WriteFileRows for name-keyed rows.
func WriteFileRowMaps(path string, schema Schema, rows []map[string]Value) error {
	ch, err := New(path, ModeWrite, Config{})
	if err != nil {
		return err
	}
	if err := ch.Open(); err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.SetSchema(schema); err != nil {
		return err
	}
	if err := ch.WriteHeaders(); err != nil {
		return err
	}
	for _, row := range rows {
		if err := ch.WriteRowMap(row); err != nil {
			return err
		}
	}
	return ch.Close()
}

// AppendFileRows appends rows to an existing recording. Headers are
// assumed to already be in the file and are never written; if the file
// has content, its declared schema must fingerprint-match the given one.
func AppendFileRows(path string, schema Schema, rows [][]Value) error {
	ch, err := openAppend(path, schema)
	if err != nil {
		return err
	}
	defer ch.Close()

	for _, row := range rows {
		if err := ch.WriteRow(row); err != nil {
			return err
		}
	}
	return ch.Close()
}

// AppendFileRowMaps is AppendFileRows for name-keyed rows.
func AppendFileRowMaps(path string, schema Schema, rows []map[string]Value) error {
	ch, err := openAppend(path, schema)
	if err != nil {
		return err
	}
	defer ch.Close()

	for _, row := range rows {
		if err := ch.WriteRowMap(row); err != nil {
			return err
		}
	}
	return ch.Close()
}

// openAppend verifies the schema against the file's headers, then
// returns an open append channel with the schema set.
func openAppend(path string, schema Schema) (*Channel, error) {
	ch, err := New(path, ModeAppend, Config{})
	if err != nil {
		return nil, err
	}

	if err := verifyAppendSchema(path, schema, ch.config.FingerprintAlgorithm); err != nil {
		return nil, err
	}
	if err := ch.Open(); err != nil {
		return nil, err
	}
	if err := ch.SetSchema(schema); err != nil {
		ch.Close()
		return nil, err
	}
	return ch, nil
}

// verifyAppendSchema compares fingerprints when the file already has
// content. A missing or empty file passes: there is nothing to clash
// with yet.
func verifyAppendSchema(path string, schema Schema, alg int) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil
	}

	existing, err := SchemaOf(path)
	if err != nil {
		return err
	}
	if existing.Fingerprint(alg) != schema.Fingerprint(alg) {
		return fmt.Errorf("%w: fingerprint %s does not match headers of %s (%s)",
			ErrSchema, schema.Fingerprint(alg), path, existing.Fingerprint(alg))
	}
	return nil
}
