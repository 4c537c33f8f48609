package typedcsv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteAndReadFileRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.csv")
	schema, _ := NewSchema(
		Field{Name: "stamp", Type: TypeTimestamp},
		Field{Name: "x", Type: TypeFloat},
	)
	stamp := time.Date(2022, 1, 10, 8, 0, 0, 0, time.UTC)
	rows := [][]Value{
		{Time(stamp), Float(0.1)},
		{Time(stamp.Add(time.Second)), Float(0.2)},
	}

	if err := WriteFileRows(path, schema, rows); err != nil {
		t.Fatalf("WriteFileRows error: %v", err)
	}

	gotSchema, gotRows, err := ReadFileRows(path)
	if err != nil {
		t.Fatalf("ReadFileRows error: %v", err)
	}
	if !gotSchema.Equal(schema) {
		t.Errorf("schema = %v, want %v", gotSchema, schema)
	}
	if len(gotRows) != 2 {
		t.Fatalf("rows = %d, want 2", len(gotRows))
	}

	_, gotMaps, err := ReadFileRowMaps(path)
	if err != nil {
		t.Fatalf("ReadFileRowMaps error: %v", err)
	}
	if x, _ := gotMaps[1]["x"].Float(); x != 0.2 {
		t.Errorf("x = %v, want 0.2", x)
	}
}

func TestSchemaOfReadsOnlyHeaders(t *testing.T) {
	path := writeSample(t, "sample.csv", sampleFile)

	schema, err := SchemaOf(path)
	if err != nil {
		t.Fatalf("SchemaOf error: %v", err)
	}
	if schema.Len() != 4 {
		t.Errorf("columns = %d, want 4", schema.Len())
	}
	if ft, _ := schema.Type("stamp"); ft != TypeTimestamp {
		t.Errorf("stamp type = %v, want TypeTimestamp", ft)
	}
}

func TestAppendFileRowsMatchingSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.csv")
	schema, _ := NewSchema(
		Field{Name: "stamp", Type: TypeTimestamp},
		Field{Name: "x", Type: TypeFloat},
	)
	stamp := time.Date(2022, 1, 10, 8, 0, 0, 0, time.UTC)

	if err := WriteFileRows(path, schema, [][]Value{{Time(stamp), Float(0.1)}}); err != nil {
		t.Fatalf("WriteFileRows error: %v", err)
	}
	if err := AppendFileRows(path, schema, [][]Value{{Time(stamp.Add(time.Second)), Float(0.2)}}); err != nil {
		t.Fatalf("AppendFileRows error: %v", err)
	}

	_, rows, err := ReadFileRows(path)
	if err != nil {
		t.Fatalf("ReadFileRows error: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("rows = %d, want 2", len(rows))
	}
}

func TestAppendFileRowsSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.csv")
	onDisk, _ := NewSchema(
		Field{Name: "stamp", Type: TypeTimestamp},
		Field{Name: "x", Type: TypeFloat},
	)
	other, _ := NewSchema(
		Field{Name: "stamp", Type: TypeTimestamp},
		Field{Name: "x", Type: TypeText}, // type drifted
	)

	if err := WriteFileRows(path, onDisk, nil); err != nil {
		t.Fatalf("WriteFileRows error: %v", err)
	}
	err := AppendFileRows(path, other, [][]Value{{Missing, Text("1")}})
	if !errors.Is(err, ErrSchema) {
		t.Errorf("append with drifted schema = %v, want ErrSchema", err)
	}
}

func TestAppendFileRowMaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.csv")
	schema, _ := NewSchema(
		Field{Name: "stamp", Type: TypeTimestamp},
		Field{Name: "activity_query", Type: TypeText},
	)
	stamp := time.Date(2022, 1, 10, 8, 0, 0, 0, time.UTC)

	if err := WriteFileRowMaps(path, schema, []map[string]Value{
		{"stamp": Time(stamp), "activity_query": Text("Walk")},
	}); err != nil {
		t.Fatalf("WriteFileRowMaps error: %v", err)
	}
	if err := AppendFileRowMaps(path, schema, []map[string]Value{
		{"stamp": Time(stamp.Add(time.Minute))}, // tag missing
	}); err != nil {
		t.Fatalf("AppendFileRowMaps error: %v", err)
	}

	_, rows, err := ReadFileRowMaps(path)
	if err != nil {
		t.Fatalf("ReadFileRowMaps error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if !rows[1]["activity_query"].IsMissing() {
		t.Error("appended tag is not missing")
	}
}

func TestAppendFileRowsToMissingFile(t *testing.T) {
	// Appending creates the file but never writes headers; that is the
	// caller's contract, matching append semantics on the channel.
	path := filepath.Join(t.TempDir(), "new.csv")
	schema, _ := NewSchema(Field{Name: "x", Type: TypeFloat})

	if err := AppendFileRows(path, schema, [][]Value{{Float(1.5)}}); err != nil {
		t.Fatalf("AppendFileRows error: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(raw) != "1.5\n" {
		t.Errorf("file contents = %q, want %q", raw, "1.5\n")
	}
}
