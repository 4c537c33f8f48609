// Channel type and lifecycle operations.
//
// A Channel owns exactly one file and one sequential cursor over it. The
// legal call sequence is tracked as an explicit state machine so that
// misuse (writing before the schema is set, reading a write channel)
// fails with ErrState instead of corrupting the file. Channels are not
// safe for concurrent use; callers needing that must serialise
// externally or open separate channels over separate files.
package typedcsv

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// Mode selects how a channel interacts with its file.
type Mode int

// Access modes.
const (
	ModeRead   Mode = iota + 1 // parse headers, stream rows out
	ModeWrite                  // create or truncate, stream rows in
	ModeAppend                 // position at end, stream rows in
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeAppend:
		return "append"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// state tracks the channel's position in its lifecycle.
type state uint8

const (
	stateClosed       state = iota
	stateAwaitHeaders       // read: open, header rows not yet parsed
	stateReading            // read: streaming data rows
	stateExhausted          // read: end of data reached
	stateAwaitSchema        // write/append: schema not yet set
	stateAwaitEmit          // write/append: schema set, headers not yet written
	stateWriting            // write/append: streaming data rows
)

// Config holds channel options. The zero value is usable.
type Config struct {
	ReadBuffer           int // Buffer size for reading (default 64KB)
	Compression          int // CompressAuto/None/Gzip/Zstd (default by extension)
	FingerprintAlgorithm int // Schema fingerprint algorithm (default AlgXXHash3)
}

// Channel is a typed sequential cursor over one CSV file.
type Channel struct {
	path   string
	mode   Mode
	config Config
	state  state

	file   *os.File
	dec    io.ReadCloser  // decompressor (read mode)
	enc    io.WriteCloser // compressor (write/append mode)
	reader *csv.Reader
	writer *csv.Writer

	schema  Schema
	readErr error // sticky: a malformed row poisons further reads
}

// New creates a channel for the given path and mode. The file is not
// touched until Open.
func New(path string, mode Mode, config Config) (*Channel, error) {
	switch mode {
	case ModeRead, ModeWrite, ModeAppend:
	default:
		return nil, fmt.Errorf("invalid mode %d: must be ModeRead, ModeWrite or ModeAppend", int(mode))
	}

	// Default config values
	if config.ReadBuffer == 0 {
		config.ReadBuffer = 64 * 1024
	}
	if config.FingerprintAlgorithm == 0 {
		config.FingerprintAlgorithm = AlgXXHash3
	}

	return &Channel{path: path, mode: mode, config: config}, nil
}

// Open acquires the file. In read mode the two header rows are parsed
// into the schema before Open returns; in write and append modes the
// schema must be supplied with SetSchema before any rows are written.
func (c *Channel) Open() error {
	if c.state != stateClosed {
		return fmt.Errorf("%w: channel already open", ErrState)
	}

	codec := codecFor(c.path, c.config.Compression)

	if c.mode == ModeRead {
		f, err := os.Open(c.path)
		if err != nil {
			return fmt.Errorf("open %s: %w", c.path, err)
		}
		dec, err := decompressor(bufio.NewReaderSize(f, c.config.ReadBuffer), codec)
		if err != nil {
			f.Close()
			return fmt.Errorf("open %s: %w", c.path, err)
		}
		c.file = f
		c.dec = dec
		c.reader = csv.NewReader(dec)
		c.reader.FieldsPerRecord = -1 // arity is checked against the schema per row

		c.state = stateAwaitHeaders
		if err := c.readHeaders(); err != nil {
			c.Close()
			return err
		}
		c.state = stateReading
		return nil
	}

	var f *os.File
	var err error
	if c.mode == ModeWrite {
		f, err = os.Create(c.path)
	} else {
		f, err = os.OpenFile(c.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", c.path, err)
	}

	enc, err := compressor(f, codec)
	if err != nil {
		f.Close()
		return fmt.Errorf("open %s: %w", c.path, err)
	}
	c.file = f
	c.enc = enc
	c.writer = csv.NewWriter(enc)
	c.state = stateAwaitSchema
	return nil
}

// readHeaders parses the two header rows into the schema.
func (c *Channel) readHeaders() error {
	names, err := c.reader.Read()
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("%s: %w", c.path, ErrMissingHeaders)
		}
		return fmt.Errorf("read headers: %w", err)
	}
	tags, err := c.reader.Read()
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("%s: %w", c.path, ErrMissingHeaders)
		}
		return fmt.Errorf("read headers: %w", err)
	}

	schema, err := parseHeaders(names, tags)
	if err != nil {
		return err
	}
	c.schema = schema
	return nil
}

// Close releases the file and any compression codec. It is valid from
// any state and idempotent once closed.
func (c *Channel) Close() error {
	if c.state == stateClosed {
		return nil
	}
	c.state = stateClosed

	var errs []error
	if c.writer != nil {
		c.writer.Flush()
		if err := c.writer.Error(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.enc != nil {
		if err := c.enc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.dec != nil {
		if err := c.dec.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.file != nil {
		if err := c.file.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.reader = nil
	c.writer = nil
	c.dec = nil
	c.enc = nil
	c.file = nil

	return errors.Join(errs...)
}

// Path returns the file path the channel was created with.
func (c *Channel) Path() string { return c.path }

// Mode returns the channel's access mode.
func (c *Channel) Mode() Mode { return c.mode }

// Schema returns a copy of the channel's schema, or nil if none has
// been established yet.
func (c *Channel) Schema() Schema { return slices.Clone(c.schema) }
