// Transparent compression for data files.
//
// Sensor recordings run for hours at tens of hertz, so files are often
// stored compressed. A channel selects its codec from the path extension
// (.gz or .zst) unless Config.Compression pins one explicitly. Append
// mode starts a fresh member (gzip) or frame (zstd); both formats decode
// concatenated streams as one.
package typedcsv

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression codec constants for Config.Compression.
const (
	CompressAuto = 0 // Select by path extension (default)
	CompressNone = 1
	CompressGzip = 2
	CompressZstd = 3
)

// codecFor resolves CompressAuto against the path extension.
func codecFor(path string, compression int) int {
	if compression != CompressAuto {
		return compression
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		return CompressGzip
	case strings.HasSuffix(path, ".zst"):
		return CompressZstd
	default:
		return CompressNone
	}
}

// decompressor wraps a reader in the decoding side of the codec. The
// returned closer releases codec state only; the caller still owns the
// underlying file.
func decompressor(r io.Reader, codec int) (io.ReadCloser, error) {
	switch codec {
	case CompressGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, nil
	case CompressZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

// compressor wraps a writer in the encoding side of the codec. Closing
// the result flushes the codec but not the underlying file.
func compressor(w io.Writer, codec int) (io.WriteCloser, error) {
	switch codec {
	case CompressGzip:
		return gzip.NewWriter(w), nil
	case CompressZstd:
		// SpeedFastest: encoding sits on the recording hot path,
		// decoding happens once per analysis session.
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return zw, nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
