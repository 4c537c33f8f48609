// Schema fingerprinting.
//
// A fingerprint is a 16 hex character digest of the canonical header
// serialisation (name:tag pairs joined by commas). Append helpers use it
// to refuse writing rows under a schema that does not match the file's
// existing headers. Three algorithms are supported, selectable via
// Config.FingerprintAlgorithm.
package typedcsv

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// Fingerprint returns a 16 hex character digest of the schema using the
// given algorithm, or the empty string for an unknown algorithm.
func (s Schema) Fingerprint(alg int) string {
	var b strings.Builder
	for i, f := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Name)
		b.WriteByte(':')
		b.WriteString(f.Type.Tag())
	}
	canonical := b.String()

	switch alg {
	case AlgXXHash3:
		return fmt.Sprintf("%016x", xxh3.HashString(canonical))
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write([]byte(canonical))
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write([]byte(canonical))
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return ""
	}
}
