// Package fingerprint computes a stable content hash of a metadata map,
// used by package metacache as a cache key. Hashing raw caller-supplied
// metadata directly would make the key depend on Go's randomized map
// iteration order, so this package first asks the real Writer to
// produce the canonical (sorted-key) IMap-body bytes it would emit on
// the wire, then hashes those bytes — adapted from mebo's
// internal/hash, which xxhashes a metric name string rather than a
// serialized byte body.
package fingerprint

import (
	"github.com/cespare/xxhash/v2"

	"github.com/Marly3/libshv"
	"github.com/Marly3/libshv/value"
)

// Of returns the xxHash64 fingerprint of meta's canonical wire
// encoding. Two metadata maps with the same entries, regardless of
// construction order, fingerprint identically.
func Of(meta value.Metadata) (uint64, error) {
	w, err := chainpack.NewWriter()
	if err != nil {
		return 0, err
	}

	body, err := w.MarshalMetadataBody(meta)
	if err != nil {
		return 0, err
	}

	return xxhash.Sum64(body), nil
}
