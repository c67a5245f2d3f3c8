// Package metacache memoizes the encoded MetaIMap body of metadata maps
// that repeat across values (a common shape: every response on a
// connection reuses request-id/user metadata). Entries are keyed by the
// map's content fingerprint, in a bounded LRU so a long-lived
// connection doesn't grow the cache without bound. Computing that
// fingerprint itself encodes the IMap body, so every Body call runs the
// body writer once; a cache hit skips only the second encoding and
// returns the stored bytes — adapted
// from kryptco-kr's use of hashicorp/golang-lru for bounding an
// unrelated cache.
package metacache

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/Marly3/libshv"
	"github.com/Marly3/libshv/internal/fingerprint"
	"github.com/Marly3/libshv/value"
)

// DefaultSize is the entry count used by New when the caller has no
// better estimate of how many distinct metadata shapes a connection
// will see.
const DefaultSize = 256

// Cache memoizes metadata body encodings by content fingerprint.
type Cache struct {
	lru *lru.Cache
	w   *chainpack.Writer
}

// New creates a Cache holding up to size distinct metadata encodings.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}

	l, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	w, err := chainpack.NewWriter()
	if err != nil {
		return nil, err
	}

	return &Cache{lru: l, w: w}, nil
}

// Body returns the canonical IMap-body encoding of meta (no MetaIMap
// tag prefix), computing and caching it on first use for meta's
// fingerprint and returning the cached bytes on subsequent calls with
// an equal metadata map.
//
// The returned slice is shared across callers and must not be
// modified.
func (c *Cache) Body(meta value.Metadata) ([]byte, error) {
	if meta.Empty() {
		return nil, nil
	}

	key, err := fingerprint.Of(meta)
	if err != nil {
		return nil, err
	}

	if cached, ok := c.lru.Get(key); ok {
		b, _ := cached.([]byte)
		return b, nil
	}

	body, err := c.w.MarshalMetadataBody(meta)
	if err != nil {
		return nil, err
	}

	c.lru.Add(key, body)

	return body, nil
}

// Len reports the number of distinct metadata encodings currently
// cached.
func (c *Cache) Len() int { return c.lru.Len() }
