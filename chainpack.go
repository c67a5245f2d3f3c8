// Package chainpack implements the ChainPack binary codec: a compact,
// self-describing serialization for a dynamically typed value tree used
// on an RPC wire. See package value for the in-memory value model and
// package wire for the tag-byte layout this package reads and writes.
package chainpack

import (
	"bytes"

	"github.com/Marly3/libshv/value"
)

// Marshal encodes v using default options and returns the resulting
// ChainPack frame.
func Marshal(v value.Value) ([]byte, error) {
	w, err := NewWriter()
	if err != nil {
		return nil, err
	}

	return w.Marshal(v)
}

// Unmarshal decodes a single ChainPack value from data using default
// options. It is an error for data to contain trailing bytes after the
// value (the CORE codec decodes exactly one value per call; framing
// multiple values is a transport concern, out of scope here).
func Unmarshal(data []byte) (value.Value, error) {
	r, err := NewReader()
	if err != nil {
		return value.Value{}, err
	}

	return r.Unmarshal(bytes.NewReader(data))
}
