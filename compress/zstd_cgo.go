//go:build cgo

package compress

import "github.com/valyala/gozstd"

// ZstdCodec compresses frames with Zstandard. This build-tag variant
// binds to the reference C implementation via cgo, trading portability
// for throughput on platforms where a cgo toolchain is available.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns a Zstd codec.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }

// Compress Zstd-compresses data at the default level.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress reverses Compress.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
