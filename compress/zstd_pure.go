//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec compresses frames with Zstandard. This build-tag variant
// uses klauspost/compress's pure-Go decoder/encoder, selected whenever
// cgo is disabled (cross-compiling, CGO_ENABLED=0 deployments).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns a Zstd codec.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }

var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd encoder: %v", err))
		}

		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd decoder: %v", err))
		}

		return dec
	},
}

// Compress Zstd-compresses data using a pooled encoder.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress reverses Compress using a pooled decoder.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd decompression failed: %w", err)
	}

	return out, nil
}
