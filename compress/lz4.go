package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; each carries an
// internal match-finder table that is expensive to zero on every call.
var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// LZ4Codec compresses frames with LZ4 block compression.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec returns an LZ4 codec.
func NewLZ4Codec() LZ4Codec { return LZ4Codec{} }

// Compress LZ4-compresses data.
func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	c, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(c)

	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress reverses Compress, growing its scratch buffer on
// ErrInvalidSourceShortBuffer up to a 128MiB safety ceiling.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	const maxSize = 128 * 1024 * 1024

	for bufSize := len(data) * 4; bufSize <= maxSize; bufSize *= 2 {
		buf := make([]byte, bufSize)

		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
