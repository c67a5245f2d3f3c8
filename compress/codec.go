package compress

import "fmt"

// Type identifies a compression algorithm a transport may apply to a
// finished ChainPack frame.
type Type uint8

// Supported compression algorithms.
const (
	None Type = iota
	Zstd
	S2
	LZ4
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compressor compresses an already-serialized ChainPack frame.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCodec(),
	Zstd: NewZstdCodec(),
	S2:   NewS2Codec(),
	LZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in Codec for t.
func GetCodec(t Type) (Codec, error) {
	c, ok := builtinCodecs[t]
	if !ok {
		return nil, fmt.Errorf("compress: unsupported compression type %s", t)
	}

	return c, nil
}
