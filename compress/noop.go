package compress

// NoOpCodec bypasses compression entirely, for callers that want the
// Codec interface uniformly available without always paying for a real
// algorithm (e.g. local-loopback transports, or debugging).
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec returns a codec that returns its input unchanged.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

// Compress returns data unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
