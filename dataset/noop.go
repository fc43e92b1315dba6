package dataset

// NoopCodec passes data through unchanged, for uncompressed dataset files.
type NoopCodec struct{}

var _ Codec = (*NoopCodec)(nil)

// NewNoopCodec creates a new pass-through codec.
func NewNoopCodec() NoopCodec {
	return NoopCodec{}
}

// Compress returns the input slice as-is, without processing or copying.
// The returned slice shares the input's underlying memory.
func (c NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without processing or copying.
// The returned slice shares the input's underlying memory.
func (c NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
