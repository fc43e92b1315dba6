package dataset

// ZstdCodec reads and writes Zstandard frames.
//
// Two implementations exist behind build tags: a cgo-backed one (valyala/gozstd)
// used when cgo is available, and a pure-Go fallback (klauspost/compress/zstd).
// Both produce standard zstd frames, so files written by one are readable by
// the other and by the zstd command-line tool.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
