package dataset

import "fmt"

// Codec compresses and decompresses dataset payloads.
//
// Implementations operate on whole payloads: dataset files are small
// relative to the corpora they summarize, so streaming buys nothing here.
//
// Memory management:
//   - Returned slices are newly allocated and owned by the caller
//   - Input slices are not modified
//
// All implementations are stateless and safe for concurrent use.
type Codec interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)

	// Decompress decompresses the input data and returns the original
	// result. Returns an error if the data is corrupted or was compressed
	// with a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// NewCodec returns the Codec for the given compression type.
func NewCodec(typ CompressionType) (Codec, error) {
	switch typ {
	case CompressionNone:
		return NewNoopCodec(), nil
	case CompressionZstd:
		return NewZstdCodec(), nil
	case CompressionS2:
		return NewS2Codec(), nil
	case CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %d", typ)
	}
}
