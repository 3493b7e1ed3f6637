package compress

import "fmt"

// Compressor compresses a byte slice, returning a newly allocated result.
// The input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor. Implementations validate the input
// format and return an error on corrupt or mismatched data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// BoundedDecompressor is implemented by codecs whose output size cannot be
// derived from the compressed input alone, offering a size-capped decode
// path instead. Callers decompressing untrusted data should prefer this
// over Decompress when a codec implements it.
type BoundedDecompressor interface {
	DecompressBounded(data []byte, maxSize int64) ([]byte, error)
}

// Stats describes one compress/decompress operation, for callers that want
// to log or monitor the effect of a chosen Algorithm.
type Stats struct {
	Algorithm           Algorithm
	OriginalSize        int64
	CompressedSize      int64
	CompressionTimeNs   int64
	DecompressionTimeNs int64
}

// Ratio returns CompressedSize/OriginalSize; values below 1.0 indicate the
// data shrank.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100).
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[Algorithm]Codec{
	Raw:     NewNoOpCompressor(),
	Deflate: NewDeflateCompressor(),
	Zstd:    NewZstdCompressor(),
	S2:      NewS2Compressor(),
	LZ4:     NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for algo.
func GetCodec(algo Algorithm) (Codec, error) {
	codec, ok := builtinCodecs[algo]
	if !ok {
		return nil, fmt.Errorf("compress: unsupported algorithm %s", algo)
	}

	return codec, nil
}
