package column

import (
	"github.com/colcodec/columnar/compress"
	"github.com/colcodec/columnar/errs"
)

// DefaultMaxInflatedSize bounds Unframe's decompressed output size when the
// caller does not supply one via UnframeBounded. 64 MiB, matching the
// teacher's LZ4 decompressor's own adaptive-buffer safety limit in spirit.
const DefaultMaxInflatedSize int64 = 64 * 1024 * 1024

// methodAlgorithm resolves a CompressionConfig.Method alias to a concrete
// backend. "default" favors broad compatibility, "best" favors ratio,
// "fast" favors speed, "fastest" trades a little of S2's ratio for LZ4's
// lighter CPU cost.
func methodAlgorithm(method string) (compress.Algorithm, error) {
	switch method {
	case "", "default":
		return compress.Deflate, nil
	case "best":
		return compress.Zstd, nil
	case "fast":
		return compress.S2, nil
	case "fastest":
		return compress.LZ4, nil
	default:
		return 0, errs.EncodeErrorf("column: unknown compression method %q", method)
	}
}

// Frame wraps a strategy-encoded column body with a one-byte algorithm
// flag, compressing it first when cfg's threshold and level call for it.
// Frame is only used for strategy != none columns; a none-strategy column
// is written directly as an unframed primitive sequence.
func Frame(body []byte, cfg CompressionConfig) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if !cfg.shouldCompress(len(body)) {
		return frameRaw(body), nil
	}

	algo, err := methodAlgorithm(cfg.method())
	if err != nil {
		return nil, err
	}

	var codec compress.Codec
	if algo == compress.Deflate {
		// Deflate's level is the one knob CompressionConfig.Level maps
		// onto directly (flate's own 0-9 scale); other backends only
		// observe the zero/nonzero distinction already applied above.
		codec = compress.NewDeflateCompressorLevel(cfg.Level)
	} else {
		codec, err = compress.GetCodec(algo)
		if err != nil {
			return nil, errs.EncodeErrorf("column: %w", err)
		}
	}

	compressed, err := codec.Compress(body)
	if err != nil {
		return nil, errs.IOErrorf("column: compress with %s failed: %w", algo, err)
	}

	out := make([]byte, 1+len(compressed))
	out[0] = byte(algo)
	copy(out[1:], compressed)

	return out, nil
}

func frameRaw(body []byte) []byte {
	out := make([]byte, 1+len(body))
	out[0] = byte(compress.Raw)
	copy(out[1:], body)

	return out
}

// Unframe reverses Frame, calling UnframeBounded with
// DefaultMaxInflatedSize.
func Unframe(data []byte) ([]byte, error) {
	return UnframeBounded(data, DefaultMaxInflatedSize)
}

// UnframeBounded reverses Frame with a caller-supplied max inflated size
// (0 means unbounded). The bound applies to codecs implementing
// compress.BoundedDecompressor (Deflate); Zstd, S2 and LZ4 bodies are
// decompressed without it. An unknown flag byte, or an empty slice, raises
// a decode error.
func UnframeBounded(data []byte, maxInflatedSize int64) ([]byte, error) {
	if len(data) == 0 {
		return nil, errs.DecodeErrorf("column: empty framed column")
	}

	algo := compress.Algorithm(data[0])

	codec, err := compress.GetCodec(algo)
	if err != nil {
		return nil, errs.DecodeErrorf("column: unknown compression flag %d", data[0])
	}

	body := data[1:]

	if algo == compress.Raw {
		return body, nil
	}

	if bd, ok := codec.(compress.BoundedDecompressor); ok {
		out, err := bd.DecompressBounded(body, maxInflatedSize)
		if err != nil {
			return nil, errs.DecodeErrorf("column: decompress with %s failed: %w", algo, err)
		}

		return out, nil
	}

	out, err := codec.Decompress(body)
	if err != nil {
		return nil, errs.DecodeErrorf("column: decompress with %s failed: %w", algo, err)
	}

	return out, nil
}
