// Package column implements column framing: wrapping one column's encoded
// body with an optional compression layer and a one-byte algorithm flag.
package column

import "github.com/colcodec/columnar/errs"

// CompressionConfig controls whether and how a column body is compressed
// before framing. Strategy choice lives in the schema and is not
// runtime-configurable; CompressionConfig only governs the framing layer
// applied on top of a strategy's output.
type CompressionConfig struct {
	// ThresholdBytes is the minimum uncompressed body size, in bytes, that
	// triggers compression. Bodies smaller than this are framed with the
	// Raw flag regardless of Level.
	ThresholdBytes int

	// Level follows a generic 0-9 scale; 0 disables compression outright.
	// For Deflate, Level is passed through to klauspost/compress/flate
	// directly. Zstd (which always encodes at its default speed level), S2
	// and LZ4 observe only the zero/nonzero distinction.
	Level int

	// Method selects the backend algorithm: "default" (deflate), "best"
	// (zstd, favors ratio), "fast" (s2, favors speed), or "fastest" (lz4,
	// trades a little of s2's ratio for lower CPU cost). Empty is
	// equivalent to "default".
	Method string
}

// DefaultCompressionConfig returns the {256, 6, "default"} configuration.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{ThresholdBytes: 256, Level: 6, Method: "default"}
}

func (cfg CompressionConfig) method() string {
	if cfg.Method == "" {
		return "default"
	}

	return cfg.Method
}

func (cfg CompressionConfig) shouldCompress(bodyLen int) bool {
	return cfg.Level > 0 && bodyLen >= cfg.ThresholdBytes
}

func (cfg CompressionConfig) validate() error {
	switch cfg.method() {
	case "default", "best", "fast", "fastest":
		return nil
	default:
		return errs.EncodeErrorf("column: unknown compression method %q", cfg.Method)
	}
}
