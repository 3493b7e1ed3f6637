package compress

// Algorithm identifies a column compression backend. Its numeric value is
// exactly the flag byte column.Frame writes as byte 0 of a framed column,
// so adding a new Algorithm here and in the registry below is sufficient to
// make it selectable via column.CompressionConfig.
type Algorithm uint8

const (
	// Raw marks an unframed/uncompressed column body.
	Raw Algorithm = iota
	// Deflate selects github.com/klauspost/compress/flate.
	Deflate
	// Zstd selects github.com/klauspost/compress/zstd.
	Zstd
	// S2 selects github.com/klauspost/compress/s2.
	S2
	// LZ4 selects github.com/pierrec/lz4/v4.
	LZ4
)

// String returns a human-readable algorithm name, for error messages and
// diagnostics.
func (a Algorithm) String() string {
	switch a {
	case Raw:
		return "raw"
	case Deflate:
		return "deflate"
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
