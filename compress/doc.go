// Package compress provides compression and decompression codecs for
// column bodies.
//
// This package offers multiple compression algorithms with different
// speed/ratio tradeoffs. Compression is applied at the column-body level
// after a strategy (RLE, DeltaRLE, ...) has already encoded the column, so
// it provides an additional layer of space savings beyond strategy
// encoding.
//
// # Overview
//
// Table serialization applies a two-stage compression strategy:
//
//  1. **Strategy encoding**: exploits patterns in the data (RLE, delta,
//     delta-of-delta)
//  2. **Framing compression**: further reduces the encoded column body using
//     a general-purpose algorithm
//
// The compress package implements the second stage, supporting:
//   - Raw: no compression (fastest, largest)
//   - Deflate: balanced compression and speed, widely compatible
//   - Zstd: excellent compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Each Algorithm value maps to exactly one built-in Codec via GetCodec, and
// the Algorithm's numeric value is the same byte the column package writes
// as a framed column's leading flag byte, so the wire format and the codec
// registry can never drift apart.
//
// # Algorithm Selection Guide
//
// | Workload             | Recommended | Reason                         |
// |-----------------------|-------------|---------------------------------|
// | Storage-constrained   | Zstd        | Best compression ratio          |
// | Real-time ingestion   | S2          | Balanced speed and compression  |
// | Query-heavy           | LZ4         | Fastest decompression           |
// | CPU-constrained       | Raw         | No compression overhead         |
// | Broad compatibility   | Deflate     | Ubiquitous, moderate ratio      |
//
// # Memory Management
//
// The stateful codecs pool their compression state to minimize
// allocations: flate.Writer, lz4.Compressor and zstd encoders/decoders are
// reused across calls rather than allocated per column. S2 and Raw keep no
// state between calls and use no pool.
//
// # Bounded decompression
//
// Decompressing untrusted input without a bound on the inflated size is a
// decompression-bomb risk. LZ4's Decompress already guards against this
// with an adaptive, capped buffer; Deflate exposes DecompressBounded for
// the same purpose. column.Unframe calls the bounded variant where one is
// available.
package compress
