// Package primitive implements the lowest-level wire codec this module
// builds on: uvarint/ivarint/i128-varint integers, IEEE-754 floats, bools,
// length-prefixed strings and byte slices, and the sequence/tuple framing
// markers used by higher-level packages (strategy, column, table).
//
// It plays the role mebo's encoding package plays for that project: every
// other package writes through a primitive.Writer and reads through a
// primitive.Reader rather than touching encoding/binary directly.
package primitive

import (
	"encoding/binary"

	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/internal/i128"
	"github.com/colcodec/columnar/internal/pool"
)

// Writer accumulates an encoded byte stream in a pooled buffer.
//
// A Writer is not safe for concurrent use. Call Release when done to return
// its buffer to the pool.
type Writer struct {
	buf         *pool.ByteBuffer
	engine      endian.EndianEngine
	tableScoped bool
}

// NewWriter creates a Writer using engine for float and multi-byte integer
// byte order, sized from the per-column buffer pool. Use this for a
// column's own body (the common case: strategy-encoded payloads,
// optional-field entries) and for any other single-column-sized buffer.
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		buf:    pool.GetColumnBuffer(),
		engine: engine,
	}
}

// NewTableWriter creates a Writer sized from the larger whole-table buffer
// pool, for assembling an entire table's wire representation (the
// row-count header plus every required/optional column), which is
// typically much larger than any single column's framed body.
func NewTableWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		buf:         pool.GetTableBuffer(),
		engine:      engine,
		tableScoped: true,
	}
}

// Bytes returns the bytes written so far. The returned slice is valid until
// the next Write call or Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Engine returns the byte order this Writer encodes floats and raw
// multi-byte integers with, so callers building a sub-Writer (e.g. a
// column's strategy-encoded body) can match it.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Reset clears the written bytes but keeps the underlying buffer for reuse.
func (w *Writer) Reset() {
	w.buf.Reset()
}

// Release returns the Writer's buffer to the pool it came from. The Writer
// must not be used afterward.
func (w *Writer) Release() {
	if w.tableScoped {
		pool.PutTableBuffer(w.buf)
	} else {
		pool.PutColumnBuffer(w.buf)
	}
	w.buf = nil
}

// WriteUvarint writes v as an unsigned LEB128 varint.
func (w *Writer) WriteUvarint(v uint64) {
	n := varintLen(v)
	old := w.buf.Len()
	w.buf.ExtendOrGrow(n)
	binary.PutUvarint(w.buf.Bytes()[old:], v)
}

// WriteIvarint writes v as a zigzag-encoded signed varint.
func (w *Writer) WriteIvarint(v int64) {
	w.WriteUvarint(zigzagEncode64(v))
}

// WriteI128Varint writes v as a zigzag-encoded 128-bit signed varint.
// Used by the DeltaRLE strategy, whose running sum is kept in i128 to avoid
// overflow across the full int64/uint64 input range.
func (w *Writer) WriteI128Varint(v i128.Int128) {
	hi, lo := zigzagEncode128(v)
	for {
		b := byte(lo & 0x7f)
		lo = (lo >> 7) | (hi << 57)
		hi >>= 7
		if hi == 0 && lo == 0 {
			w.buf.MustWrite([]byte{b})
			return
		}
		w.buf.MustWrite([]byte{b | 0x80})
	}
}

// WriteRawByte writes a single byte verbatim, with no length or type
// framing. Used for sub-byte-range markers such as DeltaOfDelta's tail_bits
// byte, where a varint would waste nothing but obscures intent.
func (w *Writer) WriteRawByte(b byte) {
	w.buf.MustWrite([]byte{b})
}

// WriteBool writes a single byte: 1 for true, 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.MustWrite([]byte{1})
	} else {
		w.buf.MustWrite([]byte{0})
	}
}

// WriteF64 writes v as 8 raw bytes in the Writer's byte order.
func (w *Writer) WriteF64(v float64) {
	old := w.buf.Len()
	w.buf.ExtendOrGrow(8)
	w.engine.PutUint64(w.buf.Bytes()[old:], float64bits(v))
}

// WriteF32 writes v as 4 raw bytes in the Writer's byte order.
func (w *Writer) WriteF32(v float32) {
	old := w.buf.Len()
	w.buf.ExtendOrGrow(4)
	w.engine.PutUint32(w.buf.Bytes()[old:], float32bits(v))
}

// WriteStr writes s as [uvarint length][UTF-8 bytes].
func (w *Writer) WriteStr(s string) {
	w.WriteBytes([]byte(s))
}

// WriteBytes writes b as [uvarint length][raw bytes].
func (w *Writer) WriteBytes(b []byte) {
	w.WriteUvarint(uint64(len(b)))
	if len(b) == 0 {
		return
	}

	old := w.buf.Len()
	w.buf.ExtendOrGrow(len(b))
	copy(w.buf.Bytes()[old:], b)
}

// WriteSeqHeader writes the element count of a sequence as a uvarint. It is
// the self-delimiting prefix a reader uses to know how many elements to
// pull from an unframed (Strategy == None) column.
func (w *Writer) WriteSeqHeader(n int) {
	w.WriteUvarint(uint64(n))
}

// WriteTupleHeader is a no-op: tuple element counts are fixed by the record
// schema known to both sides, so no header is written. The method exists so
// callers can write schema-generic code that calls it uniformly alongside
// WriteSeqHeader.
func (w *Writer) WriteTupleHeader(n int) {
	_ = n
}
