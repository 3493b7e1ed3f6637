// Package table implements the table (de)serializer (C5): the row-count
// header, the required-field positional prefix, and the optional-field
// side-channel keyed by stable index, plus an opt-in whole-table xxhash64
// checksum. Per-record field iteration itself is hand-written on top of
// this package and rowcol's typed columns, not generated or reflected over
// here.
package table

import (
	"encoding/binary"

	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/internal/hash"
	"github.com/colcodec/columnar/internal/options"
	"github.com/colcodec/columnar/primitive"
)

// WriteOption configures a Writer.
type WriteOption = options.Option[*Writer]

// WithChecksum appends a trailing xxhash64 checksum of the table body.
// Off by default: it is a supplemented ambient feature (grounded on the
// teacher's own built-in blob checksum support), not part of the base wire
// format, and never changes round-trip semantics when unused. A Reader
// must be told to expect it via the matching table.ExpectChecksum ReadOption.
func WithChecksum() WriteOption {
	return options.NoError(func(w *Writer) { w.checksum = true })
}

// Writer assembles one table's wire form: a row-count header, the required
// fields' positional prefix (written by the caller directly through
// Primitive()), and the optional-field side-channel (written through
// WriteOptionalField).
type Writer struct {
	w        *primitive.Writer
	checksum bool
}

// NewWriter creates a Writer using engine for the underlying primitive
// codec's byte order.
func NewWriter(engine endian.EndianEngine, opts ...WriteOption) *Writer {
	tw := &Writer{w: primitive.NewTableWriter(engine)}
	// Options as constructed here never fail; ignore the error return.
	_ = options.Apply(tw, opts...)

	return tw
}

// Primitive returns the underlying primitive.Writer, for writing the
// required-field positional prefix directly (e.g. via rowcol.Encode*Column
// calls).
func (tw *Writer) Primitive() *primitive.Writer {
	return tw.w
}

// WriteRowCount writes the table's row count. Must be called first, before
// any required field is written.
func (tw *Writer) WriteRowCount(n int) {
	tw.w.WriteUvarint(uint64(n))
}

// WriteOptionalField writes one optional-field side-channel entry: a
// stable index followed by the length-prefixed result of encode. encode
// receives a scratch primitive.Writer sharing this Writer's byte order.
func (tw *Writer) WriteOptionalField(index uint64, encode func(w *primitive.Writer)) {
	sub := primitive.NewWriter(tw.w.Engine())
	defer sub.Release()

	encode(sub)

	tw.w.WriteUvarint(index)
	tw.w.WriteBytes(sub.Bytes())
}

// Bytes returns the assembled table body, with a trailing xxhash64
// checksum appended if WithChecksum was set. The returned slice is a copy,
// safe to retain past Release.
func (tw *Writer) Bytes() []byte {
	body := tw.w.Bytes()

	if !tw.checksum {
		out := make([]byte, len(body))
		copy(out, body)

		return out
	}

	sum := hash.Checksum(body)

	out := make([]byte, len(body)+8)
	copy(out, body)
	binary.LittleEndian.PutUint64(out[len(body):], sum)

	return out
}

// Release returns the Writer's scratch buffer to the pool. The Writer must
// not be used afterward.
func (tw *Writer) Release() {
	tw.w.Release()
}
