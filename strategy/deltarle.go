package strategy

import (
	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/internal/i128"
	"github.com/colcodec/columnar/primitive"
)

// i128Codec is the ValueCodec for AnyRLE's internal i128 representation,
// shared by every DeltaRleEncoder/Decoder regardless of the surface integer
// type.
var i128Codec = ValueCodec[i128.Int128]{
	Write: func(w *primitive.Writer, v i128.Int128) { w.WriteI128Varint(v) },
	Read:  func(r *primitive.Reader) (i128.Int128, error) { return r.ReadI128Varint() },
}

// DeltaRleEncoder encodes an ordered sequence of integers as AnyRLE over
// their first differences, computed in saturating i128 arithmetic so no
// intermediate delta can overflow regardless of the surface integer width.
type DeltaRleEncoder struct {
	rle      *AnyRleEncoder[i128.Int128]
	absolute i128.Int128
}

// NewDeltaRleEncoder creates an encoder writing through w.
func NewDeltaRleEncoder(w *primitive.Writer) *DeltaRleEncoder {
	return &DeltaRleEncoder{rle: NewAnyRleEncoder(w, i128Codec)}
}

// Append feeds the next value, widened to i128, in sequence order.
func (e *DeltaRleEncoder) Append(v i128.Int128) {
	delta := v.SaturatingSub(e.absolute)
	e.absolute = v
	e.rle.Append(delta)
}

// AppendInt64 is a convenience wrapper for int64-typed columns.
func (e *DeltaRleEncoder) AppendInt64(v int64) {
	e.Append(i128.FromInt64(v))
}

// AppendUint64 is a convenience wrapper for uint64-typed columns.
func (e *DeltaRleEncoder) AppendUint64(v uint64) {
	e.Append(i128.FromUint64(v))
}

// Finish flushes the underlying AnyRLE stream.
func (e *DeltaRleEncoder) Finish() {
	e.rle.Finish()
	e.absolute = i128.Int128{}
}

// DeltaRleDecoder decodes a byte stream produced by DeltaRleEncoder.
type DeltaRleDecoder struct {
	rle      *AnyRleDecoder[i128.Int128]
	absolute i128.Int128
}

// NewDeltaRleDecoder creates a decoder reading through r.
func NewDeltaRleDecoder(r *primitive.Reader) *DeltaRleDecoder {
	return &DeltaRleDecoder{rle: NewAnyRleDecoder(r, i128Codec)}
}

// Next returns the next reconstructed i128 value, or ok=false on clean end
// of stream, or a non-nil error on malformed input.
func (d *DeltaRleDecoder) Next() (v i128.Int128, ok bool, err error) {
	delta, ok, err := d.rle.Next()
	if err != nil || !ok {
		return i128.Int128{}, ok, err
	}

	d.absolute = d.absolute.SaturatingAdd(delta)

	return d.absolute, true, nil
}

// NextInt64 returns the next value narrowed to int64, raising
// errs.ErrRleDecode if the reconstructed value does not fit.
func (d *DeltaRleDecoder) NextInt64() (v int64, ok bool, err error) {
	wide, ok, err := d.Next()
	if err != nil || !ok {
		return 0, ok, err
	}

	narrow, fits := wide.ToInt64()
	if !fits {
		return 0, false, errs.ErrRleDecode
	}

	return narrow, true, nil
}

// NextUint64 returns the next value narrowed to uint64, raising
// errs.ErrRleDecode if the reconstructed value does not fit.
func (d *DeltaRleDecoder) NextUint64() (v uint64, ok bool, err error) {
	wide, ok, err := d.Next()
	if err != nil || !ok {
		return 0, ok, err
	}

	narrow, fits := wide.ToUint64()
	if !fits {
		return 0, false, errs.ErrRleDecode
	}

	return narrow, true, nil
}
