package strategy

import (
	"errors"

	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/primitive"
)

// BoolRleEncoder encodes a sequence of booleans as alternating run lengths.
// The first run is conventionally the true run: if the first value appended
// is false, a leading zero-length run is emitted to preserve alternation.
type BoolRleEncoder struct {
	w *primitive.Writer

	started bool
	last    bool
	count   uint64
}

// NewBoolRleEncoder creates an encoder writing through w.
func NewBoolRleEncoder(w *primitive.Writer) *BoolRleEncoder {
	return &BoolRleEncoder{w: w, last: true}
}

// Append feeds the next boolean in sequence order.
func (e *BoolRleEncoder) Append(v bool) {
	if !e.started {
		e.started = true
		if v != e.last {
			// First bit is false: emit the leading zero-length true run.
			e.w.WriteUvarint(0)
			e.last = v
		}
		e.count = 1

		return
	}

	if v == e.last {
		e.count++
	} else {
		e.w.WriteUvarint(e.count)
		e.last = v
		e.count = 1
	}
}

// Finish flushes the final run, if any.
func (e *BoolRleEncoder) Finish() {
	if e.count > 0 {
		e.w.WriteUvarint(e.count)
	}

	e.started = false
	e.count = 0
	e.last = true
}

// BoolRleDecoder decodes a byte stream produced by BoolRleEncoder.
type BoolRleDecoder struct {
	r *primitive.Reader

	last  bool
	count uint64
}

// NewBoolRleDecoder creates a decoder reading through r.
func NewBoolRleDecoder(r *primitive.Reader) *BoolRleDecoder {
	// last starts false so the first run read toggles it to true, matching
	// the encoder's true-first convention.
	return &BoolRleDecoder{r: r, last: false}
}

// Next returns the next boolean, or ok=false on clean end of stream, or a
// non-nil error on malformed input.
func (d *BoolRleDecoder) Next() (v bool, ok bool, err error) {
	for d.count == 0 {
		n, rerr := d.r.ReadUvarint()
		if rerr != nil {
			if errors.Is(rerr, errs.ErrUnexpectedEnd) {
				return false, false, nil
			}

			return false, false, rerr
		}

		if n > MaxRunLength {
			return false, false, errs.RunLengthExceeded(int64(n), MaxRunLength)
		}

		d.last = !d.last
		d.count = n
	}

	d.count--

	return d.last, true, nil
}

// All returns a lazy iterator over the decoded sequence.
func (d *BoolRleDecoder) All() func(yield func(bool, error) bool) {
	return func(yield func(bool, error) bool) {
		for {
			v, ok, err := d.Next()
			if err != nil {
				yield(v, err)
				return
			}
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// DecodeAllBoolRle decodes every value from r eagerly into a slice.
func DecodeAllBoolRle(r *primitive.Reader) ([]bool, error) {
	dec := NewBoolRleDecoder(r)

	var out []bool
	for {
		v, ok, err := dec.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}

		out = append(out, v)
	}
}
