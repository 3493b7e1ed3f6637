package strategy

import (
	"errors"

	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/primitive"
)

type anyRleState int

const (
	anyRleEmpty anyRleState = iota
	anyRleLoneVal
	anyRleRun
	anyRleLiteral
)

// AnyRleEncoder encodes a sequence of equality-comparable values as a run
// of repeat-runs and literal-runs, per the encoder state machine: Empty ->
// LoneVal -> Run/Literal, collapsing adjacent equal values into a single
// repeat run and leaving genuinely varying stretches as literal runs.
type AnyRleEncoder[T comparable] struct {
	w     *primitive.Writer
	codec ValueCodec[T]

	state   anyRleState
	last    T
	runLen  int64
	literal []T
}

// NewAnyRleEncoder creates an encoder writing through w using codec for
// element encoding.
func NewAnyRleEncoder[T comparable](w *primitive.Writer, codec ValueCodec[T]) *AnyRleEncoder[T] {
	return &AnyRleEncoder[T]{w: w, codec: codec}
}

// Append feeds the next value in sequence order.
func (e *AnyRleEncoder[T]) Append(v T) {
	switch e.state {
	case anyRleEmpty:
		e.last = v
		e.state = anyRleLoneVal
	case anyRleLoneVal:
		if v == e.last {
			e.runLen = 2
			e.state = anyRleRun
		} else {
			e.literal = append(e.literal[:0], e.last)
			e.last = v
			e.state = anyRleLiteral
		}
	case anyRleRun:
		if v == e.last {
			e.runLen++
		} else {
			e.flushRepeat(e.last, e.runLen)
			e.last = v
			e.state = anyRleLoneVal
		}
	case anyRleLiteral:
		if v == e.last {
			e.flushLiteral(e.literal)
			e.literal = nil
			e.runLen = 2
			e.state = anyRleRun
		} else {
			e.literal = append(e.literal, e.last)
			e.last = v
		}
	}
}

// AppendSlice feeds each element of vs in order.
func (e *AnyRleEncoder[T]) AppendSlice(vs []T) {
	for _, v := range vs {
		e.Append(v)
	}
}

// Finish flushes any pending run. Must be called exactly once after the
// last Append.
func (e *AnyRleEncoder[T]) Finish() {
	switch e.state {
	case anyRleLoneVal:
		e.flushLiteral([]T{e.last})
	case anyRleRun:
		e.flushRepeat(e.last, e.runLen)
	case anyRleLiteral:
		e.flushLiteral(append(e.literal, e.last))
	case anyRleEmpty:
		// Nothing written, nothing to flush.
	}

	e.state = anyRleEmpty
	e.literal = nil
}

func (e *AnyRleEncoder[T]) flushRepeat(v T, n int64) {
	e.w.WriteIvarint(n)
	e.codec.Write(e.w, v)
}

func (e *AnyRleEncoder[T]) flushLiteral(buf []T) {
	e.w.WriteIvarint(-int64(len(buf)))
	for _, v := range buf {
		e.codec.Write(e.w, v)
	}
}

// AnyRleDecoder decodes a byte stream produced by AnyRleEncoder. It is
// self-delimiting: Next reports clean exhaustion once the underlying
// reader has no further run-length prefix to read.
type AnyRleDecoder[T comparable] struct {
	r     *primitive.Reader
	codec ValueCodec[T]

	count   int64
	literal bool
	last    T
}

// NewAnyRleDecoder creates a decoder reading through r using codec for
// element decoding.
func NewAnyRleDecoder[T comparable](r *primitive.Reader, codec ValueCodec[T]) *AnyRleDecoder[T] {
	return &AnyRleDecoder[T]{r: r, codec: codec}
}

// Next returns the next value, or ok=false on clean end of stream, or a
// non-nil error on malformed input.
func (d *AnyRleDecoder[T]) Next() (v T, ok bool, err error) {
	for d.count == 0 {
		n, rerr := d.r.ReadIvarint()
		if rerr != nil {
			if errors.Is(rerr, errs.ErrUnexpectedEnd) {
				var zero T
				return zero, false, nil
			}

			var zero T
			return zero, false, rerr
		}

		if n == 0 {
			var zero T
			return zero, false, errs.ErrRleDecode
		}

		// absU computes |n| via two's-complement wraparound rather than
		// unary negation, which stays correct at n == math.MinInt64 (where
		// -n overflows back to math.MinInt64 itself and would otherwise
		// slip the MaxRunLength check below).
		absU := uint64(n)
		if n < 0 {
			absU = -absU
		}

		if absU > uint64(MaxRunLength) {
			var zero T
			return zero, false, errs.RunLengthExceeded(n, MaxRunLength)
		}

		abs := int64(absU)

		if n > 0 {
			d.literal = false

			val, rerr := d.codec.Read(d.r)
			if rerr != nil {
				var zero T
				return zero, false, rerr
			}

			d.last = val
		} else {
			d.literal = true
		}

		d.count = abs
	}

	d.count--

	if d.literal {
		val, rerr := d.codec.Read(d.r)
		if rerr != nil {
			var zero T
			return zero, false, rerr
		}

		return val, true, nil
	}

	return d.last, true, nil
}

// All returns a lazy iterator over the decoded sequence. Iteration stops
// after the first error, yielding it as the final pair.
func (d *AnyRleDecoder[T]) All() func(yield func(T, error) bool) {
	return func(yield func(T, error) bool) {
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

// DecodeAllAnyRle decodes every value from r eagerly into a slice.
func DecodeAllAnyRle[T comparable](r *primitive.Reader, codec ValueCodec[T]) ([]T, error) {
	dec := NewAnyRleDecoder(r, codec)

	var out []T
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
