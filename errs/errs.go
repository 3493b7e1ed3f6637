// Package errs defines the sentinel error values returned by every other
// package in this module. Callers should compare with errors.Is rather than
// on the formatted message, since messages may be wrapped with additional
// context via fmt.Errorf("...: %w", err).
package errs

import "errors"

var (
	// ErrUnexpectedEnd is returned when a reader's input slice is exhausted
	// mid-value.
	ErrUnexpectedEnd = errors.New("columnar: unexpected end of input")

	// ErrRleEncode is returned when an encoder cannot represent a value,
	// e.g. a DeltaRLE value that does not fit in i128, or a DeltaOfDelta
	// subtraction that overflows i64.
	ErrRleEncode = errors.New("columnar: rle encode error")

	// ErrRleDecode is returned when a decoded run length exceeds the
	// MaxRunLength bound, a reconstructed value does not fit its target
	// type, or run metadata is otherwise invalid.
	ErrRleDecode = errors.New("columnar: rle decode error")

	// ErrInvalidStrategy is returned when a rowcol column type is asked to
	// encode or decode under a strategy it does not support.
	ErrInvalidStrategy = errors.New("columnar: invalid strategy tag")

	// ErrColumnarEncode is returned for structural encode errors (bad
	// framing request, schema violation).
	ErrColumnarEncode = errors.New("columnar: encode error")

	// ErrColumnarDecode is returned for structural decode errors (bad
	// framing flag, ragged columns, malformed tuple, duplicate optional
	// index).
	ErrColumnarDecode = errors.New("columnar: decode error")

	// ErrIO is returned when the deflate/zstd/s2/lz4 layer fails.
	ErrIO = errors.New("columnar: io error")

	// ErrOverflow is returned on integer widening/narrowing failure.
	ErrOverflow = errors.New("columnar: overflow error")
)

// RunLengthExceeded wraps ErrRleDecode with the offending length, for
// diagnostics.
func RunLengthExceeded(n int64, max int64) error {
	return wrapf(ErrRleDecode, "run length %d exceeds max %d", n, max)
}

// DuplicateOptionalIndex wraps ErrColumnarDecode for a repeated stable index
// in a table's optional-field side-channel.
func DuplicateOptionalIndex(index uint64) error {
	return wrapf(ErrColumnarDecode, "duplicate optional field index %d", index)
}

// RaggedColumns wraps ErrColumnarDecode for a row iterator whose column
// iterators disagree about when the sequence ends.
func RaggedColumns() error {
	return wrapf(ErrColumnarDecode, "ragged columns: column iterators disagree on length")
}

// EncodeErrorf wraps ErrColumnarEncode with formatted context.
func EncodeErrorf(format string, args ...any) error {
	return wrapf(ErrColumnarEncode, format, args...)
}

// DecodeErrorf wraps ErrColumnarDecode with formatted context.
func DecodeErrorf(format string, args ...any) error {
	return wrapf(ErrColumnarDecode, format, args...)
}

// IOErrorf wraps ErrIO with formatted context, preserving the underlying
// compression-layer error via %w.
func IOErrorf(format string, args ...any) error {
	return wrapf(ErrIO, format, args...)
}
