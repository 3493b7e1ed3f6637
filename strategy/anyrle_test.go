package strategy

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/primitive"
)

var int64Codec = ValueCodec[int64]{
	Write: func(w *primitive.Writer, v int64) { w.WriteIvarint(v) },
	Read:  func(r *primitive.Reader) (int64, error) { return r.ReadIvarint() },
}

func encodeAnyRle(t *testing.T, vals []int64) []byte {
	t.Helper()

	w := primitive.NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	enc := NewAnyRleEncoder(w, int64Codec)
	enc.AppendSlice(vals)
	enc.Finish()

	out := make([]byte, w.Len())
	copy(out, w.Bytes())

	return out
}

func TestAnyRleRepeatRun(t *testing.T) {
	data := encodeAnyRle(t, []int64{5, 5, 5, 5})

	r := primitive.NewReader(data, endian.GetLittleEndianEngine())
	got, err := DecodeAllAnyRle(r, int64Codec)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 5, 5, 5}, got)
}

func TestAnyRleLiteralRun(t *testing.T) {
	data := encodeAnyRle(t, []int64{1, 2, 3})

	r := primitive.NewReader(data, endian.GetLittleEndianEngine())
	got, err := DecodeAllAnyRle(r, int64Codec)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestAnyRleMixed(t *testing.T) {
	vals := []int64{1000, 1000, 2, 2, 2, 7, 8, 9, 9, 9, 9}
	data := encodeAnyRle(t, vals)

	r := primitive.NewReader(data, endian.GetLittleEndianEngine())
	got, err := DecodeAllAnyRle(r, int64Codec)
	require.NoError(t, err)
	assert.Equal(t, vals, got)
}

func TestAnyRleEmpty(t *testing.T) {
	data := encodeAnyRle(t, nil)
	assert.Empty(t, data)

	r := primitive.NewReader(data, endian.GetLittleEndianEngine())
	got, err := DecodeAllAnyRle(r, int64Codec)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnyRleSingleValue(t *testing.T) {
	data := encodeAnyRle(t, []int64{42})

	r := primitive.NewReader(data, endian.GetLittleEndianEngine())
	got, err := DecodeAllAnyRle(r, int64Codec)
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, got)
}

func TestAnyRleRunLengthExceeded(t *testing.T) {
	w := primitive.NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	w.WriteIvarint(MaxRunLength + 1)
	w.WriteIvarint(1)

	r := primitive.NewReader(w.Bytes(), endian.GetLittleEndianEngine())
	_, err := DecodeAllAnyRle(r, int64Codec)
	assert.Error(t, err)
}

// TestAnyRleDecoder_DoesNotReadAheadOfPulledValues proves Next() consumes
// exactly as many encoded bytes as values actually pulled, not the whole
// run up front: a decoder fed only the bytes for a literal run's first two
// values (the rest truncated) decodes those two successfully and only
// fails once a third is requested. This is the property the rowcol
// streaming column decoders (Int64ColumnDecoder and friends) depend on to
// avoid materializing a full column before a caller asks for a value.
func TestAnyRleDecoder_DoesNotReadAheadOfPulledValues(t *testing.T) {
	twoVals := encodeAnyRle(t, []int64{1, 2})
	fiveVals := encodeAnyRle(t, []int64{1, 2, 3, 4, 5})

	require.True(t, bytes.HasPrefix(fiveVals[1:], twoVals[1:]),
		"both encode as a single literal run with a one-byte count prefix (ivarint(-2) vs ivarint(-5)), followed by first two values that encode identically; if this assumption breaks, the test needs a different construction")

	truncated := fiveVals[:len(twoVals)]

	r := primitive.NewReader(truncated, endian.GetLittleEndianEngine())
	dec := NewAnyRleDecoder(r, int64Codec)

	v1, ok, err := dec.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), v1)

	v2, ok, err := dec.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), v2)

	_, _, err = dec.Next()
	assert.Error(t, err, "the third value's bytes were truncated; a decoder that pre-reads the whole run would have failed immediately on construction instead of here")
}

// TestAnyRleRunLengthExceeded_MinInt64 guards against the case where the
// run-length prefix is exactly math.MinInt64: a naive `-n` absolute value
// overflows back to math.MinInt64 (still negative), which would slip past
// the MaxRunLength check instead of being rejected.
func TestAnyRleRunLengthExceeded_MinInt64(t *testing.T) {
	w := primitive.NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	w.WriteIvarint(math.MinInt64)

	r := primitive.NewReader(w.Bytes(), endian.GetLittleEndianEngine())
	_, err := DecodeAllAnyRle(r, int64Codec)
	assert.Error(t, err)
}
