package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/primitive"
)

func encodeBoolRle(t *testing.T, vals []bool) []byte {
	t.Helper()

	w := primitive.NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	enc := NewBoolRleEncoder(w)
	for _, v := range vals {
		enc.Append(v)
	}
	enc.Finish()

	out := make([]byte, w.Len())
	copy(out, w.Bytes())

	return out
}

func TestBoolRleStartsTrue(t *testing.T) {
	vals := []bool{true, true, false, false, false, true}
	data := encodeBoolRle(t, vals)

	r := primitive.NewReader(data, endian.GetLittleEndianEngine())
	got, err := DecodeAllBoolRle(r)
	require.NoError(t, err)
	assert.Equal(t, vals, got)
}

func TestBoolRleStartsFalse(t *testing.T) {
	vals := []bool{false, false, true, true}
	data := encodeBoolRle(t, vals)

	r := primitive.NewReader(data, endian.GetLittleEndianEngine())
	got, err := DecodeAllBoolRle(r)
	require.NoError(t, err)
	assert.Equal(t, vals, got)
}

func TestBoolRleAllSame(t *testing.T) {
	vals := []bool{true, true, true, true, true}
	data := encodeBoolRle(t, vals)

	r := primitive.NewReader(data, endian.GetLittleEndianEngine())
	got, err := DecodeAllBoolRle(r)
	require.NoError(t, err)
	assert.Equal(t, vals, got)
}

func TestBoolRleEmpty(t *testing.T) {
	data := encodeBoolRle(t, nil)
	assert.Empty(t, data)

	r := primitive.NewReader(data, endian.GetLittleEndianEngine())
	got, err := DecodeAllBoolRle(r)
	require.NoError(t, err)
	assert.Empty(t, got)
}
