package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/primitive"
)

func encodeDeltaOfDelta(t *testing.T, vals []int64) []byte {
	t.Helper()

	enc := NewDeltaOfDeltaEncoder()
	for _, v := range vals {
		require.NoError(t, enc.Append(v))
	}

	w := primitive.NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	enc.Finish(w)

	out := make([]byte, w.Len())
	copy(out, w.Bytes())

	return out
}

func decodeDeltaOfDelta(t *testing.T, data []byte) []int64 {
	t.Helper()

	dec, err := NewDeltaOfDeltaDecoder(data)
	require.NoError(t, err)

	var out []int64
	for {
		v, ok, err := dec.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

func TestDeltaOfDeltaRoundTripSmall(t *testing.T) {
	vals := []int64{1, 2, 3, 4, 5, 6}
	data := encodeDeltaOfDelta(t, vals)
	got := decodeDeltaOfDelta(t, data)
	assert.Equal(t, vals, got)
}

func TestDeltaOfDeltaRoundTripRegular(t *testing.T) {
	vals := []int64{1000, 1010, 1020, 1030, 1040}
	data := encodeDeltaOfDelta(t, vals)
	got := decodeDeltaOfDelta(t, data)
	assert.Equal(t, vals, got)
}

func TestDeltaOfDeltaRoundTripLargeJumps(t *testing.T) {
	vals := []int64{0, 10_000_000, -5_000_000, 3_000_000_000, -3_000_000_000}
	data := encodeDeltaOfDelta(t, vals)
	got := decodeDeltaOfDelta(t, data)
	assert.Equal(t, vals, got)
}

func TestDeltaOfDeltaSingleValue(t *testing.T) {
	vals := []int64{42}
	data := encodeDeltaOfDelta(t, vals)
	got := decodeDeltaOfDelta(t, data)
	assert.Equal(t, vals, got)
}

func TestDeltaOfDeltaEmpty(t *testing.T) {
	data := encodeDeltaOfDelta(t, nil)
	got := decodeDeltaOfDelta(t, data)
	assert.Empty(t, got)
}

func TestDeltaOfDeltaOverflow(t *testing.T) {
	enc := NewDeltaOfDeltaEncoder()
	require.NoError(t, enc.Append(0))
	err := enc.Append(1<<63 - 1)
	require.NoError(t, err)
	err = enc.Append(-(1 << 63))
	assert.Error(t, err)
}
