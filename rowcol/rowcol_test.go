package rowcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colcodec/columnar/column"
	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/primitive"
	"github.com/colcodec/columnar/schema"
)

func roundTripWriter(t *testing.T) (*primitive.Writer, func() *primitive.Reader) {
	t.Helper()

	w := primitive.NewWriter(endian.GetLittleEndianEngine())
	t.Cleanup(w.Release)

	return w, func() *primitive.Reader {
		out := make([]byte, w.Len())
		copy(out, w.Bytes())

		return primitive.NewReader(out, endian.GetLittleEndianEngine())
	}
}

func TestInt64Column_RoundTrip(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	strategies := []schema.Strategy{schema.StrategyNone, schema.StrategyRLE, schema.StrategyDeltaRLE, schema.StrategyDeltaOfDelta}
	vals := []int64{10, 10, 10, 11, 12, 13, 13, 13, 100}

	for _, strat := range strategies {
		w, reader := roundTripWriter(t)

		require.NoError(t, EncodeInt64Column(w, vals, strat, cfg))

		got, err := DecodeInt64Column(reader(), strat)
		require.NoError(t, err)
		assert.Equal(t, vals, got)
	}
}

func TestInt64Column_Empty(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	w, reader := roundTripWriter(t)

	require.NoError(t, EncodeInt64Column(w, nil, schema.StrategyNone, cfg))

	got, err := DecodeInt64Column(reader(), schema.StrategyNone)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUint64Column_RoundTrip(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	vals := []uint64{1, 1, 2, 3, 3, 3}

	for _, strat := range []schema.Strategy{schema.StrategyNone, schema.StrategyRLE, schema.StrategyDeltaRLE} {
		w, reader := roundTripWriter(t)

		require.NoError(t, EncodeUint64Column(w, vals, strat, cfg))

		got, err := DecodeUint64Column(reader(), strat)
		require.NoError(t, err)
		assert.Equal(t, vals, got)
	}
}

func TestFloat64Column_RoundTrip(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	vals := []float64{1.5, 1.5, 2.25, 3.125}

	for _, strat := range []schema.Strategy{schema.StrategyNone, schema.StrategyRLE} {
		w, reader := roundTripWriter(t)

		require.NoError(t, EncodeFloat64Column(w, vals, strat, cfg))

		got, err := DecodeFloat64Column(reader(), strat)
		require.NoError(t, err)
		assert.Equal(t, vals, got)
	}
}

func TestFloat32Column_RoundTrip(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	vals := []float32{1.5, 1.5, 2.25}

	w, reader := roundTripWriter(t)
	require.NoError(t, EncodeFloat32Column(w, vals, schema.StrategyRLE, cfg))

	got, err := DecodeFloat32Column(reader(), schema.StrategyRLE)
	require.NoError(t, err)
	assert.Equal(t, vals, got)
}

func TestBoolColumn_RoundTrip(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	vals := []bool{false, false, true, true, true, false}

	for _, strat := range []schema.Strategy{schema.StrategyNone, schema.StrategyBoolRLE} {
		w, reader := roundTripWriter(t)

		require.NoError(t, EncodeBoolColumn(w, vals, strat, cfg))

		got, err := DecodeBoolColumn(reader(), strat)
		require.NoError(t, err)
		assert.Equal(t, vals, got)
	}
}

func TestStringColumn_RoundTrip(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	vals := []string{"a", "a", "b", "c", "c"}

	for _, strat := range []schema.Strategy{schema.StrategyNone, schema.StrategyRLE} {
		w, reader := roundTripWriter(t)

		require.NoError(t, EncodeStringColumn(w, vals, strat, cfg))

		got, err := DecodeStringColumn(reader(), strat)
		require.NoError(t, err)
		assert.Equal(t, vals, got)
	}
}

func TestBytesColumn_RoundTrip(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	vals := [][]byte{[]byte("one"), []byte("two"), []byte("three")}

	w, reader := roundTripWriter(t)
	require.NoError(t, EncodeBytesColumn(w, vals, schema.StrategyNone, cfg))

	got, err := DecodeBytesColumn(reader(), schema.StrategyNone)
	require.NoError(t, err)
	assert.Equal(t, vals, got)
}

func TestBytesColumn_RejectsStrategy(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	w, _ := roundTripWriter(t)

	err := EncodeBytesColumn(w, [][]byte{[]byte("x")}, schema.StrategyRLE, cfg)
	assert.Error(t, err)
}

func TestInt64Column_InvalidStrategy(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	w, _ := roundTripWriter(t)

	err := EncodeInt64Column(w, []int64{1}, schema.StrategyBoolRLE, cfg)
	assert.Error(t, err)
}

func drainInt64(t *testing.T, dec *Int64ColumnDecoder) []int64 {
	t.Helper()

	var out []int64
	for {
		v, ok, err := dec.Next()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestInt64ColumnDecoder_MatchesDecodeInt64Column(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	strategies := []schema.Strategy{schema.StrategyNone, schema.StrategyRLE, schema.StrategyDeltaRLE, schema.StrategyDeltaOfDelta}
	vals := []int64{10, 10, 10, 11, 12, 13, 13, 13, 100}

	for _, strat := range strategies {
		w, reader := roundTripWriter(t)

		require.NoError(t, EncodeInt64Column(w, vals, strat, cfg))

		dec, err := NewInt64ColumnDecoder(reader(), strat)
		require.NoError(t, err)
		assert.Equal(t, vals, drainInt64(t, dec))
	}
}

func drainFloat64(t *testing.T, dec *Float64ColumnDecoder) []float64 {
	t.Helper()

	var out []float64
	for {
		v, ok, err := dec.Next()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestFloat64ColumnDecoder_MatchesDecodeFloat64Column(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	vals := []float64{1.5, 1.5, 2.25, 3.125}

	for _, strat := range []schema.Strategy{schema.StrategyNone, schema.StrategyRLE} {
		w, reader := roundTripWriter(t)

		require.NoError(t, EncodeFloat64Column(w, vals, strat, cfg))

		dec, err := NewFloat64ColumnDecoder(reader(), strat)
		require.NoError(t, err)
		assert.Equal(t, vals, drainFloat64(t, dec))
	}
}

func drainString(t *testing.T, dec *StringColumnDecoder) []string {
	t.Helper()

	var out []string
	for {
		v, ok, err := dec.Next()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestStringColumnDecoder_MatchesDecodeStringColumn(t *testing.T) {
	cfg := column.DefaultCompressionConfig()
	vals := []string{"a", "a", "b", "c", "c"}

	for _, strat := range []schema.Strategy{schema.StrategyNone, schema.StrategyRLE} {
		w, reader := roundTripWriter(t)

		require.NoError(t, EncodeStringColumn(w, vals, strat, cfg))

		dec, err := NewStringColumnDecoder(reader(), strat)
		require.NoError(t, err)
		assert.Equal(t, vals, drainString(t, dec))
	}
}

func TestInt64ColumnDecoder_InvalidStrategy(t *testing.T) {
	_, reader := roundTripWriter(t)

	_, err := NewInt64ColumnDecoder(reader(), schema.StrategyBoolRLE)
	assert.Error(t, err)
}
