package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/internal/i128"
	"github.com/colcodec/columnar/primitive"
)

func TestDeltaRleRoundTripInt64(t *testing.T) {
	vals := []int64{1, 2, 3, 4, 5, 6}

	w := primitive.NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	enc := NewDeltaRleEncoder(w)
	for _, v := range vals {
		enc.AppendInt64(v)
	}
	enc.Finish()

	r := primitive.NewReader(w.Bytes(), endian.GetLittleEndianEngine())
	dec := NewDeltaRleDecoder(r)

	var got []int64
	for {
		v, ok, err := dec.NextInt64()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, v)
	}

	assert.Equal(t, vals, got)
}

func TestDeltaRleConstantRun(t *testing.T) {
	vals := []int64{1000, 1000, 2, 2, 2}

	w := primitive.NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	enc := NewDeltaRleEncoder(w)
	for _, v := range vals {
		enc.AppendInt64(v)
	}
	enc.Finish()

	r := primitive.NewReader(w.Bytes(), endian.GetLittleEndianEngine())
	dec := NewDeltaRleDecoder(r)

	var got []int64
	for {
		v, ok, err := dec.NextInt64()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, v)
	}

	assert.Equal(t, vals, got)
}

func TestDeltaRleNarrowingFailure(t *testing.T) {
	w := primitive.NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	enc := NewDeltaRleEncoder(w)
	enc.Append(i128.Max128)
	enc.Finish()

	r := primitive.NewReader(w.Bytes(), endian.GetLittleEndianEngine())
	dec := NewDeltaRleDecoder(r)

	_, _, err := dec.NextInt64()
	assert.Error(t, err)
}
