package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/internal/i128"
)

func newPair() (*Writer, endian.EndianEngine) {
	engine := endian.GetLittleEndianEngine()
	return NewWriter(engine), engine
}

func TestUvarintRoundTrip(t *testing.T) {
	w, engine := newPair()
	defer w.Release()

	vals := []uint64{0, 1, 127, 128, 300, 1 << 40, ^uint64(0)}
	for _, v := range vals {
		w.WriteUvarint(v)
	}

	r := NewReader(w.Bytes(), engine)
	for _, want := range vals {
		got, err := r.ReadUvarint()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, r.Done())
}

func TestIvarintRoundTrip(t *testing.T) {
	w, engine := newPair()
	defer w.Release()

	vals := []int64{0, -1, 1, -1000, 1000, minInt64(), maxInt64()}
	for _, v := range vals {
		w.WriteIvarint(v)
	}

	r := NewReader(w.Bytes(), engine)
	for _, want := range vals {
		got, err := r.ReadIvarint()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestI128VarintRoundTrip(t *testing.T) {
	w, engine := newPair()
	defer w.Release()

	vals := []i128.Int128{
		i128.FromInt64(0),
		i128.FromInt64(-1),
		i128.FromInt64(1),
		i128.FromInt64(-1000000),
		i128.Max128,
		i128.Min128,
	}
	for _, v := range vals {
		w.WriteI128Varint(v)
	}

	r := NewReader(w.Bytes(), engine)
	for _, want := range vals {
		got, err := r.ReadI128Varint()
		require.NoError(t, err)
		assert.True(t, want.Equal(got))
	}
}

func TestBoolRoundTrip(t *testing.T) {
	w, engine := newPair()
	defer w.Release()

	w.WriteBool(true)
	w.WriteBool(false)

	r := NewReader(w.Bytes(), engine)
	v1, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, v1)

	v2, err := r.ReadBool()
	require.NoError(t, err)
	assert.False(t, v2)
}

func TestFloatRoundTrip(t *testing.T) {
	w, engine := newPair()
	defer w.Release()

	w.WriteF64(3.14159)
	w.WriteF32(2.5)

	r := NewReader(w.Bytes(), engine)
	f64, err := r.ReadF64()
	require.NoError(t, err)
	assert.Equal(t, 3.14159, f64)

	f32, err := r.ReadF32()
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), f32)
}

func TestStrBytesRoundTrip(t *testing.T) {
	w, engine := newPair()
	defer w.Release()

	w.WriteStr("hello")
	w.WriteStr("")
	w.WriteBytes([]byte{1, 2, 3})

	r := NewReader(w.Bytes(), engine)
	s1, err := r.ReadStr()
	require.NoError(t, err)
	assert.Equal(t, "hello", s1)

	s2, err := r.ReadStr()
	require.NoError(t, err)
	assert.Equal(t, "", s2)

	b, err := r.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestSeqHeaderRoundTrip(t *testing.T) {
	w, engine := newPair()
	defer w.Release()

	w.WriteSeqHeader(42)

	r := NewReader(w.Bytes(), engine)
	n, err := r.ReadSeqHeader()
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestReadUnexpectedEnd(t *testing.T) {
	_, engine := newPair()
	r := NewReader([]byte{}, engine)

	_, err := r.ReadUvarint()
	assert.Error(t, err)

	_, err = r.ReadBool()
	assert.Error(t, err)

	_, err = r.ReadF64()
	assert.Error(t, err)
}

func minInt64() int64 { return -1 << 63 }
func maxInt64() int64 { return 1<<63 - 1 }
