package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/primitive"
)

func TestWriter_RowCountRoundTrip(t *testing.T) {
	w := NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	w.WriteRowCount(42)

	r, err := NewReader(w.Bytes(), endian.GetLittleEndianEngine())
	require.NoError(t, err)

	n, err := r.ReadRowCount()
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestWriter_OptionalFieldsRoundTrip(t *testing.T) {
	w := NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	w.WriteRowCount(2)
	w.WriteOptionalField(5, func(sub *primitive.Writer) { sub.WriteStr("hello") })
	w.WriteOptionalField(9, func(sub *primitive.Writer) { sub.WriteIvarint(-7) })

	r, err := NewReader(w.Bytes(), endian.GetLittleEndianEngine())
	require.NoError(t, err)

	n, err := r.ReadRowCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	fields, err := r.OptionalFields()
	require.NoError(t, err)
	require.Len(t, fields, 2)

	sub5 := primitive.NewReader(fields[5], endian.GetLittleEndianEngine())
	s, err := sub5.ReadStr()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	sub9 := primitive.NewReader(fields[9], endian.GetLittleEndianEngine())
	v, err := sub9.ReadIvarint()
	require.NoError(t, err)
	assert.Equal(t, int64(-7), v)
}

func TestReader_OptionalFields_UnknownIndexIgnored(t *testing.T) {
	w := NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	w.WriteRowCount(0)
	w.WriteOptionalField(1, func(sub *primitive.Writer) { sub.WriteBool(true) })
	w.WriteOptionalField(99, func(sub *primitive.Writer) { sub.WriteBool(false) })

	r, err := NewReader(w.Bytes(), endian.GetLittleEndianEngine())
	require.NoError(t, err)

	_, err = r.ReadRowCount()
	require.NoError(t, err)

	fields, err := r.OptionalFields()
	require.NoError(t, err)

	// A caller only interested in index 1 simply never looks up 99.
	sub1 := primitive.NewReader(fields[1], endian.GetLittleEndianEngine())
	v, err := sub1.ReadBool()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestReader_OptionalFields_DuplicateIndexRejected(t *testing.T) {
	w := NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	w.WriteRowCount(0)
	w.WriteOptionalField(3, func(sub *primitive.Writer) { sub.WriteBool(true) })
	w.WriteOptionalField(3, func(sub *primitive.Writer) { sub.WriteBool(false) })

	r, err := NewReader(w.Bytes(), endian.GetLittleEndianEngine())
	require.NoError(t, err)

	_, err = r.ReadRowCount()
	require.NoError(t, err)

	_, err = r.OptionalFields()
	assert.Error(t, err)
}

func TestWriter_ChecksumRoundTrip(t *testing.T) {
	w := NewWriter(endian.GetLittleEndianEngine(), WithChecksum())
	defer w.Release()

	w.WriteRowCount(7)

	r, err := NewReader(w.Bytes(), endian.GetLittleEndianEngine(), ExpectChecksum())
	require.NoError(t, err)

	n, err := r.ReadRowCount()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestReader_ChecksumMismatch(t *testing.T) {
	w := NewWriter(endian.GetLittleEndianEngine(), WithChecksum())
	defer w.Release()

	w.WriteRowCount(7)

	data := w.Bytes()
	data[0] ^= 0xFF // corrupt the body, leaving the trailing checksum stale

	_, err := NewReader(data, endian.GetLittleEndianEngine(), ExpectChecksum())
	assert.Error(t, err)
}

func TestReader_ChecksumTooShort(t *testing.T) {
	_, err := NewReader([]byte{1, 2}, endian.GetLittleEndianEngine(), ExpectChecksum())
	assert.Error(t, err)
}
