package primitive

import (
	"encoding/binary"

	"github.com/colcodec/columnar/endian"
	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/internal/i128"
)

// Reader pulls primitive values out of a byte slice sequentially, advancing
// an internal cursor. A Reader is not safe for concurrent use.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewReader creates a Reader over data using engine for float and
// multi-byte integer byte order.
func NewReader(data []byte, engine endian.EndianEngine) *Reader {
	return &Reader{data: data, engine: engine}
}

// Pos returns the current read cursor, in bytes from the start of data.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Done reports whether the cursor has reached the end of data.
func (r *Reader) Done() bool {
	return r.pos >= len(r.data)
}

// Engine returns the byte order this Reader decodes floats and raw
// multi-byte integers with.
func (r *Reader) Engine() endian.EndianEngine {
	return r.engine
}

// ReadUvarint reads an unsigned LEB128 varint.
func (r *Reader) ReadUvarint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errs.ErrUnexpectedEnd
	}

	r.pos += n

	return v, nil
}

// ReadIvarint reads a zigzag-encoded signed varint.
func (r *Reader) ReadIvarint() (int64, error) {
	v, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}

	return zigzagDecode64(v), nil
}

// ReadI128Varint reads a zigzag-encoded 128-bit signed varint written by
// Writer.WriteI128Varint.
func (r *Reader) ReadI128Varint() (i128.Int128, error) {
	var hi, lo uint64
	var shift uint

	for {
		if r.Done() {
			return i128.Int128{}, errs.ErrUnexpectedEnd
		}

		b := r.data[r.pos]
		r.pos++

		chunk := uint64(b & 0x7f)
		if shift < 64 {
			lo |= chunk << shift
			if shift+7 > 64 {
				hi |= chunk >> (64 - shift)
			}
		} else {
			hi |= chunk << (shift - 64)
		}

		shift += 7

		if b&0x80 == 0 {
			break
		}

		if shift > 127+7 {
			return i128.Int128{}, errs.ErrOverflow
		}
	}

	return zigzagDecode128(hi, lo), nil
}

// ReadBool reads a single byte, true for non-zero.
func (r *Reader) ReadBool() (bool, error) {
	if r.Done() {
		return false, errs.ErrUnexpectedEnd
	}

	b := r.data[r.pos]
	r.pos++

	return b != 0, nil
}

// ReadF64 reads 8 raw bytes in the Reader's byte order.
func (r *Reader) ReadF64() (float64, error) {
	if r.Remaining() < 8 {
		return 0, errs.ErrUnexpectedEnd
	}

	v := float64frombits(r.engine.Uint64(r.data[r.pos:]))
	r.pos += 8

	return v, nil
}

// ReadF32 reads 4 raw bytes in the Reader's byte order.
func (r *Reader) ReadF32() (float32, error) {
	if r.Remaining() < 4 {
		return 0, errs.ErrUnexpectedEnd
	}

	v := float32frombits(r.engine.Uint32(r.data[r.pos:]))
	r.pos += 4

	return v, nil
}

// ReadStr reads a [uvarint length][UTF-8 bytes] string. The returned string
// is a copy and does not alias data (unlike ReadBytes).
func (r *Reader) ReadStr() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// ReadBytes reads a [uvarint length][raw bytes] byte slice. The returned
// slice aliases data.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}

	if n > uint64(r.Remaining()) {
		return nil, errs.ErrUnexpectedEnd
	}

	b := r.data[r.pos : r.pos+int(n)]
	r.pos += int(n)

	return b, nil
}

// ReadSeqHeader reads the element count written by Writer.WriteSeqHeader.
func (r *Reader) ReadSeqHeader() (int, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// ReadTupleHeader is a no-op counterpart to Writer.WriteTupleHeader: tuple
// arity is fixed by the schema, so there is nothing on the wire to read.
func (r *Reader) ReadTupleHeader(n int) error {
	_ = n
	return nil
}
