package strategy

import (
	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/primitive"
)

// maxDeltaOfDelta bounds the widest bit-packed payload tier before falling
// back to a raw 64-bit second difference.
const maxDeltaOfDelta = int64(1) << 20

// DeltaOfDeltaEncoder bit-packs an i64 sequence's second differences using a
// 5-tier variable-width prefix code, favoring short codes for sequences
// whose first differences barely change (e.g. near-regular timestamps).
//
// Only int64 is supported: the bit-packing table is defined entirely in
// terms of i64 arithmetic and does not generalize to wider or unsigned
// types.
type DeltaOfDeltaEncoder struct {
	bits        []uint64
	lastUsedBit uint8

	hasHead   bool
	headValue int64
	usedBits  bool

	prevValue int64
	prevDelta int64
}

// NewDeltaOfDeltaEncoder creates an empty encoder.
func NewDeltaOfDeltaEncoder() *DeltaOfDeltaEncoder {
	return &DeltaOfDeltaEncoder{bits: []uint64{0}}
}

// Append feeds the next i64 value in sequence order. Returns
// errs.ErrRleEncode if a delta or delta-of-delta computation overflows i64.
func (e *DeltaOfDeltaEncoder) Append(value int64) error {
	if !e.hasHead {
		e.hasHead = true
		e.headValue = value
		e.prevValue = value

		return nil
	}

	delta, ok := checkedSub64(value, e.prevValue)
	if !ok {
		return errs.ErrRleEncode
	}

	dd, ok := checkedSub64(delta, e.prevDelta)
	if !ok {
		return errs.ErrRleEncode
	}

	e.prevValue = value
	e.prevDelta = delta
	e.usedBits = true
	e.writeDD(dd)

	return nil
}

func (e *DeltaOfDeltaEncoder) writeDD(dd int64) {
	switch {
	case dd == 0:
		e.writeBits(0, 1)
	case dd >= -63 && dd <= 64:
		e.writeBits(0b10, 2)
		e.writeBits(uint64(dd+63), 7)
	case dd >= -255 && dd <= 256:
		e.writeBits(0b110, 3)
		e.writeBits(uint64(dd+255), 9)
	case dd >= -2047 && dd <= 2048:
		e.writeBits(0b1110, 4)
		e.writeBits(uint64(dd+2047), 12)
	case dd >= -(maxDeltaOfDelta-1) && dd <= maxDeltaOfDelta:
		e.writeBits(0b11110, 5)
		e.writeBits(uint64(dd+maxDeltaOfDelta-1), 21)
	default:
		e.writeBits(0b11111, 5)
		e.writeBits(uint64(dd), 64)
	}
}

// writeBits packs the low `count` bits of value into the bit stream,
// most-significant-bit first, appending new 64-bit words as needed.
func (e *DeltaOfDeltaEncoder) writeBits(value uint64, count uint8) {
	if e.lastUsedBit == 64 {
		e.bits = append(e.bits, value<<(64-count))
		e.lastUsedBit = count

		return
	}

	remaining := 64 - e.lastUsedBit
	if count > remaining {
		highPart := value >> (count - remaining)
		e.bits[len(e.bits)-1] |= highPart
		e.lastUsedBit = 64

		lowCount := count - remaining
		lowMask := uint64(1)<<lowCount - 1
		lowPart := value & lowMask
		e.bits = append(e.bits, lowPart<<(64-lowCount))
		e.lastUsedBit = lowCount

		return
	}

	shift := remaining - count
	e.bits[len(e.bits)-1] |= value << shift
	e.lastUsedBit += count
}

// Finish writes the accumulated head value, tail-bits marker, and packed
// words to w. Must be called exactly once after the last Append.
func (e *DeltaOfDeltaEncoder) Finish(w *primitive.Writer) {
	if e.hasHead {
		w.WriteIvarint(e.headValue)
	}

	tailBits := e.lastUsedBit % 8
	if e.lastUsedBit%8 == 0 && e.usedBits {
		tailBits = 8
	}

	w.WriteRawByte(tailBits)

	n := len(e.bits)
	for i := 0; i < n-1; i++ {
		writeWordBE(w, e.bits[i])
	}

	lastBytes := (int(e.lastUsedBit) + 7) / 8
	writeWordBETrunc(w, e.bits[n-1], lastBytes)
}

func writeWordBE(w *primitive.Writer, word uint64) {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(word >> (56 - 8*i))
	}
	for i := range b {
		w.WriteRawByte(b[i])
	}
}

func writeWordBETrunc(w *primitive.Writer, word uint64, n int) {
	for i := 0; i < n; i++ {
		w.WriteRawByte(byte(word >> (56 - 8*i)))
	}
}

// checkedSub64 returns a-b and ok=true, or ok=false if the subtraction
// overflows int64.
func checkedSub64(a, b int64) (int64, bool) {
	diff := a - b
	if ((a ^ b) < 0) && ((a ^ diff) < 0) {
		return 0, false
	}

	return diff, true
}

// DeltaOfDeltaDecoder decodes a byte stream produced by
// DeltaOfDeltaEncoder.Finish. It operates on the exact column body slice
// (no shared cursor), since it must disambiguate an absent head value from
// a present one by total length alone, the same way the encoder's wire
// form does.
type DeltaOfDeltaDecoder struct {
	empty bool

	hasHead   bool
	headValue int64
	headDone  bool

	bits        []byte
	lastUsedBit uint8
	bitPos      int

	prevValue int64
	prevDelta int64
}

// NewDeltaOfDeltaDecoder parses data (the exact body of one DeltaOfDelta
// column) into a decoder ready to yield values via Next.
func NewDeltaOfDeltaDecoder(data []byte) (*DeltaOfDeltaDecoder, error) {
	if len(data) < 2 {
		d := &DeltaOfDeltaDecoder{empty: true}
		if len(data) == 1 {
			d.lastUsedBit = data[0]
		}

		return d, nil
	}

	r := primitive.NewReader(data, nil)

	head, err := r.ReadIvarint()
	if err != nil {
		return nil, errs.ErrRleDecode
	}

	rest := data[r.Pos():]
	if len(rest) == 0 {
		return nil, errs.ErrRleDecode
	}

	return &DeltaOfDeltaDecoder{
		hasHead:     true,
		headValue:   head,
		lastUsedBit: rest[0],
		bits:        rest[1:],
	}, nil
}

func (d *DeltaOfDeltaDecoder) totalBits() int {
	if len(d.bits) == 0 {
		return 0
	}

	return (len(d.bits)-1)*8 + int(d.lastUsedBit)
}

func (d *DeltaOfDeltaDecoder) readBits(count int) (uint64, bool) {
	total := d.totalBits()
	if d.bitPos+count > total {
		return 0, false
	}

	var v uint64
	for range count {
		byteIdx := d.bitPos / 8
		bitIdx := 7 - d.bitPos%8
		bit := (d.bits[byteIdx] >> uint(bitIdx)) & 1
		v = (v << 1) | uint64(bit)
		d.bitPos++
	}

	return v, true
}

// Next returns the next reconstructed i64 value, or ok=false on clean end
// of stream, or a non-nil error on malformed input.
func (d *DeltaOfDeltaDecoder) Next() (v int64, ok bool, err error) {
	if d.empty {
		return 0, false, nil
	}

	if d.hasHead && !d.headDone {
		d.headDone = true
		d.prevValue = d.headValue

		return d.headValue, true, nil
	}

	if !d.hasHead {
		return 0, false, nil
	}

	b0, ok := d.readBits(1)
	if !ok {
		return 0, false, nil
	}

	var dd int64

	if b0 == 0 {
		d.prevValue += d.prevDelta

		return d.prevValue, true, nil
	}

	b1, ok := d.readBits(1)
	if !ok {
		return 0, false, errs.ErrRleDecode
	}

	switch {
	case b1 == 0:
		payload, ok := d.readBits(7)
		if !ok {
			return 0, false, errs.ErrRleDecode
		}

		dd = int64(payload) - 63
	default:
		b2, ok := d.readBits(1)
		if !ok {
			return 0, false, errs.ErrRleDecode
		}

		switch {
		case b2 == 0:
			payload, ok := d.readBits(9)
			if !ok {
				return 0, false, errs.ErrRleDecode
			}

			dd = int64(payload) - 255
		default:
			b3, ok := d.readBits(1)
			if !ok {
				return 0, false, errs.ErrRleDecode
			}

			switch {
			case b3 == 0:
				payload, ok := d.readBits(12)
				if !ok {
					return 0, false, errs.ErrRleDecode
				}

				dd = int64(payload) - 2047
			default:
				b4, ok := d.readBits(1)
				if !ok {
					return 0, false, errs.ErrRleDecode
				}

				if b4 == 0 {
					payload, ok := d.readBits(21)
					if !ok {
						return 0, false, errs.ErrRleDecode
					}

					dd = int64(payload) - (maxDeltaOfDelta - 1)
				} else {
					payload, ok := d.readBits(64)
					if !ok {
						return 0, false, errs.ErrRleDecode
					}

					dd = int64(payload)
				}
			}
		}
	}

	d.prevDelta += dd
	d.prevValue += d.prevDelta

	return d.prevValue, true, nil
}

// All returns a lazy iterator over the decoded sequence.
func (d *DeltaOfDeltaDecoder) All() func(yield func(int64, error) bool) {
	return func(yield func(int64, error) bool) {
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
