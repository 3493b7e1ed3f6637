package primitive

import "github.com/colcodec/columnar/internal/i128"

// zigzagEncode128 maps a signed Int128 onto an unsigned 128-bit magnitude
// (returned as hi,lo words), the same way zigzagEncode64 does for int64.
func zigzagEncode128(v i128.Int128) (hi, lo uint64) {
	shiftedHi := (v.Hi << 1) | (v.Lo >> 63)
	shiftedLo := v.Lo << 1

	if v.IsNeg() {
		return ^shiftedHi, ^shiftedLo
	}

	return shiftedHi, shiftedLo
}

// zigzagDecode128 is the inverse of zigzagEncode128.
func zigzagDecode128(hi, lo uint64) i128.Int128 {
	sign := lo & 1
	magHi := hi >> 1
	magLo := (lo >> 1) | (hi << 63)

	if sign == 1 {
		return i128.Int128{Hi: ^magHi, Lo: ^magLo}
	}

	return i128.Int128{Hi: magHi, Lo: magLo}
}
