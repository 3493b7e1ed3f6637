// Package estimate provides closed-form byte-size estimates for a column
// before it is encoded, so a caller can pick a strategy or decide whether
// a compression threshold is worth paying for without running the actual
// encoder first.
//
// This replaces the purpose of the teacher's regression package
// (predicting serialized size) without its machinery: the teacher fits a
// statistical model (hyperbolic/logarithmic/power/exponential/polynomial)
// over historical encode sizes via least squares, calibrated ahead of
// time. There is no equivalent training/calibration phase in this data
// model — a column's size is a direct function of its strategy and value
// distribution, not something to be fitted from a corpus of prior blobs —
// so the estimates here are analytic worst-case and typical-case byte
// costs per strategy, derived directly from each encoder's own wire
// format rather than a fitted curve.
package estimate

import "github.com/colcodec/columnar/schema"

// varintLen mirrors primitive's internal fast varint length table; kept
// here as its own copy since estimate must stay a read-only, side-effect-
// free sizing tool with no dependency on primitive's buffer machinery.
func varintLen(n uint64) int {
	switch {
	case n < 1<<7:
		return 1
	case n < 1<<14:
		return 2
	case n < 1<<21:
		return 3
	case n < 1<<28:
		return 4
	case n < 1<<35:
		return 5
	case n < 1<<42:
		return 6
	case n < 1<<49:
		return 7
	case n < 1<<56:
		return 8
	case n < 1<<63:
		return 9
	default:
		return 10
	}
}

// Column estimates one column's encoded size before compression framing:
// Worst is the size if every run breaks (the literal-run case for RLE
// family strategies, or every delta/delta-of-delta tier maxing out), and
// Typical is the size assuming the caller-supplied AvgRunLength holds.
type Column struct {
	Worst   int
	Typical int
}

// Params describes what's known about a column ahead of encoding.
type Params struct {
	// Count is the number of values in the column.
	Count int
	// ElemSize is the wire size of one element under StrategyNone: 8 for
	// float64, 4 for float32, 1 for bool. int64 and uint64 values are
	// varints of 1 to 10 bytes, so for them ElemSize is an average. Ignored
	// for string/bytes columns (use StringColumn instead).
	ElemSize int
	// AvgRunLength is the expected average number of consecutive equal
	// values, used for the Typical estimate of RLE-family strategies.
	// A value <= 1 means "assume no repetition": Typical == Worst for RLE
	// and BoolRLE, while DeltaRLE's Typical still assumes small deltas.
	// DeltaOfDelta ignores it.
	AvgRunLength float64
}

// PrimitiveColumn estimates a fixed-width primitive column (int64, uint64,
// float64, float32, bool handled via ElemSize) under strat.
func PrimitiveColumn(p Params, strat schema.Strategy) Column {
	switch strat {
	case schema.StrategyNone:
		size := seqHeaderLen(p.Count) + p.Count*p.ElemSize
		return Column{Worst: size, Typical: size}

	case schema.StrategyRLE:
		return anyRleColumn(p)

	case schema.StrategyBoolRLE:
		return boolRleColumn(p)

	case schema.StrategyDeltaRLE:
		return deltaRleColumn(p)

	case schema.StrategyDeltaOfDelta:
		return deltaOfDeltaColumn(p)

	default:
		return Column{}
	}
}

// anyRleColumn estimates AnyRleEncoder's output: every run (repeat or
// literal) costs one ivarint prefix plus, for a repeat run, one element;
// for a literal run, one element per value. Worst case is "every value a
// distinct literal run of length 1" (prefix dominates); typical assumes
// AvgRunLength-sized repeat runs.
func anyRleColumn(p Params) Column {
	worst := p.Count * (1 + p.ElemSize) // 1-byte ivarint(-1) prefix per literal element, worst case

	typical := worst
	if p.AvgRunLength > 1 {
		runs := float64(p.Count) / p.AvgRunLength
		typical = int(runs*(1+float64(p.ElemSize)) + 0.5)
	}

	return Column{Worst: worst, Typical: typical}
}

// boolRleColumn estimates BoolRleEncoder's output: a single uvarint run
// count per run, no per-element payload (the value alternates implicitly).
// Worst case is one run per value (maximal alternation).
func boolRleColumn(p Params) Column {
	worst := p.Count * 1 // 1-byte uvarint per alternating run, worst case

	typical := worst
	if p.AvgRunLength > 1 {
		runs := float64(p.Count) / p.AvgRunLength
		typical = int(runs*2 + 0.5) // runs tend to need a 2-byte uvarint past 127
	}

	return Column{Worst: worst, Typical: typical}
}

// deltaRleColumn estimates DeltaRleEncoder's output: it is an
// AnyRleEncoder[i128.Int128] over first differences, so the run-length
// framing cost is the same as anyRleColumn, but the per-element payload
// is a saturating i128 varint. Worst case assumes the full 19-byte i128
// varint (the type's maximum); typical assumes a small, typically-1-to-2
// -byte delta.
func deltaRleColumn(p Params) Column {
	const maxI128VarintLen = 19
	const typicalDeltaLen = 2

	worst := p.Count * (1 + maxI128VarintLen)

	typical := worst
	if p.AvgRunLength > 1 {
		runs := float64(p.Count) / p.AvgRunLength
		typical = int(runs*(1+typicalDeltaLen) + 0.5)
	} else {
		typical = p.Count * (1 + typicalDeltaLen)
	}

	return Column{Worst: worst, Typical: typical}
}

// deltaOfDeltaColumn estimates DeltaOfDeltaEncoder's output: one ivarint
// head value, then a bit-packed second-difference stream whose per-value
// cost ranges from 1 bit (dd==0) to 64 bits (the raw fallback tier) plus a
// prefix of up to 5 bits. Worst case assumes every value hits the 64-bit
// raw tier behind its 5-bit prefix; typical assumes 2 bits per value, a
// regular timestamp cadence where most second differences are zero.
func deltaOfDeltaColumn(p Params) Column {
	const headLen = 10 // worst-case ivarint(int64) length
	const worstBitsPerValue = 5 + 64
	const typicalBitsPerValue = 2

	if p.Count == 0 {
		return Column{Worst: 1, Typical: 1}
	}

	n := p.Count - 1 // first value is the head, not a delta-of-delta

	worstBits := n * worstBitsPerValue
	typicalBits := n * typicalBitsPerValue

	return Column{
		Worst:   headLen + 1 + (worstBits+7)/8,
		Typical: headLen + 1 + (typicalBits+7)/8,
	}
}

// seqHeaderLen mirrors primitive.Writer.WriteSeqHeader's wire cost: a
// single uvarint of the element count.
func seqHeaderLen(n int) int {
	return varintLen(uint64(n))
}

// StringColumn estimates a string/bytes column under strat, given the
// average encoded element length (UTF-8 bytes for strings, raw length for
// byte slices) in AvgElemLen. Only StrategyNone and StrategyRLE apply;
// bytes columns beyond StrategyNone are rejected by rowcol at encode time,
// so callers estimating those should pass StrategyNone.
func StringColumn(count int, avgElemLen float64, avgRunLength float64, strat schema.Strategy) Column {
	perElem := int(avgElemLen+0.5) + varintLen(uint64(avgElemLen+0.5))

	switch strat {
	case schema.StrategyNone:
		size := seqHeaderLen(count) + count*perElem
		return Column{Worst: size, Typical: size}

	case schema.StrategyRLE:
		worst := count * (1 + perElem)

		typical := worst
		if avgRunLength > 1 {
			runs := float64(count) / avgRunLength
			typical = int(runs*(1+float64(perElem)) + 0.5)
		}

		return Column{Worst: worst, Typical: typical}

	default:
		return Column{}
	}
}
