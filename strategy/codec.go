// Package strategy implements the four column compression strategies this
// module supports: AnyRLE (generic run-length), BoolRLE (alternating-run
// booleans), DeltaRLE (run-length over first differences) and DeltaOfDelta
// (bit-packed second differences, i64 only).
//
// Each strategy exposes an encoder and a decoder whose Next method pulls
// one value at a time. The AnyRLE, BoolRLE and DeltaOfDelta decoders also
// offer an iter.Seq2-shaped All iterator, mirroring the All convention
// mebo's encoding package uses for its own codecs, and AnyRLE and BoolRLE
// have batch DecodeAll helpers. DeltaRleDecoder has neither.
package strategy

import "github.com/colcodec/columnar/primitive"

// MaxRunLength bounds the run length any strategy's decoder will accept,
// guarding against unbounded allocation from adversarial input. Pinned to
// the reference implementation's MAX_RLE_COUNT.
const MaxRunLength = 1_000_000_000

// ValueCodec supplies the primitive read/write pair for a run's element
// type T, letting AnyRLE and DeltaRLE stay generic over T.
type ValueCodec[T comparable] struct {
	Write func(w *primitive.Writer, v T)
	Read  func(r *primitive.Reader) (T, error)
}
