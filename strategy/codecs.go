package strategy

import "github.com/colcodec/columnar/primitive"

// Exported ValueCodecs for the primitive types AnyRleEncoder/Decoder
// support, so callers outside this package (rowcol's typed column
// containers) don't need to hand-write the Write/Read pair themselves.

// Int64Codec encodes int64 values as zigzag varints.
var Int64Codec = ValueCodec[int64]{
	Write: func(w *primitive.Writer, v int64) { w.WriteIvarint(v) },
	Read:  func(r *primitive.Reader) (int64, error) { return r.ReadIvarint() },
}

// Uint64Codec encodes uint64 values as unsigned varints.
var Uint64Codec = ValueCodec[uint64]{
	Write: func(w *primitive.Writer, v uint64) { w.WriteUvarint(v) },
	Read:  func(r *primitive.Reader) (uint64, error) { return r.ReadUvarint() },
}

// Float64Codec encodes float64 values as raw IEEE-754 bit patterns.
var Float64Codec = ValueCodec[float64]{
	Write: func(w *primitive.Writer, v float64) { w.WriteF64(v) },
	Read:  func(r *primitive.Reader) (float64, error) { return r.ReadF64() },
}

// Float32Codec encodes float32 values as raw IEEE-754 bit patterns.
var Float32Codec = ValueCodec[float32]{
	Write: func(w *primitive.Writer, v float32) { w.WriteF32(v) },
	Read:  func(r *primitive.Reader) (float32, error) { return r.ReadF32() },
}

// StringCodec encodes strings as length-prefixed UTF-8 bytes. String is
// comparable, so AnyRLE's run detection works on it directly.
var StringCodec = ValueCodec[string]{
	Write: func(w *primitive.Writer, v string) { w.WriteStr(v) },
	Read:  func(r *primitive.Reader) (string, error) { return r.ReadStr() },
}
