package rowcol

import (
	"github.com/colcodec/columnar/column"
	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/primitive"
	"github.com/colcodec/columnar/schema"
	"github.com/colcodec/columnar/strategy"
)

// Float64Column is a materialized float64 column. Floats are treated as
// opaque bit patterns for equality (no lossless ordering semantics), so
// only None and RLE (equal-bit-pattern run detection) apply; the delta
// strategies require an integer field.
type Float64Column []float64

// EncodeFloat64Column writes values as one table tuple element under strat.
func EncodeFloat64Column(w *primitive.Writer, values []float64, strat schema.Strategy, cfg column.CompressionConfig) error {
	switch strat {
	case schema.StrategyNone:
		w.WriteSeqHeader(len(values))
		for _, v := range values {
			w.WriteF64(v)
		}

		return nil

	case schema.StrategyRLE:
		sub := primitive.NewWriter(w.Engine())
		defer sub.Release()

		enc := strategy.NewAnyRleEncoder(sub, strategy.Float64Codec)
		enc.AppendSlice(values)
		enc.Finish()

		return frameBody(w, sub.Bytes(), cfg)

	default:
		return errs.ErrInvalidStrategy
	}
}

// DecodeFloat64Column reads one table tuple element produced by
// EncodeFloat64Column.
func DecodeFloat64Column(r *primitive.Reader, strat schema.Strategy) ([]float64, error) {
	switch strat {
	case schema.StrategyNone:
		n, err := r.ReadSeqHeader()
		if err != nil {
			return nil, err
		}

		out := make([]float64, n)
		for i := range out {
			v, err := r.ReadF64()
			if err != nil {
				return nil, err
			}

			out[i] = v
		}

		return out, nil

	case schema.StrategyRLE:
		body, err := unframeBody(r)
		if err != nil {
			return nil, err
		}

		sub := primitive.NewReader(body, r.Engine())

		return strategy.DecodeAllAnyRle(sub, strategy.Float64Codec)

	default:
		return nil, errs.ErrInvalidStrategy
	}
}

// Float64ColumnDecoder streams one table tuple element's float64 values
// without materializing the full column; see Int64ColumnDecoder's doc
// comment for the lazy-decode/eager-unframe split this follows.
type Float64ColumnDecoder struct {
	next func() (float64, bool, error)
}

// NewFloat64ColumnDecoder returns a streaming decoder for one table tuple
// element produced by EncodeFloat64Column.
func NewFloat64ColumnDecoder(r *primitive.Reader, strat schema.Strategy) (*Float64ColumnDecoder, error) {
	switch strat {
	case schema.StrategyNone:
		n, err := r.ReadSeqHeader()
		if err != nil {
			return nil, err
		}

		i := 0

		return &Float64ColumnDecoder{next: func() (float64, bool, error) {
			if i >= n {
				return 0, false, nil
			}

			v, err := r.ReadF64()
			if err != nil {
				return 0, false, err
			}

			i++

			return v, true, nil
		}}, nil

	case schema.StrategyRLE:
		body, err := unframeBody(r)
		if err != nil {
			return nil, err
		}

		sub := primitive.NewReader(body, r.Engine())
		dec := strategy.NewAnyRleDecoder(sub, strategy.Float64Codec)

		return &Float64ColumnDecoder{next: dec.Next}, nil

	default:
		return nil, errs.ErrInvalidStrategy
	}
}

// Next returns the next value, or ok=false at the column's clean end.
func (d *Float64ColumnDecoder) Next() (float64, bool, error) {
	return d.next()
}
