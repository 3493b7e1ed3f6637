package rowcol

import (
	"github.com/colcodec/columnar/column"
	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/primitive"
	"github.com/colcodec/columnar/schema"
	"github.com/colcodec/columnar/strategy"
)

// Float32Column is a materialized float32 column; see Float64Column's
// comment on float equality/strategy applicability.
type Float32Column []float32

// EncodeFloat32Column writes values as one table tuple element under strat.
func EncodeFloat32Column(w *primitive.Writer, values []float32, strat schema.Strategy, cfg column.CompressionConfig) error {
	switch strat {
	case schema.StrategyNone:
		w.WriteSeqHeader(len(values))
		for _, v := range values {
			w.WriteF32(v)
		}

		return nil

	case schema.StrategyRLE:
		sub := primitive.NewWriter(w.Engine())
		defer sub.Release()

		enc := strategy.NewAnyRleEncoder(sub, strategy.Float32Codec)
		enc.AppendSlice(values)
		enc.Finish()

		return frameBody(w, sub.Bytes(), cfg)

	default:
		return errs.ErrInvalidStrategy
	}
}

// DecodeFloat32Column reads one table tuple element produced by
// EncodeFloat32Column.
func DecodeFloat32Column(r *primitive.Reader, strat schema.Strategy) ([]float32, error) {
	switch strat {
	case schema.StrategyNone:
		n, err := r.ReadSeqHeader()
		if err != nil {
			return nil, err
		}

		out := make([]float32, n)
		for i := range out {
			v, err := r.ReadF32()
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

		return strategy.DecodeAllAnyRle(sub, strategy.Float32Codec)

	default:
		return nil, errs.ErrInvalidStrategy
	}
}
