package rowcol

import (
	"github.com/colcodec/columnar/column"
	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/primitive"
	"github.com/colcodec/columnar/schema"
	"github.com/colcodec/columnar/strategy"
)

// BoolColumn is a materialized bool column.
type BoolColumn []bool

// EncodeBoolColumn writes values as one table tuple element under strat.
func EncodeBoolColumn(w *primitive.Writer, values []bool, strat schema.Strategy, cfg column.CompressionConfig) error {
	switch strat {
	case schema.StrategyNone:
		w.WriteSeqHeader(len(values))
		for _, v := range values {
			w.WriteBool(v)
		}

		return nil

	case schema.StrategyBoolRLE:
		sub := primitive.NewWriter(w.Engine())
		defer sub.Release()

		enc := strategy.NewBoolRleEncoder(sub)
		for _, v := range values {
			enc.Append(v)
		}
		enc.Finish()

		return frameBody(w, sub.Bytes(), cfg)

	default:
		return errs.ErrInvalidStrategy
	}
}

// DecodeBoolColumn reads one table tuple element produced by
// EncodeBoolColumn.
func DecodeBoolColumn(r *primitive.Reader, strat schema.Strategy) ([]bool, error) {
	switch strat {
	case schema.StrategyNone:
		n, err := r.ReadSeqHeader()
		if err != nil {
			return nil, err
		}

		out := make([]bool, n)
		for i := range out {
			v, err := r.ReadBool()
			if err != nil {
				return nil, err
			}

			out[i] = v
		}

		return out, nil

	case schema.StrategyBoolRLE:
		body, err := unframeBody(r)
		if err != nil {
			return nil, err
		}

		sub := primitive.NewReader(body, r.Engine())

		return strategy.DecodeAllBoolRle(sub)

	default:
		return nil, errs.ErrInvalidStrategy
	}
}
