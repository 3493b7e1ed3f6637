package rowcol

import (
	"github.com/colcodec/columnar/column"
	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/primitive"
	"github.com/colcodec/columnar/schema"
	"github.com/colcodec/columnar/strategy"
)

// Uint64Column is a materialized uint64 column. DeltaOfDelta does not
// apply here (pinned to int64, per the data model's Open Question
// resolution); only None, RLE, and DeltaRLE are supported.
type Uint64Column []uint64

// EncodeUint64Column writes values as one table tuple element under strat.
func EncodeUint64Column(w *primitive.Writer, values []uint64, strat schema.Strategy, cfg column.CompressionConfig) error {
	switch strat {
	case schema.StrategyNone:
		w.WriteSeqHeader(len(values))
		for _, v := range values {
			w.WriteUvarint(v)
		}

		return nil

	case schema.StrategyRLE:
		sub := primitive.NewWriter(w.Engine())
		defer sub.Release()

		enc := strategy.NewAnyRleEncoder(sub, strategy.Uint64Codec)
		enc.AppendSlice(values)
		enc.Finish()

		return frameBody(w, sub.Bytes(), cfg)

	case schema.StrategyDeltaRLE:
		sub := primitive.NewWriter(w.Engine())
		defer sub.Release()

		enc := strategy.NewDeltaRleEncoder(sub)
		for _, v := range values {
			enc.AppendUint64(v)
		}
		enc.Finish()

		return frameBody(w, sub.Bytes(), cfg)

	default:
		return errs.ErrInvalidStrategy
	}
}

// DecodeUint64Column reads one table tuple element produced by
// EncodeUint64Column.
func DecodeUint64Column(r *primitive.Reader, strat schema.Strategy) ([]uint64, error) {
	switch strat {
	case schema.StrategyNone:
		n, err := r.ReadSeqHeader()
		if err != nil {
			return nil, err
		}

		out := make([]uint64, n)
		for i := range out {
			v, err := r.ReadUvarint()
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

		return strategy.DecodeAllAnyRle(sub, strategy.Uint64Codec)

	case schema.StrategyDeltaRLE:
		body, err := unframeBody(r)
		if err != nil {
			return nil, err
		}

		sub := primitive.NewReader(body, r.Engine())
		dec := strategy.NewDeltaRleDecoder(sub)

		var out []uint64
		for {
			v, ok, err := dec.NextUint64()
			if err != nil {
				return nil, err
			}
			if !ok {
				return out, nil
			}

			out = append(out, v)
		}

	default:
		return nil, errs.ErrInvalidStrategy
	}
}
