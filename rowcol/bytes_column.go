package rowcol

import (
	"github.com/colcodec/columnar/column"
	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/primitive"
	"github.com/colcodec/columnar/schema"
)

// BytesColumn is a materialized byte-slice column. []byte is not a
// comparable type, so it cannot feed AnyRleEncoder[T comparable]'s
// equality-based run detection; only StrategyNone applies.
// schema.RecordSchema.Validate does not reject another strategy on a bytes
// field, so EncodeBytesColumn and DecodeBytesColumn enforce the rule at run
// time with errs.ErrInvalidStrategy.
type BytesColumn [][]byte

// EncodeBytesColumn writes values as one table tuple element. strat must be
// schema.StrategyNone.
func EncodeBytesColumn(w *primitive.Writer, values [][]byte, strat schema.Strategy, cfg column.CompressionConfig) error {
	if strat != schema.StrategyNone {
		return errs.ErrInvalidStrategy
	}

	w.WriteSeqHeader(len(values))
	for _, v := range values {
		w.WriteBytes(v)
	}

	return nil
}

// DecodeBytesColumn reads one table tuple element produced by
// EncodeBytesColumn. strat must be schema.StrategyNone.
func DecodeBytesColumn(r *primitive.Reader, strat schema.Strategy) ([][]byte, error) {
	if strat != schema.StrategyNone {
		return nil, errs.ErrInvalidStrategy
	}

	n, err := r.ReadSeqHeader()
	if err != nil {
		return nil, err
	}

	out := make([][]byte, n)
	for i := range out {
		v, err := r.ReadBytes()
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}
