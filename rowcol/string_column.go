package rowcol

import (
	"github.com/colcodec/columnar/column"
	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/primitive"
	"github.com/colcodec/columnar/schema"
	"github.com/colcodec/columnar/strategy"
)

// StringColumn is a materialized string column. DecodeStringColumn takes
// no borrow setting and does not consult a field descriptor's Borrow flag:
// its returned strings are always copies that do not alias the decoder's
// input bytes (see primitive.Reader.ReadStr).
type StringColumn []string

// EncodeStringColumn writes values as one table tuple element under strat.
func EncodeStringColumn(w *primitive.Writer, values []string, strat schema.Strategy, cfg column.CompressionConfig) error {
	switch strat {
	case schema.StrategyNone:
		w.WriteSeqHeader(len(values))
		for _, v := range values {
			w.WriteStr(v)
		}

		return nil

	case schema.StrategyRLE:
		sub := primitive.NewWriter(w.Engine())
		defer sub.Release()

		enc := strategy.NewAnyRleEncoder(sub, strategy.StringCodec)
		enc.AppendSlice(values)
		enc.Finish()

		return frameBody(w, sub.Bytes(), cfg)

	default:
		return errs.ErrInvalidStrategy
	}
}

// DecodeStringColumn reads one table tuple element produced by
// EncodeStringColumn.
func DecodeStringColumn(r *primitive.Reader, strat schema.Strategy) ([]string, error) {
	switch strat {
	case schema.StrategyNone:
		n, err := r.ReadSeqHeader()
		if err != nil {
			return nil, err
		}

		out := make([]string, n)
		for i := range out {
			v, err := r.ReadStr()
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

		return strategy.DecodeAllAnyRle(sub, strategy.StringCodec)

	default:
		return nil, errs.ErrInvalidStrategy
	}
}

// StringColumnDecoder streams one table tuple element's string values
// without materializing the full column; see Int64ColumnDecoder's doc
// comment for the lazy-decode/eager-unframe split this follows.
type StringColumnDecoder struct {
	next func() (string, bool, error)
}

// NewStringColumnDecoder returns a streaming decoder for one table tuple
// element produced by EncodeStringColumn.
func NewStringColumnDecoder(r *primitive.Reader, strat schema.Strategy) (*StringColumnDecoder, error) {
	switch strat {
	case schema.StrategyNone:
		n, err := r.ReadSeqHeader()
		if err != nil {
			return nil, err
		}

		i := 0

		return &StringColumnDecoder{next: func() (string, bool, error) {
			if i >= n {
				return "", false, nil
			}

			v, err := r.ReadStr()
			if err != nil {
				return "", false, err
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
		dec := strategy.NewAnyRleDecoder(sub, strategy.StringCodec)

		return &StringColumnDecoder{next: dec.Next}, nil

	default:
		return nil, errs.ErrInvalidStrategy
	}
}

// Next returns the next value, or ok=false at the column's clean end.
func (d *StringColumnDecoder) Next() (string, bool, error) {
	return d.next()
}
