package rowcol

import (
	"github.com/colcodec/columnar/column"
	"github.com/colcodec/columnar/errs"
	"github.com/colcodec/columnar/primitive"
	"github.com/colcodec/columnar/schema"
	"github.com/colcodec/columnar/strategy"
)

// Int64Column is a materialized int64 column.
type Int64Column []int64

// EncodeInt64Column writes values as one table tuple element under strat.
func EncodeInt64Column(w *primitive.Writer, values []int64, strat schema.Strategy, cfg column.CompressionConfig) error {
	switch strat {
	case schema.StrategyNone:
		w.WriteSeqHeader(len(values))
		for _, v := range values {
			w.WriteIvarint(v)
		}

		return nil

	case schema.StrategyRLE:
		sub := primitive.NewWriter(w.Engine())
		defer sub.Release()

		enc := strategy.NewAnyRleEncoder(sub, strategy.Int64Codec)
		enc.AppendSlice(values)
		enc.Finish()

		return frameBody(w, sub.Bytes(), cfg)

	case schema.StrategyDeltaRLE:
		sub := primitive.NewWriter(w.Engine())
		defer sub.Release()

		enc := strategy.NewDeltaRleEncoder(sub)
		for _, v := range values {
			enc.AppendInt64(v)
		}
		enc.Finish()

		return frameBody(w, sub.Bytes(), cfg)

	case schema.StrategyDeltaOfDelta:
		sub := primitive.NewWriter(w.Engine())
		defer sub.Release()

		enc := strategy.NewDeltaOfDeltaEncoder()
		for _, v := range values {
			if err := enc.Append(v); err != nil {
				return errs.EncodeErrorf("rowcol: int64 column: %w", err)
			}
		}
		enc.Finish(sub)

		return frameBody(w, sub.Bytes(), cfg)

	default:
		return errs.ErrInvalidStrategy
	}
}

// DecodeInt64Column reads one table tuple element produced by
// EncodeInt64Column.
func DecodeInt64Column(r *primitive.Reader, strat schema.Strategy) ([]int64, error) {
	switch strat {
	case schema.StrategyNone:
		n, err := r.ReadSeqHeader()
		if err != nil {
			return nil, err
		}

		out := make([]int64, n)
		for i := range out {
			v, err := r.ReadIvarint()
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

		return strategy.DecodeAllAnyRle(sub, strategy.Int64Codec)

	case schema.StrategyDeltaRLE:
		body, err := unframeBody(r)
		if err != nil {
			return nil, err
		}

		sub := primitive.NewReader(body, r.Engine())
		dec := strategy.NewDeltaRleDecoder(sub)

		var out []int64
		for {
			v, ok, err := dec.NextInt64()
			if err != nil {
				return nil, err
			}
			if !ok {
				return out, nil
			}

			out = append(out, v)
		}

	case schema.StrategyDeltaOfDelta:
		body, err := unframeBody(r)
		if err != nil {
			return nil, err
		}

		dec, err := strategy.NewDeltaOfDeltaDecoder(body)
		if err != nil {
			return nil, err
		}

		var out []int64
		for {
			v, ok, err := dec.Next()
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

// Int64ColumnDecoder streams one table tuple element's int64 values
// without ever materializing the full column: decoding a framed column's
// compressed body is unavoidably eager (compression operates over the
// whole body at once), but the values themselves are pulled one at a time
// through Next rather than collected into a []int64 up front.
type Int64ColumnDecoder struct {
	next func() (int64, bool, error)
}

// NewInt64ColumnDecoder returns a streaming decoder for one table tuple
// element produced by EncodeInt64Column.
func NewInt64ColumnDecoder(r *primitive.Reader, strat schema.Strategy) (*Int64ColumnDecoder, error) {
	switch strat {
	case schema.StrategyNone:
		n, err := r.ReadSeqHeader()
		if err != nil {
			return nil, err
		}

		i := 0

		return &Int64ColumnDecoder{next: func() (int64, bool, error) {
			if i >= n {
				return 0, false, nil
			}

			v, err := r.ReadIvarint()
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
		dec := strategy.NewAnyRleDecoder(sub, strategy.Int64Codec)

		return &Int64ColumnDecoder{next: dec.Next}, nil

	case schema.StrategyDeltaRLE:
		body, err := unframeBody(r)
		if err != nil {
			return nil, err
		}

		sub := primitive.NewReader(body, r.Engine())
		dec := strategy.NewDeltaRleDecoder(sub)

		return &Int64ColumnDecoder{next: dec.NextInt64}, nil

	case schema.StrategyDeltaOfDelta:
		body, err := unframeBody(r)
		if err != nil {
			return nil, err
		}

		dec, err := strategy.NewDeltaOfDeltaDecoder(body)
		if err != nil {
			return nil, err
		}

		return &Int64ColumnDecoder{next: dec.Next}, nil

	default:
		return nil, errs.ErrInvalidStrategy
	}
}

// Next returns the next value, or ok=false at the column's clean end.
func (d *Int64ColumnDecoder) Next() (int64, bool, error) {
	return d.next()
}
