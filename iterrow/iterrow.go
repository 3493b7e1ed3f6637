// Package iterrow composes per-column decoders into a lazy row iterator.
// Each column is pulled one value at a time in lockstep with every other
// column; a row is only yielded once all columns have agreed to advance.
package iterrow

import (
	"iter"

	"github.com/colcodec/columnar/errs"
)

// Puller advances one column's decoder by exactly one value and reports
// whether a value was produced. A Puller that returns more stashes its
// value wherever the caller's row builder reads it from (see PullInto for
// the common case of stashing into a local variable).
type Puller func() (more bool, err error)

// PullInto adapts a decoder's Next()-shaped method (the pattern every
// strategy decoder follows: value, ok, err) into a Puller that stashes
// each pulled value into dst for the row builder to read.
func PullInto[T any](next func() (T, bool, error), dst *T) Puller {
	return func() (bool, error) {
		v, ok, err := next()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}

		*dst = v

		return true, nil
	}
}

// Compose pulls every Puller in pullers once per row and yields build()'s
// result for each row where every column still had a value. If some
// pullers report more and others don't for the same row, the columns have
// gone ragged: Compose yields errs.RaggedColumns() and stops. Any Puller
// error likewise aborts iteration after being yielded once; Compose never
// calls build or a Puller again afterward.
func Compose[R any](build func() R, pullers ...Puller) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		var zero R

		for {
			more := 0
			done := 0

			for _, p := range pullers {
				ok, err := p()
				if err != nil {
					yield(zero, err)
					return
				}

				if ok {
					more++
				} else {
					done++
				}
			}

			if more == 0 {
				return
			}

			if done != 0 {
				yield(zero, errs.RaggedColumns())
				return
			}

			if !yield(build(), nil) {
				return
			}
		}
	}
}
