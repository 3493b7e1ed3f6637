// Package indextrack tracks the stable field indices seen while decoding a
// table's optional-field side-channel, so a repeated index can be rejected
// instead of silently overwriting an earlier one.
package indextrack

import "github.com/colcodec/columnar/errs"

// Tracker records which stable optional-field indices have been seen during
// a single table decode.
type Tracker struct {
	seen map[uint64]struct{}
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uint64]struct{})}
}

// Track records index, returning an error if it was already seen.
func (t *Tracker) Track(index uint64) error {
	if _, ok := t.seen[index]; ok {
		return errs.DuplicateOptionalIndex(index)
	}

	t.seen[index] = struct{}{}

	return nil
}

// Count returns the number of distinct indices tracked so far.
func (t *Tracker) Count() int {
	return len(t.seen)
}

// Reset clears all tracked indices, allowing the Tracker to be reused for
// decoding another table.
func (t *Tracker) Reset() {
	for k := range t.seen {
		delete(t.seen, k)
	}
}
