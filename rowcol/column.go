// Package rowcol implements typed column containers and the row<->column
// transposition (C4): given a schema.Strategy for one field, it builds the
// field's column body through strategy, frames it through column, and
// writes/reads the result as one table tuple element.
package rowcol

import (
	"github.com/colcodec/columnar/column"
	"github.com/colcodec/columnar/primitive"
)

// frameBody frames body per cfg and writes it as a length-prefixed tuple
// element. Used by every strategy != none column.
func frameBody(w *primitive.Writer, body []byte, cfg column.CompressionConfig) error {
	framed, err := column.Frame(body, cfg)
	if err != nil {
		return err
	}

	w.WriteBytes(framed)

	return nil
}

// unframeBody reads a length-prefixed, framed tuple element and returns its
// unframed body. Used by every strategy != none column.
func unframeBody(r *primitive.Reader) ([]byte, error) {
	framed, err := r.ReadBytes()
	if err != nil {
		return nil, err
	}

	return column.Unframe(framed)
}
