// Package schema describes a record's fields: their logical type, which
// compression strategy (if any) applies, whether they are optional, and
// whether the decoder may borrow input bytes for them. rowcol and table
// consume a RecordSchema to drive row<->column transposition and wire
// layout; schema itself never touches bytes.
package schema

import "github.com/colcodec/columnar/errs"

// Kind identifies a field's logical type.
type Kind uint8

const (
	// KindPrimitive covers int64/uint64/float64/float32/bool fields.
	KindPrimitive Kind = iota
	// KindString is a UTF-8 string field.
	KindString
	// KindBytes is an opaque byte-slice field.
	KindBytes
	// KindTuple is a fixed-arity heterogeneous tuple field.
	KindTuple
	// KindNestedSeq is a sequence of nested records. rowcol provides no
	// column encoder or decoder for this kind.
	KindNestedSeq
	// KindNestedMap is a map keyed by a primitive to nested records. rowcol
	// provides no column encoder or decoder for this kind.
	KindNestedMap
)

// Strategy identifies a column's compression strategy. The zero value,
// StrategyNone, means the column is written as an unframed, uncompressed
// primitive sequence.
type Strategy uint8

const (
	StrategyNone Strategy = iota
	StrategyRLE
	StrategyBoolRLE
	StrategyDeltaRLE
	StrategyDeltaOfDelta
)

// FieldDescriptor describes one field of a RecordSchema.
type FieldDescriptor struct {
	// Name is logical only; it is never serialized.
	Name string

	Kind     Kind
	Strategy Strategy

	// Optional marks the field as part of the forward/backward-compatible
	// side-channel; Index is then its stable index.
	Optional bool
	Index    uint64

	// Borrow marks a String/Bytes field as one whose decoded values may
	// alias input bytes. No decoder in this module reads it: rowcol's
	// DecodeBytesColumn always aliases its input and DecodeStringColumn
	// always copies.
	Borrow bool

	// Skip excludes the field from serialization entirely; on decode it
	// is reconstructed via its zero value.
	Skip bool
}

// RecordSchema is an ordered list of field descriptors plus the
// invariant-validation logic from the data model: required fields precede
// optional fields, optional stable indices are unique, and a field cannot
// be both compressed and a nested sequence/map.
type RecordSchema struct {
	Fields []FieldDescriptor
}

// NewRecordSchema validates fields and returns a RecordSchema, or an error
// if any invariant is violated.
func NewRecordSchema(fields []FieldDescriptor) (RecordSchema, error) {
	s := RecordSchema{Fields: fields}
	if err := s.Validate(); err != nil {
		return RecordSchema{}, err
	}

	return s, nil
}

// Validate checks every invariant from the data model. It is exported so
// schemas assembled incrementally (e.g. by generated code) can validate
// once construction is complete. DeltaRLE, DeltaOfDelta and BoolRLE are
// checked only against KindPrimitive: Kind does not distinguish integer,
// float and bool primitives, so a float field with DeltaRLE or an integer
// field with BoolRLE passes.
func (s RecordSchema) Validate() error {
	seenOptionalIndex := map[uint64]struct{}{}
	sawOptional := false

	for _, f := range s.Fields {
		if f.Optional {
			sawOptional = true

			if _, dup := seenOptionalIndex[f.Index]; dup {
				return errs.EncodeErrorf("schema: duplicate optional field index %d", f.Index)
			}
			seenOptionalIndex[f.Index] = struct{}{}
		} else if sawOptional {
			return errs.EncodeErrorf("schema: required field %q declared after an optional field", f.Name)
		}

		if f.Strategy != StrategyNone && (f.Kind == KindNestedSeq || f.Kind == KindNestedMap) {
			return errs.EncodeErrorf("schema: field %q cannot have both a strategy and a nested kind", f.Name)
		}

		switch f.Strategy {
		case StrategyDeltaRLE, StrategyDeltaOfDelta:
			if f.Kind != KindPrimitive {
				return errs.EncodeErrorf("schema: field %q strategy requires an integer primitive field", f.Name)
			}
		case StrategyBoolRLE:
			if f.Kind != KindPrimitive {
				return errs.EncodeErrorf("schema: field %q BoolRLE requires a bool field", f.Name)
			}
		}
	}

	return nil
}

// RequiredFields returns the non-skipped required fields in declaration
// order, the positional prefix of the table's wire tuple.
func (s RecordSchema) RequiredFields() []FieldDescriptor {
	var out []FieldDescriptor
	for _, f := range s.Fields {
		if !f.Optional && !f.Skip {
			out = append(out, f)
		}
	}

	return out
}

// OptionalFields returns the non-skipped optional fields, in declaration
// order (the side-channel is order-insensitive on the wire, but a stable
// iteration order keeps encode output deterministic).
func (s RecordSchema) OptionalFields() []FieldDescriptor {
	var out []FieldDescriptor
	for _, f := range s.Fields {
		if f.Optional && !f.Skip {
			out = append(out, f)
		}
	}

	return out
}
