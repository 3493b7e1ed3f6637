package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordSchema_Valid(t *testing.T) {
	s, err := NewRecordSchema([]FieldDescriptor{
		{Name: "id", Kind: KindPrimitive, Strategy: StrategyDeltaRLE},
		{Name: "name", Kind: KindString, Borrow: true},
		{Name: "tags", Kind: KindNestedSeq},
		{Name: "note", Kind: KindString, Optional: true, Index: 0},
		{Name: "extra", Kind: KindBytes, Optional: true, Index: 1},
	})
	require.NoError(t, err)
	assert.Len(t, s.RequiredFields(), 3)
	assert.Len(t, s.OptionalFields(), 2)
}

func TestValidate_RequiredAfterOptional(t *testing.T) {
	_, err := NewRecordSchema([]FieldDescriptor{
		{Name: "a", Optional: true, Index: 0},
		{Name: "b"},
	})
	assert.Error(t, err)
}

func TestValidate_DuplicateOptionalIndex(t *testing.T) {
	_, err := NewRecordSchema([]FieldDescriptor{
		{Name: "a", Optional: true, Index: 0},
		{Name: "b", Optional: true, Index: 0},
	})
	assert.Error(t, err)
}

func TestValidate_StrategyWithNestedKind(t *testing.T) {
	_, err := NewRecordSchema([]FieldDescriptor{
		{Name: "a", Kind: KindNestedSeq, Strategy: StrategyRLE},
	})
	assert.Error(t, err)
}

func TestValidate_DeltaRleRequiresPrimitive(t *testing.T) {
	_, err := NewRecordSchema([]FieldDescriptor{
		{Name: "a", Kind: KindString, Strategy: StrategyDeltaRLE},
	})
	assert.Error(t, err)
}

func TestRequiredFields_SkipsSkipped(t *testing.T) {
	s, err := NewRecordSchema([]FieldDescriptor{
		{Name: "a"},
		{Name: "b", Skip: true},
	})
	require.NoError(t, err)
	assert.Len(t, s.RequiredFields(), 1)
	assert.Equal(t, "a", s.RequiredFields()[0].Name)
}
