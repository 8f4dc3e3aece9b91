package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structarray/internal/analyze"
)

func validDesc() *analyze.RecordDescription {
	return &analyze.RecordDescription{
		Name:      "Point",
		PkgName:   "example",
		PkgPath:   "structarray/example",
		Directive: &analyze.Directive{Layout: LayoutSequential},
		IsStruct:  true,
		Fields: []analyze.FieldDecl{
			{Name: "X", Type: "uint32", Exported: true, Index: 0},
			{Name: "Y", Type: "uint32", Exported: true, Index: 1},
		},
	}
}

func requireKind(t *testing.T, err error, kind ErrorKind) *ValidationError {
	t.Helper()

	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok, "want *ValidationError, got %T", err)
	assert.Equal(t, kind, verr.Kind)

	return verr
}

func TestValidate_Accepts(t *testing.T) {
	s, err := Validate(validDesc())
	require.NoError(t, err)

	assert.Equal(t, "Point", s.Name)
	assert.Equal(t, "example.Point", s.ID())
	assert.Equal(t, "uint32", s.ElementType)
	assert.Equal(t, 2, s.FieldCount)
	assert.Equal(t, []string{"X", "Y"}, s.FieldNames)
	assert.False(t, s.Generic())
	assert.Equal(t, "[2]uint32", s.ArrayType())
	assert.Equal(t, "[]uint32", s.SliceType())
}

func TestValidate_SingleFieldIsValid(t *testing.T) {
	desc := validDesc()
	desc.Fields = desc.Fields[:1]

	s, err := Validate(desc)
	require.NoError(t, err)
	assert.Equal(t, 1, s.FieldCount)
	assert.Equal(t, "[1]uint32", s.ArrayType())
}

func TestValidate_NotARecord(t *testing.T) {
	desc := validDesc()
	desc.IsStruct = false
	desc.Fields = nil

	requireKind(t, errOf(t, desc), NotARecord)
}

func TestValidate_MissingLayoutGuarantee(t *testing.T) {
	desc := validDesc()
	desc.Directive = &analyze.Directive{}

	verr := requireKind(t, errOf(t, desc), MissingLayoutGuarantee)
	assert.Contains(t, verr.Detail, "layout=sequential")

	desc.Directive = nil
	requireKind(t, errOf(t, desc), MissingLayoutGuarantee)
}

func TestValidate_NoFields(t *testing.T) {
	desc := validDesc()
	desc.Fields = nil

	requireKind(t, errOf(t, desc), NoFields)
}

func TestValidate_HeterogeneousFieldTypes(t *testing.T) {
	desc := validDesc()
	desc.Fields[1].Type = "float64"

	verr := requireKind(t, errOf(t, desc), HeterogeneousFieldTypes)
	assert.Contains(t, verr.Detail, "Y")
	assert.Contains(t, verr.Detail, "float64")
}

func TestValidate_NonPublicField(t *testing.T) {
	desc := validDesc()
	desc.Fields[1] = analyze.FieldDecl{Name: "y", Type: "uint32", Index: 1}

	verr := requireKind(t, errOf(t, desc), NonPublicField)
	assert.Contains(t, verr.Detail, "y")
}

func TestValidate_ChecksOrdered(t *testing.T) {
	// A description that fails every check reports only the first.
	desc := &analyze.RecordDescription{Name: "Alias", PkgName: "example"}

	requireKind(t, errOf(t, desc), NotARecord)
}

func TestValidate_GenericPassesThrough(t *testing.T) {
	desc := validDesc()
	desc.Name = "Triple"
	desc.TypeParams = []analyze.TypeParam{{Name: "E", Constraint: "any"}}
	desc.Fields = []analyze.FieldDecl{
		{Name: "A", Type: "E", Exported: true, Index: 0},
		{Name: "B", Type: "E", Exported: true, Index: 1},
		{Name: "C", Type: "E", Exported: true, Index: 2},
	}

	s, err := Validate(desc)
	require.NoError(t, err)

	assert.True(t, s.Generic())
	assert.Equal(t, "E", s.ElementType)
	assert.Equal(t, "Triple[E]", s.TypeExpr())
	assert.Equal(t, "[E any]", s.TypeParamDecl())
	assert.Equal(t, "[3]E", s.ArrayType())
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{
		Kind:   NoFields,
		Record: "example.Empty",
		Detail: "struct has no fields",
	}

	assert.Equal(t, "example.Empty: NoFields: struct has no fields", err.Error())
}

func errOf(t *testing.T, desc *analyze.RecordDescription) error {
	t.Helper()

	s, err := Validate(desc)
	assert.Nil(t, s)

	return err
}
