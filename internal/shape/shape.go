// Package shape decides whether an annotated record may be treated as
// a reinterpretation of a contiguous array, and normalizes qualifying
// records into a RecordShape for the binding generator.
package shape

import (
	"strconv"
	"strings"

	"structarray/internal/analyze"
)

// RecordShape is the validated, normalized description of a record.
// It is immutable once constructed: produced once per record by
// Validate and consumed once by the binding generator.
type RecordShape struct {
	// Name is the record type name.
	Name string
	// PkgName and PkgPath identify the declaring package.
	PkgName string
	PkgPath string
	// ElementType is the common declared type of every field.
	ElementType string
	// FieldCount is the number of fields; always >= 1.
	FieldCount int
	// FieldNames are the field names in declaration order.
	FieldNames []string
	// TypeParams are the type parameters of a generic record, carried
	// through opaquely from the description.
	TypeParams []analyze.TypeParam
}

// ID returns the qualified record identifier (e.g., "example.Point").
func (s *RecordShape) ID() string {
	if s.PkgName == "" {
		return s.Name
	}

	return s.PkgName + "." + s.Name
}

// Generic reports whether the record has type parameters.
func (s *RecordShape) Generic() bool {
	return len(s.TypeParams) > 0
}

// TypeExpr returns the type as used in value position: "Point" for a
// plain record, "Triple[E]" for a generic one.
func (s *RecordShape) TypeExpr() string {
	if !s.Generic() {
		return s.Name
	}

	names := make([]string, 0, len(s.TypeParams))
	for _, tp := range s.TypeParams {
		names = append(names, tp.Name)
	}

	return s.Name + "[" + strings.Join(names, ", ") + "]"
}

// TypeParamDecl returns the type parameter list as used in a function
// declaration: "[E any]" for a generic record, "" otherwise.
// Parameters sharing a constraint are not re-grouped; each is restated
// with its own constraint.
func (s *RecordShape) TypeParamDecl() string {
	if !s.Generic() {
		return ""
	}

	parts := make([]string, 0, len(s.TypeParams))
	for _, tp := range s.TypeParams {
		parts = append(parts, tp.Name+" "+tp.Constraint)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// ArrayType returns the array representation type (e.g., "[2]uint32").
func (s *RecordShape) ArrayType() string {
	return "[" + strconv.Itoa(s.FieldCount) + "]" + s.ElementType
}

// SliceType returns the slice representation type (e.g., "[]uint32").
func (s *RecordShape) SliceType() string {
	return "[]" + s.ElementType
}
