package shape

import "fmt"

//go:generate go tool stringer -type=ErrorKind -output=errorkind_string.go

// ErrorKind is the closed set of reasons a record can be rejected.
type ErrorKind int

const (
	_ ErrorKind = iota // skip zero value, use it as a default (invalid) value for ErrorKind

	// NotARecord: the annotated declaration is not a struct type.
	NotARecord
	// MissingLayoutGuarantee: the directive lacks layout=sequential.
	MissingLayoutGuarantee
	// NoFields: the struct has zero fields.
	NoFields
	// HeterogeneousFieldTypes: at least two fields differ in declared type.
	HeterogeneousFieldTypes
	// NonPublicField: at least one field is unexported.
	NonPublicField
)

// ValidationError reports why a record was rejected. Validation stops
// at the first failed check, so one record yields at most one error.
type ValidationError struct {
	// Kind is the failed check.
	Kind ErrorKind
	// Record is the qualified record identifier.
	Record string
	// Detail is a human-readable description of the failure.
	Detail string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Record, e.Kind, e.Detail)
}
