package bind

import (
	"fmt"

	"structarray/internal/common"
)

// Direction says which representation an operation starts from and
// which it produces.
type Direction int

const (
	_ Direction = iota

	RecordToArray
	ArrayToRecord
	RecordToSlice
	SliceToRecord
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case RecordToArray:
		return "record->array"
	case ArrayToRecord:
		return "array->record"
	case RecordToSlice:
		return "record->slice"
	case SliceToRecord:
		return "slice->record"
	default:
		return common.UnknownStr
	}
}

// Mutability distinguishes the shared and exclusive reference forms of
// an operation. Owned-value operations carry no mutability.
type Mutability int

const (
	_ Mutability = iota

	Immutable
	Mutable
)

// String returns a human-readable mutability name.
func (m Mutability) String() string {
	switch m {
	case Immutable:
		return "immutable"
	case Mutable:
		return "mutable"
	default:
		return common.UnknownStr
	}
}

// Representation is the array-side shape of an operation.
type Representation int

const (
	_ Representation = iota

	ReprArray // fixed-size array, length = field count
	ReprSlice // dynamically-sized slice
)

// String returns a human-readable representation name.
func (r Representation) String() string {
	switch r {
	case ReprArray:
		return "array"
	case ReprSlice:
		return "slice"
	default:
		return common.UnknownStr
	}
}

// Ownership says whether an operation consumes/produces owned values
// or references.
type Ownership int

const (
	_ Ownership = iota

	ByValue
	ByRef
)

// String returns a human-readable ownership name.
func (o Ownership) String() string {
	switch o {
	case ByValue:
		return "value"
	case ByRef:
		return "ref"
	default:
		return common.UnknownStr
	}
}

// Capability is a bit set selecting which of the two historical
// capability sets to generate: the deref set (views) and the convert
// set (conversions). Either can be derived on its own.
type Capability int

const (
	CapDeref   Capability = 1 << iota // Array and Slice views
	CapConvert                        // To/From conversions

	CapAll  = Capability(1<<iota) - 1 // both capability sets
	CapNone = Capability(0)           // no capability selected
)

// ParseCapability parses a directive or flag value into a Capability.
// The empty string means CapAll.
func ParseCapability(s string) (Capability, error) {
	switch s {
	case "", "all":
		return CapAll, nil
	case "deref":
		return CapDeref, nil
	case "convert":
		return CapConvert, nil
	default:
		return CapNone, fmt.Errorf("unknown capability %q (want deref, convert or all)", s)
	}
}

// String returns the flag spelling of the capability set.
func (c Capability) String() string {
	switch c {
	case CapDeref:
		return "deref"
	case CapConvert:
		return "convert"
	case CapAll:
		return "all"
	case CapNone:
		return "none"
	default:
		return common.UnknownStr
	}
}

// Form says how an operation surfaces in Go.
type Form int

const (
	_ Form = iota

	FormMethod      // method on a pointer receiver
	FormValueMethod // method on a value receiver
	FormFunction    // package-level function, prefixed with the record name
)

// Operation is one row of the operation table. Contracts are fixed by
// the record shape alone; every operation is a stateless, constant-time
// reinterpretation, and only the fallible ones can abort at runtime.
type Operation struct {
	// Key is the stable table identifier (e.g. "array-view-mut").
	Key string

	Direction      Direction
	Representation Representation
	Ownership      Ownership
	// Mutability is zero for owned-value rows.
	Mutability Mutability
	// Cap is the capability set the row belongs to.
	Cap Capability

	// Symbol is the Go name the row lowers to. FormFunction rows are
	// prefixed with the record name at bind time.
	Symbol string
	// Form is the Go surface of the lowered operation.
	Form Form
	// Fallible marks the one runtime-guarded operation:
	// slice->record-ref panics on a length mismatch.
	Fallible bool
}

// Table is the closed operation set. Order is significant: it is the
// emission order of the generated declarations.
var Table = []Operation{
	// deref capability: views sharing the record's memory.
	{Key: "array-view", Direction: RecordToArray, Representation: ReprArray, Ownership: ByRef, Mutability: Immutable, Cap: CapDeref, Symbol: "Array", Form: FormMethod},
	{Key: "array-view-mut", Direction: RecordToArray, Representation: ReprArray, Ownership: ByRef, Mutability: Mutable, Cap: CapDeref, Symbol: "Array", Form: FormMethod},
	{Key: "slice-view", Direction: RecordToSlice, Representation: ReprSlice, Ownership: ByRef, Mutability: Immutable, Cap: CapDeref, Symbol: "Slice", Form: FormMethod},
	{Key: "slice-view-mut", Direction: RecordToSlice, Representation: ReprSlice, Ownership: ByRef, Mutability: Mutable, Cap: CapDeref, Symbol: "Slice", Form: FormMethod},

	// convert capability: owned conversions.
	{Key: "record-to-array", Direction: RecordToArray, Representation: ReprArray, Ownership: ByValue, Cap: CapConvert, Symbol: "ToArray", Form: FormValueMethod},
	{Key: "array-to-record", Direction: ArrayToRecord, Representation: ReprArray, Ownership: ByValue, Cap: CapConvert, Symbol: "FromArray", Form: FormFunction},

	// convert capability: reference conversions.
	{Key: "record-ref-to-array-ref", Direction: RecordToArray, Representation: ReprArray, Ownership: ByRef, Mutability: Immutable, Cap: CapConvert, Symbol: "ArrayRef", Form: FormMethod},
	{Key: "record-ref-to-array-ref-mut", Direction: RecordToArray, Representation: ReprArray, Ownership: ByRef, Mutability: Mutable, Cap: CapConvert, Symbol: "ArrayRef", Form: FormMethod},
	{Key: "array-ref-to-record-ref", Direction: ArrayToRecord, Representation: ReprArray, Ownership: ByRef, Mutability: Immutable, Cap: CapConvert, Symbol: "FromArrayRef", Form: FormFunction},
	{Key: "array-ref-to-record-ref-mut", Direction: ArrayToRecord, Representation: ReprArray, Ownership: ByRef, Mutability: Mutable, Cap: CapConvert, Symbol: "FromArrayRef", Form: FormFunction},
	{Key: "record-ref-to-slice", Direction: RecordToSlice, Representation: ReprSlice, Ownership: ByRef, Mutability: Immutable, Cap: CapConvert, Symbol: "ToSlice", Form: FormMethod},
	{Key: "record-ref-to-slice-mut", Direction: RecordToSlice, Representation: ReprSlice, Ownership: ByRef, Mutability: Mutable, Cap: CapConvert, Symbol: "ToSlice", Form: FormMethod},
	{Key: "slice-to-record-ref", Direction: SliceToRecord, Representation: ReprSlice, Ownership: ByRef, Mutability: Immutable, Cap: CapConvert, Symbol: "FromSlice", Form: FormFunction, Fallible: true},
	{Key: "slice-to-record-ref-mut", Direction: SliceToRecord, Representation: ReprSlice, Ownership: ByRef, Mutability: Mutable, Cap: CapConvert, Symbol: "FromSlice", Form: FormFunction, Fallible: true},
}
