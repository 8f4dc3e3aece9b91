package shape

import (
	"fmt"

	"structarray/internal/analyze"
	"structarray/internal/common"
)

// LayoutSequential is the layout guarantee a directive must declare:
// the struct's memory representation is a C-style sequence of its
// fields with no padding, reordering, or hidden members. For a struct
// whose fields all share one type this holds on every Go
// implementation, but the generator still demands the explicit
// annotation so the reinterpretation contract is visible at the
// declaration site.
const LayoutSequential = "sequential"

// Validate decides whether a candidate record may be treated as a
// reinterpretation of a contiguous array, and if so extracts its
// RecordShape. Checks run in a fixed order and stop at the first
// failure; the returned error is always a *ValidationError.
//
// Validate is a pure function of its input: no I/O, no side effects,
// and the same description always yields the same result.
func Validate(desc *analyze.RecordDescription) (*RecordShape, error) {
	if !desc.IsStruct {
		return nil, &ValidationError{
			Kind:   NotARecord,
			Record: desc.ID(),
			Detail: "annotated declaration is not a struct type",
		}
	}

	if desc.Directive == nil || desc.Directive.Layout != LayoutSequential {
		return nil, &ValidationError{
			Kind:   MissingLayoutGuarantee,
			Record: desc.ID(),
			Detail: fmt.Sprintf("directive must declare layout=%s", LayoutSequential),
		}
	}

	if common.IsEmpty(desc.Fields) {
		return nil, &ValidationError{
			Kind:   NoFields,
			Record: desc.ID(),
			Detail: "struct has no fields",
		}
	}

	first, _ := common.First(desc.Fields)

	for _, f := range desc.Fields[1:] {
		if f.Type != first.Type {
			return nil, &ValidationError{
				Kind:   HeterogeneousFieldTypes,
				Record: desc.ID(),
				Detail: fmt.Sprintf("field %s has type %s, want %s", f.Name, f.Type, first.Type),
			}
		}
	}

	// Every generated operation exposes field values through the
	// array and slice views; an unexported field would silently leak.
	for _, f := range desc.Fields {
		if !f.Exported {
			return nil, &ValidationError{
				Kind:   NonPublicField,
				Record: desc.ID(),
				Detail: fmt.Sprintf("field %s is not exported", f.Name),
			}
		}
	}

	s := &RecordShape{
		Name:        desc.Name,
		PkgName:     desc.PkgName,
		PkgPath:     desc.PkgPath,
		ElementType: first.Type,
		FieldCount:  len(desc.Fields),
		TypeParams:  desc.TypeParams,
	}

	for _, f := range desc.Fields {
		s.FieldNames = append(s.FieldNames, f.Name)
	}

	return s, nil
}
