package bind

import (
	"structarray/internal/shape"
)

// BoundOp is a table operation lowered onto a concrete record shape.
type BoundOp struct {
	Operation

	// FuncName is the final Go identifier ("Array", "PointFromArray").
	FuncName string
	// Collapsed lists further table rows lowered onto this same
	// symbol. A Go pointer carries no mutability distinction, so each
	// mutable reference row collapses onto its immutable sibling.
	Collapsed []Operation
	// Shape is the record the operation is bound to.
	Shape *shape.RecordShape
}

// Bind derives the operation set for s restricted to caps. The result
// is total and deterministic: the same shape and capability selection
// always yield the same bound operations in the same order.
func Bind(s *shape.RecordShape, caps Capability) []BoundOp {
	var ops []BoundOp

	index := make(map[string]int)

	for _, op := range Table {
		if op.Cap&caps == 0 {
			continue
		}

		name := op.Symbol
		if op.Form == FormFunction {
			name = s.Name + op.Symbol
		}

		if i, ok := index[name]; ok {
			ops[i].Collapsed = append(ops[i].Collapsed, op)
			continue
		}

		index[name] = len(ops)
		ops = append(ops, BoundOp{
			Operation: op,
			FuncName:  name,
			Shape:     s,
		})
	}

	return ops
}
