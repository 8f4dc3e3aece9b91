package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structarray/internal/analyze"
	"structarray/internal/shape"
)

func pointShape() *shape.RecordShape {
	return &shape.RecordShape{
		Name:        "Point",
		PkgName:     "example",
		PkgPath:     "structarray/example",
		ElementType: "uint32",
		FieldCount:  2,
		FieldNames:  []string{"X", "Y"},
	}
}

func names(ops []BoundOp) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.FuncName)
	}

	return out
}

func TestTable_Closed(t *testing.T) {
	assert.Len(t, Table, 14)

	keys := make(map[string]bool)
	for _, op := range Table {
		assert.False(t, keys[op.Key], "duplicate key %s", op.Key)
		keys[op.Key] = true

		// Every row belongs to exactly one capability set.
		assert.True(t, op.Cap == CapDeref || op.Cap == CapConvert, "row %s", op.Key)
	}
}

func TestTable_OnlySliceToRecordIsFallible(t *testing.T) {
	for _, op := range Table {
		if op.Direction == SliceToRecord {
			assert.True(t, op.Fallible, "row %s", op.Key)
		} else {
			assert.False(t, op.Fallible, "row %s", op.Key)
		}
	}
}

func TestBind_AllCapabilities(t *testing.T) {
	ops := Bind(pointShape(), CapAll)

	assert.Equal(t, []string{
		"Array",
		"Slice",
		"ToArray",
		"PointFromArray",
		"ArrayRef",
		"PointFromArrayRef",
		"ToSlice",
		"PointFromSlice",
	}, names(ops))
}

func TestBind_MutableRowsCollapse(t *testing.T) {
	ops := Bind(pointShape(), CapAll)

	collapsed := make(map[string][]string)
	for _, op := range ops {
		for _, c := range op.Collapsed {
			collapsed[op.FuncName] = append(collapsed[op.FuncName], c.Key)
		}
	}

	assert.Equal(t, map[string][]string{
		"Array":             {"array-view-mut"},
		"Slice":             {"slice-view-mut"},
		"ArrayRef":          {"record-ref-to-array-ref-mut"},
		"PointFromArrayRef": {"array-ref-to-record-ref-mut"},
		"ToSlice":           {"record-ref-to-slice-mut"},
		"PointFromSlice":    {"slice-to-record-ref-mut"},
	}, collapsed)

	// Owned conversions have no reference forms to absorb.
	for _, op := range ops {
		if op.Ownership == ByValue {
			assert.Empty(t, op.Collapsed, "op %s", op.FuncName)
		}
	}
}

func TestBind_DerefOnly(t *testing.T) {
	ops := Bind(pointShape(), CapDeref)

	assert.Equal(t, []string{"Array", "Slice"}, names(ops))
	for _, op := range ops {
		assert.Equal(t, CapDeref, op.Cap)
		assert.False(t, op.Fallible)
	}
}

func TestBind_ConvertOnly(t *testing.T) {
	ops := Bind(pointShape(), CapConvert)

	assert.Equal(t, []string{
		"ToArray",
		"PointFromArray",
		"ArrayRef",
		"PointFromArrayRef",
		"ToSlice",
		"PointFromSlice",
	}, names(ops))
}

func TestBind_NoneYieldsNothing(t *testing.T) {
	assert.Empty(t, Bind(pointShape(), CapNone))
}

func TestBind_Deterministic(t *testing.T) {
	first := Bind(pointShape(), CapAll)
	second := Bind(pointShape(), CapAll)

	assert.Equal(t, first, second)
}

func TestBind_GenericShape(t *testing.T) {
	s := &shape.RecordShape{
		Name:        "Triple",
		PkgName:     "example",
		ElementType: "E",
		FieldCount:  3,
		FieldNames:  []string{"A", "B", "C"},
		TypeParams:  []analyze.TypeParam{{Name: "E", Constraint: "any"}},
	}

	ops := Bind(s, CapAll)
	require.Len(t, ops, 8)

	assert.Equal(t, "TripleFromSlice", ops[7].FuncName)
	assert.True(t, ops[7].Fallible)
}

func TestParseCapability(t *testing.T) {
	cases := []struct {
		in   string
		want Capability
	}{
		{"", CapAll},
		{"all", CapAll},
		{"deref", CapDeref},
		{"convert", CapConvert},
	}

	for _, c := range cases {
		got, err := ParseCapability(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}

	_, err := ParseCapability("views")
	assert.Error(t, err)
}

func TestCapability_String(t *testing.T) {
	assert.Equal(t, "all", CapAll.String())
	assert.Equal(t, "deref", CapDeref.String())
	assert.Equal(t, "convert", CapConvert.String())
	assert.Equal(t, "none", CapNone.String())
}
