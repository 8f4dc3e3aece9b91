package example

// Pair is a positional-style record: its fields carry index names and
// matter only by declaration order.
//
//structarray:generate layout=sequential
type Pair struct {
	F0, F1 uint32
}
