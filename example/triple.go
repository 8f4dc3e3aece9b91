package example

// Triple is a generic record; the element type is a type parameter
// that passes through generation unexamined.
//
//structarray:generate layout=sequential
type Triple[E any] struct {
	A E
	B E
	C E
}
