package example

// Point is a named-field record: two coordinates that can be viewed
// as a [2]uint32 without copying.
//
//structarray:generate layout=sequential
type Point struct {
	// X is the horizontal coordinate.
	X uint32
	// Y is the vertical coordinate.
	Y uint32
}
