package example

// Color only asks for the deref capability set: views, no owned
// conversions.
//
//structarray:generate layout=sequential caps=deref
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}
