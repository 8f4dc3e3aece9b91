package example

// Depth is a single-field record; a field count of one is valid.
//
//structarray:generate layout=sequential
type Depth struct {
	D float64
}
