package common

const (
	// UnknownStr is the fallback label for unrecognized enum values.
	UnknownStr = "unknown"
)
