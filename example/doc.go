// Package example holds annotated records exercising the generator.
// The *_structarray.go files are committed generator output; the tests
// in this package pin the runtime behavior of the generated
// operations.
package example

//go:generate go run structarray/cmd/structarray gen .
