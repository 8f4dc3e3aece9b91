package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"structarray/internal/bind"
	"structarray/internal/shape"
)

// Config holds configuration for code generation.
type Config struct {
	// Suffix is appended to the lowercased record name to build the
	// output filename (e.g., "point" + "_structarray" + ".go").
	Suffix string
	// OutputDir is where debug sidecar files are written when
	// formatting fails. Empty disables the sidecar.
	OutputDir string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Suffix: "_structarray",
	}
}

// Generator emits accessor files for validated record shapes.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "point_structarray.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// GenerateRecord generates the accessor file for a single validated
// record. The operation set is derived entirely from the shape and the
// capability selection; the same inputs always produce the same bytes.
func (g *Generator) GenerateRecord(s *shape.RecordShape, caps bind.Capability) (*GeneratedFile, error) {
	ops := bind.Bind(s, caps)

	data, err := g.buildTemplateData(s, ops)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing file template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the file template.
type templateData struct {
	PackageName string
	Filename    string
	Name        string
	ArrayType   string
	NeedsFmt    bool
	// Assert enables the compile-time size proof. Generic records
	// cannot be instantiated in a package-level constant, so the proof
	// is skipped for them; their layout guarantee rests on the
	// directive alone.
	Assert bool
	Decls  []string
}

// opData is the data each operation template renders with.
type opData struct {
	FuncName      string
	Receiver      string
	Type          string
	TypeParamDecl string
	Array         string
	Slice         string
	Elem          string
	Count         int
}

// buildTemplateData renders every bound operation and assembles the
// file-level data.
func (g *Generator) buildTemplateData(s *shape.RecordShape, ops []bind.BoundOp) (*templateData, error) {
	data := &templateData{
		PackageName: s.PkgName,
		Filename:    strings.ToLower(s.Name) + g.config.Suffix + ".go",
		Name:        s.Name,
		ArrayType:   s.ArrayType(),
		Assert:      !s.Generic(),
	}

	od := opData{
		Receiver:      receiverName(s.Name),
		Type:          s.TypeExpr(),
		TypeParamDecl: s.TypeParamDecl(),
		Array:         s.ArrayType(),
		Slice:         s.SliceType(),
		Elem:          s.ElementType,
		Count:         s.FieldCount,
	}

	for _, op := range ops {
		tmpl, ok := opTemplates[op.Symbol]
		if !ok {
			return nil, fmt.Errorf("no template for operation %s", op.Key)
		}

		od.FuncName = op.FuncName

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, od); err != nil {
			return nil, fmt.Errorf("executing template for %s: %w", op.Key, err)
		}

		data.Decls = append(data.Decls, strings.TrimSpace(buf.String()))

		if op.Fallible {
			data.NeedsFmt = true
		}
	}

	return data, nil
}

// receiverName picks the receiver identifier for generated methods:
// the lowercased first letter of the record name.
func receiverName(name string) string {
	if name == "" {
		return "r"
	}

	return strings.ToLower(name[:1])
}

// Operation body templates, keyed by the lowered Go symbol. The deref
// and convert capability sets deliberately contain operations with
// identical bodies under different names; both names are kept so each
// set stands on its own.
var opTemplates = map[string]*template.Template{
	"Array": template.Must(template.New("Array").Parse(
		`// {{.FuncName}} returns {{.Receiver}} viewed as a fixed-size array, sharing its memory.
func ({{.Receiver}} *{{.Type}}) {{.FuncName}}() *{{.Array}} {
	return (*{{.Array}})(unsafe.Pointer({{.Receiver}}))
}`)),

	"ArrayRef": template.Must(template.New("ArrayRef").Parse(
		`// {{.FuncName}} reinterprets {{.Receiver}} as a *{{.Array}}, sharing its memory.
func ({{.Receiver}} *{{.Type}}) {{.FuncName}}() *{{.Array}} {
	return (*{{.Array}})(unsafe.Pointer({{.Receiver}}))
}`)),

	"Slice": template.Must(template.New("Slice").Parse(
		`// {{.FuncName}} returns {{.Receiver}} viewed as a slice of its fields, sharing its memory.
// The slice has length and capacity {{.Count}} and must not outlive {{.Receiver}}.
func ({{.Receiver}} *{{.Type}}) {{.FuncName}}() {{.Slice}} {
	return unsafe.Slice((*{{.Elem}})(unsafe.Pointer({{.Receiver}})), {{.Count}})
}`)),

	"ToSlice": template.Must(template.New("ToSlice").Parse(
		`// {{.FuncName}} reinterprets {{.Receiver}} as a {{.Slice}} of length {{.Count}}, sharing its memory.
func ({{.Receiver}} *{{.Type}}) {{.FuncName}}() {{.Slice}} {
	return unsafe.Slice((*{{.Elem}})(unsafe.Pointer({{.Receiver}})), {{.Count}})
}`)),

	"ToArray": template.Must(template.New("ToArray").Parse(
		`// {{.FuncName}} returns the fields of {{.Receiver}} as an owned array. The record's
// bit pattern is relabeled as a whole; fields are not copied one by one.
func ({{.Receiver}} {{.Type}}) {{.FuncName}}() {{.Array}} {
	return *(*{{.Array}})(unsafe.Pointer(&{{.Receiver}}))
}`)),

	"FromArray": template.Must(template.New("FromArray").Parse(
		`// {{.FuncName}} converts an owned array into a {{.Type}}.
func {{.FuncName}}{{.TypeParamDecl}}(a {{.Array}}) {{.Type}} {
	return *(*{{.Type}})(unsafe.Pointer(&a))
}`)),

	"FromArrayRef": template.Must(template.New("FromArrayRef").Parse(
		`// {{.FuncName}} reinterprets a as a *{{.Type}}, sharing its memory.
func {{.FuncName}}{{.TypeParamDecl}}(a *{{.Array}}) *{{.Type}} {
	return (*{{.Type}})(unsafe.Pointer(a))
}`)),

	"FromSlice": template.Must(template.New("FromSlice").Parse(
		`// {{.FuncName}} reinterprets s as a *{{.Type}}, sharing the slice's backing
// memory. It panics unless len(s) == {{.Count}}.
func {{.FuncName}}{{.TypeParamDecl}}(s {{.Slice}}) *{{.Type}} {
	if len(s) != {{.Count}} {
		panic(fmt.Sprintf("structarray: cannot view {{.Slice}} of length %d as {{.Type}} (need {{.Count}})", len(s)))
	}

	return (*{{.Type}})(unsafe.Pointer(unsafe.SliceData(s)))
}`)),
}

// fileTemplate assembles the generated file from rendered declarations.
var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by structarray. DO NOT EDIT.

package {{.PackageName}}

import (
{{- if .NeedsFmt}}
	"fmt"
{{- end}}
	"unsafe"
)
{{if .Assert}}
// Compile-time proof that {{.Name}} has exactly the memory footprint of {{.ArrayType}}.
const _ = unsafe.Sizeof({{.Name}}{}) - unsafe.Sizeof({{.ArrayType}}{})

const _ = unsafe.Sizeof({{.ArrayType}}{}) - unsafe.Sizeof({{.Name}}{})
{{end}}
{{range .Decls}}
{{.}}
{{end}}`))
