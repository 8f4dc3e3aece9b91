package analyze

// Package holds the annotated records found in one loaded package.
type Package struct {
	// Name is the package name (e.g., "example").
	Name string
	// Path is the import path (e.g., "structarray/example").
	Path string
	// Dir is the directory holding the package sources.
	Dir string
	// Records are the annotated type declarations, in file then
	// declaration order.
	Records []*RecordDescription
}

// RecordDescription is the structured description of a candidate
// record, extracted from a type declaration carrying a structarray
// directive. It is the input boundary of the generator: the validator
// consumes it as-is and never re-reads source text.
type RecordDescription struct {
	// Name is the declared type name.
	Name string
	// PkgName and PkgPath identify the declaring package.
	PkgName string
	PkgPath string
	// Doc is the declaration doc comment with the directive stripped.
	Doc string
	// Directive is the parsed structarray directive.
	Directive *Directive
	// IsStruct reports whether the declaration denotes a struct type.
	// Non-struct declarations still produce a description so the
	// validator can reject them in order.
	IsStruct bool
	// Fields are the declared fields, one entry per field name, in
	// declaration order. A combined declaration ("X, Y uint32")
	// contributes one entry per name.
	Fields []FieldDecl
	// TypeParams are the type parameters of a generic declaration,
	// carried through opaquely.
	TypeParams []TypeParam
	// Pos is the "file:line" position of the declaration.
	Pos string
}

// ID returns the qualified record identifier (e.g., "example.Point").
func (d *RecordDescription) ID() string {
	if d.PkgName == "" {
		return d.Name
	}

	return d.PkgName + "." + d.Name
}

// FieldDecl describes a single declared field.
type FieldDecl struct {
	// Name is the field name. Embedded fields use the base type name.
	Name string
	// Type is the field type exactly as written in the source.
	Type string
	// Exported reports whether the field name is exported.
	Exported bool
	// Doc is the field doc comment, if any.
	Doc string
	// Index is the field position in declaration order, counting
	// each name of a combined declaration separately.
	Index int
}

// TypeParam is one type parameter of a generic record, kept as source
// text so generated declarations can restate it verbatim.
type TypeParam struct {
	// Name is the type parameter name (e.g., "E").
	Name string
	// Constraint is the constraint expression as written (e.g., "any").
	Constraint string
}
