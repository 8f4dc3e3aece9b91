package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Loader loads Go packages and extracts annotated record descriptions.
type Loader struct {
	// Dir is the directory to resolve package patterns from.
	// Empty means the current directory.
	Dir string
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadPackages loads the specified packages and extracts a description
// for every type declaration carrying a structarray directive.
// Patterns are standard Go package patterns (e.g., "./example",
// "structarray/example").
func (l *Loader) LoadPackages(patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var result []*Package
	for _, pkg := range pkgs {
		p, err := l.processPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		result = append(result, p)
	}

	return result, nil
}

// processPackage extracts annotated records from a loaded package.
func (l *Loader) processPackage(pkg *packages.Package) (*Package, error) {
	p := &Package{
		Name: pkg.Name,
		Path: pkg.PkgPath,
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil && len(genDecl.Specs) == 1 {
					doc = genDecl.Doc
				}

				rec, err := l.describe(pkg, ts, doc)
				if err != nil {
					return nil, err
				}

				if rec != nil {
					p.Records = append(p.Records, rec)
				}
			}
		}
	}

	return p, nil
}

// describe builds a RecordDescription for a single type declaration,
// or nil when the declaration carries no structarray directive.
func (l *Loader) describe(pkg *packages.Package, ts *ast.TypeSpec, doc *ast.CommentGroup) (*RecordDescription, error) {
	if doc == nil {
		return nil, nil
	}

	lines := make([]string, 0, len(doc.List))
	for _, c := range doc.List {
		lines = append(lines, c.Text)
	}

	pos := pkg.Fset.Position(ts.Pos())
	posStr := fmt.Sprintf("%s:%d", filepath.Base(pos.Filename), pos.Line)

	directive, found, err := FindDirective(lines)
	if !found {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", posStr, ts.Name.Name, err)
	}

	rec := &RecordDescription{
		Name:    ts.Name.Name,
		PkgName: pkg.Name,
		PkgPath: pkg.PkgPath,
		// CommentGroup.Text omits directive lines.
		Doc:       doc.Text(),
		Directive: directive,
		Pos:       posStr,
	}

	rec.TypeParams = typeParams(ts.TypeParams)

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return rec, nil
	}

	rec.IsStruct = true
	rec.Fields = fieldDecls(st)

	return rec, nil
}

// fieldDecls flattens a struct's field list into one FieldDecl per
// declared name, preserving declaration order.
func fieldDecls(st *ast.StructType) []FieldDecl {
	var fields []FieldDecl

	for _, f := range st.Fields.List {
		typeStr := types.ExprString(f.Type)
		fieldDoc := f.Doc.Text()

		if len(f.Names) == 0 {
			// Embedded field: the field name is the base type name.
			name := embeddedName(f.Type)
			fields = append(fields, FieldDecl{
				Name:     name,
				Type:     typeStr,
				Exported: ast.IsExported(name),
				Doc:      fieldDoc,
				Index:    len(fields),
			})

			continue
		}

		for _, ident := range f.Names {
			fields = append(fields, FieldDecl{
				Name:     ident.Name,
				Type:     typeStr,
				Exported: ast.IsExported(ident.Name),
				Doc:      fieldDoc,
				Index:    len(fields),
			})
		}
	}

	return fields
}

// embeddedName returns the implicit field name of an embedded field.
func embeddedName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return embeddedName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(e.X)
	default:
		return ""
	}
}

// typeParams extracts the type parameter list of a generic declaration.
func typeParams(list *ast.FieldList) []TypeParam {
	if list == nil {
		return nil
	}

	var params []TypeParam

	for _, f := range list.List {
		constraint := types.ExprString(f.Type)
		for _, ident := range f.Names {
			params = append(params, TypeParam{
				Name:       ident.Name,
				Constraint: constraint,
			})
		}
	}

	return params
}
