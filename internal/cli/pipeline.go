package cli

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	"structarray/internal/analyze"
	"structarray/internal/bind"
	"structarray/internal/config"
	"structarray/internal/diagnostic"
	"structarray/internal/gen"
	"structarray/internal/shape"
)

// runner carries the resolved configuration through a single command
// invocation.
type runner struct {
	cfg config.Config
	// capsFlag is the --caps override; empty means use the config
	// default.
	capsFlag string
	verbose  bool
}

// recordResult is the outcome of validating one annotated record.
type recordResult struct {
	Desc  *analyze.RecordDescription
	Shape *shape.RecordShape
	Caps  bind.Capability
	Err   error
}

// packageResult is the outcome of scanning one package.
type packageResult struct {
	Pkg     *analyze.Package
	Records []recordResult
	Diags   diagnostic.Diagnostics
}

// scan loads the given package patterns and validates every annotated
// record. Validation failures are collected as diagnostics, never
// returned as errors: a scan succeeds as long as the packages load.
func (r *runner) scan(patterns []string) ([]*packageResult, error) {
	if len(patterns) == 0 {
		patterns = r.cfg.Packages
	}

	pkgs, err := analyze.NewLoader().LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	var results []*packageResult

	for _, pkg := range pkgs {
		pr := &packageResult{Pkg: pkg}

		for _, desc := range pkg.Records {
			if r.verbose {
				spew.Fdump(os.Stderr, desc)
			}

			res := recordResult{Desc: desc}

			res.Shape, res.Err = shape.Validate(desc)
			if res.Err != nil {
				pr.Diags.AddError(errorCode(res.Err), res.Err.Error(), desc.ID(), desc.Pos)
			} else {
				res.Caps, res.Err = r.recordCaps(desc)
				if res.Err != nil {
					pr.Diags.AddError("bad_caps", res.Err.Error(), desc.ID(), desc.Pos)
				}
			}

			pr.Records = append(pr.Records, res)
		}

		results = append(results, pr)
	}

	return results, nil
}

// recordCaps resolves the capability selection for one record:
// directive over --caps flag over config default.
func (r *runner) recordCaps(desc *analyze.RecordDescription) (bind.Capability, error) {
	value := desc.Directive.Caps
	if value == "" {
		value = r.capsFlag
	}

	if value == "" {
		value = r.cfg.Caps
	}

	return bind.ParseCapability(value)
}

// generate runs code generation for all scanned packages, one goroutine
// per package. Any validation error in a package aborts that package's
// generation entirely; there is no partial output.
func (r *runner) generate(results []*packageResult) error {
	var g errgroup.Group

	for _, pr := range results {
		pr := pr
		g.Go(func() error {
			if pr.Diags.HasErrors() {
				return fmt.Errorf("package %s: %w", pr.Pkg.Path, pr.Diags.Error())
			}

			generator := gen.NewGenerator(gen.Config{
				Suffix:    r.cfg.Suffix,
				OutputDir: pr.Pkg.Dir,
			})

			var files []gen.GeneratedFile

			for _, res := range pr.Records {
				file, err := generator.GenerateRecord(res.Shape, res.Caps)
				if err != nil {
					return fmt.Errorf("generating %s: %w", res.Shape.ID(), err)
				}

				files = append(files, *file)
			}

			if len(files) == 0 {
				return nil
			}

			return gen.WriteFiles(files, pr.Pkg.Dir)
		})
	}

	return g.Wait()
}

// errorCode maps a validation error to a stable diagnostic code.
func errorCode(err error) string {
	if ve, ok := err.(*shape.ValidationError); ok {
		return ve.Kind.String()
	}

	return "invalid_record"
}
