package analyze

import (
	"fmt"
	"strings"
)

// DirectivePrefix marks a type declaration for generation. It follows
// the compiler directive convention: a "//structarray:generate" line
// (no space after the slashes) in the declaration's doc comment.
const DirectivePrefix = "structarray:generate"

// Directive holds the parsed parameters of a structarray directive.
//
// Expected format:
//
//	//structarray:generate layout=sequential
//	//structarray:generate layout=sequential caps=deref
//
// Params are space-separated key=value pairs.
type Directive struct {
	// Layout is the declared layout guarantee. Generation requires
	// "sequential"; the validator rejects anything else.
	Layout string
	// Caps selects the generated capability sets: "deref", "convert",
	// or "all". Empty means the record inherits the tool default.
	Caps string
	// Raw is the directive line as written, for diagnostics.
	Raw string
}

// ParseDirective parses a single comment line. It returns (nil, false,
// nil) when the line is not a structarray directive at all, and an
// error when the line is a directive with malformed parameters.
func ParseDirective(line string) (*Directive, bool, error) {
	text, ok := strings.CutPrefix(strings.TrimSpace(line), "//")
	if !ok {
		return nil, false, nil
	}

	// Directive comments have no space between "//" and the word.
	if strings.HasPrefix(text, " ") || strings.HasPrefix(text, "\t") {
		return nil, false, nil
	}

	rest, ok := strings.CutPrefix(text, DirectivePrefix)
	if !ok {
		return nil, false, nil
	}

	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// Some other structarray:generateXxx word; not ours.
		return nil, false, nil
	}

	d := &Directive{Raw: strings.TrimSpace(line)}

	for _, param := range strings.Fields(rest) {
		key, value, ok := strings.Cut(param, "=")
		if !ok {
			return nil, true, fmt.Errorf("malformed directive param %q (want key=value)", param)
		}

		switch key {
		case "layout":
			d.Layout = value

		case "caps":
			switch value {
			case "deref", "convert", "all":
				d.Caps = value
			default:
				return nil, true, fmt.Errorf("caps must be deref, convert or all, got %q", value)
			}

		default:
			return nil, true, fmt.Errorf("unknown directive param %q", key)
		}
	}

	return d, true, nil
}

// FindDirective scans comment lines for a structarray directive.
// The boolean reports whether a directive line was present, even if it
// failed to parse.
func FindDirective(lines []string) (*Directive, bool, error) {
	for _, line := range lines {
		d, isDirective, err := ParseDirective(line)
		if !isDirective {
			continue
		}

		if err != nil {
			return nil, true, err
		}

		return d, true, nil
	}

	return nil, false, nil
}
