package diagram

import "fmt"

// ValidationSeverity indicates whether a validation finding blocks
// rendering or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks rendering
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Node     string             // which category has the problem ("" if diagram-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] category %q: %s", e.Severity, e.Node, e.Message)
}

// Validate runs all structural checks on the diagram and returns a slice
// of findings. An empty slice means the diagram is valid. The function
// is read-only and never mutates the diagram.
//
// Rendering refuses to produce any output while a blocking error exists,
// so a dangling functor reference aborts the run with the prior output
// file left untouched.
func Validate(d *Diagram) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateNames(d)...)
	errs = append(errs, validateStyles(d)...)
	errs = append(errs, validateEndpoints(d)...)
	errs = append(errs, validateIsolated(d)...)
	return errs
}

// Blocking reports whether any finding in errs has error severity.
func Blocking(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

// validateNames checks that every category has a non-empty, unique name.
func validateNames(d *Diagram) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]int)
	for _, n := range d.Nodes {
		if n.Name == "" {
			errs = append(errs, ValidationError{
				Message:  "category has an empty name",
				Severity: SeverityError,
			})
			continue
		}
		seen[n.Name]++
	}
	for name, count := range seen {
		if count > 1 {
			errs = append(errs, ValidationError{
				Node:     name,
				Message:  fmt.Sprintf("name declared %d times", count),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateStyles checks that node colors and symbols are values the
// charting layer understands.
func validateStyles(d *Diagram) []ValidationError {
	var errs []ValidationError
	for _, n := range d.Nodes {
		if !ValidColor(n.Color) {
			errs = append(errs, ValidationError{
				Node:     n.Name,
				Message:  fmt.Sprintf("unrecognized color %q", n.Color),
				Severity: SeverityError,
			})
		}
		if !ValidSymbols[n.Symbol] {
			errs = append(errs, ValidationError{
				Node:     n.Name,
				Message:  fmt.Sprintf("unrecognized marker symbol %q", n.Symbol),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateEndpoints checks that every functor names two existing
// categories.
func validateEndpoints(d *Diagram) []ValidationError {
	var errs []ValidationError
	for i, f := range d.Functors {
		if d.Lookup(f.From) == nil {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("functor %d (%q): source %q does not exist", i, f.Label, f.From),
				Severity: SeverityError,
			})
		}
		if d.Lookup(f.To) == nil {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("functor %d (%q): target %q does not exist", i, f.Label, f.To),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateIsolated warns about categories no functor touches.
func validateIsolated(d *Diagram) []ValidationError {
	if len(d.Functors) == 0 {
		// A map with no functors at all is a legitimate marker-only scene.
		return nil
	}
	touched := make(map[string]bool)
	for _, f := range d.Functors {
		touched[f.From] = true
		touched[f.To] = true
	}
	var errs []ValidationError
	for _, n := range d.Nodes {
		if !touched[n.Name] {
			errs = append(errs, ValidationError{
				Node:     n.Name,
				Message:  "no functor connects this category",
				Severity: SeverityWarning,
			})
		}
	}
	return errs
}
