package engine

import (
	"strings"
	"testing"
)

func TestEvaluateEmptyString(t *testing.T) {
	eng := NewEngine()

	d, evalErrs, err := eng.Evaluate("")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if d == nil {
		t.Fatal("expected non-nil diagram")
	}
	if d.NodeCount() != 0 {
		t.Errorf("expected empty diagram, got %d categories", d.NodeCount())
	}
}

func TestEvaluateWhitespaceOnly(t *testing.T) {
	eng := NewEngine()

	d, evalErrs, err := eng.Evaluate("   \n\t  \n  ")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if d == nil || d.NodeCount() != 0 {
		t.Error("whitespace source should evaluate to an empty diagram")
	}
}

func TestEvaluateCategory(t *testing.T) {
	eng := NewEngine()

	source := `(category "Set" :pos (vec3 0 0 -1) :color "grey" :symbol "diamond")`
	d, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if d.NodeCount() != 1 {
		t.Fatalf("expected 1 category, got %d", d.NodeCount())
	}

	n := d.Lookup("Set")
	if n == nil {
		t.Fatal(`Lookup("Set") returned nil`)
	}
	if n.Pos.X != 0 || n.Pos.Y != 0 || n.Pos.Z != -1 {
		t.Errorf("pos = %v, want (0,0,-1)", n.Pos)
	}
	if n.Color != "grey" {
		t.Errorf("color = %q, want grey", n.Color)
	}
	if n.Symbol != "diamond" {
		t.Errorf("symbol = %q, want diamond", n.Symbol)
	}
}

func TestEvaluateKeywordStyles(t *testing.T) {
	eng := NewEngine()

	// Keyword values work for color and symbol, including kebab symbols.
	source := `(category "Top" :pos (vec3 -2 2 1) :color :blue :symbol "circle-open")`
	d, evalErrs, err := eng.Evaluate(source)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("eval failed: %v %v", err, evalErrs)
	}

	n := d.Lookup("Top")
	if n == nil {
		t.Fatal(`Lookup("Top") returned nil`)
	}
	if n.Color != "blue" {
		t.Errorf("color = %q, want blue", n.Color)
	}
	if n.Symbol != "circle-open" {
		t.Errorf("symbol = %q, want circle-open", n.Symbol)
	}
}

func TestEvaluateFunctor(t *testing.T) {
	eng := NewEngine()

	source := `
(category "Top" :pos (vec3 -2 2 1) :color "blue" :symbol "circle")
(category "Set" :pos (vec3 0 0 -1) :color "grey" :symbol "diamond")
(functor "Top" "Set" "U (Forgetful)")
`
	d, evalErrs, err := eng.Evaluate(source)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("eval failed: %v %v", err, evalErrs)
	}

	if d.FunctorCount() != 1 {
		t.Fatalf("expected 1 functor, got %d", d.FunctorCount())
	}
	f := d.Functors[0]
	if f.From != "Top" || f.To != "Set" || f.Label != "U (Forgetful)" {
		t.Errorf("functor = %+v", f)
	}
}

func TestEvaluateTitle(t *testing.T) {
	eng := NewEngine()

	d, evalErrs, err := eng.Evaluate(`(title "Functor Zoo")`)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("eval failed: %v %v", err, evalErrs)
	}
	if d.Title != "Functor Zoo" {
		t.Errorf("title = %q, want Functor Zoo", d.Title)
	}
}

func TestEvaluateUnicodeLabels(t *testing.T) {
	eng := NewEngine()

	source := `
(category "Top" :pos (vec3 -2 2 1) :color "blue" :symbol "circle")
(category "Grp" :pos (vec3 2 2 1) :color "red" :symbol "square")
(functor "Top" "Grp" "π₁ (Fundamental Group)")
`
	d, evalErrs, err := eng.Evaluate(source)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("eval failed: %v %v", err, evalErrs)
	}
	if d.Functors[0].Label != "π₁ (Fundamental Group)" {
		t.Errorf("label = %q", d.Functors[0].Label)
	}
}

func TestEvaluateParseError(t *testing.T) {
	eng := NewEngine()

	d, evalErrs, err := eng.Evaluate(`(category "Set"`)
	if err != nil {
		t.Fatalf("parse errors should not be fatal: %v", err)
	}
	if d != nil {
		t.Error("expected nil diagram on parse error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}
}

func TestEvaluateArityError(t *testing.T) {
	eng := NewEngine()

	d, evalErrs, err := eng.Evaluate(`(functor "Top" "Set")`)
	if err != nil {
		t.Fatalf("arity errors should not be fatal: %v", err)
	}
	if d != nil {
		t.Error("expected nil diagram on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}
	joined := ""
	for _, e := range evalErrs {
		joined += e.Error() + "\n"
	}
	if !strings.Contains(joined, "functor") {
		t.Errorf("error should mention the failing builtin, got %q", joined)
	}
}

func TestEvaluateFreshSandboxPerCall(t *testing.T) {
	eng := NewEngine()

	src := `(category "Set" :pos (vec3 0 0 0) :color "grey" :symbol "diamond")`
	for i := 0; i < 3; i++ {
		d, evalErrs, err := eng.Evaluate(src)
		if err != nil || len(evalErrs) > 0 {
			t.Fatalf("run %d: eval failed: %v %v", i, err, evalErrs)
		}
		if d.NodeCount() != 1 {
			t.Fatalf("run %d: state leaked between evaluations: %d categories", i, d.NodeCount())
		}
	}
}

func TestEvalErrorString(t *testing.T) {
	e := EvalError{Line: 3, Message: "boom"}
	if e.Error() != "line 3: boom" {
		t.Errorf("Error() = %q", e.Error())
	}
	e = EvalError{Message: "boom"}
	if e.Error() != "boom" {
		t.Errorf("Error() = %q", e.Error())
	}
}
