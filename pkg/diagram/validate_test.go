package diagram

import (
	"strings"
	"testing"
)

// testDiagram builds a small valid diagram: two categories, one functor.
func testDiagram() *Diagram {
	d := New()
	d.AddNode(&Node{Name: "A", Pos: Vec3{0, 0, 0}, Color: "grey", Symbol: "diamond"})
	d.AddNode(&Node{Name: "B", Pos: Vec3{2, 0, 0}, Color: "blue", Symbol: "circle"})
	d.AddFunctor(Functor{From: "A", To: "B", Label: "f"})
	return d
}

func errorCount(errs []ValidationError) int {
	n := 0
	for _, e := range errs {
		if e.Severity == SeverityError {
			n++
		}
	}
	return n
}

func TestValidateCleanDiagram(t *testing.T) {
	errs := Validate(testDiagram())
	if len(errs) != 0 {
		t.Fatalf("expected no findings, got %v", errs)
	}
}

func TestValidateDanglingEndpoint(t *testing.T) {
	d := testDiagram()
	d.AddFunctor(Functor{From: "A", To: "Nope", Label: "g"})

	errs := Validate(d)
	if errorCount(errs) != 1 {
		t.Fatalf("expected 1 blocking error, got %v", errs)
	}
	if !Blocking(errs) {
		t.Error("dangling endpoint must block rendering")
	}
	if !strings.Contains(errs[0].Message, `"Nope"`) {
		t.Errorf("error should name the missing category, got %q", errs[0].Message)
	}
}

func TestValidateDuplicateName(t *testing.T) {
	d := testDiagram()
	d.AddNode(&Node{Name: "A", Pos: Vec3{5, 5, 5}, Color: "red", Symbol: "square"})

	errs := Validate(d)
	if errorCount(errs) == 0 {
		t.Fatal("duplicate name should be a blocking error")
	}
}

func TestValidateEmptyName(t *testing.T) {
	d := testDiagram()
	d.AddNode(&Node{Name: "", Color: "red", Symbol: "square"})

	if errorCount(Validate(d)) == 0 {
		t.Fatal("empty name should be a blocking error")
	}
}

func TestValidateStyles(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		symbol  string
		wantErr bool
	}{
		{"named color", "purple", "circle", false},
		{"hex color", "#4A90D9", "square", false},
		{"short hex", "#fff", "cross", false},
		{"rgba color", "rgba(0,0,0,0)", "x", false},
		{"unknown color", "blurple", "circle", true},
		{"bad hex", "#12345", "circle", true},
		{"empty color", "", "circle", true},
		{"unknown symbol", "grey", "star-of-david", true},
		{"empty symbol", "grey", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			d.AddNode(&Node{Name: "C", Color: tt.color, Symbol: tt.symbol})
			got := errorCount(Validate(d)) > 0
			if got != tt.wantErr {
				t.Errorf("color=%q symbol=%q: blocking=%v, want %v", tt.color, tt.symbol, got, tt.wantErr)
			}
		})
	}
}

func TestValidateIsolatedNodeWarns(t *testing.T) {
	d := testDiagram()
	d.AddNode(&Node{Name: "Lonely", Color: "green", Symbol: "cross"})

	errs := Validate(d)
	if Blocking(errs) {
		t.Fatalf("isolated category must not block, got %v", errs)
	}
	found := false
	for _, e := range errs {
		if e.Severity == SeverityWarning && e.Node == "Lonely" {
			found = true
		}
	}
	if !found {
		t.Error("expected an isolation warning for category Lonely")
	}
}

func TestValidateNoFunctorsNoIsolationWarnings(t *testing.T) {
	d := New()
	d.AddNode(&Node{Name: "A", Color: "grey", Symbol: "diamond"})
	if len(Validate(d)) != 0 {
		t.Error("a marker-only diagram should validate clean")
	}
}
