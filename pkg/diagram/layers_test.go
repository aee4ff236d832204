package diagram

import "testing"

func TestBuildMarkerLayer(t *testing.T) {
	d := testDiagram()
	l := BuildMarkerLayer(d)

	if len(l.X) != 2 || len(l.Y) != 2 || len(l.Z) != 2 {
		t.Fatalf("marker layer length = %d/%d/%d, want 2 per axis", len(l.X), len(l.Y), len(l.Z))
	}
	if l.Text[0] != "A" || l.Text[1] != "B" {
		t.Errorf("marker text = %v, want [A B]", l.Text)
	}
	if l.X[1] != 2 || l.Y[1] != 0 || l.Z[1] != 0 {
		t.Errorf("marker B at (%v,%v,%v), want (2,0,0)", l.X[1], l.Y[1], l.Z[1])
	}
	if l.Colors[0] != "grey" || l.Symbols[0] != "diamond" {
		t.Errorf("marker A style = %q/%q, want grey/diamond", l.Colors[0], l.Symbols[0])
	}
}

func TestBuildSegmentLayer(t *testing.T) {
	d := testDiagram()
	l, err := BuildSegmentLayer(d)
	if err != nil {
		t.Fatalf("BuildSegmentLayer: %v", err)
	}

	// Two endpoints plus one separator per functor.
	if len(l.X) != 3 || len(l.Y) != 3 || len(l.Z) != 3 {
		t.Fatalf("segment layer length = %d/%d/%d, want 3 per axis", len(l.X), len(l.Y), len(l.Z))
	}
	if l.X[0] != 0 || l.X[1] != 2 {
		t.Errorf("segment X = %v, want [0 2 break]", l.X)
	}
	if !IsBreak(l.X[2]) || !IsBreak(l.Y[2]) || !IsBreak(l.Z[2]) {
		t.Error("every third entry must be the break sentinel")
	}
}

func TestBuildLabelLayerMidpoint(t *testing.T) {
	d := testDiagram()
	l, err := BuildLabelLayer(d)
	if err != nil {
		t.Fatalf("BuildLabelLayer: %v", err)
	}

	if len(l.Text) != 1 || l.Text[0] != "f" {
		t.Fatalf("label text = %v, want [f]", l.Text)
	}
	if l.X[0] != 1 || l.Y[0] != 0 || l.Z[0] != 0 {
		t.Errorf("label at (%v,%v,%v), want (1,0,0)", l.X[0], l.Y[0], l.Z[0])
	}
}

func TestBuildLayersZeroFunctors(t *testing.T) {
	d := New()
	d.AddNode(&Node{Name: "Set", Pos: Vec3{0, 0, -1}, Color: "grey", Symbol: "diamond"})

	segs, err := BuildSegmentLayer(d)
	if err != nil {
		t.Fatalf("BuildSegmentLayer: %v", err)
	}
	if len(segs.X) != 0 {
		t.Errorf("segment layer should be empty, got %d entries", len(segs.X))
	}

	labels, err := BuildLabelLayer(d)
	if err != nil {
		t.Fatalf("BuildLabelLayer: %v", err)
	}
	if len(labels.Text) != 0 {
		t.Errorf("label layer should be empty, got %d entries", len(labels.Text))
	}

	markers := BuildMarkerLayer(d)
	if len(markers.X) != 1 {
		t.Errorf("marker layer should still hold 1 marker, got %d", len(markers.X))
	}
}

func TestBuildLayersDanglingEndpoint(t *testing.T) {
	d := testDiagram()
	d.AddFunctor(Functor{From: "Nope", To: "B", Label: "g"})

	if _, err := BuildSegmentLayer(d); err == nil {
		t.Error("BuildSegmentLayer should fail on a dangling source")
	}
	if _, err := BuildLabelLayer(d); err == nil {
		t.Error("BuildLabelLayer should fail on a dangling source")
	}
}
