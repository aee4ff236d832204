package diagram

import (
	"fmt"
	"math"
)

// Break is the sentinel inserted into segment coordinate sequences to
// signal "end of this line segment, start a new disconnected one".
// It serializes as null on the wire.
var Break = math.NaN()

// IsBreak reports whether a coordinate entry is the break sentinel.
func IsBreak(v float64) bool {
	return math.IsNaN(v)
}

// MarkerLayer holds one marker per category in authoring order, as
// parallel sequences.
type MarkerLayer struct {
	X, Y, Z []float64
	Text    []string // category names, also used as hover text
	Colors  []string
	Symbols []string
}

// SegmentLayer holds the disconnected line segments for all functors:
// for each functor, source coords, target coords, then the break
// sentinel, so the sequence length is 3x the functor count per axis.
type SegmentLayer struct {
	X, Y, Z []float64
}

// LabelLayer holds one floating text label per functor, positioned at
// the arithmetic midpoint of the functor's endpoints.
type LabelLayer struct {
	X, Y, Z []float64
	Text    []string
}

// BuildMarkerLayer collects every category's coordinates, color,
// symbol, and name into parallel sequences, in authoring order.
func BuildMarkerLayer(d *Diagram) MarkerLayer {
	l := MarkerLayer{
		X:       make([]float64, 0, len(d.Nodes)),
		Y:       make([]float64, 0, len(d.Nodes)),
		Z:       make([]float64, 0, len(d.Nodes)),
		Text:    make([]string, 0, len(d.Nodes)),
		Colors:  make([]string, 0, len(d.Nodes)),
		Symbols: make([]string, 0, len(d.Nodes)),
	}
	for _, n := range d.Nodes {
		l.X = append(l.X, n.Pos.X)
		l.Y = append(l.Y, n.Pos.Y)
		l.Z = append(l.Z, n.Pos.Z)
		l.Text = append(l.Text, n.Name)
		l.Colors = append(l.Colors, n.Color)
		l.Symbols = append(l.Symbols, n.Symbol)
	}
	return l
}

// BuildSegmentLayer appends, for every functor in list order, the
// source and target coordinates followed by the break sentinel.
// It returns an error if a functor names a missing category.
func BuildSegmentLayer(d *Diagram) (SegmentLayer, error) {
	l := SegmentLayer{
		X: make([]float64, 0, 3*len(d.Functors)),
		Y: make([]float64, 0, 3*len(d.Functors)),
		Z: make([]float64, 0, 3*len(d.Functors)),
	}
	for i, f := range d.Functors {
		from, to, err := endpoints(d, i, f)
		if err != nil {
			return SegmentLayer{}, err
		}
		l.X = append(l.X, from.Pos.X, to.Pos.X, Break)
		l.Y = append(l.Y, from.Pos.Y, to.Pos.Y, Break)
		l.Z = append(l.Z, from.Pos.Z, to.Pos.Z, Break)
	}
	return l, nil
}

// BuildLabelLayer records each functor's label at the per-axis
// arithmetic midpoint of its endpoints, in list order.
func BuildLabelLayer(d *Diagram) (LabelLayer, error) {
	l := LabelLayer{
		X:    make([]float64, 0, len(d.Functors)),
		Y:    make([]float64, 0, len(d.Functors)),
		Z:    make([]float64, 0, len(d.Functors)),
		Text: make([]string, 0, len(d.Functors)),
	}
	for i, f := range d.Functors {
		from, to, err := endpoints(d, i, f)
		if err != nil {
			return LabelLayer{}, err
		}
		mid := from.Pos.Mid(to.Pos)
		l.X = append(l.X, mid.X)
		l.Y = append(l.Y, mid.Y)
		l.Z = append(l.Z, mid.Z)
		l.Text = append(l.Text, f.Label)
	}
	return l, nil
}

// endpoints resolves both endpoints of a functor.
func endpoints(d *Diagram, i int, f Functor) (from, to *Node, err error) {
	from = d.Lookup(f.From)
	if from == nil {
		return nil, nil, fmt.Errorf("functor %d (%q): source %q does not exist", i, f.Label, f.From)
	}
	to = d.Lookup(f.To)
	if to == nil {
		return nil, nil, fmt.Errorf("functor %d (%q): target %q does not exist", i, f.Label, f.To)
	}
	return from, to, nil
}
