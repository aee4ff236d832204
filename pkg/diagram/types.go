package diagram

import "fmt"

// Vec3 represents a 3D position.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns the vector scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mid returns the arithmetic midpoint of two positions, per axis.
func (v Vec3) Mid(o Vec3) Vec3 {
	return v.Add(o).Scale(0.5)
}

// Node is a category: a named point with a fixed position and styling.
type Node struct {
	Name   string `json:"name"`
	Pos    Vec3   `json:"pos"`
	Color  string `json:"color"`
	Symbol string `json:"symbol"`
}

// Functor is a directed, labeled connection between two named categories.
type Functor struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// Diagram is the complete category map: categories in authoring order
// plus the functor list. Authoring order is preserved so that rendering
// the same diagram twice produces byte-identical output.
type Diagram struct {
	Title     string             `json:"title,omitempty"`
	Nodes     []*Node            `json:"nodes"`
	Functors  []Functor          `json:"functors"`
	NameIndex map[string]*Node   `json:"-"`
}

// New creates an empty Diagram.
func New() *Diagram {
	return &Diagram{
		NameIndex: make(map[string]*Node),
	}
}

// AddNode appends a category to the diagram. It does not check for
// duplicate names; Validate reports those.
func (d *Diagram) AddNode(n *Node) {
	d.Nodes = append(d.Nodes, n)
	if n.Name != "" {
		d.NameIndex[n.Name] = n
	}
}

// AddFunctor appends a functor to the diagram.
func (d *Diagram) AddFunctor(f Functor) {
	d.Functors = append(d.Functors, f)
}

// Lookup returns the category with the given name, or nil.
func (d *Diagram) Lookup(name string) *Node {
	return d.NameIndex[name]
}

// MustLookup returns the category with the given name, or panics.
func (d *Diagram) MustLookup(name string) *Node {
	n := d.Lookup(name)
	if n == nil {
		panic(fmt.Sprintf("diagram: no category named %q", name))
	}
	return n
}

// NodeCount returns the number of categories.
func (d *Diagram) NodeCount() int {
	return len(d.Nodes)
}

// FunctorCount returns the number of functors.
func (d *Diagram) FunctorCount() int {
	return len(d.Functors)
}
