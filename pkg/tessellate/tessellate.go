// Package tessellate sculpts a category diagram into triangle meshes
// using a geometry kernel: one solid per category marker, shaped by its
// symbol, and one cylindrical strut per functor. The result can be
// exported as STL for 3D printing the map.
package tessellate

import (
	"fmt"
	"math"

	"github.com/zrjames/catmap/pkg/diagram"
	"github.com/zrjames/catmap/pkg/kernel"
)

// Marker and strut proportions in scene units.
const (
	markerRadius = 0.25
	strutRadius  = 0.06
	crossArm     = 0.12 // half-thickness of cross/x arms
)

// minStrutLength guards against zero-length struts when two categories
// share a position.
const minStrutLength = 1e-9

// Tessellate walks the diagram and produces one mesh per category and
// per functor using the provided geometry kernel. The tessellator is
// read-only and never mutates the diagram.
func Tessellate(d *diagram.Diagram, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if d == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh

	for _, n := range d.Nodes {
		solid := markerSolid(k, n)
		m, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: category %q: %w", n.Name, err)
		}
		m.Name = n.Name
		meshes = append(meshes, m)
	}

	for i, f := range d.Functors {
		solid, err := strutSolid(k, d, i, f)
		if err != nil {
			return nil, err
		}
		if solid == nil {
			continue
		}
		m, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: functor %q: %w", f.Label, err)
		}
		m.Name = f.Label
		meshes = append(meshes, m)
	}

	return meshes, nil
}

// ExportSTL sculpts the whole diagram into a single solid and writes it
// to path in binary STL format. Nothing is written if the diagram fails
// to sculpt.
func ExportSTL(d *diagram.Diagram, k kernel.Kernel, path string) error {
	combined, err := Solid(d, k)
	if err != nil {
		return err
	}
	if combined == nil {
		return fmt.Errorf("tessellate: empty diagram has no geometry to export")
	}

	m, err := k.ToMesh(combined)
	if err != nil {
		return fmt.Errorf("tessellate: %w", err)
	}
	m.Name = d.Title
	return kernel.WriteSTLFile(m, path)
}

// Solid unions every marker and strut into one solid, or nil for an
// empty diagram.
func Solid(d *diagram.Diagram, k kernel.Kernel) (kernel.Solid, error) {
	var combined kernel.Solid

	join := func(s kernel.Solid) {
		if combined == nil {
			combined = s
			return
		}
		combined = k.Union(combined, s)
	}

	for _, n := range d.Nodes {
		join(markerSolid(k, n))
	}
	for i, f := range d.Functors {
		s, err := strutSolid(k, d, i, f)
		if err != nil {
			return nil, err
		}
		if s != nil {
			join(s)
		}
	}
	return combined, nil
}

// markerSolid creates the solid for one category marker, shaped by its
// symbol, positioned at the category's coordinates.
func markerSolid(k kernel.Kernel, n *diagram.Node) kernel.Solid {
	var s kernel.Solid
	side := markerRadius * 2

	switch n.Symbol {
	case "square", "square-open":
		s = k.Box(side, side, side)
	case "diamond", "diamond-open":
		// A box balanced on a corner reads as a diamond from any angle.
		s = k.Rotate(k.Box(side, side, side), 45, 0, 45)
	case "cross":
		s = crossSolid(k, 0)
	case "x":
		s = crossSolid(k, 45)
	default:
		// circle, circle-open, and anything else renders as a sphere.
		s = k.Sphere(markerRadius)
	}

	return k.Translate(s, n.Pos.X, n.Pos.Y, n.Pos.Z)
}

// crossSolid builds two perpendicular arms, optionally spun around Z.
func crossSolid(k kernel.Kernel, spin float64) kernel.Solid {
	long := markerRadius * 2.4
	arms := k.Union(
		k.Box(long, crossArm*2, crossArm*2),
		k.Box(crossArm*2, long, crossArm*2),
	)
	if spin == 0 {
		return arms
	}
	return k.Rotate(arms, 0, 0, spin)
}

// strutSolid creates the cylindrical strut for one functor: a cylinder
// along Z, rotated to the endpoint direction, moved to the midpoint.
// Returns nil for a degenerate (zero-length) functor.
func strutSolid(k kernel.Kernel, d *diagram.Diagram, i int, f diagram.Functor) (kernel.Solid, error) {
	from := d.Lookup(f.From)
	if from == nil {
		return nil, fmt.Errorf("tessellate: functor %d (%q): source %q does not exist", i, f.Label, f.From)
	}
	to := d.Lookup(f.To)
	if to == nil {
		return nil, fmt.Errorf("tessellate: functor %d (%q): target %q does not exist", i, f.Label, f.To)
	}

	dx := to.Pos.X - from.Pos.X
	dy := to.Pos.Y - from.Pos.Y
	dz := to.Pos.Z - from.Pos.Z
	length := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if length < minStrutLength {
		return nil, nil
	}

	// Euler angles that carry the cylinder's Z axis onto the endpoint
	// direction: pitch about Y, then azimuth about Z.
	pitch := math.Acos(dz/length) * 180 / math.Pi
	azimuth := math.Atan2(dy, dx) * 180 / math.Pi

	s := k.Cylinder(length, strutRadius, 32)
	s = k.Rotate(s, 0, pitch, azimuth)

	mid := from.Pos.Mid(to.Pos)
	return k.Translate(s, mid.X, mid.Y, mid.Z), nil
}
