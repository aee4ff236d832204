// Package diagram defines the category map data model for catmap.
// A diagram is an immutable set of named categories with 3D positions
// and a list of directed, labeled functors between them. It is built
// once per run and never mutated afterwards.
package diagram
