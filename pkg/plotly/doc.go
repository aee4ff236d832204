// Package plotly models the subset of the plotly.js figure schema that
// catmap emits: 3D scatter traces, a layout with a 3D scene, and a
// standalone HTML document that renders the figure in a browser.
// Serialization is deterministic; rendering the same figure twice
// produces byte-identical documents.
package plotly
