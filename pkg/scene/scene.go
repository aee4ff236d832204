// Package scene composes a category diagram into a plotly figure and
// serializes it to a standalone interactive HTML document. The scene is
// three layers: one marker per category, disconnected line segments for
// the functors, and floating functor labels at segment midpoints.
package scene

import (
	"fmt"

	"github.com/zrjames/catmap/pkg/diagram"
	"github.com/zrjames/catmap/pkg/plotly"
)

// DefaultTitle is used when the diagram does not set its own title.
const DefaultTitle = "A 3D Map of Mathematical Categories and Functors"

// Presentation constants for the three layers.
const (
	markerSize    = 12
	markerOpacity = 0.8
	edgeWidth     = 2
	edgeColor     = "darkgrey"
	labelFontSize = 10
	labelColor    = "black"
)

// transparent is the background applied to all three scene axes.
const transparent = "rgba(0,0,0,0)"

// Compose validates the diagram and assembles the marker, segment, and
// label layers into a single figure. A blocking validation finding
// aborts composition; warnings are ignored here and surfaced by Render.
func Compose(d *diagram.Diagram) (*plotly.Figure, error) {
	if errs := diagram.Validate(d); diagram.Blocking(errs) {
		return nil, fmt.Errorf("scene: invalid diagram: %w", firstBlocking(errs))
	}

	markers := diagram.BuildMarkerLayer(d)
	segments, err := diagram.BuildSegmentLayer(d)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	labels, err := diagram.BuildLabelLayer(d)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	nodeTrace := plotly.NewScatter3d()
	nodeTrace.Mode = "markers+text"
	nodeTrace.X = markers.X
	nodeTrace.Y = markers.Y
	nodeTrace.Z = markers.Z
	nodeTrace.Text = markers.Text
	nodeTrace.TextPosition = "top center"
	nodeTrace.Marker = &plotly.Marker{
		Size:    markerSize,
		Color:   markers.Colors,
		Opacity: markerOpacity,
		Symbol:  markers.Symbols,
	}
	nodeTrace.HoverInfo = "text"
	nodeTrace.HoverText = markers.Text

	edgeTrace := plotly.NewScatter3d()
	edgeTrace.Mode = "lines"
	edgeTrace.X = segments.X
	edgeTrace.Y = segments.Y
	edgeTrace.Z = segments.Z
	edgeTrace.Line = &plotly.Line{Width: edgeWidth, Color: edgeColor}
	edgeTrace.HoverInfo = "none"

	labelTrace := plotly.NewScatter3d()
	labelTrace.Mode = "text"
	labelTrace.X = labels.X
	labelTrace.Y = labels.Y
	labelTrace.Z = labels.Z
	labelTrace.Text = labels.Text
	labelTrace.TextFont = &plotly.TextFont{Size: labelFontSize, Color: labelColor}
	labelTrace.HoverInfo = "text"
	labelTrace.HoverText = labels.Text

	title := d.Title
	if title == "" {
		title = DefaultTitle
	}

	hidden := plotly.Axis{BackgroundColor: transparent}
	fig := &plotly.Figure{
		Data: []*plotly.Scatter3d{nodeTrace, edgeTrace, labelTrace},
		Layout: plotly.Layout{
			Title: title,
			Scene: &plotly.Scene{
				XAxis: hidden,
				YAxis: hidden,
				ZAxis: hidden,
			},
			Margin: &plotly.Margin{L: 0, R: 0, B: 0, T: 40},
		},
	}
	return fig, nil
}

// Render composes the diagram and writes the interactive HTML document
// to path, overwriting any existing file. Nothing is written when
// composition fails, so a prior file is left untouched on error.
// Advisory validation warnings are logged by the caller if desired;
// Render itself only fails on blocking errors.
func Render(d *diagram.Diagram, path string) error {
	fig, err := Compose(d)
	if err != nil {
		return err
	}
	return plotly.WriteHTMLFile(fig, path)
}

// firstBlocking returns the first error-severity finding.
func firstBlocking(errs []diagram.ValidationError) error {
	for _, e := range errs {
		if e.Severity == diagram.SeverityError {
			return e
		}
	}
	return nil
}
