package plotly

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
)

// plotlyJS is the pinned CDN build embedded in every emitted document.
// Pinning keeps the output stable across runs and browser caches.
const plotlyJS = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// divID is the id of the element the scene is mounted on.
const divID = "scene"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.PlotlyJS}}"></script>
</head>
<body>
<div id="{{.DivID}}" style="width:100vw;height:100vh;"></div>
<script>
var figure = {{.Figure}};
Plotly.newPlot("{{.DivID}}", figure.data, figure.layout, {responsive: true});
</script>
</body>
</html>
`))

// WriteHTML serializes the figure and writes a standalone interactive
// HTML document to w. Serialization is deterministic: the same figure
// always produces the same bytes.
func WriteHTML(fig *Figure, w io.Writer) error {
	payload, err := json.Marshal(fig)
	if err != nil {
		return fmt.Errorf("plotly: marshal figure: %w", err)
	}
	data := struct {
		Title    string
		PlotlyJS string
		DivID    string
		Figure   template.JS
	}{
		Title:    fig.Layout.Title,
		PlotlyJS: plotlyJS,
		DivID:    divID,
		Figure:   template.JS(payload),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("plotly: execute page template: %w", err)
	}
	return nil
}

// WriteHTMLFile renders the figure to the given path, overwriting any
// existing file. The document is rendered in memory before the path is
// touched, so a serialization failure leaves a prior file intact.
func WriteHTMLFile(fig *Figure, path string) error {
	var buf bytes.Buffer
	if err := WriteHTML(fig, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("plotly: write %s: %w", path, err)
	}
	return nil
}
