package plotly

// Marker configures the marker style of a scatter3d trace. Color and
// Symbol are per-point arrays.
type Marker struct {
	Size    int      `json:"size,omitempty"`
	Color   []string `json:"color,omitempty"`
	Opacity float64  `json:"opacity,omitempty"`
	Symbol  []string `json:"symbol,omitempty"`
}

// Line configures the line style of a scatter3d trace.
type Line struct {
	Width float64 `json:"width,omitempty"`
	Color string  `json:"color,omitempty"`
}

// TextFont configures floating text rendering.
type TextFont struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Scatter3d is a 3D scatter trace: markers, lines, or floating text
// depending on Mode.
type Scatter3d struct {
	Type         string    `json:"type"`
	X            Coords    `json:"x"`
	Y            Coords    `json:"y"`
	Z            Coords    `json:"z"`
	Mode         string    `json:"mode"`
	Text         []string  `json:"text,omitempty"`
	TextPosition string    `json:"textposition,omitempty"`
	TextFont     *TextFont `json:"textfont,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
	Line         *Line     `json:"line,omitempty"`
	HoverInfo    string    `json:"hoverinfo,omitempty"`
	HoverText    []string  `json:"hovertext,omitempty"`
}

// NewScatter3d returns a trace with the type field set.
func NewScatter3d() *Scatter3d {
	return &Scatter3d{Type: "scatter3d"}
}

// Axis configures one axis of the 3D scene. The zero value hides the
// tick labels and title and keeps the background opaque; set
// BackgroundColor to "rgba(0,0,0,0)" for transparency.
type Axis struct {
	ShowTickLabels  bool   `json:"showticklabels"`
	Title           string `json:"title"`
	BackgroundColor string `json:"backgroundcolor,omitempty"`
}

// Scene holds the three axes of a 3D plot.
type Scene struct {
	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
	ZAxis Axis `json:"zaxis"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
	T int `json:"t"`
}

// Layout holds chart-level presentation settings.
type Layout struct {
	Title      string  `json:"title,omitempty"`
	ShowLegend bool    `json:"showlegend"`
	Scene      *Scene  `json:"scene,omitempty"`
	Margin     *Margin `json:"margin,omitempty"`
}

// Figure is a complete plotly figure: traces plus layout.
type Figure struct {
	Data   []*Scatter3d `json:"data"`
	Layout Layout       `json:"layout"`
}
