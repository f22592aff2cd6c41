package component

import "image/color"

// LineRender defines a world-space line to render. Hidden lines keep their
// endpoints.
type LineRender struct {
	StartX  float64
	StartY  float64
	EndX    float64
	EndY    float64
	Width   float32
	Color   color.Color
	Visible bool
}

var LineRenderComponent = NewComponent[LineRender]()
