package component

import "image/color"

type SpriteShape int

const (
	SpriteBox SpriteShape = iota
	SpriteCircle
)

// Sprite is a flat-colored shape drawn centered on the transform. Order is
// the sorting order; higher draws later.
type Sprite struct {
	Shape  SpriteShape
	Width  float64
	Height float64
	Color  color.Color
	FlipX  bool
	Order  int
}

var SpriteComponent = NewComponent[Sprite]()
