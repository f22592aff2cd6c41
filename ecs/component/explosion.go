package component

import "image/color"

// Explosion is the short-lived visual spawned where a destructible was hit.
type Explosion struct {
	Radius   float64
	Duration float64
	Elapsed  float64
	Color    color.Color
}

var ExplosionComponent = NewComponent[Explosion]()
