package component

// CollisionLayer places a collider on one of the numbered layers (0..31).
// Raycasts filter by layer bitmask.
type CollisionLayer struct {
	Layer int `json:"layer,omitempty"`
}

// Bit returns the layer's category bit.
func (c CollisionLayer) Bit() uint {
	return 1 << uint(c.Layer)
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
