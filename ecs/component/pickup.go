package component

// Pickup is a dye collectible. It hovers around BaseY and is consumed by an
// actor of the same Color.
type Pickup struct {
	Color        ColorType
	BaseY        float64
	BobAmplitude float64
	BobSpeed     float64
	BobPhase     float64
	Initialized  bool
}

var PickupComponent = NewComponent[Pickup]()
