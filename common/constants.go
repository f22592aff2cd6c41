package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerUnit converts world units to screen pixels at zoom 1.
	PixelsPerUnit = 48.0

	// FixedStep is the physics tick in seconds.
	FixedStep = 0.02

	// MaxRayDistance stands in for an unbounded ray.
	MaxRayDistance = 10000.0
)

// Scene names.
const (
	SceneMainMenu = "MainMenu"
	SceneArena    = "Arena"
)

// Collision layers. Each actor owns LayerPlayerBase+binding index.
const (
	LayerDefault     = 0
	LayerCollectible = 1
	LayerPlayerBase  = 8
)
