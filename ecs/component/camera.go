package component

import "image"

// Camera is the viewport that follows its actor. LocalX/LocalY is the offset
// from the actor (moved by screen shake). Viewport is the on-screen rectangle
// in pixels.
type Camera struct {
	LocalX   float64
	LocalY   float64
	Zoom     float64
	Viewport image.Rectangle
}

var CameraComponent = NewComponent[Camera]()

// ScreenToWorld converts a screen pixel to world units given the position of
// the camera's owner.
func (c Camera) ScreenToWorld(ownerX, ownerY, sx, sy, pixelsPerUnit float64) (float64, float64) {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	scale := pixelsPerUnit * zoom
	if scale <= 0 {
		scale = 1
	}
	center := c.Viewport.Min.Add(c.Viewport.Max).Div(2)
	camX := ownerX + c.LocalX
	camY := ownerY + c.LocalY
	return camX + (sx-float64(center.X))/scale, camY + (sy-float64(center.Y))/scale
}

// CameraShake is the decaying screen-shake state of an actor's camera.
// Timer is in seconds; Amplitude is in world units.
type CameraShake struct {
	Timer     float64
	Amplitude float64
}

var CameraShakeComponent = NewComponent[CameraShake]()
