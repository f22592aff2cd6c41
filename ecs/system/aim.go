package system

import (
	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/jakecoffman/cp"
)

// OnAim updates the aim vector of e from raw input. With keyboard and mouse
// raw is the cursor in screen pixels; with a gamepad it is the stick
// direction. The aim vector is never normalized.
func (pc *PlayerControllerSystem) OnAim(w *ecs.World, e ecs.Entity, raw cp.Vector, scheme component.InputScheme) {
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok {
		return
	}
	pos, ok := actorPosition(w, e)
	if !ok {
		return
	}

	var camera *component.Camera
	if scheme == component.SchemeKeyboardMouse {
		camera, _ = ecs.Get(w, e, component.CameraComponent.Kind())
	}
	if aim, ok := resolveAim(scheme, raw, pos, camera, actor.Aim); ok {
		actor.Aim = aim
	}
}

// resolveAim returns the new aim vector, or false to keep the current one.
// A centered stick keeps the previous aim so releasing it does not reset the
// direction.
func resolveAim(scheme component.InputScheme, raw, pos cp.Vector, camera *component.Camera, current cp.Vector) (cp.Vector, bool) {
	switch scheme {
	case component.SchemeKeyboardMouse:
		if camera == nil {
			return current, false
		}
		wx, wy := camera.ScreenToWorld(pos.X, pos.Y, raw.X, raw.Y, common.PixelsPerUnit)
		return cp.Vector{X: wx - pos.X, Y: wy - pos.Y}, true
	case component.SchemeGamepad:
		if raw.X == 0 && raw.Y == 0 {
			return current, false
		}
		return raw, true
	default:
		return current, false
	}
}
