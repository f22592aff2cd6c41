// Package poll reads ebiten devices into input frames.
package poll

import (
	"math"

	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/Xwilarg/WigglingHunt/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

const stickDeadzone = 0.2

// JoinRequest is a device asking for a seat in the round.
type JoinRequest struct {
	Scheme  component.InputScheme
	Gamepad int
}

// Frames snapshots the device of every binding.
func Frames(bindings []component.InputBinding) []input.Frame {
	frames := make([]input.Frame, 0, len(bindings))
	for _, b := range bindings {
		switch b.Scheme {
		case component.SchemeKeyboardMouse:
			frames = append(frames, keyboardMouse(b))
		case component.SchemeGamepad:
			frames = append(frames, gamepad(b))
		}
	}
	return frames
}

func keyboardMouse(b component.InputBinding) input.Frame {
	var move cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y += 1
	}

	mx, my := ebiten.CursorPosition()
	return input.Frame{
		Binding:  b,
		Move:     move,
		Aim:      cp.Vector{X: float64(mx), Y: float64(my)},
		Fire:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Teleport: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Reset:    ebiten.IsKeyPressed(ebiten.KeyR),
	}
}

func gamepad(b component.InputBinding) input.Frame {
	id := ebiten.GamepadID(b.Gamepad)
	f := input.Frame{Binding: b}

	lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if math.Hypot(lx, ly) > stickDeadzone {
		f.Move = cp.Vector{X: lx, Y: ly}
	}
	rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
	if math.Hypot(rx, ry) > stickDeadzone {
		f.Aim = cp.Vector{X: rx, Y: ry}
	}

	f.Fire = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	f.Teleport = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft) ||
		ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	f.Reset = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterLeft)
	return f
}

// Joins returns the devices that pressed their join button this tick: Enter
// for keyboard and mouse, Start for gamepads.
func Joins() []JoinRequest {
	var out []JoinRequest
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		out = append(out, JoinRequest{Scheme: component.SchemeKeyboardMouse})
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			out = append(out, JoinRequest{Scheme: component.SchemeGamepad, Gamepad: int(id)})
		}
	}
	return out
}

// Disconnected lists the gamepads unplugged this tick.
func Disconnected(bindings []component.InputBinding) []component.InputBinding {
	var out []component.InputBinding
	for _, b := range bindings {
		if b.Scheme == component.SchemeGamepad && inpututil.IsGamepadJustDisconnected(ebiten.GamepadID(b.Gamepad)) {
			out = append(out, b)
		}
	}
	return out
}
