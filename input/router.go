package input

import (
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/jakecoffman/cp"
)

// Handler receives the five input events of a bound actor.
type Handler interface {
	OnMove(w *ecs.World, e ecs.Entity, raw cp.Vector)
	OnAim(w *ecs.World, e ecs.Entity, raw cp.Vector, scheme component.InputScheme)
	OnFire(w *ecs.World, e ecs.Entity, phase component.InputPhase)
	OnTeleport(w *ecs.World, e ecs.Entity, phase component.InputPhase)
	OnReset(w *ecs.World, e ecs.Entity, phase component.InputPhase)
}

// Frame is one device snapshot. Aim is the cursor in screen pixels for
// keyboard and mouse, the right stick for gamepads. Buttons are held state.
type Frame struct {
	Binding  component.InputBinding
	Move     cp.Vector
	Aim      cp.Vector
	Fire     bool
	Teleport bool
	Reset    bool
}

type buttons struct {
	fire, teleport, reset bool
}

// Router turns frames into handler calls, deriving action phases from the
// held state seen on the previous frame.
type Router struct {
	handler Handler
	lookup  func(component.InputBinding) (ecs.Entity, bool)
	prev    map[int]buttons
}

func NewRouter(handler Handler, lookup func(component.InputBinding) (ecs.Entity, bool)) *Router {
	return &Router{
		handler: handler,
		lookup:  lookup,
		prev:    make(map[int]buttons),
	}
}

// Dispatch sends every frame to the actor bound to it. Frames without a live
// actor only update the held state.
func (r *Router) Dispatch(w *ecs.World, frames []Frame) {
	if r == nil || r.handler == nil {
		return
	}
	for _, f := range frames {
		last := r.prev[f.Binding.Index]
		r.prev[f.Binding.Index] = buttons{fire: f.Fire, teleport: f.Teleport, reset: f.Reset}

		if r.lookup == nil {
			continue
		}
		e, ok := r.lookup(f.Binding)
		if !ok || !w.IsAlive(e) {
			continue
		}

		r.handler.OnMove(w, e, f.Move)
		r.handler.OnAim(w, e, f.Aim, f.Binding.Scheme)
		emit(last.fire, f.Fire, func(p component.InputPhase) { r.handler.OnFire(w, e, p) })
		emit(last.teleport, f.Teleport, func(p component.InputPhase) { r.handler.OnTeleport(w, e, p) })
		emit(last.reset, f.Reset, func(p component.InputPhase) { r.handler.OnReset(w, e, p) })
	}
}

// Forget drops the held state of a binding that left.
func (r *Router) Forget(binding component.InputBinding) {
	delete(r.prev, binding.Index)
}

// Reset clears every held state, so buttons held across a scene load need to
// be released before they fire again.
func (r *Router) Reset(frames []Frame) {
	clear(r.prev)
	for _, f := range frames {
		r.prev[f.Binding.Index] = buttons{fire: f.Fire, teleport: f.Teleport, reset: f.Reset}
	}
}

func emit(was, is bool, fn func(component.InputPhase)) {
	switch {
	case is && !was:
		fn(component.PhaseStarted)
		fn(component.PhasePerformed)
	case was && !is:
		fn(component.PhaseCanceled)
	}
}
