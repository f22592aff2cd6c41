package system

import (
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
)

// OnTeleport swaps positions with the next player in join order.
func (pc *PlayerControllerSystem) OnTeleport(w *ecs.World, e ecs.Entity, phase component.InputPhase) {
	if phase != component.PhasePerformed || !pc.CanPlay() {
		return
	}
	binding, ok := ecs.Get(w, e, component.InputBindingComponent.Kind())
	if !ok {
		return
	}
	other, ok := pc.registry.GetNextPlayer(*binding)
	if !ok || !w.IsAlive(other) {
		return
	}

	mine, ok := actorPosition(w, e)
	if !ok {
		return
	}
	theirs, ok := actorPosition(w, other)
	if !ok {
		return
	}
	setActorPosition(w, e, theirs)
	setActorPosition(w, other, mine)

	pc.play(CueTeleport)
}
