package system

import (
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
)

// ReloadSystem counts down Reload components and re-arms the actor's weapon
// once the reload time has fully elapsed.
type ReloadSystem struct{}

func NewReloadSystem() *ReloadSystem {
	return &ReloadSystem{}
}

func (s *ReloadSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ReloadComponent.Kind(), func(e ecs.Entity, reload *component.Reload) {
		reload.Remaining -= dt
		if reload.Remaining > 0 {
			return
		}

		ecs.Remove(w, e, component.ReloadComponent.Kind())
		if actor, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
			actor.CanFire = true
		}
	})
}
