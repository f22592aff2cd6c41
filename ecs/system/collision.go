package system

import (
	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
)

// CollisionSystem ends the round as a loss when two players touch. Contacts
// in the main menu are ignored.
type CollisionSystem struct {
	registry Registry
	scenes   Scenes
}

func NewCollisionSystem(registry Registry, scenes Scenes) *CollisionSystem {
	return &CollisionSystem{registry: registry, scenes: scenes}
}

func (s *CollisionSystem) FixedUpdate(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Take(ecs.EventCollisionBegin) {
		contact, ok := evt.Data.(ecs.CollisionEvent)
		if !ok {
			continue
		}
		if !ecs.Has(w, contact.A, component.PlayerTagComponent.Kind()) || !ecs.Has(w, contact.B, component.PlayerTagComponent.Kind()) {
			continue
		}
		if s.scenes != nil && s.scenes.ActiveScene() == common.SceneMainMenu {
			continue
		}
		if s.registry != nil {
			s.registry.GameOver(true)
		}
	}
}
