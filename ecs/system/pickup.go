package system

import (
	"math"

	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
)

// Collector tracks the dye left to collect per color. Nothing is collected
// before the round is ready or after it has ended.
type Collector interface {
	IsReady() bool
	DidGameEnded() bool
	Collect(c component.ColorType) int
}

// PickupSystem consumes dye pickups touched by an actor of the same color
// and bobs the remaining ones.
type PickupSystem struct {
	collector Collector
	physics   Raycaster
	scenes    Scenes
	status    *PlayerControllerSystem
}

func NewPickupSystem(collector Collector, physics Raycaster, scenes Scenes, status *PlayerControllerSystem) *PickupSystem {
	return &PickupSystem{collector: collector, physics: physics, scenes: scenes, status: status}
}

func (s *PickupSystem) FixedUpdate(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	collected := false
	for _, evt := range w.Events().Take(ecs.EventSensorBegin) {
		contact, ok := evt.Data.(ecs.CollisionEvent)
		if !ok {
			continue
		}
		player, pickup := contact.A, contact.B
		if !ecs.Has(w, player, component.PlayerTagComponent.Kind()) {
			player, pickup = pickup, player
		}
		if s.collect(w, player, pickup) {
			collected = true
		}
	}
	if collected && s.status != nil {
		s.status.UpdateAllStatus(w)
	}
}

func (s *PickupSystem) collect(w *ecs.World, player, pickup ecs.Entity) bool {
	if s.scenes != nil && s.scenes.ActiveScene() == common.SceneMainMenu {
		return false
	}
	if s.collector != nil && (!s.collector.IsReady() || s.collector.DidGameEnded()) {
		return false
	}
	dye, ok := ecs.Get(w, pickup, component.PickupComponent.Kind())
	if !ok {
		return false
	}
	info, ok := ecs.Get(w, player, component.ActorInfoComponent.Kind())
	if !ok || info.Color != dye.Color {
		return false
	}

	c := dye.Color
	if s.physics != nil {
		s.physics.Remove(pickup)
	}
	ecs.DestroyEntity(w, pickup)
	if s.collector != nil {
		s.collector.Collect(c)
	}
	return true
}

// Update moves pickups up and down around their spawn height.
func (s *PickupSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		if !pickup.Initialized {
			pickup.BaseY = t.Y
			pickup.Initialized = true
			if pickup.BobAmplitude == 0 {
				pickup.BobAmplitude = 0.08
			}
			if pickup.BobSpeed == 0 {
				pickup.BobSpeed = 4
			}
		}

		pickup.BobPhase += pickup.BobSpeed * dt
		t.Y = pickup.BaseY + math.Sin(pickup.BobPhase)*pickup.BobAmplitude
	})
}
