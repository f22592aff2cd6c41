package entity

import (
	"fmt"
	"image/color"

	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
)

// NewPropAt builds a level prop prefab centered on (x, y) with the given
// size. A zero size keeps the prefab's.
func NewPropAt(w *ecs.World, prefab string, x, y, width, height float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		return 0, fmt.Errorf("prop: override transform: %w", err)
	}
	if width <= 0 || height <= 0 {
		return e, nil
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Width, sprite.Height = width, height
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Radius == 0 {
		body.Width, body.Height = width, height
	}
	return e, nil
}

// NewDyeAt builds a collectible of color c.
func NewDyeAt(w *ecs.World, c component.ColorType, tint color.Color, x, y float64) (ecs.Entity, error) {
	e, err := NewPropAt(w, "dye.yaml", x, y, 0, 0)
	if err != nil {
		return 0, err
	}
	if pickup, ok := ecs.Get(w, e, component.PickupComponent.Kind()); ok {
		pickup.Color = c
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && tint != nil {
		sprite.Color = tint
	}
	return e, nil
}
