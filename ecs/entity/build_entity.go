package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/Xwilarg/WigglingHunt/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":       addPlayerTag,
	"destructible_tag": addDestructibleTag,
	"wall_tag":         addWallTag,
	"actor":            addActor,
	"actor_info":       addActorInfo,
	"transform":        addTransform,
	"sprite":           addSprite,
	"line_render":      addLineRender,
	"camera":           addCamera,
	"camera_shake":     addCameraShake,
	"pickup":           addPickup,
	"explosion":        addExplosion,
	"ttl":              addTTL,
	"collision_layer":  addCollisionLayer,
	"physics_body":     addPhysicsBody,
}

var componentBuildOrder = []string{
	"player_tag",
	"destructible_tag",
	"wall_tag",
	"actor",
	"actor_info",
	"transform",
	"sprite",
	"line_render",
	"camera",
	"camera_shake",
	"pickup",
	"explosion",
	"ttl",
	"collision_layer",
	"physics_body",
}

// BuildEntity creates an entity from the components listed in a prefab.
// Components are added in a fixed order; unknown component names fail the
// build and leave nothing behind.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addDestructibleTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.DestructibleTagComponent.Kind(), &component.DestructibleTag{})
}

func addWallTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{})
}

func addActor(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ActorComponent.Kind(), component.NewActor())
}

type actorInfoSpec = prefabs.ActorInfoComponentSpec

func addActorInfo(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[actorInfoSpec](raw)
	if err != nil {
		return fmt.Errorf("decode actor_info spec: %w", err)
	}
	info, err := actorInfoFromSpec(spec)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.ActorInfoComponent.Kind(), &info)
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	shape := component.SpriteBox
	switch strings.ToLower(spec.Shape) {
	case "", "box":
	case "circle":
		shape = component.SpriteCircle
	default:
		return fmt.Errorf("unknown sprite shape %q", spec.Shape)
	}
	sprite := &component.Sprite{Shape: shape, Width: spec.Width, Height: spec.Height}
	if spec.Color != nil {
		sprite.Color = spec.Color.Color
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), sprite)
}

type lineRenderSpec = prefabs.LineRenderComponentSpec

func addLineRender(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[lineRenderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode line_render spec: %w", err)
	}
	line := &component.LineRender{Width: spec.Width}
	if line.Width <= 0 {
		line.Width = 1
	}
	if spec.Color != nil {
		line.Color = spec.Color.Color
	}
	return ecs.Add(w, e, component.LineRenderComponent.Kind(), line)
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom})
}

func addCameraShake(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraShakeComponent.Kind(), &component.CameraShake{})
}

type pickupSpec = prefabs.PickupComponentSpec

func addPickup(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[pickupSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pickup spec: %w", err)
	}
	c, err := component.ParseColorType(spec.Color)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
		Color:        c,
		BobAmplitude: spec.BobAmplitude,
		BobSpeed:     spec.BobSpeed,
	})
}

type explosionSpec = prefabs.ExplosionComponentSpec

func addExplosion(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[explosionSpec](raw)
	if err != nil {
		return fmt.Errorf("decode explosion spec: %w", err)
	}
	explosion := &component.Explosion{Radius: spec.Radius, Duration: spec.Duration}
	if spec.Color != nil {
		explosion.Color = spec.Color.Color
	}
	return ecs.Add(w, e, component.ExplosionComponent.Kind(), explosion)
}

type ttlSpec = prefabs.TTLComponentSpec

func addTTL(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[ttlSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ttl spec: %w", err)
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Remaining: spec.Seconds})
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision_layer spec: %w", err)
	}
	if spec.Layer < 0 || spec.Layer > 31 {
		return fmt.Errorf("collision layer %d out of range", spec.Layer)
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Layer: spec.Layer})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics_body spec: %w", err)
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:      spec.Width,
		Height:     spec.Height,
		Radius:     spec.Radius,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		LinearDrag: spec.LinearDrag,
		Static:     spec.Static,
		Sensor:     spec.Sensor,
	})
}
