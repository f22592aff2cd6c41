package entity

import (
	"fmt"
	"image/color"

	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/curve"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/Xwilarg/WigglingHunt/prefabs"
)

const actorPrefab = "actor.yaml"

// ActorOptions places one player's actor. Tint colors its sprite.
type ActorOptions struct {
	Binding component.InputBinding
	Color   component.ColorType
	Tint    color.Color
	X, Y    float64
}

// NewActor builds the actor prefab for a joined player. Each actor gets its
// own collision layer so its laser can ignore it.
func NewActor(w *ecs.World, opts ActorOptions) (ecs.Entity, error) {
	e, err := BuildEntity(w, actorPrefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, opts.X, opts.Y, 0); err != nil {
		return 0, fmt.Errorf("actor: override transform: %w", err)
	}

	binding := opts.Binding
	if err := ecs.Add(w, e, component.InputBindingComponent.Kind(), &binding); err != nil {
		return 0, fmt.Errorf("actor: add input binding: %w", err)
	}
	layer := common.LayerPlayerBase + binding.Index
	if layer > 31 {
		return 0, fmt.Errorf("actor: no collision layer left for player %d", binding.Index)
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Layer: layer}); err != nil {
		return 0, fmt.Errorf("actor: add collision layer: %w", err)
	}

	if info, ok := ecs.Get(w, e, component.ActorInfoComponent.Kind()); ok {
		info.Color = opts.Color
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && opts.Tint != nil {
		sprite.Color = opts.Tint
	}
	return e, nil
}

// LoadActorInfo reads the actor configuration from the actor prefab. The
// color is the prefab default; callers override it per player.
func LoadActorInfo() (component.ActorInfo, error) {
	spec, err := prefabs.LoadEntityBuildSpec(actorPrefab)
	if err != nil {
		return component.ActorInfo{}, err
	}
	raw, ok := spec.Components["actor_info"]
	if !ok {
		return component.ActorInfo{}, fmt.Errorf("actor: %s has no actor_info", actorPrefab)
	}
	infoSpec, err := prefabs.DecodeComponentSpec[actorInfoSpec](raw)
	if err != nil {
		return component.ActorInfo{}, fmt.Errorf("actor: decode actor_info: %w", err)
	}
	return actorInfoFromSpec(infoSpec)
}

func actorInfoFromSpec(spec actorInfoSpec) (component.ActorInfo, error) {
	info := component.ActorInfo{
		Speed:           spec.Speed,
		DeviationLimit:  spec.DeviationLimit,
		TimeBeforeBoost: spec.TimeBeforeBoost,
		Booster:         spec.Booster,
		ShakeAmount:     spec.ShakeAmount,
		ShakeTime:       spec.ShakeTime,
		LaserReloadTime: spec.LaserReloadTime,
		CanShoot:        true,
	}
	if spec.CanShoot != nil {
		info.CanShoot = *spec.CanShoot
	}
	if spec.Color != "" {
		c, err := component.ParseColorType(spec.Color)
		if err != nil {
			return component.ActorInfo{}, err
		}
		info.Color = c
	}
	boost, err := boostCurve(spec.BoostCurve)
	if err != nil {
		return component.ActorInfo{}, err
	}
	info.BoostCurve = boost
	return info, nil
}

func boostCurve(spec prefabs.BoostCurveSpec) (curve.Curve, error) {
	switch {
	case spec.Script != "":
		src, err := prefabs.LoadScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("boost curve: load %s: %w", spec.Script, err)
		}
		return curve.NewScript(spec.Script, src)
	case len(spec.Keyframes) > 0:
		points := make([]curve.Keyframe, 0, len(spec.Keyframes))
		for _, k := range spec.Keyframes {
			points = append(points, curve.Keyframe{Time: k.Time, Value: k.Value})
		}
		return curve.NewKeyframes(points...)
	case spec.Constant != nil:
		return curve.Constant(*spec.Constant), nil
	default:
		return curve.Constant(0), nil
	}
}
