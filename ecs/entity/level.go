package entity

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/Xwilarg/WigglingHunt/levels"
)

// LevelOptions filters and colors what a level spawns. Dye whose color is
// not in Colors is skipped; a nil Colors keeps every dye.
type LevelOptions struct {
	Colors []component.ColorType
	Tint   func(component.ColorType) color.Color
}

// LoadLevelToWorld creates the level bounds and every prop of lvl.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, opts LevelOptions) error {
	if lvl == nil {
		return fmt.Errorf("load level: level is nil")
	}

	boundsEntity := world.CreateEntity()
	if err := ecs.Add(world, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  lvl.Width,
		Height: lvl.Height,
	}); err != nil {
		return err
	}

	for _, ent := range lvl.Entities {
		kind := strings.ToLower(ent.Type)
		switch kind {
		case "dye":
			c, err := component.ParseColorType(ent.StringProp("color", ""))
			if err != nil {
				return fmt.Errorf("load level %s: dye at (%v, %v): %w", lvl.Name, ent.X, ent.Y, err)
			}
			if !inPlay(c, opts.Colors) {
				continue
			}
			var tint color.Color
			if opts.Tint != nil {
				tint = opts.Tint(c)
			}
			if _, err := NewDyeAt(world, c, tint, ent.X, ent.Y); err != nil {
				return err
			}
		case "wall", "rock", "crate":
			e, err := NewPropAt(world, kind+".yaml", ent.X, ent.Y, ent.Width, ent.Height)
			if err != nil {
				return err
			}
			if err := addParts(world, e, ent); err != nil {
				return err
			}
		default:
			log.Printf("level %s: unknown entity type %q", lvl.Name, ent.Type)
		}
	}

	return nil
}

// addParts attaches extra colliders to parent's body. They share the
// parent's sprite color.
func addParts(world *ecs.World, parent ecs.Entity, ent levels.Entity) error {
	var tint color.Color
	if sprite, ok := ecs.Get(world, parent, component.SpriteComponent.Kind()); ok {
		tint = sprite.Color
	}
	for _, part := range ent.Parts {
		e := world.CreateEntity()
		if err := SetEntityTransform(world, e, ent.X+part.X, ent.Y+part.Y, 0); err != nil {
			return err
		}
		if err := ecs.Add(world, e, component.AttachmentComponent.Kind(), &component.Attachment{
			Parent:  uint64(parent),
			OffsetX: part.X,
			OffsetY: part.Y,
		}); err != nil {
			return err
		}
		if err := ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:  part.Width,
			Height: part.Height,
		}); err != nil {
			return err
		}
		if err := ecs.Add(world, e, component.SpriteComponent.Kind(), &component.Sprite{
			Width:  part.Width,
			Height: part.Height,
			Color:  tint,
		}); err != nil {
			return err
		}
	}
	return nil
}

func inPlay(c component.ColorType, colors []component.ColorType) bool {
	if colors == nil {
		return true
	}
	for _, other := range colors {
		if other == c {
			return true
		}
	}
	return false
}
