package system

import (
	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/Xwilarg/WigglingHunt/ecs/entity"
	"github.com/jakecoffman/cp"
)

// OnFire shoots the laser along the actor's aim. A shot that hits nothing
// has no effect at all and does not start the reload.
func (pc *PlayerControllerSystem) OnFire(w *ecs.World, e ecs.Entity, phase component.InputPhase) {
	if phase != component.PhasePerformed || !pc.CanPlay() || pc.physics == nil {
		return
	}
	info, ok := ecs.Get(w, e, component.ActorInfoComponent.Kind())
	if !ok || !info.CanShoot {
		return
	}
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok || !actor.CanFire {
		return
	}
	origin, ok := actorPosition(w, e)
	if !ok {
		return
	}

	hit, ok := pc.physics.Raycast(origin, actor.Aim, actor.IgnoreMask)
	if !ok {
		return
	}

	pc.play(CueLaser)
	if shake, ok := ecs.Get(w, e, component.CameraShakeComponent.Kind()); ok {
		shake.Timer = info.ShakeTime
		shake.Amplitude = info.ShakeAmount
	}
	if line, ok := ecs.Get(w, e, component.LineRenderComponent.Kind()); ok {
		line.StartX, line.StartY = origin.X, origin.Y
		line.EndX, line.EndY = hit.Point.X, hit.Point.Y
		line.Visible = true
	}
	actor.LaserTimer = laserDisplayTime

	pc.resolveHit(w, actor.Aim, hit)

	actor.CanFire = false
	if err := ecs.Add(w, e, component.ReloadComponent.Kind(), &component.Reload{Remaining: info.LaserReloadTime}); err != nil {
		panic("player controller: add reload: " + err.Error())
	}
}

// resolveHit applies the laser's effect. A player collider stuns its actor.
// The effective target is the body owner when the collider rides a dynamic
// body, otherwise the collider itself. Destructibles are removed; anything
// else with a body is pushed along the aim.
func (pc *PlayerControllerSystem) resolveHit(w *ecs.World, aim cp.Vector, hit RaycastHit) {
	if ecs.Has(w, hit.Collider, component.PlayerTagComponent.Kind()) {
		victim := hit.Collider
		if hit.Body.Valid() {
			victim = hit.Body
		}
		pc.Stun(w, victim)
	}

	target := hit.Collider
	if hit.Body.Valid() {
		target = hit.Body
	}

	if ecs.Has(w, target, component.DestructibleTagComponent.Kind()) {
		destroyWithParts(w, pc.physics, target)
		if pc.SpawnExplosion != nil {
			if err := pc.SpawnExplosion(w, hit.Point.X, hit.Point.Y); err != nil {
				panic("player controller: spawn explosion: " + err.Error())
			}
		}
		return
	}

	if !hit.Body.Valid() {
		return
	}
	body, ok := ecs.Get(w, hit.Body, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil || body.Static {
		return
	}
	body.Body.ApplyImpulseAtWorldPoint(common.NormalizeOrZero(aim).Mult(hitImpulse), body.Body.Position())
}

// destroyWithParts removes e and every entity attached to it, directly or
// through another part.
func destroyWithParts(w *ecs.World, physics Raycaster, e ecs.Entity) {
	doomed := []ecs.Entity{e}
	seen := map[ecs.Entity]bool{e: true}
	for i := 0; i < len(doomed); i++ {
		parent := uint64(doomed[i])
		ecs.ForEach(w, component.AttachmentComponent.Kind(), func(child ecs.Entity, attach *component.Attachment) {
			if attach.Parent == parent && !seen[child] {
				seen[child] = true
				doomed = append(doomed, child)
			}
		})
	}
	for _, d := range doomed {
		if physics != nil {
			physics.Remove(d)
		}
		ecs.DestroyEntity(w, d)
	}
}

func spawnExplosion(w *ecs.World, x, y float64) error {
	e, err := entity.BuildEntity(w, "explosion.yaml")
	if err != nil {
		return err
	}
	if err := entity.SetEntityTransform(w, e, x, y, 0); err != nil {
		return err
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Remaining: explosionTime})
}
