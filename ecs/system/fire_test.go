package system

import (
	"math"
	"testing"

	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/jakecoffman/cp"
)

func TestFireStunsOtherPlayerAndReloads(t *testing.T) {
	h := newHarness(t)
	a := h.actor(0, 2, 5)
	b := h.actor(1, 6, 5)
	h.pc.OnAim(h.w, a, cp.Vector{X: 1}, component.SchemeGamepad)

	h.pc.OnFire(h.w, a, component.PhasePerformed)

	if st := h.actorState(b).StunTimer; st != stunDuration {
		t.Fatalf("B StunTimer = %v, want %v", st, stunDuration)
	}
	if st := h.actorState(a).StunTimer; st != 0 {
		t.Fatalf("shooter stunned itself")
	}
	if h.actorState(a).CanFire {
		t.Fatalf("CanFire still true after a hit")
	}
	if n := h.sound.count(CueLaser); n != 1 {
		t.Fatalf("laser cue played %d times", n)
	}

	line, _ := ecs.Get(h.w, a, component.LineRenderComponent.Kind())
	if !line.Visible || !near(line.StartX, 2) || !near(line.EndX, 5.6) || !near(line.EndY, 5) {
		t.Fatalf("beam = %+v, want visible from (2, 5) to (5.6, 5)", line)
	}
	shake, _ := ecs.Get(h.w, a, component.CameraShakeComponent.Kind())
	if shake.Timer != testInfo().ShakeTime || shake.Amplitude != testInfo().ShakeAmount {
		t.Fatalf("shake = %+v", shake)
	}

	// A second shot while reloading does nothing.
	h.pc.OnFire(h.w, a, component.PhasePerformed)
	if n := h.sound.count(CueLaser); n != 1 {
		t.Fatalf("fired during reload")
	}

	reload := NewReloadSystem()
	for i := 0; i < 4; i++ {
		reload.Update(h.w, 0.1)
	}
	if h.actorState(a).CanFire {
		t.Fatalf("re-armed after 0.4s of a 0.5s reload")
	}
	for i := 0; i < 2; i++ {
		reload.Update(h.w, 0.1)
	}
	if !h.actorState(a).CanFire {
		t.Fatalf("not re-armed after 0.6s")
	}
	if ecs.Has(h.w, a, component.ReloadComponent.Kind()) {
		t.Fatalf("reload component left behind")
	}

	h.pc.OnFire(h.w, a, component.PhasePerformed)
	if n := h.sound.count(CueLaser); n != 2 {
		t.Fatalf("could not fire after reload")
	}
}

func TestBeamHidesAfterDisplayTime(t *testing.T) {
	h := newHarness(t)
	a := h.actor(0, 2, 5)
	h.prop(6, 5, true)
	h.pc.OnAim(h.w, a, cp.Vector{X: 1}, component.SchemeGamepad)
	h.pc.OnFire(h.w, a, component.PhasePerformed)

	line, _ := ecs.Get(h.w, a, component.LineRenderComponent.Kind())
	h.pc.Update(h.w, 0.25)
	if !line.Visible {
		t.Fatalf("beam hidden after 0.25s")
	}
	h.pc.Update(h.w, 0.1)
	if line.Visible {
		t.Fatalf("beam still visible after 0.35s")
	}
	if h.actorState(a).LaserTimer != 0 {
		t.Fatalf("LaserTimer = %v, want 0", h.actorState(a).LaserTimer)
	}
}

func TestFireMissHasNoEffect(t *testing.T) {
	cases := []struct {
		name string
		aim  cp.Vector
	}{
		{"empty direction", cp.Vector{X: -1}},
		{"zero aim", cp.Vector{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			a := h.actor(0, 2, 5)
			h.actor(1, 6, 5)
			h.actorState(a).Aim = c.aim

			h.pc.OnFire(h.w, a, component.PhasePerformed)

			if !h.actorState(a).CanFire {
				t.Fatalf("miss started the reload")
			}
			if ecs.Has(h.w, a, component.ReloadComponent.Kind()) {
				t.Fatalf("miss attached a reload")
			}
			if len(h.sound.cues) != 0 {
				t.Fatalf("miss played %v", h.sound.cues)
			}
			if line, _ := ecs.Get(h.w, a, component.LineRenderComponent.Kind()); line.Visible {
				t.Fatalf("miss showed the beam")
			}
		})
	}
}

func TestFireGates(t *testing.T) {
	cases := []struct {
		name     string
		phase    component.InputPhase
		ready    bool
		ended    bool
		canShoot bool
	}{
		{"canceled phase", component.PhaseCanceled, true, false, true},
		{"not ready", component.PhasePerformed, false, false, true},
		{"game ended", component.PhasePerformed, true, true, true},
		{"cannot shoot", component.PhasePerformed, true, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			a := h.actor(0, 2, 5)
			b := h.actor(1, 6, 5)
			info, _ := ecs.Get(h.w, a, component.ActorInfoComponent.Kind())
			info.CanShoot = c.canShoot
			h.registry.ready, h.registry.ended = c.ready, c.ended
			h.actorState(a).Aim = cp.Vector{X: 1}

			h.pc.OnFire(h.w, a, c.phase)

			if h.actorState(b).Stunned() || !h.actorState(a).CanFire || len(h.sound.cues) != 0 {
				t.Fatalf("gated shot had an effect")
			}
		})
	}
}

func TestFireIgnoresCollectibles(t *testing.T) {
	h := newHarness(t)
	a := h.actor(0, 2, 5)
	b := h.actor(1, 8, 5)

	dye := h.w.CreateEntity()
	mustAdd(t, h.w, dye, component.TransformComponent.Kind(), &component.Transform{X: 5, Y: 5})
	mustAdd(t, h.w, dye, component.PickupComponent.Kind(), &component.Pickup{Color: component.ColorBlue})
	mustAdd(t, h.w, dye, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Layer: 1})
	mustAdd(t, h.w, dye, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.3, Static: true, Sensor: true})
	h.physics.Sync(h.w)

	h.actorState(a).Aim = cp.Vector{X: 1}
	h.pc.OnFire(h.w, a, component.PhasePerformed)

	if !h.actorState(b).Stunned() {
		t.Fatalf("laser stopped at the collectible")
	}
	if !h.w.IsAlive(dye) {
		t.Fatalf("collectible destroyed")
	}
}

func TestFireDestroysDestructible(t *testing.T) {
	h := newHarness(t)
	a := h.actor(0, 2, 5)
	rock := h.prop(6, 5, true)
	mustAdd(t, h.w, rock, component.DestructibleTagComponent.Kind(), &component.DestructibleTag{})

	var explosions []cp.Vector
	h.pc.SpawnExplosion = func(w *ecs.World, x, y float64) error {
		explosions = append(explosions, cp.Vector{X: x, Y: y})
		return spawnExplosion(w, x, y)
	}

	h.actorState(a).Aim = cp.Vector{X: 2}
	h.pc.OnFire(h.w, a, component.PhasePerformed)

	if h.w.IsAlive(rock) {
		t.Fatalf("destructible survived")
	}
	if len(explosions) != 1 || !nearVec(explosions[0], cp.Vector{X: 5.5, Y: 5}) {
		t.Fatalf("explosions = %v, want one at (5.5, 5)", explosions)
	}
	boom, ok := h.w.First(component.ExplosionComponent.Kind())
	if !ok {
		t.Fatalf("no explosion entity")
	}
	ttl, ok := ecs.Get(h.w, boom, component.TTLComponent.Kind())
	if !ok || ttl.Remaining != explosionTime {
		t.Fatalf("explosion ttl = %+v, want %v", ttl, explosionTime)
	}
	if got := h.position(boom); !nearVec(got, cp.Vector{X: 5.5, Y: 5}) {
		t.Fatalf("explosion at %v", got)
	}

	// The collider is gone from the space too.
	if _, hit := h.physics.Raycast(cp.Vector{X: 2, Y: 5}, cp.Vector{X: 1}, h.actorState(a).IgnoreMask); hit {
		t.Fatalf("raycast still hits the destroyed rock")
	}

	ttlSystem := NewTTLSystem()
	for i := 0; i < 8; i++ {
		ttlSystem.Update(h.w, 0.1)
	}
	if h.w.IsAlive(boom) {
		t.Fatalf("explosion outlived its ttl")
	}
}

func TestFirePushesDynamicBody(t *testing.T) {
	h := newHarness(t)
	a := h.actor(0, 2, 5)
	crate := h.prop(6, 5, false)

	h.actorState(a).Aim = cp.Vector{X: 3, Y: 0}
	h.pc.OnFire(h.w, a, component.PhasePerformed)

	// Impulse 20 on a mass of 2.
	v := h.body(crate).Velocity()
	if !near(v.X, 10) || !near(v.Y, 0) {
		t.Fatalf("crate velocity = %v, want (10, 0)", v)
	}
	if !h.w.IsAlive(crate) {
		t.Fatalf("non-destructible destroyed")
	}
}

func TestFireStaticObstacleOnlyBlocks(t *testing.T) {
	h := newHarness(t)
	a := h.actor(0, 2, 5)
	wall := h.prop(4, 5, true)
	b := h.actor(1, 8, 5)

	h.actorState(a).Aim = cp.Vector{X: 1}
	h.pc.OnFire(h.w, a, component.PhasePerformed)

	if !h.w.IsAlive(wall) {
		t.Fatalf("wall destroyed")
	}
	if h.actorState(b).Stunned() {
		t.Fatalf("laser passed through the wall")
	}
	if h.actorState(a).CanFire {
		t.Fatalf("hitting a wall did not start the reload")
	}
}

func TestFireOnAttachedColliderPushesParentBody(t *testing.T) {
	h := newHarness(t)
	a := h.actor(0, 2, 5)
	crate := h.prop(8, 5, false)

	part := h.w.CreateEntity()
	mustAdd(t, h.w, part, component.TransformComponent.Kind(), &component.Transform{X: 7, Y: 5})
	mustAdd(t, h.w, part, component.AttachmentComponent.Kind(), &component.Attachment{Parent: uint64(crate), OffsetX: -1})
	mustAdd(t, h.w, part, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 0.4, Height: 0.8})
	h.physics.Sync(h.w)

	hit, ok := h.physics.Raycast(cp.Vector{X: 2, Y: 5}, cp.Vector{X: 1}, h.actorState(a).IgnoreMask)
	if !ok || hit.Collider != part || hit.Body != crate {
		t.Fatalf("raycast = %+v, %v; want collider %v on body %v", hit, ok, part, crate)
	}

	h.actorState(a).Aim = cp.Vector{X: 1}
	h.pc.OnFire(h.w, a, component.PhasePerformed)

	if v := h.body(crate).Velocity(); !near(v.X, 10) {
		t.Fatalf("parent velocity = %v, want x 10", v)
	}
}

func TestFireDestroysDestructibleWithParts(t *testing.T) {
	h := newHarness(t)
	a := h.actor(0, 2, 5)
	crate := h.prop(7, 5, false)
	mustAdd(t, h.w, crate, component.DestructibleTagComponent.Kind(), &component.DestructibleTag{})

	part := h.w.CreateEntity()
	mustAdd(t, h.w, part, component.TransformComponent.Kind(), &component.Transform{X: 6, Y: 5})
	mustAdd(t, h.w, part, component.SpriteComponent.Kind(), &component.Sprite{Width: 0.4, Height: 0.8})
	mustAdd(t, h.w, part, component.AttachmentComponent.Kind(), &component.Attachment{Parent: uint64(crate), OffsetX: -1})
	mustAdd(t, h.w, part, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 0.4, Height: 0.8})
	tip := h.w.CreateEntity()
	mustAdd(t, h.w, tip, component.TransformComponent.Kind(), &component.Transform{X: 5.5, Y: 5})
	mustAdd(t, h.w, tip, component.AttachmentComponent.Kind(), &component.Attachment{Parent: uint64(part), OffsetX: -0.5})
	h.physics.Sync(h.w)

	h.pc.SpawnExplosion = func(*ecs.World, float64, float64) error { return nil }
	h.actorState(a).Aim = cp.Vector{X: 1}
	h.pc.OnFire(h.w, a, component.PhasePerformed)

	for _, c := range []struct {
		name string
		e    ecs.Entity
	}{{"crate", crate}, {"part", part}, {"nested part", tip}} {
		if h.w.IsAlive(c.e) {
			t.Fatalf("%s of the destroyed destructible still alive", c.name)
		}
	}
	if n := len(h.w.Query(component.SpriteComponent.Kind())); n != 1 {
		t.Fatalf("%d sprites left, want only the actor's", n)
	}
	if _, hit := h.physics.Raycast(cp.Vector{X: 2, Y: 5}, cp.Vector{X: 1}, h.actorState(a).IgnoreMask); hit {
		t.Fatalf("raycast still hits a removed part")
	}
}

func TestFireOnAttachedPlayerColliderStunsOwner(t *testing.T) {
	h := newHarness(t)
	a := h.actor(0, 2, 5)
	b := h.actor(1, 9, 5)

	// A shield collider riding B's body, tagged as part of the player.
	shield := h.w.CreateEntity()
	mustAdd(t, h.w, shield, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, h.w, shield, component.TransformComponent.Kind(), &component.Transform{X: 8, Y: 5})
	mustAdd(t, h.w, shield, component.AttachmentComponent.Kind(), &component.Attachment{Parent: uint64(b), OffsetX: -1})
	mustAdd(t, h.w, shield, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Layer: 9})
	mustAdd(t, h.w, shield, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 0.2, Height: 1})
	h.physics.Sync(h.w)

	h.actorState(a).Aim = cp.Vector{X: 1}
	h.pc.OnFire(h.w, a, component.PhasePerformed)

	if !h.actorState(b).Stunned() {
		t.Fatalf("owner of the hit collider not stunned")
	}
	v := h.body(b).Velocity()
	if math.Abs(v.X-20) > 1e-6 {
		t.Fatalf("owner velocity = %v, want knockback of 20", v)
	}
}
