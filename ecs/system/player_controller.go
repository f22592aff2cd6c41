package system

import (
	"image/color"
	"math"

	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/jakecoffman/cp"
)

// Sound cues understood by the audio service.
const (
	CueLaser    = "laser"
	CueTeleport = "teleport"
)

const (
	stunDuration     = 1.0
	laserDisplayTime = 0.3
	explosionTime    = 0.7
	hitImpulse       = 20.0
)

// Registry is the player registry the controller reports to.
type Registry interface {
	IsReady() bool
	DidGameEnded() bool
	GetNextPlayer(binding component.InputBinding) (ecs.Entity, bool)
	GetCollectibleLeft(c component.ColorType) int
	GameOver(loss bool)
	ToColor(c component.ColorType) color.Color
}

// SoundPlayer plays one-shot effects. The controller works without one.
type SoundPlayer interface {
	Play(cue string)
}

// Scenes is the scene loader. LoadScene may defer the actual rebuild.
type Scenes interface {
	ActiveScene() string
	LoadScene(name string)
}

// Raycaster resolves hit-scan queries against the physics world.
type Raycaster interface {
	Raycast(origin, dir cp.Vector, mask uint) (RaycastHit, bool)
	Remove(e ecs.Entity)
}

// PlayerControllerSystem turns input events and per-tick state into actor
// movement, weapon and ability outcomes. Input handlers run synchronously;
// FixedUpdate drives velocity and Update advances the actor timers.
type PlayerControllerSystem struct {
	registry Registry
	physics  Raycaster
	scenes   Scenes
	sound    SoundPlayer

	// SpawnExplosion creates the explosion visual at a hit point.
	SpawnExplosion func(w *ecs.World, x, y float64) error
}

func NewPlayerControllerSystem(registry Registry, physics Raycaster, scenes Scenes, sound SoundPlayer) *PlayerControllerSystem {
	return &PlayerControllerSystem{
		registry:       registry,
		physics:        physics,
		scenes:         scenes,
		sound:          sound,
		SpawnExplosion: spawnExplosion,
	}
}

// CanPlay is the readiness/game-ended gate.
func (pc *PlayerControllerSystem) CanPlay() bool {
	return pc.registry != nil && pc.registry.IsReady() && !pc.registry.DidGameEnded()
}

// Activate derives the raycast mask from the actor's layer and fills its
// status display.
func (pc *PlayerControllerSystem) Activate(w *ecs.World, e ecs.Entity) {
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok {
		return
	}
	ignore := uint(1) << common.LayerCollectible
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		ignore |= layer.Bit()
	}
	actor.IgnoreMask = ^ignore

	if display, ok := ecs.Get(w, e, component.StatusDisplayComponent.Kind()); ok && display.Icon != nil && pc.registry != nil {
		if info, ok := ecs.Get(w, e, component.ActorInfoComponent.Kind()); ok {
			display.Icon.SetColor(pc.registry.ToColor(info.Color))
		}
	}
	pc.UpdateStatus(w, e)
}

// SetInfo replaces the actor configuration.
func (pc *PlayerControllerSystem) SetInfo(w *ecs.World, e ecs.Entity, info component.ActorInfo) {
	if err := ecs.Add(w, e, component.ActorInfoComponent.Kind(), &info); err != nil {
		panic("player controller: set info: " + err.Error())
	}
}

// Stun suppresses movement updates of e for one second. Re-stunning resets
// the countdown rather than extending it.
func (pc *PlayerControllerSystem) Stun(w *ecs.World, e ecs.Entity) {
	if actor, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
		actor.StunTimer = stunDuration
	}
}

// OnMove stores the normalized movement intent.
func (pc *PlayerControllerSystem) OnMove(w *ecs.World, e ecs.Entity, raw cp.Vector) {
	if actor, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
		actor.Move = common.NormalizeOrZero(raw)
	}
}

// OnReset reloads the active scene, whatever the gate says.
func (pc *PlayerControllerSystem) OnReset(w *ecs.World, e ecs.Entity, phase component.InputPhase) {
	if phase != component.PhasePerformed || pc.scenes == nil {
		return
	}
	pc.scenes.LoadScene(pc.scenes.ActiveScene())
}

// FixedUpdate applies the boost model to every actor.
func (pc *PlayerControllerSystem) FixedUpdate(w *ecs.World, dt float64) {
	canPlay := pc.CanPlay()
	ecs.ForEach3(w, component.ActorComponent.Kind(), component.ActorInfoComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, actor *component.Actor, info *component.ActorInfo, body *component.PhysicsBody) {
		if body.Body == nil {
			return
		}
		if !canPlay {
			body.Body.SetVelocityVector(cp.Vector{})
			return
		}
		if actor.Stunned() {
			// Velocity stays whatever it was, knockback included.
			return
		}

		velocity := boostVelocity(actor, info, dt)
		body.Body.SetVelocityVector(velocity)

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			if velocity.X < 0 {
				sprite.FlipX = true
			} else if velocity.X > 0 {
				sprite.FlipX = false
			}
		}
	})
}

// Update advances the frame timers of every actor.
func (pc *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, actor *component.Actor) {
		actor.BoostTimer += dt
		actor.StunTimer = math.Max(0, actor.StunTimer-dt)

		if actor.LaserTimer > 0 {
			actor.LaserTimer -= dt
			if actor.LaserTimer <= 0 {
				actor.LaserTimer = 0
				if line, ok := ecs.Get(w, e, component.LineRenderComponent.Kind()); ok {
					line.Visible = false
				}
			}
		}

		// Lower on screen draws on top.
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				sprite.Order = int(math.Round(t.Y * 1000))
			}
		}
	})
}

func (pc *PlayerControllerSystem) play(cue string) {
	if pc.sound != nil {
		pc.sound.Play(cue)
	}
}

func (pc *PlayerControllerSystem) activeScene() string {
	if pc.scenes == nil {
		return ""
	}
	return pc.scenes.ActiveScene()
}

func actorPosition(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil && !body.Static {
		return body.Body.Position(), true
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return cp.Vector{X: t.X, Y: t.Y}, true
	}
	return cp.Vector{}, false
}

func setActorPosition(w *ecs.World, e ecs.Entity, pos cp.Vector) {
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil && !body.Static {
		body.Body.SetPosition(pos)
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X = pos.X
		t.Y = pos.Y
	}
}
