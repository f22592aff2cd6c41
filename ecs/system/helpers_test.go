package system

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/curve"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/jakecoffman/cp"
)

type fakeRegistry struct {
	ready     bool
	ended     bool
	next      map[int]ecs.Entity
	left      map[component.ColorType]int
	gameOvers []bool
	collected []component.ColorType
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		ready: true,
		next:  make(map[int]ecs.Entity),
		left:  make(map[component.ColorType]int),
	}
}

func (r *fakeRegistry) IsReady() bool      { return r.ready }
func (r *fakeRegistry) DidGameEnded() bool { return r.ended }

func (r *fakeRegistry) GetNextPlayer(b component.InputBinding) (ecs.Entity, bool) {
	e, ok := r.next[b.Index]
	return e, ok
}

func (r *fakeRegistry) GetCollectibleLeft(c component.ColorType) int { return r.left[c] }

func (r *fakeRegistry) GameOver(loss bool) {
	r.gameOvers = append(r.gameOvers, loss)
	r.ended = true
}

func (r *fakeRegistry) ToColor(c component.ColorType) color.Color {
	return color.RGBA{R: uint8(c) * 10, A: 255}
}

func (r *fakeRegistry) Collect(c component.ColorType) int {
	r.collected = append(r.collected, c)
	if r.left[c] > 0 {
		r.left[c]--
	}
	return r.left[c]
}

type fakeScenes struct {
	active string
	loads  []string
}

func (s *fakeScenes) ActiveScene() string   { return s.active }
func (s *fakeScenes) LoadScene(name string) { s.loads = append(s.loads, name) }

type fakeSound struct {
	cues []string
}

func (s *fakeSound) Play(cue string) { s.cues = append(s.cues, cue) }

func (s *fakeSound) count(cue string) int {
	n := 0
	for _, c := range s.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type fakeLabel struct {
	text   string
	writes int
}

func (l *fakeLabel) SetText(text string) {
	l.text = text
	l.writes++
}

type fakeIcon struct {
	c color.Color
}

func (i *fakeIcon) SetColor(c color.Color) { i.c = c }

// harness wires a controller to a real physics space and fake collaborators.
type harness struct {
	t        *testing.T
	w        *ecs.World
	physics  *PhysicsSystem
	registry *fakeRegistry
	scenes   *fakeScenes
	sound    *fakeSound
	pc       *PlayerControllerSystem
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:        t,
		w:        ecs.NewWorld(),
		physics:  NewPhysicsSystem(),
		registry: newFakeRegistry(),
		scenes:   &fakeScenes{active: common.SceneArena},
		sound:    &fakeSound{},
	}
	h.pc = NewPlayerControllerSystem(h.registry, h.physics, h.scenes, h.sound)
	return h
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func testInfo() component.ActorInfo {
	return component.ActorInfo{
		Color:           component.ColorRed,
		Speed:           250,
		DeviationLimit:  0.5,
		TimeBeforeBoost: 2,
		Booster:         1.5,
		BoostCurve:      curve.Constant(0),
		ShakeAmount:     0.2,
		ShakeTime:       0.5,
		LaserReloadTime: 0.5,
		CanShoot:        true,
	}
}

// actor creates and activates a player actor on its own layer.
func (h *harness) actor(index int, x, y float64) ecs.Entity {
	h.t.Helper()
	w := h.w
	e := w.CreateEntity()
	info := testInfo()
	mustAdd(h.t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(h.t, w, e, component.ActorComponent.Kind(), component.NewActor())
	mustAdd(h.t, w, e, component.ActorInfoComponent.Kind(), &info)
	mustAdd(h.t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(h.t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Shape: component.SpriteCircle, Width: 0.8, Height: 0.8})
	mustAdd(h.t, w, e, component.LineRenderComponent.Kind(), &component.LineRender{Width: 2})
	mustAdd(h.t, w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: 1, Viewport: image.Rect(0, 0, common.BaseWidth, common.BaseHeight)})
	mustAdd(h.t, w, e, component.CameraShakeComponent.Kind(), &component.CameraShake{})
	mustAdd(h.t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.4, Mass: 1})
	mustAdd(h.t, w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Layer: common.LayerPlayerBase + index})
	mustAdd(h.t, w, e, component.InputBindingComponent.Kind(), &component.InputBinding{Index: index})
	h.physics.Sync(w)
	h.pc.Activate(w, e)
	return e
}

// prop creates a box collider. Dynamic props get mass 2.
func (h *harness) prop(x, y float64, static bool) ecs.Entity {
	h.t.Helper()
	e := h.w.CreateEntity()
	body := &component.PhysicsBody{Width: 1, Height: 1, Static: static}
	if !static {
		body.Mass = 2
	}
	mustAdd(h.t, h.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(h.t, h.w, e, component.PhysicsBodyComponent.Kind(), body)
	h.physics.Sync(h.w)
	return e
}

func (h *harness) actorState(e ecs.Entity) *component.Actor {
	h.t.Helper()
	a, ok := ecs.Get(h.w, e, component.ActorComponent.Kind())
	if !ok {
		h.t.Fatalf("entity %v has no actor", e)
	}
	return a
}

func (h *harness) body(e ecs.Entity) *cp.Body {
	h.t.Helper()
	b, ok := ecs.Get(h.w, e, component.PhysicsBodyComponent.Kind())
	if !ok || b.Body == nil {
		h.t.Fatalf("entity %v has no body", e)
	}
	return b.Body
}

func (h *harness) position(e ecs.Entity) cp.Vector {
	h.t.Helper()
	tr, ok := ecs.Get(h.w, e, component.TransformComponent.Kind())
	if !ok {
		h.t.Fatalf("entity %v has no transform", e)
	}
	return cp.Vector{X: tr.X, Y: tr.Y}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func nearVec(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}
