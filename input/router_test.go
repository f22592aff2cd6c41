package input

import (
	"testing"

	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/jakecoffman/cp"
)

type call struct {
	name   string
	entity ecs.Entity
	phase  component.InputPhase
	vec    cp.Vector
	scheme component.InputScheme
}

type recorder struct {
	calls []call
}

func (r *recorder) OnMove(w *ecs.World, e ecs.Entity, raw cp.Vector) {
	r.calls = append(r.calls, call{name: "move", entity: e, vec: raw})
}

func (r *recorder) OnAim(w *ecs.World, e ecs.Entity, raw cp.Vector, scheme component.InputScheme) {
	r.calls = append(r.calls, call{name: "aim", entity: e, vec: raw, scheme: scheme})
}

func (r *recorder) OnFire(w *ecs.World, e ecs.Entity, phase component.InputPhase) {
	r.calls = append(r.calls, call{name: "fire", entity: e, phase: phase})
}

func (r *recorder) OnTeleport(w *ecs.World, e ecs.Entity, phase component.InputPhase) {
	r.calls = append(r.calls, call{name: "teleport", entity: e, phase: phase})
}

func (r *recorder) OnReset(w *ecs.World, e ecs.Entity, phase component.InputPhase) {
	r.calls = append(r.calls, call{name: "reset", entity: e, phase: phase})
}

func (r *recorder) phases(name string) []component.InputPhase {
	var out []component.InputPhase
	for _, c := range r.calls {
		if c.name == name {
			out = append(out, c.phase)
		}
	}
	return out
}

func setup() (*ecs.World, ecs.Entity, *recorder, *Router) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	rec := &recorder{}
	r := NewRouter(rec, func(b component.InputBinding) (ecs.Entity, bool) {
		if b.Index == 0 {
			return e, true
		}
		return 0, false
	})
	return w, e, rec, r
}

func TestDispatchMoveAndAim(t *testing.T) {
	w, e, rec, r := setup()
	r.Dispatch(w, []Frame{{
		Binding: component.InputBinding{Index: 0, Scheme: component.SchemeGamepad},
		Move:    cp.Vector{X: 1},
		Aim:     cp.Vector{X: 0.5, Y: -0.5},
	}})

	if len(rec.calls) != 2 {
		t.Fatalf("calls = %+v, want move and aim", rec.calls)
	}
	if rec.calls[0].name != "move" || rec.calls[0].entity != e || rec.calls[0].vec != (cp.Vector{X: 1}) {
		t.Fatalf("move call = %+v", rec.calls[0])
	}
	if rec.calls[1].name != "aim" || rec.calls[1].scheme != component.SchemeGamepad || rec.calls[1].vec != (cp.Vector{X: 0.5, Y: -0.5}) {
		t.Fatalf("aim call = %+v", rec.calls[1])
	}
}

func TestDispatchButtonPhases(t *testing.T) {
	w, _, rec, r := setup()
	held := []bool{false, true, true, false, false}
	for _, h := range held {
		r.Dispatch(w, []Frame{{Fire: h}})
	}

	got := rec.phases("fire")
	want := []component.InputPhase{component.PhaseStarted, component.PhasePerformed, component.PhaseCanceled}
	if len(got) != len(want) {
		t.Fatalf("fire phases = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fire phases = %v, want %v", got, want)
		}
	}
	if len(rec.phases("teleport")) != 0 || len(rec.phases("reset")) != 0 {
		t.Fatalf("unexpected teleport or reset calls: %+v", rec.calls)
	}
}

func TestDispatchUnboundFrameTracksState(t *testing.T) {
	w, _, rec, r := setup()
	r.Dispatch(w, []Frame{{Binding: component.InputBinding{Index: 3}, Teleport: true}})
	if len(rec.calls) != 0 {
		t.Fatalf("unbound frame dispatched: %+v", rec.calls)
	}
	if !r.prev[3].teleport {
		t.Fatalf("held state not recorded for unbound frame")
	}
}

func TestDispatchSkipsDeadEntity(t *testing.T) {
	w, e, rec, r := setup()
	w.DestroyEntity(e)
	r.Dispatch(w, []Frame{{Fire: true}})
	if len(rec.calls) != 0 {
		t.Fatalf("dead entity received %+v", rec.calls)
	}
}

func TestResetSuppressesHeldButtons(t *testing.T) {
	w, _, rec, r := setup()
	frames := []Frame{{Reset: true}}
	r.Reset(frames)
	r.Dispatch(w, frames)
	if len(rec.phases("reset")) != 0 {
		t.Fatalf("held reset fired after Reset: %v", rec.phases("reset"))
	}

	r.Forget(component.InputBinding{Index: 0})
	r.Dispatch(w, frames)
	if got := rec.phases("reset"); len(got) != 2 || got[1] != component.PhasePerformed {
		t.Fatalf("reset phases = %v after Forget", got)
	}
}
