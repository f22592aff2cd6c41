package manager

import (
	"testing"

	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
)

func TestJoinAssignsColorsInOrder(t *testing.T) {
	m := NewPlayerManager(2)

	kb, kbColor, joined := m.Join(component.SchemeKeyboardMouse, 0)
	if !joined || kb.Index != 0 || kbColor != component.ColorRed {
		t.Fatalf("first join = %+v %v %v", kb, kbColor, joined)
	}
	if m.IsReady() {
		t.Fatalf("ready with one of two players")
	}

	if _, _, joined := m.Join(component.SchemeKeyboardMouse, 3); joined {
		t.Fatalf("keyboard joined twice")
	}

	pad, padColor, joined := m.Join(component.SchemeGamepad, 1)
	if !joined || pad.Index != 1 || padColor != component.ColorBlue {
		t.Fatalf("second join = %+v %v %v", pad, padColor, joined)
	}
	if !m.IsReady() {
		t.Fatalf("not ready with two players")
	}
}

func TestJoinAfterLeaveKeepsIndicesUnique(t *testing.T) {
	m := NewPlayerManager(1)
	a, _, _ := m.Join(component.SchemeGamepad, 0)
	b, _, _ := m.Join(component.SchemeGamepad, 1)
	m.Leave(a)

	c, color, joined := m.Join(component.SchemeGamepad, 2)
	if !joined {
		t.Fatalf("join after leave failed")
	}
	if c.Index == b.Index {
		t.Fatalf("index %d reused", c.Index)
	}
	if color != component.ColorRed {
		t.Fatalf("freed color not reused: got %v", color)
	}
}

func TestGetNextPlayerRotates(t *testing.T) {
	w := ecs.NewWorld()
	m := NewPlayerManager(3)

	var bindings []component.InputBinding
	var entities []ecs.Entity
	for i := 0; i < 3; i++ {
		b, _, _ := m.Join(component.SchemeGamepad, i)
		e := w.CreateEntity()
		m.Bind(b, e)
		bindings = append(bindings, b)
		entities = append(entities, e)
	}

	for i, b := range bindings {
		got, ok := m.GetNextPlayer(b)
		want := entities[(i+1)%len(entities)]
		if !ok || got != want {
			t.Fatalf("next of %d = %v, %v; want %v", i, got, ok, want)
		}
	}

	if _, ok := m.GetNextPlayer(component.InputBinding{Index: 42}); ok {
		t.Fatalf("unknown binding has a next player")
	}
}

func TestGetNextPlayerAloneReturnsSelf(t *testing.T) {
	w := ecs.NewWorld()
	m := NewPlayerManager(1)
	b, _, _ := m.Join(component.SchemeKeyboardMouse, 0)
	e := w.CreateEntity()
	m.Bind(b, e)

	got, ok := m.GetNextPlayer(b)
	if !ok || got != e {
		t.Fatalf("GetNextPlayer = %v, %v; want %v", got, ok, e)
	}
}

func TestCollectWinsWhenAllDyeIsGone(t *testing.T) {
	m := NewPlayerManager(2)
	m.ResetRound(map[component.ColorType]int{component.ColorRed: 2, component.ColorBlue: 1})

	if left := m.Collect(component.ColorRed); left != 1 {
		t.Fatalf("red left = %d, want 1", left)
	}
	if left := m.Collect(component.ColorBlue); left != 0 {
		t.Fatalf("blue left = %d, want 0", left)
	}
	if m.DidGameEnded() {
		t.Fatalf("game ended with red dye left")
	}
	m.Collect(component.ColorRed)
	if !m.DidGameEnded() || m.Outcome() != OutcomeWin {
		t.Fatalf("ended=%v outcome=%v, want win", m.DidGameEnded(), m.Outcome())
	}

	// Extra collects do not go negative.
	if left := m.Collect(component.ColorRed); left != 0 {
		t.Fatalf("red left = %d after extra collect", left)
	}
}

func TestGameOverFirstCallWins(t *testing.T) {
	m := NewPlayerManager(1)
	m.GameOver(true)
	m.GameOver(false)
	if m.Outcome() != OutcomeLoss {
		t.Fatalf("outcome = %v, want loss", m.Outcome())
	}

	m.ResetRound(nil)
	if m.DidGameEnded() || m.Outcome() != OutcomeNone {
		t.Fatalf("reset kept the outcome")
	}
}

func TestToColorIsDistinctPerTeam(t *testing.T) {
	m := NewPlayerManager(1)
	seen := make(map[[4]uint32]component.ColorType)
	for _, c := range component.Colors() {
		r, g, b, a := m.ToColor(c).RGBA()
		key := [4]uint32{r, g, b, a}
		if other, dup := seen[key]; dup {
			t.Fatalf("%v and %v share a color", c, other)
		}
		seen[key] = c
	}
}
