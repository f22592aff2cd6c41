// Package manager keeps the roster of joined players and the state of the
// current round.
package manager

import (
	"image/color"
	"log"

	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"golang.org/x/image/colornames"
)

// Outcome is how a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

type player struct {
	binding component.InputBinding
	color   component.ColorType
	entity  ecs.Entity
}

// PlayerManager is the player registry. Players keep their join order and
// color across scene reloads; their entities are re-bound on every load.
type PlayerManager struct {
	required  int
	players   []player
	nextIndex int

	collectibles map[component.ColorType]int
	ended        bool
	outcome      Outcome
}

// NewPlayerManager waits for required players before the game is ready.
func NewPlayerManager(required int) *PlayerManager {
	if required < 1 {
		required = 1
	}
	return &PlayerManager{
		required:     required,
		collectibles: make(map[component.ColorType]int),
	}
}

// Join registers a new device and returns the color it plays. Joining twice
// with the same device returns the existing entry.
func (m *PlayerManager) Join(scheme component.InputScheme, gamepad int) (component.InputBinding, component.ColorType, bool) {
	for _, p := range m.players {
		if p.binding.Scheme == scheme && (scheme != component.SchemeGamepad || p.binding.Gamepad == gamepad) {
			return p.binding, p.color, false
		}
	}
	c, ok := m.freeColor()
	if !ok {
		return component.InputBinding{}, 0, false
	}
	b := component.InputBinding{Index: m.nextIndex, Scheme: scheme, Gamepad: gamepad}
	m.nextIndex++
	m.players = append(m.players, player{binding: b, color: c})
	log.Printf("manager: player %d joined with %s as %s", b.Index, scheme, c)
	return b, c, true
}

func (m *PlayerManager) freeColor() (component.ColorType, bool) {
	for _, c := range component.Colors() {
		taken := false
		for _, p := range m.players {
			if p.color == c {
				taken = true
				break
			}
		}
		if !taken {
			return c, true
		}
	}
	return 0, false
}

// Leave drops the player bound to a disconnected gamepad. Later players keep
// their index so collision layers stay unique.
func (m *PlayerManager) Leave(binding component.InputBinding) {
	for i, p := range m.players {
		if p.binding == binding {
			m.players = append(m.players[:i], m.players[i+1:]...)
			log.Printf("manager: player %d left", binding.Index)
			return
		}
	}
}

// Bind records the entity spawned for a player in the current scene.
func (m *PlayerManager) Bind(binding component.InputBinding, e ecs.Entity) {
	for i := range m.players {
		if m.players[i].binding == binding {
			m.players[i].entity = e
			return
		}
	}
}

// Players returns the bindings in join order.
func (m *PlayerManager) Players() []component.InputBinding {
	out := make([]component.InputBinding, 0, len(m.players))
	for _, p := range m.players {
		out = append(out, p.binding)
	}
	return out
}

// ColorOf returns the color of a joined player.
func (m *PlayerManager) ColorOf(binding component.InputBinding) (component.ColorType, bool) {
	for _, p := range m.players {
		if p.binding == binding {
			return p.color, true
		}
	}
	return 0, false
}

// ColorsInPlay lists the colors of the joined players.
func (m *PlayerManager) ColorsInPlay() []component.ColorType {
	out := make([]component.ColorType, 0, len(m.players))
	for _, p := range m.players {
		out = append(out, p.color)
	}
	return out
}

// EntityOf returns the entity currently bound to a player.
func (m *PlayerManager) EntityOf(binding component.InputBinding) (ecs.Entity, bool) {
	for _, p := range m.players {
		if p.binding == binding && p.entity.Valid() {
			return p.entity, true
		}
	}
	return 0, false
}

// IsReady reports whether enough players have joined.
func (m *PlayerManager) IsReady() bool {
	return len(m.players) >= m.required
}

func (m *PlayerManager) DidGameEnded() bool {
	return m.ended
}

func (m *PlayerManager) Outcome() Outcome {
	return m.outcome
}

// GetNextPlayer returns the entity of the player that joined after binding,
// wrapping around to the first one. A lone player gets itself.
func (m *PlayerManager) GetNextPlayer(binding component.InputBinding) (ecs.Entity, bool) {
	for i, p := range m.players {
		if p.binding != binding {
			continue
		}
		next := m.players[(i+1)%len(m.players)]
		if !next.entity.Valid() {
			return 0, false
		}
		return next.entity, true
	}
	return 0, false
}

// ResetRound clears the outcome and sets the dye counts for a new scene.
func (m *PlayerManager) ResetRound(collectibles map[component.ColorType]int) {
	m.ended = false
	m.outcome = OutcomeNone
	m.collectibles = make(map[component.ColorType]int, len(collectibles))
	for c, n := range collectibles {
		m.collectibles[c] = n
	}
	for i := range m.players {
		m.players[i].entity = 0
	}
}

func (m *PlayerManager) GetCollectibleLeft(c component.ColorType) int {
	return m.collectibles[c]
}

// Collect consumes one dye of color c and returns how many are left. The
// round is won once no dye is left in any color.
func (m *PlayerManager) Collect(c component.ColorType) int {
	if m.collectibles[c] > 0 {
		m.collectibles[c]--
	}
	left := m.collectibles[c]
	if len(m.collectibles) > 0 && m.totalLeft() == 0 {
		m.GameOver(false)
	}
	return left
}

func (m *PlayerManager) totalLeft() int {
	total := 0
	for _, n := range m.collectibles {
		total += n
	}
	return total
}

// GameOver ends the round. Only the first call decides the outcome.
func (m *PlayerManager) GameOver(loss bool) {
	if m.ended {
		return
	}
	m.ended = true
	m.outcome = OutcomeWin
	if loss {
		m.outcome = OutcomeLoss
	}
	log.Printf("manager: game over (%s)", m.outcome)
}

var palette = map[component.ColorType]color.RGBA{
	component.ColorRed:    colornames.Crimson,
	component.ColorBlue:   colornames.Royalblue,
	component.ColorGreen:  colornames.Limegreen,
	component.ColorYellow: colornames.Gold,
}

func (m *PlayerManager) ToColor(c component.ColorType) color.Color {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return colornames.White
}
