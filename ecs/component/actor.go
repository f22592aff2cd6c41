package component

import (
	"github.com/Xwilarg/WigglingHunt/curve"
	"github.com/jakecoffman/cp"
)

// ActorInfo is the per-actor configuration. Speeds and distances are in
// world units, times in seconds.
type ActorInfo struct {
	Color ColorType
	Speed float64
	// DeviationLimit is the cosine threshold under which a change of
	// direction resets the boost timer.
	DeviationLimit  float64
	TimeBeforeBoost float64
	Booster         float64
	BoostCurve      curve.Curve
	ShakeAmount     float64
	ShakeTime       float64
	LaserReloadTime float64
	CanShoot        bool
}

var ActorInfoComponent = NewComponent[ActorInfo]()

// Actor is the runtime state of a player-controlled actor.
type Actor struct {
	// Move is the latest normalized movement intent, PrevMove its value at
	// the previous physics step.
	Move     cp.Vector
	PrevMove cp.Vector
	// BoostTimer counts seconds of sustained movement.
	BoostTimer float64
	// Aim points from the actor towards its target; not normalized.
	Aim        cp.Vector
	CanFire    bool
	LaserTimer float64
	StunTimer  float64
	// IgnoreMask is the complement of the actor's own layer and the
	// collectible layer.
	IgnoreMask uint
}

// NewActor returns the activation state: zero vectors and timers, weapon
// armed.
func NewActor() *Actor {
	return &Actor{CanFire: true}
}

// Stunned reports whether movement input is currently suppressed.
func (a *Actor) Stunned() bool {
	return a.StunTimer > 0
}

var ActorComponent = NewComponent[Actor]()
