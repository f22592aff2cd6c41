package system

import (
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/jakecoffman/cp"
)

// boostVelocity advances the boost state of one actor by a physics step and
// returns the velocity to apply.
//
// Turning sharper than the deviation limit (cosine of the angle between the
// previous and current intent) restarts the boost timer. Starting from rest
// counts as a turn since the dot product with a zero vector is 0.
func boostVelocity(actor *component.Actor, info *component.ActorInfo, dt float64) cp.Vector {
	if actor.PrevMove.Dot(actor.Move) < info.DeviationLimit {
		actor.BoostTimer = 0
	}
	actor.PrevMove = actor.Move

	return actor.Move.Mult(info.Speed * dt * boostMultiplier(actor, info, dt))
}

// boostMultiplier is 1 until the actor has kept its heading for
// TimeBeforeBoost seconds. The curve is sampled at the step length, not at
// the boosted duration.
func boostMultiplier(actor *component.Actor, info *component.ActorInfo, dt float64) float64 {
	if actor.BoostTimer < info.TimeBeforeBoost {
		return 1
	}
	extra := 0.0
	if info.BoostCurve != nil {
		extra = info.BoostCurve.Evaluate(dt)
	}
	return info.Booster * (1 + extra)
}
