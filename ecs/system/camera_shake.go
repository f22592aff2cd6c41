package system

import (
	"math/rand/v2"

	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
)

// shakeDecay scales how fast the shake timer runs out.
const shakeDecay = 0.7

// CameraShakeSystem jitters each shaking camera around its owner. The last
// offset is kept when the shake ends.
type CameraShakeSystem struct {
	rng *rand.Rand
}

// NewCameraShakeSystem uses rng for offsets, or a time-seeded source when
// rng is nil.
func NewCameraShakeSystem(rng *rand.Rand) *CameraShakeSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &CameraShakeSystem{rng: rng}
}

func (s *CameraShakeSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CameraShakeComponent.Kind(), component.CameraComponent.Kind(), func(e ecs.Entity, shake *component.CameraShake, cam *component.Camera) {
		if shake.Timer <= 0 {
			shake.Timer = 0
			return
		}
		offset := common.InsideUnitCircle(s.rng).Mult(shake.Amplitude)
		cam.LocalX = offset.X
		cam.LocalY = offset.Y
		shake.Timer -= dt * shakeDecay
	})
}
