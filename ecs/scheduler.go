package ecs

// System runs once per rendered frame with the variable frame delta.
type System interface {
	Update(w *World, dt float64)
}

// FixedSystem runs on the fixed physics step.
type FixedSystem interface {
	FixedUpdate(w *World, dt float64)
}

// maxFixedSteps bounds catch-up work after a long frame.
const maxFixedSteps = 8

// Scheduler owns the two update rates: fixed systems are stepped from an
// accumulator first, then frame systems run once with the frame delta.
type Scheduler struct {
	step  float64
	acc   float64
	fixed []FixedSystem
	frame []System
}

func NewScheduler(step float64) *Scheduler {
	return &Scheduler{step: step}
}

func (s *Scheduler) AddFixed(system FixedSystem) {
	if system == nil {
		return
	}
	s.fixed = append(s.fixed, system)
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.frame = append(s.frame, system)
}

// Step returns the fixed step length in seconds.
func (s *Scheduler) Step() float64 {
	return s.step
}

// Update advances the world by one frame of dt seconds.
func (s *Scheduler) Update(w *World, dt float64) {
	if s == nil || w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	if s.step > 0 {
		s.acc += dt
		steps := 0
		for s.acc >= s.step && steps < maxFixedSteps {
			for _, system := range s.fixed {
				system.FixedUpdate(w, s.step)
			}
			s.acc -= s.step
			steps++
		}
		if steps == maxFixedSteps {
			s.acc = 0
		}
	}
	for _, system := range s.frame {
		system.Update(w, dt)
	}
	w.events.flush()
}
