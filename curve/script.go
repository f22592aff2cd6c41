package curve

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script is a curve backed by a tengo program. The program reads the global
// `t` and must assign the global `value`, e.g.
//
//	math := import("math")
//	value = math.sin(t * math.pi)
type Script struct {
	name     string
	compiled *tengo.Compiled

	cached bool
	lastT  float64
	lastV  float64
	failed bool
}

// NewScript compiles src and checks it produces a number for t=0.
func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	if err := script.Add("t", 0.0); err != nil {
		return nil, fmt.Errorf("curve: %s: add t: %w", name, err)
	}
	if err := script.Add("value", 0.0); err != nil {
		return nil, fmt.Errorf("curve: %s: add value: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("curve: %s: compile: %w", name, err)
	}

	s := &Script{name: name, compiled: compiled}
	if _, err := s.eval(0); err != nil {
		return nil, err
	}
	return s, nil
}

// Evaluate runs the script for t. Physics calls this with the same fixed step
// every tick, so the last result is memoized. A runtime error is logged once
// and the curve then evaluates to 0.
func (s *Script) Evaluate(t float64) float64 {
	if s == nil || s.failed {
		return 0
	}
	if s.cached && s.lastT == t {
		return s.lastV
	}
	v, err := s.eval(t)
	if err != nil {
		log.Printf("curve: %s: %v", s.name, err)
		s.failed = true
		return 0
	}
	s.cached, s.lastT, s.lastV = true, t, v
	return v
}

func (s *Script) eval(t float64) (float64, error) {
	if err := s.compiled.Set("t", t); err != nil {
		return 0, fmt.Errorf("curve: %s: set t: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("curve: %s: run: %w", s.name, err)
	}
	out := s.compiled.Get("value")
	switch out.ValueType() {
	case "float", "int":
		return out.Float(), nil
	default:
		return 0, fmt.Errorf("curve: %s: value must be a number, got %s", s.name, out.ValueType())
	}
}
