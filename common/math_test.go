package common

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestNormalizeOrZero(t *testing.T) {
	cases := []struct {
		name string
		in   cp.Vector
		want cp.Vector
	}{
		{"zero", cp.Vector{}, cp.Vector{}},
		{"axis", cp.Vector{X: 0, Y: -3}, cp.Vector{X: 0, Y: -1}},
		{"diagonal", cp.Vector{X: 1, Y: 1}, cp.Vector{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NormalizeOrZero(c.in)
			if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
				t.Fatalf("NormalizeOrZero(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestInsideUnitCircle(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		if p := InsideUnitCircle(r); p.Length() > 1+1e-9 {
			t.Fatalf("point %v outside unit circle", p)
		}
	}
}
