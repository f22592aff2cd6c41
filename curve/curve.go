// Package curve provides the response curves used to shape the boost
// multiplier. A curve maps a time in seconds to an extra multiplier.
package curve

import (
	"fmt"
	"sort"
)

// Curve maps t (seconds) to a value.
type Curve interface {
	Evaluate(t float64) float64
}

// Constant is a flat curve.
type Constant float64

func (c Constant) Evaluate(float64) float64 {
	return float64(c)
}

// Keyframe is a single control point of a Keyframes curve.
type Keyframe struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// Keyframes interpolates linearly between control points and clamps to the
// first/last value outside their range. An empty curve evaluates to 0.
type Keyframes []Keyframe

// NewKeyframes sorts the points by time and rejects duplicate times.
func NewKeyframes(points ...Keyframe) (Keyframes, error) {
	k := append(Keyframes(nil), points...)
	sort.Slice(k, func(i, j int) bool { return k[i].Time < k[j].Time })
	for i := 1; i < len(k); i++ {
		if k[i].Time == k[i-1].Time {
			return nil, fmt.Errorf("curve: duplicate keyframe at t=%v", k[i].Time)
		}
	}
	return k, nil
}

func (k Keyframes) Evaluate(t float64) float64 {
	switch {
	case len(k) == 0:
		return 0
	case t <= k[0].Time:
		return k[0].Value
	case t >= k[len(k)-1].Time:
		return k[len(k)-1].Value
	}
	i := sort.Search(len(k), func(i int) bool { return k[i].Time > t })
	a, b := k[i-1], k[i]
	f := (t - a.Time) / (b.Time - a.Time)
	return a.Value + f*(b.Value-a.Value)
}
