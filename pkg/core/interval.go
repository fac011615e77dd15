package core

import "math"

// Interval is a half-open parametric range [Min, Max) used to bound
// valid intersection distances along a ray.
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// UniverseInterval returns the interval [min, +Inf)
func UniverseInterval(min float64) Interval {
	return Interval{Min: min, Max: math.Inf(1)}
}

// Contains reports whether t lies within the interval (Min inclusive, Max exclusive)
func (i Interval) Contains(t float64) bool {
	return i.Min <= t && t < i.Max
}

// CapAt returns a copy of the interval with the upper bound tightened to max.
// Used by aggregate hit searches to progressively narrow toward the closest hit.
func (i Interval) CapAt(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}
