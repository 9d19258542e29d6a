package core

import (
	"fmt"
	"math"
)

// Interval is a closed range of real numbers. It is empty when Min > Max.
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval from min to max
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval returns an interval that contains nothing
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// UniverseInterval returns an interval that contains every number
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// NewIntervalUnion returns the tightest interval enclosing both a and b
func NewIntervalUnion(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in [Min, Max]
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies in (Min, Max)
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand returns the interval widened by delta in total, half on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Add returns the interval shifted by offset
func (i Interval) Add(offset float64) Interval {
	return Interval{Min: i.Min + offset, Max: i.Max + offset}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g, %g]", i.Min, i.Max)
}
