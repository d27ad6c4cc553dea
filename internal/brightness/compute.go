package brightness

import (
	"math"
	"sort"
)

// Resolve computes the absolute brightness a Value asks for, given the
// device's current and max readings. It is total: out-of-range requests
// saturate at 0 or max instead of failing.
func (v Value) Resolve(current, max int) int {
	switch v.Kind {
	case Absolute:
		return Clamp(saturate(v.Num, max), max)

	case AbsolutePercent:
		return Clamp(saturate(v.Num*float64(max)/100, max), max)

	case RelativeDelta:
		return Clamp(current+v.delta(saturate(v.Num, max)), max)

	case RelativePercent:
		return Clamp(current+v.delta(saturate(v.Num*float64(max)/100, max)), max)

	case Multiply:
		target := saturate(float64(current)*v.Num, max)
		// A factor that rounds back to the current value would make the
		// command a no-op; nudge one unit in the requested direction.
		if target == current {
			if v.Num > 1 {
				target++
			} else if v.Num < 1 {
				target--
			}
		}
		return Clamp(target, max)

	case Divide:
		target := saturate(float64(current)/v.Num, max)
		if target == current {
			if v.Num > 1 {
				target--
			} else if v.Num < 1 {
				target++
			}
		}
		return Clamp(target, max)

	case LinearStep:
		return Clamp(v.linearStep(current, max), max)

	case LogStep:
		return Clamp(v.logStep(current, max), max)
	}

	return Clamp(current, max)
}

// linearStep moves to the adjacent multiple of max/Steps.
func (v Value) linearStep(current, max int) int {
	step := max / v.Steps
	if step < 1 {
		step = 1
	}

	rem := current % step
	if v.Neg {
		if rem == 0 {
			return current - step
		}
		return current - rem
	}
	if rem == 0 {
		return current + step
	}
	return current + step - rem
}

// logStep moves along a curve of Steps levels: linear at the bottom of the
// range, geometric once consecutive levels separate by more than one unit.
func (v Value) logStep(current, max int) int {
	levels := logLevels(max, v.Steps)

	if v.Neg {
		// Leftmost level >= current, then one below it.
		idx := sort.SearchInts(levels, current)
		if idx > 0 {
			idx--
		}
		return levels[idx]
	}

	// Leftmost level > current.
	idx := sort.Search(len(levels), func(i int) bool { return levels[i] > current })
	if idx >= len(levels) {
		idx = len(levels) - 1
	}
	return levels[idx]
}

func logLevels(max, steps int) []int {
	if steps > max-1 {
		steps = max - 1
	}
	if steps < 0 {
		steps = 0
	}

	levels := make([]float64, steps+1)
	for i := 0; i < steps; i++ {
		levels[i] = float64(i + 1)
	}
	levels[steps] = float64(max)

	if steps >= 2 {
		var n int
		var scale float64
		for n = 1; n < steps; n++ {
			scale = math.Pow(float64(max)/float64(n), 1/float64(steps-n+1))
			if float64(n)*(scale-1) > 1 {
				break
			}
		}
		if n == steps {
			n = steps - 1
		}
		for i := n; i < steps; i++ {
			levels[i] = levels[i-1] * scale
		}
	}

	out := make([]int, len(levels))
	for i, l := range levels {
		out[i] = roundHalfUp(l)
	}
	return out
}

func (v Value) delta(n int) int {
	if v.Neg {
		return -n
	}
	return n
}

// Clamp saturates a target into the valid [0, max] brightness range.
func Clamp(target, max int) int {
	if target < 0 {
		return 0
	}
	if target > max {
		return max
	}
	return target
}

// saturate converts a non-negative magnitude into device units, capping
// at max while still in float space. Magnitudes the grammar accepts can
// exceed the int range, where the float→int conversion is undefined and
// would saturate at the wrong bound.
func saturate(x float64, max int) int {
	if x > float64(max) {
		return max
	}
	return roundHalfUp(x)
}

// roundHalfUp is the conversion rule for every rational that meets the
// integer brightness scale: 0.5 always rounds up, which matters on
// devices with tiny ranges (an LED with max 1 must turn on at 50%).
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
