// Package ease provides the easing catalog for tweeny.
//
// Every easing function is a pure [TweenFunc] mapping normalized progress
// t in [0, 1] to shaped progress. Functions are stateless and safe to call
// concurrently. Inputs are not clamped; callers that feed values outside
// [0, 1] get the curve's natural extrapolation.
//
// The catalog follows the classic Penner families. For each family the In
// variant accelerates, Out decelerates, and InOut splits at t = 0.5 and
// mirrors the Out curve on the second half.
//
// Back intentionally overshoots [0, 1] near the boundaries, and Elastic
// oscillates outside it. Blend functions used with these curves must accept
// shaped progress outside [0, 1].
package ease

import "math"

// TweenFunc maps normalized progress to shaped progress.
type TweenFunc func(t float64) float64

// Overshoot amount for the Back family.
const backOvershoot = 1.70158

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// InQuad accelerates from zero velocity.
func InQuad(t float64) float64 { return t * t }

// OutQuad decelerates to zero velocity.
func OutQuad(t float64) float64 { return t * (2 - t) }

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// InCubic accelerates from zero velocity.
func InCubic(t float64) float64 { return t * t * t }

// OutCubic decelerates to zero velocity.
func OutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// InOutCubic accelerates until halfway, then decelerates.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// InQuart accelerates from zero velocity.
func InQuart(t float64) float64 { return t * t * t * t }

// OutQuart decelerates to zero velocity.
func OutQuart(t float64) float64 {
	u := t - 1
	return 1 - u*u*u*u
}

// InOutQuart accelerates until halfway, then decelerates.
func InOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	u := t - 1
	return 1 - 8*u*u*u*u
}

// InQuint accelerates from zero velocity.
func InQuint(t float64) float64 { return t * t * t * t * t }

// OutQuint decelerates to zero velocity.
func OutQuint(t float64) float64 {
	u := t - 1
	return 1 + u*u*u*u*u
}

// InOutQuint accelerates until halfway, then decelerates.
func InOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := t - 1
	return 1 + 16*u*u*u*u*u
}

// InSine accelerates along a quarter sine wave.
func InSine(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }

// OutSine decelerates along a quarter sine wave.
func OutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }

// InOutSine eases along a half sine wave.
func InOutSine(t float64) float64 { return 0.5 * (1 - math.Cos(t*math.Pi)) }

// InExpo accelerates along 2^(10(t-1)). Exactly 0 at t = 0.
func InExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// OutExpo decelerates along 1-2^(-10t). Exactly 1 at t = 1.
func OutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// InOutExpo accelerates until halfway, then decelerates. Exact at both ends.
func InOutExpo(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	if t < 0.5 {
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

// InCirc accelerates along a quarter circle arc.
func InCirc(t float64) float64 { return 1 - math.Sqrt(1-t*t) }

// OutCirc decelerates along a quarter circle arc.
func OutCirc(t float64) float64 { return math.Sqrt((2 - t) * t) }

// InOutCirc accelerates until halfway, then decelerates.
func InOutCirc(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-4*t*t)) / 2
	}
	u := 2*t - 2
	return (math.Sqrt(1-u*u) + 1) / 2
}

// InElastic overshoots backward with a damped oscillation before arriving.
// Returns t unchanged at t = 0 and t = 1.
func InElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	const c = 2 * math.Pi / 3
	return -math.Pow(2, 10*t-10) * math.Sin((10*t-10.75)*c)
}

// OutElastic overshoots past the target with a damped oscillation.
// Returns t unchanged at t = 0 and t = 1.
func OutElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	const c = 2 * math.Pi / 3
	return math.Pow(2, -10*t)*math.Sin((10*t-0.75)*c) + 1
}

// InOutElastic oscillates on both ends of the motion.
// Returns t unchanged at t = 0 and t = 1.
func InOutElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	const c = 2 * math.Pi / 4.5
	if t < 0.5 {
		return -math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c) / 2
	}
	return math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c)/2 + 1
}

// InBack pulls backward below 0 before accelerating toward the target.
func InBack(t float64) float64 {
	const s = backOvershoot
	return t * t * ((s+1)*t - s)
}

// OutBack overshoots above 1 before settling on the target.
func OutBack(t float64) float64 {
	const s = backOvershoot
	u := t - 1
	return u*u*((s+1)*u+s) + 1
}

// InOutBack overshoots on both ends.
func InOutBack(t float64) float64 {
	const s = backOvershoot * 1.525
	if t < 0.5 {
		u := 2 * t
		return u * u * ((s+1)*u - s) / 2
	}
	u := 2*t - 2
	return (u*u*((s+1)*u+s) + 2) / 2
}

// OutBounce decelerates through four bounces of decreasing amplitude.
func OutBounce(t float64) float64 {
	const n = 7.5625
	const d = 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

// InBounce bounces at the start of the motion.
func InBounce(t float64) float64 { return 1 - OutBounce(1-t) }

// InOutBounce bounces on both ends of the motion.
func InOutBounce(t float64) float64 {
	if t < 0.5 {
		return (1 - OutBounce(1-2*t)) / 2
	}
	return (1 + OutBounce(2*t-1)) / 2
}

// Smoothstep is the cubic 3t²-2t³ with zero first derivative at both ends.
func Smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

// Smootherstep is the quintic 6t⁵-15t⁴+10t³ with zero first and second
// derivatives at both ends.
func Smootherstep(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }
