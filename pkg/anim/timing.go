// pkg/anim/timing.go
package anim

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Linear is gween's linear ease, used when an animation has no Timing.
var Linear ease.TweenFunc = ease.Linear

// Default is the host's curve for animations that do not pick one:
// cubic Bézier (0.25, 0.1, 0.25, 1). gween does not ship it.
var Default = CubicBezier(0.25, 0.1, 0.25, 1)

const (
	newtonIterations = 8
	solveEpsilon     = 1e-7
)

// CubicBezier returns an ease.TweenFunc following the cubic Bézier curve
// from (0,0) to (1,1) with control points (x1,y1) and (x2,y2).
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		p := float64(t / d)
		switch {
		case p <= 0:
			return b
		case p >= 1:
			return b + c
		}
		return b + c*float32(bezier(y1, y2, solveX(x1, x2, p)))
	}
}

// bezier evaluates one coordinate of the curve with fixed end points 0 and 1.
func bezier(p1, p2, u float64) float64 {
	c := 3 * p1
	b := 3*(p2-p1) - c
	a := 1 - c - b
	return ((a*u+b)*u + c) * u
}

func bezierSlope(p1, p2, u float64) float64 {
	c := 3 * p1
	b := 3*(p2-p1) - c
	a := 1 - c - b
	return (3*a*u+2*b)*u + c
}

// solveX finds the curve parameter u whose x equals t.
func solveX(x1, x2, t float64) float64 {
	u := t
	for i := 0; i < newtonIterations; i++ {
		x := bezier(x1, x2, u) - t
		if math.Abs(x) < solveEpsilon {
			return u
		}
		d := bezierSlope(x1, x2, u)
		if math.Abs(d) < 1e-6 {
			break
		}
		u -= x / d
	}

	// Newton did not converge, fall back to bisection.
	lo, hi := 0.0, 1.0
	u = t
	for hi-lo > solveEpsilon {
		x := bezier(x1, x2, u)
		if x < t {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}
