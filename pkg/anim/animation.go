// pkg/anim/animation.go
package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// KeyBirthRate names the emitter birth-rate multiplier.
const KeyBirthRate = "birthRate"

// Basic interpolates one named property from From to To over Duration
// seconds, starting at BeginTime on the host clock. Before BeginTime and once
// Duration has elapsed the property shows its model value again.
//
// The curve itself is a gween.Tween positioned with Set(now-BeginTime).
type Basic struct {
	KeyPath   string
	From, To  float64
	Duration  float64
	BeginTime float64
	Timing    ease.TweenFunc // nil means Linear

	tween *gween.Tween
	built tweenKey
}

// tweenKey is what the cached tween was built from.
type tweenKey struct {
	from, to, duration float64
}

// NewBasic creates an animation with the Default timing. The caller sets
// BeginTime before handing it to a timeline.
func NewBasic(keyPath string, from, to, duration float64) *Basic {
	return &Basic{
		KeyPath:  keyPath,
		From:     from,
		To:       to,
		Duration: duration,
		Timing:   Default,
	}
}

func (a *Basic) curve() *gween.Tween {
	key := tweenKey{a.From, a.To, a.Duration}
	if a.tween == nil || a.built != key {
		timing := a.Timing
		if timing == nil {
			timing = Linear
		}
		a.tween = gween.New(float32(a.From), float32(a.To), float32(a.Duration), timing)
		a.built = key
	}
	return a.tween
}

// ValueAt returns the interpolated value at now.
func (a *Basic) ValueAt(now float64) float64 {
	if a.Duration <= 0 {
		return a.To
	}
	v, _ := a.curve().Set(float32(now - a.BeginTime))
	return float64(v)
}

// Started reports whether now is at or past BeginTime.
func (a *Basic) Started(now float64) bool {
	return now >= a.BeginTime
}

// Done reports whether the animation has run its full duration. It is
// computed on the host clock rather than the tween's float32 time so the
// boundary matches the emitter's.
func (a *Basic) Done(now float64) bool {
	return now >= a.BeginTime+a.Duration
}

// End is the host time at which the animation finishes.
func (a *Basic) End() float64 {
	return a.BeginTime + a.Duration
}
