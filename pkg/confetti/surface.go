// pkg/confetti/surface.go
package confetti

import "classy-confetti/pkg/anim"

// Timeline schedules property animations on emitters. The host interpolates
// them and applies the result on its own clock.
type Timeline interface {
	// Add starts a on target at a.BeginTime on the host clock. An animation
	// already running on the same key path of target is replaced.
	Add(target *Emitter, a *anim.Basic)
}

// Surface is the host display surface a burst is attached to. Its methods
// must be called from the goroutine that owns the surface.
type Surface interface {
	Timeline
	// Bounds is the current bounding rectangle of the surface.
	Bounds() Rect
	// AddSublayer places e above everything already on the surface.
	AddSublayer(e *Emitter)
	// MediaTime is the host animation clock in seconds.
	MediaTime() float64
}
