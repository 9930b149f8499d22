// pkg/confetti/emitter.go
package confetti

// Phase is where an Emitter is in its life.
type Phase int

const (
	Idle      Phase = iota // not emitted yet
	Emitting               // birth rate is ramping down
	Exhausted              // no new particles, live ones run out their lifetime
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Emitting:
		return "emitting"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Emitter is a live burst attached to a surface. It owns its cells; nothing
// is shared between emitters.
type Emitter struct {
	// BirthRate is the model value of the multiplier applied to every cell's
	// birth rate. The burst animation overrides it while it runs.
	BirthRate float64
	Position  Point
	Frame     Rect
	BeginTime float64
	// Duration of the birth-rate decay.
	Duration float64
	Cells    []*Cell

	emitted bool
}

// Phase reports the emitter's state at host time now.
func (e *Emitter) Phase(now float64) Phase {
	switch {
	case !e.emitted:
		return Idle
	case now < e.BeginTime+e.Duration:
		return Emitting
	default:
		return Exhausted
	}
}
