// pkg/confetti/confetti.go
package confetti

import (
	"image/color"

	"classy-confetti/pkg/anim"
)

const (
	// DefaultDuration of the birth-rate decay, in seconds.
	DefaultDuration = 1.0
	// BurstBirthRate is the emitter multiplier at the start of a burst. With
	// CellBirthRate each cell starts at 200 particles per second.
	BurstBirthRate = 2.0
)

// DefaultColors is used when no palette (or an empty one) is given.
func DefaultColors() []color.Color {
	return []color.Color{
		color.RGBA{255, 0, 0, 255},   // red
		color.RGBA{255, 128, 0, 255}, // orange
		color.RGBA{255, 255, 0, 255}, // yellow
		color.RGBA{0, 255, 0, 255},   // green
	}
}

// Confetti is a burst template. It is immutable after New and can emit any
// number of independent bursts.
type Confetti struct {
	colors  []color.Color
	content []Content
}

// New creates a burst template. An empty or nil colors falls back to
// DefaultColors. A nil content falls back to DefaultContent; a non-nil empty
// content produces bursts with no cells.
func New(colors []color.Color, content []Content) *Confetti {
	if len(colors) == 0 {
		colors = DefaultColors()
	}
	if content == nil {
		content = DefaultContent()
	}
	c := &Confetti{
		colors:  make([]color.Color, len(colors)),
		content: make([]Content, len(content)),
	}
	copy(c.colors, colors)
	copy(c.content, content)
	return c
}

// Colors returns a copy of the palette.
func (c *Confetti) Colors() []color.Color {
	return append([]color.Color(nil), c.colors...)
}

// Content returns a copy of the content list.
func (c *Confetti) Content() []Content {
	return append([]Content(nil), c.content...)
}

// Cells builds a fresh descriptor set. Textures of shape content are
// rasterized on every call.
func (c *Confetti) Cells() []*Cell {
	return configure(c.content, c.colors)
}

// Emit attaches a new burst to s at position and starts decaying its birth
// rate to zero over duration seconds (DefaultDuration unless duration is a
// positive number). It
// returns immediately; the emitter stays on the surface until the host
// removes it.
func (c *Confetti) Emit(s Surface, position Position, duration float64) *Emitter {
	if !(duration > 0) {
		duration = DefaultDuration
	}
	bounds := s.Bounds()

	e := &Emitter{BirthRate: 0}
	e.Position = position.Point(bounds)
	e.Cells = c.Cells()
	e.Frame = bounds
	e.BeginTime = s.MediaTime()
	e.Duration = duration
	e.emitted = true
	s.AddSublayer(e)

	decay := anim.NewBasic(anim.KeyBirthRate, BurstBirthRate, 0, duration)
	decay.BeginTime = e.BeginTime
	s.Add(e, decay)
	return e
}
