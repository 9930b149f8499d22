// pkg/confetti/cell.go
package confetti

import (
	"image"
	"image/color"
	"math"
)

// Per-particle parameters shared by every confetti cell.
const (
	CellBirthRate     = 100.0 // particles per second, multiplied by the emitter birth rate
	CellLifetime      = 10.0  // seconds
	CellVelocity      = 150.0
	CellVelocityRange = 100.0
	CellEmissionRange = math.Pi
	CellSpin          = math.Pi
	CellSpinRange     = math.Pi * 4
	CellScaleRange    = 0.25
	CellScale         = 1.0 - CellScaleRange
	CellYAcceleration = 150.0 // y grows downwards, so this pulls particles down
)

// Cell describes one class of particle spawned by an Emitter.
//
// Ranges are symmetric for velocity and spin (base ± range). Scale varies
// upwards only, from Scale to Scale+ScaleRange.
type Cell struct {
	BirthRate         float64
	Lifetime          float64
	Velocity          float64
	VelocityRange     float64
	EmissionLongitude float64
	EmissionRange     float64
	Spin              float64
	SpinRange         float64
	Scale             float64
	ScaleRange        float64
	YAcceleration     float64

	Color    color.Color
	Contents image.Image
	// Source is the content item the texture was built from.
	Source Content
}

// newCell builds the descriptor for one content item.
func newCell(content Content, c color.Color) *Cell {
	return &Cell{
		BirthRate:     CellBirthRate,
		Lifetime:      CellLifetime,
		Velocity:      CellVelocity,
		VelocityRange: CellVelocityRange,
		EmissionRange: CellEmissionRange,
		Spin:          CellSpin,
		SpinRange:     CellSpinRange,
		Scale:         CellScale,
		ScaleRange:    CellScaleRange,
		YAcceleration: CellYAcceleration,
		Color:         c,
		Contents:      content.Image(),
		Source:        content,
	}
}

// configure returns one cell per content item, in order. Colours are handed
// out round-robin from palette, which must not be empty.
func configure(content []Content, palette []color.Color) []*Cell {
	cells := make([]*Cell, 0, len(content))
	for i, item := range content {
		cells = append(cells, newCell(item, palette[i%len(palette)]))
	}
	return cells
}
