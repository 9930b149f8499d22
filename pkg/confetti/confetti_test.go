package confetti

import (
	"image"
	"image/color"
	"math"
	"testing"

	"classy-confetti/pkg/anim"
)

type scheduled struct {
	target *Emitter
	anim   *anim.Basic
}

// recordingSurface remembers what a burst did to it.
type recordingSurface struct {
	bounds    Rect
	now       float64
	layers    []*Emitter
	scheduled []scheduled
}

func (s *recordingSurface) Bounds() Rect           { return s.bounds }
func (s *recordingSurface) MediaTime() float64     { return s.now }
func (s *recordingSurface) AddSublayer(e *Emitter) { s.layers = append(s.layers, e) }
func (s *recordingSurface) Add(target *Emitter, a *anim.Basic) {
	s.scheduled = append(s.scheduled, scheduled{target, a})
}

func TestNewDefaults(t *testing.T) {
	c := New(nil, nil)

	if got := len(c.Colors()); got != 4 {
		t.Errorf("default palette has %d colours, want 4", got)
	}
	content := c.Content()
	if len(content) != 3 {
		t.Fatalf("default content has %d items, want 3", len(content))
	}
	wantShapes := []Shape{Circle, Square, Triangle}
	for i, item := range content {
		sc, ok := item.(ShapeContent)
		if !ok {
			t.Fatalf("content[%d] is %T, want ShapeContent", i, item)
		}
		if sc.Shape != wantShapes[i] || sc.Width != 5 || sc.Height != 5 {
			t.Errorf("content[%d] = %+v, want %v 5x5", i, sc, wantShapes[i])
		}
	}
}

func TestNewEmptyContentIsKept(t *testing.T) {
	c := New(nil, []Content{})
	if got := len(c.Cells()); got != 0 {
		t.Errorf("empty content produced %d cells, want 0", got)
	}
}

func TestNewEmptyPaletteFallsBack(t *testing.T) {
	c := New([]color.Color{}, []Content{ShapeContent{Shape: Square, Width: 2, Height: 2}})
	cells := c.Cells()
	if len(cells) != 1 {
		t.Fatalf("got %d cells, want 1", len(cells))
	}
	if cells[0].Color != DefaultColors()[0] {
		t.Errorf("colour = %v, want default red", cells[0].Color)
	}
}

func TestColorsRoundRobin(t *testing.T) {
	palette := []color.Color{
		color.RGBA{1, 0, 0, 255},
		color.RGBA{2, 0, 0, 255},
		color.RGBA{3, 0, 0, 255},
	}
	for n := 0; n < 8; n++ {
		content := make([]Content, n)
		for i := range content {
			content[i] = ShapeContent{Shape: Circle, Width: 1, Height: 1}
		}
		cells := New(palette, content).Cells()
		if len(cells) != n {
			t.Fatalf("n=%d: got %d cells", n, len(cells))
		}
		for i, cell := range cells {
			if cell.Color != palette[i%len(palette)] {
				t.Errorf("n=%d: cell %d colour %v, want %v", n, i, cell.Color, palette[i%len(palette)])
			}
		}
	}
}

func TestCellParameters(t *testing.T) {
	cell := New(nil, nil).Cells()[0]
	if cell.BirthRate != 100 || cell.Lifetime != 10 {
		t.Errorf("birth rate/lifetime = %v/%v", cell.BirthRate, cell.Lifetime)
	}
	if cell.Velocity != 150 || cell.VelocityRange != 100 {
		t.Errorf("velocity = %v±%v", cell.Velocity, cell.VelocityRange)
	}
	if cell.Scale != 0.75 || cell.ScaleRange != 0.25 {
		t.Errorf("scale = %v+%v", cell.Scale, cell.ScaleRange)
	}
	if cell.YAcceleration != 150 {
		t.Errorf("yAcceleration = %v", cell.YAcceleration)
	}
}

func TestImageContentUsedAsIs(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 4))
	cells := New(nil, []Content{ImageContent{Img: img}}).Cells()
	if cells[0].Contents != image.Image(img) {
		t.Error("image content should be used without copying")
	}
}

func TestEmitEndToEnd(t *testing.T) {
	blue := color.RGBA{0, 0, 255, 255}
	c := New([]color.Color{blue}, []Content{ShapeContent{Shape: Circle, Width: 10, Height: 10}})
	s := &recordingSurface{bounds: Rect{0, 0, 100, 200}, now: 42}

	e := c.Emit(s, Center, 2)

	if e.Position != (Point{50, 100}) {
		t.Errorf("position = %v, want (50,100)", e.Position)
	}
	if e.Frame != s.bounds {
		t.Errorf("frame = %v, want %v", e.Frame, s.bounds)
	}
	if e.BirthRate != 0 {
		t.Errorf("model birth rate = %v, want 0", e.BirthRate)
	}
	if e.BeginTime != 42 {
		t.Errorf("begin time = %v, want 42", e.BeginTime)
	}
	if len(s.layers) != 1 || s.layers[0] != e {
		t.Fatalf("emitter not attached exactly once: %v", s.layers)
	}

	if len(e.Cells) != 1 {
		t.Fatalf("got %d cells, want 1", len(e.Cells))
	}
	cell := e.Cells[0]
	if cell.Color != color.Color(blue) {
		t.Errorf("cell colour = %v, want blue", cell.Color)
	}
	if b := cell.Contents.Bounds(); b != image.Rect(0, 0, 10, 10) {
		t.Errorf("texture bounds = %v, want 10x10", b)
	}
	if _, _, _, a := cell.Contents.At(0, 0).RGBA(); a != 0 {
		t.Error("circle texture corner should be transparent")
	}

	if len(s.scheduled) != 1 {
		t.Fatalf("got %d animations, want 1", len(s.scheduled))
	}
	got := s.scheduled[0]
	if got.target != e {
		t.Error("animation scheduled on the wrong emitter")
	}
	if got.anim.KeyPath != anim.KeyBirthRate || got.anim.Duration != 2 {
		t.Errorf("animation = %+v", got.anim)
	}
	if got.anim.From != BurstBirthRate || got.anim.To != 0 {
		t.Errorf("animation range %v -> %v", got.anim.From, got.anim.To)
	}
	if got.anim.BeginTime != 42 {
		t.Errorf("animation begin = %v, want 42", got.anim.BeginTime)
	}
	if e.Phase(42.5) != Emitting || got.anim.Done(42.5) {
		t.Error("emitter and decay disagree at 42.5")
	}
}

func TestEmitDefaultDuration(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN(), math.Inf(-1)} {
		s := &recordingSurface{bounds: Rect{0, 0, 10, 10}}
		e := New(nil, nil).Emit(s, Top, d)
		if e.Duration != DefaultDuration || s.scheduled[0].anim.Duration != DefaultDuration {
			t.Errorf("Emit(%v): duration = %v, want %v", d, e.Duration, DefaultDuration)
		}
		if !s.scheduled[0].anim.Done(DefaultDuration) || e.Phase(DefaultDuration) != Exhausted {
			t.Errorf("Emit(%v): burst not exhausted after the default duration", d)
		}
	}
}

func TestEmitBurstsAreIndependent(t *testing.T) {
	c := New(nil, nil)
	s := &recordingSurface{bounds: Rect{0, 0, 50, 50}}

	a := c.Emit(s, TopLeft, 1)
	b := c.Emit(s, BottomRight, 1)

	if a == b {
		t.Fatal("two bursts returned the same emitter")
	}
	for i := range a.Cells {
		if a.Cells[i] == b.Cells[i] {
			t.Fatalf("cell %d shared between bursts", i)
		}
	}
	if s.scheduled[0].anim == s.scheduled[1].anim {
		t.Fatal("bursts share a birth-rate animation")
	}

	a.BirthRate = 5
	a.Cells[0].Velocity = 1
	if b.BirthRate != 0 || b.Cells[0].Velocity != CellVelocity {
		t.Error("mutating one burst changed the other")
	}
}

func TestEmitterPhase(t *testing.T) {
	var idle Emitter
	if p := idle.Phase(100); p != Idle {
		t.Errorf("zero emitter phase = %v, want idle", p)
	}

	s := &recordingSurface{bounds: Rect{0, 0, 10, 10}, now: 10}
	e := New(nil, nil).Emit(s, Center, 2)
	if p := e.Phase(11); p != Emitting {
		t.Errorf("phase during decay = %v", p)
	}
	if p := e.Phase(12); p != Exhausted {
		t.Errorf("phase after decay = %v", p)
	}
}
