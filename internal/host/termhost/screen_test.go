package termhost

import (
	"image"
	"image/color"
	"testing"

	"classy-confetti/internal/config"
	"classy-confetti/pkg/confetti"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(sim.Fini)
	return sim
}

func TestStageMatchesTerminal(t *testing.T) {
	sim := newSimScreen(t, 40, 20)
	s := New(sim, nil)
	want := confetti.Rect{Width: 40 * config.TermCellWidth, Height: 20 * config.TermCellHeight}
	if s.Bounds() != want {
		t.Errorf("bounds = %v, want %v", s.Bounds(), want)
	}

	sim.SetSize(10, 5)
	s.Resize()
	if got := s.Bounds().Width; got != 10*config.TermCellWidth {
		t.Errorf("width after resize = %v", got)
	}
}

func TestDrawShowsParticles(t *testing.T) {
	sim := newSimScreen(t, 80, 30)
	s := New(sim, nil)
	s.WithSeed(4)

	red := color.RGBA{255, 0, 0, 255}
	c := confetti.New([]color.Color{red}, []confetti.Content{confetti.ShapeContent{Shape: confetti.Square, Width: 4, Height: 4}})
	c.Emit(s, confetti.Center, 1)
	for i := 0; i < 6; i++ {
		s.Update(0.05)
	}
	s.Draw()

	found := 0
	cols, rows := sim.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, _, style, _ := sim.GetContent(x, y)
			if r != '■' {
				continue
			}
			found++
			fg, _, _ := style.Decompose()
			if fg != tcell.NewRGBColor(255, 0, 0) {
				t.Fatalf("particle at (%d,%d) has colour %v", x, y, fg)
			}
		}
	}
	if found == 0 {
		t.Error("no particles drawn")
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		in   confetti.Content
		want rune
	}{
		{confetti.ShapeContent{Shape: confetti.Circle}, '●'},
		{confetti.ShapeContent{Shape: confetti.Square}, '■'},
		{confetti.ShapeContent{Shape: confetti.Triangle}, '▲'},
		{confetti.ImageContent{Img: image.NewRGBA(image.Rect(0, 0, 1, 1))}, '*'},
	}
	for _, tt := range tests {
		if got := Glyph(tt.in); got != tt.want {
			t.Errorf("Glyph(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTermColor(t *testing.T) {
	if got := TermColor(color.RGBA{0, 128, 255, 255}); got != tcell.NewRGBColor(0, 128, 255) {
		t.Errorf("TermColor = %v", got)
	}
	if got := TermColor(color.RGBA{}); got != tcell.ColorDefault {
		t.Errorf("transparent colour = %v, want default", got)
	}
}
