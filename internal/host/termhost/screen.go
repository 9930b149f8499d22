// internal/host/termhost/screen.go
package termhost

import (
	"image/color"

	"classy-confetti/internal/config"
	"classy-confetti/internal/scene"
	"classy-confetti/pkg/confetti"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
)

// Screen рисует scene.Stage в терминале. Одна ячейка терминала покрывает
// config.TermCellWidth × config.TermCellHeight точек сцены.
type Screen struct {
	*scene.Stage
	screen     tcell.Screen
	background tcell.Style
}

// New оборачивает инициализированный экран tcell.
func New(screen tcell.Screen, log *zap.Logger) *Screen {
	if log == nil {
		log = zap.NewNop()
	}
	bg := config.BackgroundColor
	s := &Screen{
		screen:     screen,
		background: tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))),
	}
	s.Stage = scene.NewStage(s.stageBounds(), log.Named("stage"))
	return s
}

func (s *Screen) stageBounds() confetti.Rect {
	cols, rows := s.screen.Size()
	return confetti.Rect{
		Width:  float64(cols) * config.TermCellWidth,
		Height: float64(rows) * config.TermCellHeight,
	}
}

// Resize подхватывает новый размер терминала.
func (s *Screen) Resize() {
	s.SetBounds(s.stageBounds())
}

// Update продвигает сцену и убирает отыгравшие залпы.
func (s *Screen) Update(deltaTime float64) {
	s.Advance(deltaTime)
	s.Prune()
}

// Draw рисует все живые частицы и показывает кадр. Более поздние слои и
// частицы перекрывают ранние в той же ячейке терминала.
func (s *Screen) Draw() {
	s.screen.Fill(' ', s.background)
	cols, rows := s.screen.Size()
	for _, e := range s.Sublayers() {
		for _, p := range s.Particles(e) {
			col := int(p.X / config.TermCellWidth)
			row := int(p.Y / config.TermCellHeight)
			if p.X < 0 || p.Y < 0 || col >= cols || row >= rows {
				continue
			}
			style := s.background.Foreground(TermColor(p.Cell.Color))
			s.screen.SetContent(col, row, Glyph(p.Cell.Source), nil, style)
		}
	}
	s.screen.Show()
}

// Glyph выбирает символ для элемента содержимого.
func Glyph(c confetti.Content) rune {
	sc, ok := c.(confetti.ShapeContent)
	if !ok {
		return '*'
	}
	switch sc.Shape {
	case confetti.Circle:
		return '●'
	case confetti.Square:
		return '■'
	case confetti.Triangle:
		return '▲'
	}
	return '*'
}

// TermColor переводит любой цвет в true color терминала.
func TermColor(c color.Color) tcell.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return tcell.ColorDefault
	}
	r, g, b := cf.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
