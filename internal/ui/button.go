// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"classy-confetti/internal/config"
	"classy-confetti/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Размер символа отладочного шрифта ebitenutil
const (
	charWidth  = 6
	charHeight = 16
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect        image.Rectangle
	Text        string
	BgColor     color.Color
	ActiveColor color.Color
	Active      bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:        rect,
		Text:        text,
		BgColor:     config.ButtonColor,
		ActiveColor: config.ButtonActiveColor,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := render.ToRGBA(b.BgColor)
	if b.Active {
		bg = render.ToRGBA(b.ActiveColor)
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	stroke := config.ButtonStroke
	if !b.Active {
		stroke = render.DarkenColor(stroke)
	}
	vector.StrokeRect(screen, x, y, w, h, float32(config.StrokeWidth), stroke, false)

	textX := b.Rect.Min.X + (b.Rect.Dx()-len(b.Text)*charWidth)/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-charHeight)/2
	ebitenutil.DebugPrintAt(screen, b.Text, textX, textY)
}

// Row выстраивает по кнопке на каждую подпись в ряд на высоте y,
// по центру экрана шириной screenWidth.
func Row(labels []string, screenWidth, y int) []*Button {
	total := len(labels)*config.ButtonWidth + (len(labels)-1)*config.ButtonSpacing
	x := (screenWidth - total) / 2
	buttons := make([]*Button, 0, len(labels))
	for _, label := range labels {
		r := image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
		buttons = append(buttons, NewButton(r, label))
		x += config.ButtonWidth + config.ButtonSpacing
	}
	return buttons
}
