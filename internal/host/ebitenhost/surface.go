// internal/host/ebitenhost/surface.go
package ebitenhost

import (
	"image"

	"classy-confetti/internal/assets"
	"classy-confetti/internal/scene"
	"classy-confetti/pkg/confetti"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Surface рисует scene.Stage средствами ebiten. Текстуры ячеек загружаются
// в видеопамять при первом использовании и освобождаются, когда их эмиттер
// снят со сцены.
type Surface struct {
	*scene.Stage
	textures *assets.TextureCache[*ebiten.Image]
	log      *zap.Logger
}

// NewSurface создает поверхность размером width×height пикселей.
func NewSurface(width, height int, log *zap.Logger) *Surface {
	if log == nil {
		log = zap.NewNop()
	}
	textures := assets.NewTextureCache(
		func(img image.Image) *ebiten.Image { return ebiten.NewImageFromImage(img) },
		(*ebiten.Image).Deallocate,
	)
	return &Surface{
		Stage:    scene.NewStage(confetti.RectFromImage(image.Rect(0, 0, width, height)), log.Named("stage")),
		textures: textures,
		log:      log,
	}
}

// Layout подгоняет границы сцены под размер экрана ebiten.
func (s *Surface) Layout(width, height int) {
	r := confetti.RectFromImage(image.Rect(0, 0, width, height))
	if r != s.Bounds() {
		s.SetBounds(r)
		s.log.Debug("surface resized", zap.Int("width", width), zap.Int("height", height))
	}
}

// Update продвигает сцену и освобождает то, что осталось от отыгравших залпов.
func (s *Surface) Update(deltaTime float64) {
	s.Advance(deltaTime)
	for _, e := range s.Prune() {
		s.textures.Release(e)
	}
}

// Remove сразу снимает e и освобождает его текстуры.
func (s *Surface) Remove(e *confetti.Emitter) {
	s.RemoveSublayer(e)
	s.textures.Release(e)
}

// Draw рисует частицы всех эмиттеров, начиная с нижнего слоя. Текстуры —
// белые силуэты, окрашенные в цвет ячейки.
func (s *Surface) Draw(screen *ebiten.Image) {
	for _, e := range s.Sublayers() {
		for _, p := range s.Particles(e) {
			tex, ok := s.textures.Get(p.Cell)
			if !ok {
				continue
			}
			b := tex.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
			op.GeoM.Scale(p.Scale, p.Scale)
			op.GeoM.Rotate(p.Angle)
			op.GeoM.Translate(p.X, p.Y)
			op.ColorScale.ScaleWithColor(p.Cell.Color)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(tex, op)
		}
	}
}
