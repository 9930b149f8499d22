// internal/state/burst_state.go
package state

import (
	"fmt"

	"classy-confetti/internal/config"
	"classy-confetti/internal/event"
	"classy-confetti/internal/host/ebitenhost"
	"classy-confetti/internal/ui"
	"classy-confetti/pkg/confetti"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Убеждаемся, что BurstState соответствует интерфейсу State
var _ State = (*BurstState)(nil)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7,
}

// BurstState запускает залпы конфетти на поверхности во все окно. Клавиши
// 1–7 или кнопки выбирают точку, пробел или клик мимо кнопок запускает залп,
// R очищает поверхность.
type BurstState struct {
	surface   *ebitenhost.Surface
	confetti  *confetti.Confetti
	positions []confetti.Position
	labels    []string
	selected  int
	duration  float64
	buttons   []*ui.Button
	width     int
	height    int
	onBurst   func()
	log       *zap.Logger
	bursts    int
}

// NewBurstState создает демо-состояние. onBurst вызывается после каждого
// залпа и может быть nil.
func NewBurstState(c *confetti.Confetti, position confetti.Position, duration float64, onBurst func(), log *zap.Logger) *BurstState {
	if log == nil {
		log = zap.NewNop()
	}
	positions := confetti.Positions()
	labels := make([]string, len(positions))
	selected := 0
	for i, p := range positions {
		labels[i] = fmt.Sprintf("%d %s", i+1, p)
		if p == position {
			selected = i
		}
	}
	return &BurstState{
		surface:   ebitenhost.NewSurface(config.ScreenWidth, config.ScreenHeight, log),
		confetti:  c,
		positions: positions,
		labels:    labels,
		selected:  selected,
		duration:  duration,
		buttons:   ui.Row(labels, config.ScreenWidth, config.ButtonMarginY),
		width:     config.ScreenWidth,
		height:    config.ScreenHeight,
		onBurst:   onBurst,
		log:       log,
	}
}

// Layout растягивает поверхность на весь экран и заново центрирует кнопки.
func (s *BurstState) Layout(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.surface.Layout(width, height)
	s.buttons = ui.Row(s.labels, width, config.ButtonMarginY)
	s.syncButtons()
}

func (s *BurstState) Enter() {
	s.surface.Subscribe(event.BurstExhausted, event.ListenerFunc(func(ev event.Event) {
		s.log.Info("burst exhausted", zap.Float64("at", ev.Time))
	}))
	s.surface.Subscribe(event.LayerDrained, event.ListenerFunc(func(ev event.Event) {
		s.log.Info("burst drained", zap.Float64("at", ev.Time))
	}))
	s.syncButtons()
}

func (s *BurstState) Exit() {
	for _, e := range s.surface.Sublayers() {
		s.surface.Remove(e)
	}
}

func (s *BurstState) syncButtons() {
	for i, b := range s.buttons {
		b.Active = i == s.selected
	}
}

func (s *BurstState) fire() {
	pos := s.positions[s.selected]
	s.confetti.Emit(s.surface, pos, s.duration)
	s.bursts++
	s.log.Info("burst", zap.Stringer("position", pos), zap.Int("total", s.bursts))
	if s.onBurst != nil {
		s.onBurst()
	}
}

func (s *BurstState) Update(deltaTime float64) {
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.selected = i
			s.syncButtons()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.fire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Exit()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		clicked := false
		for i, b := range s.buttons {
			if b.Contains(x, y) {
				s.selected = i
				clicked = true
			}
		}
		s.syncButtons()
		if !clicked {
			s.fire()
		}
	}

	s.surface.Update(deltaTime)
}

func (s *BurstState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.surface.Draw(screen)
	for _, b := range s.buttons {
		b.Draw(screen)
	}
	status := fmt.Sprintf("bursts: %d  layers: %d  particles: %d",
		s.bursts, len(s.surface.Sublayers()), s.surface.ParticleCount())
	ebitenutil.DebugPrintAt(screen, status, 10, s.height-24)
}
