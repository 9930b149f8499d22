// internal/scene/stage.go
package scene

import (
	"classy-confetti/internal/config"
	"classy-confetti/internal/event"
	"classy-confetti/internal/particle"
	"classy-confetti/internal/timeline"
	"classy-confetti/internal/utils"
	"classy-confetti/pkg/anim"
	"classy-confetti/pkg/confetti"

	"go.uber.org/zap"
)

var _ confetti.Surface = (*Stage)(nil)

// Stage — поверхность без рендерера: владеет часами анимации, таймлайном
// и симуляцией частиц. Хосты рисуют то, что в ней лежит. Все методы
// вызываются из цикла обновления хоста.
type Stage struct {
	bounds     confetti.Rect
	clock      float64
	layers     []*confetti.Emitter // снизу вверх
	timeline   *timeline.Timeline
	particles  *particle.System
	dispatcher *event.Dispatcher
	log        *zap.Logger
}

// NewStage создает сцену с границами bounds. log может быть nil.
func NewStage(bounds confetti.Rect, log *zap.Logger) *Stage {
	if log == nil {
		log = zap.NewNop()
	}
	d := event.NewDispatcher()
	return &Stage{
		bounds:     bounds,
		timeline:   timeline.New(d, log.Named("timeline")),
		particles:  particle.NewSystem(config.MaxParticlesPerLayer, utils.NewPRNGService(config.ParticleSeed)),
		dispatcher: d,
		log:        log,
	}
}

// WithSeed заменяет генератор частиц на генератор с заданным сидом.
func (s *Stage) WithSeed(seed int64) *Stage {
	s.particles = particle.NewSystem(config.MaxParticlesPerLayer, utils.NewPRNGService(seed))
	for _, e := range s.layers {
		s.particles.Attach(e)
	}
	return s
}

func (s *Stage) Bounds() confetti.Rect { return s.bounds }

// SetBounds меняет размер сцены. Уже запущенные залпы сохраняют свою точку.
func (s *Stage) SetBounds(r confetti.Rect) { s.bounds = r }

func (s *Stage) MediaTime() float64 { return s.clock }

// Add реализует confetti.Timeline.
func (s *Stage) Add(target *confetti.Emitter, a *anim.Basic) {
	s.timeline.Add(target, a)
}

// AddSublayer кладет e поверх всех слоев сцены.
func (s *Stage) AddSublayer(e *confetti.Emitter) {
	s.layers = append(s.layers, e)
	s.particles.Attach(e)
	s.log.Debug("burst emitted",
		zap.Float64("x", e.Position.X),
		zap.Float64("y", e.Position.Y),
		zap.Int("cells", len(e.Cells)),
		zap.Float64("duration", e.Duration))
	s.dispatcher.Dispatch(event.Event{Type: event.BurstEmitted, Emitter: e, Time: s.clock})
}

// RemoveSublayer снимает e вместе с его анимациями и частицами.
func (s *Stage) RemoveSublayer(e *confetti.Emitter) {
	for i, l := range s.layers {
		if l == e {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			break
		}
	}
	s.timeline.Remove(e)
	s.particles.Detach(e)
}

// Cancel останавливает рождение новых частиц у e. Живые частицы летят дальше.
func (s *Stage) Cancel(e *confetti.Emitter) {
	s.timeline.Remove(e)
	e.BirthRate = 0
	if e.Duration > s.clock-e.BeginTime {
		e.Duration = s.clock - e.BeginTime
	}
}

// Sublayers возвращает эмиттеры снизу вверх.
func (s *Stage) Sublayers() []*confetti.Emitter {
	return append([]*confetti.Emitter(nil), s.layers...)
}

// Particles возвращает живые частицы e.
func (s *Stage) Particles(e *confetti.Emitter) []particle.Particle {
	if l := s.particles.Layer(e); l != nil {
		return l.Particles
	}
	return nil
}

// ParticleCount — число живых частиц на сцене.
func (s *Stage) ParticleCount() int { return s.particles.Count() }

// BirthRate — текущий отображаемый множитель частоты рождения e.
func (s *Stage) BirthRate(e *confetti.Emitter) float64 {
	return s.timeline.Value(e, anim.KeyBirthRate, e.BirthRate)
}

// Subscribe подписывает l на события типа t.
func (s *Stage) Subscribe(t event.EventType, l event.Listener) {
	s.dispatcher.Subscribe(t, l)
}

// Advance сдвигает часы на dt секунд (не больше config.MaxDeltaTime)
// и продвигает каждый эмиттер.
func (s *Stage) Advance(dt float64) {
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if dt <= 0 {
		return
	}
	s.clock += dt
	s.timeline.Tick(s.clock)
	for _, e := range s.layers {
		s.particles.Step(e, s.BirthRate(e), dt)
	}
}

// Prune снимает и возвращает исчерпанные эмиттеры без живых частиц.
// Больше ничто не убирает эмиттер со сцены.
func (s *Stage) Prune() []*confetti.Emitter {
	var drained []*confetti.Emitter
	kept := s.layers[:0]
	for _, e := range s.layers {
		l := s.particles.Layer(e)
		if e.Phase(s.clock) == confetti.Exhausted && (l == nil || !l.Alive()) {
			drained = append(drained, e)
			continue
		}
		kept = append(kept, e)
	}
	s.layers = kept
	for _, e := range drained {
		s.timeline.Remove(e)
		s.particles.Detach(e)
		s.log.Debug("layer drained", zap.Float64("at", s.clock))
		s.dispatcher.Dispatch(event.Event{Type: event.LayerDrained, Emitter: e, Time: s.clock})
	}
	return drained
}
