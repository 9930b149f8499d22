// internal/particle/particle.go
package particle

import (
	"math"

	"classy-confetti/internal/utils"
	"classy-confetti/pkg/confetti"
)

// Particle — одна живая конфетти в системе координат эмиттера.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Angle    float64
	Spin     float64
	Scale    float64
	Age      float64
	Lifetime float64
	Cell     *confetti.Cell
}

// Layer хранит частицы одного эмиттера.
type Layer struct {
	Emitter   *confetti.Emitter
	Particles []Particle
	// дробный остаток рождений по каждой ячейке
	pending []float64
}

// Alive сообщает, осталась ли хоть одна живая частица.
func (l *Layer) Alive() bool { return len(l.Particles) > 0 }

// System симулирует частицы всех подключенных эмиттеров.
type System struct {
	max    int
	rng    *utils.PRNGService
	layers map[*confetti.Emitter]*Layer
}

// NewSystem создает систему с лимитом maxParticles частиц на слой.
func NewSystem(maxParticles int, rng *utils.PRNGService) *System {
	return &System{
		max:    maxParticles,
		rng:    rng,
		layers: make(map[*confetti.Emitter]*Layer),
	}
}

// Attach начинает симуляцию e. Повторный вызов ничего не делает.
func (s *System) Attach(e *confetti.Emitter) *Layer {
	if l, ok := s.layers[e]; ok {
		return l
	}
	l := &Layer{Emitter: e, pending: make([]float64, len(e.Cells))}
	s.layers[e] = l
	return l
}

// Detach удаляет e вместе с частицами.
func (s *System) Detach(e *confetti.Emitter) {
	delete(s.layers, e)
}

// Layer возвращает слой e или nil.
func (s *System) Layer(e *confetti.Emitter) *Layer {
	return s.layers[e]
}

// Count — число живых частиц во всех слоях.
func (s *System) Count() int {
	n := 0
	for _, l := range s.layers {
		n += len(l.Particles)
	}
	return n
}

// Step продвигает слой e на dt секунд. rate — текущий множитель частоты
// рождения эмиттера, как его отдает таймлайн.
func (s *System) Step(e *confetti.Emitter, rate, dt float64) {
	l, ok := s.layers[e]
	if !ok || dt <= 0 {
		return
	}

	// Сначала двигаем живые частицы и убираем истекшие
	alive := l.Particles[:0]
	for _, p := range l.Particles {
		p.Age += dt
		if p.Age >= p.Lifetime {
			continue
		}
		p.VY += p.Cell.YAcceleration * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Angle += p.Spin * dt
		alive = append(alive, p)
	}
	l.Particles = alive

	if rate <= 0 {
		return
	}
	for i, cell := range e.Cells {
		l.pending[i] += rate * cell.BirthRate * dt
		n := int(l.pending[i])
		l.pending[i] -= float64(n)
		for ; n > 0; n-- {
			if len(l.Particles) >= s.max {
				break
			}
			l.Particles = append(l.Particles, s.spawn(e, cell))
		}
	}
}

func (s *System) spawn(e *confetti.Emitter, cell *confetti.Cell) Particle {
	dir := s.rng.Spread(cell.EmissionLongitude, cell.EmissionRange/2)
	speed := s.rng.Spread(cell.Velocity, cell.VelocityRange)
	return Particle{
		X:        e.Position.X,
		Y:        e.Position.Y,
		VX:       math.Cos(dir) * speed,
		VY:       math.Sin(dir) * speed,
		Spin:     s.rng.Spread(cell.Spin, cell.SpinRange),
		Scale:    s.rng.Upto(cell.Scale, cell.ScaleRange),
		Lifetime: cell.Lifetime,
		Cell:     cell,
	}
}
