// internal/timeline/timeline.go
package timeline

import (
	"classy-confetti/internal/event"
	"classy-confetti/pkg/anim"
	"classy-confetti/pkg/confetti"

	"go.uber.org/zap"
)

// Timeline хранит активные анимации свойств эмиттеров и вычисляет их
// текущие значения по часам хоста.
type Timeline struct {
	now        float64
	animations map[*confetti.Emitter]map[string]*anim.Basic
	dispatcher *event.Dispatcher
	log        *zap.Logger
}

// New создает таймлайн. dispatcher может быть nil.
func New(dispatcher *event.Dispatcher, log *zap.Logger) *Timeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Timeline{
		animations: make(map[*confetti.Emitter]map[string]*anim.Basic),
		dispatcher: dispatcher,
		log:        log,
	}
}

// Now возвращает время последнего Tick.
func (t *Timeline) Now() float64 { return t.now }

// Add реализует confetti.Timeline. BeginTime анимации берется как есть;
// анимация с тем же ключом у той же цели заменяется.
func (t *Timeline) Add(target *confetti.Emitter, a *anim.Basic) {
	byKey, ok := t.animations[target]
	if !ok {
		byKey = make(map[string]*anim.Basic)
		t.animations[target] = byKey
	}
	byKey[a.KeyPath] = a
	t.log.Debug("animation added",
		zap.String("key", a.KeyPath),
		zap.Float64("from", a.From),
		zap.Float64("to", a.To),
		zap.Float64("begin", a.BeginTime),
		zap.Float64("duration", a.Duration))
}

// Animation возвращает анимацию ключа key у target, если она есть.
func (t *Timeline) Animation(target *confetti.Emitter, key string) (*anim.Basic, bool) {
	a, ok := t.animations[target][key]
	return a, ok
}

// Remove удаляет все анимации target.
func (t *Timeline) Remove(target *confetti.Emitter) {
	delete(t.animations, target)
}

// Value возвращает отображаемое значение key у target: значение анимации,
// пока она идет, иначе model.
func (t *Timeline) Value(target *confetti.Emitter, key string, model float64) float64 {
	a, ok := t.animations[target][key]
	if !ok || !a.Started(t.now) || a.Done(t.now) {
		return model
	}
	return a.ValueAt(t.now)
}

// Tick переводит таймлайн на now и удаляет завершенные анимации.
func (t *Timeline) Tick(now float64) {
	t.now = now
	for target, byKey := range t.animations {
		for key, a := range byKey {
			if !a.Done(now) {
				continue
			}
			delete(byKey, key)
			if key == anim.KeyBirthRate && t.dispatcher != nil {
				t.dispatcher.Dispatch(event.Event{Type: event.BurstExhausted, Emitter: target, Time: a.End()})
			}
		}
		if len(byKey) == 0 {
			delete(t.animations, target)
		}
	}
}

// Len возвращает число активных анимаций.
func (t *Timeline) Len() int {
	n := 0
	for _, byKey := range t.animations {
		n += len(byKey)
	}
	return n
}
