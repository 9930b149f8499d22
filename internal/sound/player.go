// internal/sound/player.go
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// Player играет хлопок на каждый залп. Если аудиоустройства нет, он
// переходит в тихий режим вместо ошибки.
type Player struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	length      time.Duration
	volume      float64
	initialized bool
	silent      bool
	seed        int64
	log         *zap.Logger

	openSpeaker func(sr beep.SampleRate, bufferSize int) error
	play        func(s ...beep.Streamer)
}

// NewPlayer создает плеер; динамик открывается при первом Pop.
func NewPlayer(sampleRate int, length time.Duration, volume float64, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		sr:          beep.SampleRate(sampleRate),
		length:      length,
		volume:      volume,
		log:         log,
		openSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

func (p *Player) init() {
	if p.initialized {
		return
	}
	p.initialized = true
	if err := p.openSpeaker(p.sr, p.sr.N(time.Second/10)); err != nil {
		p.silent = true
		p.log.Warn("audio unavailable, running silent", zap.Error(err))
	}
}

// Pop запускает звук одного залпа и сразу возвращает управление.
func (p *Player) Pop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.init()
	if p.silent {
		return
	}
	p.seed++
	p.play(NewPop(p.sr, p.length, p.volume, p.seed))
}

// Silent сообщает, что аудио открыть не удалось.
func (p *Player) Silent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.silent
}
