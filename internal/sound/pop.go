// internal/sound/pop.go
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	chirpFreq  = 1320.0
	chirpShare = 0.3
	decayRate  = 28.0 // 1/s, огибающая exp(-decayRate*t)
)

// popGenerator выдает затухающий шумовой всплеск, хлопок хлопушки.
type popGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	rng   *rand.Rand
}

func (g *popGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		val := (g.rng.Float64()*2 - 1) * math.Exp(-decayRate*t)
		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *popGenerator) Err() error { return nil }

// NewPop возвращает конечный стример для одного залпа. volume задается в
// степенях двойки относительно полной шкалы, seed делает шум воспроизводимым.
func NewPop(sr beep.SampleRate, length time.Duration, volume float64, seed int64) beep.Streamer {
	n := sr.N(length)
	noise := &popGenerator{sr: sr, total: n, rng: rand.New(rand.NewSource(seed))}

	var mixed beep.Streamer = noise
	if tone, err := generators.SineTone(sr, chirpFreq); err == nil {
		chirp := &effects.Volume{
			Streamer: beep.Take(n/4, tone),
			Base:     2,
			Volume:   math.Log2(chirpShare),
		}
		mixed = beep.Mix(noise, chirp)
	}

	return &effects.Volume{
		Streamer: beep.Take(n, mixed),
		Base:     2,
		Volume:   volume,
	}
}
