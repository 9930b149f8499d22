package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestPopLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	samples := drain(NewPop(sr, 100*time.Millisecond, 0, 1))
	if len(samples) != sr.N(100*time.Millisecond) {
		t.Errorf("got %d samples, want %d", len(samples), sr.N(100*time.Millisecond))
	}
}

func TestPopDecays(t *testing.T) {
	sr := beep.SampleRate(8000)
	samples := drain(NewPop(sr, 200*time.Millisecond, 0, 2))

	energy := func(part [][2]float64) float64 {
		e := 0.0
		for _, s := range part {
			e += s[0] * s[0]
		}
		return e / float64(len(part))
	}
	q := len(samples) / 4
	head, tail := energy(samples[:q]), energy(samples[3*q:])
	if head <= tail*10 {
		t.Errorf("pop does not decay: head %v, tail %v", head, tail)
	}
}

func TestPopVolume(t *testing.T) {
	sr := beep.SampleRate(8000)
	loud := drain(NewPop(sr, 50*time.Millisecond, 0, 3))
	quiet := drain(NewPop(sr, 50*time.Millisecond, -1, 3))
	for i := range loud {
		if math.Abs(quiet[i][0]-loud[i][0]/2) > 1e-9 {
			t.Fatalf("sample %d: %v is not half of %v", i, quiet[i][0], loud[i][0])
		}
	}
}

func TestPopIsReproducible(t *testing.T) {
	sr := beep.SampleRate(8000)
	a := drain(NewPop(sr, 30*time.Millisecond, 0, 9))
	b := drain(NewPop(sr, 30*time.Millisecond, 0, 9))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}
