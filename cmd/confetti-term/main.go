// cmd/confetti-term/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"classy-confetti/internal/config"
	"classy-confetti/internal/event"
	"classy-confetti/internal/host/termhost"
	"classy-confetti/internal/logging"
	"classy-confetti/internal/sound"
	"classy-confetti/pkg/confetti"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	presetPath := flag.String("preset", config.DefaultPresetPath, "burst preset (yaml)")
	level := flag.String("d", "info", "output level: debug, info, warn, error")
	logFile := flag.String("o", "confetti.log", "log file, the terminal is busy")
	mute := flag.Bool("mute", false, "no pop sound")
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: *level, File: *logFile})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	preset, err := config.LoadPreset(*presetPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		preset = config.DefaultPreset()
	case err != nil:
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	var player *sound.Player
	if !*mute {
		player = sound.NewPlayer(config.SampleRate, time.Duration(config.PopDuration*float64(time.Second)), config.PopVolume, logger.Named("sound"))
	}

	host := termhost.New(screen, logger)
	host.Subscribe(event.LayerDrained, event.ListenerFunc(func(ev event.Event) {
		logger.Debug("burst drained", zap.Float64("at", ev.Time))
	}))
	c := preset.Confetti()
	position := preset.Position

	fire := func() {
		c.Emit(host, position, preset.Duration)
		if player != nil {
			player.Pop()
		}
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	fire()
	frameTime := config.TermFrameTime * float64(time.Second)
	ticker := time.NewTicker(time.Duration(frameTime))
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					fire()
				case ev.Rune() >= '1' && ev.Rune() <= '7':
					position = confetti.Positions()[ev.Rune()-'1']
				}
			case *tcell.EventResize:
				host.Resize()
				screen.Sync()
			}
		case now := <-ticker.C:
			host.Update(now.Sub(last).Seconds())
			last = now
			host.Draw()
		}
	}
}
