// cmd/confetti/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"classy-confetti/internal/config"
	"classy-confetti/internal/logging"
	"classy-confetti/internal/sound"
	"classy-confetti/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	presetPath := flag.String("preset", config.DefaultPresetPath, "burst preset (yaml)")
	level := flag.String("d", "info", "output level: debug, info, warn, error")
	logFile := flag.String("o", "", "log file, stderr if empty")
	showCaller := flag.Bool("c", false, "show caller in log")
	mute := flag.Bool("mute", false, "no pop sound")
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: *level, File: *logFile, ShowCaller: *showCaller})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	preset, err := config.LoadPreset(*presetPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Info("no preset file, using defaults", zap.String("path", *presetPath))
		preset = config.DefaultPreset()
	case err != nil:
		logger.Fatal("failed to load preset", zap.Error(err))
	}

	var onBurst func()
	if !*mute {
		player := sound.NewPlayer(config.SampleRate, time.Duration(config.PopDuration*float64(time.Second)), config.PopVolume, logger.Named("sound"))
		onBurst = player.Pop
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewBurstState(preset.Confetti(), preset.Position, preset.Duration, onBurst, logger.Named("burst")))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Confetti")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
