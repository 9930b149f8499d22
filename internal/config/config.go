// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	MaxParticlesPerLayer = 4096
	ParticleSeed         = 0 // 0 — сид от текущего времени

	DefaultBurstDuration = 1.0
	DefaultPresetPath    = "confetti.yaml"

	// Размер одной ячейки терминала в точках сцены
	TermCellWidth  = 8.0
	TermCellHeight = 16.0
	TermFrameTime  = 1.0 / 30

	ButtonWidth   = 110
	ButtonHeight  = 28
	ButtonSpacing = 8
	ButtonMarginY = 12

	PopVolume   = -1.0 // в степенях двойки относительно исходной громкости
	PopDuration = 0.18 // секунды
	SampleRate  = 44100
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	ButtonColor       = color.RGBA{70, 100, 120, 220}
	ButtonActiveColor = color.RGBA{70, 130, 180, 255}
	ButtonStroke      = color.RGBA{240, 240, 240, 255}
	StrokeWidth       = 2.0
)
