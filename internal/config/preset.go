// internal/config/preset.go
package config

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"classy-confetti/pkg/confetti"

	colorful "github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"gopkg.in/yaml.v2"
)

// ContentSpec — одна запись content в файле пресета: фигура с размером
// или путь к картинке.
type ContentSpec struct {
	Shape  string  `yaml:"shape"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Image  string  `yaml:"image"`
}

type presetFile struct {
	Palette  []string      `yaml:"palette"`
	Content  []ContentSpec `yaml:"content"`
	Position string        `yaml:"position"`
	Duration float64       `yaml:"duration"`
}

// Preset — залп, описанный в YAML и переведенный в значения библиотеки.
type Preset struct {
	Colors   []color.Color      // nil — палитра по умолчанию
	Content  []confetti.Content // nil — фигуры по умолчанию, пустой — без частиц
	Position confetti.Position
	Duration float64
}

// DefaultPreset используется, когда файла пресета нет.
func DefaultPreset() *Preset {
	return &Preset{Position: confetti.Top, Duration: DefaultBurstDuration}
}

// Confetti собирает шаблон залпа по пресету.
func (p *Preset) Confetti() *confetti.Confetti {
	return confetti.New(p.Colors, p.Content)
}

// LoadPreset читает файл пресета. Пути к картинкам отсчитываются от файла.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	return ParsePreset(data, filepath.Dir(path))
}

// ParsePreset разбирает YAML пресета; baseDir нужен для относительных путей к картинкам.
func ParsePreset(data []byte, baseDir string) (*Preset, error) {
	var raw presetFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preset: %w", err)
	}

	p := DefaultPreset()
	if raw.Position != "" {
		pos, err := confetti.ParsePosition(raw.Position)
		if err != nil {
			return nil, err
		}
		p.Position = pos
	}
	if raw.Duration < 0 {
		return nil, fmt.Errorf("negative duration %v", raw.Duration)
	}
	if raw.Duration > 0 {
		p.Duration = raw.Duration
	}

	for _, hex := range raw.Palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("bad palette colour %q: %w", hex, err)
		}
		r, g, b := c.RGB255()
		p.Colors = append(p.Colors, color.RGBA{r, g, b, 255})
	}

	if raw.Content != nil {
		p.Content = make([]confetti.Content, 0, len(raw.Content))
		for i, spec := range raw.Content {
			item, err := spec.resolve(baseDir)
			if err != nil {
				return nil, fmt.Errorf("content %d: %w", i, err)
			}
			p.Content = append(p.Content, item)
		}
	}
	return p, nil
}

func (s ContentSpec) resolve(baseDir string) (confetti.Content, error) {
	if s.Image != "" {
		if s.Shape != "" {
			return nil, fmt.Errorf("both shape and image given")
		}
		img, err := loadImage(filepath.Join(baseDir, s.Image))
		if err != nil {
			return nil, err
		}
		return confetti.ImageContent{Img: img}, nil
	}

	shape, err := confetti.ParseShape(s.Shape)
	if err != nil {
		return nil, err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("shape %s needs a positive size, got %vx%v", s.Shape, s.Width, s.Height)
	}
	return confetti.ShapeContent{Shape: shape, Width: s.Width, Height: s.Height}, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
