// pkg/confetti/content.go
package confetti

import "image"

// Content describes what a single particle type looks like. It is either a
// ShapeContent or an ImageContent; no other implementations exist.
type Content interface {
	// Image returns the particle texture.
	Image() image.Image
	isContent()
}

// ShapeContent is a built-in shape rasterized at the given size.
type ShapeContent struct {
	Shape         Shape
	Width, Height float64
}

func (c ShapeContent) Image() image.Image { return c.Shape.Image(c.Width, c.Height) }
func (ShapeContent) isContent()           {}

// ImageContent uses a caller supplied bitmap as the texture.
type ImageContent struct {
	Img image.Image
}

func (c ImageContent) Image() image.Image { return c.Img }
func (ImageContent) isContent()           {}

// DefaultContent is used when no content list is given.
func DefaultContent() []Content {
	return []Content{
		ShapeContent{Shape: Circle, Width: 5, Height: 5},
		ShapeContent{Shape: Square, Width: 5, Height: 5},
		ShapeContent{Shape: Triangle, Width: 5, Height: 5},
	}
}
