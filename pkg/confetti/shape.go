// pkg/confetti/shape.go
package confetti

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Shape is one of the built-in particle silhouettes.
type Shape int

const (
	Circle Shape = iota
	Square
	Triangle
)

// kappa places cubic Bézier control points so four arcs approximate an ellipse.
const kappa = 0.5522847498

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape is the inverse of String.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "circle":
		return Circle, nil
	case "square":
		return Square, nil
	case "triangle":
		return Triangle, nil
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Image rasterizes a filled white silhouette of the shape into a w×h bitmap
// (sizes rounded up to whole pixels). The rest of the bitmap is transparent,
// so the result can be tinted by the particle colour.
func (s Shape) Image(w, h float64) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	pw, ph := int(math.Ceil(w)), int(math.Ceil(h))
	dst := image.NewRGBA(image.Rect(0, 0, pw, ph))

	z := vector.NewRasterizer(pw, ph)
	s.trace(z, float32(w), float32(h))
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{})
	return dst
}

func (s Shape) trace(z *vector.Rasterizer, w, h float32) {
	switch s {
	case Circle:
		cx, cy := w/2, h/2
		rx, ry := w/2, h/2
		ox, oy := rx*kappa, ry*kappa
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
		z.CubeTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
		z.CubeTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
		z.CubeTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
		z.ClosePath()
	case Triangle:
		// Apex at the top edge, base spanning the full width.
		z.MoveTo(w/2, 0)
		z.LineTo(w, h)
		z.LineTo(0, h)
		z.ClosePath()
	default:
		z.MoveTo(0, 0)
		z.LineTo(w, 0)
		z.LineTo(w, h)
		z.LineTo(0, h)
		z.ClosePath()
	}
}
