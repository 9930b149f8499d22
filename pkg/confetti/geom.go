// pkg/confetti/geom.go
package confetti

import "image"

// Point is a location in surface coordinates. Y grows downwards.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromImage converts integer image bounds into a Rect.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		X:      float64(r.Min.X),
		Y:      float64(r.Min.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MidX() float64 { return r.X + r.Width/2 }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}
