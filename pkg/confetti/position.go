// pkg/confetti/position.go
package confetti

import "fmt"

// Position is a named anchor on a surface. It becomes a concrete point only
// when a burst is emitted, because the surface size may change before that.
type Position int

const (
	Top Position = iota
	TopLeft
	TopRight
	Bottom
	BottomLeft
	BottomRight
	Center
)

var positionNames = [...]string{
	Top:         "top",
	TopLeft:     "topLeft",
	TopRight:    "topRight",
	Bottom:      "bottom",
	BottomLeft:  "bottomLeft",
	BottomRight: "bottomRight",
	Center:      "center",
}

// Positions returns every anchor in declaration order.
func Positions() []Position {
	return []Position{Top, TopLeft, TopRight, Bottom, BottomLeft, BottomRight, Center}
}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// ParsePosition is the inverse of String.
func ParsePosition(s string) (Position, error) {
	for i, name := range positionNames {
		if name == s {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// Point resolves the anchor against bounds.
func (p Position) Point(bounds Rect) Point {
	switch p {
	case Top:
		return Point{bounds.MidX(), bounds.MinY()}
	case TopLeft:
		return Point{bounds.MinX(), bounds.MinY()}
	case TopRight:
		return Point{bounds.MaxX(), bounds.MinY()}
	case Bottom:
		return Point{bounds.MidX(), bounds.MaxY()}
	case BottomLeft:
		return Point{bounds.MinX(), bounds.MaxY()}
	case BottomRight:
		return Point{bounds.MaxX(), bounds.MaxY()}
	default:
		return Point{bounds.MidX(), bounds.MidY()}
	}
}
