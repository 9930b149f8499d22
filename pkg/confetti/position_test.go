package confetti

import "testing"

func TestPositionPoint(t *testing.T) {
	bounds := Rect{X: 10, Y: 20, Width: 100, Height: 200}

	tests := []struct {
		pos  Position
		want Point
	}{
		{Top, Point{60, 20}},
		{TopLeft, Point{10, 20}},
		{TopRight, Point{110, 20}},
		{Bottom, Point{60, 220}},
		{BottomLeft, Point{10, 220}},
		{BottomRight, Point{110, 220}},
		{Center, Point{60, 120}},
	}
	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			if got := tt.pos.Point(bounds); got != tt.want {
				t.Errorf("Point(%v) = %v, want %v", bounds, got, tt.want)
			}
		})
	}
}

func TestPositionPointOnBoundary(t *testing.T) {
	bounds := Rect{X: -5, Y: 3, Width: 17, Height: 9}
	for _, p := range Positions() {
		if pt := p.Point(bounds); !bounds.Contains(pt) {
			t.Errorf("%v resolved to %v outside %v", p, pt, bounds)
		}
	}
}

func TestParsePosition(t *testing.T) {
	for _, p := range Positions() {
		got, err := ParsePosition(p.String())
		if err != nil {
			t.Fatalf("ParsePosition(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePosition(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if _, err := ParsePosition("middle"); err == nil {
		t.Error("expected error for unknown position")
	}
}
