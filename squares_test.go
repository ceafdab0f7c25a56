package squares

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"bottom-left corner", 10, 20, true},
		{"just inside top-right", 109.99, 69.99, true},
		{"right edge", 110, 40, false},
		{"top edge", 50, 70, false},
		{"outside left", 9.99, 40, false},
		{"outside bottom", 50, 19.99, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectContainsAdjacentCells(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 10, Y: 0, Width: 10, Height: 10}
	if a.Contains(10, 5) {
		t.Error("shared edge should belong to the right cell only")
	}
	if !b.Contains(10, 5) {
		t.Error("shared edge should belong to the right cell")
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := v.Add(Vec2{1, 1}); got != (Vec2{4, 5}) {
		t.Errorf("Add = %v", got)
	}
	if got := v.Sub(Vec2{1, 1}); got != (Vec2{2, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := v.Scale(0.5); got != (Vec2{1.5, 2}) {
		t.Errorf("Scale = %v", got)
	}
	if v != (Vec2{3, 4}) {
		t.Error("Scale must not modify the receiver")
	}
}

func TestColorToRGBAPremultiplied(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if c.A != 127 {
		t.Errorf("A = %d, want 127", c.A)
	}
	if c.R != 127 {
		t.Errorf("R = %d, want 127 (premultiplied)", c.R)
	}
	if c.B != 0 {
		t.Errorf("B = %d, want 0", c.B)
	}
}

func TestNewWorld(t *testing.T) {
	w := NewWorld(480, 800)
	if w.Width != 480 || w.Height != 800 {
		t.Errorf("size = %vx%v", w.Width, w.Height)
	}
	if w.Pool == nil {
		t.Fatal("world has no pool")
	}
	if got := w.Pool.Stats().Free; got != DefaultShapePoolCapacity {
		t.Errorf("free = %d, want %d", got, DefaultShapePoolCapacity)
	}
}

func TestClamp01(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{-1, 0}, {0.25, 0.25}, {2, 1}} {
		if got := clamp01(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
