package squares

import "testing"

type slideRecord struct {
	cell Cell
	dir  Direction
}

// newTestInput builds a 3x3 grid of 50-unit cells in a 200x200 world viewed
// at 2x, recording every slide.
func newTestInput() (*InputHandler, Grid, *[]slideRecord) {
	w := NewWorld(200, 200)
	g := newTestGrid(w, 3, 3, 50)
	var got []slideRecord
	h := NewInputHandler(w, g, SliderFunc(func(c Cell, d Direction) {
		got = append(got, slideRecord{c, d})
	}), 2, 2)
	return h, g, &got
}

// screen converts world coordinates to device pixels for a handler from
// newTestInput.
func screen(x, y float64) (int, int) {
	return int(x * 2), int((200 - y) * 2)
}

func TestToWorld(t *testing.T) {
	w := NewWorld(200, 100)
	h := NewInputHandler(w, nil, nil, 2, 4)

	tests := []struct {
		sx, sy int
		want   Vec2
	}{
		{0, 0, Vec2{0, 100}},
		{400, 400, Vec2{200, 0}},
		{100, 200, Vec2{50, 50}},
		{3, 6, Vec2{1, 98}},
	}
	for _, tt := range tests {
		if got := h.ToWorld(tt.sx, tt.sy); got != tt.want {
			t.Errorf("ToWorld(%d, %d) = %v, want %v", tt.sx, tt.sy, got, tt.want)
		}
	}
}

func TestSetScale(t *testing.T) {
	w := NewWorld(100, 100)
	h := NewInputHandler(w, nil, nil, 1, 1)
	h.SetScale(4, 4)
	if got := h.ToWorld(40, 40); got != (Vec2{10, 90}) {
		t.Errorf("ToWorld after SetScale = %v, want (10, 90)", got)
	}
}

func TestSwipeDispatchesSlide(t *testing.T) {
	tests := []struct {
		name         string
		fromX, fromY float64
		toX, toY     float64
		row, col     int
		dir          Direction
	}{
		{"right", 25, 25, 75, 25, 0, 0, DirRight},
		{"up", 75, 25, 75, 100, 0, 1, DirUp},
		{"left", 125, 75, 40, 75, 1, 2, DirLeft},
		{"down", 25, 125, 25, 60, 2, 0, DirDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, g, got := newTestInput()
			h.OnPress(screen(tt.fromX, tt.fromY))
			if c, ok := h.Touched(); !ok || c.Row != tt.row || c.Col != tt.col {
				t.Fatalf("Touched = (%d, %d, %t), want (%d, %d)", c.Row, c.Col, ok, tt.row, tt.col)
			}
			dir := h.OnRelease(screen(tt.toX, tt.toY))
			if dir != tt.dir {
				t.Errorf("OnRelease = %s, want %s", dir, tt.dir)
			}
			if len(*got) != 1 {
				t.Fatalf("slides = %d, want 1", len(*got))
			}
			s := (*got)[0]
			if s.dir != tt.dir || s.cell.Row != tt.row || s.cell.Col != tt.col {
				t.Errorf("slide = (%d, %d, %s)", s.cell.Row, s.cell.Col, s.dir)
			}
			if s.cell.Object != g[tt.row][tt.col] {
				t.Error("slide cell object does not match grid")
			}
		})
	}
}

func TestTapDoesNotSlide(t *testing.T) {
	h, g, got := newTestInput()
	h.OnPress(screen(25, 25))
	if !g[0][0].Pressed() {
		t.Error("cell (0, 0) should be pressed")
	}
	if dir := h.OnRelease(screen(30, 30)); dir != DirNone {
		t.Errorf("OnRelease = %s, want none", dir)
	}
	if len(*got) != 0 {
		t.Errorf("slides = %d, want 0", len(*got))
	}
	if g[0][0].Pressed() {
		t.Error("release should clear pressed state")
	}
	if _, ok := h.Touched(); ok {
		t.Error("touched cell should be cleared after release")
	}
}

func TestSwipeOffGridDoesNotSlide(t *testing.T) {
	h, _, got := newTestInput()
	h.OnPress(screen(180, 180))
	if _, ok := h.Touched(); ok {
		t.Fatal("press outside the grid should not touch a cell")
	}
	if dir := h.OnRelease(screen(180, 100)); dir != DirDown {
		t.Errorf("OnRelease = %s, want down", dir)
	}
	if len(*got) != 0 {
		t.Errorf("slides = %d, want 0", len(*got))
	}
}

func TestReleaseWithoutSlider(t *testing.T) {
	w := NewWorld(200, 200)
	g := newTestGrid(w, 1, 1, 50)
	h := NewInputHandler(w, g, nil, 1, 1)
	h.OnPress(25, 175)
	if dir := h.OnRelease(100, 175); dir != DirRight {
		t.Errorf("OnRelease = %s, want right", dir)
	}
}

func TestSetGrid(t *testing.T) {
	h, _, got := newTestInput()
	h.SetGrid(newTestGrid(h.world, 1, 1, 100))

	h.OnPress(screen(75, 75))
	c, ok := h.Touched()
	if !ok || c.Row != 0 || c.Col != 0 {
		t.Fatalf("Touched = (%d, %d, %t), want (0, 0)", c.Row, c.Col, ok)
	}
	h.OnRelease(screen(75, 150))
	if len(*got) != 1 || (*got)[0].dir != DirUp {
		t.Errorf("slides = %+v, want one up", *got)
	}
}
