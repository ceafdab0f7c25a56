package squares

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSceneAddRemove(t *testing.T) {
	w := NewWorld(100, 100)
	s := NewScene(w)
	a := newRectObject(w, 0, 0, 10, 10)
	b := newRectObject(w, 20, 0, 10, 10)
	c := newRectObject(w, 40, 0, 10, 10)

	s.Add(a, b, c)
	if len(s.Objects()) != 3 {
		t.Fatalf("Objects = %d, want 3", len(s.Objects()))
	}
	s.Remove(b)
	objs := s.Objects()
	if len(objs) != 2 || objs[0] != a || objs[1] != c {
		t.Errorf("after Remove = %v, want [a c]", objs)
	}
	s.Remove(b)
	if len(s.Objects()) != 2 {
		t.Error("removing an absent object should be a no-op")
	}
}

func TestSceneUpdateOrder(t *testing.T) {
	w := NewWorld(200, 200)
	s := NewScene(w)
	o := newRectObject(w, 0, 0, 10, 10)
	o.SetVelocity(10, 0)
	s.Add(o)

	var seen []float64
	s.SetUpdateFunc(func(dt float64) {
		seen = append(seen, o.Position.X)
	})

	s.update(0.5)
	s.update(0.5)
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 5 {
		t.Errorf("callback saw X = %v, want [0 5]", seen)
	}
	if o.Position.X != 10 {
		t.Errorf("X = %v, want 10", o.Position.X)
	}
	if o.Shape().Rect().X != 10 {
		t.Errorf("shape X = %v, want 10", o.Shape().Rect().X)
	}
}

func TestSceneUpdatePollsInput(t *testing.T) {
	h, g, got := newTestInput()
	s := NewScene(h.world)
	s.SetInputHandler(h)
	g.Each(func(c Cell) { s.Add(c.Object) })

	fromX, fromY := screen(25, 25)
	toX, toY := screen(25, 100)
	h.InjectSwipe(fromX, fromY, toX, toY)

	s.update(1.0 / 60)
	s.update(1.0 / 60)
	if len(*got) != 1 || (*got)[0].dir != DirUp {
		t.Errorf("slides = %+v, want one up", *got)
	}
	if s.Input() != h {
		t.Error("Input should return the handler")
	}
}

func TestSceneDebugMode(t *testing.T) {
	defer func() { globalDebug = false }()

	w := NewWorld(100, 100)
	s := NewScene(w)
	h := NewInputHandler(w, nil, nil, 1, 1)

	s.SetDebugMode(true)
	s.SetInputHandler(h)
	if !s.DebugMode() || !s.Config.Debug || !globalDebug {
		t.Error("debug mode not applied to scene and render config")
	}
	if !h.debug {
		t.Error("input handler should inherit debug mode")
	}

	s.ToggleDebug()
	if s.DebugMode() || s.Config.Debug || h.debug {
		t.Error("ToggleDebug should switch everything off")
	}
}

func TestSceneRenderStats(t *testing.T) {
	w := NewWorld(100, 100)
	s := NewScene(w)
	visible := newRectObject(w, 10, 10, 10, 10)
	flashing := newRectObject(w, 30, 10, 10, 10)
	flashing.Flash(1, 0)
	hidden := newRectObject(w, 50, 10, 10, 10)
	hidden.Sprite().SetAlpha(0)
	s.Add(visible, flashing, hidden)

	s.Draw(ebiten.NewImage(100, 100))
	st := s.LastStats()
	if st.Sprites != 3 {
		t.Errorf("Sprites = %d, want 3", st.Sprites)
	}
	if st.Outlines != 0 {
		t.Errorf("Outlines = %d, want 0", st.Outlines)
	}
}

func TestSceneLayoutScalesInput(t *testing.T) {
	w := NewWorld(100, 200)
	s := NewScene(w)
	h := NewInputHandler(w, nil, nil, 1, 1)
	s.SetInputHandler(h)

	gw, gh := s.Layout(300, 400)
	if gw != 300 || gh != 400 {
		t.Errorf("Layout = %dx%d, want 300x400", gw, gh)
	}
	if h.scaleX != 3 || h.scaleY != 2 {
		t.Errorf("scale = (%v, %v), want (3, 2)", h.scaleX, h.scaleY)
	}
}
