package squares

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns the objects of one screen, the input handler feeding them, and
// the batch they are drawn with. It drives one update and one draw per frame.
type Scene struct {
	World      *World
	ClearColor Color
	Config     RenderConfig

	objects    []*GameObject
	input      *InputHandler
	batch      *Batch
	outline    *Outline
	overlay    *DebugOverlay
	showFPS    bool
	debug      bool
	updateFunc func(dt float64)
	lastStats  FrameStats
}

// NewScene creates an empty scene over w with its own batch.
func NewScene(w *World) *Scene {
	b := NewBatch(w)
	return &Scene{
		World:   w,
		Config:  DefaultRenderConfig(),
		batch:   b,
		outline: NewOutline(b),
	}
}

// Add appends objects to the update and draw lists. Objects are drawn in the
// order they were added.
func (s *Scene) Add(objs ...*GameObject) {
	s.objects = append(s.objects, objs...)
}

// Remove takes o out of the scene. It does not reset o.
func (s *Scene) Remove(o *GameObject) {
	for i, obj := range s.objects {
		if obj == o {
			copy(s.objects[i:], s.objects[i+1:])
			s.objects[len(s.objects)-1] = nil
			s.objects = s.objects[:len(s.objects)-1]
			return
		}
	}
}

// Objects returns the scene's objects. The returned slice MUST NOT be mutated.
func (s *Scene) Objects() []*GameObject {
	return s.objects
}

// SetInputHandler sets the handler polled at the start of every Update.
func (s *Scene) SetInputHandler(h *InputHandler) {
	s.input = h
	if h != nil {
		h.SetDebugMode(s.debug)
	}
}

// Input returns the scene's input handler, or nil.
func (s *Scene) Input() *InputHandler {
	return s.input
}

// SetUpdateFunc sets a callback run each Update after input and before
// objects are updated.
func (s *Scene) SetUpdateFunc(fn func(dt float64)) {
	s.updateFunc = fn
}

// SetDebugMode turns on shape outlines, gesture logging, per-frame draw stats
// on stderr, and the debug overlay.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	s.Config.Debug = enabled
	if s.input != nil {
		s.input.SetDebugMode(enabled)
	}
}

// ToggleDebug flips debug mode.
func (s *Scene) ToggleDebug() {
	s.SetDebugMode(!s.debug)
}

// DebugMode reports whether debug mode is on.
func (s *Scene) DebugMode() bool {
	return s.debug
}

// LastStats returns the draw stats of the most recent Draw.
func (s *Scene) LastStats() FrameStats {
	return s.lastStats
}

// Update processes input, runs the update callback and advances every object
// by one tick.
func (s *Scene) Update() {
	s.update(1.0 / float64(ebiten.TPS()))
}

func (s *Scene) update(dt float64) {
	if s.input != nil {
		s.input.Update()
	}
	if s.updateFunc != nil {
		s.updateFunc(dt)
	}
	for _, o := range s.objects {
		o.Update(dt)
	}
	if s.overlay != nil && (s.showFPS || s.debug) {
		s.overlay.Update(dt, s.lastStats)
	}
}

// Draw clears screen and renders every object onto it.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())
	s.render(screen)
	if s.overlay != nil && (s.showFPS || s.debug) {
		s.overlay.Draw(screen)
	}
}

func (s *Scene) render(target *ebiten.Image) {
	s.batch.ResetStats()
	s.batch.SetTarget(target)
	s.batch.Begin()
	for _, o := range s.objects {
		o.Render(s.batch, s.outline, s.Config)
	}
	s.batch.End()
	s.lastStats = s.batch.Stats()
	if s.debug {
		debugLog(s.lastStats, s.World.Pool.Stats())
	}
}

// Layout scales input to the window size and renders at window resolution.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s.input != nil && s.World.Width > 0 && s.World.Height > 0 {
		s.input.SetScale(float64(outsideWidth)/s.World.Width, float64(outsideHeight)/s.World.Height)
	}
	return outsideWidth, outsideHeight
}
