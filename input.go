package squares

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Slider receives the directional command produced by a swipe that started
// on a grid cell.
type Slider interface {
	Slide(cell Cell, dir Direction)
}

// SliderFunc adapts a function to the Slider interface.
type SliderFunc func(cell Cell, dir Direction)

// Slide calls f(cell, dir).
func (f SliderFunc) Slide(cell Cell, dir Direction) { f(cell, dir) }

// SlideEvent describes one dispatched slide, for consumers that queue
// commands instead of handling them inline.
type SlideEvent struct {
	Row, Col  int
	Direction Direction
}

// InputHandler turns device presses and releases into grid hits and slide
// commands. Device coordinates have their origin at the top-left; they are
// divided by the scale factors and flipped into world space.
//
// Only one pointer is tracked. A second touch that starts while the first is
// down is ignored.
type InputHandler struct {
	world  *World
	grid   Grid
	slider Slider
	scaleX float64
	scaleY float64
	debug  bool

	touchDown  Vec2
	touched    Cell
	hasTouched bool

	// Synthetic input (see inject.go and testrunner.go).
	injectQueue []pointerEvent
	testRunner  *TestRunner

	// Device polling state.
	touchIDs    []ebiten.TouchID
	touchID     ebiten.TouchID
	touchActive bool
}

// NewInputHandler creates a handler dispatching swipes on grid to slider.
// scaleX and scaleY are device pixels per world unit.
func NewInputHandler(w *World, grid Grid, slider Slider, scaleX, scaleY float64) *InputHandler {
	return &InputHandler{
		world:  w,
		grid:   grid,
		slider: slider,
		scaleX: scaleX,
		scaleY: scaleY,
	}
}

// SetScale updates the device-to-world scale factors, e.g. after a resize.
func (h *InputHandler) SetScale(scaleX, scaleY float64) {
	h.scaleX, h.scaleY = scaleX, scaleY
}

// SetGrid replaces the grid that presses are tested against.
func (h *InputHandler) SetGrid(g Grid) {
	h.grid = g
}

// SetDebugMode enables logging of every classified gesture to stderr.
func (h *InputHandler) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// ToWorld converts device coordinates to whole world units.
func (h *InputHandler) ToWorld(screenX, screenY int) Vec2 {
	return Vec2{
		X: float64(int(float64(screenX) / h.scaleX)),
		Y: float64(int(h.world.Height - float64(screenY)/h.scaleY)),
	}
}

// OnPress records the press point and the grid cell under it, if any.
func (h *InputHandler) OnPress(screenX, screenY int) {
	p := h.ToWorld(screenX, screenY)
	h.touchDown = p
	h.touched, h.hasTouched = h.grid.TouchDown(p.X, p.Y)
}

// OnRelease classifies the swipe since the last press and, when it started
// on a cell, sends the direction to the slider. Every cell's pressed state is
// cleared regardless of the outcome.
func (h *InputHandler) OnRelease(screenX, screenY int) Direction {
	p := h.ToWorld(screenX, screenY)
	dir := Classify(h.touchDown, p)

	if h.debug {
		debugf("gesture %s from (%.0f, %.0f) to (%.0f, %.0f), cell hit: %t",
			dir, h.touchDown.X, h.touchDown.Y, p.X, p.Y, h.hasTouched)
	}

	if h.hasTouched && dir != DirNone && h.slider != nil {
		h.slider.Slide(h.touched, dir)
	}
	h.grid.TouchUp(p.X, p.Y)
	h.touched, h.hasTouched = Cell{}, false
	return dir
}

// Touched returns the cell recorded by the last press, if it hit one.
func (h *InputHandler) Touched() (Cell, bool) {
	return h.touched, h.hasTouched
}

// Update consumes one injected event, if any are queued, or polls the mouse
// and touch screen. Call once per tick.
func (h *InputHandler) Update() {
	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	if h.processInjectedInput() {
		return
	}
	h.processMousePointer()
	h.processTouchPointer()
}

// processMousePointer handles left-button press and release edges.
func (h *InputHandler) processMousePointer() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		h.OnPress(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		h.OnRelease(x, y)
	}
}

// processTouchPointer follows the first touch that goes down until it lifts.
func (h *InputHandler) processTouchPointer() {
	if !h.touchActive {
		h.touchIDs = inpututil.AppendJustPressedTouchIDs(h.touchIDs[:0])
		if len(h.touchIDs) == 0 {
			return
		}
		h.touchID = h.touchIDs[0]
		h.touchActive = true
		x, y := ebiten.TouchPosition(h.touchID)
		h.OnPress(x, y)
		return
	}
	if inpututil.IsTouchJustReleased(h.touchID) {
		x, y := inpututil.TouchPositionInPreviousTick(h.touchID)
		h.touchActive = false
		h.OnRelease(x, y)
	}
}
