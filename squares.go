package squares

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// GestureDeadZone is the minimum swipe length, in world units, that
	// counts as a directional gesture. Shorter drags are taps.
	GestureDeadZone = 20.0

	// PressedAlpha is the sprite alpha of a button while it is held down.
	PressedAlpha = 0.7

	// DefaultShapePoolCapacity is the arena size used by NewWorld.
	DefaultShapePoolCapacity = 256
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts c to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, velocities and accelerations.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s. v is not modified.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle in world space. The world has its origin
// at the bottom-left, with Y increasing upward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The left and bottom edges are inside; the right and top edges are not, so
// adjacent grid cells never both claim a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Circle is a circle in world space. X and Y are the center.
type Circle struct {
	X, Y, Radius float64
}

// World describes the playfield an object lives in: its bounds, used for
// visibility tests, and the pool its shapes are drawn from.
type World struct {
	Width, Height float64
	Pool          *ShapePool
}

// NewWorld returns a world of the given size with its own shape pool.
func NewWorld(width, height float64) *World {
	return &World{
		Width:  width,
		Height: height,
		Pool:   NewShapePool(DefaultShapePoolCapacity),
	}
}

// WhitePixel is a 1x1 white image drawn for sprites without a texture.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}
