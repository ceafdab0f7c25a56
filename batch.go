package squares

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// spriteCommand is a single queued sprite draw.
type spriteCommand struct {
	image *ebiten.Image
	geoM  ebiten.GeoM
	color Color
}

// FrameStats counts the draw work done by a Batch and its Outline drawer
// since the last ResetStats.
type FrameStats struct {
	Sprites  int // sprite draws submitted
	Flushes  int // End calls that submitted at least one sprite
	Outlines int // debug outlines drawn
}

// Batch is the ebiten-backed SpriteBatch. Sprites queued between Begin and
// End are submitted to the target in order when End is called. World
// coordinates (origin bottom-left, Y up) are projected onto the target
// (origin top-left, Y down), scaled by target size over world size.
type Batch struct {
	world    *World
	target   *ebiten.Image
	commands []spriteCommand
	drawing  bool
	stats    FrameStats
	op       ebiten.DrawImageOptions
}

// NewBatch creates a batch projecting w onto whatever target is set.
func NewBatch(w *World) *Batch {
	return &Batch{
		world:    w,
		commands: make([]spriteCommand, 0, defaultCommandCap),
	}
}

const defaultCommandCap = 256

// SetTarget sets the image drawn to on End. It must not change while the
// batch is begun.
func (b *Batch) SetTarget(target *ebiten.Image) {
	if b.drawing {
		panic("squares: Batch.SetTarget called between Begin and End")
	}
	b.target = target
}

// Begin starts queuing sprites.
func (b *Batch) Begin() {
	if b.drawing {
		panic("squares: Batch.End must be called before Begin")
	}
	b.drawing = true
}

// End submits every queued sprite to the target and stops queuing.
func (b *Batch) End() {
	if !b.drawing {
		panic("squares: Batch.Begin must be called before End")
	}
	b.drawing = false
	b.flush()
}

// Drawing reports whether the batch is between Begin and End.
func (b *Batch) Drawing() bool { return b.drawing }

// Pending returns the number of sprites queued but not yet submitted.
func (b *Batch) Pending() int { return len(b.commands) }

// Draw queues s. Sprites with zero size are skipped.
func (b *Batch) Draw(s *Sprite) {
	if !b.drawing {
		panic("squares: Batch.Begin must be called before Draw")
	}
	if s.Width == 0 || s.Height == 0 {
		return
	}
	img := s.Texture
	if img == nil {
		img = WhitePixel
	}
	b.commands = append(b.commands, spriteCommand{
		image: img,
		geoM:  b.spriteGeoM(s, img),
		color: s.Color,
	})
}

// spriteGeoM builds the sprite's transform from image space to target space.
func (b *Batch) spriteGeoM(s *Sprite, img *ebiten.Image) ebiten.GeoM {
	var m ebiten.GeoM
	bounds := img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw > 0 && ih > 0 {
		m.Scale(s.Width/iw, s.Height/ih)
	}

	// Origin in Y-down local space.
	ox, oy := s.OriginX, s.Height-s.OriginY
	m.Translate(-ox, -oy)
	m.Scale(s.ScaleX, s.ScaleY)
	if s.Rotation != 0 {
		// Counter-clockwise in world space is clockwise on a Y-down target.
		m.Rotate(-s.Rotation * math.Pi / 180)
	}
	m.Translate(ox, oy)

	m.Translate(s.X, b.world.Height-s.Y-s.Height)
	sx, sy := b.projection()
	m.Scale(sx, sy)
	return m
}

// projection returns the target-per-world scale on each axis.
func (b *Batch) projection() (float64, float64) {
	if b.target == nil || b.world.Width == 0 || b.world.Height == 0 {
		return 1, 1
	}
	bounds := b.target.Bounds()
	return float64(bounds.Dx()) / b.world.Width, float64(bounds.Dy()) / b.world.Height
}

// flush submits and clears the queue.
func (b *Batch) flush() {
	if len(b.commands) == 0 {
		return
	}
	if b.target != nil {
		op := &b.op
		for i := range b.commands {
			cmd := &b.commands[i]
			op.GeoM = cmd.geoM
			op.ColorScale.Reset()
			a := float32(cmd.color.A)
			op.ColorScale.Scale(float32(cmd.color.R)*a, float32(cmd.color.G)*a, float32(cmd.color.B)*a, a)
			b.target.DrawImage(cmd.image, op)
		}
	}
	b.stats.Sprites += len(b.commands)
	b.stats.Flushes++
	for i := range b.commands {
		b.commands[i] = spriteCommand{}
	}
	b.commands = b.commands[:0]
}

// Stats returns the counters accumulated since the last ResetStats.
func (b *Batch) Stats() FrameStats { return b.stats }

// ResetStats zeroes the counters.
func (b *Batch) ResetStats() { b.stats = FrameStats{} }

// outlineStrokeWidth is the width of debug outlines in target pixels.
const outlineStrokeWidth = 1

// Outline is the ebiten-backed ShapeDrawer. It draws onto its batch's
// target with the batch's projection and refuses to draw while the batch is
// begun.
type Outline struct {
	batch *Batch
}

// NewOutline creates an outline drawer sharing b's target and projection.
func NewOutline(b *Batch) *Outline {
	return &Outline{batch: b}
}

// StrokeRect outlines r.
func (d *Outline) StrokeRect(r Rect, clr Color) {
	d.checkBatch()
	b := d.batch
	sx, sy := b.projection()
	x := r.X * sx
	y := (b.world.Height - r.Y - r.Height) * sy
	if b.target != nil {
		vector.StrokeRect(b.target, float32(x), float32(y), float32(r.Width*sx), float32(r.Height*sy),
			outlineStrokeWidth, clr.toRGBA(), false)
	}
	b.stats.Outlines++
}

// StrokeCircle outlines c. The radius is scaled by the horizontal projection.
func (d *Outline) StrokeCircle(c Circle, clr Color) {
	d.checkBatch()
	b := d.batch
	sx, sy := b.projection()
	cx := c.X * sx
	cy := (b.world.Height - c.Y) * sy
	if b.target != nil {
		vector.StrokeCircle(b.target, float32(cx), float32(cy), float32(c.Radius*sx),
			outlineStrokeWidth, clr.toRGBA(), false)
	}
	b.stats.Outlines++
}

func (d *Outline) checkBatch() {
	if d.batch.drawing {
		panic("squares: Batch.End must be called before drawing outlines")
	}
}
