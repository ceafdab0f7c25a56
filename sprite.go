package squares

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is a textured quad in world space. (X, Y) is the bottom-left corner
// before scale and rotation, which are applied around (OriginX, OriginY)
// relative to that corner.
type Sprite struct {
	Texture  *ebiten.Image // nil draws WhitePixel stretched to the sprite size
	X, Y     float64
	Width    float64
	Height   float64
	OriginX  float64
	OriginY  float64
	Rotation float64 // degrees, counter-clockwise
	ScaleX   float64
	ScaleY   float64
	Color    Color // tint; Color.A is the sprite's alpha
}

// NewSprite creates a sprite of the given size with unit scale and a white,
// opaque tint.
func NewSprite(texture *ebiten.Image, x, y, width, height float64) Sprite {
	return Sprite{
		Texture: texture,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		ScaleX:  1,
		ScaleY:  1,
		Color:   ColorWhite,
	}
}

// SetPosition moves the sprite's bottom-left corner.
func (s *Sprite) SetPosition(x, y float64) {
	s.X, s.Y = x, y
}

// SetSize sets the unscaled width and height.
func (s *Sprite) SetSize(width, height float64) {
	s.Width, s.Height = width, height
}

// SetOriginCenter places the scale/rotation origin at the sprite's center.
func (s *Sprite) SetOriginCenter() {
	s.OriginX = s.Width / 2
	s.OriginY = s.Height / 2
}

// SetScale sets a uniform scale.
func (s *Sprite) SetScale(scale float64) {
	s.ScaleX, s.ScaleY = scale, scale
}

// Alpha returns the tint's alpha.
func (s *Sprite) Alpha() float64 { return s.Color.A }

// SetAlpha changes only the tint's alpha.
func (s *Sprite) SetAlpha(a float64) { s.Color.A = a }

// SetColor replaces the whole tint, alpha included.
func (s *Sprite) SetColor(c Color) { s.Color = c }
