package squares

import "github.com/hajimehoshi/ebiten/v2"

// GameObject is a board entity: a kinematic body with a collision shape, a
// primary sprite, a normally invisible flash overlay, and its own animator.
//
// Update and Render must not be called before the object has a shape, either
// from NewGameObject or from InitShape after a Reset.
type GameObject struct {
	world *World
	shape *Shape

	Position     Vec2
	Velocity     Vec2
	Acceleration Vec2

	sprite  Sprite
	overlay Sprite
	color   Color

	// IsButton dims the sprite to PressedAlpha while the object is pressed.
	IsButton bool
	pressed  bool

	anim Animator
}

// NewGameObject creates an object at (x, y) in w with a shape of the given
// kind. A circle takes width/2 as its radius.
func NewGameObject(w *World, x, y, width, height float64, texture *ebiten.Image, clr Color, kind ShapeKind) *GameObject {
	o := &GameObject{world: w, color: clr}
	o.InitPosition(x, y)
	o.InitShape(width, height, kind)
	o.InitSprites(width, height, texture)
	return o
}

// Reset zeroes the kinematics and returns the shape to the world's pool.
// Calling Reset on an object without a shape does nothing further.
func (o *GameObject) Reset() {
	o.Position = Vec2{}
	o.Velocity = Vec2{}
	o.Acceleration = Vec2{}
	if o.shape != nil {
		o.world.Pool.Release(o.shape)
		o.shape = nil
	}
}

// Init re-initialises a reset object at (x, y) with a new shape.
func (o *GameObject) Init(x, y, width, height float64, kind ShapeKind) {
	o.InitPosition(x, y)
	o.InitShape(width, height, kind)
}

// InitPosition sets the position without touching sprites or shape.
func (o *GameObject) InitPosition(x, y float64) {
	o.Position = Vec2{x, y}
}

// InitShape gives the object a shape at its current position, acquiring one
// from the pool unless it already holds one.
func (o *GameObject) InitShape(width, height float64, kind ShapeKind) {
	if o.shape == nil {
		o.shape = o.world.Pool.Acquire()
	}
	switch kind {
	case ShapeCircle:
		o.shape.SetCircle(Circle{X: o.Position.X, Y: o.Position.Y, Radius: width / 2})
	case ShapeRectangle:
		o.shape.SetRect(Rect{X: o.Position.X, Y: o.Position.Y, Width: width, Height: height})
	}
}

// InitSprites sizes both sprites at the current position. The overlay starts
// fully transparent.
func (o *GameObject) InitSprites(width, height float64, texture *ebiten.Image) {
	o.sprite = NewSprite(texture, o.Position.X, o.Position.Y, width, height)
	o.sprite.SetColor(o.color)

	o.overlay = NewSprite(texture, o.Position.X, o.Position.Y, width, height)
	o.overlay.SetAlpha(0)
}

// InitColor sets the base tint without applying it to the sprite.
func (o *GameObject) InitColor(c Color) {
	o.color = c
}

// Update advances animations, integrates acceleration into velocity and
// velocity into position, then brings shape and sprites in line with the
// new position.
func (o *GameObject) Update(dt float64) {
	o.anim.Update(dt, o)

	o.Velocity = o.Velocity.Add(o.Acceleration.Scale(dt))
	o.Position = o.Position.Add(o.Velocity.Scale(dt))

	o.shape.setPosition(o.Position.X, o.Position.Y)

	o.sprite.SetPosition(o.Position.X, o.Position.Y)
	o.sprite.SetOriginCenter()
	o.updateEffects()
}

// updateEffects keeps the overlay locked to the primary sprite while it is
// visible.
func (o *GameObject) updateEffects() {
	if o.overlay.Alpha() == 0 {
		return
	}
	o.overlay.Rotation = o.sprite.Rotation
	o.overlay.SetPosition(o.Position.X, o.Position.Y)
	o.overlay.SetOriginCenter()
}

// IsInside reports whether the sprite, extended by its own size on every
// side, overlaps the world bounds.
func (o *GameObject) IsInside() bool {
	w, h := o.sprite.Width, o.sprite.Height
	return o.Position.X > -w && o.Position.X < o.world.Width+w &&
		o.Position.Y > -h && o.Position.Y < o.world.Height+h
}

// TouchDown marks the object pressed when (x, y) is inside its rectangle.
// Only the rectangle is consulted: circle-shaped objects are never hit.
func (o *GameObject) TouchDown(x, y float64) bool {
	if o.shape.rect.Contains(x, y) {
		o.pressed = true
		return true
	}
	return false
}

// TouchUp reports whether a press on this object is released inside its
// rectangle. The pressed state is cleared either way.
func (o *GameObject) TouchUp(x, y float64) bool {
	hit := o.shape.rect.Contains(x, y) && o.pressed
	o.pressed = false
	return hit
}

// Pressed reports whether a touch went down on the object and has not been
// released.
func (o *GameObject) Pressed() bool { return o.pressed }

// --- Animation operations ---
//
// Each operation sets the property's starting value immediately, then
// schedules a DefaultEase animation to the target after delay seconds.

// FadeIn fades the sprite from transparent to opaque.
func (o *GameObject) FadeIn(duration, delay float64) {
	o.sprite.SetAlpha(0)
	o.anim.Add(PropAlpha, 1, duration, delay)
}

// FadeOut fades the sprite from opaque to transparent.
func (o *GameObject) FadeOut(duration, delay float64) {
	o.sprite.SetAlpha(1)
	o.anim.Add(PropAlpha, 0, duration, delay)
}

// FadeInFromTo fades the sprite alpha from one value to another.
func (o *GameObject) FadeInFromTo(from, to, duration, delay float64) {
	o.sprite.SetAlpha(from)
	o.anim.Add(PropAlpha, to, duration, delay)
}

// FadeOutFrom fades the sprite alpha from the given value to zero.
func (o *GameObject) FadeOutFrom(from, duration, delay float64) {
	o.sprite.SetAlpha(from)
	o.anim.Add(PropAlpha, 0, duration, delay)
}

// Scale grows or shrinks the sprite from the given scale back to 1.
func (o *GameObject) Scale(from, duration, delay float64) {
	o.sprite.SetScale(from)
	o.anim.Add(PropScale, 1, duration, delay)
}

// ScaleFromTo scales the sprite between two values.
func (o *GameObject) ScaleFromTo(from, to, duration, delay float64) {
	o.sprite.SetScale(from)
	o.anim.Add(PropScale, to, duration, delay)
}

// ScaleZero shrinks the sprite from its current scale to nothing.
func (o *GameObject) ScaleZero(duration, delay float64) {
	o.anim.Add(PropScale, 0, duration, delay)
}

// Flash shows the overlay at full alpha and fades it out.
func (o *GameObject) Flash(duration, delay float64) {
	o.overlay.SetAlpha(1)
	o.anim.Add(PropFlashAlpha, 0, duration, delay)
}

// EffectX slides the position's X from one value to another.
func (o *GameObject) EffectX(from, to, duration, delay float64) {
	o.Position.X = from
	o.anim.Add(PropX, to, duration, delay)
}

// EffectY slides the position's Y from one value to another.
func (o *GameObject) EffectY(from, to, duration, delay float64) {
	o.Position.Y = from
	o.anim.Add(PropY, to, duration, delay)
}

// EffectXY runs EffectY and EffectX together. They are two independent
// single-axis animations sharing duration and delay.
func (o *GameObject) EffectXY(from, to Vec2, duration, delay float64) {
	o.EffectY(from.Y, to.Y, duration, delay)
	o.EffectX(from.X, to.X, duration, delay)
}

// Property implements Animatable.
func (o *GameObject) Property(p Property) float64 {
	switch p {
	case PropAlpha:
		return o.sprite.Alpha()
	case PropScale:
		return o.sprite.ScaleX
	case PropFlashAlpha:
		return o.overlay.Alpha()
	case PropX:
		return o.Position.X
	case PropY:
		return o.Position.Y
	}
	return 0
}

// SetProperty implements Animatable.
func (o *GameObject) SetProperty(p Property, v float64) {
	switch p {
	case PropAlpha:
		o.sprite.SetAlpha(v)
	case PropScale:
		o.sprite.SetScale(v)
	case PropFlashAlpha:
		o.overlay.SetAlpha(v)
	case PropX:
		o.Position.X = v
	case PropY:
		o.Position.Y = v
	}
}

// --- Accessors ---

// World returns the world the object was created in.
func (o *GameObject) World() *World { return o.world }

// Shape returns the live shape, or nil after Reset.
func (o *GameObject) Shape() *Shape { return o.shape }

// Sprite returns the primary sprite.
func (o *GameObject) Sprite() *Sprite { return &o.sprite }

// Overlay returns the flash overlay sprite.
func (o *GameObject) Overlay() *Sprite { return &o.overlay }

// Animator returns the object's animation scheduler.
func (o *GameObject) Animator() *Animator { return &o.anim }

// Color returns the base tint.
func (o *GameObject) Color() Color { return o.color }

// SetColor sets the base tint and applies it to the sprite.
func (o *GameObject) SetColor(c Color) {
	o.color = c
	o.sprite.SetColor(c)
}

// SetScale sets the sprite's uniform scale.
func (o *GameObject) SetScale(scale float64) {
	o.sprite.SetScale(scale)
}

// SetVelocity replaces the velocity.
func (o *GameObject) SetVelocity(x, y float64) {
	o.Velocity = Vec2{x, y}
}

// SetAcceleration replaces the acceleration.
func (o *GameObject) SetAcceleration(x, y float64) {
	o.Acceleration = Vec2{x, y}
}

// SetPosition moves the object and its sprite. The shape follows on the next
// Update.
func (o *GameObject) SetPosition(x, y float64) {
	o.Position = Vec2{x, y}
	o.sprite.SetPosition(x, y)
}

// SetXPosition moves the object, sprite and shape horizontally.
func (o *GameObject) SetXPosition(x float64) {
	o.Position.X = x
	o.sprite.X = x
	o.shape.setX(x)
}

// SetYPosition moves the object, sprite and shape vertically.
func (o *GameObject) SetYPosition(y float64) {
	o.Position.Y = y
	o.sprite.Y = y
	o.shape.setY(y)
}
