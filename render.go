package squares

// SpriteBatch queues sprite draws between Begin and End. Draw must only be
// called while the batch is begun.
type SpriteBatch interface {
	Begin()
	End()
	Draw(s *Sprite)
}

// ShapeDrawer draws debug outlines. It must not be used while a SpriteBatch
// is begun on the same target, or the outlines would land underneath sprites
// still waiting in the batch.
type ShapeDrawer interface {
	StrokeRect(r Rect, clr Color)
	StrokeCircle(c Circle, clr Color)
}

// RenderConfig is passed to every Render call.
type RenderConfig struct {
	// Debug draws each object's shape outline on top of its sprites.
	Debug      bool
	DebugColor Color
}

// DefaultRenderConfig returns a config with debug outlines off and a white
// outline color.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{DebugColor: ColorWhite}
}

// Render draws the object if it is near the world bounds and not fully
// transparent. The batch must be begun; it is begun again on return.
//
// At most one primary and one overlay draw are issued. With cfg.Debug set
// the batch is ended, the shape outline drawn, and the batch begun again.
func (o *GameObject) Render(batch SpriteBatch, shapes ShapeDrawer, cfg RenderConfig) {
	if !o.IsInside() || o.sprite.Alpha() == 0 {
		return
	}

	if o.IsButton {
		if o.pressed {
			o.sprite.SetAlpha(PressedAlpha)
		} else {
			o.sprite.SetAlpha(1)
		}
	}

	batch.Draw(&o.sprite)
	if o.overlay.Alpha() != 0 {
		batch.Draw(&o.overlay)
	}

	if cfg.Debug {
		batch.End()
		switch o.shape.Kind() {
		case ShapeRectangle:
			shapes.StrokeRect(o.shape.rect, cfg.DebugColor)
		case ShapeCircle:
			shapes.StrokeCircle(o.shape.circle, cfg.DebugColor)
		}
		batch.Begin()
	}
}
