package squares

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Property names an animatable scalar on a GameObject.
type Property uint8

const (
	PropAlpha      Property = iota // primary sprite alpha
	PropScale                      // primary sprite uniform scale
	PropFlashAlpha                 // overlay sprite alpha
	PropX                          // position X
	PropY                          // position Y
)

// String returns the property's name.
func (p Property) String() string {
	switch p {
	case PropAlpha:
		return "alpha"
	case PropScale:
		return "scale"
	case PropFlashAlpha:
		return "flash-alpha"
	case PropX:
		return "x"
	case PropY:
		return "y"
	default:
		return "unknown"
	}
}

// DefaultEase is the curve used by every GameObject animation operation.
var DefaultEase ease.TweenFunc = ease.InOutSine

// Animatable is implemented by anything an Animator can drive.
type Animatable interface {
	Property(p Property) float64
	SetProperty(p Property, v float64)
}

// Animation is one time-bounded interpolation of a single property. The start
// value is sampled from the target when the delay runs out.
type Animation struct {
	Property Property
	To       float64
	Duration float64
	Delay    float64
	Ease     ease.TweenFunc

	waited float64
	tween  *gween.Tween
}

// Started reports whether the delay has elapsed.
func (a *Animation) Started() bool { return a.tween != nil }

// advance moves the animation forward by dt and writes the current value.
// Returns true once the target value has been written.
func (a *Animation) advance(dt float64, target Animatable) bool {
	if a.tween == nil {
		a.waited += dt
		if a.waited < a.Delay {
			return false
		}
		dt = a.waited - a.Delay
		a.tween = gween.New(float32(target.Property(a.Property)), float32(a.To), float32(a.Duration), a.Ease)
	}
	val, finished := a.tween.Update(float32(dt))
	if finished {
		target.SetProperty(a.Property, a.To)
		return true
	}
	target.SetProperty(a.Property, float64(val))
	return false
}

// Animator holds the active animations of one object. There is no global
// animation manager; the owner calls Update every tick.
//
// Animations run in registration order. Two animations on the same property
// both write it each tick, so the one registered last wins visually while
// both are active. Nothing cancels the earlier one.
type Animator struct {
	active []Animation
}

// Add schedules an animation of prop toward to, starting after delay seconds
// and lasting duration seconds, using DefaultEase.
func (an *Animator) Add(prop Property, to, duration, delay float64) {
	an.AddEased(prop, to, duration, delay, DefaultEase)
}

// AddEased is Add with an explicit easing function.
func (an *Animator) AddEased(prop Property, to, duration, delay float64, fn ease.TweenFunc) {
	an.active = append(an.active, Animation{
		Property: prop,
		To:       to,
		Duration: duration,
		Delay:    delay,
		Ease:     fn,
	})
}

// Update advances every active animation by dt seconds, writing values to
// target. Finished animations are removed.
func (an *Animator) Update(dt float64, target Animatable) {
	if len(an.active) == 0 {
		return
	}
	n := 0
	for i := range an.active {
		if an.active[i].advance(dt, target) {
			continue
		}
		an.active[n] = an.active[i]
		n++
	}
	for i := n; i < len(an.active); i++ {
		an.active[i] = Animation{}
	}
	an.active = an.active[:n]
}

// Len returns the number of animations still running or waiting.
func (an *Animator) Len() int { return len(an.active) }

// Active reports whether any animation on prop is running or waiting.
func (an *Animator) Active(prop Property) bool {
	for i := range an.active {
		if an.active[i].Property == prop {
			return true
		}
	}
	return false
}

