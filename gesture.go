package squares

import "math"

// Direction is the outcome of classifying a swipe.
type Direction uint8

const (
	DirNone  Direction = iota // tap, dead zone, or the unowned 315° boundary
	DirRight                  // toward +X
	DirUp                     // toward +Y
	DirLeft                   // toward -X
	DirDown                   // toward -Y
)

// String returns the direction's name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// SwipeAngle returns the angle of the swipe from press to release in whole
// degrees, counter-clockwise from +X, in [0, 360]. It returns -1 when the
// swipe is shorter than GestureDeadZone.
func SwipeAngle(press, release Vec2) int {
	delta := release.Sub(press)
	angle := math.Atan2(delta.Y, delta.X) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	if delta.Len() < GestureDeadZone {
		return -1
	}
	return int(angle)
}

// Classify maps a press/release pair in world coordinates to a direction.
//
// Bucket ownership is uneven: 225° belongs to Left, and 315°
// belongs to no bucket at all, so a swipe truncated to exactly 315° is
// ignored.
func Classify(press, release Vec2) Direction {
	return directionForAngle(SwipeAngle(press, release))
}

func directionForAngle(angle int) Direction {
	switch {
	case angle > 360-45 || (angle < 45 && angle >= 0):
		return DirRight
	case angle >= 45 && angle < 135:
		return DirUp
	case angle <= 360-135 && angle >= 135:
		return DirLeft
	case angle >= 360-135 && angle < 360-45:
		return DirDown
	default:
		return DirNone
	}
}
