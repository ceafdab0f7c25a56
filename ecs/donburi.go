package ecs

import (
	"github.com/phanxgames/squares"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SlideEventType is the Donburi event type for slide commands.
// Events are queued on Publish and delivered by ProcessEvents.
var SlideEventType = events.NewEventType[squares.SlideEvent]()

type donburiSlider struct {
	world donburi.World
}

// NewDonburiSlider creates a Slider that publishes each slide to
// SlideEventType in world.
func NewDonburiSlider(world donburi.World) squares.Slider {
	return &donburiSlider{world: world}
}

func (s *donburiSlider) Slide(cell squares.Cell, dir squares.Direction) {
	SlideEventType.Publish(s.world, squares.SlideEvent{
		Row:       cell.Row,
		Col:       cell.Col,
		Direction: dir,
	})
}
