// Package ecs provides ECS adapters for squares.
//
// The primary adapter is [NewDonburiSlider], which turns slide commands from
// a squares.InputHandler into [Donburi] events. Subscribe to [SlideEventType]
// in your ECS systems to receive them.
//
// Usage:
//
//	slider := ecs.NewDonburiSlider(world)
//	input := squares.NewInputHandler(w, grid, slider, 1, 1)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
