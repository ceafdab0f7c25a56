// Package squares is the entity and swipe-input layer of a 2D tile board
// built on [Ebitengine].
//
// # Objects
//
// A [GameObject] is a kinematic body (position, velocity, acceleration) with
// a collision [Shape], a primary [Sprite], a flash overlay sprite and its own
// [Animator]. Each tick, [GameObject.Update] advances the animator,
// integrates acceleration into velocity and velocity into position, and moves
// the shape and sprites to match:
//
//	world := squares.NewWorld(480, 800)
//	tile := squares.NewGameObject(world, 40, 40, 64, 64, img, color, squares.ShapeRectangle)
//	tile.FadeIn(0.5, 0)
//	tile.EffectXY(squares.Vec2{X: 40, Y: 900}, squares.Vec2{X: 40, Y: 40}, 0.4, 0.1)
//
// Shapes come from the world's [ShapePool]. [GameObject.Reset] gives the
// shape back; [GameObject.Init] takes one again, so objects can be reused
// instead of reallocated.
//
// # World coordinates
//
// The world's origin is the bottom-left corner and Y grows upward.
// [Batch] projects world space onto an ebiten image, and [InputHandler]
// converts device coordinates back.
//
// # Swipes
//
// [InputHandler] hit-tests presses against a [Grid] and classifies the
// press/release pair with [Classify]. A swipe that started on a cell and
// left the [GestureDeadZone] is sent to a [Slider]:
//
//	input := squares.NewInputHandler(world, grid, squares.SliderFunc(func(c squares.Cell, d squares.Direction) {
//		board.slide(c, d)
//	}), 1, 1)
//
// # Rendering
//
// [GameObject.Render] draws through the [SpriteBatch] and [ShapeDrawer]
// interfaces with an explicit [RenderConfig]. With RenderConfig.Debug set it
// ends the batch, outlines the shape and begins the batch again.
//
// [Scene] and [Run] wire objects, input and rendering into an ebiten game
// loop. The ecs subpackage forwards slides into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package squares
