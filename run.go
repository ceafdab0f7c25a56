package squares

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int  // window width in device pixels
	Height  int  // window height in device pixels
	ShowFPS bool // draw the debug overlay even outside debug mode
	TPS     int  // ticks per second; zero keeps ebiten's default of 60
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
}

func (g *gameShell) Update() error {
	g.scene.Update()
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Layout(outsideWidth, outsideHeight)
}

// Run opens a window and runs the scene until the window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	scene.showFPS = cfg.ShowFPS
	scene.overlay = NewDebugOverlay()
	if err := ebiten.RunGame(&gameShell{scene: scene}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
