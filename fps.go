package squares

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugOverlay shows FPS, TPS and the previous frame's draw stats in the
// top-left corner. The text is redrawn every ~0.5 seconds.
type DebugOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

// NewDebugOverlay creates an overlay with its own backing image.
func NewDebugOverlay() *DebugOverlay {
	// 160x64 fits four lines of debug text.
	return &DebugOverlay{img: ebiten.NewImage(160, 64)}
}

// Update refreshes the overlay text when due.
func (d *DebugOverlay) Update(dt float64, stats FrameStats) {
	d.lastUpdate += dt
	if d.lastUpdate < 0.5 {
		return
	}
	d.lastUpdate = 0

	d.img.Clear()
	// Semi-transparent background for readability
	d.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(d.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nSprites: %d\nOutlines: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), stats.Sprites, stats.Outlines))
}

// Draw draws the overlay onto screen.
func (d *DebugOverlay) Draw(screen *ebiten.Image) {
	screen.DrawImage(d.img, nil)
}
