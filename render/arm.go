package render

import (
	"math"

	"github.com/lixenwraith/block-walker/constant"
	"github.com/lixenwraith/block-walker/player"
)

var (
	armSkin   = RGB{R: 222, G: 171, B: 127}
	armSleeve = RGB{R: 58, G: 122, B: 190}
)

// DrawArm paints the first-person arm overlay in the lower right of
// the viewport, displaced by the swing oscillator. Drawn after the
// world so it always sits in front of geometry.
func DrawArm(buf *Buffer, arm *player.Arm, viewH int) {
	width, _ := buf.Size()
	if width < 20 || viewH < 8 {
		return
	}

	// Oscillator output mapped to cell offsets
	swing := int(math.Round(arm.Swing() / constant.ArmSwingAmp * 3))
	lift := int(math.Round(arm.Lift() / constant.ArmLiftAmp * 1))

	armW := width / 10
	if armW < 4 {
		armW = 4
	}
	armH := viewH / 5
	if armH < 3 {
		armH = 3
	}

	x0 := width*3/4 + swing
	y0 := viewH - armH + 1 + lift

	for dy := 0; dy < armH; dy++ {
		// Narrow toward the top so the arm reads as a forearm
		inset := (armH - 1 - dy) / 2
		color := armSkin
		if dy >= armH-2 {
			color = armSleeve
		}
		for dx := inset; dx < armW-inset; dx++ {
			sy := y0 + dy
			if sy >= 0 && sy < viewH {
				buf.SetBg(x0+dx, sy, color)
			}
		}
	}
}
