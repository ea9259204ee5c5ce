package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/block-walker/constant"
)

var (
	hudHeart    = RGB{R: 230, G: 60, B: 60}
	hudDim      = RGB{R: 150, G: 150, B: 160}
	hudBright   = RGB{R: 240, G: 240, B: 245}
	hudSelected = RGB{R: 255, G: 210, B: 70}
	hudBg       = RGB{R: 24, G: 24, B: 30}
)

// DrawHUD paints the status row at the bottom of the buffer: hearts,
// hotbar with the selected slot highlighted, capture hint and the FPS
// readout.
func DrawHUD(buf *Buffer, health, slot int, captured bool, fps int) {
	width, height := buf.Size()
	y := height - 1
	if y < 0 {
		return
	}

	for x := 0; x < width; x++ {
		buf.Set(x, y, ' ', hudDim, hudBg)
	}

	buf.WriteString(1, y, strings.Repeat("♥", health), hudHeart)

	// Fixed layout so click-to-slot mapping stays valid at any health
	x := constant.HotbarOffset
	for i := 0; i < constant.HotbarSlots; i++ {
		label := fmt.Sprintf("%d", i+1)
		if i == slot {
			buf.WriteString(x, y, "["+label+"]", hudSelected)
		} else {
			buf.WriteString(x, y, " "+label+" ", hudDim)
		}
		x += constant.HotbarCellWidth
	}

	hint := "click to capture mouse"
	if captured {
		hint = "esc to release mouse"
	}
	buf.WriteString(x+2, y, hint, hudDim)

	fpsText := fmt.Sprintf("FPS %d", fps)
	buf.WriteString(width-len(fpsText)-1, y, fpsText, hudBright)
}
