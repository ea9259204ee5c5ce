package render

import (
	"github.com/lixenwraith/block-walker/constant"
	"github.com/lixenwraith/block-walker/engine"
)

// TerminalRenderer composes the frame: sky and world through the
// rasterizer, arm overlay, HUD row, then the blit to the terminal.
type TerminalRenderer struct {
	surface *Surface
	buf     *Buffer
	raster  *Rasterizer
}

func NewTerminalRenderer(surface *Surface) *TerminalRenderer {
	width, height := surface.Size()
	return &TerminalRenderer{
		surface: surface,
		buf:     NewBuffer(width, height),
		raster:  NewRasterizer(),
	}
}

func (r *TerminalRenderer) Resize(width, height int) {
	r.buf.Resize(width, height)
	r.surface.Sync()
}

func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	_, height := r.buf.Size()
	viewH := height - constant.HUDRows
	if viewH < 1 {
		return
	}

	r.raster.Draw(r.buf, ctx.Camera, ctx.World, viewH)
	DrawArm(r.buf, ctx.Arm, viewH)
	DrawHUD(r.buf, ctx.Health(), ctx.Slot(), ctx.Captured(), ctx.FPS())

	r.surface.Flush(r.buf)
}
