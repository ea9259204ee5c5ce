package engine

import (
	"time"

	"github.com/lixenwraith/block-walker/constant"
	"github.com/lixenwraith/block-walker/event"
)

// Renderer draws one frame from context state. The terminal rasterizer
// implements this; tests substitute a recorder.
type Renderer interface {
	RenderFrame(ctx *GameContext)
	Resize(width, height int)
}

// StepPlayer emits the footstep cue. Nil-able: audio is optional and
// init failure degrades to silence.
type StepPlayer interface {
	PlayStep()
}

// Loop is the fixed-cadence frame driver. Each tick consumes the device
// event queue, folds events into the input aggregator, advances the
// camera and arm, renders, and updates published UI state. Producers
// (terminal poller, gamepad reader) push into ctx.Events from their own
// goroutines; everything else is main-loop exclusive.
type Loop struct {
	ctx      *GameContext
	renderer Renderer
	audio    StepPlayer
	fps      *FPSCounter
}

func NewLoop(ctx *GameContext, renderer Renderer, audio StepPlayer) *Loop {
	return &Loop{
		ctx:      ctx,
		renderer: renderer,
		audio:    audio,
		fps:      NewFPSCounter(ctx.Clock),
	}
}

// Run drives ticks at FrameUpdateInterval until a quit intent arrives.
func (l *Loop) Run() {
	ticker := time.NewTicker(constant.FrameUpdateInterval)
	defer ticker.Stop()

	for range ticker.C {
		if !l.Tick() {
			return
		}
	}
}

// Tick executes one frame and reports whether the loop should continue.
func (l *Loop) Tick() bool {
	ctx := l.ctx
	ctx.FrameNumber.Add(1)

	// Drain the queue in one batch so a frame sees a consistent set of
	// events. Resize is a surface concern, not an input intent.
	for _, ev := range ctx.Events.Consume() {
		if ev.Type == event.TypeResize {
			ctx.Width, ctx.Height = ev.X, ev.Y
			l.renderer.Resize(ev.X, ev.Y)
			continue
		}
		// Clicks on the HUD row select a hotbar slot and never engage
		// mouse capture; the layout is fixed so the mapping is static
		if ev.Type == event.TypeMouseClick && ev.Y == ctx.Height-1 {
			if slot := hotbarSlot(ev.X); slot >= 0 {
				ctx.Input.Apply(event.DeviceEvent{Type: event.TypeSlotSelect, Slot: slot})
			}
			continue
		}
		ctx.Input.Apply(ev)
	}

	in := ctx.Input.Snapshot()
	if in.Quit {
		return false
	}

	ctx.Camera.Tick(in, 1)
	ctx.Arm.Tick(in.Moving)
	if l.audio != nil && ctx.Arm.StepEdge() {
		l.audio.PlayStep()
	}

	l.renderer.RenderFrame(ctx)

	if v, ok := l.fps.Frame(); ok {
		ctx.SetFPS(v)
	}
	ctx.SetSlot(in.Slot)
	ctx.SetCaptured(ctx.Input.Captured())
	return true
}

// hotbarSlot maps a HUD-row column to a slot index, or -1 outside the bar.
func hotbarSlot(x int) int {
	rel := x - constant.HotbarOffset
	if rel < 0 {
		return -1
	}
	slot := rel / constant.HotbarCellWidth
	if slot >= constant.HotbarSlots {
		return -1
	}
	return slot
}
