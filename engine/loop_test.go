package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/block-walker/constant"
	"github.com/lixenwraith/block-walker/event"
	"github.com/lixenwraith/block-walker/terrain"
)

type recordingRenderer struct {
	frames   int
	resizedW int
	resizedH int
}

func (r *recordingRenderer) RenderFrame(ctx *GameContext) { r.frames++ }
func (r *recordingRenderer) Resize(w, h int)              { r.resizedW, r.resizedH = w, h }

type countingPlayer struct {
	steps int
}

func (p *countingPlayer) PlayStep() { p.steps++ }

func newTestLoop() (*Loop, *GameContext, *recordingRenderer, *countingPlayer) {
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := NewGameContext(&terrain.World{}, clock, 80, 24)
	renderer := &recordingRenderer{}
	audio := &countingPlayer{}
	return NewLoop(ctx, renderer, audio), ctx, renderer, audio
}

// TestLoopTickMovesCamera verifies one held key moves the camera and renders a frame
func TestLoopTickMovesCamera(t *testing.T) {
	l, ctx, renderer, _ := newTestLoop()
	ctx.Events.Push(event.DeviceEvent{Type: event.TypeKey, Key: 'w'})

	startZ := ctx.Camera.Position.Z()
	if !l.Tick() {
		t.Fatal("Tick requested quit unexpectedly")
	}

	if renderer.frames != 1 {
		t.Errorf("Expected 1 rendered frame, got %d", renderer.frames)
	}
	if ctx.FrameNumber.Load() != 1 {
		t.Errorf("Expected frame number 1, got %d", ctx.FrameNumber.Load())
	}
	if ctx.Camera.Position.Z() >= startZ {
		t.Errorf("Expected forward movement to decrease Z at yaw=pi, got %v -> %v",
			startZ, ctx.Camera.Position.Z())
	}
}

// TestLoopQuit verifies a quit event stops the loop before rendering
func TestLoopQuit(t *testing.T) {
	l, ctx, renderer, _ := newTestLoop()
	ctx.Events.Push(event.DeviceEvent{Type: event.TypeQuit})

	if l.Tick() {
		t.Fatal("Expected Tick to report quit")
	}
	if renderer.frames != 0 {
		t.Errorf("Expected no frame after quit, got %d", renderer.frames)
	}
}

// TestLoopResize verifies resize events route to the renderer, not the aggregator
func TestLoopResize(t *testing.T) {
	l, ctx, renderer, _ := newTestLoop()
	ctx.Events.Push(event.DeviceEvent{Type: event.TypeResize, X: 120, Y: 40})

	l.Tick()

	if renderer.resizedW != 120 || renderer.resizedH != 40 {
		t.Errorf("Expected renderer resize 120x40, got %dx%d", renderer.resizedW, renderer.resizedH)
	}
	if ctx.Width != 120 || ctx.Height != 40 {
		t.Errorf("Expected context dimensions 120x40, got %dx%d", ctx.Width, ctx.Height)
	}
}

// TestLoopPublishesUIState verifies slot and capture state surface through the context
func TestLoopPublishesUIState(t *testing.T) {
	l, ctx, _, _ := newTestLoop()
	ctx.Events.Push(event.DeviceEvent{Type: event.TypeKey, Key: '3'})
	ctx.Events.Push(event.DeviceEvent{Type: event.TypeMouseClick, X: 40, Y: 12})

	l.Tick()

	if ctx.Slot() != 2 {
		t.Errorf("Expected published slot 2, got %d", ctx.Slot())
	}
	if !ctx.Captured() {
		t.Error("Expected capture flag published after click")
	}
}

// TestLoopHotbarClick verifies a click on the HUD row selects the slot
// under the cursor and does not engage mouse capture
func TestLoopHotbarClick(t *testing.T) {
	l, ctx, _, _ := newTestLoop()

	// Third slot cell's middle column on the bottom row (height 24)
	x := constant.HotbarOffset + 2*constant.HotbarCellWidth + 1
	ctx.Events.Push(event.DeviceEvent{Type: event.TypeMouseClick, X: x, Y: 23})
	l.Tick()

	if ctx.Slot() != 2 {
		t.Errorf("Expected hotbar click to select slot 2, got %d", ctx.Slot())
	}
	if ctx.Captured() {
		t.Error("Expected HUD-row click to leave capture disengaged")
	}

	// Outside the bar: no selection change, still no capture
	ctx.Events.Push(event.DeviceEvent{Type: event.TypeMouseClick, X: 0, Y: 23})
	l.Tick()

	if ctx.Slot() != 2 {
		t.Errorf("Expected slot unchanged by an off-bar click, got %d", ctx.Slot())
	}
	if ctx.Captured() {
		t.Error("Expected off-bar HUD click to leave capture disengaged")
	}
}

// TestLoopFootsteps verifies footstep cues fire at swing zero crossings while moving
func TestLoopFootsteps(t *testing.T) {
	l, ctx, _, audio := newTestLoop()

	// The mock clock never advances, so one key press stays latched
	ctx.Events.Push(event.DeviceEvent{Type: event.TypeKey, Key: 'w'})
	for i := 0; i < 100; i++ {
		l.Tick()
	}

	// Phase advances 0.15/tick; 100 ticks cross zero roughly 4 times
	if audio.steps < 3 || audio.steps > 6 {
		t.Errorf("Expected ~4 footsteps over 100 moving ticks, got %d", audio.steps)
	}
}
