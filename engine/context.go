package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/block-walker/constant"
	"github.com/lixenwraith/block-walker/event"
	"github.com/lixenwraith/block-walker/input"
	"github.com/lixenwraith/block-walker/player"
	"github.com/lixenwraith/block-walker/terrain"
)

// GameContext owns all game state. Nothing here is ambient or global:
// lifetime and reset are explicit, and tests construct contexts in
// isolation.
//
// Thread-Safety:
//   - World/Camera/Arm/Input: main-loop exclusive after init
//   - Events: MPSC queue, producers push from any goroutine
//   - Published UI state: atomics, read by the HUD renderer and any
//     external presentation consumer
type GameContext struct {
	World  *terrain.World
	Camera *player.Camera
	Arm    *player.Arm
	Events *event.Queue
	Input  *input.Aggregator
	Clock  TimeProvider

	// FrameNumber increments once per tick
	FrameNumber atomic.Int64

	// Main-loop exclusive surface dimensions
	Width, Height int

	// Published state: health, hotbar slot, capture flag, FPS estimate.
	// Read-only from the presentation layer's perspective.
	health   atomic.Int32
	slot     atomic.Int32
	captured atomic.Bool
	fps      atomic.Int32
}

// NewGameContext wires a context around a built world.
// width/height are initial surface dimensions.
func NewGameContext(world *terrain.World, clock TimeProvider, width, height int) *GameContext {
	ctx := &GameContext{
		World:  world,
		Camera: player.NewCamera(),
		Arm:    &player.Arm{},
		Events: event.NewQueue(),
		Input:  input.NewAggregator(clock),
		Clock:  clock,
		Width:  width,
		Height: height,
	}
	// Constant in this scope; no damage model exists
	ctx.health.Store(constant.MaxHealth)
	return ctx
}

func (g *GameContext) Health() int   { return int(g.health.Load()) }
func (g *GameContext) Slot() int     { return int(g.slot.Load()) }
func (g *GameContext) SetSlot(s int) { g.slot.Store(int32(s)) }

func (g *GameContext) Captured() bool     { return g.captured.Load() }
func (g *GameContext) SetCaptured(c bool) { g.captured.Store(c) }

func (g *GameContext) FPS() int     { return int(g.fps.Load()) }
func (g *GameContext) SetFPS(v int) { g.fps.Store(int32(v)) }
