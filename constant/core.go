package constant

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FPSWindow is the minimum sampling window before a new FPS value is published
	FPSWindow = 500 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the device event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// UI State
const (
	// MaxHealth is the fixed heart count; no damage model exists in this scope
	MaxHealth = 10

	// HotbarSlots is the number of selectable hotbar slots (indices 0..8)
	HotbarSlots = 9

	// HotbarOffset is the fixed column of the first hotbar cell on the
	// HUD row: hearts at 1..MaxHealth plus a two-cell gap. Shared by the
	// HUD painter and the slot-click mapping.
	HotbarOffset = 1 + MaxHealth + 2

	// HotbarCellWidth is the width of one hotbar cell ("[n]" or " n ")
	HotbarCellWidth = 3
)
