package event

// Type discriminates raw device events
type Type uint8

const (
	TypeNone Type = iota

	// TypeKey is a key-down with a printable rune (WASD movement,
	// digit hotbar selection). Terminals deliver no key-up; held state
	// is reconstructed by the aggregator's latch.
	TypeKey

	// TypeEscape releases mouse capture
	TypeEscape

	// TypeQuit requests a clean exit (Ctrl+C / Ctrl+Q)
	TypeQuit

	// TypeMouseMove carries an absolute mouse position; the aggregator
	// derives deltas and gates them on capture state
	TypeMouseMove

	// TypeMouseClick requests mouse capture (pointer-lock analogue)
	TypeMouseClick

	// TypePadAxis carries a gamepad axis deflection in [-1,1]
	TypePadAxis

	// TypePadButton carries a gamepad button transition
	TypePadButton

	// TypeSlotSelect sets the hotbar slot directly, bypassing the
	// digit-key path (presentation-layer slot click)
	TypeSlotSelect

	// TypeResize carries new surface dimensions
	TypeResize
)

// DeviceEvent is one raw input occurrence. Pure data, no device handles,
// so producers on any goroutine can construct one.
type DeviceEvent struct {
	Type Type

	Key rune // TypeKey

	X, Y int // TypeMouseMove/TypeMouseClick position, TypeResize dimensions

	Axis  int     // TypePadAxis index (0-3)
	Value float64 // TypePadAxis deflection

	Button  int  // TypePadButton index
	Pressed bool // TypePadButton state

	Slot int // TypeSlotSelect index (0-8)
}
