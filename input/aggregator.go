package input

import (
	"math"
	"time"

	"github.com/lixenwraith/block-walker/constant"
	"github.com/lixenwraith/block-walker/event"
)

// Clock is the time source for the key latch. Satisfied by
// engine.MonotonicTimeProvider and engine.MockTimeProvider.
type Clock interface {
	Now() time.Time
}

// Settings are the tunable input scale factors, defaulted from constant.
type Settings struct {
	MouseSensitivity float64
	StickSensitivity float64
	StickDeadZone    float64
	KeyHoldTTL       time.Duration
}

// DefaultSettings returns the stock sensitivities.
func DefaultSettings() Settings {
	return Settings{
		MouseSensitivity: constant.MouseSensitivity,
		StickSensitivity: constant.StickSensitivity,
		StickDeadZone:    constant.StickDeadZone,
		KeyHoldTTL:       constant.KeyHoldTTL,
	}
}

// Aggregator owns all raw device state: the held-key latch, the gamepad
// axis/button cache, mouse capture, and the hotbar selection. It is the
// single mutable input context; nothing here is ambient or global.
// All mutation happens on the consumer goroutine via Apply/Drain.
type Aggregator struct {
	clock    Clock
	settings Settings

	// Key latch: movement rune -> held-until deadline. Terminals deliver
	// no key-up, so auto-repeat refreshes the latch and expiry clears it.
	held map[rune]time.Time

	// Gamepad cache. Axes 0/1 are the left stick (movement), 2/3 the
	// right stick (look). Buttons are cached per tick but otherwise
	// unused in this scope.
	padAxes    [4]float64
	padButtons map[int]bool

	// Mouse capture (pointer-lock analogue) and delta derivation
	captured     bool
	lastMouseX   int
	lastMouseY   int
	haveMousePos bool

	// Accumulated look deltas, drained by Snapshot
	pendingYaw   float64
	pendingPitch float64

	slot int
	quit bool
}

// NewAggregator creates an aggregator with default settings.
func NewAggregator(clock Clock) *Aggregator {
	return NewAggregatorWith(clock, DefaultSettings())
}

// NewAggregatorWith creates an aggregator with explicit settings.
func NewAggregatorWith(clock Clock, s Settings) *Aggregator {
	return &Aggregator{
		clock:      clock,
		settings:   s,
		held:       make(map[rune]time.Time),
		padButtons: make(map[int]bool),
	}
}

// Drain consumes every pending device event from the queue and applies
// it. Called once at the start of each tick, before Snapshot.
func (a *Aggregator) Drain(q *event.Queue) {
	for _, ev := range q.Consume() {
		a.Apply(ev)
	}
}

// Apply folds one raw device event into the aggregator state.
func (a *Aggregator) Apply(ev event.DeviceEvent) {
	switch ev.Type {
	case event.TypeKey:
		a.applyKey(ev.Key)

	case event.TypeEscape:
		a.captured = false
		a.haveMousePos = false

	case event.TypeQuit:
		a.quit = true

	case event.TypeMouseClick:
		if !a.captured {
			a.captured = true
			// Discard the stale position so engagement doesn't jump
			a.haveMousePos = false
		}

	case event.TypeMouseMove:
		a.applyMouseMove(ev.X, ev.Y)

	case event.TypePadAxis:
		if ev.Axis >= 0 && ev.Axis < len(a.padAxes) {
			a.padAxes[ev.Axis] = ev.Value
		}

	case event.TypePadButton:
		a.padButtons[ev.Button] = ev.Pressed

	case event.TypeSlotSelect:
		if ev.Slot >= 0 && ev.Slot < constant.HotbarSlots {
			a.slot = ev.Slot
		}
	}
}

func (a *Aggregator) applyKey(r rune) {
	switch r {
	case 'w', 'a', 's', 'd':
		a.held[r] = a.clock.Now().Add(a.settings.KeyHoldTTL)
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		// Edge-triggered: 1-based key to 0-based slot
		a.slot = int(r - '1')
	}
}

func (a *Aggregator) applyMouseMove(x, y int) {
	if !a.captured {
		// Mode gate: mouse look is a no-op without capture, but the
		// position still seeds delta derivation for later engagement
		a.lastMouseX, a.lastMouseY = x, y
		a.haveMousePos = true
		return
	}
	if a.haveMousePos {
		dx := float64(x - a.lastMouseX)
		dy := float64(y - a.lastMouseY)
		a.pendingYaw += -dx * a.settings.MouseSensitivity
		a.pendingPitch += -dy * a.settings.MouseSensitivity
	}
	a.lastMouseX, a.lastMouseY = x, y
	a.haveMousePos = true
}

// keyHeld reports whether a movement key's latch is still live.
func (a *Aggregator) keyHeld(r rune) bool {
	deadline, ok := a.held[r]
	return ok && a.clock.Now().Before(deadline)
}

// Snapshot produces the per-tick intent and resets transient deltas.
// Raw held/cache state persists across ticks until updated or expired.
func (a *Aggregator) Snapshot() Intent {
	in := Intent{Slot: a.slot, Quit: a.quit}

	// Continuous axes: keyboard units, stick OR'd in per axis.
	// View-space +X projects toward screen left, so the visual-right
	// strafe ('d', stick right) contributes -X
	x, z := 0.0, 0.0
	if a.keyHeld('a') {
		x += 1
	}
	if a.keyHeld('d') {
		x -= 1
	}
	if a.keyHeld('w') {
		z -= 1
	}
	if a.keyHeld('s') {
		z += 1
	}
	if x == 0 && math.Abs(a.padAxes[0]) > a.settings.StickDeadZone {
		x = -sign(a.padAxes[0])
	}
	if z == 0 && math.Abs(a.padAxes[1]) > a.settings.StickDeadZone {
		z = sign(a.padAxes[1])
	}

	if x != 0 || z != 0 {
		// Normalize so diagonal movement matches axis-aligned speed
		mag := math.Hypot(x, z)
		in.MoveX = x / mag
		in.MoveZ = z / mag
		in.Moving = true
	}

	// Look: drained mouse deltas plus right stick, which applies
	// regardless of capture at a coarser scale
	in.LookYaw = a.pendingYaw
	in.LookPitch = a.pendingPitch
	if math.Abs(a.padAxes[2]) > a.settings.StickDeadZone {
		in.LookYaw += -a.padAxes[2] * a.settings.StickSensitivity
	}
	if math.Abs(a.padAxes[3]) > a.settings.StickDeadZone {
		in.LookPitch += -a.padAxes[3] * a.settings.StickSensitivity
	}
	a.pendingYaw = 0
	a.pendingPitch = 0

	return in
}

// Captured reports the pointer-lock analogue state.
func (a *Aggregator) Captured() bool {
	return a.captured
}

// Slot returns the current hotbar selection.
func (a *Aggregator) Slot() int {
	return a.slot
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
