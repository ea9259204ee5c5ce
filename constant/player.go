package constant

import (
	"math"
	"time"
)

// Camera movement and look
const (
	// MoveSpeed is the horizontal displacement per tick. Fixed per-tick,
	// not delta-time scaled: faster displays move the camera faster.
	MoveSpeed = 0.15

	// MouseSensitivity converts captured mouse deltas to radians
	MouseSensitivity = 0.002

	// StickSensitivity converts right-stick deflection to radians per tick
	StickSensitivity = 0.05

	// StickDeadZone is the minimum deflection before a stick axis registers
	StickDeadZone = 0.1

	// PitchLimit clamps pitch to straight up / straight down
	PitchLimit = math.Pi / 2

	// EyeHeight is the fixed camera altitude above the terrain band
	EyeHeight = 12.0
)

// Arm swing oscillator
const (
	// ArmSwingSpeed is the phase rate while moving
	ArmSwingSpeed = 0.15

	// ArmIdleDecay is the geometric speed decay per idle tick
	ArmIdleDecay = 0.9

	// ArmSwingAmp is the primary rotation amplitude (radians)
	ArmSwingAmp = 0.3

	// ArmLiftAmp is the secondary rotation amplitude (radians)
	ArmLiftAmp = 0.1

	// ArmLiftRatio is the secondary oscillator phase ratio
	ArmLiftRatio = 0.5
)

// Keyboard latch
const (
	// KeyHoldTTL is how long a movement key counts as held after its last
	// key-down. Terminals deliver no key-up; auto-repeat refreshes the latch.
	KeyHoldTTL = 200 * time.Millisecond
)
