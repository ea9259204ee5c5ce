package player

import (
	"math"

	"github.com/lixenwraith/block-walker/constant"
)

// Arm is the first-person arm sway: a damped oscillator driven by
// whether the player is moving, cosmetic and independent of camera
// movement. Not physically simulated.
type Arm struct {
	phase float64
	speed float64

	// lastSin tracks the primary oscillator sign for footstep edges
	lastSin float64
}

// Tick advances the oscillator one frame. Moving forces the swing
// speed; idle decays it geometrically toward (but never reaching) zero.
func (a *Arm) Tick(moving bool) {
	if moving {
		a.speed = constant.ArmSwingSpeed
	} else {
		a.speed *= constant.ArmIdleDecay
	}
	a.lastSin = math.Sin(a.phase)
	a.phase += a.speed
}

// Swing is the primary rotation, sin(phase)·0.3.
func (a *Arm) Swing() float64 {
	return math.Sin(a.phase) * constant.ArmSwingAmp
}

// Lift is the secondary rotation, sin(phase·0.5)·0.1, giving the sway
// its asymmetry.
func (a *Arm) Lift() float64 {
	return math.Sin(a.phase*constant.ArmLiftRatio) * constant.ArmLiftAmp
}

// Speed exposes the current phase rate for tests and HUD debugging.
func (a *Arm) Speed() float64 {
	return a.speed
}

// StepEdge reports whether the primary oscillator crossed zero on the
// last tick while swinging at full rate — the footstep trigger.
func (a *Arm) StepEdge() bool {
	if a.speed < constant.ArmSwingSpeed {
		return false
	}
	return math.Signbit(a.lastSin) != math.Signbit(math.Sin(a.phase))
}
