package player

import (
	"math"
	"testing"

	"github.com/lixenwraith/block-walker/constant"
)

// TestArmMovingSpeed verifies movement forces the constant swing rate
func TestArmMovingSpeed(t *testing.T) {
	var a Arm
	a.Tick(true)
	if a.Speed() != constant.ArmSwingSpeed {
		t.Errorf("Expected speed %v while moving, got %v", constant.ArmSwingSpeed, a.Speed())
	}
}

// TestArmIdleDecay verifies speed after n idle ticks equals S·0.9^n
func TestArmIdleDecay(t *testing.T) {
	var a Arm
	a.Tick(true)
	s := a.Speed()

	for n := 1; n <= 40; n++ {
		a.Tick(false)
		want := s * math.Pow(constant.ArmIdleDecay, float64(n))
		if math.Abs(a.Speed()-want) > 1e-15 {
			t.Fatalf("Tick %d: expected speed %v, got %v", n, want, a.Speed())
		}
	}
}

// TestArmDecayNeverZero verifies the exponential approach never reaches zero
func TestArmDecayNeverZero(t *testing.T) {
	var a Arm
	a.Tick(true)
	for n := 0; n < 1000; n++ {
		a.Tick(false)
		if a.Speed() == 0 {
			t.Fatalf("Speed reached exact zero after %d idle ticks", n+1)
		}
	}
}

// TestArmPhaseAccumulation verifies phase advances by the current speed each tick
func TestArmPhaseAccumulation(t *testing.T) {
	var a Arm
	ticks := 10
	for i := 0; i < ticks; i++ {
		a.Tick(true)
	}
	wantPhase := constant.ArmSwingSpeed * float64(ticks)
	want := math.Sin(wantPhase) * constant.ArmSwingAmp
	if math.Abs(a.Swing()-want) > 1e-12 {
		t.Errorf("Expected swing %v after %d ticks, got %v", want, ticks, a.Swing())
	}
}

// TestArmSwingAmplitudes verifies the two rotations stay within their amplitudes
func TestArmSwingAmplitudes(t *testing.T) {
	var a Arm
	for i := 0; i < 500; i++ {
		a.Tick(true)
		if math.Abs(a.Swing()) > constant.ArmSwingAmp {
			t.Fatalf("Swing %v exceeds amplitude", a.Swing())
		}
		if math.Abs(a.Lift()) > constant.ArmLiftAmp {
			t.Fatalf("Lift %v exceeds amplitude", a.Lift())
		}
	}
}

// TestArmStepEdge verifies footstep edges fire while moving and not while idle
func TestArmStepEdge(t *testing.T) {
	var a Arm
	edges := 0
	for i := 0; i < 100; i++ {
		a.Tick(true)
		if a.StepEdge() {
			edges++
		}
	}
	// Phase advances 0.15/tick; 100 ticks = 15 radians ≈ 4.77π, so the
	// primary sine crosses zero 4 times
	if edges < 3 || edges > 6 {
		t.Errorf("Expected ~4 step edges over 100 moving ticks, got %d", edges)
	}

	for i := 0; i < 200; i++ {
		a.Tick(false)
		if a.StepEdge() {
			t.Fatal("Step edge fired while idle")
		}
	}
}
