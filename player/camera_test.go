package player

import (
	"math"
	"testing"

	"github.com/lixenwraith/block-walker/constant"
	"github.com/lixenwraith/block-walker/input"
)

// TestPitchClampUp verifies pitch never exceeds +π/2 under any delta sequence
func TestPitchClampUp(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 100; i++ {
		c.Tick(input.Intent{LookPitch: 0.3}, 1)
		if c.Pitch > constant.PitchLimit || c.Pitch < -constant.PitchLimit {
			t.Fatalf("Pitch %v escaped clamp after %d ticks", c.Pitch, i+1)
		}
	}
	if c.Pitch != constant.PitchLimit {
		t.Errorf("Expected pitch saturated at %v, got %v", constant.PitchLimit, c.Pitch)
	}
}

// TestPitchClampDown verifies the lower bound and clamping after mixed deltas
func TestPitchClampDown(t *testing.T) {
	c := NewCamera()
	deltas := []float64{-2.0, 0.5, -3.0, -0.1, 1.0, -5.0}
	for _, d := range deltas {
		c.Tick(input.Intent{LookPitch: d}, 1)
		if math.Abs(c.Pitch) > constant.PitchLimit {
			t.Fatalf("Pitch %v escaped clamp", c.Pitch)
		}
	}
	if c.Pitch != -constant.PitchLimit {
		t.Errorf("Expected pitch saturated at %v, got %v", -constant.PitchLimit, c.Pitch)
	}
}

// TestDiagonalDisplacementMagnitude verifies diagonal speed equals axis-aligned speed
func TestDiagonalDisplacementMagnitude(t *testing.T) {
	inv := 1 / math.Sqrt2

	axis := NewCamera()
	axis.Tick(input.Intent{MoveZ: -1, Moving: true}, 1)
	axisDist := axis.Position.Sub(NewCamera().Position).Len()

	diag := NewCamera()
	diag.Tick(input.Intent{MoveX: inv, MoveZ: -inv, Moving: true}, 1)
	diagDist := diag.Position.Sub(NewCamera().Position).Len()

	if math.Abs(axisDist-diagDist) > 1e-12 {
		t.Errorf("Axis displacement %v != diagonal displacement %v", axisDist, diagDist)
	}
	if math.Abs(axisDist-constant.MoveSpeed) > 1e-12 {
		t.Errorf("Expected displacement %v per tick, got %v", constant.MoveSpeed, axisDist)
	}
}

// TestMovementYawRelative verifies forward motion follows the yaw direction
func TestMovementYawRelative(t *testing.T) {
	c := NewCamera()
	c.Yaw = 0 // forward = (0,0,1)
	start := c.Position

	c.Tick(input.Intent{MoveZ: -1, Moving: true}, 1)
	d := c.Position.Sub(start)
	if math.Abs(d.X()) > 1e-12 || math.Abs(d.Z()-constant.MoveSpeed) > 1e-12 {
		t.Errorf("Expected +Z displacement at yaw 0, got %v", d)
	}

	c.Yaw = math.Pi / 2 // forward = (1,0,0)
	start = c.Position
	c.Tick(input.Intent{MoveZ: -1, Moving: true}, 1)
	d = c.Position.Sub(start)
	if math.Abs(d.X()-constant.MoveSpeed) > 1e-12 || math.Abs(d.Z()) > 1e-12 {
		t.Errorf("Expected +X displacement at yaw π/2, got %v", d)
	}
}

// TestNoVerticalMovement verifies altitude never changes regardless of pitch
func TestNoVerticalMovement(t *testing.T) {
	c := NewCamera()
	y0 := c.Position.Y()

	c.Tick(input.Intent{LookPitch: -1.0}, 1)
	for i := 0; i < 50; i++ {
		c.Tick(input.Intent{MoveZ: -1, Moving: true}, 1)
	}
	if c.Position.Y() != y0 {
		t.Errorf("Expected fixed altitude %v, got %v", y0, c.Position.Y())
	}
}

// TestIdleTickNoDrift verifies an empty intent leaves the camera untouched
func TestIdleTickNoDrift(t *testing.T) {
	c := NewCamera()
	pos, yaw, pitch := c.Position, c.Yaw, c.Pitch
	for i := 0; i < 10; i++ {
		c.Tick(input.Intent{}, 1)
	}
	if c.Position != pos || c.Yaw != yaw || c.Pitch != pitch {
		t.Error("Camera drifted with no input")
	}
}

// TestTickDeltaScaling verifies dt scales displacement linearly
func TestTickDeltaScaling(t *testing.T) {
	a := NewCamera()
	a.Tick(input.Intent{MoveZ: -1, Moving: true}, 2)
	b := NewCamera()
	b.Tick(input.Intent{MoveZ: -1, Moving: true}, 1)
	b.Tick(input.Intent{MoveZ: -1, Moving: true}, 1)

	if a.Position.Sub(b.Position).Len() > 1e-12 {
		t.Errorf("dt=2 position %v != two dt=1 ticks %v", a.Position, b.Position)
	}
}

// TestToViewForwardMapsToPlusZ verifies the view transform puts the look target dead ahead
func TestToViewForwardMapsToPlusZ(t *testing.T) {
	c := NewCamera()
	c.Yaw = 0.7
	c.Pitch = -0.3

	target := c.Position.Add(c.ViewDir().Mul(5))
	v := c.ToView(target)
	if math.Abs(v.X()) > 1e-12 || math.Abs(v.Y()) > 1e-12 {
		t.Errorf("Look target off-axis in view space: %v", v)
	}
	if math.Abs(v.Z()-5) > 1e-12 {
		t.Errorf("Expected depth 5, got %v", v.Z())
	}
}
