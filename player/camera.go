package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/block-walker/constant"
	"github.com/lixenwraith/block-walker/input"
)

// Camera is the free-look first-person camera. Position and orientation
// are owned here exclusively and mutated once per tick. There is no
// collision: the camera passes through terrain at a fixed altitude band.
type Camera struct {
	Position mgl64.Vec3
	Yaw      float64 // rotation about the vertical axis, radians
	Pitch    float64 // clamped to ±PitchLimit
}

// NewCamera places the camera above the origin looking down -Z.
func NewCamera() *Camera {
	return &Camera{
		Position: mgl64.Vec3{0, constant.BaseElevation + constant.EyeHeight, 0},
		Yaw:      math.Pi, // face the -Z half of the grid
	}
}

// Tick integrates one intent snapshot. dt is in nominal ticks and
// defaults to 1: movement is per-tick constant, so faster displays move
// the camera faster, preserved deliberately behind this one parameter.
func (c *Camera) Tick(in input.Intent, dt float64) {
	c.Yaw += in.LookYaw
	c.Pitch += in.LookPitch
	c.clampPitch()

	if !in.Moving {
		return
	}

	// Horizontal movement relative to yaw only; pitch never bleeds into
	// displacement and there is no vertical motion
	forward := mgl64.Vec3{math.Sin(c.Yaw), 0, math.Cos(c.Yaw)}
	right := mgl64.Vec3{math.Sin(c.Yaw + math.Pi/2), 0, math.Cos(c.Yaw + math.Pi/2)}

	step := constant.MoveSpeed * dt
	delta := forward.Mul(-in.MoveZ * step).Add(right.Mul(in.MoveX * step))
	c.Position = c.Position.Add(delta)
}

func (c *Camera) clampPitch() {
	if c.Pitch > constant.PitchLimit {
		c.Pitch = constant.PitchLimit
	} else if c.Pitch < -constant.PitchLimit {
		c.Pitch = -constant.PitchLimit
	}
}

// ViewDir is the full look direction including pitch, yaw-then-pitch
// order so the view never rolls sideways.
func (c *Camera) ViewDir() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	return mgl64.Vec3{
		math.Sin(c.Yaw) * cp,
		math.Sin(c.Pitch),
		math.Cos(c.Yaw) * cp,
	}
}

// ToView transforms a world-space point into camera space: translate by
// the camera position, rotate by -yaw about Y, then -pitch about X.
// In camera space +Z is the view direction.
func (c *Camera) ToView(p mgl64.Vec3) mgl64.Vec3 {
	v := p.Sub(c.Position)

	sy, cy := math.Sincos(-c.Yaw)
	x := cy*v.X() + sy*v.Z()
	z := -sy*v.X() + cy*v.Z()
	y := v.Y()

	sp, cp := math.Sincos(c.Pitch)
	y2 := cp*y - sp*z
	z2 := sp*y + cp*z

	return mgl64.Vec3{x, y2, z2}
}
