package input

// Intent is the normalized per-tick input snapshot consumed by the
// camera controller and arm animator.
// Pure data struct with no device handles or engine dependencies
type Intent struct {
	// MoveX is strafe: +1 visual left, -1 visual right (view-space +X
	// projects toward screen left). MoveZ is -1 forward, +1 back.
	// The (MoveX, MoveZ) pair is normalized so diagonal movement is not
	// faster than axis-aligned movement.
	MoveX, MoveZ float64

	// LookYaw / LookPitch are accumulated look deltas for this tick, in
	// radians, already scaled per source (mouse vs stick) and signed.
	LookYaw, LookPitch float64

	// Moving is true when any movement axis is active
	Moving bool

	// Slot is the currently selected hotbar slot (0-8)
	Slot int

	// Quit requests a clean exit
	Quit bool
}
