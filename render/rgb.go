package render

// RGB is a 24-bit color triplet. The terminal surface converts it to
// tcell's color model at flush time.
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}

	// Sky gradient endpoints
	SkyHigh = RGB{R: 96, G: 160, B: 224}
	SkyLow  = RGB{R: 168, G: 204, B: 232}

	// Face palette keyed off the quad normal
	GrassTop  = RGB{R: 92, G: 176, B: 64}
	DirtSide  = RGB{R: 134, G: 96, B: 60}
	StoneDown = RGB{R: 110, G: 110, B: 116}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies all channels by factor (0.0-1.0)
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}
