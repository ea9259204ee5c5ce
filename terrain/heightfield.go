package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/block-walker/constant"
)

// HeightSource computes the terrain surface height at a world column.
// Implementations must be pure: same (x,z) always yields the same value.
type HeightSource interface {
	HeightAt(x, z int) float64
}

// SineField is the default height source: a 3-octave sum of products of
// sines and cosines. Smooth and periodic rather than pseudo-random, with
// no seed, so the same world regenerates identically every run.
// Output is bounded by ±constant.HeightBound.
type SineField struct{}

func (SineField) HeightAt(x, z int) float64 {
	fx, fz := float64(x), float64(z)
	return math.Sin(constant.OctaveFreq1*fx)*math.Cos(constant.OctaveFreq1*fz)*constant.OctaveAmp1 +
		math.Sin(constant.OctaveFreq2*fx)*math.Cos(constant.OctaveFreq2*fz)*constant.OctaveAmp2 +
		math.Sin(constant.OctaveFreq3*fx)*math.Cos(constant.OctaveFreq3*fz)*constant.OctaveAmp3
}

// PerlinField is the alternate height source, seeded gradient noise
// rescaled into the same ±constant.HeightBound band as SineField so the
// rest of the pipeline is source-agnostic.
type PerlinField struct {
	noise *perlin.Perlin
}

func NewPerlinField(seed int64) *PerlinField {
	return &PerlinField{
		noise: perlin.NewPerlin(constant.PerlinAlpha, constant.PerlinBeta, constant.PerlinOctaves, seed),
	}
}

func (p *PerlinField) HeightAt(x, z int) float64 {
	// Noise2D returns roughly [-1,1]
	n := p.noise.Noise2D(float64(x)*constant.PerlinScale, float64(z)*constant.PerlinScale)
	if n > 1 {
		n = 1
	} else if n < -1 {
		n = -1
	}
	return n * constant.HeightBound
}

// Elevation quantizes a column height to its block Y coordinate:
// floor(height + BaseElevation). With the default field this stays in
// a positive band around y=8.
func Elevation(src HeightSource, x, z int) int {
	return int(math.Floor(src.HeightAt(x, z) + constant.BaseElevation))
}
