package constant

// Terrain layout
const (
	// ChunkSize is the number of block columns per chunk edge
	ChunkSize = 12

	// RenderDistance is the chunk radius around the origin; the world is a
	// fixed (2*RenderDistance)^2 grid generated once at startup
	RenderDistance = 3

	// BaseElevation keeps the terrain in a positive band around y=8
	BaseElevation = 8.0
)

// Height field octaves: sum of products of sines/cosines, smooth and
// periodic, same world every run. Amplitudes sum to 5.25.
const (
	OctaveFreq1 = 0.1
	OctaveAmp1  = 3.0
	OctaveFreq2 = 0.2
	OctaveAmp2  = 1.5
	OctaveFreq3 = 0.4
	OctaveAmp3  = 0.75

	// HeightBound is the analytic bound of the height field (3 + 1.5 + 0.75)
	HeightBound = OctaveAmp1 + OctaveAmp2 + OctaveAmp3
)

// Perlin source defaults (alternate generator)
const (
	PerlinAlpha   = 2.0
	PerlinBeta    = 2.0
	PerlinOctaves = 3
	PerlinScale   = 1.0 / 48.0
)
