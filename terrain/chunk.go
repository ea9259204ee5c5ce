package terrain

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/block-walker/constant"
	"github.com/lixenwraith/block-walker/mesh"
)

// ChunkCoord identifies a ChunkSize x ChunkSize region of columns.
type ChunkCoord struct {
	X, Z int
}

// Chunk is one generated region: its top-layer blocks and the merged
// face buffer the renderer draws in a single pass.
type Chunk struct {
	Coord  ChunkCoord
	Blocks []Block
	Mesh   *mesh.Mesh

	// Degraded is set when geometry merging was skipped and Mesh holds
	// only the first block's cube. Non-crashing fallback, not an error.
	Degraded bool
}

// Builder generates chunks from a height source.
type Builder struct {
	Source HeightSource

	// DisableMerge forces the degraded single-cube path, standing in for
	// an unavailable merge utility.
	DisableMerge bool
}

// Build enumerates the chunk's ChunkSize^2 columns, computes each
// column's elevation, and merges one unit cube per column into a single
// mesh. Every top block is tagged grass.
func (b *Builder) Build(cx, cz int) *Chunk {
	const n = constant.ChunkSize * constant.ChunkSize

	c := &Chunk{
		Coord:  ChunkCoord{X: cx, Z: cz},
		Blocks: make([]Block, 0, n),
	}

	cubes := make([]*mesh.Mesh, 0, n)
	for lx := 0; lx < constant.ChunkSize; lx++ {
		for lz := 0; lz < constant.ChunkSize; lz++ {
			wx := cx*constant.ChunkSize + lx
			wz := cz*constant.ChunkSize + lz
			elev := Elevation(b.Source, wx, wz)

			c.Blocks = append(c.Blocks, Block{X: wx, Y: elev, Z: wz, Kind: BlockGrass})

			cube := mesh.New(mesh.FacesPerCube)
			cube.AppendCube(mgl64.Vec3{float64(wx), float64(elev), float64(wz)})
			cubes = append(cubes, cube)
		}
	}

	if b.DisableMerge {
		c.Mesh = cubes[0]
		c.Degraded = true
		return c
	}

	if merged := mesh.Merge(cubes); merged != nil {
		c.Mesh = merged
	} else {
		c.Mesh = cubes[0]
		c.Degraded = true
	}
	return c
}
