package terrain

import (
	"testing"

	"github.com/lixenwraith/block-walker/constant"
)

// TestBuildWorldChunkCount verifies the fixed (2*RenderDistance)^2 grid
func TestBuildWorldChunkCount(t *testing.T) {
	w := BuildWorld(SineField{})

	want := (2 * constant.RenderDistance) * (2 * constant.RenderDistance)
	if len(w.Chunks) != want {
		t.Errorf("Expected %d chunks, got %d", want, len(w.Chunks))
	}
}

// TestBuildWorldBlockTotal verifies 36 chunks x 144 columns = 5184 blocks
func TestBuildWorldBlockTotal(t *testing.T) {
	w := BuildWorld(SineField{})

	want := (2 * constant.RenderDistance) * (2 * constant.RenderDistance) *
		constant.ChunkSize * constant.ChunkSize
	if got := w.BlockCount(); got != want {
		t.Errorf("Expected %d blocks, got %d", want, got)
	}
}

// TestBuildWorldChunkRange verifies every chunk coordinate appears exactly once in [-RD, RD)
func TestBuildWorldChunkRange(t *testing.T) {
	w := BuildWorld(SineField{})

	seen := make(map[ChunkCoord]bool)
	for _, c := range w.Chunks {
		if c.Coord.X < -constant.RenderDistance || c.Coord.X >= constant.RenderDistance ||
			c.Coord.Z < -constant.RenderDistance || c.Coord.Z >= constant.RenderDistance {
			t.Errorf("Chunk coord %v outside [-%d,%d)", c.Coord, constant.RenderDistance, constant.RenderDistance)
		}
		if seen[c.Coord] {
			t.Errorf("Chunk coord %v generated twice", c.Coord)
		}
		seen[c.Coord] = true
	}
}

// TestBuildWorldDeterministic verifies two assemblies produce identical terrain
func TestBuildWorldDeterministic(t *testing.T) {
	a := BuildWorld(SineField{})
	b := BuildWorld(SineField{})

	for i := range a.Chunks {
		ba, bb := a.Chunks[i].Blocks, b.Chunks[i].Blocks
		for j := range ba {
			if ba[j] != bb[j] {
				t.Fatalf("chunk %d block %d differs: %+v vs %+v", i, j, ba[j], bb[j])
			}
		}
	}
}
