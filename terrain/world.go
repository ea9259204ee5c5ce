package terrain

import (
	"github.com/lixenwraith/block-walker/constant"
)

// World is the fixed chunk grid generated once at startup and immutable
// thereafter. There is no loading or unloading at runtime.
type World struct {
	Chunks []*Chunk
}

// BuildWorld assembles the (2*RenderDistance)^2 chunk grid around the
// origin, cx and cz each ranging over [-RenderDistance, RenderDistance).
// Every chunk shares the one grass material at render time regardless of
// block tags.
func BuildWorld(src HeightSource) *World {
	b := &Builder{Source: src}
	return buildWorld(b)
}

func buildWorld(b *Builder) *World {
	side := 2 * constant.RenderDistance
	w := &World{Chunks: make([]*Chunk, 0, side*side)}
	for cx := -constant.RenderDistance; cx < constant.RenderDistance; cx++ {
		for cz := -constant.RenderDistance; cz < constant.RenderDistance; cz++ {
			w.Chunks = append(w.Chunks, b.Build(cx, cz))
		}
	}
	return w
}

// BlockCount is the total number of materialized blocks.
func (w *World) BlockCount() int {
	n := 0
	for _, c := range w.Chunks {
		n += len(c.Blocks)
	}
	return n
}
