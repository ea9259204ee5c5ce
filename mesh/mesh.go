package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Quad is one axis-aligned cube face: four corners in world space plus
// the outward normal. Corner winding is counter-clockwise seen from
// outside the cube.
type Quad struct {
	V      [4]mgl64.Vec3
	Normal mgl64.Vec3
}

// Center returns the face centroid, used for depth sorting.
func (q *Quad) Center() mgl64.Vec3 {
	return q.V[0].Add(q.V[1]).Add(q.V[2]).Add(q.V[3]).Mul(0.25)
}

// Mesh is a merged face buffer. A chunk renders as a single Mesh so the
// rasterizer walks one quad slice per chunk instead of one per block.
type Mesh struct {
	Quads []Quad
}

// New returns an empty mesh with capacity for n quads.
func New(n int) *Mesh {
	return &Mesh{Quads: make([]Quad, 0, n)}
}

// Half-extent of a unit cube.
const half = 0.5

// cubeFaces enumerates the six faces of a unit cube centered at the
// origin: corner offsets and outward normal per face.
var cubeFaces = [6]Quad{
	// +Y top
	{V: [4]mgl64.Vec3{{-half, half, -half}, {-half, half, half}, {half, half, half}, {half, half, -half}}, Normal: mgl64.Vec3{0, 1, 0}},
	// -Y bottom
	{V: [4]mgl64.Vec3{{-half, -half, -half}, {half, -half, -half}, {half, -half, half}, {-half, -half, half}}, Normal: mgl64.Vec3{0, -1, 0}},
	// +X east
	{V: [4]mgl64.Vec3{{half, -half, -half}, {half, half, -half}, {half, half, half}, {half, -half, half}}, Normal: mgl64.Vec3{1, 0, 0}},
	// -X west
	{V: [4]mgl64.Vec3{{-half, -half, -half}, {-half, -half, half}, {-half, half, half}, {-half, half, -half}}, Normal: mgl64.Vec3{-1, 0, 0}},
	// +Z south
	{V: [4]mgl64.Vec3{{-half, -half, half}, {half, -half, half}, {half, half, half}, {-half, half, half}}, Normal: mgl64.Vec3{0, 0, 1}},
	// -Z north
	{V: [4]mgl64.Vec3{{-half, -half, -half}, {-half, half, -half}, {half, half, -half}, {half, -half, -half}}, Normal: mgl64.Vec3{0, 0, -1}},
}

// FacesPerCube is the quad count AppendCube contributes.
const FacesPerCube = len(cubeFaces)

// AppendCube adds the six faces of a unit cube centered at c.
func (m *Mesh) AppendCube(c mgl64.Vec3) {
	for _, f := range cubeFaces {
		q := Quad{Normal: f.Normal}
		for i, v := range f.V {
			q.V[i] = v.Add(c)
		}
		m.Quads = append(m.Quads, q)
	}
}

// Merge concatenates parts into a single mesh. Returns nil when there is
// nothing to merge; callers treat that as the degraded single-cube path.
func Merge(parts []*Mesh) *Mesh {
	if len(parts) == 0 {
		return nil
	}
	total := 0
	for _, p := range parts {
		total += len(p.Quads)
	}
	merged := New(total)
	for _, p := range parts {
		merged.Quads = append(merged.Quads, p.Quads...)
	}
	return merged
}
