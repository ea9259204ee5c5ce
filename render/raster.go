package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/block-walker/constant"
	"github.com/lixenwraith/block-walker/mesh"
	"github.com/lixenwraith/block-walker/player"
	"github.com/lixenwraith/block-walker/terrain"
)

// projectedQuad is one world quad mapped to screen space, retained for
// the depth sort.
type projectedQuad struct {
	x     [4]float64
	y     [4]float64
	depth float64
	color RGB
}

// Rasterizer projects the world's merged chunk meshes into the cell
// buffer: backface cull, near clip, perspective divide, painter's
// algorithm far to near, flat shading plus depth fog. No Z buffer;
// depth sorting on quad centers is sufficient for axis-aligned cube
// faces at this scale.
type Rasterizer struct {
	light mgl64.Vec3
	quads []projectedQuad
}

func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		light: mgl64.Vec3{0.3, 0.9, 0.3}.Normalize(),
	}
}

// Draw renders every chunk mesh into the top viewH rows of the buffer.
func (r *Rasterizer) Draw(buf *Buffer, cam *player.Camera, world *terrain.World, viewH int) {
	width, _ := buf.Size()
	if width <= 0 || viewH <= 0 {
		return
	}

	r.drawSky(buf, width, viewH)

	r.quads = r.quads[:0]
	for _, chunk := range world.Chunks {
		if chunk.Mesh == nil {
			continue
		}
		for i := range chunk.Mesh.Quads {
			r.project(cam, &chunk.Mesh.Quads[i], width, viewH)
		}
	}

	// Painter's algorithm: far quads first so near ones overdraw them
	sort.Slice(r.quads, func(i, j int) bool {
		return r.quads[i].depth > r.quads[j].depth
	})

	for i := range r.quads {
		r.fill(buf, &r.quads[i], width, viewH)
	}
}

func (r *Rasterizer) drawSky(buf *Buffer, width, viewH int) {
	for y := 0; y < viewH; y++ {
		t := float64(y) / float64(viewH)
		sky := Lerp(SkyHigh, SkyLow, t)
		for x := 0; x < width; x++ {
			buf.SetBg(x, y, sky)
		}
	}
}

// project appends the quad's screen-space form, or nothing when culled.
func (r *Rasterizer) project(cam *player.Camera, q *mesh.Quad, width, viewH int) {
	center := q.Center()

	// Cull faces pointing away from the camera
	if q.Normal.Dot(center.Sub(cam.Position)) >= 0 {
		return
	}

	cv := cam.ToView(center)
	if cv.Z() <= constant.NearClip {
		return
	}

	cx := float64(width) / 2.0
	cy := float64(viewH) / 2.0
	scale := float64(viewH) / 2.0

	var pq projectedQuad
	for i := 0; i < 4; i++ {
		v := cam.ToView(q.V[i])
		if v.Z() <= constant.NearClip {
			// Whole-quad rejection; unit cube faces are small enough
			// that per-edge clipping buys nothing visible
			return
		}
		invZ := constant.FocalLength / v.Z()
		pq.x[i] = cx - v.X()*invZ*constant.CellAspect*scale
		pq.y[i] = cy - v.Y()*invZ*scale
	}
	pq.depth = cv.Z()
	pq.color = shade(q.Normal, r.light, pq.depth)
	r.quads = append(r.quads, pq)
}

// shade applies flat directional lighting and depth fog toward the sky.
func shade(normal, light mgl64.Vec3, depth float64) RGB {
	base := faceColor(normal)

	diffuse := normal.Dot(light)
	if diffuse < 0 {
		diffuse = 0
	}
	lit := Scale(base, constant.Ambient+constant.DiffuseScale*diffuse)

	fog := depth / constant.FarFade
	if fog > 1 {
		fog = 1
	}
	return Lerp(lit, SkyLow, fog)
}

// faceColor picks the palette entry from the face orientation
func faceColor(normal mgl64.Vec3) RGB {
	switch {
	case normal.Y() > 0.5:
		return GrassTop
	case normal.Y() < -0.5:
		return StoneDown
	default:
		return DirtSide
	}
}

// fill scan-converts the convex screen quad: every cell whose center
// lies inside the polygon takes the quad's color.
func (r *Rasterizer) fill(buf *Buffer, pq *projectedQuad, width, viewH int) {
	minX := int(math.Floor(math.Min(math.Min(pq.x[0], pq.x[1]), math.Min(pq.x[2], pq.x[3]))))
	maxX := int(math.Ceil(math.Max(math.Max(pq.x[0], pq.x[1]), math.Max(pq.x[2], pq.x[3]))))
	minY := int(math.Floor(math.Min(math.Min(pq.y[0], pq.y[1]), math.Min(pq.y[2], pq.y[3]))))
	maxY := int(math.Ceil(math.Max(math.Max(pq.y[0], pq.y[1]), math.Max(pq.y[2], pq.y[3]))))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > width-1 {
		maxX = width - 1
	}
	if maxY > viewH-1 {
		maxY = viewH - 1
	}

	for sy := minY; sy <= maxY; sy++ {
		py := float64(sy) + 0.5
		for sx := minX; sx <= maxX; sx++ {
			if insideQuad(pq, float64(sx)+0.5, py) {
				buf.SetBg(sx, sy, pq.color)
			}
		}
	}
}

// insideQuad tests cell-center containment in a convex quad. Winding
// after projection is not fixed, so inside means all edge cross
// products share a sign.
func insideQuad(pq *projectedQuad, px, py float64) bool {
	pos, neg := false, false
	for i := 0; i < 4; i++ {
		j := (i + 1) & 3
		cross := (pq.x[j]-pq.x[i])*(py-pq.y[i]) - (pq.y[j]-pq.y[i])*(px-pq.x[i])
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}
