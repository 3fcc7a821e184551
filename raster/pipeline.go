package raster

import (
	math "github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/yanchith/rusterizer/image"
)

// Options configures a Pipeline.
type Options struct {
	// CullFace selects which winding(s) are discarded before
	// scan-conversion. The zero value, CullNone, draws every triangle.
	CullFace CullFace
}

// Pipeline holds the fixed-function state (currently just face culling)
// shared across DrawTriangles calls. It carries no buffers of its own;
// those are passed in per call.
type Pipeline struct {
	opts Options
}

// NewPipeline returns a Pipeline configured by opts.
func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{opts: opts}
}

// Options returns the pipeline's configuration.
func (p *Pipeline) Options() Options {
	return p.opts
}

// DrawTriangles rasterizes attrs, a flat buffer of per-vertex attributes
// taken three at a time, into color and depth. Any trailing attrs not
// forming a full triangle are ignored, with a warning logged through
// Logger.
//
// For each triangle, DrawTriangles:
//
//  1. calls prog.Vertex on each of the three attributes to obtain a
//     clip-space position and a varying record;
//  2. computes the clip-space face normal (before the homogeneous
//     divide) and discards the triangle per p.Options().CullFace;
//  3. perspective-divides each clip position; a non-positive w skips the
//     whole triangle;
//  4. maps the three NDC positions to screen space;
//  5. walks the triangle's screen-space bounding box, testing each pixel
//     center's barycentric coordinates against the triangle;
//  6. for covered pixels, blends screen position and the varying record
//     affinely, depth-tests (strictly less than the current sample) at
//     the row-flipped write-back coordinate (height-1-y) against depth,
//     and on success calls prog.Fragment and writes the result to color.
func DrawTriangles[A any, V Interpolant[V]](p *Pipeline, prog Program[A, V], attrs []A, color *image.ColorImage, depth *image.DepthImage) {
	n := len(attrs) / 3
	if rem := len(attrs) % 3; rem != 0 {
		Logger().Warn("raster: attribute buffer is not a multiple of 3, dropping trailing attributes",
			"len", len(attrs), "dropped", rem)
	}

	width, height := color.Dimensions()

	for i := 0; i < n; i++ {
		a0, a1, a2 := attrs[3*i], attrs[3*i+1], attrs[3*i+2]

		clip0, v0 := prog.Vertex(a0)
		clip1, v1 := prog.Vertex(a1)
		clip2, v2 := prog.Vertex(a2)

		normal := FaceNormal(
			ms3.Vec{X: clip0.X, Y: clip0.Y, Z: clip0.Z},
			ms3.Vec{X: clip1.X, Y: clip1.Y, Z: clip1.Z},
			ms3.Vec{X: clip2.X, Y: clip2.Y, Z: clip2.Z},
		)
		if shouldCull(normal, p.opts.CullFace) {
			continue
		}

		ndc0, invW0, ok0 := HomogeneousDivide(clip0)
		ndc1, invW1, ok1 := HomogeneousDivide(clip1)
		ndc2, invW2, ok2 := HomogeneousDivide(clip2)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		s0 := ViewportMap(ndc0, invW0, width, height)
		s1 := ViewportMap(ndc1, invW1, width, height)
		s2 := ViewportMap(ndc2, invW2, width, height)

		minX, minY, maxX, maxY := BoundingBox(s0, s1, s2, width, height)
		pa := ms2.Vec{X: s0.X, Y: s0.Y}
		pb := ms2.Vec{X: s1.X, Y: s1.Y}
		pc := ms2.Vec{X: s2.X, Y: s2.Y}

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				center := ms2.Vec{X: float32(x) + 0.5, Y: float32(y) + 0.5}
				bary, ok := Barycentric(center, pa, pb, pc)
				if !ok || bary[0] < 0 || bary[1] < 0 || bary[2] < 0 {
					continue
				}

				screen := s0.Blend([2]ScreenPosition{s1, s2}, bary)
				yf := height - 1 - y
				if screen.Z >= depth.At(x, yf) {
					continue
				}

				varying := v0.Blend([2]V{v1, v2}, bary)
				out := clampColor(prog.Fragment(screen, varying))

				depth.Set(x, yf, screen.Z)
				color.Set(x, yf, out)
			}
		}
	}
}

func clampColor(c [4]float32) [4]uint8 {
	var out [4]uint8
	for i, v := range c {
		out[i] = uint8(math.Max(0, math.Min(1, v)) * 255)
	}
	return out
}
