package raster

import (
	math "github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// FaceNormal returns the (unnormalized) normal of the triangle a,b,c in
// whatever space they're given, via cross(b-a, c-a). Its sign, combined
// with winding order, is what CullFace tests against.
func FaceNormal(a, b, c ms3.Vec) ms3.Vec {
	return ms3.Cross(ms3.Sub(b, a), ms3.Sub(c, a))
}

// HomogeneousDivide perspective-divides a clip-space position, returning
// its NDC coordinates and the reciprocal of the original w. A
// non-positive w returns ok=false; the caller should skip the triangle
// rather than divide by a value behind the eye or at it.
func HomogeneousDivide(clip Vec4) (ndc ms3.Vec, invW float32, ok bool) {
	if clip.W <= 0 {
		return ms3.Vec{}, 0, false
	}
	invW = 1 / clip.W
	ndc = ms3.Vec{X: clip.X * invW, Y: clip.Y * invW, Z: clip.Z * invW}
	return ndc, invW, true
}

// ViewportMap maps an NDC position to screen space: X,Y span [0,width]
// and [0,height] with no Y flip (that happens at write-back time, see
// DrawTriangles), and Z is clamped to [-1,1] and remapped to the [0,1]
// depth-buffer convention. W carries invW for optional
// perspective-correct blending.
func ViewportMap(ndc ms3.Vec, invW float32, width, height int) ScreenPosition {
	z := math.Max(-1, math.Min(1, ndc.Z))
	return ScreenPosition{
		X: (ndc.X + 1) * 0.5 * float32(width),
		Y: (ndc.Y + 1) * 0.5 * float32(height),
		Z: z*0.5 + 0.5,
		W: invW,
	}
}

// BoundingBox returns the inclusive pixel bounding box of the triangle
// formed by a, b, c, clamped to [0,width) x [0,height).
func BoundingBox(a, b, c ScreenPosition, width, height int) (minX, minY, maxX, maxY int) {
	minXf := math.Min(a.X, math.Min(b.X, c.X))
	minYf := math.Min(a.Y, math.Min(b.Y, c.Y))
	maxXf := math.Max(a.X, math.Max(b.X, c.X))
	maxYf := math.Max(a.Y, math.Max(b.Y, c.Y))

	minX = clampInt(int(math.Floor(minXf)), 0, width-1)
	minY = clampInt(int(math.Floor(minYf)), 0, height-1)
	maxX = clampInt(int(math.Ceil(maxXf)), 0, width-1)
	maxY = clampInt(int(math.Ceil(maxYf)), 0, height-1)
	return minX, minY, maxX, maxY
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Barycentric computes the barycentric coordinates of pixel center p
// with respect to triangle a,b,c via a single 2D cross product, rather
// than the three half-plane edge tests of a Pineda-style rasterizer:
//
//	ab := b - a; ac := c - a; pa := a - p
//	ortho := cross((ac.x, ab.x, pa.x), (ac.y, ab.y, pa.y))
//
// The triangle is degenerate when the resulting ortho.z has magnitude
// below one (screen-space area under half a pixel); Barycentric reports
// that via ok=false. Otherwise it returns (1-u-v, v, u) where u =
// ortho.x/ortho.z and v = ortho.y/ortho.z, the weights for a, b, c
// respectively.
func Barycentric(p, a, b, c ms2.Vec) (bary [3]float32, ok bool) {
	ab := ms2.Sub(b, a)
	ac := ms2.Sub(c, a)
	pa := ms2.Sub(a, p)

	ortho := ms3.Cross(
		ms3.Vec{X: ac.X, Y: ab.X, Z: pa.X},
		ms3.Vec{X: ac.Y, Y: ab.Y, Z: pa.Y},
	)
	if math.Abs(ortho.Z) < 1 {
		return [3]float32{}, false
	}
	u := ortho.X / ortho.Z
	v := ortho.Y / ortho.Z
	return [3]float32{1 - u - v, v, u}, true
}
