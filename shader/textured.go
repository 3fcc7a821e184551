package shader

import (
	"github.com/yanchith/rusterizer/image"
	"github.com/yanchith/rusterizer/raster"
)

// TexturedVertex is the per-vertex attribute shared by TexturedProgram
// and TexturedPerspectiveProgram: a model-space position plus a texture
// coordinate.
type TexturedVertex struct {
	Position [3]float32
	UV       [2]float32
}

// TexturedProgram samples Texture using UV coordinates blended affinely
// across the triangle. Adequate for screen-aligned quads; distorts under
// perspective projection (see TexturedPerspectiveProgram).
type TexturedProgram struct {
	MVP     Mat4
	Texture *image.ColorImage
}

// Vertex transforms Position by MVP and threads UV as the varying.
func (p TexturedProgram) Vertex(v TexturedVertex) (raster.Vec4, raster.Vec2) {
	clip := p.MVP.MulVec4([4]float32{v.Position[0], v.Position[1], v.Position[2], 1})
	return raster.Vec4{X: clip[0], Y: clip[1], Z: clip[2], W: clip[3]}, raster.Vec2{X: v.UV[0], Y: v.UV[1]}
}

// Fragment nearest-samples Texture at the interpolated UV.
func (p TexturedProgram) Fragment(_ raster.ScreenPosition, uv raster.Vec2) [4]float32 {
	return p.Texture.SampleNearest(uv.X, uv.Y)
}

// PerspectiveUV is the varying for TexturedPerspectiveProgram: a UV
// coordinate plus the reciprocal of the vertex's clip-space w, carried
// so Blend can perspective-correct the UV instead of interpolating it
// affinely.
type PerspectiveUV struct {
	UV   raster.Vec2
	InvW float32
}

// Blend perspective-corrects UV via raster.PerspectiveBlendVec2 and
// blends InvW affinely, overriding the affine default every other
// Interpolant in this package uses.
func (p PerspectiveUV) Blend(other [2]PerspectiveUV, bary [3]float32) PerspectiveUV {
	uv := raster.PerspectiveBlendVec2(p.UV, other[0].UV, other[1].UV, bary, p.InvW, other[0].InvW, other[1].InvW)
	invW := p.InvW*bary[0] + other[0].InvW*bary[1] + other[1].InvW*bary[2]
	return PerspectiveUV{UV: uv, InvW: invW}
}

// TexturedPerspectiveProgram samples Texture using perspective-correct
// UV coordinates, avoiding the swimming/distortion TexturedProgram shows
// under a non-orthographic projection.
type TexturedPerspectiveProgram struct {
	MVP     Mat4
	Texture *image.ColorImage
}

// Vertex transforms Position by MVP and threads UV plus 1/w as the
// varying.
func (p TexturedPerspectiveProgram) Vertex(v TexturedVertex) (raster.Vec4, PerspectiveUV) {
	clip := p.MVP.MulVec4([4]float32{v.Position[0], v.Position[1], v.Position[2], 1})
	var invW float32
	if clip[3] != 0 {
		invW = 1 / clip[3]
	}
	return raster.Vec4{X: clip[0], Y: clip[1], Z: clip[2], W: clip[3]},
		PerspectiveUV{UV: raster.Vec2{X: v.UV[0], Y: v.UV[1]}, InvW: invW}
}

// Fragment nearest-samples Texture at the perspective-corrected UV.
func (p TexturedPerspectiveProgram) Fragment(_ raster.ScreenPosition, v PerspectiveUV) [4]float32 {
	return p.Texture.SampleNearest(v.UV.X, v.UV.Y)
}
