package shader

import "github.com/yanchith/rusterizer/raster"

// VertexColorVertex is the per-vertex attribute for VertexColorProgram:
// a model-space position plus an RGBA color.
type VertexColorVertex struct {
	Position [3]float32
	Color    [4]float32
}

// VertexColorProgram interpolates each vertex's color affinely across
// the triangle it belongs to.
type VertexColorProgram struct {
	MVP Mat4
}

// Vertex transforms Position by MVP and threads Color as the varying.
func (p VertexColorProgram) Vertex(v VertexColorVertex) (raster.Vec4, raster.Vec4) {
	clip := p.MVP.MulVec4([4]float32{v.Position[0], v.Position[1], v.Position[2], 1})
	color := raster.Vec4{X: v.Color[0], Y: v.Color[1], Z: v.Color[2], W: v.Color[3]}
	return raster.Vec4{X: clip[0], Y: clip[1], Z: clip[2], W: clip[3]}, color
}

// Fragment returns the blended vertex color unchanged.
func (p VertexColorProgram) Fragment(_ raster.ScreenPosition, v raster.Vec4) [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}
