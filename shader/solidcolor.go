package shader

import "github.com/yanchith/rusterizer/raster"

// SolidColorVertex is the per-vertex attribute for SolidColorProgram: a
// model-space position, nothing else.
type SolidColorVertex struct {
	Position [3]float32
}

// SolidColorProgram renders every covered fragment with the same color,
// regardless of triangle shape.
type SolidColorProgram struct {
	MVP   Mat4
	Color [4]float32
}

// Vertex transforms Position by MVP. There is nothing to vary, so it
// returns raster.Empty.
func (p SolidColorProgram) Vertex(v SolidColorVertex) (raster.Vec4, raster.Empty) {
	clip := p.MVP.MulVec4([4]float32{v.Position[0], v.Position[1], v.Position[2], 1})
	return raster.Vec4{X: clip[0], Y: clip[1], Z: clip[2], W: clip[3]}, raster.Empty{}
}

// Fragment returns the configured color unconditionally.
func (p SolidColorProgram) Fragment(_ raster.ScreenPosition, _ raster.Empty) [4]float32 {
	return p.Color
}
