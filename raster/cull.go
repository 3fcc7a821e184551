package raster

import "github.com/soypat/glgl/math/ms3"

// CullFace selects which winding(s) of a triangle DrawTriangles discards
// before scan-conversion. Winding is determined in clip space, from the
// three vertices' (x, y, z) before the homogeneous divide: a triangle is
// front-facing when its vertices wind counter-clockwise.
type CullFace int

const (
	// CullNone draws every triangle regardless of winding.
	CullNone CullFace = iota
	// CullBack discards clockwise (back-facing) triangles.
	CullBack
	// CullFront discards counter-clockwise (front-facing) triangles.
	CullFront
	// CullFrontAndBack discards every triangle.
	CullFrontAndBack
)

// shouldCull reports whether a triangle with the given clip-space normal
// should be discarded under face. The normal's Z sign follows FaceNormal
// applied to the three vertices' clip-space (x, y, z), before the
// homogeneous divide: a negative Z indicates a clockwise, back-facing
// winding. A degenerate (exactly zero) normal is culled only under
// CullFrontAndBack, which discards every triangle.
func shouldCull(normal ms3.Vec, face CullFace) bool {
	switch face {
	case CullNone:
		return false
	case CullFrontAndBack:
		return true
	case CullBack:
		return normal.Z < 0
	case CullFront:
		return normal.Z > 0
	default:
		return false
	}
}
