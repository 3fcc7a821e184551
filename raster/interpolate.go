package raster

// Perspective-correct variants of the affine blends in types.go. The
// pipeline never calls these — DrawTriangles always blends varyings and
// screen position affinely (see doc.go). They exist for callers whose
// Program wants perspective-correct attributes (say, texture UVs) and is
// willing to compute them itself inside its varying's Blend method, from
// the barycentric triple and per-vertex reciprocal-w values the varying
// carries (see shader.PerspectiveUV).
//
// The formula: given barycentric weights b and per-vertex 1/w values w,
//
//	result = (v0*b0*w0 + v1*b1*w1 + v2*b2*w2) / (b0*w0 + b1*w1 + b2*w2)
//
// which falls back to the plain affine blend when the denominator is
// zero (for instance w0 == w1 == w2 == 0).

// PerspectiveBlendFloat32 perspective-corrects a scalar attribute.
func PerspectiveBlendFloat32(v0, v1, v2 float32, bary [3]float32, w0, w1, w2 float32) float32 {
	oneOverW := bary[0]*w0 + bary[1]*w1 + bary[2]*w2
	if oneOverW == 0 {
		return v0*bary[0] + v1*bary[1] + v2*bary[2]
	}
	return (v0*bary[0]*w0 + v1*bary[1]*w1 + v2*bary[2]*w2) / oneOverW
}

// PerspectiveBlendVec2 perspective-corrects a 2-component attribute, e.g.
// texture coordinates.
func PerspectiveBlendVec2(v0, v1, v2 Vec2, bary [3]float32, w0, w1, w2 float32) Vec2 {
	return Vec2{
		X: PerspectiveBlendFloat32(v0.X, v1.X, v2.X, bary, w0, w1, w2),
		Y: PerspectiveBlendFloat32(v0.Y, v1.Y, v2.Y, bary, w0, w1, w2),
	}
}

// PerspectiveBlendVec3 perspective-corrects a 3-component attribute, e.g.
// a surface normal.
func PerspectiveBlendVec3(v0, v1, v2 Vec3, bary [3]float32, w0, w1, w2 float32) Vec3 {
	return Vec3{
		X: PerspectiveBlendFloat32(v0.X, v1.X, v2.X, bary, w0, w1, w2),
		Y: PerspectiveBlendFloat32(v0.Y, v1.Y, v2.Y, bary, w0, w1, w2),
		Z: PerspectiveBlendFloat32(v0.Z, v1.Z, v2.Z, bary, w0, w1, w2),
	}
}

// PerspectiveBlendVec4 perspective-corrects a 4-component attribute, e.g.
// a vertex color.
func PerspectiveBlendVec4(v0, v1, v2 Vec4, bary [3]float32, w0, w1, w2 float32) Vec4 {
	return Vec4{
		X: PerspectiveBlendFloat32(v0.X, v1.X, v2.X, bary, w0, w1, w2),
		Y: PerspectiveBlendFloat32(v0.Y, v1.Y, v2.Y, bary, w0, w1, w2),
		Z: PerspectiveBlendFloat32(v0.Z, v1.Z, v2.Z, bary, w0, w1, w2),
		W: PerspectiveBlendFloat32(v0.W, v1.W, v2.W, bary, w0, w1, w2),
	}
}
