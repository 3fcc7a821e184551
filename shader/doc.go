// Package shader collects a handful of concrete raster.Program
// implementations: flat-shaded, per-vertex-color, and textured (both
// affine and perspective-correct UV). They double as worked examples
// of the Program/Interpolant contract and as a small affine matrix
// library (translate/scale/ortho/perspective/multiply) for building
// the MVP matrix each expects.
package shader
