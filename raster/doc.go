// Package raster implements a single-threaded CPU triangle rasterizer
// driven by a user-supplied, generic vertex/fragment shader program.
//
// # Pipeline
//
// DrawTriangles consumes a flat attribute buffer (three entries per
// triangle), invokes Program.Vertex once per vertex to obtain a
// clip-space position and a varying record, optionally culls the
// triangle, maps it to screen space, and scan-converts it by testing
// barycentric coordinates of every pixel in the triangle's bounding box.
// Covered pixels are depth-tested (GL_LESS, strict) against the depth
// image before Program.Fragment is invoked and the result written back.
//
// # Barycentric test
//
// Unlike an edge-function rasterizer, coverage here is computed from a
// single 2D cross product per candidate pixel:
//
//	ab := b - a; ac := c - a; pa := a - p
//	ortho := cross((ac.x, ab.x, pa.x), (ac.y, ab.y, pa.y))
//
// A triangle is degenerate (and skipped) when |ortho.z| < 1 — i.e. its
// screen-space area is below half a pixel. Otherwise the barycentric
// triple is (1-(ortho.x+ortho.y)/ortho.z, ortho.y/ortho.z, ortho.x/ortho.z),
// and the sample is inside the triangle iff all three components are
// non-negative.
//
// # Interpolation
//
// Screen position and the user's varying record are blended affinely
// with the barycentric weights — no perspective-correct divide is
// applied to interpolants by default. Package-level PerspectiveBlend*
// helpers are provided for callers that want perspective-correct
// interpolation inside their own Interpolant's Blend method;
// DrawTriangles never calls them directly.
//
// # Depth convention
//
// Depth is stored remapped from NDC [-1,1] to [0,1] (0 near, 1 far).
// The conventional clear value is 1.0 — see image.NewDepthImageFilled.
package raster
