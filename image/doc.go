// Package image provides the two pixel-buffer formats the rasterizer reads
// and writes: an 8-bit RGBA color buffer and a 32-bit float depth buffer.
//
// Both types share the same addressing convention — index = y*width + x —
// and the same lifecycle: constructed with a fill value, mutated in place
// by the caller or by raster.DrawTriangles, and discarded by the owner.
// Out-of-bounds pixel access is a programmer error and panics; a
// construction call given an undersized buffer returns an error instead,
// since the caller may be recovering from untrusted input (a malformed
// texture file, say).
package image
