package raster

import (
	"testing"

	"github.com/soypat/glgl/math/ms2"

	"github.com/yanchith/rusterizer/image"
)

func msVec2(x, y float32) ms2.Vec { return ms2.Vec{X: x, Y: y} }

// flatProgram draws every fragment the same solid color, threading no
// varying data (Empty).
type flatProgram struct {
	color [4]float32
}

func (p flatProgram) Vertex(a Vec4) (Vec4, Empty)                  { return a, Empty{} }
func (p flatProgram) Fragment(_ ScreenPosition, _ Empty) [4]float32 { return p.color }

// colorVaryingProgram threads a per-vertex Vec4 color as its varying,
// exercising affine blending across the triangle.
type colorVaryingProgram struct{}

func (colorVaryingProgram) Vertex(a [2]Vec4) (Vec4, Vec4) { return a[0], a[1] }
func (colorVaryingProgram) Fragment(_ ScreenPosition, v Vec4) [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

func fullscreenTriangle(z float32) []Vec4 {
	// A triangle that more than covers a small square viewport.
	return []Vec4{
		{X: -2, Y: -2, Z: z, W: 1},
		{X: 2, Y: -2, Z: z, W: 1},
		{X: 0, Y: 2, Z: z, W: 1},
	}
}

func TestDrawTrianglesFillsCoveredPixels(t *testing.T) {
	color := image.NewColorImage(8, 8)
	depth := image.NewDepthImageFilled(8, 8, 1.0)
	p := NewPipeline(Options{})

	DrawTriangles[Vec4, Empty](p, flatProgram{color: [4]float32{1, 0, 0, 1}}, fullscreenTriangle(0), color, depth)

	if got := color.At(4, 5); got != [4]uint8{255, 0, 0, 255} {
		t.Fatalf("At(4,5) = %v, want opaque red", got)
	}
	if got := depth.At(4, 5); got >= 1.0 {
		t.Fatalf("depth.At(4,5) = %v, want < 1.0 (written)", got)
	}
	if got := color.At(0, 0); got != [4]uint8{} {
		t.Fatalf("At(0,0) = %v, want untouched (outside triangle)", got)
	}
}

func TestDrawTrianglesDepthTestRejectsFartherFragment(t *testing.T) {
	color := image.NewColorImage(8, 8)
	depth := image.NewDepthImageFilled(8, 8, 1.0)
	p := NewPipeline(Options{})

	near := fullscreenTriangle(-0.5)
	far := fullscreenTriangle(0.5)

	DrawTriangles[Vec4, Empty](p, flatProgram{color: [4]float32{0, 1, 0, 1}}, near, color, depth)
	DrawTriangles[Vec4, Empty](p, flatProgram{color: [4]float32{1, 0, 0, 1}}, far, color, depth)

	if got := color.At(4, 5); got != [4]uint8{0, 255, 0, 255} {
		t.Fatalf("At(4,5) = %v, want the nearer green triangle to remain", got)
	}
}

func TestDrawTrianglesDepthTestAcceptsNearerFragment(t *testing.T) {
	color := image.NewColorImage(8, 8)
	depth := image.NewDepthImageFilled(8, 8, 1.0)
	p := NewPipeline(Options{})

	far := fullscreenTriangle(0.5)
	near := fullscreenTriangle(-0.5)

	DrawTriangles[Vec4, Empty](p, flatProgram{color: [4]float32{0, 1, 0, 1}}, far, color, depth)
	DrawTriangles[Vec4, Empty](p, flatProgram{color: [4]float32{1, 0, 0, 1}}, near, color, depth)

	if got := color.At(4, 5); got != [4]uint8{255, 0, 0, 255} {
		t.Fatalf("At(4,5) = %v, want the nearer red triangle to win", got)
	}
}

func TestDrawTrianglesSkipsNonPositiveW(t *testing.T) {
	color := image.NewColorImage(8, 8)
	depth := image.NewDepthImageFilled(8, 8, 1.0)
	p := NewPipeline(Options{})

	attrs := []Vec4{
		{X: -2, Y: -2, Z: 0, W: 1},
		{X: 2, Y: -2, Z: 0, W: 1},
		{X: 0, Y: 2, Z: 0, W: 0},
	}
	DrawTriangles[Vec4, Empty](p, flatProgram{color: [4]float32{1, 1, 1, 1}}, attrs, color, depth)

	if got := color.At(4, 5); got != [4]uint8{} {
		t.Fatalf("At(4,5) = %v, want untouched (triangle skipped for w<=0)", got)
	}
}

func TestDrawTrianglesDropsTrailingPartialTriangle(t *testing.T) {
	color := image.NewColorImage(8, 8)
	depth := image.NewDepthImageFilled(8, 8, 1.0)
	p := NewPipeline(Options{})

	attrs := append(fullscreenTriangle(0), Vec4{X: 0, Y: 0, Z: 0, W: 1})
	// Should not panic despite the trailing, incomplete triangle.
	DrawTriangles[Vec4, Empty](p, flatProgram{color: [4]float32{1, 0, 0, 1}}, attrs, color, depth)

	if got := color.At(4, 5); got != [4]uint8{255, 0, 0, 255} {
		t.Fatalf("At(4,5) = %v, want the complete leading triangle drawn", got)
	}
}

func TestDrawTrianglesCullBackDiscardsClockwiseWinding(t *testing.T) {
	color := image.NewColorImage(8, 8)
	depth := image.NewDepthImageFilled(8, 8, 1.0)
	p := NewPipeline(Options{CullFace: CullBack})

	// Reversed winding relative to fullscreenTriangle.
	attrs := []Vec4{
		{X: -2, Y: -2, Z: 0, W: 1},
		{X: 0, Y: 2, Z: 0, W: 1},
		{X: 2, Y: -2, Z: 0, W: 1},
	}
	DrawTriangles[Vec4, Empty](p, flatProgram{color: [4]float32{1, 0, 0, 1}}, attrs, color, depth)

	if got := color.At(4, 5); got != [4]uint8{} {
		t.Fatalf("At(4,5) = %v, want untouched (back-facing, culled)", got)
	}
}

func TestDrawTrianglesCullBackKeepsCounterClockwiseWinding(t *testing.T) {
	color := image.NewColorImage(8, 8)
	depth := image.NewDepthImageFilled(8, 8, 1.0)
	p := NewPipeline(Options{CullFace: CullBack})

	DrawTriangles[Vec4, Empty](p, flatProgram{color: [4]float32{1, 0, 0, 1}}, fullscreenTriangle(0), color, depth)

	if got := color.At(4, 5); got != [4]uint8{255, 0, 0, 255} {
		t.Fatalf("At(4,5) = %v, want drawn (front-facing, kept)", got)
	}
}

func TestDrawTrianglesCullFrontAndBackDiscardsEverything(t *testing.T) {
	color := image.NewColorImage(8, 8)
	depth := image.NewDepthImageFilled(8, 8, 1.0)
	p := NewPipeline(Options{CullFace: CullFrontAndBack})

	DrawTriangles[Vec4, Empty](p, flatProgram{color: [4]float32{1, 0, 0, 1}}, fullscreenTriangle(0), color, depth)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := color.At(x, y); got != ([4]uint8{}) {
				t.Fatalf("At(%d,%d) = %v, want untouched under CullFrontAndBack", x, y, got)
			}
		}
	}
}

func TestDrawTrianglesSkipsDegenerateTriangle(t *testing.T) {
	color := image.NewColorImage(8, 8)
	depth := image.NewDepthImageFilled(8, 8, 1.0)
	p := NewPipeline(Options{})

	attrs := []Vec4{
		{X: -2, Y: -2, Z: 0, W: 1},
		{X: -2, Y: -2, Z: 0, W: 1},
		{X: -2, Y: -2, Z: 0, W: 1},
	}
	DrawTriangles[Vec4, Empty](p, flatProgram{color: [4]float32{1, 0, 0, 1}}, attrs, color, depth)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := color.At(x, y); got != ([4]uint8{}) {
				t.Fatalf("At(%d,%d) = %v, want untouched for a degenerate triangle", x, y, got)
			}
		}
	}
}

func TestDrawTrianglesBlendsVertexColorVarying(t *testing.T) {
	color := image.NewColorImage(8, 8)
	depth := image.NewDepthImageFilled(8, 8, 1.0)
	p := NewPipeline(Options{})

	red := Vec4{X: 1, Y: 0, Z: 0, W: 1}
	green := Vec4{X: 0, Y: 1, Z: 0, W: 1}
	blue := Vec4{X: 0, Y: 0, Z: 1, W: 1}

	attrs := []Vec4{
		{X: -2, Y: -2, Z: 0, W: 1}, {X: 2, Y: -2, Z: 0, W: 1}, {X: 0, Y: 2, Z: 0, W: 1},
	}

	// colorVaryingProgram expects [2]Vec4 per vertex: position, color.
	combined := []([2]Vec4){
		{attrs[0], red},
		{attrs[1], green},
		{attrs[2], blue},
	}
	DrawTriangles[[2]Vec4, Vec4](p, colorVaryingProgram{}, combined, color, depth)

	// Pixel (4,3) lies inside the triangle, so it receives a blend of the
	// three vertex colors rather than keeping the cleared zero value.
	c := color.At(4, 3)
	if c == ([4]uint8{}) {
		t.Fatalf("At(4,3) = %v, want a blended, non-zero color", c)
	}
}

func TestBarycentricPartitionOfUnityForCoveredPoint(t *testing.T) {
	a := msVec2(0, 0)
	b := msVec2(10, 0)
	c := msVec2(0, 10)
	p := msVec2(2, 2)

	bary, ok := Barycentric(p, a, b, c)
	if !ok {
		t.Fatal("expected covered, non-degenerate point")
	}
	sum := bary[0] + bary[1] + bary[2]
	if sum < 0.999 || sum > 1.001 {
		t.Fatalf("bary sum = %v, want ~1", sum)
	}
}

func TestBarycentricDegenerateTriangleReportsNotOk(t *testing.T) {
	a := msVec2(1, 1)
	b := msVec2(1, 1)
	c := msVec2(1, 1)
	_, ok := Barycentric(msVec2(1, 1), a, b, c)
	if ok {
		t.Fatal("expected degenerate (zero-area) triangle to report ok=false")
	}
}

func TestClampColorRoundTripsUnitRangeAndSaturates(t *testing.T) {
	cases := []struct {
		in   [4]float32
		want [4]uint8
	}{
		{[4]float32{0, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
		{[4]float32{1, 1, 1, 1}, [4]uint8{255, 255, 255, 255}},
		{[4]float32{-1, 2, 0.5, 0.5}, [4]uint8{0, 255, 127, 127}},
	}
	for _, c := range cases {
		if got := clampColor(c.in); got != c.want {
			t.Errorf("clampColor(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
