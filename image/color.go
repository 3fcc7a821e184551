package image

import (
	"errors"
	"fmt"

	math "github.com/chewxy/math32"
)

// ErrBufferTooSmall is returned by the FromRaw constructors when the
// supplied buffer is smaller than width*height*channels.
var ErrBufferTooSmall = errors.New("image: buffer smaller than width*height*channels")

// ColorImage is a dense, row-major grid of 8-bit RGBA pixels.
// index = y*Width() + x.
type ColorImage struct {
	width, height int
	pixels        [][4]uint8
}

// NewColorImage returns a width×height image with every pixel zeroed
// (transparent black).
func NewColorImage(width, height int) *ColorImage {
	return NewColorImageFilled(width, height, [4]uint8{})
}

// NewColorImageFilled returns a width×height image where every pixel
// equals v.
func NewColorImageFilled(width, height int, v [4]uint8) *ColorImage {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("image: invalid dimensions %dx%d", width, height))
	}
	pixels := make([][4]uint8, width*height)
	for i := range pixels {
		pixels[i] = v
	}
	return &ColorImage{width: width, height: height, pixels: pixels}
}

// ColorImageFromRaw builds an image from a pre-sized flat RGBA buffer
// (four bytes per pixel, row-major). It returns ErrBufferTooSmall rather
// than panicking, since a short buffer usually reflects a malformed
// input file rather than a programmer error.
func ColorImageFromRaw(buf []uint8, width, height int) (*ColorImage, error) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("image: invalid dimensions %dx%d", width, height))
	}
	need := width * height * 4
	if len(buf) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(buf), need)
	}
	pixels := make([][4]uint8, width*height)
	for i := range pixels {
		o := i * 4
		pixels[i] = [4]uint8{buf[o], buf[o+1], buf[o+2], buf[o+3]}
	}
	return &ColorImage{width: width, height: height, pixels: pixels}, nil
}

// Width returns the image width in pixels.
func (im *ColorImage) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *ColorImage) Height() int { return im.height }

// Dimensions returns (width, height).
func (im *ColorImage) Dimensions() (int, int) { return im.width, im.height }

func (im *ColorImage) index(x, y int) int {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		panic(fmt.Sprintf("image: pixel (%d,%d) out of bounds for %dx%d image", x, y, im.width, im.height))
	}
	return y*im.width + x
}

// At returns the pixel at (x, y). Out-of-bounds coordinates panic.
func (im *ColorImage) At(x, y int) [4]uint8 {
	return im.pixels[im.index(x, y)]
}

// Set writes the pixel at (x, y). Out-of-bounds coordinates panic.
func (im *ColorImage) Set(x, y int, v [4]uint8) {
	im.pixels[im.index(x, y)] = v
}

// Clear overwrites every pixel with v.
func (im *ColorImage) Clear(v [4]uint8) {
	for i := range im.pixels {
		im.pixels[i] = v
	}
}

// SampleNearest reads the image as a texture using nearest-neighbor
// filtering. (u, v) is clamped to [0,1]x[0,1] before mapping to a pixel
// coordinate, so any real input — including +/-Inf — produces an
// in-bounds sample. Returns the zero vector for a zero-sized image.
func (im *ColorImage) SampleNearest(u, v float32) [4]float32 {
	if im.width == 0 || im.height == 0 {
		return [4]float32{}
	}
	u = clamp01(u)
	v = clamp01(v)
	x := int(math.Floor(u * float32(im.width-1)))
	y := int(math.Floor(v * float32(im.height-1)))
	p := im.At(x, y)
	const inv255 = 1.0 / 255.0
	return [4]float32{
		float32(p[0]) * inv255,
		float32(p[1]) * inv255,
		float32(p[2]) * inv255,
		float32(p[3]) * inv255,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
