package image

import "fmt"

// DepthImage is a dense, row-major grid of 32-bit float depth samples.
// index = y*Width() + x. The rasterizer stores depth remapped from NDC
// [-1,1] to [0,1], so NewDepthImageFilled(w, h, 1.0) — the far plane —
// is the conventional clear value, not the zero value.
type DepthImage struct {
	width, height int
	samples       []float32
}

// NewDepthImage returns a width×height depth image with every sample set
// to 0. This is NOT the conventional "cleared to far" state (see
// NewDepthImageFilled); a pipeline that draws into a zero-filled depth
// image will reject every fragment, since remapped depths are never
// below 0 and the depth test is strictly less-than.
func NewDepthImage(width, height int) *DepthImage {
	return NewDepthImageFilled(width, height, 0)
}

// NewDepthImageFilled returns a width×height depth image where every
// sample equals v. Pass 1.0 to get the conventional far-plane clear.
func NewDepthImageFilled(width, height int, v float32) *DepthImage {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("image: invalid dimensions %dx%d", width, height))
	}
	samples := make([]float32, width*height)
	for i := range samples {
		samples[i] = v
	}
	return &DepthImage{width: width, height: height, samples: samples}
}

// DepthImageFromRaw builds a depth image from a pre-sized flat buffer
// (one float32 per pixel, row-major). It returns ErrBufferTooSmall
// rather than panicking.
func DepthImageFromRaw(buf []float32, width, height int) (*DepthImage, error) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("image: invalid dimensions %dx%d", width, height))
	}
	need := width * height
	if len(buf) < need {
		return nil, fmt.Errorf("%w: have %d samples, need %d", ErrBufferTooSmall, len(buf), need)
	}
	samples := make([]float32, need)
	copy(samples, buf[:need])
	return &DepthImage{width: width, height: height, samples: samples}, nil
}

// Width returns the image width in pixels.
func (im *DepthImage) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *DepthImage) Height() int { return im.height }

// Dimensions returns (width, height).
func (im *DepthImage) Dimensions() (int, int) { return im.width, im.height }

func (im *DepthImage) index(x, y int) int {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		panic(fmt.Sprintf("image: pixel (%d,%d) out of bounds for %dx%d image", x, y, im.width, im.height))
	}
	return y*im.width + x
}

// At returns the depth sample at (x, y). Out-of-bounds coordinates panic.
func (im *DepthImage) At(x, y int) float32 {
	return im.samples[im.index(x, y)]
}

// Set writes the depth sample at (x, y). Out-of-bounds coordinates panic.
func (im *DepthImage) Set(x, y int, v float32) {
	im.samples[im.index(x, y)] = v
}

// Clear overwrites every sample with v.
func (im *DepthImage) Clear(v float32) {
	for i := range im.samples {
		im.samples[i] = v
	}
}
