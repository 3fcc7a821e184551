package image

import "testing"

func TestDepthImageFillAndAt(t *testing.T) {
	im := NewDepthImageFilled(4, 4, 1.0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := im.At(x, y); got != 1.0 {
				t.Fatalf("At(%d,%d) = %v, want 1.0", x, y, got)
			}
		}
	}
}

func TestDepthImageZeroValueIsNotFarClear(t *testing.T) {
	im := NewDepthImage(2, 2)
	if got := im.At(0, 0); got != 0 {
		t.Fatalf("At(0,0) = %v, want 0 (documented non-clear default)", got)
	}
}

func TestDepthImageSetThenAt(t *testing.T) {
	im := NewDepthImageFilled(2, 2, 1.0)
	im.Set(1, 1, 0.25)
	if got := im.At(1, 1); got != 0.25 {
		t.Fatalf("At(1,1) = %v, want 0.25", got)
	}
	if got := im.At(0, 0); got != 1.0 {
		t.Fatalf("At(0,0) = %v, want unaffected 1.0", got)
	}
}

func TestDepthImageAtOutOfBoundsPanics(t *testing.T) {
	im := NewDepthImage(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("At out of bounds did not panic")
		}
	}()
	im.At(-1, 0)
}

func TestDepthImageFromRawTooSmall(t *testing.T) {
	_, err := DepthImageFromRaw(make([]float32, 3), 2, 2)
	if err == nil {
		t.Fatal("expected error for undersized buffer")
	}
}

func TestDepthImageFromRawRoundtrip(t *testing.T) {
	buf := []float32{0.1, 0.2, 0.3, 0.4}
	im, err := DepthImageFromRaw(buf, 2, 2)
	if err != nil {
		t.Fatalf("DepthImageFromRaw: %v", err)
	}
	if got := im.At(1, 1); got != 0.4 {
		t.Fatalf("At(1,1) = %v, want 0.4", got)
	}
}
