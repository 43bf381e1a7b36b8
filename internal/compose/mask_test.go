package compose

import (
	"image/color"
	"testing"
)

func TestMaskToCircle_Enumerate4x4(t *testing.T) {
	// 4x4: center (2,2), radius 2, so a pixel survives iff
	// (x-2)^2 + (y-2)^2 <= 4.
	cleared := map[[2]int]bool{
		{0, 0}: true,
		{0, 1}: true,
		{0, 3}: true,
		{1, 0}: true,
		{3, 0}: true,
	}

	img := solidBuffer(4, 4, red)
	MaskToCircle(img)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := img.At(x, y)
			if cleared[[2]int{x, y}] {
				if got != (color.NRGBA{}) {
					t.Errorf("(%d,%d) should be cleared, got %v", x, y, got)
				}
			} else if got != red {
				t.Errorf("(%d,%d) should be untouched, got %v", x, y, got)
			}
		}
	}
}

func TestMaskToCircle_Idempotent(t *testing.T) {
	once := solidBuffer(9, 9, color.NRGBA{R: 12, G: 200, B: 90, A: 255})
	MaskToCircle(once)

	twice := once.Clone()
	MaskToCircle(twice)

	for i := range once.Pix() {
		if once.Pix()[i] != twice.Pix()[i] {
			t.Fatalf("masking twice differs from masking once at byte %d", i)
		}
	}
}

func TestMaskToCircle_NonSquare(t *testing.T) {
	// Radius comes from the smaller dimension.
	img := solidBuffer(8, 4, red)
	MaskToCircle(img)

	// (4,2) is the center, untouched.
	if got := img.At(4, 2); got != red {
		t.Errorf("center should survive, got %v", got)
	}
	// (0,2) is 4 away horizontally, beyond radius 2.
	if got := img.At(0, 2); got != (color.NRGBA{}) {
		t.Errorf("far-left sample should be cleared, got %v", got)
	}
}

func TestMaskToCircle_CenterCoordinatesNeverUnderflow(t *testing.T) {
	// Coordinates smaller than width/2 must not wrap; a 3x3 exercises
	// every sign combination around the floor-division center.
	img := solidBuffer(3, 3, red)
	MaskToCircle(img)

	if got := img.At(1, 1); got != red {
		t.Errorf("center should survive, got %v", got)
	}
	if got := img.At(0, 0); got != (color.NRGBA{}) {
		t.Errorf("corner should be cleared, got %v", got)
	}
}
