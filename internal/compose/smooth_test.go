package compose

import (
	"testing"
)

func TestFeather_Dimensions(t *testing.T) {
	img := solidBuffer(20, 20, red)
	out := Feather(img, 2.0)

	if out.Width() != 20 || out.Height() != 20 {
		t.Errorf("dimensions: got %dx%d, want 20x20", out.Width(), out.Height())
	}
}

func TestFeather_SoftensMaskEdge(t *testing.T) {
	img := solidBuffer(21, 21, red)
	MaskToCircle(img)
	out := Feather(img, 2.0)

	// Deep inside the circle the color survives.
	center := out.At(10, 10)
	if center.R < 200 || center.A < 200 {
		t.Errorf("center should stay mostly red and opaque, got %v", center)
	}

	// The blur must produce partial alpha somewhere along the rim, where
	// the hard mask only ever had 0 or 255.
	partial := false
	for y := 0; y < 21 && !partial; y++ {
		for x := 0; x < 21; x++ {
			if a := out.At(x, y).A; a > 20 && a < 235 {
				partial = true
				break
			}
		}
	}
	if !partial {
		t.Error("expected partial alpha along the feathered rim")
	}
}

func TestFeather_InputUntouched(t *testing.T) {
	img := solidBuffer(10, 10, red)
	Feather(img, 1.5)

	if got := img.At(5, 5); got != red {
		t.Errorf("input was mutated: %v", got)
	}
}
