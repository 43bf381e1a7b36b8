package compose

import (
	"fmt"
	"image/color"

	"github.com/memekit/image-engine/internal/raster"
)

// Mode selects how overlay samples at or below the alpha threshold are
// treated during compositing.
type Mode int

const (
	// Stamp skips samples at or below the threshold entirely, leaving the
	// destination untouched beneath them.
	Stamp Mode = iota

	// Blend source-over blends samples at or below the threshold into the
	// destination instead of skipping them.
	Blend
)

// Placement is the intended top-left position of a smaller buffer on a
// larger canvas. Either offset may be negative or push the buffer past the
// canvas edge; that is the normal case FitWithinBounds resolves.
type Placement struct {
	X int
	Y int
}

// DimensionError reports an overlay that does not fit the destination at
// the requested position.
type DimensionError struct {
	BaseWidth, BaseHeight       int
	OverlayWidth, OverlayHeight int
	X, Y                        int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("overlay %dx%d does not fit %dx%d base at (%d,%d)",
		e.OverlayWidth, e.OverlayHeight, e.BaseWidth, e.BaseHeight, e.X, e.Y)
}

// Composite draws overlay onto base with its top-left corner at (x, y),
// mutating base in place.
//
// Overlay samples whose alpha is strictly greater than threshold overwrite
// the destination sample, alpha included. Samples at or below the threshold
// are skipped in Stamp mode and source-over blended in Blend mode.
//
// The overlay must fit entirely within base; callers holding an oversized
// or negative placement resolve it with FitWithinBounds first.
func Composite(base, overlay *raster.Buffer, x, y int, threshold uint8, mode Mode) error {
	if x < 0 || y < 0 ||
		x+overlay.Width() > base.Width() ||
		y+overlay.Height() > base.Height() {
		return &DimensionError{
			BaseWidth:     base.Width(),
			BaseHeight:    base.Height(),
			OverlayWidth:  overlay.Width(),
			OverlayHeight: overlay.Height(),
			X:             x,
			Y:             y,
		}
	}

	for k := 0; k < overlay.Height(); k++ {
		for i := 0; i < overlay.Width(); i++ {
			p := overlay.At(i, k)
			switch {
			case p.A > threshold:
				base.Set(i+x, k+y, p)
			case mode == Blend:
				base.Set(i+x, k+y, blendOver(base.At(i+x, k+y), p))
			}
		}
	}
	return nil
}

// blendOver composites src over dst with straight-alpha source-over:
// out = src·α + dst·(1-α).
func blendOver(dst, src color.NRGBA) color.NRGBA {
	a := uint32(src.A)
	inv := 255 - a
	return color.NRGBA{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*inv) / 255),
		A: uint8(a + uint32(dst.A)*inv/255),
	}
}
