package compose

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/memekit/image-engine/internal/raster"
)

// FitWithinBounds crops img so that, placed at the returned offset, it lies
// entirely within a maxWidth×maxHeight canvas.
//
// Each axis is resolved independently:
//   - If the far edge (placement + size) would pass the canvas boundary,
//     the trailing edge is cropped to exactly reach it and the placement is
//     kept, clamped non-negative.
//   - Otherwise, if the placement is negative, the leading edge is cropped
//     by the overhang and the placement becomes 0.
//   - Otherwise the axis is left untouched.
//
// An axis that falls entirely outside the canvas degenerates to size zero
// rather than failing; compositing a zero-size buffer is a no-op. The
// returned offsets always satisfy x+width <= maxWidth and
// y+height <= maxHeight. The input buffer is never mutated.
func FitWithinBounds(img *raster.Buffer, at Placement, maxWidth, maxHeight int) (*raster.Buffer, int, int) {
	fx := fitAxis(at.X, img.Width(), maxWidth)
	fy := fitAxis(at.Y, img.Height(), maxHeight)

	if fx.lo == 0 && fy.lo == 0 && fx.hi == img.Width() && fy.hi == img.Height() {
		return img.Clone(), fx.offset, fy.offset
	}
	if fx.hi <= fx.lo || fy.hi <= fy.lo {
		// A fully clipped axis degenerates to size zero; the other axis
		// keeps its cropped extent.
		return raster.New(fx.hi-fx.lo, fy.hi-fy.lo), fx.offset, fy.offset
	}
	cropped := imaging.Crop(img.NRGBA(), image.Rect(fx.lo, fy.lo, fx.hi, fy.hi))
	return raster.FromImage(cropped), fx.offset, fy.offset
}

// axisFit is the keep-range [lo, hi) within the source and the adjusted
// placement offset for one axis.
type axisFit struct {
	lo, hi, offset int
}

func fitAxis(pos, size, max int) axisFit {
	switch {
	case pos+size > max:
		offset := pos
		if offset < 0 {
			offset = 0
		}
		if offset > max {
			offset = max
		}
		keep := max - offset
		if keep > size {
			keep = size
		}
		return axisFit{lo: 0, hi: keep, offset: offset}
	case pos < 0:
		overhang := -pos
		if overhang > size {
			overhang = size
		}
		return axisFit{lo: overhang, hi: size, offset: 0}
	default:
		return axisFit{lo: 0, hi: size, offset: pos}
	}
}
