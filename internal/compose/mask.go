package compose

import (
	"image/color"

	"github.com/memekit/image-engine/internal/raster"
)

// MaskToCircle clears every sample outside the largest inscribed circle of
// the buffer, producing a round cutout with a fully transparent surround.
//
// Center and radius use floor division, so on even dimensions the circle
// sits half a pixel below-right of the geometric center. The operation is
// idempotent: masking an already-masked buffer changes nothing.
func MaskToCircle(img *raster.Buffer) {
	w, h := img.Width(), img.Height()

	edge := w
	if h < w {
		edge = h
	}
	// Distances are squared on int64 so coordinates left of or above the
	// center never underflow.
	radiusSq := int64(edge/2) * int64(edge/2)
	cx, cy := w/2, h/2

	for y := 0; y < h; y++ {
		dy := int64(y - cy)
		for x := 0; x < w; x++ {
			dx := int64(x - cx)
			if dx*dx+dy*dy > radiusSq {
				img.Set(x, y, color.NRGBA{})
			}
		}
	}
}
