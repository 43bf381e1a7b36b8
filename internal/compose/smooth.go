package compose

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	xdraw "golang.org/x/image/draw"

	"github.com/memekit/image-engine/internal/raster"
)

// Feather softens hard alpha edges, such as the rim left by MaskToCircle,
// by running a Gaussian blur over the buffer and resampling the result.
// Larger sigma means a wider, softer rim. Returns a new buffer of the same
// dimensions; the input is untouched.
func Feather(img *raster.Buffer, sigma float64) *raster.Buffer {
	blurred := blur.Gaussian(img.NRGBA(), sigma)

	bounds := blurred.Bounds()
	out := image.NewNRGBA(bounds)
	xdraw.CatmullRom.Scale(out, bounds, blurred, bounds, xdraw.Over, nil)

	return raster.FromImage(out)
}
