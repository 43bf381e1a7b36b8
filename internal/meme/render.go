package meme

import (
	"github.com/disintegration/imaging"

	"github.com/memekit/image-engine/internal/compose"
	"github.com/memekit/image-engine/internal/encode"
	"github.com/memekit/image-engine/internal/raster"
)

// Options control a render independent of the kind.
type Options struct {
	// Large selects the 1000px template scale; otherwise the 250px scale
	// is used and every placement constant shrinks by 4.
	Large bool

	// Flip mirrors the avatar horizontally before compositing.
	Flip bool

	// Feather, when positive, is the Gaussian sigma used to soften the
	// masked avatar's rim. Zero leaves the hard circular edge.
	Feather float64
}

const (
	spinFrameCount = 12
	spinFrameDelay = 80 // ms
)

// scaleFor shrinks a Large-scale placement constant for the small template
// variant.
func scaleFor(n int, large bool) int {
	if large {
		return n
	}
	return n / 4
}

// Render composes the avatar onto the kind's template and returns the
// encoded result: a PNG for still kinds, an infinitely looping GIF for
// animated ones. Neither input buffer is mutated.
func Render(kind Kind, avatar, template *raster.Buffer, opts Options) (*encode.EncodedImage, error) {
	lay := kind.layout()
	edge := scaleFor(lay.avatarEdge, opts.Large)
	at := compose.Placement{
		X: scaleFor(lay.avatarX, opts.Large),
		Y: scaleFor(lay.avatarY, opts.Large),
	}

	src := avatar.NRGBA()
	if opts.Flip {
		src = imaging.FlipH(src)
	}
	face := raster.FromImage(imaging.Resize(src, edge, edge, imaging.Linear))
	compose.MaskToCircle(face)
	if opts.Feather > 0 {
		face = compose.Feather(face, opts.Feather)
	}

	if kind.Animated() {
		anim, err := encode.BuildAnimation(spinFrameCount, spinFrameDelay, template, face,
			spinFrame(at, lay.threshold))
		if err != nil {
			return nil, err
		}
		return encode.GIF(anim)
	}

	canvas := template.Clone()
	fitted, x, y := compose.FitWithinBounds(face, at, canvas.Width(), canvas.Height())
	if err := compose.Composite(canvas, fitted, x, y, lay.threshold, compose.Stamp); err != nil {
		return nil, err
	}
	return encode.PNG(canvas)
}

// spinFrame builds one frame of the spin animation: the avatar turned by
// the frame's share of a full revolution, re-masked (rotation fills alpha
// back to opaque), then stamped onto the frame's own template clone.
func spinFrame(at compose.Placement, threshold uint8) encode.FrameFunc {
	return func(frame int, canvas, face *raster.Buffer) (*raster.Buffer, error) {
		turned := compose.Rotate(face, frame*360/spinFrameCount)
		compose.MaskToCircle(turned)

		fitted, x, y := compose.FitWithinBounds(turned, at, canvas.Width(), canvas.Height())
		if err := compose.Composite(canvas, fitted, x, y, threshold, compose.Stamp); err != nil {
			return nil, err
		}
		return canvas, nil
	}
}
