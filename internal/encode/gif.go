package encode

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"

	"github.com/andybons/gogif"

	"github.com/memekit/image-engine/internal/raster"
)

// FrameFunc produces one animation frame. It receives the frame index and
// private clones of the two ingredient buffers, so it may mutate either and
// return whichever it likes, including a brand-new buffer.
type FrameFunc func(frame int, base, overlay *raster.Buffer) (*raster.Buffer, error)

// Frame is one finished animation frame with its display duration.
type Frame struct {
	Image   *raster.Buffer
	DelayMS int
}

// Animation is an ordered frame sequence, built once and consumed once by
// an animation encoder.
type Animation struct {
	Frames []Frame

	// LoopCount is the number of times the animation repeats after the
	// first play; 0 loops forever.
	LoopCount int
}

// BuildAnimation invokes fn once per frame index, cloning base and overlay
// for every call, and collects the results into an Animation with a uniform
// per-frame delay. The first generator error aborts the build and discards
// all frames produced so far.
func BuildAnimation(frames, delayMS int, base, overlay *raster.Buffer, fn FrameFunc) (*Animation, error) {
	anim := &Animation{Frames: make([]Frame, 0, frames)}
	for i := 0; i < frames; i++ {
		img, err := fn(i, base.Clone(), overlay.Clone())
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		anim.Frames = append(anim.Frames, Frame{Image: img, DelayMS: delayMS})
	}
	return anim, nil
}

// GIF encodes the animation as an animated GIF. Each frame is quantized to
// a 256-color median-cut palette with Floyd-Steinberg dithering; delays are
// rounded down to GIF's 10ms tick.
func GIF(anim *Animation) (*EncodedImage, error) {
	out := &gif.GIF{LoopCount: anim.LoopCount}

	for _, frame := range anim.Frames {
		src := frame.Image.NRGBA()
		bounds := src.Bounds()

		quantizer := gogif.MedianCutQuantizer{NumColor: 256}
		paletted := image.NewPaletted(bounds, nil)
		quantizer.Quantize(paletted, bounds, src, image.Point{})

		dithered := image.NewPaletted(bounds, paletted.Palette)
		draw.FloydSteinberg.Draw(dithered, bounds, src, image.Point{})

		out.Image = append(out.Image, dithered)
		out.Delay = append(out.Delay, frame.DelayMS/10)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, out); err != nil {
		return nil, &EncodeError{Format: FormatGIF, Err: err}
	}
	return &EncodedImage{Bytes: buf.Bytes(), Format: FormatGIF}, nil
}
