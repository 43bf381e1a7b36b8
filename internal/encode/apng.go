package encode

import (
	"bytes"

	"github.com/kettek/apng"
)

// APNG encodes the animation as an animated PNG. Unlike GIF output the
// frames stay lossless, full-color, with their alpha intact.
func APNG(anim *Animation) (*EncodedImage, error) {
	a := apng.APNG{
		Frames:    make([]apng.Frame, len(anim.Frames)),
		LoopCount: uint(anim.LoopCount),
	}

	for i, frame := range anim.Frames {
		a.Frames[i] = apng.Frame{
			Image:            frame.Image.NRGBA(),
			DelayNumerator:   uint16(frame.DelayMS),
			DelayDenominator: 1000,
		}
	}

	var buf bytes.Buffer
	if err := apng.Encode(&buf, a); err != nil {
		return nil, &EncodeError{Format: FormatAPNG, Err: err}
	}
	return &EncodedImage{Bytes: buf.Bytes(), Format: FormatAPNG}, nil
}
