// Package encode serializes finished raster buffers into PNG, animated GIF
// or animated PNG byte streams. Every encoder produces an owned, immutable
// EncodedImage or a typed EncodeError; on failure no partial stream is ever
// returned.
package encode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/memekit/image-engine/internal/raster"
)

// Format tags an encoded byte stream.
type Format int

const (
	FormatPNG Format = iota
	FormatGIF
	FormatAPNG
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatGIF:
		return "gif"
	case FormatAPNG:
		return "apng"
	}
	return "unknown"
}

// MIMEType returns the content type for the encoded stream.
func (f Format) MIMEType() string {
	switch f {
	case FormatGIF:
		return "image/gif"
	case FormatAPNG:
		return "image/apng"
	default:
		return "image/png"
	}
}

// EncodedImage is a finished byte stream plus its format tag. It is
// produced once and never mutated.
type EncodedImage struct {
	Bytes  []byte
	Format Format
}

// EncodeError reports a codec failure for a given output format.
type EncodeError struct {
	Format Format
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// PNG serializes the buffer into a single PNG byte stream. PNG is lossless:
// decoding the result reproduces the buffer sample for sample.
func PNG(img *raster.Buffer) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.NRGBA()); err != nil {
		return nil, &EncodeError{Format: FormatPNG, Err: err}
	}
	return &EncodedImage{Bytes: buf.Bytes(), Format: FormatPNG}, nil
}
