// Package raster defines the in-memory image representation shared by every
// engine component: a width×height grid of 8-bit RGBA samples with straight
// (non-premultiplied) alpha.
//
// A Buffer is exclusively owned by whoever holds it. Operations that keep
// dimensions mutate in place; operations that change dimensions allocate a
// new Buffer and leave the input untouched.
package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Buffer is a fixed-size RGBA raster anchored at the origin.
//
// The backing store is an *image.NRGBA whose Pix slice holds exactly
// width*height*4 bytes in R,G,B,A order, row by row.
type Buffer struct {
	img *image.NRGBA
}

// New returns a fully transparent buffer of the given dimensions.
func New(width, height int) *Buffer {
	return &Buffer{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// FromImage copies src into a new buffer, normalizing its bounds to the
// origin. The source image is never retained.
func FromImage(src image.Image) *Buffer {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return &Buffer{img: dst}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.img.Rect.Dx() }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// At returns the sample at (x, y). Coordinates are 0-based with the origin
// at the top-left corner.
func (b *Buffer) At(x, y int) color.NRGBA {
	return b.img.NRGBAAt(x, y)
}

// Set overwrites the sample at (x, y), alpha included.
func (b *Buffer) Set(x, y int, c color.NRGBA) {
	b.img.SetNRGBA(x, y, c)
}

// Fill sets every sample to c.
func (b *Buffer) Fill(c color.NRGBA) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			b.img.SetNRGBA(x, y, c)
		}
	}
}

// NRGBA exposes the backing image for codecs and filters. Mutating the
// returned image mutates the buffer.
func (b *Buffer) NRGBA() *image.NRGBA { return b.img }

// Pix exposes the raw sample array. len(Pix()) == Width()*Height()*4.
func (b *Buffer) Pix() []uint8 { return b.img.Pix }

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	dst := image.NewNRGBA(b.img.Rect)
	copy(dst.Pix, b.img.Pix)
	return &Buffer{img: dst}
}
