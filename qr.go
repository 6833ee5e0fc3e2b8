// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes short text as a version 1 QR code (21×21 modules)
at error correction level L with mask pattern 0.

Up to 17 bytes are encoded in byte mode.  The resulting Code can be
rendered as text, a UTF-8 block picture, PNG, PBM or EPS.
*/
package qr // import "github.com/unixdj/qrv1"

import (
	"errors"
	"image"
	"image/color"

	"github.com/unixdj/qrv1/coding"
)

// Size is the number of modules on a side.
const Size = coding.Size

// Default rendering parameters.
const (
	DefaultScale  = 8 // image pixels per module
	DefaultBorder = 4 // quiet zone modules
)

var (
	ErrArgs     = errors.New("qr: invalid arguments")
	ErrCapacity = coding.ErrCapacity
)

// Encode returns an encoding of text in byte mode.  The UTF-8 text
// must be at most 17 bytes long; longer text fails with an error
// matching ErrCapacity.
func Encode(text string) (*Code, error) {
	return EncodeSegments(coding.Segment{Text: text, Mode: coding.Byte})
}

// EncodeSegments returns an encoding of the segments.
func EncodeSegments(seg ...coding.Segment) (*Code, error) {
	cc, err := coding.Encode(seg...)
	if err != nil {
		return nil, err
	}
	return &Code{
		Bitmap: cc.Bitmap,
		Scale:  DefaultScale,
		Border: DefaultBorder,
	}, nil
}

// A Code is a square pixel grid.
// It implements image.Image and direct PNG encoding.
type Code struct {
	Bitmap  [Size][Size]byte // [row][column]; 1 is black, 0 is white
	Scale   int              // number of image pixels per QR pixel
	Border  int              // quiet zone width in QR pixels
	Palette *[2]color.Color  // white and black colours, or nil
	Reverse bool             // swap colours
}

// Black returns true if the pixel at (x,y) is black.
// Pixels outside the code are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < Size && 0 <= y && y < Size && c.Bitmap[y][x] != 0
}

// Matrix returns a copy of the bitmap as Size rows of Size values.
func (c *Code) Matrix() [][]byte {
	cc := coding.Code{Bitmap: c.Bitmap}
	return cc.Rows()
}

// isValid reports whether the rendering parameters are usable.
func (c *Code) isValid() bool {
	return c != nil && c.Scale > 0 && c.Border >= 0 &&
		c.Scale*(Size+2*c.Border) <= 1<<16
}

// colors returns the white and black colours, Reverse applied.
func (c *Code) colors() [2]color.Color {
	pal := [2]color.Color{color.Gray{0xff}, color.Gray{0x00}}
	if c.Palette != nil {
		pal = *c.Palette
	}
	if c.Reverse {
		pal[0], pal[1] = pal[1], pal[0]
	}
	return pal
}

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	pal := c.colors()
	return &codeImage{c, color.Palette{pal[0], pal[1]}}
}

// codeImage implements image.PalettedImage.
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

// ColorIndexAt returns 1 for black pixels and 0 for white.
func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return 1
	}
	return 0
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}
