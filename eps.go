// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// EncodeEPS writes an Encapsulated PostScript picture of the code to w,
// centred on a US Letter page, c.Scale points per module.
func (c *Code) EncodeEPS(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	const midx, midy = 306, 396
	b := bufio.NewWriter(w)
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (Size+2*bord)*scale) / 2
	yorig := (midy*2 - (Size+2*bord)*scale) / 2
	fmt.Fprintf(b, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: QR https://github.com/unixdj/qrv1
%%%%Title: QR Code
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(Size*scale)/2, midy+float64((Size-1)*scale)/2-1,
		scale)
	pal := c.colors()
	if c.Reverse || c.Palette != nil {
		bg, fg := rgb(pal[0]), rgb(pal[1])
		fmt.Fprintf(b, `gsave
newpath %d %d moveto
%d dup neg scale
%.3g %.3g %.3g setrgbcolor
1 0 rlineto stroke
grestore
%.3g %.3g %.3g setrgbcolor
`,
			-bord, Size/2, Size+2*bord,
			bg[0], bg[1], bg[2], fg[0], fg[1], fg[2])
	}
	fmt.Fprintln(b, "newpath 0 0 moveto")
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; {
			s := x
			for x < Size && !c.Black(x, y) {
				x++
			}
			if x == Size {
				break
			}
			start := x
			for x < Size && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(b, "%d %d p ", x-start, start-s)
		}
		fmt.Fprintln(b, "r")
	}
	b.WriteString("stroke grestore\nend\n%%Trailer\n")
	return b.Flush()
}

// rgb returns the red, green and blue components of col in [0, 1].
func rgb(col color.Color) [3]float64 {
	r, g, b, _ := col.RGBA()
	return [3]float64{
		float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff,
	}
}
