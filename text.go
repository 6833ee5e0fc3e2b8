// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// Default glyphs for Text.
const (
	DarkGlyph  = "##"
	LightGlyph = "  "
)

// Text returns the code as text, one line per row of pixels, each pixel
// drawn as dark or light.  Lines are separated by newlines; there is no
// trailing newline and no quiet zone.  Empty glyphs are replaced with
// DarkGlyph and LightGlyph.
func (c *Code) Text(dark, light string) string {
	if dark == "" {
		dark = DarkGlyph
	}
	if light == "" {
		light = LightGlyph
	}
	if c.Reverse {
		dark, light = light, dark
	}
	var b strings.Builder
	b.Grow((Size*max(len(dark), len(light)) + 1) * Size)
	for y := 0; y < Size; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < Size; x++ {
			if c.Black(x, y) {
				b.WriteString(dark)
			} else {
				b.WriteString(light)
			}
		}
	}
	return b.String()
}

// String returns c.Text(DarkGlyph, LightGlyph).
func (c *Code) String() string {
	return c.Text(DarkGlyph, LightGlyph)
}

// UTF8 returns the code with its quiet zone drawn in UTF-8 block
// characters, two rows of pixels per line, for display on a terminal
// with light text on a dark background.  Every line ends in a newline.
func (c *Code) UTF8() string {
	// Index: upper pixel black = 2, lower pixel black = 1.
	// Terminals draw the glyph in the foreground colour, so
	// the glyph covers white pixels.
	blocks := [4]string{"█", "▀", "▄", " "}
	if c.Reverse {
		blocks = [4]string{" ", "▄", "▀", "█"}
	}
	bord := max(c.Border, 0)
	var b strings.Builder
	for y := -bord; y < Size+bord; y += 2 {
		for x := -bord; x < Size+bord; x++ {
			n := 0
			if c.Black(x, y) {
				n = 2
			}
			if c.Black(x, y+1) {
				n++
			}
			b.WriteString(blocks[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeText writes c.Text(dark, light) followed by a newline to w.
func (c *Code) EncodeText(w io.Writer, dark, light string) error {
	_, err := io.WriteString(w, c.Text(dark, light)+"\n")
	return err
}
