// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Code is a square pixel grid.
type Code struct {
	Bitmap [Size][Size]byte // [row][column]; 1 is black, 0 is white
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < Size && 0 <= y && y < Size && c.Bitmap[y][x] != 0
}

// Rows returns a copy of the bitmap as a slice of rows.
func (c *Code) Rows() [][]byte {
	rows := make([][]byte, Size)
	for i := range rows {
		rows[i] = append([]byte(nil), c.Bitmap[i][:]...)
	}
	return rows
}

// Encoder encodes a QR code.  An Encoder must not be used
// concurrently; separate Encoders may be.
type Encoder struct {
	b *Bits
}

// NewEncoder returns an Encoder.
func NewEncoder() *Encoder {
	return &Encoder{b: NewBits()}
}

func (e *Encoder) Reset() { e.b.Reset() }

// Write adds text to e.  If the text would not fit, Write returns a
// *CapacityError and leaves e unchanged.
func (e *Encoder) Write(text ...Segment) error {
	n := e.b.Bits()
	for _, t := range text {
		l, err := t.EncodedLength()
		if err != nil {
			return err
		}
		n += l
	}
	if n > DataBits {
		return &CapacityError{n, DataBits}
	}
	for _, t := range text {
		if err := t.Encode(e.b); err != nil {
			return err
		}
	}
	return nil
}

// Codewords returns the data codewords for the text written to e:
// the segments followed by terminator, bit padding and pad bytes,
// DataBytes bytes in all.  It does not modify e.
func (e *Encoder) Codewords() []byte {
	b := Bits{b: append(make([]byte, 0, DataBytes), e.b.b...), nbit: e.b.nbit}
	b.PadTo(Terminator, DataBits)
	return b.Bytes()
}

// Code returns a QR code containing data written to e.
func (e *Encoder) Code() *Code {
	data := e.Codewords()
	return Build(data, rsEncoder().Check(data))
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(text ...Segment) (*Code, error) {
	if err := e.Write(text...); err != nil {
		return nil, err
	}
	return e.Code(), nil
}

// Encode encodes text using a new Encoder.
func Encode(text ...Segment) (*Code, error) {
	return NewEncoder().Encode(text...)
}

// DataCodewords returns the DataBytes data codewords for text.
func DataCodewords(text ...Segment) ([]byte, error) {
	e := NewEncoder()
	if err := e.Write(text...); err != nil {
		return nil, err
	}
	return e.Codewords(), nil
}

// CheckCodewords returns the CheckBytes error correction codewords for
// data.
func CheckCodewords(data []byte) []byte {
	return rsEncoder().Check(data)
}

// Build lays out data and check codewords in a code: function
// patterns, data bits in zigzag order, mask 0 and format information.
func Build(data, check []byte) *Code {
	p := GetPlan()
	m := p.Pattern

	cw := make([]byte, 0, len(data)+len(check))
	cw = append(append(cw, data...), check...)
	p.Serialise(NewBitStream(cw), &m)

	// Remainder bits and format pixels.  Format pixels are
	// overwritten below.
	for r := range m {
		for c := range m[r] {
			if m[r][c] == Unset {
				m[r][c] = Light
			}
		}
	}

	applyMask(p, &m)
	writeFormat(&m)
	return resolve(&m)
}

// applyMask inverts unreserved modules where (row + column) is even.
func applyMask(p *Plan, m *Matrix) {
	for r := range m {
		for c := range m[r] {
			if !p.Map[r][c] && (r+c)%2 == 0 {
				m[r][c] ^= Light ^ Dark
			}
		}
	}
}

// writeFormat writes FormatBits at FormatPos and the mirrored positions.
func writeFormat(m *Matrix) {
	for i, pos := range FormatPos {
		v := bit(byte(FormatBits >> (len(FormatPos) - 1 - i)))
		m[pos.Row][pos.Col] = v
		if pos.Row != pos.Col {
			mp := pos.Mirror()
			m[mp.Row][mp.Col] = v
		}
	}
}

func resolve(m *Matrix) *Code {
	c := new(Code)
	for r := range m {
		for x, v := range m[r] {
			switch v {
			case Light:
			case Dark:
				c.Bitmap[r][x] = 1
			default:
				panic("qr: unresolved module")
			}
		}
	}
	return c
}
