// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// ScanOrder returns every position of the matrix outside the vertical
// timing column in zigzag scan order: two-column strips from the right
// edge leftwards, alternately upwards and downwards starting upwards,
// right column first within a row.  The strip that would include the
// timing column shifts one column left.  No position repeats.
func ScanOrder() []Pos {
	order := make([]Pos, 0, Size*(Size-1))
	up := true
	for x := Size - 1; x > 0; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for i := 0; i < Size; i++ {
			y := i
			if up {
				y = Size - 1 - i
			}
			order = append(order, Pos{y, x}, Pos{y, x - 1})
		}
		up = !up
	}
	return order
}

// A BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) *BitStream { return &BitStream{b: b} }

// Len returns the number of unread bits.
func (s *BitStream) Len() int { return len(s.b)*8 - s.pos }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}

// Serialise writes bits from s to the non-reserved positions of m in
// zigzag scan order, stopping when s is exhausted.  It returns the
// number of bits written.
func (p *Plan) Serialise(s *BitStream, m *Matrix) int {
	n := 0
	for _, pos := range ScanOrder() {
		if s.Len() == 0 {
			break
		}
		if p.Reserved(pos) || m[pos.Row][pos.Col] != Unset {
			continue
		}
		m[pos.Row][pos.Col] = bit(s.Next())
		n++
	}
	return n
}
