// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is a bit stream written most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a version 1 code.
func NewBits() *Bits {
	return &Bits{b: make([]byte, 0, TotalBytes)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the written bytes.  It panics if a byte is only
// partially written.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v, most significant first.
// nbit must not exceed 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Pad bytes alternately filling unused data capacity.
const (
	pad0 = 0xec
	pad1 = 0x11
)

// PadTo adds up to t zero terminator bits to b without exceeding n
// bits, zero-fills to a byte boundary and appends pad bytes until b
// holds n bits.  n must be a multiple of 8 and not less than b.Bits().
func (b *Bits) PadTo(t, n int) {
	if b.nbit > n || n%8 != 0 {
		panic("qr: too much data")
	}
	// Terminator and bit padding.  Unwritten low bits of the last
	// byte are already zero.
	b.nbit = min(b.nbit+t, n)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	b.nbit = len(b.b) * 8
	for i := 0; b.nbit < n; i++ {
		p := byte(pad0)
		if i&1 != 0 {
			p = pad1
		}
		b.b = append(b.b, p)
		b.nbit += 8
	}
}
