// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// polyMul returns the product of polynomials p and q, both stored
// most significant coefficient first.  Coefficients are added with XOR.
func (f *Field) polyMul(p, q []byte) []byte {
	r := make([]byte, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			r[i+j] ^= f.Mul(a, b)
		}
	}
	return r
}

// Generator returns the Reed-Solomon generator polynomial of the given
// degree, (x - α⁰)(x - α¹)...(x - α^(degree-1)), as degree+1
// coefficients, most significant first.  The leading coefficient is
// always 1.
func (f *Field) Generator(degree int) []byte {
	g := []byte{1}
	for i := 0; i < degree; i++ {
		g = f.polyMul(g, []byte{1, f.Exp(i)})
	}
	return g
}

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen []byte
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, c: c, gen: f.Generator(c)}
}

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
// ECC panics if check is shorter than the number of
// error correction bytes.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}

	// The check bytes are the remainder after dividing
	// data padded with c zeros by the generator polynomial.
	// p[0] is the most significant term.  Terms before i are
	// final once passed and never read again.
	p := make([]byte, len(data)+rs.c)
	copy(p, data)
	f := rs.f
	for i := range data {
		c := p[i]
		if c == 0 {
			continue
		}
		for j, g := range rs.gen {
			p[i+j] ^= f.Mul(c, g)
		}
	}
	copy(check, p[len(data):])
}

// Check returns the error correcting code bytes for data.
func (rs *RSEncoder) Check(data []byte) []byte {
	check := make([]byte, rs.c)
	rs.ECC(data, check)
	return check
}
