// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details for version 1
// codes at error correction level L with mask pattern 0.
//
// Encoding runs in three stages, each a pure function of the one
// before: segments are written to a bit stream and padded to the data
// codewords (Encoder.Codewords), Reed-Solomon check codewords are
// computed over GF(256) (package gf256), and the codewords are laid
// out in a 21×21 matrix with the function patterns, mask and format
// information (Build).
package coding // import "github.com/unixdj/qrv1/coding"

import (
	"errors"
	"fmt"
	"sync"

	"github.com/unixdj/qrv1/gf256"
)

// Version 1-L parameters.  These are not generalised: no tables for
// other versions or levels exist.
const (
	Size       = 21                     // pixels on a side
	DataBytes  = 19                     // data codewords
	CheckBytes = 7                      // error correction codewords
	TotalBytes = DataBytes + CheckBytes // codewords in the symbol
	DataBits   = DataBytes * 8          // data capacity in bits
	MaxPayload = (DataBits - 4 - 8) / 8 // byte mode payload capacity
	Terminator = 4                      // maximum terminator bits
	Mask       = 0                      // the only mask pattern used
)

// FormatBits is the format information for level L and mask 0,
// error correction bits included and already XORed with 101010000010010.
const FormatBits uint16 = 0b111011111000100

var ErrCapacity = errors.New("qr: capacity exceeded")

// CapacityError reports data too long for a version 1-L code.
// It matches ErrCapacity.
type CapacityError struct {
	Bits int // encoded length in bits
	Max  int // capacity in bits
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code",
		e.Bits, e.Max)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }

// rsEncoder computes check codewords over the QR field.
var rsEncoder = sync.OnceValue(func() *gf256.RSEncoder {
	return gf256.NewRSEncoder(gf256.QR(), CheckBytes)
})
