// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// A Mode is a byte mode segment encoder.  Modes differ only in the
// transform applied to the text before its bytes are written.
type Mode int16

// Predefined encoding modes.
const (
	Byte     Mode = iota // byte mode, any data, UTF-8 text unchanged
	Latin1               // byte mode, UTF-8 text encoded as ISO 8859-1
	ShiftJIS             // byte mode, UTF-8 text encoded as Shift JIS
)

// Byte mode header.
const (
	byteIndicator = 0b0100 // 4 bit mode indicator
	countLength   = 8      // character count field length for version 1
	headerLength  = 4 + countLength
)

type modeEncoder struct {
	name string
	enc  encoding.Encoding // nil: no transform
}

var modes = []modeEncoder{
	Byte:     {name: "byte"},
	Latin1:   {name: "latin-1", enc: charmap.ISO8859_1},
	ShiftJIS: {name: "shift-jis", enc: japanese.ShiftJIS},
}

func getMode(mode Mode) *modeEncoder {
	if mode >= 0 && int(mode) < len(modes) {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.name
	}
	return strconv.Itoa(int(mode))
}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, error) {
	for i := range modes {
		if modes[i].name == name {
			return Mode(i), nil
		}
	}
	return -1, fmt.Errorf("qr: unknown mode %q", name)
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents a Segment whose text the Mode cannot encode.
type SegmentError Segment

func (e SegmentError) Error() string {
	if m := getMode(e.Mode); m != nil {
		return fmt.Sprintf("qr: non-%s string %#q", m.name, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// ModeError represents an invalid Mode number.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode %s", Mode(e))
}

// payload returns the bytes written for seg.
func (seg Segment) payload() (string, error) {
	m := getMode(seg.Mode)
	if m == nil {
		return "", ModeError(seg.Mode)
	}
	if m.enc == nil {
		return seg.Text, nil
	}
	t, err := m.enc.NewEncoder().String(seg.Text)
	if err != nil {
		return "", SegmentError(seg)
	}
	return t, nil
}

// EncodedLength returns the encoded length of seg in bits, header
// included, or an error if seg cannot be encoded.
func (seg Segment) EncodedLength() (int, error) {
	p, err := seg.payload()
	if err != nil {
		return 0, err
	}
	return headerLength + len(p)*8, nil
}

// Encode writes seg to b: mode indicator, byte count and payload.
// The caller checks capacity; a payload over 255 bytes is an error.
func (seg Segment) Encode(b *Bits) error {
	p, err := seg.payload()
	if err != nil {
		return err
	}
	if len(p) >= 1<<countLength {
		return &CapacityError{headerLength + len(p)*8, DataBits}
	}
	b.Write(byteIndicator, 4)
	b.Write(uint32(len(p)), countLength)
	for i := 0; i < len(p); i++ {
		b.Write(uint32(p[i]), 8)
	}
	return nil
}
