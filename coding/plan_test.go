// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Codes for "HELLO" and "" in byte mode; # is black.
var golden = map[string][Size]string{
	"HELLO": {
		"#######.###.#.#######",
		"#.....#.##.#..#.....#",
		"#.###.#.####..#.###.#",
		"#.###.#...###.#.###.#",
		"#.###.#.#..#..#.###.#",
		"#.....#.#.#...#.....#",
		"#######.#.#.#.#######",
		"........##.#.........",
		"..#...###.####.####.#",
		".###.#..#..#.###.....",
		"#.#..####.#.##.####.#",
		"...##...#...##.#.#.##",
		"#...#######..##...#..",
		"........##..##.#..##.",
		"#######..#.#...#..###",
		"#.....#.#..###.##....",
		"#.###.#...#.##.#..###",
		"#.###.#..###..##..##.",
		"#.###.#.#..####.#.#.#",
		"#.....#.#######.#..#.",
		"#######.##..#.##..###",
	},
	"": {
		"#######.#..#..#######",
		"#.....#.#.#...#.....#",
		"#.###.#.#.#.#.#.###.#",
		"#.###.#..#....#.###.#",
		"#.###.#.###.#.#.###.#",
		"#.....#.##.#..#.....#",
		"#######.#.#.#.#######",
		"........#...#........",
		"..#...####....#.#.#.#",
		"..#..#.####.#...#...#",
		"##..#.####.##.#...#..",
		"##.##....#.#....#...#",
		"#..#..#..#.###....#..",
		"........#.###.#...##.",
		"#######.....###.#...#",
		"#.....#.#..####...##.",
		"#.###.#....##.#.#.#.#",
		"#.###.#..##..#.#.#.#.",
		"#.###.#.#...#..#.##.#",
		"#.....#..##.##.###.#.",
		"#######.#.####.#.####",
	},
}

func picture(c *Code) [Size]string {
	var p [Size]string
	for y := range p {
		var b strings.Builder
		for x := 0; x < Size; x++ {
			if c.Black(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		p[y] = b.String()
	}
	return p
}

func TestGolden(t *testing.T) {
	for text, want := range golden {
		c, err := Encode(Segment{text, Byte})
		if err != nil {
			t.Fatalf("Encode(%q): %v", text, err)
		}
		if diff := cmp.Diff(want, picture(c)); diff != "" {
			t.Errorf("Encode(%q) mismatch (-want +got):\n%s", text, diff)
		}
	}
}

func TestScanOrder(t *testing.T) {
	order := ScanOrder()
	if len(order) != Size*(Size-1) {
		t.Fatalf("ScanOrder has %d positions, want %d",
			len(order), Size*(Size-1))
	}
	head := []Pos{{20, 20}, {20, 19}, {19, 20}, {19, 19}, {18, 20}}
	if diff := cmp.Diff(head, order[:len(head)]); diff != "" {
		t.Errorf("ScanOrder head mismatch (-want +got):\n%s", diff)
	}
	// Second strip runs downwards.
	if order[42] != (Pos{0, 18}) || order[83] != (Pos{20, 17}) {
		t.Errorf("second strip from %v to %v", order[42], order[83])
	}
	// The strip left of the timing column is 5/4, running downwards.
	if order[Size*2*7] != (Pos{0, 5}) || order[Size*2*7+1] != (Pos{0, 4}) {
		t.Errorf("strip 8 starts at %v, want {0 5}", order[Size*2*7])
	}
	tail := []Pos{{19, 1}, {19, 0}, {20, 1}, {20, 0}}
	if diff := cmp.Diff(tail, order[len(order)-len(tail):]); diff != "" {
		t.Errorf("ScanOrder tail mismatch (-want +got):\n%s", diff)
	}
	seen := make(map[Pos]bool)
	for _, p := range order {
		if seen[p] {
			t.Errorf("position %v repeats", p)
		}
		if p.Col == 6 {
			t.Errorf("position %v in timing column", p)
		}
		seen[p] = true
	}
}

func TestPlan(t *testing.T) {
	p := GetPlan()
	if GetPlan() != p {
		t.Error("GetPlan returned a different plan")
	}
	free := 0
	for r := range p.Map {
		for c, res := range p.Map[r] {
			if !res {
				free++
				if p.Pattern[r][c] != Unset {
					t.Errorf("free position (%d,%d) is %s",
						r, c, p.Pattern[r][c])
				}
			}
		}
	}
	if free != TotalBytes*8+1 {
		t.Errorf("%d free modules, want %d", free, TotalBytes*8+1)
	}
	for _, tt := range []struct {
		pos  Pos
		want Module
	}{
		{Pos{0, 0}, Dark}, {Pos{1, 1}, Light}, {Pos{3, 3}, Dark},
		{Pos{2, 4}, Dark}, {Pos{7, 7}, Light}, {Pos{0, 20}, Dark},
		{Pos{0, 13}, Light}, {Pos{20, 0}, Dark}, {Pos{13, 0}, Light},
		{Pos{6, 8}, Dark}, {Pos{6, 9}, Light}, {Pos{6, 12}, Dark},
		{Pos{8, 6}, Dark}, {Pos{11, 6}, Light}, {DarkPos, Dark},
		{Pos{8, 0}, Unset}, {Pos{12, 20}, Unset}, {Pos{8, 8}, Unset},
	} {
		if got := p.Pattern[tt.pos.Row][tt.pos.Col]; got != tt.want {
			t.Errorf("Pattern at %v = %s, want %s", tt.pos, got, tt.want)
		}
		if !p.Reserved(tt.pos) {
			t.Errorf("%v not reserved", tt.pos)
		}
	}
}

func TestSerialise(t *testing.T) {
	p := GetPlan()
	m := p.Pattern
	cw := make([]byte, TotalBytes)
	for i := range cw {
		cw[i] = 0xff
	}
	if n := p.Serialise(NewBitStream(cw), &m); n != TotalBytes*8 {
		t.Errorf("Serialise wrote %d bits, want %d", n, TotalBytes*8)
	}
	// One remainder module is left over.
	var unset []Pos
	for r := range m {
		for c := range m[r] {
			if m[r][c] == Unset && !p.Map[r][c] {
				unset = append(unset, Pos{r, c})
			}
		}
	}
	if diff := cmp.Diff([]Pos{{12, 0}}, unset); diff != "" {
		t.Errorf("unset modules mismatch (-want +got):\n%s", diff)
	}
}

func TestBitStream(t *testing.T) {
	s := NewBitStream([]byte{0xa5})
	var got []byte
	for s.Len() > 0 {
		got = append(got, s.Next())
	}
	if diff := cmp.Diff([]byte{1, 0, 1, 0, 0, 1, 0, 1}, got); diff != "" {
		t.Errorf("bits mismatch (-want +got):\n%s", diff)
	}
	if s.Next() != 0 {
		t.Error("Next past end returned 1")
	}
}

func TestStructure(t *testing.T) {
	for _, text := range []string{"", "HELLO", "héllo wörld", "01234567890123456"} {
		c, err := Encode(Segment{text, Byte})
		if err != nil {
			t.Fatalf("Encode(%q): %v", text, err)
		}
		for r := range c.Bitmap {
			for x, v := range c.Bitmap[r] {
				if v > 1 {
					t.Fatalf("%q: module (%d,%d) = %d", text, r, x, v)
				}
			}
		}
		if c.Bitmap[0][0] != 1 {
			t.Errorf("%q: (0,0) is white", text)
		}
		if c.Bitmap[DarkPos.Row][DarkPos.Col] != 1 {
			t.Errorf("%q: dark module is white", text)
		}
		for i, pos := range FormatPos {
			want := byte(FormatBits>>(14-i)) & 1
			if c.Bitmap[pos.Row][pos.Col] != want {
				t.Errorf("%q: format bit %d at %v is %d",
					text, i, pos, 1-want)
			}
			if m := pos.Mirror(); pos.Row != pos.Col &&
				c.Bitmap[m.Row][m.Col] != want {
				t.Errorf("%q: format bit %d at %v is %d",
					text, i, m, 1-want)
			}
		}
		if c.Bitmap[8][0] != 0 || c.Bitmap[12][20] != 0 {
			t.Errorf("%q: (8,0)=%d (12,20)=%d, want 0", text,
				c.Bitmap[8][0], c.Bitmap[12][20])
		}
		d, _ := Encode(Segment{text, Byte})
		if *c != *d {
			t.Errorf("%q: codes differ", text)
		}
		rows := c.Rows()
		if len(rows) != Size {
			t.Fatalf("%q: %d rows", text, len(rows))
		}
		for i, row := range rows {
			if len(row) != Size {
				t.Errorf("%q: row %d has %d modules", text, i, len(row))
			}
		}
	}
}

func TestMaskAndFormat(t *testing.T) {
	// All-zero codewords: every free module ends up as the mask.
	c := Build(make([]byte, DataBytes), make([]byte, CheckBytes))
	p := GetPlan()
	for r := 0; r < Size; r++ {
		for x := 0; x < Size; x++ {
			if p.Map[r][x] {
				continue
			}
			if want := byte(1 - (r+x)%2); c.Bitmap[r][x] != want {
				t.Errorf("(%d,%d) = %d, want %d", r, x,
					c.Bitmap[r][x], want)
			}
		}
	}
}
