// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Module is the state of a matrix cell during construction.
type Module byte

const (
	Unset Module = iota // not yet written
	Light               // 0
	Dark                // 1
)

func (m Module) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "unset"
}

// bit returns the module for bit value v.
func bit(v byte) Module { return Light + Module(v&1) }

// A Matrix is a code under construction, indexed [row][column].
type Matrix [Size][Size]Module

// A Pos is a matrix position.
type Pos struct {
	Row, Col int
}

// Mirror returns the position opposite p through the matrix centre.
func (p Pos) Mirror() Pos { return Pos{Size - 1 - p.Row, Size - 1 - p.Col} }

// FormatPos lists the positions of format bits, most significant bit
// first.  Each bit is also written at the Mirror of its position,
// unless the position lies on the main diagonal.
var FormatPos = [15]Pos{
	{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
	{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
}

// Finder pattern top left corners.
var finderPos = [3]Pos{{0, 0}, {0, Size - 7}, {Size - 7, 0}}

// DarkPos is the position of the module that is dark in every code.
var DarkPos = Pos{Size - 8, 8}

// A Plan describes the function patterns of a version 1 code.
type Plan struct {
	// Pattern holds finder, separator and timing modules and the
	// dark module.  Format positions and data modules are Unset.
	Pattern Matrix
	// Map is true for reserved positions: everything set in Pattern
	// and the format positions.  Data is placed and masked only
	// outside Map.
	Map [Size][Size]bool
}

// Reserved reports whether p is reserved for function patterns.
func (p *Plan) Reserved(pos Pos) bool { return p.Map[pos.Row][pos.Col] }

// The Plan is built the first time it is used.
var plan = sync.OnceValue(makePlan)

// GetPlan returns the shared Plan.  It must not be modified.
func GetPlan() *Plan { return plan() }

func makePlan() *Plan {
	p := new(Plan)
	set := func(r, c int, m Module) {
		p.Pattern[r][c] = m
		p.Map[r][c] = true
	}

	// Position boxes with one module of separator around each,
	// clipped to the matrix.
	for _, f := range finderPos {
		for y := -1; y <= 7; y++ {
			for x := -1; x <= 7; x++ {
				r, c := f.Row+y, f.Col+x
				if r < 0 || r >= Size || c < 0 || c >= Size {
					continue
				}
				// Chebyshev distance from the box centre:
				// 0-1 core, 2 light ring, 3 dark ring,
				// 4 separator.
				d := max(abs(y-3), abs(x-3))
				m := Light
				if d <= 1 || d == 3 {
					m = Dark
				}
				set(r, c, m)
			}
		}
	}

	// Timing patterns between the position boxes.
	for i := 8; i < Size-8; i++ {
		m := Light
		if i%2 == 0 {
			m = Dark
		}
		set(6, i, m)
		set(i, 6, m)
	}

	// One lonely black pixel.
	set(DarkPos.Row, DarkPos.Col, Dark)

	// Format pixels are reserved but written last.
	for _, pos := range FormatPos {
		p.Map[pos.Row][pos.Col] = true
		if pos.Row != pos.Col {
			m := pos.Mirror()
			p.Map[m.Row][m.Col] = true
		}
	}
	return p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
