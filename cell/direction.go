package cell

import (
	"math/bits"
	"strings"
)

// Direction is a set of compass flags. A single flag names one direction;
// several flags together describe the open edges of a cell.
type Direction uint8

const (
	// North points toward row+1.
	North Direction = 1 << iota
	// East points toward column+1.
	East
	// South points toward row-1.
	South
	// West points toward column-1.
	West
)

const (
	// None is the empty set: a cell with no open edge.
	None Direction = 0
	// All is the set of the four compass flags.
	All = North | East | South | West
)

// Compass lists the single directions in their canonical order.
var Compass = [4]Direction{North, East, South, West}

// Has reports whether every flag of o is present in d. Has(None) is false.
func (d Direction) Has(o Direction) bool {
	return o != None && d&o == o
}

// Any reports whether d and o share at least one flag.
func (d Direction) Any(o Direction) bool {
	return d&o != 0
}

// Count returns the number of compass flags set in d.
func (d Direction) Count() int {
	return bits.OnesCount8(uint8(d & All))
}

// Opposite mirrors every flag of d: North<->South, East<->West.
func (d Direction) Opposite() Direction {
	var o Direction
	if d&North != 0 {
		o |= South
	}
	if d&South != 0 {
		o |= North
	}
	if d&East != 0 {
		o |= West
	}
	if d&West != 0 {
		o |= East
	}
	return o
}

// Ordinal returns the position of a single direction in Compass, or -1 when d
// is not exactly one flag.
func (d Direction) Ordinal() int {
	switch d {
	case North:
		return 0
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	}
	return -1
}

// Offset returns the column/row delta of a single direction.
// Sets and None yield (0, 0).
func (d Direction) Offset() (dc, dr int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Split returns the single directions contained in d, in Compass order.
func (d Direction) Split() []Direction {
	out := make([]Direction, 0, d.Count())
	for _, c := range Compass {
		if d&c != 0 {
			out = append(out, c)
		}
	}
	return out
}

// String renders d as "N|E|S|W" fragments, or "none".
func (d Direction) String() string {
	if d&All == None {
		return "none"
	}
	names := [4]string{"N", "E", "S", "W"}
	parts := make([]string, 0, 4)
	for i, c := range Compass {
		if d&c != 0 {
			parts = append(parts, names[i])
		}
	}
	return strings.Join(parts, "|")
}
