package maze

import (
	"strings"

	"github.com/katalvlaran/labyrinth/cell"
)

// String provides a textual representation of the maze, north row first.
// Start and End cells are marked "S" and "E".
func (m *Maze) String() string {
	var sb strings.Builder
	w, h := m.Width(), m.Height()

	for row := h - 1; row >= 0; row-- {
		// wall line above this row
		sb.WriteByte('+')
		for col := 0; col < w; col++ {
			if m.grid.Get(col, row).Open.Has(cell.North) {
				sb.WriteString("   +")
			} else {
				sb.WriteString("---+")
			}
		}
		sb.WriteByte('\n')

		// cell line
		if m.grid.Get(0, row).Open.Has(cell.West) {
			sb.WriteByte(' ')
		} else {
			sb.WriteByte('|')
		}
		for col := 0; col < w; col++ {
			idx := m.Index(col, row)
			switch idx {
			case m.start:
				sb.WriteString(" S ")
			case m.end:
				sb.WriteString(" E ")
			default:
				sb.WriteString("   ")
			}
			if m.grid.Get(col, row).Open.Has(cell.East) {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
	}

	// southern boundary
	sb.WriteByte('+')
	for col := 0; col < w; col++ {
		if m.grid.Get(col, 0).Open.Has(cell.South) {
			sb.WriteString("   +")
		} else {
			sb.WriteString("---+")
		}
	}
	sb.WriteByte('\n')

	return sb.String()
}

// Rows returns String split into lines, without the trailing empty line.
func (m *Maze) Rows() []string {
	return strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
}
