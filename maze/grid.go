package maze

import "github.com/katalvlaran/labyrinth/cell"

// ChangeFunc observes a grid write that changed a cell.
type ChangeFunc func(row, col int, newValue, oldValue cell.State)

// DirectionGrid is a width×height table of cell states addressed by
// (col,row) or by index row*width+col. It performs no bounds checking
// beyond the backing slice.
type DirectionGrid struct {
	width, height int
	cells         []cell.State
	observers     []ChangeFunc
}

// NewDirectionGrid returns a grid whose cells are all undecided.
func NewDirectionGrid(width, height int) *DirectionGrid {
	g := &DirectionGrid{
		width:  width,
		height: height,
		cells:  make([]cell.State, width*height),
	}
	for i := range g.cells {
		g.cells[i] = cell.Undecided()
	}
	return g
}

// Width returns the number of columns.
func (g *DirectionGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *DirectionGrid) Height() int { return g.height }

// Len returns the number of cells.
func (g *DirectionGrid) Len() int { return len(g.cells) }

// Get returns the state at (col,row).
func (g *DirectionGrid) Get(col, row int) cell.State {
	return g.cells[row*g.width+col]
}

// GetIndex returns the state of cell idx.
func (g *DirectionGrid) GetIndex(idx int) cell.State {
	return g.cells[idx]
}

// Set stores v at (col,row).
func (g *DirectionGrid) Set(col, row int, v cell.State) {
	g.SetIndex(row*g.width+col, v)
}

// SetIndex stores v at cell idx and notifies observers when the value changed.
func (g *DirectionGrid) SetIndex(idx int, v cell.State) {
	old := g.cells[idx]
	if old == v {
		return
	}
	g.cells[idx] = v
	if len(g.observers) == 0 {
		return
	}
	row, col := idx/g.width, idx%g.width
	for _, fn := range g.observers {
		fn(row, col, v, old)
	}
}

// OnChange registers an observer called after every changing write.
func (g *DirectionGrid) OnChange(fn ChangeFunc) {
	if fn != nil {
		g.observers = append(g.observers, fn)
	}
}

// CarveRecorder records the order in which cells first gained an open edge.
type CarveRecorder struct {
	width int
	seen  map[int]bool
	order []int
}

// NewCarveRecorder subscribes a recorder to g.
func NewCarveRecorder(g *DirectionGrid) *CarveRecorder {
	r := &CarveRecorder{width: g.width, seen: make(map[int]bool)}
	g.OnChange(func(row, col int, newValue, oldValue cell.State) {
		idx := row*r.width + col
		if r.seen[idx] || newValue.Open == cell.None || oldValue.Open != cell.None {
			return
		}
		r.seen[idx] = true
		r.order = append(r.order, idx)
	})
	return r
}

// Order returns the recorded cell indices, first carved first.
func (r *CarveRecorder) Order() []int {
	out := make([]int, len(r.order))
	copy(out, r.order)
	return out
}
