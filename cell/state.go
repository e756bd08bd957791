package cell

// State is the value a direction grid stores for one cell.
//
// Open holds the open-edge flags. Undefined is kept apart from the flags so a
// bit operation on Open can never flip the "not yet decided" marker by accident.
type State struct {
	Open      Direction
	Undefined bool
}

// Undecided returns the state of a cell no algorithm has touched yet.
func Undecided() State {
	return State{Undefined: true}
}

// Decided returns a frozen state with the given open edges.
func Decided(open Direction) State {
	return State{Open: open & All}
}

// With returns s with the flags of d added.
func (s State) With(d Direction) State {
	s.Open |= d & All
	return s
}

// Without returns s with the flags of d cleared.
func (s State) Without(d Direction) State {
	s.Open &^= d
	return s
}

// Frozen returns s with the Undefined marker cleared.
func (s State) Frozen() State {
	s.Undefined = false
	return s
}

// IsSolid reports a decided cell without any open edge.
func (s State) IsSolid() bool {
	return !s.Undefined && s.Open == None
}

// String renders the open flags, suffixed with "?" while undecided.
func (s State) String() string {
	if s.Undefined {
		return s.Open.String() + "?"
	}
	return s.Open.String()
}
