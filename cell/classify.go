package cell

// Kind is the structural class of a cell derived from its open edges.
type Kind int

const (
	// Solid has no open edge.
	Solid Kind = iota
	// DeadEnd has exactly one open edge.
	DeadEnd
	// Straight has two opposite open edges.
	Straight
	// Turn has two adjacent open edges.
	Turn
	// TJunction has three open edges.
	TJunction
	// Cross has all four open edges.
	Cross
)

var kindNames = [...]string{"solid", "dead-end", "straight", "turn", "t-junction", "cross"}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Classify returns the Kind of the open-edge set d. Flags outside All are ignored.
func Classify(d Direction) Kind {
	d &= All
	switch d.Count() {
	case 0:
		return Solid
	case 1:
		return DeadEnd
	case 2:
		if d == North|South || d == East|West {
			return Straight
		}
		return Turn
	case 3:
		return TJunction
	}
	return Cross
}

// IsDeadEnd reports exactly one open edge.
func IsDeadEnd(d Direction) bool { return Classify(d) == DeadEnd }

// IsStraight reports two opposite open edges.
func IsStraight(d Direction) bool { return Classify(d) == Straight }

// IsTurn reports two adjacent open edges.
func IsTurn(d Direction) bool { return Classify(d) == Turn }

// IsTJunction reports exactly three open edges.
func IsTJunction(d Direction) bool { return Classify(d) == TJunction }

// IsCross reports four open edges.
func IsCross(d Direction) bool { return Classify(d) == Cross }

// IsJunction reports a T-junction or a cross-junction.
func IsJunction(d Direction) bool { return d.Count() >= 3 }
