package gridgraph

import (
	"errors"
	"sort"
	"testing"
)

// TestConnectedComponents_FullLattice expects a single component when every edge is open.
func TestConnectedComponents_FullLattice(t *testing.T) {
	l, err := NewLattice(4, 3)
	if err != nil {
		t.Fatalf("NewLattice failed: %v", err)
	}
	comps := l.ConnectedComponents(nil)
	if len(comps) != 1 || len(comps[0]) != 12 {
		t.Fatalf("got %d components; want 1 of size 12", len(comps))
	}
}

// TestConnectedComponents_VerticalCut splits a 4×3 lattice between columns 1 and 2.
//
//	. . | . .
//	. . | . .
//	. . | . .
//
// Expected: 2 components of 6 cells each.
func TestConnectedComponents_VerticalCut(t *testing.T) {
	l, _ := NewLattice(4, 3)
	link := func(from, to int) bool {
		fc, _ := l.Coordinate(from)
		tc, _ := l.Coordinate(to)
		return !(fc == 1 && tc == 2) && !(fc == 2 && tc == 1)
	}
	comps := l.ConnectedComponents(link)
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if sizes[0] != 6 || sizes[1] != 6 {
		t.Errorf("component sizes = %v; want [6 6]", sizes)
	}
}

// TestDistances_GridAndRestricted compares wall-free and restricted distances.
func TestDistances_GridAndRestricted(t *testing.T) {
	l, _ := NewLattice(3, 3)
	dist, err := l.Distances([]int{0}, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Manhattan distance from the south-west corner.
	for idx, d := range dist {
		c, r := l.Coordinate(idx)
		if d != c+r {
			t.Errorf("dist[%d] = %d; want %d", idx, d, c+r)
		}
	}

	// Only allow moves inside row 0.
	rowOnly := func(from, to int) bool { return from < 3 && to < 3 }
	dist, err = l.Distances([]int{0}, rowOnly)
	if err != nil {
		t.Fatal(err)
	}
	if dist[2] != 2 || dist[3] != Unreachable {
		t.Errorf("restricted distances = %v", dist)
	}

	// Multi-source seeds are all zero.
	dist, _ = l.Distances([]int{0, 8}, nil)
	if dist[0] != 0 || dist[8] != 0 || dist[4] != 2 {
		t.Errorf("multi-source distances = %v", dist)
	}

	if _, err := l.Distances([]int{42}, nil); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("want ErrOutOfRange, got %v", err)
	}
}
