package generator

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/maze"
)

// Algorithm names.
const (
	Backtracking = "backtracking"
	AldousBroder = "aldous-broder"
	Wilson       = "wilson"
	BinaryTree   = "binary-tree"
	Division     = "division"
	Kruskal      = "kruskal"
	ShortestPath = "shortest-path"
)

// CarveFunc runs one algorithm on b.
type CarveFunc func(b *maze.Builder, opts ...carve.Option) error

var registry = map[string]CarveFunc{
	Backtracking: carve.RecursiveBacktracking,
	AldousBroder: carve.AldousBroder,
	Wilson:       carve.Wilson,
	BinaryTree:   carve.BinaryTree,
	Division:     carve.RecursiveDivision,
	Kruskal:      carve.Kruskal,
	ShortestPath: func(b *maze.Builder, opts ...carve.Option) error {
		// random costs so the tree is not a plain BFS fan
		return carve.ShortestPath(b, b.End(), append([]carve.Option{carve.WithRandomCosts(16)}, opts...)...)
	},
}

// Algorithms lists the registered names in lexical order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (CarveFunc, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return fn, nil
}
