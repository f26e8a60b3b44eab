package navigator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for an algorithm name that is not one of
// Algorithms().
var ErrUnknownAlgorithm = errors.New("navigator: unknown algorithm")

// Algorithm names a path search strategy.
type Algorithm string

const (
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Dijkstra Algorithm = "dijkstra"
)

// Algorithms lists the supported algorithms in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra}
}

// ParseAlgorithm resolves a case-insensitive name such as "BFS" or
// "dijkstra".
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
	return a, nil
}

// Valid reports whether a is a supported algorithm.
func (a Algorithm) Valid() bool {
	switch a {
	case BFS, DFS, Dijkstra:
		return true
	}
	return false
}

// Label is the display name used on buttons and in output.
func (a Algorithm) Label() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Dijkstra:
		return "Dijkstra"
	}
	return string(a)
}

func (a Algorithm) String() string { return string(a) }
