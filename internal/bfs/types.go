package bfs

import "errors"

var (
	// ErrOutOfRange is returned when the start node is not a node of the graph.
	ErrOutOfRange = errors.New("start node out of range")

	// ErrUnreachable is returned by PathTo for a node the traversal never reached.
	ErrUnreachable = errors.New("node not reachable from start")
)

// Result holds the outcome of a single breadth-first traversal.
type Result struct {
	Start  int
	Order  []int       // nodes in visitation order
	Depth  map[int]int // node -> edges from Start
	Parent map[int]int // node -> node that discovered it; Start has no entry
}
