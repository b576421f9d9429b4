package graph

import "errors"

var (
	// ErrNodeOutOfRange is returned when a node index is not in [0, NodeCount).
	ErrNodeOutOfRange = errors.New("node out of range")

	// ErrEdgeOutOfRange is returned when an edge points at a node that does not exist.
	ErrEdgeOutOfRange = errors.New("edge target out of range")

	// ErrTooManyNodes is returned when a graph file declares more than MaxNodes nodes.
	ErrTooManyNodes = errors.New("too many nodes")
)

// MaxNodes bounds the node count accepted from a graph file.
const MaxNodes = 1 << 16

// Graph is a directed graph over nodes 0..n-1 stored as adjacency lists.
// A Graph is immutable once built; accessors hand out copies.
type Graph struct {
	adj [][]int // node -> neighbors, in stored order
}

// fileSpec is the on-disk shape of a graph file, shared by the YAML and JSON decoders.
type fileSpec struct {
	Nodes int           `yaml:"nodes"`
	Edges map[int][]int `yaml:"edges"`
}
