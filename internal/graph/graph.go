package graph

import (
	"fmt"
	"log/slog"
)

// Default returns the fixed five-node graph:
//
//	0 -> 1, 2
//	1 -> 3
//	2 -> 3, 4
//	3 -> 4
//	4 (sink)
func Default() *Graph {
	return &Graph{adj: [][]int{
		{1, 2},
		{3},
		{3, 4},
		{4},
		{},
	}}
}

// New builds a Graph from adjacency lists. adj[u] lists the neighbors of u in the
// order they should be examined. Every neighbor must be a valid node index.
// Duplicate edges are dropped, keeping the first occurrence.
func New(adj [][]int) (*Graph, error) {
	n := len(adj)
	g := &Graph{adj: make([][]int, n)}

	for u, nbrs := range adj {
		seen := make(map[int]bool, len(nbrs))
		out := make([]int, 0, len(nbrs))
		for _, v := range nbrs {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("node %d: %w: %d not in [0, %d)", u, ErrEdgeOutOfRange, v, n)
			}
			if seen[v] {
				slog.Warn("dropping duplicate edge", "from", u, "to", v)
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
		g.adj[u] = out
	}

	return g, nil
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// Contains reports whether u is a valid node index.
func (g *Graph) Contains(u int) bool {
	return u >= 0 && u < len(g.adj)
}

// Neighbors returns a copy of u's neighbors in stored order.
func (g *Graph) Neighbors(u int) ([]int, error) {
	if !g.Contains(u) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrNodeOutOfRange, u, len(g.adj))
	}
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])
	return out, nil
}

// EdgeCount returns the total number of directed edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}
	return n
}

// Roots returns nodes with no incoming edges, in ascending order.
func (g *Graph) Roots() []int {
	inDegree := make([]int, len(g.adj))
	for _, nbrs := range g.adj {
		for _, v := range nbrs {
			inDegree[v]++
		}
	}

	var roots []int
	for u, d := range inDegree {
		if d == 0 {
			roots = append(roots, u)
		}
	}
	return roots
}

// Leaves returns nodes with no outgoing edges, in ascending order.
func (g *Graph) Leaves() []int {
	var leaves []int
	for u, nbrs := range g.adj {
		if len(nbrs) == 0 {
			leaves = append(leaves, u)
		}
	}
	return leaves
}
