package bfs

import (
	"fmt"

	"github.com/joshharrison/bfswalk/internal/graph"
)

// Traverse visits every node reachable from start in breadth-first order.
// Neighbors are examined in the graph's stored order, so the result is
// deterministic for a given graph and start. Each reachable node is enqueued
// exactly once.
func Traverse(g *graph.Graph, start int) (*Result, error) {
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, start, g.NodeCount())
	}

	res := &Result{
		Start:  start,
		Order:  make([]int, 0, g.NodeCount()),
		Depth:  map[int]int{start: 0},
		Parent: make(map[int]int),
	}

	visited := make([]bool, g.NodeCount())
	visited[start] = true
	queue := []int{start}

	for len(queue) > 0 {
		// Pop front
		u := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, u)

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			if visited[v] {
				continue
			}
			visited[v] = true
			res.Parent[v] = u
			res.Depth[v] = res.Depth[u] + 1
			queue = append(queue, v)
		}
	}

	return res, nil
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	_, ok := r.Depth[v]
	return ok
}

// Levels groups the visitation order by depth. Levels()[k] holds the nodes
// k edges away from Start, in the order they were visited.
func (r *Result) Levels() [][]int {
	var levels [][]int
	for _, u := range r.Order {
		d := r.Depth[u]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], u)
	}
	return levels
}

// PathTo returns a shortest path (by edge count) from Start to v, both ends included.
func (r *Result) PathTo(v int) ([]int, error) {
	if !r.Reached(v) {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, v, r.Start)
	}

	path := []int{v}
	for cur := v; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}

	// Reverse to get forward order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
