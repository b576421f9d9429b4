package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Load reads a graph file. The decoder is chosen by extension: .yaml/.yml or .json.
//
// Both formats share one shape:
//
//	nodes: 5
//	edges:
//	  0: [1, 2]
//	  2: [3, 4]
//
// Nodes without an edges entry have no outgoing edges.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	g, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

// Parse decodes graph data in the format named by ext (".yaml", ".yml" or ".json").
func Parse(data []byte, ext string) (*Graph, error) {
	var (
		spec fileSpec
		err  error
	)

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		spec, err = decodeYAML(data)
	case ".json":
		spec, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported graph format %q (want .yaml, .yml or .json)", ext)
	}
	if err != nil {
		return nil, err
	}

	return spec.build()
}

func decodeYAML(data []byte) (fileSpec, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return fileSpec{}, fmt.Errorf("parse yaml: %w", err)
	}
	return spec, nil
}

func decodeJSON(data []byte) (fileSpec, error) {
	if !gjson.ValidBytes(data) {
		return fileSpec{}, fmt.Errorf("parse json: invalid document")
	}
	root := gjson.ParseBytes(data)

	nodes := root.Get("nodes")
	if nodes.Type != gjson.Number || nodes.Num != float64(nodes.Int()) {
		return fileSpec{}, fmt.Errorf("parse json: \"nodes\" must be an integer, got %s", nodes.Raw)
	}
	spec := fileSpec{
		Nodes: int(nodes.Int()),
		Edges: make(map[int][]int),
	}

	var perr error
	root.Get("edges").ForEach(func(key, value gjson.Result) bool {
		u, err := strconv.Atoi(key.String())
		if err != nil {
			perr = fmt.Errorf("parse json: edge key %q is not a node index", key.String())
			return false
		}
		if !value.IsArray() {
			perr = fmt.Errorf("parse json: edges[%d] must be an array", u)
			return false
		}
		nbrs := []int{}
		for _, item := range value.Array() {
			if item.Type != gjson.Number || item.Num != float64(item.Int()) {
				perr = fmt.Errorf("parse json: edges[%d] contains non-integer %s", u, item.Raw)
				return false
			}
			nbrs = append(nbrs, int(item.Int()))
		}
		spec.Edges[u] = nbrs
		return true
	})
	if perr != nil {
		return fileSpec{}, perr
	}

	return spec, nil
}

// build validates a decoded file and turns it into a Graph.
func (s fileSpec) build() (*Graph, error) {
	if s.Nodes <= 0 {
		return nil, fmt.Errorf("graph must have at least one node, got %d", s.Nodes)
	}
	if s.Nodes > MaxNodes {
		return nil, fmt.Errorf("%w: %d exceeds limit of %d", ErrTooManyNodes, s.Nodes, MaxNodes)
	}

	// Sort keys so the first reported error is stable
	keys := make([]int, 0, len(s.Edges))
	for u := range s.Edges {
		keys = append(keys, u)
	}
	sort.Ints(keys)

	adj := make([][]int, s.Nodes)
	for _, u := range keys {
		if u < 0 || u >= s.Nodes {
			return nil, fmt.Errorf("edges key: %w: %d not in [0, %d)", ErrNodeOutOfRange, u, s.Nodes)
		}
		adj[u] = s.Edges[u]
	}

	return New(adj)
}
