package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshharrison/bfswalk/internal/bfs"
	"github.com/joshharrison/bfswalk/internal/graph"
	"github.com/joshharrison/bfswalk/internal/ui"
)

// Format names accepted by Write.
const (
	FormatPlain  = "plain"
	FormatLevels = "levels"
	FormatJSON   = "json"
	FormatDOT    = "dot"
)

// Write renders res in the named format.
func Write(w io.Writer, format string, g *graph.Graph, res *bfs.Result) error {
	switch format {
	case FormatPlain, "":
		return Plain(w, res.Order)
	case FormatLevels:
		return Levels(w, res)
	case FormatJSON:
		return JSON(w, res)
	case FormatDOT:
		return DOT(w, g, res)
	default:
		return CheckFormat(format)
	}
}

// Plain writes nodes separated by single spaces followed by a newline.
func Plain(w io.Writer, nodes []int) error {
	_, err := fmt.Fprintln(w, join(nodes, " "))
	return err
}

// Path writes a path as "a -> b -> c".
func Path(w io.Writer, path []int) error {
	_, err := fmt.Fprintln(w, join(path, " -> "))
	return err
}

// Levels writes one line per BFS level, each node colored by its depth.
func Levels(w io.Writer, res *bfs.Result) error {
	fmt.Fprintf(w, "%s %s\n", ui.BoldCyan("Breadth-first from"), ui.Node(res.Start, 0))
	for d, level := range res.Levels() {
		labels := make([]string, len(level))
		for i, u := range level {
			labels[i] = ui.Node(u, d)
			if p, ok := res.Parent[u]; ok {
				labels[i] += ui.Dim("(" + strconv.Itoa(p) + ")")
			}
		}
		if _, err := fmt.Fprintf(w, "  %s %d  %s\n", ui.BoldWhite("depth"), d, strings.Join(labels, " ")); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes a machine-readable traversal result.
func JSON(w io.Writer, res *bfs.Result) error {
	type output struct {
		Start  int         `json:"start"`
		Order  []int       `json:"order"`
		Depth  map[int]int `json:"depth"`
		Parent map[int]int `json:"parent"`
		Levels [][]int     `json:"levels"`
	}

	data, err := json.MarshalIndent(output{
		Start:  res.Start,
		Order:  res.Order,
		Depth:  res.Depth,
		Parent: res.Parent,
		Levels: res.Levels(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// DOT writes the graph in Graphviz format. When res is non-nil, visited nodes are
// bold and labeled with their visit position, and BFS tree edges are red.
func DOT(w io.Writer, g *graph.Graph, res *bfs.Result) error {
	var b strings.Builder
	b.WriteString("digraph bfswalk {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle];\n\n")

	position := make(map[int]int)
	if res != nil {
		for i, u := range res.Order {
			position[u] = i + 1
		}
	}

	for u := 0; u < g.NodeCount(); u++ {
		if pos, ok := position[u]; ok {
			fmt.Fprintf(&b, "  %d [label=\"%d\\n#%d\", style=bold];\n", u, u, pos)
		} else {
			fmt.Fprintf(&b, "  %d;\n", u)
		}
	}
	b.WriteString("\n")

	for u := 0; u < g.NodeCount(); u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, v := range nbrs {
			style := ""
			if res != nil {
				if p, ok := res.Parent[v]; ok && p == u {
					style = " [color=red, penwidth=2]"
				}
			}
			fmt.Fprintf(&b, "  %d -> %d%s;\n", u, v, style)
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ASCII writes a colored adjacency listing of the graph.
func ASCII(w io.Writer, g *graph.Graph) error {
	fmt.Fprintf(w, "%s %s\n", ui.BoldCyan("Graph"),
		ui.Dim(fmt.Sprintf("(%d nodes, %d edges)", g.NodeCount(), g.EdgeCount())))
	fmt.Fprintln(w, ui.Cyan("═══════════════════════"))

	for u := 0; u < g.NodeCount(); u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		if len(nbrs) == 0 {
			fmt.Fprintf(w, "  [%s] %s\n", ui.BoldMagenta(u), ui.Dim("(sink)"))
			continue
		}
		fmt.Fprintf(w, "  [%s]\n", ui.BoldMagenta(u))
		for _, v := range nbrs {
			fmt.Fprintf(w, "      %s %s\n", ui.Dim("└──→"), ui.Magenta(v))
		}
	}

	roots := g.Roots()
	if len(roots) > 0 {
		fmt.Fprintf(w, "Roots:  %s\n", ui.BoldYellow(join(roots, ", ")))
	}
	_, err := fmt.Fprintf(w, "Leaves: %s\n", ui.BoldGreen(join(g.Leaves(), ", ")))
	return err
}

func join(nodes []int, sep string) string {
	parts := make([]string, len(nodes))
	for i, u := range nodes {
		parts[i] = strconv.Itoa(u)
	}
	return strings.Join(parts, sep)
}

// CheckFormat reports an error if Write does not know format.
func CheckFormat(format string) error {
	switch format {
	case FormatPlain, FormatLevels, FormatJSON, FormatDOT, "":
		return nil
	}
	return fmt.Errorf("unknown format %q (want plain, levels, json or dot)", format)
}
