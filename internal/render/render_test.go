package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/joshharrison/bfswalk/internal/bfs"
	"github.com/joshharrison/bfswalk/internal/graph"
	"github.com/joshharrison/bfswalk/internal/ui"
)

func traverse(t *testing.T, start int) (*graph.Graph, *bfs.Result) {
	t.Helper()
	g := graph.Default()
	res, err := bfs.Traverse(g, start)
	if err != nil {
		t.Fatalf("traverse: %v", err)
	}
	return g, res
}

func TestPlain(t *testing.T) {
	tests := map[int]string{
		0: "0 1 2 3 4\n",
		1: "1 3 4\n",
		2: "2 3 4\n",
		3: "3 4\n",
		4: "4\n",
	}

	for start, want := range tests {
		_, res := traverse(t, start)
		var buf bytes.Buffer
		if err := Plain(&buf, res.Order); err != nil {
			t.Fatalf("Plain: %v", err)
		}
		if buf.String() != want {
			t.Errorf("start %d: got %q, want %q", start, buf.String(), want)
		}
	}
}

func TestPath(t *testing.T) {
	var buf bytes.Buffer
	if err := Path(&buf, []int{0, 2, 4}); err != nil {
		t.Fatalf("Path: %v", err)
	}
	if buf.String() != "0 -> 2 -> 4\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestLevels(t *testing.T) {
	ui.SetColor(false)
	_, res := traverse(t, 0)

	var buf bytes.Buffer
	if err := Levels(&buf, res); err != nil {
		t.Fatalf("Levels: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Breadth-first from 0",
		"depth 0  0\n",
		"depth 1  1(0) 2(0)\n",
		"depth 2  3(1) 4(2)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestJSON(t *testing.T) {
	_, res := traverse(t, 0)

	var buf bytes.Buffer
	if err := JSON(&buf, res); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var parsed struct {
		Start  int            `json:"start"`
		Order  []int          `json:"order"`
		Parent map[string]int `json:"parent"`
		Depth  map[string]int `json:"depth"`
		Levels [][]int        `json:"levels"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}

	if parsed.Start != 0 || len(parsed.Order) != 5 {
		t.Errorf("unexpected start/order: %d %v", parsed.Start, parsed.Order)
	}
	if parsed.Parent["4"] != 2 {
		t.Errorf("expected parent of 4 to be 2, got %d", parsed.Parent["4"])
	}
	if parsed.Depth["3"] != 2 {
		t.Errorf("expected depth of 3 to be 2, got %d", parsed.Depth["3"])
	}
	if len(parsed.Levels) != 3 {
		t.Errorf("expected 3 levels, got %v", parsed.Levels)
	}
}

func TestDOT(t *testing.T) {
	g, res := traverse(t, 1)

	var buf bytes.Buffer
	if err := DOT(&buf, g, res); err != nil {
		t.Fatalf("DOT: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"digraph bfswalk {",
		`1 [label="1\n#1", style=bold];`,
		"  0;\n",
		"1 -> 3 [color=red, penwidth=2];",
		"3 -> 4 [color=red, penwidth=2];",
		"0 -> 1;",
		"2 -> 4;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected DOT to contain %q, got:\n%s", want, out)
		}
	}
}

func TestDOT_GraphOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := DOT(&buf, graph.Default(), nil); err != nil {
		t.Fatalf("DOT: %v", err)
	}
	if strings.Contains(buf.String(), "color=red") {
		t.Errorf("expected no highlighted edges without a result:\n%s", buf.String())
	}
}

func TestASCII(t *testing.T) {
	ui.SetColor(false)

	var buf bytes.Buffer
	if err := ASCII(&buf, graph.Default()); err != nil {
		t.Fatalf("ASCII: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Graph (5 nodes, 6 edges)",
		"[4] (sink)",
		"└──→ 3",
		"Roots:  0\n",
		"Leaves: 4\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	g, res := traverse(t, 0)
	if err := Write(&bytes.Buffer{}, "xml", g, res); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWrite_DefaultsToPlain(t *testing.T) {
	g, res := traverse(t, 2)
	var buf bytes.Buffer
	if err := Write(&buf, "", g, res); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "2 3 4\n" {
		t.Errorf("got %q", buf.String())
	}
}
