// Package dot reads and writes the subset of Graphviz DOT used for call
// graphs: quoted node declarations with a label attribute and quoted
// directed edges.
//
//	digraph callgraph {
//	    "main" [label="main"];
//	    "main" -> "add";
//	}
package dot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/cgraph2dot/cgraph2dot/internal/callgraph"
)

// ErrNoGraph is returned when the input contains no nodes and no edges.
var ErrNoGraph = errors.New("no call graph found in input")

var (
	nodePattern = regexp.MustCompile(`"([^"]+)"\s*\[label="([^"]+)"\]`)
	edgePattern = regexp.MustCompile(`"([^"]+)"\s*->\s*"([^"]+)"`)
)

// Parse reads a call graph from r. Node declarations are collected before
// edges, and the first declaration of an id wins.
func Parse(r io.Reader) (*callgraph.Graph, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dot input: %w", err)
	}
	return ParseString(string(content))
}

// ParseString reads a call graph from a string.
func ParseString(content string) (*callgraph.Graph, error) {
	g := callgraph.New()

	for _, m := range nodePattern.FindAllStringSubmatch(content, -1) {
		if g.HasNode(m[1]) {
			continue
		}
		g.AddNode(m[1], m[2])
	}

	for _, m := range edgePattern.FindAllStringSubmatch(content, -1) {
		g.AddEdge(m[1], m[2])
	}

	if g.NodeCount() == 0 {
		return nil, ErrNoGraph
	}
	return g, nil
}

// ParseFile reads a call graph from the file at path.
func ParseFile(path string) (*callgraph.Graph, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided input
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return g, nil
}

// Write emits g as a digraph named name. Nodes and edges are written in
// sorted order so the output is stable.
func Write(w io.Writer, g *callgraph.Graph, name string) error {
	if name == "" {
		name = "callgraph"
	}

	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "digraph %s {\n", quoteID(name))
	for _, n := range g.Nodes() {
		_, _ = fmt.Fprintf(bw, "    \"%s\" [label=\"%s\"];\n", n.ID, n.Label)
	}
	for _, e := range g.Edges() {
		_, _ = fmt.Fprintf(bw, "    \"%s\" -> \"%s\";\n", e.From, e.To)
	}
	_, _ = fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write dot output: %w", err)
	}
	return nil
}

// quoteID quotes a graph name unless it is a plain identifier.
func quoteID(name string) string {
	for _, r := range name {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return `"` + strings.ReplaceAll(name, `"`, `\"`) + `"`
		}
	}
	return name
}
