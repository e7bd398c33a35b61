// Package viewer renders call graphs as interactive HTML pages and serves
// them with live reload.
package viewer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/cgraph2dot/cgraph2dot/internal/callgraph"
)

// DefaultTitle is used when Options.Title is empty.
const DefaultTitle = "Call Graph"

const nodeHint = "Double-click to collapse/expand children"

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/callgraph.html.tmpl"))

// Options controls page rendering.
type Options struct {
	Title string
	// LiveReload adds a script that reloads the page on server-sent events
	// from ReloadPath.
	LiveReload bool
	ReloadPath string
}

// NodeData is a node as consumed by vis-network.
type NodeData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Group int    `json:"group"`
	Title string `json:"title"`
}

// EdgeData is an edge as consumed by vis-network.
type EdgeData struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Arrows string `json:"arrows"`
}

// GraphData is the serialized form of a call graph.
type GraphData struct {
	Nodes []NodeData `json:"nodes"`
	Edges []EdgeData `json:"edges"`
}

type pageData struct {
	Title      string
	Nodes      []NodeData
	Edges      []EdgeData
	LiveReload bool
	ReloadPath string
}

// BuildGraphData converts g into vis-network nodes and edges.
func BuildGraphData(g *callgraph.Graph) GraphData {
	data := GraphData{
		Nodes: make([]NodeData, 0, g.NodeCount()),
		Edges: make([]EdgeData, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		data.Nodes = append(data.Nodes, NodeData{
			ID:    n.ID,
			Label: n.Label,
			Group: int(n.Group),
			Title: n.Label + "\n" + nodeHint,
		})
	}
	for _, e := range g.Edges() {
		data.Edges = append(data.Edges, EdgeData{From: e.From, To: e.To, Arrows: "to"})
	}
	return data
}

// Render writes the interactive page for g to w.
func Render(w io.Writer, g *callgraph.Graph, opts Options) error {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.LiveReload && opts.ReloadPath == "" {
		opts.ReloadPath = ReloadPath
	}

	data := BuildGraphData(g)
	page := pageData{
		Title:      opts.Title,
		Nodes:      data.Nodes,
		Edges:      data.Edges,
		LiveReload: opts.LiveReload,
		ReloadPath: opts.ReloadPath,
	}

	// Render into a buffer so a template error never leaves a partial page.
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}

// RenderFile writes the interactive page for g to path.
func RenderFile(g *callgraph.Graph, path string, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, g, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // generated HTML is meant to be world-readable
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
