// Package callgraph provides a directed call graph of functions.
// Unlike a dependency DAG, call graphs may contain cycles: recursive
// functions show up as self-loops or as longer loops through mutual calls.
package callgraph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNodeNotFound is returned by queries on an id that is not in the graph.
var ErrNodeNotFound = errors.New("node not found")

// Node is a function in the call graph.
type Node struct {
	// ID is the unique identifier (usually the symbol name)
	ID string
	// Label is the display name
	Label string
	// Group is the category used for coloring and filtering
	Group Group
	// Declared is false for nodes only known as an edge endpoint
	Declared bool
}

// Edge is a call from one function to another.
type Edge struct {
	From string
	To   string
}

// String returns the edge in DOT arrow form.
func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.From, e.To)
}

// Graph is a directed call graph.
type Graph struct {
	nodes   map[string]*Node
	callees map[string][]string // caller -> callees
	callers map[string][]string // callee -> callers
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		callees: make(map[string][]string),
		callers: make(map[string][]string),
	}
}

// AddNode declares a function in the graph, or updates its label if it
// exists. The group is derived from the id.
func (g *Graph) AddNode(id, label string) *Node {
	node := g.ensureNode(id)
	node.Label = label
	node.Declared = true
	return node
}

func (g *Graph) ensureNode(id string) *Node {
	if node, exists := g.nodes[id]; exists {
		return node
	}
	node := &Node{ID: id, Label: id, Group: Classify(id)}
	g.nodes[id] = node
	g.callees[id] = []string{}
	g.callers[id] = []string{}
	return node
}

// HasNode reports whether id is in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// AddEdge records that from calls to. Missing endpoints are added
// undeclared, with their id as label. Duplicate edges are ignored;
// self-loops are allowed.
func (g *Graph) AddEdge(from, to string) {
	g.ensureNode(from)
	g.ensureNode(to)

	if !contains(g.callees[from], to) {
		g.callees[from] = append(g.callees[from], to)
	}
	if !contains(g.callers[to], from) {
		g.callers[to] = append(g.callers[to], from)
	}
}

// Node returns a node by id.
func (g *Graph) Node(id string) (*Node, bool) {
	node, ok := g.nodes[id]
	return node, ok
}

// Nodes returns all nodes sorted by id.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, node := range g.nodes {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID < nodes[j].ID
	})
	return nodes
}

// Edges returns all edges sorted by caller, then callee.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for from, tos := range g.callees {
		for _, to := range tos {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// Callees returns the functions called by id, in insertion order.
func (g *Graph) Callees(id string) []string {
	return g.callees[id]
}

// Callers returns the functions calling id, in insertion order.
func (g *Graph) Callers(id string) []string {
	return g.callers[id]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// DeclaredCount returns the number of nodes added with AddNode.
func (g *Graph) DeclaredCount() int {
	count := 0
	for _, node := range g.nodes {
		if node.Declared {
			count++
		}
	}
	return count
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, tos := range g.callees {
		count += len(tos)
	}
	return count
}

// Roots returns functions nobody calls (other than themselves).
func (g *Graph) Roots() []string {
	var roots []string
	for id := range g.nodes {
		if len(without(g.callers[id], id)) == 0 {
			roots = append(roots, id)
		}
	}
	sort.Strings(roots)
	return roots
}

// Leaves returns functions that call nothing (other than themselves).
func (g *Graph) Leaves() []string {
	var leaves []string
	for id := range g.nodes {
		if len(without(g.callees[id], id)) == 0 {
			leaves = append(leaves, id)
		}
	}
	sort.Strings(leaves)
	return leaves
}

// Recursive returns the functions that lie on a call cycle, including
// functions that call themselves directly.
func (g *Graph) Recursive() []string {
	var result []string
	for id := range g.nodes {
		if contains(g.callees[id], id) {
			result = append(result, id)
			continue
		}
		for _, callee := range g.callees[id] {
			if g.reaches(callee, id) {
				result = append(result, id)
				break
			}
		}
	}
	sort.Strings(result)
	return result
}

// reaches reports whether target is reachable from start.
func (g *Graph) reaches(start, target string) bool {
	visited := make(map[string]bool)
	stack := []string{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == target {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true
		stack = append(stack, g.callees[id]...)
	}
	return false
}

// Reachable returns every function transitively called by id, excluding id
// itself unless it is recursive.
func (g *Graph) Reachable(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	seen := make(map[string]bool)

	var visit func(nodeID string)
	visit = func(nodeID string) {
		for _, callee := range g.callees[nodeID] {
			if !seen[callee] {
				seen[callee] = true
				visit(callee)
			}
		}
	}
	visit(id)

	result := make([]string, 0, len(seen))
	for nodeID := range seen {
		result = append(result, nodeID)
	}
	sort.Strings(result)
	return result, nil
}

// Subgraph returns a new graph containing only the given nodes and the
// edges between them. Unknown ids are ignored.
func (g *Graph) Subgraph(ids []string) *Graph {
	sub := New()
	keep := make(map[string]bool)

	for _, id := range ids {
		if node, ok := g.nodes[id]; ok {
			keep[id] = true
			copied := sub.ensureNode(id)
			copied.Label = node.Label
			copied.Declared = node.Declared
		}
	}

	for id := range keep {
		for _, callee := range g.callees[id] {
			if keep[callee] {
				sub.AddEdge(id, callee)
			}
		}
	}

	return sub
}

// CountByGroup returns the number of nodes in each group.
func (g *Graph) CountByGroup() map[Group]int {
	counts := make(map[Group]int)
	for _, node := range g.nodes {
		counts[node.Group]++
	}
	return counts
}

func contains(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}

func without(slice []string, str string) []string {
	out := make([]string, 0, len(slice))
	for _, s := range slice {
		if s != str {
			out = append(out, s)
		}
	}
	return out
}
