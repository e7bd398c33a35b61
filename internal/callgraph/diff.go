package callgraph

import (
	"fmt"
	"sort"
	"strings"
)

// NodeKey identifies a node for structural comparison.
type NodeKey struct {
	ID    string
	Label string
}

// Diff is the structural difference between a reference graph and a
// generated graph. Ordering of nodes and edges is ignored.
type Diff struct {
	NodesOnlyInReference []NodeKey
	NodesOnlyInGenerated []NodeKey
	EdgesOnlyInReference []Edge
	EdgesOnlyInGenerated []Edge
}

// Compare returns the structural difference between ref and gen. Only
// declared nodes take part in the node comparison.
func Compare(ref, gen *Graph) Diff {
	refNodes, genNodes := nodeSet(ref), nodeSet(gen)
	refEdges, genEdges := edgeSet(ref), edgeSet(gen)

	return Diff{
		NodesOnlyInReference: sortedNodeKeys(subtract(refNodes, genNodes)),
		NodesOnlyInGenerated: sortedNodeKeys(subtract(genNodes, refNodes)),
		EdgesOnlyInReference: sortedEdges(subtract(refEdges, genEdges)),
		EdgesOnlyInGenerated: sortedEdges(subtract(genEdges, refEdges)),
	}
}

// Equal reports whether the graphs were structurally identical.
func (d Diff) Equal() bool {
	return len(d.NodesOnlyInReference) == 0 &&
		len(d.NodesOnlyInGenerated) == 0 &&
		len(d.EdgesOnlyInReference) == 0 &&
		len(d.EdgesOnlyInGenerated) == 0
}

// Summary renders a human-readable report of the difference.
func (d Diff) Summary(ref, gen *Graph) string {
	if d.Equal() {
		return "Graphs are structurally identical"
	}

	var lines []string
	if len(d.NodesOnlyInReference) > 0 {
		lines = append(lines, "Nodes only in reference file:")
		for _, n := range d.NodesOnlyInReference {
			lines = append(lines, fmt.Sprintf("  - %s [label=%s]", n.ID, n.Label))
		}
	}
	if len(d.NodesOnlyInGenerated) > 0 {
		lines = append(lines, "Nodes only in generated file:")
		for _, n := range d.NodesOnlyInGenerated {
			lines = append(lines, fmt.Sprintf("  + %s [label=%s]", n.ID, n.Label))
		}
	}
	if len(d.EdgesOnlyInReference) > 0 {
		lines = append(lines, "Edges only in reference file:")
		for _, e := range d.EdgesOnlyInReference {
			lines = append(lines, "  - "+e.String())
		}
	}
	if len(d.EdgesOnlyInGenerated) > 0 {
		lines = append(lines, "Edges only in generated file:")
		for _, e := range d.EdgesOnlyInGenerated {
			lines = append(lines, "  + "+e.String())
		}
	}

	var sb strings.Builder
	sb.WriteString("Graphs differ:\n")
	fmt.Fprintf(&sb, "  Reference: %d nodes, %d edges\n", ref.DeclaredCount(), ref.EdgeCount())
	fmt.Fprintf(&sb, "  Generated: %d nodes, %d edges\n", gen.DeclaredCount(), gen.EdgeCount())
	sb.WriteString("\nDifferences:\n")
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}

func nodeSet(g *Graph) map[NodeKey]bool {
	set := make(map[NodeKey]bool, g.DeclaredCount())
	for _, n := range g.nodes {
		if !n.Declared {
			continue
		}
		set[NodeKey{ID: n.ID, Label: n.Label}] = true
	}
	return set
}

func edgeSet(g *Graph) map[Edge]bool {
	set := make(map[Edge]bool, g.EdgeCount())
	for _, e := range g.Edges() {
		set[e] = true
	}
	return set
}

func subtract[K comparable](a, b map[K]bool) []K {
	var out []K
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	return out
}

func sortedNodeKeys(keys []NodeKey) []NodeKey {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ID != keys[j].ID {
			return keys[i].ID < keys[j].ID
		}
		return keys[i].Label < keys[j].Label
	})
	return keys
}

func sortedEdges(edges []Edge) []Edge {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}
