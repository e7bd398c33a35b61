package commands

import (
	"fmt"
	"strings"

	"github.com/cgraph2dot/cgraph2dot/internal/callgraph"
	"github.com/cgraph2dot/cgraph2dot/internal/cli/output"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// GraphOptions holds options for the graph command.
type GraphOptions struct {
	From string
}

// GraphSummary is the structured form of the graph command output.
type GraphSummary struct {
	File      string            `json:"file" yaml:"file"`
	Nodes     int               `json:"nodes" yaml:"nodes"`
	Edges     int               `json:"edges" yaml:"edges"`
	Groups    map[string]int    `json:"groups" yaml:"groups"`
	Roots     []string          `json:"roots" yaml:"roots"`
	Leaves    []string          `json:"leaves" yaml:"leaves"`
	Recursive []string          `json:"recursive" yaml:"recursive"`
	Functions []FunctionSummary `json:"functions" yaml:"functions"`
}

// FunctionSummary describes one function in a call graph.
type FunctionSummary struct {
	ID      string `json:"id" yaml:"id"`
	Label   string `json:"label" yaml:"label"`
	Group   string `json:"group" yaml:"group"`
	Calls   int    `json:"calls" yaml:"calls"`
	Callers int    `json:"callers" yaml:"callers"`
}

// NewGraphCommand creates the graph command.
func NewGraphCommand() *cobra.Command {
	opts := &GraphOptions{}

	cmd := &cobra.Command{
		Use:   "graph <file.dot>",
		Short: "Summarize a call graph",
		Long: `Summarize a DOT call graph: node and edge counts, functions per group,
entry points, leaves, and recursive functions.

Output adapts to environment:
  - Terminal: Styled output with a function table
  - Piped/Scripted: Markdown format (agent-friendly)`,
		Example: `  cgraph2dot graph callgraph.dot

  # Only what complexCalculation reaches
  cgraph2dot graph callgraph.dot --from complexCalculation

  # Machine-readable
  cgraph2dot graph callgraph.dot --output json
  cgraph2dot graph callgraph.dot --output yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "Only include functions reachable from this one")

	return cmd
}

func runGraph(cmd *cobra.Command, path string, opts *GraphOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	g, err := loadGraph(path, opts.From, cmdCtx.Logger)
	if err != nil {
		return err
	}
	summary := summarizeGraph(path, g)

	if ok, err := r.Encode(summary); ok {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		return graphMarkdown(r, summary)
	}
	return graphText(r, summary)
}

func summarizeGraph(path string, g *callgraph.Graph) GraphSummary {
	summary := GraphSummary{
		File:      path,
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount(),
		Groups:    make(map[string]int),
		Roots:     nonNil(g.Roots()),
		Leaves:    nonNil(g.Leaves()),
		Recursive: nonNil(g.Recursive()),
	}
	for group, n := range g.CountByGroup() {
		summary.Groups[group.String()] = n
	}
	for _, n := range g.Nodes() {
		summary.Functions = append(summary.Functions, FunctionSummary{
			ID:      n.ID,
			Label:   n.Label,
			Group:   n.Group.String(),
			Calls:   len(g.Callees(n.ID)),
			Callers: len(g.Callers(n.ID)),
		})
	}
	return summary
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// groupCounts lists non-empty groups in legend order.
func groupCounts(s GraphSummary) []string {
	var parts []string
	for _, group := range callgraph.AllGroups() {
		if n := s.Groups[group.String()]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", group, n))
		}
	}
	return parts
}

// functionTable builds the per-function table. groupCell renders the group
// column; nil leaves it plain.
func functionTable(s GraphSummary, groupCell func(FunctionSummary) string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Function", "Label", "Group", "Calls", "Callers"})
	for _, f := range s.Functions {
		group := f.Group
		if groupCell != nil {
			group = groupCell(f)
		}
		t.AppendRow(table.Row{f.ID, f.Label, group, f.Calls, f.Callers})
	}
	return t
}

// graphText outputs the summary in styled text format.
func graphText(r *output.Renderer, s GraphSummary) error {
	styles := r.Styles()

	r.Header(1, "Call Graph: "+s.File)
	r.Printf("%s %d functions, %d calls\n", styles.Bold.Render("Size:"), s.Nodes, s.Edges)
	r.Printf("%s %s\n", styles.Bold.Render("Groups:"), strings.Join(groupCounts(s), ", "))
	r.Printf("%s %s\n", styles.Bold.Render("Entry points:"), joinOrNone(s.Roots))
	r.Printf("%s %s\n", styles.Bold.Render("Leaves:"), joinOrNone(s.Leaves))
	r.Printf("%s %s\n", styles.Bold.Render("Recursive:"), joinOrNone(s.Recursive))
	r.Println("")

	t := functionTable(s, func(f FunctionSummary) string {
		return styles.Group(callgraph.Classify(f.ID)).Render(f.Group)
	})
	r.Println(t.Render())
	return nil
}

// graphMarkdown outputs the summary in markdown format.
func graphMarkdown(r *output.Renderer, s GraphSummary) error {
	r.Println(output.FormatHeader(1, "Call Graph: "+s.File))
	r.Println("")
	r.Println(output.FormatKeyValue("Functions", fmt.Sprint(s.Nodes)))
	r.Println(output.FormatKeyValue("Calls", fmt.Sprint(s.Edges)))
	r.Println(output.FormatKeyValue("Groups", strings.Join(groupCounts(s), ", ")))
	r.Println(output.FormatKeyValue("Entry points", joinOrNone(s.Roots)))
	r.Println(output.FormatKeyValue("Leaves", joinOrNone(s.Leaves)))
	r.Println(output.FormatKeyValue("Recursive", joinOrNone(s.Recursive)))
	r.Println("")
	r.Println(output.FormatHeader(2, "Functions"))
	r.Println("")
	r.Println(functionTable(s, nil).RenderMarkdown())
	return nil
}

func joinOrNone(s []string) string {
	if len(s) == 0 {
		return "(none)"
	}
	return strings.Join(s, ", ")
}
