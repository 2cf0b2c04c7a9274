package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/coltable/internal/tui"

	coltable "github.com/mrz1836/coltable"
)

// demoFlags holds the flags specific to the demo command.
type demoFlags struct {
	tree  bool
	color bool
}

// AddDemoCommand registers the demo command on the root command. demo is a
// fixed, self-contained showcase of the coltable engine, useful for
// confirming terminal width negotiation and color support without
// supplying any input data.
func AddDemoCommand(root *cobra.Command, global *GlobalFlags) {
	df := &demoFlags{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a fixed sample table to demonstrate coltable's layout engine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, df, global)
		},
	}

	cmd.Flags().BoolVar(&df.tree, "tree", false, "render the sample as a parent/child tree instead of a flat table")
	cmd.Flags().BoolVar(&df.color, "color", true, "colorize the STATE column")

	root.AddCommand(cmd)
}

type demoProcess struct {
	pid      string
	name     string
	state    string
	children []demoProcess
}

func demoData() []demoProcess {
	return []demoProcess{
		{pid: "1", name: "init", state: "running", children: []demoProcess{
			{pid: "42", name: "sshd", state: "sleeping"},
			{pid: "87", name: "coltable", state: "running", children: []demoProcess{
				{pid: "88", name: "render-worker", state: "running"},
			}},
		}},
		{pid: "910", name: "cron", state: "sleeping"},
	}
}

func runDemo(cmd *cobra.Command, df *demoFlags, global *GlobalFlags) error {
	logger := Logger()
	logger.Debug().Bool("tree", df.tree).Msg("rendering demo table")

	out := tui.NewOutput(cmd.OutOrStdout(), global.Output)

	if global.Output == OutputJSON {
		out.Table([]string{"PID", "NAME", "STATE"}, flattenDemo(demoData()))
		return nil
	}

	var tbl *coltable.Table
	if df.tree {
		tbl = buildDemoTree(df)
	} else {
		tbl = buildDemoFlat(df)
	}

	sp := out.Spinner(cmd.Context(), "rendering demo table")
	rendered, err := tbl.Render(cmd.Context())
	sp.Stop()
	if err != nil {
		wrapped := fmt.Errorf("demo render: %w", err)
		out.Error(wrapped)
		return wrapped
	}

	out.Text(rendered)
	return nil
}

func buildDemoFlat(df *demoFlags) *coltable.Table {
	var opts []coltable.TableOption
	if df.color {
		opts = append(opts, coltable.WithColors())
	}
	tbl := coltable.NewTable(opts...)
	tbl.NewColumn("PID", coltable.Fraction(0))
	tbl.NewColumn("NAME", coltable.Fraction(0))
	col := tbl.NewColumn("STATE", coltable.Fraction(0))

	for _, row := range flattenDemo(demoData()) {
		ln := tbl.NewLine(nil)
		ln.SetCell(0, row[0])
		ln.SetCell(1, row[1])
		ln.SetCell(2, row[2])
		if df.color {
			ln.SetCellColor(col.SeqNum(), demoStateColor(row[2]))
		}
	}
	return tbl
}

func buildDemoTree(df *demoFlags) *coltable.Table {
	var opts []coltable.TableOption
	opts = append(opts, coltable.WithTree())
	if df.color {
		opts = append(opts, coltable.WithColors())
	}
	tbl := coltable.NewTable(opts...)
	tbl.NewColumn("NAME", coltable.Fraction(0), coltable.TreeColumn())
	tbl.NewColumn("PID", coltable.Fraction(0))
	col := tbl.NewColumn("STATE", coltable.Fraction(0))

	var addProcess func(p demoProcess, parent *coltable.Line)
	addProcess = func(p demoProcess, parent *coltable.Line) {
		ln := tbl.NewLine(parent)
		ln.SetCell(0, p.name)
		ln.SetCell(1, p.pid)
		ln.SetCell(2, p.state)
		if df.color {
			ln.SetCellColor(col.SeqNum(), demoStateColor(p.state))
		}
		for _, child := range p.children {
			addProcess(child, ln)
		}
	}
	for _, p := range demoData() {
		addProcess(p, nil)
	}
	return tbl
}

// demoStateColor mirrors internal/tui's color palette with plain hex
// values, since coltable.ColumnColor/SetCellColor take a lipgloss.Color
// string rather than an adaptive light/dark pair.
func demoStateColor(state string) string {
	switch state {
	case "running":
		return "#00FF87"
	case "sleeping":
		return "#6C6C6C"
	default:
		return "#FFD700"
	}
}

func flattenDemo(procs []demoProcess) [][]string {
	var rows [][]string
	var walk func(p demoProcess)
	walk = func(p demoProcess) {
		rows = append(rows, []string{p.pid, p.name, p.state})
		for _, c := range p.children {
			walk(c)
		}
	}
	for _, p := range procs {
		walk(p)
	}
	return rows
}
