package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/coltable/internal/config"
	"github.com/mrz1836/coltable/internal/errors"
	"github.com/mrz1836/coltable/internal/tui"

	coltable "github.com/mrz1836/coltable"
)

// renderDocument is the shape of a --config YAML document: an explicit
// column list plus the row data to fill them with.
type renderDocument struct {
	Columns []string   `yaml:"columns"`
	Rows    [][]string `yaml:"rows"`
}

// renderFlags holds the flags specific to the render command.
type renderFlags struct {
	file       string
	configFile string
	raw        bool
	export     bool
	noHeadings bool
	maxOut     bool
	noColor    bool
}

// AddRenderCommand registers the render command on the root command.
func AddRenderCommand(root *cobra.Command, global *GlobalFlags) {
	rf := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render tabular data read from a CSV file, stdin, or a YAML config",
		Long: "render lays out column headers and row data through the coltable " +
			"engine and prints the result. Input comes from --file (CSV), stdin " +
			"(CSV, when neither --file nor --config is given), or --config (a YAML " +
			"document listing columns and rows explicitly).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, rf, global)
		},
	}

	cmd.Flags().StringVarP(&rf.file, "file", "f", "", "path to a CSV file to render (default: stdin)")
	cmd.Flags().StringVarP(&rf.configFile, "config", "c", "", "path to a YAML document listing columns and rows")
	cmd.Flags().BoolVar(&rf.raw, "raw", false, "print uncolored, unaligned space-separated output")
	cmd.Flags().BoolVar(&rf.export, "export", false, "print shell-quoted KEY=\"VALUE\" output")
	cmd.Flags().BoolVar(&rf.noHeadings, "no-headings", false, "omit the header row")
	cmd.Flags().BoolVar(&rf.maxOut, "max-out", false, "pad every cell to its column's full negotiated width")
	cmd.Flags().BoolVar(&rf.noColor, "no-color", false, "disable ANSI color output regardless of configuration")

	root.AddCommand(cmd)
}

func runRender(cmd *cobra.Command, rf *renderFlags, global *GlobalFlags) error {
	ctx := cmd.Context()
	correlationID := "render-" + uuid.New().String()[:8]
	logger := Logger().With().Str("correlation_id", correlationID).Logger()
	out := tui.NewOutput(cmd.OutOrStdout(), global.Output)

	if rf.file != "" && rf.configFile != "" {
		err := fmt.Errorf("%w: --file and --config are mutually exclusive", errors.ErrConflictingFlags)
		out.Error(tui.NewActionableError(err.Error(), "pass only one of --file or --config"))
		return err
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to default render configuration")
		cfg = config.DefaultConfig()
	}

	headers, rows, err := loadRenderInput(cmd, rf)
	if err != nil {
		out.Error(err)
		return err
	}

	if global.Output == OutputJSON {
		out.Table(headers, rows)
		return nil
	}

	sp := out.Spinner(ctx, "laying out table")
	rendered, err := tui.RenderRows(headers, rows, renderOptions(rf, cfg)...)
	sp.Stop()
	if err != nil {
		wrapped := fmt.Errorf("render: %w", err)
		logger.Error().Err(err).Msg("render failed")
		out.Error(wrapped)
		return wrapped
	}

	logger.Debug().Int("columns", len(headers)).Int("rows", len(rows)).Msg("rendered table")

	out.Text(rendered)
	return nil
}

// loadRenderInput resolves headers/rows from --config, --file, or stdin, in
// that order of precedence.
func loadRenderInput(cmd *cobra.Command, rf *renderFlags) ([]string, [][]string, error) {
	if rf.configFile != "" {
		return loadRenderConfig(rf.configFile)
	}

	var r io.Reader
	if rf.file != "" {
		f, err := os.Open(rf.file) //nolint:gosec // user-provided render input path
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", rf.file, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	} else {
		r = cmd.InOrStdin()
	}

	return loadRenderCSV(r)
}

func loadRenderConfig(path string) ([]string, [][]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided render config path
	if err != nil {
		return nil, nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var doc renderDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", errors.ErrUnsupportedInputFormat, path, err)
	}
	if len(doc.Columns) == 0 {
		return nil, nil, fmt.Errorf("%w: %s declares no columns", errors.ErrNoInputData, path)
	}

	return doc.Columns, doc.Rows, nil
}

func loadRenderCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errors.ErrUnsupportedInputFormat, err)
	}
	if len(records) == 0 {
		return nil, nil, errors.ErrNoInputData
	}

	return records[0], records[1:], nil
}

// renderOptions translates the render command's flags and the layered
// configuration defaults into coltable layout options.
func renderOptions(rf *renderFlags, cfg *config.Config) []coltable.TableOption {
	opts := []coltable.TableOption{
		coltable.WithTermReduce(cfg.Render.TermReduce),
	}
	if rf.raw {
		opts = append(opts, coltable.WithRaw())
	}
	if rf.export {
		opts = append(opts, coltable.WithExport())
	}
	if rf.noHeadings {
		opts = append(opts, coltable.WithNoHeadings())
	}
	if rf.maxOut || cfg.Render.MaxOut {
		opts = append(opts, coltable.WithMaxOut())
	}
	if cfg.Render.Colors && !rf.noColor && tui.HasColorSupport() {
		opts = append(opts, coltable.WithColors())
	}
	if cfg.Render.Symbols == "ascii" {
		opts = append(opts, coltable.WithSymbols(coltable.AsciiSymbols()))
	}
	return opts
}
