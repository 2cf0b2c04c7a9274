package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/coltable/internal/tui"
)

// repoURL is the project's source location, printed as a hyperlink (or its
// underlined fallback) after the version line.
const repoURL = "https://github.com/mrz1836/coltable"

// AddVersionCommand registers the version command on the root command.
// Cobra already exposes build info via the root command's --version flag;
// this subcommand gives scripts a stable, flag-independent way to fetch it.
func AddVersionCommand(root *cobra.Command, global *GlobalFlags, info BuildInfo) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the coltable version, commit, and build date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := tui.NewOutput(cmd.OutOrStdout(), global.Output)
			out.Text(formatVersion(info) + "\n")
			out.URL(repoURL, "")
			return nil
		},
	}

	root.AddCommand(cmd)
}
