package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVersionCommand(t *testing.T) {
	t.Parallel()

	rootCmd := &cobra.Command{Use: "coltable"}
	AddVersionCommand(rootCmd, &GlobalFlags{Output: OutputText}, BuildInfo{Version: "1.2.3", Commit: "abc1234", Date: "2026-01-01"})

	cmd, _, err := rootCmd.Find([]string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "version", cmd.Use)
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	rootCmd := &cobra.Command{Use: "coltable"}
	AddVersionCommand(rootCmd, &GlobalFlags{Output: OutputText}, BuildInfo{Version: "1.2.3", Commit: "abc1234", Date: "2026-01-01"})

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())

	output := out.String()
	assert.Contains(t, output, "1.2.3")
	assert.Contains(t, output, "abc1234")
	assert.Contains(t, output, "2026-01-01")
}

func TestRunVersion_Defaults(t *testing.T) {
	t.Parallel()

	rootCmd := &cobra.Command{Use: "coltable"}
	AddVersionCommand(rootCmd, &GlobalFlags{Output: OutputText}, BuildInfo{})

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())

	output := out.String()
	assert.Contains(t, output, "dev")
	assert.Contains(t, output, "none")
	assert.Contains(t, output, "unknown")
}
