// Package util tests utility CLI commands for asimov.
// Related: internal/cli/util/register.go
// Tags: util, cli, commands, registration
package util

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalbit/asimov/internal/cli/shared"
)

func TestRegister(t *testing.T) {
	// Cannot run in parallel - Register modifies global command state

	rootCmd := &cobra.Command{
		Use:   "test",
		Short: "Test root command",
	}
	rootCmd.AddGroup(&cobra.Group{ID: shared.GroupReference, Title: "Reference:"})

	require.NotPanics(t, func() {
		Register(rootCmd)
	})

	commandNames := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		commandNames[cmd.Name()] = true
	}
	assert.True(t, commandNames["version"], "Should have 'version' command")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version", "--plain"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "asimov ")
}
