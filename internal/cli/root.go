// asimov - Protocol validation and regeneration for AI-governed projects
// Source: https://github.com/royalbit/asimov

// Package cli provides Cobra-based CLI commands for the asimov protocol tool.
// It defines the user-facing commands: init, validate, refresh, schema and
// version, and maps their failures onto exit codes.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/royalbit/asimov/internal/cli/protocol"
	"github.com/royalbit/asimov/internal/cli/shared"
	"github.com/royalbit/asimov/internal/cli/util"
	clierrors "github.com/royalbit/asimov/internal/errors"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupGettingStarted = shared.GroupGettingStarted
	GroupProtocol       = shared.GroupProtocol
	GroupReference      = shared.GroupReference
)

var rootCmd = &cobra.Command{
	Use:   "asimov",
	Short: "Protocol validation and regeneration",
	Long: `asimov keeps a project's .asimov/ protocol files valid and current.

Protocol files are validated against their schemas and regenerated from the
canonical templates shipped with this version. User-owned files (roadmap,
sprint, project) are created when missing and never overwritten.

Source: https://github.com/royalbit/asimov`,
	Example: `  # Start governing a project
  asimov init

  # Check every protocol file
  asimov validate

  # Bring drifted files back to canonical
  asimov refresh --diff`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	reportError(rootCmd.ErrOrStderr(), err)
	return err
}

// reportError prints err for the user. Exit errors were already reported by
// the command that returned them; anything that is not a CLIError is shown as
// a runtime error.
func reportError(w io.Writer, err error) {
	if err == nil || shared.IsExitError(err) {
		return
	}
	cliErr := clierrors.AsCLIError(err)
	if cliErr == nil {
		cliErr = clierrors.Wrap(err, clierrors.Runtime)
	}
	clierrors.FprintError(w, cliErr)
}

func init() {
	// Define command groups in display order
	rootCmd.AddGroup(&cobra.Group{ID: GroupGettingStarted, Title: "Getting Started:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupProtocol, Title: "Protocol Files:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupReference, Title: "Reference:"})

	rootCmd.SetHelpCommandGroupID(GroupReference)
	rootCmd.SetCompletionCommandGroupID(GroupReference)

	// Global flags
	rootCmd.PersistentFlags().StringP(shared.DirFlag, "C", "", "Project directory (default: current directory)")
	rootCmd.PersistentFlags().StringP(shared.ConfigFlag, "c", "", "Path to config file (default: <dir>/.asimov/config.json)")
	rootCmd.PersistentFlags().BoolP(shared.DebugFlag, "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool(shared.NoColorFlag, false, "Disable colored output")

	// Register commands from subpackages
	protocol.Register(rootCmd)
	util.Register(rootCmd)
}
