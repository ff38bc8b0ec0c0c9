// Package protocol provides the CLI commands that validate, regenerate and
// initialize a project's protocol files.
// Includes: init, validate, refresh, schema
package protocol

import (
	"github.com/spf13/cobra"
)

// Register adds all protocol commands to the root command.
// This function is called from the root CLI package during initialization.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(schemaCmd)
}
