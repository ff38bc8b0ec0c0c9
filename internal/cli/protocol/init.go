package protocol

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/royalbit/asimov/internal/cli/shared"
	"github.com/royalbit/asimov/internal/regen"
	"github.com/royalbit/asimov/internal/templates"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the protocol directory and files",
	Long: `Create the protocol directory and write every protocol file.

The project name and type are taken from --name and --type, then from
configuration, then detected from marker files such as Cargo.toml,
package.json or go.mod. Existing user-owned files are kept.

Available types: ` + strings.Join(templates.ProjectTypeNames(), ", "),
	Example: `  # Initialize with detected name and type
  asimov init

  # Initialize a Rust project explicitly
  asimov init --name forge --type rust`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		projectType, _ := cmd.Flags().GetString("type")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		rt, err := shared.Setup(cmd)
		if err != nil {
			return err
		}
		return runInit(cmd.OutOrStdout(), rt, initOptions{
			Name:   name,
			Type:   projectType,
			DryRun: dryRun,
		})
	},
}

func init() {
	initCmd.GroupID = shared.GroupGettingStarted
	initCmd.Flags().String("name", "", "Project name (detected when omitted)")
	initCmd.Flags().StringP("type", "t", "", "Project type (detected when omitted)")
	initCmd.Flags().BoolP("dry-run", "n", false, "Report what would be written without writing")
}

type initOptions struct {
	Name   string
	Type   string
	DryRun bool
}

// runInit writes the protocol directory for rt.Dir.
func runInit(out io.Writer, rt *shared.Runtime, opts initOptions) error {
	params, err := shared.ResolveParams(rt.Dir, rt.Config, opts.Name, opts.Type)
	if err != nil {
		return err
	}

	c := shared.NewColors()
	fmt.Fprintf(out, "Initializing %s (%s) in %s\n\n",
		c.White(params.ProjectName), params.ProjectType, rt.ProtocolDirName())

	engine := regen.NewEngine(rt.EngineOptions(params, opts.DryRun))
	report, info, err := engine.Init(rt.Dir, params)
	if info != nil && len(info.Entries) > 0 {
		printInfo(out, rt, info, false)
	}
	if err != nil {
		return directoryFault(rt, info, err)
	}
	if opts.DryRun || report == nil {
		return nil
	}

	if invalid := report.Invalid(); len(invalid) > 0 {
		fmt.Fprintln(out)
		printResults(out, rt, invalid)
		return shared.NewExitError(shared.ExitValidationFailed)
	}

	fmt.Fprintf(out, "\n%s Protocol files ready in %s\n", c.Green(shared.MarkOK), rt.ProtocolDirName())
	return nil
}
