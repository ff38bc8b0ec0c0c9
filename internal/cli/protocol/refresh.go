package protocol

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/royalbit/asimov/internal/cli/shared"
	"github.com/royalbit/asimov/internal/progress"
	"github.com/royalbit/asimov/internal/regen"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Regenerate drifted protocol files",
	Long: `Bring every protocol file back to its canonical content.

Missing files are created. Protocol files that differ from the canonical
templates are overwritten. User-owned files (roadmap, sprint, project) are
created when missing and never overwritten.

Each file is listed as created, updated, unchanged or failed. A failure on
one file does not stop the others.`,
	Example: `  # Refresh the current project
  asimov refresh

  # Show what would change without writing
  asimov refresh --dry-run --diff`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		showDiff, _ := cmd.Flags().GetBool("diff")

		rt, err := shared.Setup(cmd)
		if err != nil {
			return err
		}

		var display *progress.Display
		if f := shared.Stdout(cmd.OutOrStdout()); f != nil && rt.Config.ShowProgress {
			if caps := progress.DetectFor(f); caps.IsTTY {
				display = progress.NewDisplay(caps, f)
			}
		}
		return runRefresh(cmd.OutOrStdout(), rt, refreshOptions{
			DryRun:   dryRun,
			ShowDiff: showDiff || rt.Config.ShowDiff,
			Display:  display,
		})
	},
}

func init() {
	refreshCmd.GroupID = shared.GroupProtocol
	refreshCmd.Flags().BoolP("dry-run", "n", false, "Report what would change without writing")
	refreshCmd.Flags().Bool("diff", false, "Show a diff for every updated file")
}

type refreshOptions struct {
	DryRun   bool
	ShowDiff bool
	Display  *progress.Display // Nil disables the spinner
}

// runRefresh regenerates the protocol directory and reports every file.
func runRefresh(out io.Writer, rt *shared.Runtime, opts refreshOptions) error {
	params, err := shared.ResolveParams(rt.Dir, rt.Config, "", "")
	if err != nil {
		return err
	}
	engine := regen.NewEngine(rt.EngineOptions(params, opts.DryRun))

	if opts.Display != nil {
		opts.Display.Start("Refreshing protocol files")
	}
	report, info, regenErr := engine.ValidateAndRegenerate(rt.Dir)
	if opts.Display != nil {
		switch {
		case regenErr != nil:
			opts.Display.Fail("Refresh stopped", regenErr)
		case info != nil && info.NotGoverned:
			opts.Display.Warn("No protocol directory")
		case info != nil && info.Err() != nil:
			opts.Display.Warn("Some protocol files could not be refreshed")
		default:
			opts.Display.Succeed("Protocol files checked")
		}
	}

	if info != nil && info.NotGoverned {
		printNotGoverned(out, rt)
		return nil
	}
	if info != nil {
		printInfo(out, rt, info, opts.ShowDiff)
		if err := info.Err(); err != nil {
			rt.Logger.Warn().Err(err).Msg("some protocol files could not be refreshed")
		}
	}
	if regenErr != nil {
		return directoryFault(rt, info, regenErr)
	}

	if report == nil {
		return nil
	}
	remaining := unresolved(report, info)
	if len(remaining) > 0 {
		fmt.Fprintln(out)
		printResults(out, rt, remaining)
		return shared.NewExitError(shared.ExitValidationFailed)
	}
	return nil
}
