package protocol

import (
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/royalbit/asimov/internal/cli/shared"
	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/regen"
	"github.com/royalbit/asimov/internal/schema"
	"github.com/royalbit/asimov/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files|globs...]",
	Short: "Validate protocol files against their schemas",
	Long: `Validate protocol files against their schemas.

Without arguments every file in the protocol directory is checked. File
arguments and glob patterns (including **) select files directly; each file
is validated by the schema its name selects.

With --regenerate, protocol files that drifted from the canonical templates
are rewritten first. User-owned files (roadmap, sprint, project) are only
created when missing.`,
	Example: `  # Validate the current project
  asimov validate

  # Validate specific files
  asimov validate .asimov/warmup.yaml 'docs/**/*roadmap*.yaml'

  # Repair drifted files, then validate
  asimov validate --regenerate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		regenerate, _ := cmd.Flags().GetBool("regenerate")

		rt, err := shared.Setup(cmd)
		if err != nil {
			return err
		}
		return runValidate(cmd.OutOrStdout(), rt, args, regenerate)
	},
}

func init() {
	validateCmd.GroupID = shared.GroupProtocol
	validateCmd.Flags().BoolP("regenerate", "r", false, "Rewrite drifted protocol files before validating")
}

// runValidate validates either the given files or the whole protocol directory.
func runValidate(out io.Writer, rt *shared.Runtime, args []string, regenerate bool) error {
	if len(args) > 0 {
		if regenerate {
			return clierrors.InvalidFlagCombination("--regenerate with file arguments",
				"regeneration always covers the whole protocol directory")
		}
		return validateFiles(out, rt, args)
	}

	params, err := shared.ResolveParams(rt.Dir, rt.Config, "", "")
	if err != nil {
		return err
	}
	engine := regen.NewEngine(rt.EngineOptions(params, false))

	var (
		report   *regen.Report
		info     *regen.Info
		regenErr error
	)
	if regenerate {
		report, info, regenErr = engine.ValidateAndRegenerate(rt.Dir)
	} else {
		report, err = engine.Validate(rt.Dir)
		if err != nil {
			return fmt.Errorf("validating %s: %w", rt.Dir, err)
		}
	}

	if report == nil || !report.Governed {
		if regenErr != nil {
			return directoryFault(rt, info, regenErr)
		}
		printNotGoverned(out, rt)
		return nil
	}

	if info != nil && len(info.Changed()) > 0 {
		printInfo(out, rt, info, false)
		fmt.Fprintln(out)
	}
	printResults(out, rt, report.Results)
	printMissing(out, report.Missing)
	printSummary(out, report.Results)

	if regenErr != nil {
		return directoryFault(rt, info, regenErr)
	}
	if !report.Valid() {
		return shared.NewExitError(shared.ExitValidationFailed)
	}
	return nil
}

// validateFiles validates explicit file arguments and glob patterns.
func validateFiles(out io.Writer, rt *shared.Runtime, patterns []string) error {
	files, err := expandPatterns(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return clierrors.NoMatchingFiles(patterns)
	}

	results := make([]*validation.Result, 0, len(files))
	for _, path := range files {
		if result, ok := validation.ValidateFile(path); ok {
			results = append(results, result)
		}
	}
	rt.Logger.Debug().Int("files", len(results)).Msg("validated file arguments")

	printResults(out, rt, results)
	printSummary(out, results)

	for _, res := range results {
		if !res.Valid {
			return shared.NewExitError(shared.ExitValidationFailed)
		}
	}
	return nil
}

// expandPatterns resolves file arguments and glob patterns to the protocol
// files they name, in argument order without duplicates. Files the registry
// does not recognize are skipped.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, clierrors.NewArgumentError(
				fmt.Sprintf("invalid glob pattern: %s", pattern),
				"Check brackets and braces in the pattern are balanced",
			)
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", pattern, err)
		}
		for _, path := range matches {
			if seen[path] || !isRegularFile(path) || !schema.IsProtocolFile(path) {
				continue
			}
			seen[path] = true
			files = append(files, path)
		}
	}
	return files, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
