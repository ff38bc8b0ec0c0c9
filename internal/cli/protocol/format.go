package protocol

import (
	"fmt"
	"io"
	"strings"

	"github.com/royalbit/asimov/internal/cli/shared"
	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/regen"
	"github.com/royalbit/asimov/internal/schema"
	"github.com/royalbit/asimov/internal/validation"
)

// printNotGoverned explains that dir has no protocol directory. This is
// guidance, not a failure.
func printNotGoverned(out io.Writer, rt *shared.Runtime) {
	c := shared.NewColors()
	notice := clierrors.NotGoverned(rt.Dir, rt.ProtocolDirName())
	fmt.Fprintf(out, "%s %s\n", c.Yellow(shared.MarkWarn), notice.Message)
	for _, step := range notice.Remediation {
		fmt.Fprintf(out, "  %s\n", c.Dim(step))
	}
}

// printResults lists every validation result with its errors and warnings.
func printResults(out io.Writer, rt *shared.Runtime, results []*validation.Result) {
	c := shared.NewColors()
	for _, res := range results {
		mark := c.Green(shared.MarkOK)
		if !res.Valid {
			mark = c.Red(shared.MarkFail)
		}
		suffix := ""
		if res.Regenerated {
			suffix = c.Dim(" (regenerated)")
		}
		fmt.Fprintf(out, "%s %s%s\n", mark, rt.RelPath(res.File), suffix)
		for _, e := range res.Errors {
			fmt.Fprintf(out, "    %s\n", e.Error())
			if e.Hint != "" {
				fmt.Fprintf(out, "      %s\n", c.Dim("hint: "+e.Hint))
			}
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "    %s %s\n", c.Yellow(shared.MarkWarn), w)
		}
	}
}

// printMissing lists known kinds without a file on disk.
func printMissing(out io.Writer, missing []schema.Kind) {
	if len(missing) == 0 {
		return
	}
	c := shared.NewColors()
	names := make([]string, 0, len(missing))
	for _, k := range missing {
		names = append(names, k.Filename())
	}
	fmt.Fprintf(out, "%s missing: %s\n", c.Yellow(shared.MarkWarn), strings.Join(names, ", "))
	fmt.Fprintf(out, "  %s\n", c.Dim("Run 'asimov refresh' to create them"))
}

// printSummary prints the validation totals line.
func printSummary(out io.Writer, results []*validation.Result) {
	c := shared.NewColors()
	invalid := 0
	for _, res := range results {
		if !res.Valid {
			invalid++
		}
	}
	if invalid == 0 {
		fmt.Fprintf(out, "\n%s %d protocol file(s) valid\n", c.Green(shared.MarkOK), len(results))
		return
	}
	fmt.Fprintf(out, "\n%s %d of %d protocol file(s) invalid\n", c.Red(shared.MarkFail), invalid, len(results))
}

// printInfo lists a regeneration run grouped by outcome. Diffs of updated
// files are shown when showDiff is set.
func printInfo(out io.Writer, rt *shared.Runtime, info *regen.Info, showDiff bool) {
	c := shared.NewColors()
	created, updated, unchanged, failed := info.Partition()

	createdLabel, updatedLabel := "Created", "Updated"
	if info.DryRun {
		createdLabel, updatedLabel = "Would create", "Would update"
	}

	for _, e := range created {
		fmt.Fprintf(out, "%s %s %s\n", c.Green("+"), createdLabel, rt.RelPath(e.Path))
	}
	for _, e := range updated {
		fmt.Fprintf(out, "%s %s %s %s\n", c.Yellow("~"), updatedLabel, rt.RelPath(e.Path),
			c.Dim(fmt.Sprintf("(+%d -%d)", e.Added, e.Removed)))
		if showDiff && e.Diff != "" {
			printDiff(out, e.Diff)
		}
	}
	for _, e := range unchanged {
		label := "Unchanged"
		if e.Kept {
			label = "Kept (user-owned)"
		}
		fmt.Fprintf(out, "%s %s %s\n", c.Dim(shared.MarkNeutral), label, rt.RelPath(e.Path))
	}
	for _, e := range failed {
		fmt.Fprintf(out, "%s Failed %s: %v\n", c.Red(shared.MarkFail), rt.RelPath(e.Path), e.Err)
	}

	fmt.Fprintf(out, "\n%d created, %d updated, %d unchanged, %d failed\n",
		len(created), len(updated), len(unchanged), len(failed))
}

// printDiff indents a unified diff and colors added and removed lines.
func printDiff(out io.Writer, diff string) {
	c := shared.NewColors()
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			line = c.Dim(line)
		case strings.HasPrefix(line, "+"):
			line = c.Green(line)
		case strings.HasPrefix(line, "-"):
			line = c.Red(line)
		}
		fmt.Fprintf(out, "    %s\n", line)
	}
}

// unresolved returns the invalid results that the run did not (or, in a dry
// run, would not) fix by rewriting the file.
func unresolved(report *regen.Report, info *regen.Info) []*validation.Result {
	pending := make(map[string]bool)
	if info != nil && info.DryRun {
		for _, e := range info.Entries {
			if s := e.Status(); s == regen.StatusCreated || s == regen.StatusUpdated {
				pending[e.Path] = true
			}
		}
	}

	var out []*validation.Result
	for _, res := range report.Invalid() {
		if !pending[res.File] {
			out = append(out, res)
		}
	}
	return out
}

// directoryFault converts a fatal regeneration error into a CLI error.
func directoryFault(rt *shared.Runtime, info *regen.Info, err error) error {
	path := rt.ProtocolDirName()
	if info != nil && info.Dir != "" {
		path = rt.RelPath(info.Dir)
	}
	return clierrors.DirectoryNotWritable(path, err)
}
