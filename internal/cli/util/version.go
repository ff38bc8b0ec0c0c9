package util

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/royalbit/asimov/internal/build"
	"github.com/royalbit/asimov/internal/cli/shared"
	"github.com/royalbit/asimov/internal/schema"
	"github.com/royalbit/asimov/internal/templates"
)

// SourceURL is the project source URL
const SourceURL = "https://github.com/royalbit/asimov"

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, protocol count and Go version information for asimov",
	Example: `  # Show version info
  asimov version

  # Plain output (for scripts)
  asimov version --plain`,
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			printPlainVersion(cmd.OutOrStdout())
		} else {
			printPrettyVersion(cmd.OutOrStdout(), shared.GetTerminalWidth())
		}
	},
}

func init() {
	versionCmd.GroupID = shared.GroupReference
	versionCmd.Flags().Bool("plain", false, "Plain output without formatting")
}

type versionLine struct {
	label string
	value string
}

func versionInfo() []versionLine {
	return []versionLine{
		{"Version", build.Version},
		{"Commit", build.ShortCommit()},
		{"Built", build.BuildDate},
		{"Protocols", fmt.Sprintf("%d kinds, %d project types", len(schema.Kinds()), len(templates.ProjectTypes()))},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(out io.Writer) {
	fmt.Fprintf(out, "asimov %s\n", build.Version)
	fmt.Fprintf(out, "commit: %s\n", build.Commit)
	fmt.Fprintf(out, "built: %s\n", build.BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints a styled version output with a centered box
func printPrettyVersion(out io.Writer, termWidth int) {
	c := shared.NewColors()

	fmt.Fprintln(out)
	fmt.Fprintln(out, c.Cyan(shared.CenterText("asimov", termWidth)))
	fmt.Fprintln(out, c.Dim(shared.CenterText(shared.Tagline, termWidth)))
	fmt.Fprintln(out)

	// Calculate box width (fixed 48, narrower on small terminals)
	boxWidth := 48
	if termWidth < 54 {
		boxWidth = termWidth - 6
	}
	contentWidth := boxWidth - 4 // Account for borders and padding

	boxPadding := (termWidth - boxWidth) / 2
	if boxPadding < 0 {
		boxPadding = 0
	}
	pad := strings.Repeat(" ", boxPadding)

	fmt.Fprintln(out, pad+shared.BoxTopLeft+strings.Repeat(shared.BoxHorizontal, boxWidth-2)+shared.BoxTopRight)
	fmt.Fprintln(out, pad+shared.BoxVertical+strings.Repeat(" ", boxWidth-2)+shared.BoxVertical)

	for _, item := range versionInfo() {
		label := c.Yellow(fmt.Sprintf("%10s", item.label))
		value := c.White(item.value)
		line := fmt.Sprintf("  %s    %s", label, value)
		// Pad to fill the box
		lineLen := 10 + 4 + len(item.value) + 2 // label width + spacing + value + margin
		if lineLen < contentWidth {
			line += strings.Repeat(" ", contentWidth-lineLen)
		}
		fmt.Fprintln(out, pad+shared.BoxVertical+" "+line+" "+shared.BoxVertical)
	}

	fmt.Fprintln(out, pad+shared.BoxVertical+strings.Repeat(" ", boxWidth-2)+shared.BoxVertical)
	fmt.Fprintln(out, pad+shared.BoxBottomLeft+strings.Repeat(shared.BoxHorizontal, boxWidth-2)+shared.BoxBottomRight)
	fmt.Fprintln(out, c.Dim(shared.CenterText(SourceURL, termWidth)))
	fmt.Fprintln(out)
}
