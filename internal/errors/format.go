package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor      = color.New(color.FgRed, color.Bold)
	sectionColor     = color.New(color.FgYellow, color.Bold)
	remediationColor = color.New(color.FgCyan)
)

// FormatError renders a CLIError with colors. Returns "" for nil.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return format(err, true)
}

// FormatErrorPlain renders a CLIError without ANSI codes. Returns "" for nil.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return format(err, false)
}

func format(err *CLIError, colored bool) string {
	paint := func(c *color.Color, s string) string {
		if !colored {
			return s
		}
		return c.Sprint(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", paint(headerColor, err.Category.String()), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\n%s\n  %s\n", paint(sectionColor, "Usage:"), err.Usage)
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", paint(sectionColor, "To fix this:"))
		for i, step := range err.Remediation {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, paint(remediationColor, step))
		}
	}
	return b.String()
}

// FprintError writes a formatted CLIError to w. Nothing is written for nil.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
