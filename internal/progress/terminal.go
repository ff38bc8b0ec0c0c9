package progress

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Environment variables that override what the terminal reports.
const (
	EnvNoColor = "NO_COLOR"     // Any value disables color
	EnvASCII   = "ASIMOV_ASCII" // "1" forces ASCII status marks
	EnvTerm    = "TERM"         // "dumb" disables color and Unicode
)

var (
	unicodeSymbols = ProgressSymbols{
		Checkmark:  "✓",
		Failure:    "✗",
		Warning:    "⚠",
		SpinnerSet: 14, // ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
	}
	asciiSymbols = ProgressSymbols{
		Checkmark:  "[OK]",
		Failure:    "[FAIL]",
		Warning:    "[WARN]",
		SpinnerSet: 9, // | / - \
	}
)

// DetectFor reports what f can render. Anything that is not a terminal gets
// the zero value, so refresh output piped to a file stays plain.
func DetectFor(f *os.File) TerminalCapabilities {
	if f == nil {
		return TerminalCapabilities{}
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return TerminalCapabilities{}
	}
	width := 0
	if w, _, err := term.GetSize(fd); err == nil {
		width = w
	}
	return capabilities(width, os.Getenv)
}

// capabilities applies environment overrides to a terminal of the given width.
// --no-color reaches here through color.NoColor.
func capabilities(width int, getenv func(string) string) TerminalCapabilities {
	dumb := getenv(EnvTerm) == "dumb"
	return TerminalCapabilities{
		IsTTY:           true,
		SupportsColor:   !dumb && !color.NoColor && getenv(EnvNoColor) == "",
		SupportsUnicode: !dumb && getenv(EnvASCII) != "1",
		Width:           max(width, 0),
	}
}

// SelectSymbols returns the status marks for caps.
func SelectSymbols(caps TerminalCapabilities) ProgressSymbols {
	if caps.SupportsUnicode {
		return unicodeSymbols
	}
	return asciiSymbols
}
