package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Display shows a spinner while a step runs and a status line when it ends.
// On a non-TTY the step message is printed once instead of animated.
type Display struct {
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	out          io.Writer
	spinner      *spinner.Spinner
}

// NewDisplay creates a display writing to out with the given terminal capabilities
func NewDisplay(caps TerminalCapabilities, out io.Writer) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		out:          out,
	}
}

// Symbols returns the symbol set selected for this terminal
func (d *Display) Symbols() ProgressSymbols {
	return d.symbols
}

// Start begins displaying progress for a step
func (d *Display) Start(msg string) {
	d.Stop()

	if d.capabilities.IsTTY {
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
			spinner.WithWriter(d.out),
		)
		d.spinner.Suffix = " " + fit(msg, d.capabilities.Width, d.ellipsis())
		d.spinner.Start()
		return
	}
	fmt.Fprintln(d.out, msg)
}

// Succeed stops the spinner and prints a success line
func (d *Display) Succeed(msg string) {
	d.Stop()
	fmt.Fprintf(d.out, "%s %s\n", checkmark(d.symbols, d.capabilities.SupportsColor), msg)
}

// Warn stops the spinner and prints a warning line
func (d *Display) Warn(msg string) {
	d.Stop()
	fmt.Fprintf(d.out, "%s %s\n", warningMark(d.symbols, d.capabilities.SupportsColor), msg)
}

// Fail stops the spinner and prints a failure line
func (d *Display) Fail(msg string, err error) {
	d.Stop()
	fmt.Fprintf(d.out, "%s %s: %v\n", failureMark(d.symbols, d.capabilities.SupportsColor), msg, err)
}

func (d *Display) ellipsis() string {
	if d.capabilities.SupportsUnicode {
		return "…"
	}
	return "..."
}

// Stop stops the spinner without showing completion/failure
func (d *Display) Stop() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
