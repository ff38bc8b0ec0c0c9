package progress

import (
	"strings"

	"github.com/fatih/color"
)

// paint colors mark when the terminal supports it. color.NoColor still wins.
func paint(mark string, attr color.Attribute, supportsColor bool) string {
	if !supportsColor {
		return mark
	}
	return color.New(attr).Sprint(mark)
}

func checkmark(symbols ProgressSymbols, supportsColor bool) string {
	return paint(symbols.Checkmark, color.FgGreen, supportsColor)
}

func failureMark(symbols ProgressSymbols, supportsColor bool) string {
	return paint(symbols.Failure, color.FgRed, supportsColor)
}

func warningMark(symbols ProgressSymbols, supportsColor bool) string {
	return paint(symbols.Warning, color.FgYellow, supportsColor)
}

// fit shortens msg so a spinner line of the given width does not wrap.
// A width of zero means unknown and leaves msg alone.
func fit(msg string, width int, ellipsis string) string {
	const reserved = 3 // spinner frame and the spaces around it
	limit := width - reserved
	runes := []rune(msg)
	if width <= 0 || limit <= 0 || len(runes) <= limit {
		return msg
	}
	keep := limit - len([]rune(ellipsis))
	if keep <= 0 {
		return string(runes[:limit])
	}
	return strings.TrimRight(string(runes[:keep]), " ") + ellipsis
}
