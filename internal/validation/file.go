package validation

import (
	"fmt"
	"os"
	"strings"

	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/schema"
)

// SizeLimits are advisory line counts for files that are loaded into every session.
type SizeLimits struct {
	Soft int
	Hard int
}

var sizeLimits = map[schema.Kind]SizeLimits{
	schema.KindProject: {Soft: 50, Hard: 100},
	schema.KindWarmup:  {Soft: 200, Hard: 500},
}

// LimitsFor returns the size limits for kind, if any.
func LimitsFor(kind schema.Kind) (SizeLimits, bool) {
	l, ok := sizeLimits[kind]
	return l, ok
}

// ValidateFile validates the file at path against the schema its name selects.
// ok is false when the registry does not recognize the file; such files are
// not protocol files and are skipped rather than failed.
func ValidateFile(path string) (result *Result, ok bool) {
	kind, doc, ok := schema.Lookup(path)
	if !ok {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		result = newResult(path, kind)
		result.AddError(&ValidationError{
			Message: fmt.Sprintf("cannot read file: %v", err),
			Hint:    "Check the file exists and is readable",
			Cause:   clierrors.ErrIO,
		})
		return result, true
	}

	return ValidateContent(path, data, doc), true
}

// ValidateContent validates already-read content and adds size warnings.
func ValidateContent(path string, content []byte, doc *schema.Document) *Result {
	result := Validate(content, doc)
	result.File = path
	checkSize(result, content)
	return result
}

func checkSize(result *Result, content []byte) {
	limits, ok := sizeLimits[result.Kind]
	if !ok {
		return
	}
	lines := lineCount(string(content))
	switch {
	case lines > limits.Hard:
		result.AddWarning("File has %d lines, exceeds hard limit of %d lines. Consider trimming.", lines, limits.Hard)
	case lines > limits.Soft:
		result.AddWarning("File has %d lines, exceeds recommended %d lines. Consider trimming.", lines, limits.Soft)
	}
}

// lineCount counts lines the way editors do: a trailing newline does not
// start a new line.
func lineCount(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
