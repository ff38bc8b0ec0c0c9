// Package drift decides whether a protocol file on disk matches its
// canonical content and describes what regeneration would change.
package drift

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/royalbit/asimov/internal/schema"
	"github.com/royalbit/asimov/internal/templates"
)

// Decision is the drift state of one protocol file.
type Decision int

const (
	// Missing means no file exists at the expected path.
	Missing Decision = iota
	// Outdated means the file exists but differs from canonical content.
	Outdated
	// Current means the file equals canonical content.
	Current
)

func (d Decision) String() string {
	switch d {
	case Missing:
		return "missing"
	case Outdated:
		return "outdated"
	case Current:
		return "current"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// NeedsWrite reports whether regeneration writes a file in this state.
func (d Decision) NeedsWrite() bool {
	return d == Missing || d == Outdated
}

// Classify compares on-disk content against canonical content. onDisk is nil
// when the file does not exist. Comparison is byte-exact except that trailing
// newlines are ignored; hand reformatting counts as drift.
func Classify(canonical string, onDisk *string) Decision {
	if onDisk == nil {
		return Missing
	}
	if normalize(*onDisk) == normalize(canonical) {
		return Current
	}
	return Outdated
}

func normalize(s string) string {
	return strings.TrimRight(s, "\n")
}

// Detector classifies kinds against the canonical rendering from a template store.
type Detector struct {
	store  *templates.Store
	params templates.Params
}

// NewDetector creates a Detector. params are used for parameterized kinds.
func NewDetector(store *templates.Store, params templates.Params) *Detector {
	if store == nil {
		store = templates.Default()
	}
	return &Detector{store: store, params: params}
}

// Canonical renders the canonical content for kind.
func (d *Detector) Canonical(kind schema.Kind) (string, error) {
	return d.store.Render(kind, d.params)
}

// ClassifyKind renders the canonical content for kind and classifies onDisk
// against it. A render failure is returned as an error; the decision is then
// meaningless and reported as Outdated only if the file exists.
func (d *Detector) ClassifyKind(kind schema.Kind, onDisk *string) (Decision, error) {
	canonical, err := d.Canonical(kind)
	if err != nil {
		if onDisk == nil {
			return Missing, err
		}
		return Outdated, err
	}
	return Classify(canonical, onDisk), nil
}

// Diff returns a line diff from onDisk to canonical, i.e. the change that
// regeneration would make. Returns "" when the contents do not drift.
func Diff(canonical, onDisk string) string {
	if normalize(canonical) == normalize(onDisk) {
		return ""
	}

	var out strings.Builder
	out.WriteString("--- on disk\n+++ canonical\n")
	for _, d := range lineDiffs(onDisk, canonical) {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range splitLines(d.Text) {
			out.WriteString(prefix)
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	return out.String()
}

// Stat counts the lines regeneration would add and remove.
func Stat(canonical, onDisk string) (added, removed int) {
	if normalize(canonical) == normalize(onDisk) {
		return 0, 0
	}
	for _, d := range lineDiffs(onDisk, canonical) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += len(splitLines(d.Text))
		case diffmatchpatch.DiffDelete:
			removed += len(splitLines(d.Text))
		}
	}
	return added, removed
}

func lineDiffs(from, to string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(ensureNewline(from), ensureNewline(to))
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func ensureNewline(s string) string {
	if s != "" && !strings.HasSuffix(s, "\n") {
		return s + "\n"
	}
	return s
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
