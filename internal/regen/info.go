package regen

import (
	"errors"
	"fmt"

	"github.com/royalbit/asimov/internal/drift"
	"github.com/royalbit/asimov/internal/schema"
)

// Status is the user-facing outcome of one file in a regeneration run.
type Status int

const (
	// StatusUnchanged means nothing was (or would be) written.
	StatusUnchanged Status = iota
	// StatusCreated means the file did not exist and was (or would be) written.
	StatusCreated
	// StatusUpdated means the file existed and was (or would be) overwritten.
	StatusUpdated
	// StatusFailed means a per-file fault prevented the file from being handled.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusCreated:
		return "created"
	case StatusUpdated:
		return "updated"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Entry records what happened to one protocol file.
type Entry struct {
	Filename string         // Base name inside the protocol directory
	Path     string         // Full path
	Kind     schema.Kind    // Kind the file was regenerated as
	Decision drift.Decision // Drift state before the run
	Existed  bool           // File existed when the run started
	Changed  bool           // File was written in this run
	Kept     bool           // User-owned file left as is despite drift
	Diff     string         // Change from the old content to canonical, for updates
	Added    int            // Lines the update adds
	Removed  int            // Lines the update removes
	Err      error          // Per-file fault, if any
}

// Status returns the entry outcome. In a dry run it is the outcome the run
// would have had.
func (e Entry) Status() Status {
	switch {
	case e.Err != nil:
		return StatusFailed
	case e.Kept || !e.Decision.NeedsWrite():
		return StatusUnchanged
	case e.Existed:
		return StatusUpdated
	default:
		return StatusCreated
	}
}

// Info aggregates one regeneration run.
type Info struct {
	Dir         string  // Protocol directory
	NotGoverned bool    // Protocol directory was absent; nothing was done
	DryRun      bool    // Nothing was written
	Entries     []Entry // One entry per known kind, in regeneration order
}

// Partition splits entries by status.
func (i *Info) Partition() (created, updated, unchanged, failed []Entry) {
	for _, e := range i.Entries {
		switch e.Status() {
		case StatusCreated:
			created = append(created, e)
		case StatusUpdated:
			updated = append(updated, e)
		case StatusFailed:
			failed = append(failed, e)
		default:
			unchanged = append(unchanged, e)
		}
	}
	return created, updated, unchanged, failed
}

// Changed returns the entries written in this run.
func (i *Info) Changed() []Entry {
	var out []Entry
	for _, e := range i.Entries {
		if e.Changed {
			out = append(out, e)
		}
	}
	return out
}

// Entry returns the entry for kind.
func (i *Info) Entry(kind schema.Kind) (Entry, bool) {
	for _, e := range i.Entries {
		if e.Kind == kind {
			return e, true
		}
	}
	return Entry{}, false
}

// Err joins every per-file fault, or returns nil.
func (i *Info) Err() error {
	var errs []error
	for _, e := range i.Entries {
		if e.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Filename, e.Err))
		}
	}
	return errors.Join(errs...)
}
