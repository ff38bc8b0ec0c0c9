// Package regen brings a protocol directory to its canonical state and
// exposes the validate / regenerate / init entry points used by the CLI.
package regen

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/royalbit/asimov/internal/drift"
	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/fsutil"
	"github.com/royalbit/asimov/internal/schema"
	"github.com/royalbit/asimov/internal/templates"
)

// DefaultProtocolDir is the directory, relative to the project root, that
// marks a project as governed.
const DefaultProtocolDir = ".asimov"

// Options configure an Orchestrator or Engine.
type Options struct {
	// ProtocolDir is the protocol directory relative to the project root.
	// Defaults to DefaultProtocolDir.
	ProtocolDir string
	// Params feed the parameterized templates.
	Params templates.Params
	// DryRun classifies and diffs without writing.
	DryRun bool
	// Store overrides the embedded template store.
	Store *templates.Store
	// Logger receives per-file decisions. Nil disables logging.
	Logger *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.ProtocolDir == "" {
		o.ProtocolDir = DefaultProtocolDir
	}
	if o.Store == nil {
		o.Store = templates.Default()
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}

// Orchestrator regenerates the protocol files of one directory.
type Orchestrator struct {
	opts     Options
	detector *drift.Detector
	log      zerolog.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(opts Options) *Orchestrator {
	opts = opts.withDefaults()
	return &Orchestrator{
		opts:     opts,
		detector: drift.NewDetector(opts.Store, opts.Params),
		log:      opts.Logger.With().Str("component", "regen").Logger(),
	}
}

// ProtocolPath returns the protocol directory of the project rooted at dir.
func (o *Orchestrator) ProtocolPath(dir string) string {
	return filepath.Join(dir, o.opts.ProtocolDir)
}

// observed is what was on disk for one kind before any write.
type observed struct {
	content *string
	err     error
}

type snapshot map[schema.Kind]observed

// Regenerate brings every known protocol file under dir to canonical content.
//
// A project without a protocol directory is not governed: the returned Info
// has NotGoverned set and nothing is written. Per-file faults are recorded on
// the entry and the run continues. An unwritable protocol directory stops the
// run and returns ErrDirectoryUnwritable with the entries processed so far.
func (o *Orchestrator) Regenerate(dir string) (*Info, error) {
	protoDir := o.ProtocolPath(dir)
	if !fsutil.DirExists(protoDir) {
		o.log.Debug().Str("dir", protoDir).Msg("protocol directory absent, project not governed")
		return &Info{Dir: protoDir, NotGoverned: true, DryRun: o.opts.DryRun}, nil
	}
	return o.run(protoDir, o.snapshot(protoDir))
}

// snapshot reads every known kind before anything is written, so created vs
// updated labels reflect the state the run started from.
func (o *Orchestrator) snapshot(protoDir string) snapshot {
	snap := make(snapshot)
	for _, kind := range schema.Kinds() {
		content, err := fsutil.ReadOptional(filepath.Join(protoDir, kind.Filename()))
		snap[kind] = observed{content: content, err: err}
	}
	return snap
}

func (o *Orchestrator) run(protoDir string, snap snapshot) (*Info, error) {
	info := &Info{Dir: protoDir, DryRun: o.opts.DryRun}
	for _, kind := range schema.Kinds() {
		entry, err := o.apply(protoDir, kind, snap[kind])
		info.Entries = append(info.Entries, entry)
		if err != nil {
			o.log.Error().Err(err).Str("dir", protoDir).Msg("protocol directory unwritable, stopping")
			return info, err
		}
	}

	created, updated, unchanged, failed := info.Partition()
	o.log.Debug().
		Int("created", len(created)).
		Int("updated", len(updated)).
		Int("unchanged", len(unchanged)).
		Int("failed", len(failed)).
		Bool("dry_run", o.opts.DryRun).
		Msg("regeneration finished")
	return info, nil
}

// apply handles one kind. The returned error is non-nil only for faults
// that stop the whole run.
func (o *Orchestrator) apply(protoDir string, kind schema.Kind, seen observed) (Entry, error) {
	path := filepath.Join(protoDir, kind.Filename())
	entry := Entry{
		Filename: kind.Filename(),
		Path:     path,
		Kind:     kind,
		Existed:  seen.content != nil,
	}
	log := o.log.With().Str("file", entry.Filename).Logger()

	if seen.err != nil {
		entry.Decision = drift.Outdated
		entry.Err = seen.err
		log.Warn().Err(seen.err).Msg("cannot read protocol file")
		return entry, nil
	}

	canonical, err := o.detector.Canonical(kind)
	if err != nil {
		if kind.UserOwned() && entry.Existed {
			// Nothing would be written anyway.
			entry.Decision = drift.Outdated
			entry.Kept = true
			log.Debug().Err(err).Msg("keeping user-owned file")
			return entry, nil
		}
		entry.Decision = drift.Missing
		if entry.Existed {
			entry.Decision = drift.Outdated
		}
		entry.Err = err
		log.Warn().Err(err).Msg("cannot render canonical content")
		return entry, nil
	}

	entry.Decision = drift.Classify(canonical, seen.content)
	log.Debug().Str("decision", entry.Decision.String()).Msg("classified")

	if !entry.Decision.NeedsWrite() {
		return entry, nil
	}
	if kind.UserOwned() && entry.Existed {
		entry.Kept = true
		return entry, nil
	}
	if entry.Existed {
		entry.Diff = drift.Diff(canonical, *seen.content)
		entry.Added, entry.Removed = drift.Stat(canonical, *seen.content)
	}
	if o.opts.DryRun {
		return entry, nil
	}

	if err := fsutil.WriteFileAtomic(path, []byte(canonical)); err != nil {
		entry.Err = err
		if errors.Is(err, clierrors.ErrDirectoryUnwritable) {
			return entry, fmt.Errorf("regenerating %s: %w", entry.Filename, err)
		}
		log.Warn().Err(err).Msg("write failed")
		return entry, nil
	}
	entry.Changed = true
	log.Info().Str("status", entry.Status().String()).Msg("regenerated protocol file")
	return entry, nil
}
