package regen

import (
	"fmt"
	"os"
	"path/filepath"

	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/fsutil"
	"github.com/royalbit/asimov/internal/schema"
	"github.com/royalbit/asimov/internal/templates"
	"github.com/royalbit/asimov/internal/validation"
)

// Report is the outcome of validating a project's protocol directory.
type Report struct {
	Dir         string               // Project root
	ProtocolDir string               // Protocol directory path
	Governed    bool                 // Protocol directory exists
	Results     []*validation.Result // One result per validated file
	Missing     []schema.Kind        // Known kinds with no file on disk
}

// Valid reports whether every validated file passed.
func (r *Report) Valid() bool {
	for _, res := range r.Results {
		if !res.Valid {
			return false
		}
	}
	return true
}

// Invalid returns the results that failed.
func (r *Report) Invalid() []*validation.Result {
	var out []*validation.Result
	for _, res := range r.Results {
		if !res.Valid {
			out = append(out, res)
		}
	}
	return out
}

// Result returns the result for the file at path.
func (r *Report) Result(path string) (*validation.Result, bool) {
	for _, res := range r.Results {
		if res.File == path {
			return res, true
		}
	}
	return nil, false
}

// Engine ties validation and regeneration together for one configuration.
type Engine struct {
	opts Options
	orch *Orchestrator
}

// NewEngine creates an Engine.
func NewEngine(opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{opts: opts, orch: NewOrchestrator(opts)}
}

// Validate checks every protocol file under dir without writing anything.
// A project without a protocol directory yields a report with Governed false.
func (e *Engine) Validate(dir string) (*Report, error) {
	protoDir := e.orch.ProtocolPath(dir)
	report := &Report{Dir: dir, ProtocolDir: protoDir}
	if !fsutil.DirExists(protoDir) {
		return report, nil
	}
	report.Governed = true

	seen := make(map[string]bool)
	for _, kind := range schema.Kinds() {
		path := filepath.Join(protoDir, kind.Filename())
		if !fsutil.Exists(path) {
			report.Missing = append(report.Missing, kind)
			continue
		}
		seen[path] = true
		if result, ok := validation.ValidateFile(path); ok {
			report.Results = append(report.Results, result)
		}
	}

	// Files such as team-roadmap.yaml are validated by the schema their name selects.
	extra, err := fsutil.ListYAML(protoDir)
	if err != nil {
		return report, err
	}
	for _, path := range extra {
		if seen[path] {
			continue
		}
		if result, ok := validation.ValidateFile(path); ok {
			report.Results = append(report.Results, result)
		}
	}

	e.opts.Logger.Debug().
		Str("dir", protoDir).
		Int("files", len(report.Results)).
		Int("missing", len(report.Missing)).
		Bool("valid", report.Valid()).
		Msg("validation finished")
	return report, nil
}

// ValidateAndRegenerate regenerates dir, then validates it. Results for files
// written in this run are marked Regenerated. A fatal directory fault is
// returned together with the partial Info and a report of the current state.
func (e *Engine) ValidateAndRegenerate(dir string) (*Report, *Info, error) {
	info, regenErr := e.orch.Regenerate(dir)
	report, err := e.Validate(dir)
	if err != nil && regenErr == nil {
		regenErr = err
	}
	if report != nil {
		markRegenerated(report, info)
	}
	return report, info, regenErr
}

// Init creates the protocol directory under dir and writes every protocol
// file. Existing files are classified as in Regenerate, so running Init on a
// governed project is a refresh with the given params.
func (e *Engine) Init(dir string, params templates.Params) (*Report, *Info, error) {
	opts := e.opts
	opts.Params = params
	orch := NewOrchestrator(opts)

	protoDir := orch.ProtocolPath(dir)
	snap := orch.snapshot(protoDir)

	if !opts.DryRun {
		if err := os.MkdirAll(protoDir, fsutil.DirMode); err != nil {
			return nil, &Info{Dir: protoDir}, fmt.Errorf("creating %s: %w: %w", protoDir, clierrors.ErrDirectoryUnwritable, err)
		}
	}

	info, regenErr := orch.run(protoDir, snap)
	if opts.DryRun {
		return &Report{Dir: dir, ProtocolDir: protoDir}, info, regenErr
	}

	report, err := e.Validate(dir)
	if err != nil && regenErr == nil {
		regenErr = err
	}
	markRegenerated(report, info)
	return report, info, regenErr
}

func markRegenerated(report *Report, info *Info) {
	if info == nil {
		return
	}
	for _, entry := range info.Changed() {
		if res, ok := report.Result(entry.Path); ok {
			res.Regenerated = true
		}
	}
}
