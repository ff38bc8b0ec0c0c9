package errors

import "errors"

// Engine fault taxonomy. Per-file faults are wrapped with one of these and
// recorded on the file's result; only ErrDirectoryUnwritable escapes a run.
var (
	// ErrNotGoverned means the protocol directory does not exist. It signals a
	// mode, not a failure.
	ErrNotGoverned = errors.New("not a governed project")
	// ErrParseFailure means a file is not well-formed YAML.
	ErrParseFailure = errors.New("parse failure")
	// ErrSchemaViolation means a file parsed but has the wrong shape.
	ErrSchemaViolation = errors.New("schema violation")
	// ErrIO means a file could not be read or written.
	ErrIO = errors.New("i/o failure")
	// ErrTemplateParameterMissing means a parameterized template was rendered
	// without a required input.
	ErrTemplateParameterMissing = errors.New("template parameter missing")
	// ErrDirectoryUnwritable means the protocol directory itself rejects writes.
	ErrDirectoryUnwritable = errors.New("protocol directory is not writable")
)

// Is and As mirror the standard library helpers.
var (
	Is = errors.Is
	As = errors.As
)
