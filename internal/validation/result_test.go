// Package validation_test tests validation error formatting and result aggregation.
// Related: internal/validation/result.go
// Tags: validation, error, result, formatting
package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/schema"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  *ValidationError
		want string
	}{
		"full error with all fields": {
			err:  &ValidationError{Path: "next[0].version", Line: 10, Column: 5, Message: "missing required field"},
			want: "line 10:5: next[0].version: missing required field",
		},
		"line only": {
			err:  &ValidationError{Line: 15, Message: "syntax error"},
			want: "line 15: syntax error",
		},
		"path only": {
			err:  &ValidationError{Path: "identity.name", Message: "field is empty"},
			want: "identity.name: field is empty",
		},
		"message only": {
			err:  &ValidationError{Message: "invalid yaml"},
			want: "invalid yaml",
		},
	}

	for name, tc := range tests {
		name, tc := name, tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestValidationError_FormatFull(t *testing.T) {
	t.Parallel()

	err := &ValidationError{
		Path:     "current.status",
		Line:     3,
		Column:   11,
		Message:  "invalid value for field 'current.status'",
		Expected: "one of: planned, in_progress, blocked, done",
		Actual:   "'bogus'",
		Hint:     "Use one of the valid values",
	}

	out := err.FormatFull()
	for _, want := range []string{
		"Line 3, Column 11",
		"Path: current.status",
		"Error: invalid value",
		"Expected: one of: planned",
		"Got: 'bogus'",
		"Hint: Use one of the valid values",
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 6, strings.Count(out, "\n"))
}

func TestResult_AddErrorAndErr(t *testing.T) {
	t.Parallel()

	r := newResult("roadmap.yaml", schema.KindRoadmap)
	assert.True(t, r.Valid)
	assert.False(t, r.HasErrors())
	assert.NoError(t, r.Err())

	r.AddError(schemaError("current", 1, 1, "missing required field: current"))
	r.AddError(&ValidationError{Message: "bad", Cause: clierrors.ErrParseFailure})

	assert.False(t, r.Valid)
	assert.True(t, r.HasErrors())
	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, clierrors.ErrSchemaViolation))
	assert.True(t, errors.Is(err, clierrors.ErrParseFailure))
	assert.Contains(t, err.Error(), "roadmap.yaml")
	assert.Equal(t, 1, r.CountCause(clierrors.ErrSchemaViolation))
}

func TestResult_AddWarning(t *testing.T) {
	t.Parallel()

	r := newResult("warmup.yaml", schema.KindWarmup)
	r.AddWarning("File has %d lines", 3)
	assert.Equal(t, []string{"File has 3 lines"}, r.Warnings)
	assert.True(t, r.Valid)
}
