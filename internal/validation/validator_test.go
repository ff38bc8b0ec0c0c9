// Package validation_test tests schema validation of protocol file content.
// Related: internal/validation/validator.go, internal/validation/yaml.go
// Tags: validation, schema, yaml, enum, required, completeness
package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/schema"
)

func TestValidate_RoadmapBogusStatus(t *testing.T) {
	t.Parallel()

	content := "current:\n  version: \"1.0\"\n  status: \"bogus-status\"\n"
	result := Validate([]byte(content), schema.Get(schema.KindRoadmap))

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	err := result.Errors[0]
	assert.True(t, errors.Is(err, clierrors.ErrSchemaViolation))
	assert.Equal(t, "current.status", err.Path)
	assert.Equal(t, 3, err.Line)
	assert.Contains(t, err.Expected, "planned, in_progress, blocked, done")
	assert.Equal(t, "'bogus-status'", err.Actual)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		kind      schema.Kind
		content   string
		wantPaths []string
		wantCause error
	}{
		"valid roadmap": {
			kind:    schema.KindRoadmap,
			content: "current:\n  version: 1.2\n  status: in_progress\nnext: []\nbacklog: [a, b]\n",
		},
		"missing required top-level key": {
			kind:      schema.KindRoadmap,
			content:   "backlog: []\n",
			wantPaths: []string{"current"},
			wantCause: clierrors.ErrSchemaViolation,
		},
		"too many next milestones": {
			kind: schema.KindRoadmap,
			content: "current: {version: '1', status: done}\nnext:\n" +
				strings.Repeat("  - {version: '2', summary: s}\n", 6),
			wantPaths: []string{"next"},
			wantCause: clierrors.ErrSchemaViolation,
		},
		"array item shape checked": {
			kind:      schema.KindRoadmap,
			content:   "current: {version: '1', status: done}\nnext:\n  - {version: '2'}\n  - summary: x\n",
			wantPaths: []string{"next[0].summary", "next[1].version"},
			wantCause: clierrors.ErrSchemaViolation,
		},
		"wrong type": {
			kind:      schema.KindSprint,
			content:   "rules:\n  must_ship: \"yes\"\n",
			wantPaths: []string{"rules.must_ship"},
			wantCause: clierrors.ErrSchemaViolation,
		},
		"union type accepts string": {
			kind:    schema.KindSprint,
			content: "rules:\n  must_ship: true\n  max_milestones: unlimited\n",
		},
		"union type accepts integer": {
			kind:    schema.KindSprint,
			content: "rules:\n  must_ship: true\n  max_milestones: 3\n",
		},
		"integer bounds": {
			kind:      schema.KindAsimov,
			content:   "first_law: {}\nsecond_law:\n  human_veto: {commands: [stop]}\nthird_law:\n  bounded_sessions:\n    max_hours: 12\n",
			wantPaths: []string{"third_law.bounded_sessions.max_hours"},
			wantCause: clierrors.ErrSchemaViolation,
		},
		"free-form map values checked": {
			kind:      schema.KindSprint,
			content:   "rules: {must_ship: true}\nanti_patterns:\n  scope_creep: note it\n  perfectionism: [a]\n",
			wantPaths: []string{"anti_patterns.perfectionism"},
			wantCause: clierrors.ErrSchemaViolation,
		},
		"unknown keys allowed": {
			kind:    schema.KindWarmup,
			content: "identity: {name: x}\nfuture_section:\n  anything: [1, 2]\n",
		},
		"min length": {
			kind:      schema.KindProject,
			content:   "identity: {name: \"\", type: go}\n",
			wantPaths: []string{"identity.name"},
			wantCause: clierrors.ErrSchemaViolation,
		},
		"null section": {
			kind:      schema.KindWarmup,
			content:   "identity:\n",
			wantPaths: []string{"identity"},
			wantCause: clierrors.ErrSchemaViolation,
		},
		"non-mapping root": {
			kind:      schema.KindGreen,
			content:   "- just\n- a list\n",
			wantPaths: []string{""},
			wantCause: clierrors.ErrSchemaViolation,
		},
		"malformed yaml": {
			kind:      schema.KindGreen,
			content:   "motto: [unclosed\n",
			wantPaths: []string{""},
			wantCause: clierrors.ErrParseFailure,
		},
		"empty file": {
			kind:      schema.KindGreen,
			content:   "# only a comment\n",
			wantPaths: []string{""},
			wantCause: clierrors.ErrParseFailure,
		},
		"alias resolved": {
			kind:    schema.KindRoadmap,
			content: "base: &m {version: '1', status: done}\ncurrent: *m\n",
		},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result := Validate([]byte(tt.content), schema.Get(tt.kind))
			assert.Equal(t, tt.kind, result.Kind)

			var paths []string
			for _, e := range result.Errors {
				paths = append(paths, e.Path)
				if tt.wantCause != nil {
					assert.True(t, errors.Is(e, tt.wantCause), "error %q has wrong cause", e)
				}
			}
			assert.ElementsMatch(t, tt.wantPaths, paths)
			assert.Equal(t, len(tt.wantPaths) == 0, result.Valid)
		})
	}
}

func TestValidate_ParseErrorLocation(t *testing.T) {
	t.Parallel()

	content := "current:\n  version: \"1\"\n  status: [done\n"
	result := Validate([]byte(content), schema.Get(schema.KindRoadmap))

	require.Len(t, result.Errors, 1)
	err := result.Errors[0]
	assert.Greater(t, err.Line, 0)
	assert.Contains(t, err.Message, "invalid YAML")
	assert.NotContains(t, err.Message, "yaml: line")
}

func TestValidate_DuplicateKey(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content  string
		wantPath string
		wantLine int
	}{
		"top-level key repeated": {
			content:  "current:\n  version: '1'\n  status: done\ncurrent:\n  version: '2'\n  status: done\n",
			wantPath: "current",
			wantLine: 4,
		},
		"nested key repeated": {
			content:  "current:\n  version: '1'\n  status: done\n  status: planned\n",
			wantPath: "current.status",
			wantLine: 4,
		},
		"key repeated inside a list item": {
			content:  "current:\n  version: '1'\n  status: done\nbacklog:\n  - name: x\n    name: y\n",
			wantPath: "backlog[0].name",
			wantLine: 6,
		},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result := Validate([]byte(tt.content), schema.Get(schema.KindRoadmap))

			assert.False(t, result.Valid)
			require.Len(t, result.Errors, 1)
			err := result.Errors[0]
			assert.True(t, errors.Is(err, clierrors.ErrParseFailure))
			assert.Equal(t, tt.wantPath, err.Path)
			assert.Equal(t, tt.wantLine, err.Line)
			assert.Contains(t, err.Message, "already defined at line")
		})
	}
}

func TestValidate_MultipleDocuments(t *testing.T) {
	t.Parallel()

	roadmap := "current:\n  version: '1'\n  status: done\n"
	tests := map[string]struct {
		content string
		message string
	}{
		"malformed trailing document": {
			content: roadmap + "---\n: : :\n  - [\n",
			message: "invalid YAML",
		},
		"second well-formed document": {
			content: roadmap + "---\nbacklog: []\n",
			message: "multiple documents",
		},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result := Validate([]byte(tt.content), schema.Get(schema.KindRoadmap))

			assert.False(t, result.Valid)
			require.Len(t, result.Errors, 1)
			assert.True(t, errors.Is(result.Errors[0], clierrors.ErrParseFailure))
			assert.Contains(t, result.Errors[0].Message, tt.message)
		})
	}
}

func TestValidate_LeadingDocumentMarker(t *testing.T) {
	t.Parallel()

	content := "---\ncurrent:\n  version: '1'\n  status: done\n"
	result := Validate([]byte(content), schema.Get(schema.KindRoadmap))

	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestValidate_AsimovCriticalMessages(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
		want    string
	}{
		"missing first law": {
			content: "second_law:\n  human_veto:\n    commands: [stop]\n",
			want:    "asimov.yaml missing 'first_law' section (do_no_harm).",
		},
		"missing human veto": {
			content: "first_law: {status: REQUIRED}\nsecond_law:\n  status: REQUIRED\n",
			want:    "CRITICAL: asimov.yaml missing 'second_law.human_veto' section. Human override capability is required.",
		},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			result := Validate([]byte(tt.content), schema.Get(schema.KindAsimov))
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tt.want, result.Errors[0].Message)
		})
	}
}

func TestValidate_ClosedObject(t *testing.T) {
	t.Parallel()

	doc := &schema.Document{
		Kind: schema.KindUnknown,
		Fields: []schema.Field{
			{Name: "strict", Type: schema.FieldTypeObject, Closed: true, Children: []schema.Field{
				{Name: "known", Type: schema.FieldTypeString},
			}},
		},
	}
	result := Validate([]byte("strict:\n  known: x\n  extra: y\n  other: z\n"), doc)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, "strict.extra", result.Errors[0].Path)
	assert.Equal(t, "strict.other", result.Errors[1].Path)
}

func TestValidate_NilDocument(t *testing.T) {
	t.Parallel()

	result := Validate([]byte("x: 1\n"), nil)
	assert.True(t, result.Valid)
	assert.Equal(t, schema.KindUnknown, result.Kind)
}

// TestValidate_ReportsEveryViolation builds roadmaps with a random set of
// independent violations and checks each one is reported.
func TestValidate_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	type violation struct {
		path string
		yaml string
		good string
	}
	violations := []violation{
		{path: "current.status", yaml: "  status: nope\n", good: "  status: planned\n"},
		{path: "current.version", yaml: "  version: [1]\n", good: "  version: '1'\n"},
		{path: "current.summary", yaml: "  summary: {a: b}\n", good: "  summary: s\n"},
		{path: "current.deliverables", yaml: "  deliverables: x\n", good: "  deliverables: [x]\n"},
		{path: "current.goal", yaml: "  goal: [g]\n", good: "  goal: g\n"},
		{path: "current.adr", yaml: "  adr: {n: 1}\n", good: "  adr: adr-1\n"},
	}

	rapid.Check(t, func(rt *rapid.T) {
		var b strings.Builder
		b.WriteString("current:\n")
		var want []string
		for i, v := range violations {
			if rapid.Bool().Draw(rt, fmt.Sprintf("violate_%d", i)) {
				b.WriteString(v.yaml)
				want = append(want, v.path)
			} else {
				b.WriteString(v.good)
			}
		}
		badBacklog := rapid.Bool().Draw(rt, "violate_backlog")
		if badBacklog {
			b.WriteString("backlog: {not: a list}\n")
			want = append(want, "backlog")
		}

		result := Validate([]byte(b.String()), schema.Get(schema.KindRoadmap))

		var got []string
		for _, e := range result.Errors {
			got = append(got, e.Path)
		}
		if len(got) != len(want) {
			rt.Fatalf("got %d errors %v, want %d %v", len(got), got, len(want), want)
		}
		assert.ElementsMatch(rt, want, got)
		assert.Equal(rt, len(want) == 0, result.Valid)
	})
}

func TestExtractLineColumn(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		msg        string
		wantLine   int
		wantColumn int
	}{
		"line and column": {msg: "yaml: line 5: column 3: did not find expected key", wantLine: 5, wantColumn: 3},
		"line only":       {msg: "yaml: line 7: could not find expected ':'", wantLine: 7, wantColumn: 1},
		"no location":     {msg: "yaml: unmarshal errors", wantLine: 0, wantColumn: 0},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			line, column := extractLineColumn(tt.msg)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantColumn, column)
		})
	}
}

func TestCleanYAMLError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "could not find expected ':'", cleanYAMLError("yaml: line 7: could not find expected ':'"))
	assert.Equal(t, "did not find expected key", cleanYAMLError("yaml: line 5: column 3: did not find expected key"))
	assert.Equal(t, "plain error", cleanYAMLError("plain error"))
}
