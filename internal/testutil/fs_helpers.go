// Package testutil provides test utilities and helpers for asimov tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/royalbit/asimov/internal/schema"
	"github.com/royalbit/asimov/internal/templates"
)

// ProtocolDir is the default protocol directory name used by fixtures.
const ProtocolDir = ".asimov"

// FixtureParams are the template parameters used by governed fixtures.
var FixtureParams = templates.Params{
	ProjectName: "fixture",
	ProjectType: templates.ProjectTypeGo,
}

type governedConfig struct {
	canonical []schema.Kind
	files     map[string]string
}

// GovernedOption is a functional option for CreateGovernedDir
type GovernedOption func(*governedConfig)

// WithCanonical writes the canonical content of the given kinds.
// With no kinds, every known kind is written.
func WithCanonical(kinds ...schema.Kind) GovernedOption {
	return func(c *governedConfig) {
		if len(kinds) == 0 {
			kinds = schema.Kinds()
		}
		c.canonical = append(c.canonical, kinds...)
	}
}

// WithProtocolFile writes a file with the given name and content into the protocol directory.
func WithProtocolFile(name, content string) GovernedOption {
	return func(c *governedConfig) {
		c.files[name] = content
	}
}

// CreateGovernedDir creates a project directory containing a protocol directory.
// Returns the project directory path. Cleanup is handled via t.TempDir.
func CreateGovernedDir(t *testing.T, opts ...GovernedOption) string {
	t.Helper()

	config := &governedConfig{files: make(map[string]string)}
	for _, opt := range opts {
		opt(config)
	}

	dir := t.TempDir()
	protoDir := filepath.Join(dir, ProtocolDir)
	if err := os.MkdirAll(protoDir, 0755); err != nil {
		t.Fatalf("failed to create protocol directory: %v", err)
	}

	for _, kind := range config.canonical {
		WriteFile(t, filepath.Join(protoDir, kind.Filename()), Canonical(t, kind))
	}
	for name, content := range config.files {
		WriteFile(t, filepath.Join(protoDir, name), content)
	}

	return dir
}

// Canonical renders the canonical content of kind with FixtureParams.
func Canonical(t *testing.T, kind schema.Kind) string {
	t.Helper()

	content, err := templates.Default().Render(kind, FixtureParams)
	if err != nil {
		t.Fatalf("failed to render %s: %v", kind, err)
	}
	return content
}

// ProtocolPath returns the path of name inside the protocol directory of dir.
func ProtocolPath(dir, name string) string {
	return filepath.Join(dir, ProtocolDir, name)
}

// Backdate sets the modification time of path an hour into the past so a
// later rewrite is observable. Returns the new modification time.
func Backdate(t *testing.T, path string) time.Time {
	t.Helper()

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("failed to backdate %s: %v", path, err)
	}
	return past
}

// ModTime returns the modification time of path, failing the test on error.
func ModTime(t *testing.T, path string) time.Time {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat %s: %v", path, err)
	}
	return info.ModTime()
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}

// configEnvVars lists the environment variables that change which configuration is loaded.
var configEnvVars = []string{
	"ASIMOV_PROTOCOL_DIR",
	"ASIMOV_PROJECT_NAME",
	"ASIMOV_PROJECT_TYPE",
	"ASIMOV_LOG_LEVEL",
	"ASIMOV_SHOW_DIFF",
	"ASIMOV_SHOW_PROGRESS",
	"ASIMOV_NO_COLOR",
	"XDG_CONFIG_HOME",
}

// ClearConfigEnv unsets every ASIMOV_* configuration variable for the duration
// of the test so the developer's environment cannot leak into results.
// Tests using it cannot run in parallel.
func ClearConfigEnv(t *testing.T) {
	t.Helper()

	for _, key := range configEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
