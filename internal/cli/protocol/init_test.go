// Package protocol_test tests the init command parameter resolution and file creation.
// Related: internal/cli/protocol/init.go
// Tags: protocol, init, detection, project-type
package protocol

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/royalbit/asimov/internal/cli/shared"
	"github.com/royalbit/asimov/internal/schema"
	"github.com/royalbit/asimov/internal/testutil"
)

type projectIdentity struct {
	Identity struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"identity"`
}

func readIdentity(t *testing.T, dir string) projectIdentity {
	t.Helper()
	var p projectIdentity
	require.NoError(t, yaml.Unmarshal([]byte(testutil.ReadFile(t, testutil.ProtocolPath(dir, "project.yaml"))), &p))
	return p
}

func TestRunInit_DetectsProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\nname = \"forge\"\n")
	var out bytes.Buffer

	err := runInit(&out, newRuntime(dir), initOptions{})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Initializing forge (rust) in .asimov")
	assert.Contains(t, output, "9 created, 0 updated, 0 unchanged, 0 failed")
	assert.Contains(t, output, "Protocol files ready in .asimov")

	for _, kind := range schema.Kinds() {
		assert.FileExists(t, testutil.ProtocolPath(dir, kind.Filename()))
	}
	identity := readIdentity(t, dir)
	assert.Equal(t, "forge", identity.Identity.Name)
	assert.Equal(t, "rust", identity.Identity.Type)
}

func TestRunInit_FlagsWin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\nname = \"forge\"\n")
	var out bytes.Buffer

	err := runInit(&out, newRuntime(dir), initOptions{Name: "anvil", Type: "py"})
	require.NoError(t, err)

	identity := readIdentity(t, dir)
	assert.Equal(t, "anvil", identity.Identity.Name)
	assert.Equal(t, "python", identity.Identity.Type)
}

func TestRunInit_UnknownType(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var out bytes.Buffer

	err := runInit(&out, newRuntime(dir), initOptions{Name: "x", Type: "cobol"})
	require.Error(t, err)
	assert.Equal(t, shared.ExitInvalidArguments, shared.ExitCode(err))
	assert.Contains(t, err.Error(), "Unknown project type: 'cobol'")
	assert.NoDirExists(t, filepath.Join(dir, ".asimov"))
}

func TestRunInit_KeepsExistingRoadmap(t *testing.T) {
	t.Parallel()

	roadmap := "current:\n  version: \"3.0\"\n  status: in_progress\n  summary: Already planned\n"
	dir := testutil.CreateGovernedDir(t, testutil.WithProtocolFile("roadmap.yaml", roadmap))
	var out bytes.Buffer

	err := runInit(&out, newRuntime(dir), initOptions{Name: "forge", Type: "go"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "8 created, 0 updated, 1 unchanged, 0 failed")
	assert.Contains(t, out.String(), "Kept (user-owned) "+filepath.Join(".asimov", "roadmap.yaml"))
	assert.Equal(t, roadmap, testutil.ReadFile(t, testutil.ProtocolPath(dir, "roadmap.yaml")))
}

func TestRunInit_DryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var out bytes.Buffer

	err := runInit(&out, newRuntime(dir), initOptions{Name: "forge", Type: "go", DryRun: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Would create "+filepath.Join(".asimov", "warmup.yaml"))
	assert.NotContains(t, out.String(), "Protocol files ready")
	assert.NoDirExists(t, filepath.Join(dir, ".asimov"))
}

func TestRunInit_UnwritableParent(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })
	var out bytes.Buffer

	err := runInit(&out, newRuntime(dir), initOptions{Name: "forge", Type: "go"})
	require.Error(t, err)
	assert.Equal(t, shared.ExitDirectoryFault, shared.ExitCode(err))
}
