// Package shared_test tests runtime setup, directory resolution and template parameter precedence.
// Related: internal/cli/shared/runtime.go
// Tags: shared, runtime, config, params, detection
package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalbit/asimov/internal/config"
	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/templates"
	"github.com/royalbit/asimov/internal/testutil"
)

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String(DirFlag, "", "")
	cmd.Flags().String(ConfigFlag, "", "")
	cmd.Flags().Bool(DebugFlag, false, "")
	cmd.Flags().Bool(NoColorFlag, false, "")
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestSetup(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	testutil.ClearConfigEnv(t)

	dir := testutil.CreateGovernedDir(t)
	testutil.WriteFile(t, filepath.Join(dir, ".asimov", "config.json"), `{"project_name": "forge", "log_level": "error"}`)

	rt, err := Setup(newFlagCmd(t, "--dir", dir, "--debug", "--no-color"))
	require.NoError(t, err)

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, rt.Dir)
	assert.Equal(t, "forge", rt.Config.ProjectName)
	assert.True(t, rt.Config.NoColor)
	assert.Equal(t, "debug", rt.Logger.GetLevel().String())
	assert.Equal(t, ".asimov", rt.ProtocolDirName())
}

func TestSetup_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	testutil.ClearConfigEnv(t)

	dir := t.TempDir()
	tests := map[string]struct {
		args     []string
		category clierrors.ErrorCategory
	}{
		"missing directory": {
			args:     []string{"--dir", filepath.Join(dir, "absent")},
			category: clierrors.Prerequisite,
		},
		"missing explicit config": {
			args:     []string{"--dir", dir, "--config", filepath.Join(dir, "absent.json")},
			category: clierrors.Configuration,
		},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			_, err := Setup(newFlagCmd(t, tt.args...))
			require.Error(t, err)
			cliErr := clierrors.AsCLIError(err)
			require.NotNil(t, cliErr)
			assert.Equal(t, tt.category, cliErr.Category)
		})
	}
}

func TestResolveDir_File(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := ResolveDir(file)
	assert.True(t, clierrors.IsCLIError(err))
}

func TestResolveParams(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cfg      *config.Configuration
		name     string
		typ      string
		wantName string
		wantType templates.ProjectType
	}{
		"detected from markers": {
			wantName: "detected",
			wantType: templates.ProjectTypeRust,
		},
		"config beats detection": {
			cfg:      &config.Configuration{ProjectName: "configured", ProjectType: "python"},
			wantName: "configured",
			wantType: templates.ProjectTypePython,
		},
		"flags beat config": {
			cfg:      &config.Configuration{ProjectName: "configured", ProjectType: "python"},
			name:     "flagged",
			typ:      "golang",
			wantName: "flagged",
			wantType: templates.ProjectTypeGo,
		},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			testutil.WriteFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\nname = \"detected\"\n")

			params, err := ResolveParams(dir, tt.cfg, tt.name, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, params.ProjectName)
			assert.Equal(t, tt.wantType, params.ProjectType)
		})
	}
}

func TestResolveParams_UnknownType(t *testing.T) {
	t.Parallel()

	_, err := ResolveParams(t.TempDir(), nil, "x", "cobol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown project type: 'cobol'")
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}

func TestRuntime_RelPath(t *testing.T) {
	t.Parallel()

	rt := &Runtime{Dir: filepath.Join("/work", "proj")}
	assert.Equal(t, filepath.Join(".asimov", "warmup.yaml"), rt.RelPath(filepath.Join("/work", "proj", ".asimov", "warmup.yaml")))
	assert.Equal(t, filepath.Join("/work", "other.yaml"), rt.RelPath(filepath.Join("/work", "other.yaml")))
}

func TestRuntime_EngineOptions(t *testing.T) {
	t.Parallel()

	rt := &Runtime{Dir: "/p", Config: &config.Configuration{ProtocolDir: "gov"}}
	opts := rt.EngineOptions(templates.Params{ProjectName: "p"}, true)
	assert.Equal(t, "gov", opts.ProtocolDir)
	assert.True(t, opts.DryRun)
	assert.Equal(t, "p", opts.Params.ProjectName)
	assert.NotNil(t, opts.Logger)
}
