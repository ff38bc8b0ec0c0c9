package shared

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/royalbit/asimov/internal/build"
	"github.com/royalbit/asimov/internal/config"
	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/logging"
	"github.com/royalbit/asimov/internal/regen"
	"github.com/royalbit/asimov/internal/templates"
)

// Runtime is the per-invocation state every protocol command needs.
type Runtime struct {
	Dir    string                // Absolute project root
	Config *config.Configuration // Merged configuration
	Logger zerolog.Logger        // Console logger on stderr
}

// Setup resolves the project directory, loads configuration and builds the
// logger from the root command's persistent flags.
func Setup(cmd *cobra.Command) (*Runtime, error) {
	dirFlag, _ := cmd.Flags().GetString(DirFlag)
	configPath, _ := cmd.Flags().GetString(ConfigFlag)
	debug, _ := cmd.Flags().GetBool(DebugFlag)
	noColor, _ := cmd.Flags().GetBool(NoColorFlag)

	dir, err := ResolveDir(dirFlag)
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, clierrors.ConfigFileNotFound(configPath)
		}
	} else {
		configPath = config.LocalConfigPath(dir, "")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if noColor {
		cfg.NoColor = true
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, clierrors.NewConfigError(err.Error())
	}
	if debug {
		level = zerolog.DebugLevel
	}

	logger := logging.InitLogger(cmd.ErrOrStderr(), level, cfg.NoColor)
	logger.Debug().
		Str("version", build.String()).
		Str("dir", dir).
		Str("config", configPath).
		Str("protocol_dir", cfg.ProtocolDir).
		Msg("runtime ready")

	return &Runtime{Dir: dir, Config: cfg, Logger: logger}, nil
}

// ResolveDir returns the absolute project directory. An empty value means
// the working directory.
func ResolveDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", clierrors.DirectoryNotFound(dir)
	}
	return abs, nil
}

// ResolveParams picks the template parameters for dir. Flags win over
// configuration, and configuration wins over detection from marker files.
func ResolveParams(dir string, cfg *config.Configuration, name, projectType string) (templates.Params, error) {
	if name == "" && cfg != nil {
		name = cfg.ProjectName
	}
	if name == "" {
		name = templates.DetectProjectName(dir)
	}

	if projectType == "" && cfg != nil {
		projectType = cfg.ProjectType
	}
	pt := templates.DetectProjectType(dir)
	if projectType != "" {
		parsed, err := templates.ParseProjectType(projectType)
		if err != nil {
			return templates.Params{}, clierrors.UnknownProjectType(projectType, templates.ProjectTypeNames())
		}
		pt = parsed
	}

	return templates.Params{ProjectName: name, ProjectType: pt}, nil
}

// EngineOptions builds engine options from the runtime.
func (rt *Runtime) EngineOptions(params templates.Params, dryRun bool) regen.Options {
	opts := regen.Options{
		Params: params,
		DryRun: dryRun,
		Logger: &rt.Logger,
	}
	if rt.Config != nil {
		opts.ProtocolDir = rt.Config.ProtocolDir
	}
	return opts
}

// ProtocolDirName returns the configured protocol directory name.
func (rt *Runtime) ProtocolDirName() string {
	if rt.Config == nil || rt.Config.ProtocolDir == "" {
		return regen.DefaultProtocolDir
	}
	return rt.Config.ProtocolDir
}

// RelPath returns path relative to the project root for display. Paths
// outside the root are returned unchanged.
func (rt *Runtime) RelPath(path string) string {
	rel, err := filepath.Rel(rt.Dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// Stdout returns out as an *os.File, or nil when it is some other writer.
func Stdout(out io.Writer) *os.File {
	if f, ok := out.(*os.File); ok {
		return f
	}
	return nil
}
