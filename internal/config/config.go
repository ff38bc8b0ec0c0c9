package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/logging"
	"github.com/royalbit/asimov/internal/templates"
)

// EnvPrefix is the prefix of environment variables that override configuration.
const EnvPrefix = "ASIMOV_"

// Configuration represents the asimov CLI tool configuration
type Configuration struct {
	ProtocolDir  string `koanf:"protocol_dir" validate:"required,protocoldir"`
	ProjectName  string `koanf:"project_name"`
	ProjectType  string `koanf:"project_type"`
	LogLevel     string `koanf:"log_level" validate:"omitempty,loglevel"`
	ShowDiff     bool   `koanf:"show_diff"`     // Print a diff for every updated file on refresh
	ShowProgress bool   `koanf:"show_progress"` // Show a spinner while refreshing on a terminal
	NoColor      bool   `koanf:"no_color"`      // Disable colored output
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if globalPath, err := GlobalConfigPath(); err == nil {
		if err := loadFile(k, globalPath); err != nil {
			return nil, err
		}
	}

	if localConfigPath != "" {
		if err := loadFile(k, localConfigPath); err != nil {
			return nil, err
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := newValidator().Struct(cfg); err != nil {
		return nil, clierrors.NewConfigError(
			fmt.Sprintf("config validation failed: %v", err),
			"Check protocol_dir is a relative directory name",
			fmt.Sprintf("Check log_level is one of: %s", strings.Join(logging.Levels, ", ")),
		)
	}

	if cfg.ProjectType != "" {
		pt, err := templates.ParseProjectType(cfg.ProjectType)
		if err != nil {
			return nil, clierrors.UnknownProjectType(cfg.ProjectType, templates.ProjectTypeNames())
		}
		cfg.ProjectType = pt.String()
	}

	return &cfg, nil
}

// loadFile merges a JSON config file into k. A missing file is not an error.
func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return clierrors.ConfigParseError(path, err)
	}
	return nil
}

// envTransform converts environment variable names to config keys
// Example: ASIMOV_PROTOCOL_DIR -> protocol_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("protocoldir", func(fl validator.FieldLevel) bool {
		dir := fl.Field().String()
		if filepath.IsAbs(dir) {
			return false
		}
		clean := filepath.Clean(dir)
		return clean != "." && clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator))
	})
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logging.ParseLevel(fl.Field().String())
		return err == nil
	})
	return v
}
