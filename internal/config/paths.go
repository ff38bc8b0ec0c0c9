package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the name of both the global and the per-project config file.
const ConfigFileName = "config.json"

// GlobalConfigDir returns $XDG_CONFIG_HOME/asimov, or ~/.config/asimov when
// XDG_CONFIG_HOME is unset or relative. It never shares a name with a
// project's protocol directory, so running from $HOME does not mistake it
// for a governed project.
func GlobalConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, "asimov"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "asimov"), nil
}

// GlobalConfigPath returns the user-wide config.json.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LocalConfigPath returns the per-project config path inside the protocol
// directory of the project rooted at dir.
func LocalConfigPath(dir, protocolDir string) string {
	if protocolDir == "" {
		protocolDir = GetDefaults()["protocol_dir"].(string)
	}
	return filepath.Join(dir, protocolDir, ConfigFileName)
}
