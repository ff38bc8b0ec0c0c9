package templates

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DetectProjectName reads the project name from the first manifest found in
// dir: Cargo.toml, pyproject.toml, package.json, then go.mod. Falls back to
// the directory's base name.
func DetectProjectName(dir string) string {
	detectors := []func(string) string{
		cargoName,
		pyprojectName,
		packageJSONName,
		goModName,
	}
	for _, detect := range detectors {
		if name := strings.TrimSpace(detect(dir)); name != "" {
			return name
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base(dir)
	}
	return filepath.Base(abs)
}

func cargoName(dir string) string {
	var manifest struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
		Workspace struct {
			Package struct {
				Name string `toml:"name"`
			} `toml:"package"`
		} `toml:"workspace"`
	}
	if _, err := toml.DecodeFile(filepath.Join(dir, "Cargo.toml"), &manifest); err != nil {
		return ""
	}
	if manifest.Package.Name != "" {
		return manifest.Package.Name
	}
	return manifest.Workspace.Package.Name
}

func pyprojectName(dir string) string {
	var manifest struct {
		Project struct {
			Name string `toml:"name"`
		} `toml:"project"`
		Tool struct {
			Poetry struct {
				Name string `toml:"name"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if _, err := toml.DecodeFile(filepath.Join(dir, "pyproject.toml"), &manifest); err != nil {
		return ""
	}
	if manifest.Project.Name != "" {
		return manifest.Project.Name
	}
	return manifest.Tool.Poetry.Name
}

func packageJSONName(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return ""
	}
	var manifest struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	if manifest.Name == "" {
		return ""
	}
	// Scoped packages (@org/name) keep only the package part.
	return path.Base(manifest.Name)
}

func goModName(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "module "); ok {
			modPath := strings.Trim(strings.TrimSpace(rest), `"`)
			if modPath == "" {
				return ""
			}
			return path.Base(modPath)
		}
	}
	return ""
}
