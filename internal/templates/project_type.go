package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProjectType selects the quality commands and file layout written to project.yaml.
type ProjectType string

const (
	ProjectTypeGeneric   ProjectType = "generic"
	ProjectTypeRust      ProjectType = "rust"
	ProjectTypePython    ProjectType = "python"
	ProjectTypeNode      ProjectType = "node"
	ProjectTypeGo        ProjectType = "go"
	ProjectTypeFlutter   ProjectType = "flutter"
	ProjectTypeDocs      ProjectType = "docs"
	ProjectTypeMigration ProjectType = "migration"
)

var projectTypes = []ProjectType{
	ProjectTypeGeneric,
	ProjectTypeRust,
	ProjectTypePython,
	ProjectTypeNode,
	ProjectTypeGo,
	ProjectTypeFlutter,
	ProjectTypeDocs,
	ProjectTypeMigration,
}

var projectTypeAliases = map[string]ProjectType{
	"py":            ProjectTypePython,
	"nodejs":        ProjectTypeNode,
	"js":            ProjectTypeNode,
	"javascript":    ProjectTypeNode,
	"golang":        ProjectTypeGo,
	"dart":          ProjectTypeFlutter,
	"documentation": ProjectTypeDocs,
	"arch":          ProjectTypeDocs,
	"architecture":  ProjectTypeDocs,
}

// ProjectTypes returns all supported project types.
func ProjectTypes() []ProjectType {
	out := make([]ProjectType, len(projectTypes))
	copy(out, projectTypes)
	return out
}

// ProjectTypeNames returns the names of all supported project types.
func ProjectTypeNames() []string {
	names := make([]string, 0, len(projectTypes))
	for _, pt := range projectTypes {
		names = append(names, string(pt))
	}
	return names
}

func (p ProjectType) String() string {
	return string(p)
}

// Valid reports whether p is a supported project type.
func (p ProjectType) Valid() bool {
	for _, pt := range projectTypes {
		if p == pt {
			return true
		}
	}
	return false
}

// ParseProjectType parses a project type name or alias, case-insensitively.
func ParseProjectType(s string) (ProjectType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if pt := ProjectType(name); pt.Valid() {
		return pt, nil
	}
	if pt, ok := projectTypeAliases[name]; ok {
		return pt, nil
	}
	return "", fmt.Errorf("Unknown project type: '%s'. Available: %s", s, strings.Join(ProjectTypeNames(), ", "))
}

// DetectProjectType infers the project type from marker files in dir.
// Markers are checked in priority order; pubspec.yaml wins over package.json
// because Flutter projects often carry both.
func DetectProjectType(dir string) ProjectType {
	exists := func(name string) bool {
		_, err := os.Stat(filepath.Join(dir, name))
		return err == nil
	}
	isDir := func(name string) bool {
		info, err := os.Stat(filepath.Join(dir, name))
		return err == nil && info.IsDir()
	}

	switch {
	case exists("pubspec.yaml"):
		return ProjectTypeFlutter
	case exists("Cargo.toml"):
		return ProjectTypeRust
	case exists("go.mod"):
		return ProjectTypeGo
	case exists("pyproject.toml") || exists("setup.py"):
		return ProjectTypePython
	case exists("package.json"):
		return ProjectTypeNode
	}

	if isDir("docs") || exists("README.md") {
		hasCode := isDir("src") || isDir("lib") || isDir("cmd") || isDir("pkg")
		if !hasCode {
			return ProjectTypeDocs
		}
	}
	return ProjectTypeGeneric
}

// qualityCommand is one entry of the project.yaml quality section.
type qualityCommand struct {
	Name    string
	Command string
}

var qualityCommands = map[ProjectType][]qualityCommand{
	ProjectTypeRust: {
		{"test", "cargo test"},
		{"lint", "cargo clippy -- -D warnings"},
		{"format", "cargo fmt --check"},
		{"build", "cargo build --release"},
	},
	ProjectTypePython: {
		{"test", "pytest"},
		{"lint", "ruff check ."},
		{"format", "ruff format --check ."},
		{"types", "mypy ."},
	},
	ProjectTypeNode: {
		{"test", "npm test"},
		{"lint", "npm run lint"},
		{"format", "npm run format"},
		{"build", "npm run build"},
	},
	ProjectTypeGo: {
		{"test", "go test ./..."},
		{"lint", "golangci-lint run"},
		{"format", "gofmt -l ."},
		{"vet", "go vet ./..."},
		{"build", "go build ./..."},
	},
	ProjectTypeFlutter: {
		{"test", "flutter test"},
		{"lint", "dart analyze lib/"},
		{"format", "dart format --set-exit-if-changed lib/ test/"},
		{"build", "flutter build apk"},
	},
	ProjectTypeDocs: {
		{"lint", "markdownlint '**/*.md'"},
		{"links", "lychee ."},
	},
	ProjectTypeMigration: {
		{"test", "make test"},
		{"parity", "make parity"},
	},
	ProjectTypeGeneric: {
		{"test", "make test"},
		{"lint", "make lint"},
	},
}

var sourceFiles = map[ProjectType][]string{
	ProjectTypeRust:      {"src/", "Cargo.toml"},
	ProjectTypePython:    {"src/", "pyproject.toml"},
	ProjectTypeNode:      {"src/", "package.json"},
	ProjectTypeGo:        {"cmd/", "internal/", "go.mod"},
	ProjectTypeFlutter:   {"lib/", "pubspec.yaml"},
	ProjectTypeDocs:      {"docs/"},
	ProjectTypeMigration: {"legacy/", "src/"},
	ProjectTypeGeneric:   {"src/"},
}
