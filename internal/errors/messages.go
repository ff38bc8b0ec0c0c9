package errors

import (
	"fmt"
	"strings"
)

// NotGoverned reports that dir has no protocol directory.
func NotGoverned(dir, protocolDir string) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("%s is not a governed project (no %s directory)", dir, protocolDir),
		Remediation: []string{
			"Run 'asimov init' to create the protocol files",
			"Or pass --dir to point at a governed project",
		},
		Err: ErrNotGoverned,
	}
}

// DirectoryNotFound reports a missing directory argument.
func DirectoryNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("directory not found: %s", path),
		"Check the path passed to --dir",
	)
}

// DirectoryNotWritable reports that the protocol directory rejects writes.
func DirectoryNotWritable(path string, err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("cannot write to %s: %v", path, err),
		Remediation: []string{
			fmt.Sprintf("Check permissions: ls -ld %s", path),
			"Files that were already regenerated are listed above",
		},
		Err: err,
	}
}

// UnknownProjectType reports an unrecognized --type value.
func UnknownProjectType(value string, available []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("Unknown project type: '%s'. Available: %s", value, strings.Join(available, ", ")),
		"asimov init --type <type>",
		"Omit --type to detect the type from marker files",
	)
}

// UnknownKind reports an unrecognized protocol kind argument.
func UnknownKind(value string, available []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown protocol kind: '%s'", value),
		"asimov schema [kind]",
		fmt.Sprintf("Use one of: %s", strings.Join(available, ", ")),
	)
}

// NoMatchingFiles reports that file arguments matched nothing.
func NoMatchingFiles(patterns []string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("no protocol files match: %s", strings.Join(patterns, " ")),
		"Quote glob patterns so the shell does not expand them",
		"Protocol file names must contain a known kind, e.g. warmup.yaml",
	)
}

// ConfigFileNotFound reports a missing explicit config file.
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"Check the path passed to --config",
	)
}

// ConfigParseError reports a config file that cannot be loaded.
func ConfigParseError(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("failed to load config %s: %v", path, err),
		Remediation: []string{
			"Check the file is valid JSON",
			"Unset ASIMOV_* environment variables to rule them out",
		},
		Err: err,
	}
}

// InvalidFlagCombination reports flags that cannot be used together.
func InvalidFlagCombination(flags, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination %s: %s", flags, reason),
		"Run the command with --help to see valid flags",
	)
}
