// Package errors_test tests how CLI errors are rendered on stderr.
// Related: internal/errors/format.go, internal/errors/messages.go
// Tags: errors, formatting, remediation, usage, colors
package errors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  *CLIError
		want string
	}{
		"nil": {},
		"not governed": {
			err: NotGoverned("/srv/app", ".asimov"),
			want: "Prerequisite Error: /srv/app is not a governed project (no .asimov directory)\n" +
				"\nTo fix this:\n" +
				"  1. Run 'asimov init' to create the protocol files\n" +
				"  2. Or pass --dir to point at a governed project\n",
		},
		"directory not writable": {
			err: DirectoryNotWritable(".asimov", fmt.Errorf("%w: read-only file system", ErrDirectoryUnwritable)),
			want: "Runtime Error: cannot write to .asimov: protocol directory is not writable: read-only file system\n" +
				"\nTo fix this:\n" +
				"  1. Check permissions: ls -ld .asimov\n" +
				"  2. Files that were already regenerated are listed above\n",
		},
		"usage before remediation": {
			err: UnknownKind("bogus", []string{"warmup", "roadmap"}),
			want: "Argument Error: unknown protocol kind: 'bogus'\n" +
				"\nUsage:\n  asimov schema [kind]\n" +
				"\nTo fix this:\n" +
				"  1. Use one of: warmup, roadmap\n",
		},
		"wrapped plain error": {
			err:  Wrap(errors.New("boom"), Runtime),
			want: "Runtime Error: boom\n",
		},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatErrorPlain(tt.err))
		})
	}
}

func TestFormatError_Colored(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = saved })

	got := FormatError(NotGoverned("/srv/app", ".asimov"))

	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "/srv/app is not a governed project")
	assert.NotEqual(t, FormatErrorPlain(NotGoverned("/srv/app", ".asimov")), got)
}

func TestFormatError_NoColorMatchesPlain(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })

	err := DirectoryNotWritable(".asimov", ErrDirectoryUnwritable)
	assert.Equal(t, FormatErrorPlain(err), FormatError(err))
	assert.Empty(t, FormatError(nil))
}

func TestFprintError(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })

	var buf bytes.Buffer
	FprintError(&buf, nil)
	assert.Empty(t, buf.String())

	FprintError(&buf, NoMatchingFiles([]string{"*.yml", "docs/*.yaml"}))
	assert.Equal(t, "Argument Error: no protocol files match: *.yml docs/*.yaml\n"+
		"\nTo fix this:\n"+
		"  1. Quote glob patterns so the shell does not expand them\n"+
		"  2. Protocol file names must contain a known kind, e.g. warmup.yaml\n", buf.String())
}
