// Package fsutil holds the filesystem primitives used by regeneration:
// atomic writes, optional reads and directory checks.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	clierrors "github.com/royalbit/asimov/internal/errors"
)

// FileMode is the permission applied to every written protocol file.
const FileMode os.FileMode = 0o644

// DirMode is the permission used when creating the protocol directory.
const DirMode os.FileMode = 0o755

// WriteFileAtomic writes content to path through a temp file in the same
// directory followed by a rename, so readers see either the old or the new
// file and never a truncated one.
//
// Failures to create the directory or the temp file wrap
// ErrDirectoryUnwritable. Failures after that point wrap ErrIO.
func WriteFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("creating directory %s: %w: %w", dir, clierrors.ErrDirectoryUnwritable, err)
	}
	tmpFile, err := os.CreateTemp(dir, ".asimov-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w: %w", dir, clierrors.ErrDirectoryUnwritable, err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing to temp file: %w: %w", clierrors.ErrIO, err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w: %w", clierrors.ErrIO, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w: %w", clierrors.ErrIO, err)
	}
	if err := os.Chmod(tmpPath, FileMode); err != nil {
		return fmt.Errorf("setting permissions on %s: %w: %w", tmpPath, clierrors.ErrIO, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w: %w", path, clierrors.ErrIO, err)
	}
	tmpPath = ""
	return nil
}

// ReadOptional returns the file content, or nil when the file does not exist.
// Any other failure wraps ErrIO.
func ReadOptional(path string) (*string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w: %w", path, clierrors.ErrIO, err)
	}
	content := string(data)
	return &content, nil
}

// Exists reports whether path exists. Errors other than not-exist count as existing
// so callers never treat an unreadable file as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListYAML returns the .yaml/.yml files directly inside dir, sorted by name.
func ListYAML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w: %w", dir, clierrors.ErrIO, err)
	}
	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() && e.Type()&fs.ModeSymlink == 0 {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
