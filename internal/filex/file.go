// Package filex contains small filesystem helpers used by downloads and
// exports: ensuring the artifacts directory exists and writing artifact files.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureSubDir creates dirName under the current working directory (if it does
// not already exist) and returns its absolute path.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// WriteArtifact writes data to a file named name inside dir and returns the
// full path. The name is sanitized so a record title can be used directly.
func WriteArtifact(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, SanitizeFileName(name))
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// SanitizeFileName replaces path separators and collapses whitespace runs so
// that an arbitrary record title becomes a safe file name.
func SanitizeFileName(name string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_")
	name = replacer.Replace(strings.TrimSpace(name))
	return strings.Join(strings.Fields(name), "_")
}
