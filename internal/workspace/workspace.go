// Package workspace locates the Bazel workspace root that dazel operates in.
package workspace

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no workspace marker exists in the current
// directory or any of its parents.
var ErrNotFound = errors.New("no Bazel workspace found (missing WORKSPACE, WORKSPACE.bazel, or MODULE.bazel)")

// markerFiles are the files that mark the root of a Bazel workspace,
// checked in order.
var markerFiles = []string{"WORKSPACE", "WORKSPACE.bazel", "MODULE.bazel"}

// Find walks upward from startDir until it finds a directory containing a
// workspace marker file. Returns the absolute path of that directory.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range markerFiles {
			info, err := os.Stat(filepath.Join(dir, marker))
			if err == nil && !info.IsDir() {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// FindFromWd locates the workspace root starting from the process's
// current working directory.
func FindFromWd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return Find(wd)
}
