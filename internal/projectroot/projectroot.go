// Package projectroot locates the repository root for path resolution.
package projectroot

import (
	"fmt"
	"os"
	"path/filepath"
)

// Find walks upward from start until it reaches a directory containing
// .git and returns that directory.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", start, err)
	}

	for {
		// .git is a directory in a normal checkout and a file in
		// worktrees; either marks the root.
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no repository found at or above %s", start)
		}
		dir = parent
	}
}
