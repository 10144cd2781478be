// Package gitroot locates the enclosing git worktree.
package gitroot

import (
	"fmt"
	"os"
	"path/filepath"
)

// Find walks upward from start until it finds a directory containing a
// .git entry and returns that directory. A .git file (linked worktree)
// counts as well as a directory.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no git repository found above %s", start)
		}
		dir = parent
	}
}
