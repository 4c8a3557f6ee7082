// Package gitrepo locates the git working tree that encloses a path.
package gitrepo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when no enclosing repository exists.
var ErrNotRepository = errors.New("not a git repository")

// Root returns the absolute top-level directory of the repository that
// contains start, searching parent directories. An empty start means the
// current working directory.
func Root(start string) (string, error) {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		start = wd
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%s (or any parent): %w", abs, ErrNotRepository)
		}
		return "", fmt.Errorf("opening repository at %s: %w", abs, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("%s is a bare repository: %w", abs, ErrNotRepository)
	}

	return wt.Filesystem.Root(), nil
}
