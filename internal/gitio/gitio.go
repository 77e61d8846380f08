// Package gitio wraps the go-git operations the CLI needs: opening the
// enclosing repository, reading commit messages by revision, and locating
// the hooks directory.
package gitio

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// OpenRepository opens the git repository enclosing dir, searching upward
// for the .git directory the way the git CLI does.
func OpenRepository(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return repo, nil
}

// MessageAt resolves rev (a hash, branch, tag, or expression such as HEAD~2)
// and returns the full message of the commit it points at.
func MessageAt(repo *git.Repository, rev string) (string, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("failed to resolve revision %q: %w", rev, err)
	}
	c, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("failed to read commit %s: %w", hash, err)
	}
	return c.Message, nil
}

// RootDir returns the worktree root of the repository. Bare repositories
// have no worktree and are rejected.
func RootDir(repo *git.Repository) (string, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("repository has no worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// HooksDir returns the hooks directory of the repository.
func HooksDir(repo *git.Repository) (string, error) {
	root, err := RootDir(repo)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ".git", "hooks"), nil
}
