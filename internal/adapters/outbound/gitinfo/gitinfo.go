// Package gitinfo reads provenance from the evidence repository, when
// the evidence directory is version-controlled. The commit hash ties a
// verdict to the exact revision of the documents it judged.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter reads repository state using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// IsGitRepo reports whether the evidence directory is a git worktree.
func (g *GitInfoAdapter) IsGitRepo(dir string) bool {
	_, err := git.PlainOpen(dir)
	return err == nil
}

// CommitHash returns the HEAD commit of the evidence repository.
func (g *GitInfoAdapter) CommitHash(dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("opening evidence repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
