package services

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitService reads build identifiers from the blog source tree.
// Built artifacts are named by the commit they were built from, so the HEAD
// hash of the source tree is the build identifier of a fresh build.
type GitService struct{}

var _ GitExecutor = (*GitService)(nil)

func NewGitService() *GitService {
	return &GitService{}
}

// IsRepository reports whether workingDir is inside a git repository
func (s *GitService) IsRepository(workingDir string) bool {
	_, err := git.PlainOpenWithOptions(workingDir, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// HeadCommit returns the HEAD commit hash
func (s *GitService) HeadCommit(workingDir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(workingDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	ref, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	return ref.Hash().String(), nil
}

