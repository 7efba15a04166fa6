package repotree

import (
	git "github.com/go-git/go-git/v5"
)

// Revision returns the HEAD commit hash of the git repository containing
// root. Roots outside any git repository return ok=false; the check still
// runs, the report just carries no revision.
func Revision(root string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}

	head, err := repo.Head()
	if err != nil {
		return "", false
	}

	return head.Hash().String(), true
}
