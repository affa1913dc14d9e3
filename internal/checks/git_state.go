package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/crantools/preflight/internal/descriptor"
	git "github.com/go-git/go-git/v5"
)

// GitState warns when the package worktree has uncommitted changes to
// tracked files. Untracked files don't block a release and are ignored.
// Skipped when the package isn't inside a git repository. Off by default;
// enabled via the checks.git_state policy key.
type GitState struct{}

func (GitState) Name() string { return "working tree is clean" }

func (GitState) Run(pkg *descriptor.Package) Outcome {
	repo, err := git.PlainOpenWithOptions(pkg.Path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Skipped()
	}
	wt, err := repo.Worktree()
	if err != nil {
		return Errored(err)
	}
	status, err := wt.Status()
	if err != nil {
		return Errored(err)
	}

	var dirty []string
	for path, fs := range status {
		if fs.Staging == git.Untracked {
			continue
		}
		if fs.Worktree != git.Unmodified || fs.Staging != git.Unmodified {
			dirty = append(dirty, path)
		}
	}
	if len(dirty) > 0 {
		sort.Strings(dirty)
		return Failed(fmt.Sprintf("uncommitted changes: %s", strings.Join(dirty, ", ")))
	}
	return Passed()
}
