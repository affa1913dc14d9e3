package checks

import "github.com/crantools/preflight/internal/descriptor"

// RemotesField warns when the descriptor carries a Remotes field. Remotes
// points dependency installation at non-registry sources and is rejected on
// formal release submission.
type RemotesField struct{}

func (RemotesField) Name() string { return "DESCRIPTION doesn't have Remotes field" }

func (RemotesField) Run(pkg *descriptor.Package) Outcome {
	if pkg.HasField("Remotes") {
		return Failed("Remotes field must be removed before release; registries only install from registry sources")
	}
	return Passed()
}
