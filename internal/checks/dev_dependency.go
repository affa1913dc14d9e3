package checks

import (
	"fmt"
	"strings"

	"github.com/crantools/preflight/internal/descriptor"
	"github.com/crantools/preflight/pkg/rversion"
)

// DevDependency flags dependencies constrained to in-development versions
// (four components, 4th >= 9000). Shipping against one risks depending on an
// unreleased target. Entries without a version constraint, or with a
// constraint that doesn't parse as numeric components, are not flagged.
type DevDependency struct{}

func (DevDependency) Name() string { return "dependencies don't rely on dev versions" }

func (DevDependency) Run(pkg *descriptor.Package) Outcome {
	var flagged []string
	for _, dep := range pkg.Dependencies() {
		if dep.Constraint == "" {
			continue
		}
		components, err := rversion.Components(dep.Constraint)
		if err != nil {
			continue
		}
		if rversion.IsDev(components) {
			flagged = append(flagged, dep.Name)
		}
	}
	if len(flagged) > 0 {
		return Failed(fmt.Sprintf("depends on development versions of: %s", strings.Join(flagged, ", ")))
	}
	return Passed()
}
