package checks

import (
	"fmt"

	"github.com/crantools/preflight/internal/descriptor"
	"github.com/crantools/preflight/pkg/rversion"
)

// VersionFormat verifies the package version has the canonical
// three-component release form. A fourth component marks an in-development
// version that should be dropped before release.
type VersionFormat struct{}

func (VersionFormat) Name() string { return "version number has three components" }

func (VersionFormat) Run(pkg *descriptor.Package) Outcome {
	release, err := rversion.IsRelease(pkg.Version)
	if err != nil {
		return Errored(err)
	}
	if !release {
		return Failed(fmt.Sprintf("version %s should have exactly three components", pkg.Version))
	}
	return Passed()
}
