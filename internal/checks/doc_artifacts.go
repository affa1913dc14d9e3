package checks

import (
	"os"
	"path/filepath"

	"github.com/crantools/preflight/internal/descriptor"
)

// DocArtifacts warns when inst/doc contains files. Built vignette artifacts
// land there and should be regenerated at build time, not shipped from the
// source tree. An empty or absent directory passes.
type DocArtifacts struct{}

func (DocArtifacts) Name() string { return "inst/doc contains no generated artifacts" }

func (DocArtifacts) Run(pkg *descriptor.Package) Outcome {
	entries, err := os.ReadDir(filepath.Join(pkg.Path, "inst", "doc"))
	if err != nil {
		if os.IsNotExist(err) {
			return Passed()
		}
		return Errored(err)
	}
	if len(entries) == 0 {
		return Passed()
	}
	return Failed("inst/doc contains generated vignette artifacts; remove them and rebuild at release time")
}
