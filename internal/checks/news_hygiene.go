package checks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/crantools/preflight/internal/descriptor"
	"github.com/crantools/preflight/pkg/rbuild"
)

// NewsIgnore warns when NEWS.md is listed in .Rbuildignore. CRAN has
// accepted NEWS.md since 2017, so ignoring it only hides the changelog from
// users. Skipped when the package has no NEWS.md.
//
// The match is a literal substring test against each ignore line, in two
// variants ("NEWS.md" and the escaped "NEWS\.md"), not a regex or glob
// evaluation. An ignore pattern that reaches NEWS.md through character
// classes goes undetected.
type NewsIgnore struct{}

func (NewsIgnore) Name() string { return "NEWS.md is not ignored" }

func (NewsIgnore) Run(pkg *descriptor.Package) Outcome {
	if !fileExists(filepath.Join(pkg.Path, "NEWS.md")) {
		return Skipped()
	}
	lines, err := rbuild.IgnoreLines(pkg.Path)
	if err != nil {
		return Errored(err)
	}
	for _, line := range lines {
		if strings.Contains(line, "NEWS.md") || strings.Contains(line, `NEWS\.md`) {
			return Failed("NEWS.md is supported by CRAN and no longer needs to be listed in .Rbuildignore")
		}
	}
	return Passed()
}

// LegacyNews warns when the defunct inst/NEWS.Rd changelog is still present.
// Skipped (never reported) when the file doesn't exist.
type LegacyNews struct{}

func (LegacyNews) Name() string { return "NEWS.Rd does not exist" }

func (LegacyNews) Run(pkg *descriptor.Package) Outcome {
	if !fileExists(filepath.Join(pkg.Path, "inst", "NEWS.Rd")) {
		return Skipped()
	}
	return Failed("inst/NEWS.Rd is defunct; remove it and use NEWS.md instead")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
