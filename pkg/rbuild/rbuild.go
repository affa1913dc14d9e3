// Package rbuild reads R build tooling files from a package root.
package rbuild

import (
	"os"
	"path/filepath"
	"strings"
)

// IgnoreFile is the build-ignore file R CMD build consults at the package root.
const IgnoreFile = ".Rbuildignore"

// IgnoreLines returns the non-empty lines of the package's .Rbuildignore.
// A missing file is not an error; it yields an empty list. Lines are
// returned verbatim apart from surrounding whitespace: each line is a Perl
// regex to R's build tooling, but callers here only ever do literal
// substring tests against them.
func IgnoreLines(pkgPath string) ([]string, error) {
	path := filepath.Join(pkgPath, IgnoreFile)
	content, err := os.ReadFile(path) // #nosec G304 -- fixed filename under caller-supplied package root
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
