package checks

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/crantools/preflight/internal/descriptor"
)

// placeholderTitle is the literal left behind by vignette templates.
// The match is case-sensitive by design.
const placeholderTitle = "Vignette Title"

// VignetteTitle scans the leading lines of each vignette source for the
// template placeholder title. With no vignettes in the package the check is
// skipped entirely (no file reads, no report).
type VignetteTitle struct {
	HeadLines int
	Patterns  []string
}

func (VignetteTitle) Name() string { return "vignette titles are not placeholders" }

func (c VignetteTitle) Run(pkg *descriptor.Package) Outcome {
	var files []string
	for _, pattern := range c.Patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(pkg.Path, pattern))
		if err != nil {
			return Errored(fmt.Errorf("vignette pattern %q: %w", pattern, err))
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return Skipped()
	}
	sort.Strings(files)

	var offenders []string
	for _, file := range files {
		found, err := headContains(file, c.HeadLines, placeholderTitle)
		if err != nil {
			return Errored(err)
		}
		if found {
			offenders = append(offenders, filepath.Base(file))
		}
	}
	if len(offenders) > 0 {
		return Failed(fmt.Sprintf("vignettes with placeholder titles: %s", strings.Join(offenders, ",")))
	}
	return Passed()
}

// headContains reports whether any of the first n lines of the file contain
// needle as a literal substring.
func headContains(path string, n int, needle string) (bool, error) {
	file, err := os.Open(path) // #nosec G304 -- path produced by vignette discovery under the package root
	if err != nil {
		return false, err
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	for i := 0; i < n && scanner.Scan(); i++ {
		if strings.Contains(scanner.Text(), needle) {
			return true, nil
		}
	}
	return false, scanner.Err()
}
