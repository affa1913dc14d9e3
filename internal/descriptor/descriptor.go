// Package descriptor loads R package DESCRIPTION files. DESCRIPTION uses the
// Debian Control File layout: `Field: value` records where continuation
// lines begin with whitespace. Only the subset of the grammar needed for
// release checks is parsed; values are kept as raw strings.
package descriptor

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the package descriptor file at the package root.
const FileName = "DESCRIPTION"

// dependencyFields enumerates the recognized dependency-declaration fields.
// Lookup is case-insensitive; this is the canonical spelling.
var dependencyFields = []string{"Depends", "Imports", "Suggests", "LinkingTo", "Enhances"}

// Package is the loaded, read-only view of a package descriptor.
type Package struct {
	Path    string
	Name    string
	Version string

	// fields maps lowercased field name to raw value.
	fields map[string]string
}

// Dependency is one entry parsed out of a dependency-declaration field,
// e.g. "utils" or "rlang (>= 1.1.0)".
type Dependency struct {
	Name       string
	Constraint string // version inside the parenthesized constraint, "" if none
	Field      string // canonical field the entry was declared in
}

// Load reads and parses the DESCRIPTION file under pkgPath.
func Load(pkgPath string) (*Package, error) {
	path := filepath.Join(pkgPath, FileName)
	file, err := os.Open(path) // #nosec G304 -- fixed filename under caller-supplied package root
	if err != nil {
		return nil, fmt.Errorf("reading package descriptor: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	fields := make(map[string]string)
	var current string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			// Continuation of the previous field.
			if current != "" {
				fields[current] += "\n" + strings.TrimSpace(line)
			}
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("malformed descriptor line %q in %s", line, path)
		}
		current = strings.ToLower(strings.TrimSpace(name))
		fields[current] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading package descriptor: %w", err)
	}

	pkg := &Package{
		Path:    pkgPath,
		Name:    fields["package"],
		Version: fields["version"],
		fields:  fields,
	}
	if pkg.Name == "" {
		return nil, fmt.Errorf("descriptor %s has no Package field", path)
	}
	if pkg.Version == "" {
		return nil, fmt.Errorf("descriptor %s has no Version field", path)
	}
	return pkg, nil
}

// Field returns the raw value of a field, matched case-insensitively.
func (p *Package) Field(name string) (string, bool) {
	value, ok := p.fields[strings.ToLower(name)]
	return value, ok
}

// HasField reports whether the descriptor declares the field at all,
// matched case-insensitively.
func (p *Package) HasField(name string) bool {
	_, ok := p.fields[strings.ToLower(name)]
	return ok
}

// Dependencies returns the union of entries across all recognized
// dependency fields, in declaration order (Depends first).
func (p *Package) Dependencies() []Dependency {
	var deps []Dependency
	for _, field := range dependencyFields {
		raw, ok := p.Field(field)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		deps = append(deps, parseDependencyField(raw, field)...)
	}
	return deps
}

// parseDependencyField splits a raw declaration like
// "rlang (>= 1.1.0),\nutils" into entries.
func parseDependencyField(raw, field string) []Dependency {
	var deps []Dependency
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(strings.ReplaceAll(entry, "\n", " "))
		if entry == "" {
			continue
		}
		dep := Dependency{Field: field}
		if open := strings.Index(entry, "("); open >= 0 {
			dep.Name = strings.TrimSpace(entry[:open])
			constraint := entry[open+1:]
			if end := strings.Index(constraint, ")"); end >= 0 {
				constraint = constraint[:end]
			}
			dep.Constraint = stripConstraintOperator(constraint)
		} else {
			dep.Name = entry
		}
		if dep.Name != "" {
			deps = append(deps, dep)
		}
	}
	return deps
}

// stripConstraintOperator drops the comparison operator from a constraint
// body, leaving the bare version string: ">= 1.2.3" -> "1.2.3".
func stripConstraintOperator(constraint string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(constraint), "><=! "))
}
