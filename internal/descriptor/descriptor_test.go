package descriptor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("basic fields", func(t *testing.T) {
		dir := writeDescriptor(t, "Package: demo\nVersion: 1.2.3\nTitle: A Demo Package\n")

		pkg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "demo", pkg.Name)
		assert.Equal(t, "1.2.3", pkg.Version)
		assert.Equal(t, dir, pkg.Path)

		title, ok := pkg.Field("Title")
		require.True(t, ok)
		assert.Equal(t, "A Demo Package", title)
	})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		dir := writeDescriptor(t, "Package: demo\nVersion: 1.0.0\nRemotes: r-lib/rlang\n")

		pkg, err := Load(dir)
		require.NoError(t, err)
		assert.True(t, pkg.HasField("remotes"))
		assert.True(t, pkg.HasField("REMOTES"))
		assert.False(t, pkg.HasField("Suggests"))
	})

	t.Run("continuation lines", func(t *testing.T) {
		dir := writeDescriptor(t, "Package: demo\nVersion: 1.0.0\nImports:\n    rlang (>= 1.1.0),\n    utils\n")

		pkg, err := Load(dir)
		require.NoError(t, err)
		imports, ok := pkg.Field("Imports")
		require.True(t, ok)
		assert.Contains(t, imports, "rlang (>= 1.1.0)")
		assert.Contains(t, imports, "utils")
	})

	t.Run("missing descriptor", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("missing package name", func(t *testing.T) {
		dir := writeDescriptor(t, "Version: 1.0.0\n")
		_, err := Load(dir)
		assert.ErrorContains(t, err, "no Package field")
	})

	t.Run("missing version", func(t *testing.T) {
		dir := writeDescriptor(t, "Package: demo\n")
		_, err := Load(dir)
		assert.ErrorContains(t, err, "no Version field")
	})

	t.Run("malformed line", func(t *testing.T) {
		dir := writeDescriptor(t, "Package demo\n")
		_, err := Load(dir)
		assert.ErrorContains(t, err, "malformed descriptor line")
	})
}

func TestDependencies(t *testing.T) {
	t.Run("union across fields in declaration order", func(t *testing.T) {
		dir := writeDescriptor(t, `Package: demo
Version: 1.0.0
Depends:
    R (>= 4.0)
Imports:
    rlang (>= 1.1.0),
    utils
Suggests:
    testthat (>= 3.0.0.9000)
`)

		pkg, err := Load(dir)
		require.NoError(t, err)

		deps := pkg.Dependencies()
		require.Len(t, deps, 4)
		assert.Equal(t, Dependency{Name: "R", Constraint: "4.0", Field: "Depends"}, deps[0])
		assert.Equal(t, Dependency{Name: "rlang", Constraint: "1.1.0", Field: "Imports"}, deps[1])
		assert.Equal(t, Dependency{Name: "utils", Constraint: "", Field: "Imports"}, deps[2])
		assert.Equal(t, Dependency{Name: "testthat", Constraint: "3.0.0.9000", Field: "Suggests"}, deps[3])
	})

	t.Run("no dependency fields", func(t *testing.T) {
		dir := writeDescriptor(t, "Package: demo\nVersion: 1.0.0\n")
		pkg, err := Load(dir)
		require.NoError(t, err)
		assert.Empty(t, pkg.Dependencies())
	})

	t.Run("operator variants", func(t *testing.T) {
		dir := writeDescriptor(t, "Package: demo\nVersion: 1.0.0\nImports: a (> 1.0), b (== 2.0), c (<= 3.0)\n")
		pkg, err := Load(dir)
		require.NoError(t, err)

		deps := pkg.Dependencies()
		require.Len(t, deps, 3)
		assert.Equal(t, "1.0", deps[0].Constraint)
		assert.Equal(t, "2.0", deps[1].Constraint)
		assert.Equal(t, "3.0", deps[2].Constraint)
	})
}
