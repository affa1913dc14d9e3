package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	t.Run("clean package", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "DESCRIPTION"),
			[]byte("Package: demo\nVersion: 1.2.3\n"), 0o600))

		root := newRootCommand()
		registerSubcommands(root)
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs([]string{"check", dir})

		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Running release checks for demo")
		assert.Contains(t, buf.String(), "Checking version number has three components... OK")
	})

	t.Run("warnings do not fail the command", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "DESCRIPTION"),
			[]byte("Package: demo\nVersion: 1.2.3.9000\n"), 0o600))

		root := newRootCommand()
		registerSubcommands(root)
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs([]string{"check", dir})

		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "WARNING: version 1.2.3.9000 should have exactly three components")
	})

	t.Run("summary flag appends table", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "DESCRIPTION"),
			[]byte("Package: demo\nVersion: 1.2.3\n"), 0o600))

		root := newRootCommand()
		registerSubcommands(root)
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs([]string{"check", "--summary", dir})

		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "CHECK")
		assert.Contains(t, buf.String(), "STATUS")
	})

	t.Run("flag state does not leak across command trees", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "DESCRIPTION"),
			[]byte("Package: demo\nVersion: 1.2.3\n"), 0o600))

		first := newRootCommand()
		registerSubcommands(first)
		var firstOut bytes.Buffer
		first.SetOut(&firstOut)
		first.SetErr(&firstOut)
		first.SetArgs([]string{"check", "--summary", dir})
		require.NoError(t, first.Execute())
		require.Contains(t, firstOut.String(), "CHECK")

		second := newRootCommand()
		registerSubcommands(second)
		var secondOut bytes.Buffer
		second.SetOut(&secondOut)
		second.SetErr(&secondOut)
		second.SetArgs([]string{"check", dir})
		require.NoError(t, second.Execute())
		assert.NotContains(t, secondOut.String(), "CHECK")
	})

	t.Run("missing descriptor errors", func(t *testing.T) {
		root := newRootCommand()
		registerSubcommands(root)
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs([]string{"check", t.TempDir()})

		assert.Error(t, root.Execute())
	})
}

func TestVersionCommand(t *testing.T) {
	root := newRootCommand()
	registerSubcommands(root)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "preflight ")
}
