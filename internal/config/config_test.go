package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/src-d/treediff/internal/treediff"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Settings{}, s)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("ui:\n  diff:\n    format: git\n    tool: meld\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "git", s.UI.Diff.Format)
	assert.Equal(t, "meld", s.UI.Diff.Tool)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [this is not a map"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveFormatPrecedence(t *testing.T) {
	toolFirst := Settings{}
	toolFirst.UI.Diff.Tool = "meld"
	toolFirst.UI.Diff.Format = "git"
	assert.Equal(t, treediff.Tool, toolFirst.ResolveFormat(3).Kind)

	uiFormat := Settings{}
	uiFormat.UI.Diff.Format = "stat"
	assert.Equal(t, treediff.Stat, uiFormat.ResolveFormat(3).Kind)

	legacyFormat := Settings{}
	legacyFormat.Diff.Format = "name-only"
	assert.Equal(t, treediff.NameOnly, legacyFormat.ResolveFormat(3).Kind)

	def := Settings{}
	resolved := def.ResolveFormat(5)
	assert.Equal(t, treediff.ColorWords, resolved.Kind)
	assert.Equal(t, 5, resolved.Context)
}

func TestDefaultConfigPathExpandsHome(t *testing.T) {
	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Contains(t, path, "treediff/config.yaml")
}
