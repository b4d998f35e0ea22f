// Package config loads user settings and resolves the default diff format
// per §6: ui.diff.tool -> ui.diff.format -> legacy diff.format -> "color-words".
package config

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/src-d/treediff/internal/treediff"
)

// Settings mirrors the on-disk YAML config shape.
type Settings struct {
	UI struct {
		Diff struct {
			Tool   string `yaml:"tool"`
			Format string `yaml:"format"`
		} `yaml:"diff"`
	} `yaml:"ui"`
	Diff struct {
		Format string `yaml:"format"`
	} `yaml:"diff"`
}

// DefaultConfigPath returns "~/.config/treediff/config.yaml" with "~"
// expanded, the same way teacher's loadSSHIdentity expands its identity
// path via mitchellh/go-homedir.
func DefaultConfigPath() (string, error) {
	return homedir.Expand("~/.config/treediff/config.yaml")
}

// Load reads and parses the YAML settings file at path. A missing file is
// not an error; it yields zero-value Settings so resolution falls through
// to the built-in default.
func Load(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "config: parsing %s", path)
	}
	return s, nil
}

// ResolveFormat implements the format resolution order from §6.
// s.UI.Diff.Tool, when non-empty, always wins and yields a treediff.Tool
// format whose ToolConfig is left nil. contextSize applies to whichever
// parsed format carries a context window.
func (s Settings) ResolveFormat(contextSize int) treediff.DiffFormat {
	if s.UI.Diff.Tool != "" {
		return treediff.DiffFormat{Kind: treediff.Tool}
	}
	if f, ok := treediff.ParseDiffFormat(s.UI.Diff.Format, contextSize); ok {
		return f
	}
	if f, ok := treediff.ParseDiffFormat(s.Diff.Format, contextSize); ok {
		return f
	}
	return treediff.DiffFormat{Kind: treediff.ColorWords, Context: contextSize}
}
