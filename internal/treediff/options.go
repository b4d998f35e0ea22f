package treediff

import "github.com/src-d/treediff/internal/core"

// ConfigurationOptions lists the renderer's user-facing flags as static
// metadata, in the shape of core.ConfigurationOption — see design note in
// SPEC_FULL.md §9 for why this keeps teacher's struct shape without its
// reflection-driven registry behind it.
func ConfigurationOptions() []core.ConfigurationOption {
	return []core.ConfigurationOption{
		{Name: "Summary", Description: "Show a summary of changed paths.", Flag: "summary", Type: core.BoolConfigurationOption, Default: false},
		{Name: "Stat", Description: "Show a diffstat-style histogram of changes.", Flag: "stat", Type: core.BoolConfigurationOption, Default: false},
		{Name: "Types", Description: "Show path type transitions.", Flag: "types", Type: core.BoolConfigurationOption, Default: false},
		{Name: "NameOnly", Description: "Show only the names of changed paths.", Flag: "name-only", Type: core.BoolConfigurationOption, Default: false},
		{Name: "Git", Description: "Show a Git-compatible unified diff.", Flag: "git", Type: core.BoolConfigurationOption, Default: false},
		{Name: "ColorWords", Description: "Show an inline, word-highlighted diff.", Flag: "color-words", Type: core.BoolConfigurationOption, Default: false},
		{Name: "Tool", Description: "Delegate to an external diff tool by name.", Flag: "tool", Type: core.StringConfigurationOption, Default: ""},
		{Name: "Context", Description: "Number of context lines around each change.", Flag: "context", Type: core.IntConfigurationOption, Default: DefaultContextSize},
	}
}
