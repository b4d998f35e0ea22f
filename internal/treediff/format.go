// Package treediff implements the tree-diff driver: it consumes a stream of
// per-path change entries, classifies each one, resolves copy/rename
// suppression, and dispatches to the requested per-path renderers (summary,
// stat, types, name-only, Git unified, color-words, or an external tool).
package treediff

import "github.com/src-d/treediff/internal/exttool"

// FormatKind names one of the renderers a DiffFormat can select.
type FormatKind int

const (
	// Summary emits one M|A|D|R|C line per changed path.
	Summary FormatKind = iota
	// Stat emits the histogram renderer.
	Stat
	// Types emits the <lchar><rchar> type-transition matrix.
	Types
	// NameOnly emits the right path only.
	NameOnly
	// Git emits Git-unified-compatible output.
	Git
	// ColorWords emits the inline color-words format.
	ColorWords
	// Tool delegates to an external diff tool.
	Tool
)

// DefaultContextSize is the default number of context lines around a
// change, used when a DiffFormat's Context field is left unset.
const DefaultContextSize = 3

// DiffFormat selects one renderer and its parameters. Git and ColorWords
// carry a context size; Tool carries the external tool configuration.
type DiffFormat struct {
	Kind       FormatKind
	Context    int
	ToolConfig *exttool.Config
}

// contextOrDefault returns f.Context, substituting DefaultContextSize when
// unset (zero).
func (f DiffFormat) contextOrDefault() int {
	if f.Context <= 0 {
		return DefaultContextSize
	}
	return f.Context
}

// DefaultDiffFormat returns the format used when nothing else resolves a
// choice: color-words with the default context size.
func DefaultDiffFormat() DiffFormat {
	return DiffFormat{Kind: ColorWords, Context: DefaultContextSize}
}

// ParseDiffFormat maps a recognized format name to a DiffFormat, as used by
// config resolution and the CLI's --tool-less flags. Unrecognized names
// return ok=false; "tool" is deliberately not accepted here since it always
// requires additional configuration supplied by the caller.
func ParseDiffFormat(name string, context int) (DiffFormat, bool) {
	var kind FormatKind
	switch name {
	case "summary":
		kind = Summary
	case "stat":
		kind = Stat
	case "types":
		kind = Types
	case "name-only":
		kind = NameOnly
	case "git":
		kind = Git
	case "color-words":
		kind = ColorWords
	default:
		return DiffFormat{}, false
	}
	return DiffFormat{Kind: kind, Context: context}, true
}
