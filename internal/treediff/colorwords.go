package treediff

import (
	"context"
	"fmt"

	"github.com/src-d/treediff/internal/formatter"
	"github.com/src-d/treediff/internal/linediff"
	"github.com/src-d/treediff/internal/store"
	"github.com/src-d/treediff/internal/textdiff"
)

// showColorWords implements §4.6 step 4: per entry, a header line
// describing the transition, then either a binary/empty placeholder or the
// color-words hunk renderer.
func (r *Renderer) showColorWords(ctx context.Context, stream store.TreeDiffStream, contextSize int) error {
	for {
		entry, ok, err := r.nextEntry(ctx, stream, false)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := r.renderColorWordsEntry(entry, contextSize); err != nil {
			return err
		}
	}
}

func (r *Renderer) renderColorWordsEntry(entry store.TreeDiffEntry, contextSize int) error {
	path := entry.TargetPath
	if path == "" {
		path = entry.SourcePath
	}

	header := colorWordsHeader(entry, path)
	if err := r.Formatter.WithLabel("header", func(f formatter.Formatter) error {
		_, err := f.WriteBytes([]byte(header + "\n"))
		return err
	}); err != nil {
		return newIoError(string(path), err)
	}

	if entry.Left.Kind == store.Tree || entry.Right.Kind == store.Tree {
		panic("treediff: a Tree value reached the file-diff renderer")
	}

	leftContent, err := textdiff.ClassifyContent(entry.Left)
	if err != nil {
		return newBackendError(string(path), err)
	}
	rightContent, err := textdiff.ClassifyContent(entry.Right)
	if err != nil {
		return newBackendError(string(path), err)
	}

	switch {
	case leftContent.IsBinary || rightContent.IsBinary:
		return r.writeLabeled("binary", "    (binary)\n", path)
	case len(leftContent.Contents) == 0 && len(rightContent.Contents) == 0:
		return r.writeLabeled("empty", "    (empty)\n", path)
	default:
		textdiff.RenderColorWords(r.Formatter, leftContent.Contents, rightContent.Contents, contextSize, linediff.Options{})
		return nil
	}
}

func (r *Renderer) writeLabeled(label, text string, path store.Path) error {
	if err := r.Formatter.WithLabel(label, func(f formatter.Formatter) error {
		_, err := f.WriteBytes([]byte(text))
		return err
	}); err != nil {
		return newIoError(string(path), err)
	}
	return nil
}

// colorWordsHeader builds the transition description line for one entry.
func colorWordsHeader(entry store.TreeDiffEntry, path store.Path) string {
	left, right := entry.Left, entry.Right

	switch {
	case left.Kind == store.Absent:
		return fmt.Sprintf("Added %s %s:", right.Label(), path)
	case right.Kind == store.Absent:
		return fmt.Sprintf("Removed %s %s:", left.Label(), path)
	case left.Kind == store.Conflict && right.Kind != store.Conflict:
		return fmt.Sprintf("Resolved conflict in %s %s:", right.Label(), path)
	case right.Kind == store.Conflict && left.Kind != store.Conflict:
		return fmt.Sprintf("Created conflict in %s %s:", left.Label(), path)
	case left.Kind != right.Kind:
		return fmt.Sprintf("%s became %s at %s:", capitalize(left.Label()), right.Label(), path)
	case left.Kind == store.Symlink:
		return fmt.Sprintf("Symlink target changed at %s:", path)
	case left.Kind == store.File && left.Executable != right.Executable:
		if right.Executable {
			return fmt.Sprintf("Executable bit set: %s:", path)
		}
		return fmt.Sprintf("Executable bit unset: %s:", path)
	default:
		return fmt.Sprintf("Modified %s %s:", right.Label(), path)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}
