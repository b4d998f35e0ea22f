package treediff

import (
	"bytes"
	"context"
	"fmt"

	"github.com/src-d/treediff/internal/formatter"
	"github.com/src-d/treediff/internal/linediff"
	"github.com/src-d/treediff/internal/store"
	"github.com/src-d/treediff/internal/textdiff"
)

// showGit implements §4.5: Git file headers, mode/rename/index lines, and
// unified content hunks, with rename suppression of the implicit "delete
// half" of a copy/rename pair.
func (r *Renderer) showGit(ctx context.Context, stream store.TreeDiffStream, copySources map[store.Path]struct{}, contextSize int) error {
	for {
		entry, ok, err := r.nextEntry(ctx, stream, true)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if entry.Right.Kind == store.Absent && isCopySource(entry.SourcePath, copySources) {
			continue
		}
		if err := r.renderGitEntry(entry, contextSize); err != nil {
			return err
		}
	}
}

func (r *Renderer) renderGitEntry(entry store.TreeDiffEntry, contextSize int) error {
	if entry.Left.Kind == store.Tree || entry.Right.Kind == store.Tree {
		panic("treediff: a Tree value reached the file-diff renderer")
	}

	left, right := entry.Left, entry.Right
	srcPath, dstPath := entry.SourcePath, entry.TargetPath

	if err := r.writeFileHeader(entry); err != nil {
		return newIoError(string(dstPath), err)
	}

	if left.Kind == store.Absent && right.Kind == store.Absent {
		return nil
	}

	leftContent, err := textdiff.ClassifyContent(left)
	if err != nil {
		return newBackendError(string(dstPath), err)
	}
	rightContent, err := textdiff.ClassifyContent(right)
	if err != nil {
		return newBackendError(string(dstPath), err)
	}

	contentsDiffer := !bytes.Equal(leftContent.Contents, rightContent.Contents)
	if !contentsDiffer {
		return nil
	}

	aPath := "/dev/null"
	if left.Kind != store.Absent {
		aPath = "a/" + string(srcPath)
	}
	bPath := "/dev/null"
	if right.Kind != store.Absent {
		bPath = "b/" + string(dstPath)
	}

	if leftContent.IsBinary || rightContent.IsBinary {
		line := fmt.Sprintf("Binary files %s and %s differ\n", aPath, bPath)
		return r.writeLabeled("binary", line, dstPath)
	}

	if err := r.Formatter.WithLabel("file_header", func(f formatter.Formatter) error {
		_, err := f.WriteBytes([]byte("--- " + aPath + "\n+++ " + bPath + "\n"))
		return err
	}); err != nil {
		return newIoError(string(dstPath), err)
	}

	hunks := textdiff.BuildUnifiedHunks(leftContent.Contents, rightContent.Contents, contextSize, linediff.Options{})
	textdiff.WriteUnifiedHunks(r.Formatter, hunks)
	return nil
}

func (r *Renderer) writeFileHeader(entry store.TreeDiffEntry) error {
	left, right := entry.Left, entry.Right
	srcPath, dstPath := entry.SourcePath, entry.TargetPath

	return r.Formatter.WithLabel("file_header", func(f formatter.Formatter) error {
		if _, err := f.WriteBytes([]byte(fmt.Sprintf("diff --git a/%s b/%s\n", srcPath, dstPath))); err != nil {
			return err
		}

		leftHash, rightHash := indexHash(left), indexHash(right)

		switch {
		case left.Kind == store.Absent && right.Kind != store.Absent:
			_, err := f.WriteBytes([]byte(fmt.Sprintf("new file mode %s\nindex %s..%s\n", right.Mode(), leftHash, rightHash)))
			return err

		case left.Kind != store.Absent && right.Kind == store.Absent:
			_, err := f.WriteBytes([]byte(fmt.Sprintf("deleted file mode %s\nindex %s..%s\n", left.Mode(), leftHash, rightHash)))
			return err

		case srcPath != dstPath:
			op := "copy"
			if !entry.IsCopy {
				op = "rename"
			}
			_, err := f.WriteBytes([]byte(fmt.Sprintf("%s from %s\n%s to %s\n", op, srcPath, op, dstPath)))
			return err

		case left.Mode() != right.Mode():
			if _, err := f.WriteBytes([]byte(fmt.Sprintf("old mode %s\nnew mode %s\n", left.Mode(), right.Mode()))); err != nil {
				return err
			}
			if leftHash != rightHash {
				_, err := f.WriteBytes([]byte(fmt.Sprintf("index %s..%s\n", leftHash, rightHash)))
				return err
			}
			return nil

		case leftHash != rightHash:
			_, err := f.WriteBytes([]byte(fmt.Sprintf("index %s..%s %s\n", leftHash, rightHash, left.Mode())))
			return err

		default:
			return nil
		}
	})
}

// indexHash returns the Git-style truncated object hash used in an "index"
// line, substituting the all-zero dummy hash for sides that carry no
// resolvable blob identity: Absent (nothing to hash) and Conflict (spec
// §4.5: conflict sides always report the zeroed hash, never their marker
// blob's real id).
func indexHash(v store.TreeValue) string {
	if v.Kind == store.Absent || v.Kind == store.Conflict {
		return "0000000000"
	}
	return v.ID.Short()
}
