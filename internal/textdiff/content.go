// Package textdiff implements the multi-granularity textual differ: content
// classification, context compression, inline word tokenization, and the
// unified and color-words renderers built on top of them.
package textdiff

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"github.com/src-d/treediff/internal/store"
)

// binarySniffLimit is the number of leading bytes scanned for a NUL byte
// when classifying content as binary.
const binarySniffLimit = 8000

// FileContent is a value's fully-read byte content plus its binary
// classification.
type FileContent struct {
	IsBinary bool
	Contents []byte
}

// ErrUnexpectedTree is returned when a file-diff renderer is handed a Tree
// value; a tree must never reach the content classifier.
var ErrUnexpectedTree = errors.New("textdiff: a Tree value cannot be content-classified")

// ClassifyContent reads a materialized tree value and returns its
// FileContent, or an error if reading failed.
func ClassifyContent(v store.TreeValue) (FileContent, error) {
	switch v.Kind {
	case store.Absent:
		return FileContent{IsBinary: false, Contents: nil}, nil

	case store.AccessDenied:
		msg := fmt.Sprintf("Access denied: %s", v.AccessErr)
		return FileContent{IsBinary: false, Contents: []byte(msg)}, nil

	case store.File:
		if v.Reader == nil {
			return FileContent{}, errors.New("textdiff: File value has no reader")
		}
		contents, err := v.Reader.ReadAll()
		if err != nil {
			return FileContent{}, errors.Wrap(err, "textdiff: reading file content")
		}
		return FileContent{IsBinary: isBinary(contents), Contents: contents}, nil

	case store.Symlink:
		return FileContent{IsBinary: false, Contents: v.SymlinkTarget}, nil

	case store.GitSubmodule:
		msg := fmt.Sprintf("Git submodule checked out at %s", v.ID.String())
		return FileContent{IsBinary: false, Contents: []byte(msg)}, nil

	case store.Conflict:
		// Open question (a): conflict blobs are unconditionally classified
		// non-binary, even if they happen to embed a NUL byte.
		return FileContent{IsBinary: false, Contents: v.ConflictContents}, nil

	case store.Tree:
		return FileContent{}, ErrUnexpectedTree

	default:
		return FileContent{}, errors.Errorf("textdiff: unknown value kind %d", v.Kind)
	}
}

// isBinary reports whether content contains a NUL byte within its first
// binarySniffLimit bytes. Content shorter than the limit is scanned in
// full.
func isBinary(content []byte) bool {
	n := len(content)
	if n > binarySniffLimit {
		n = binarySniffLimit
	}
	return bytes.IndexByte(content[:n], 0) >= 0
}
