// Package store defines the external-collaborator types the tree-diff
// driver and renderers consume: materialized tree values, object ids,
// copy records and the diff-entry stream itself. Nothing in this package
// computes a diff; it only describes the shapes a backend hands in.
package store

import (
	"encoding/hex"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/filemode"
)

// Kind tags which variant of TreeValue is populated. Treediff uses a single
// flat struct with a Kind discriminant rather than an interface hierarchy,
// so renderers can exhaustively switch over it instead of type-asserting.
type Kind int

const (
	// Absent means the path does not exist on this side.
	Absent Kind = iota
	// File is a regular (or executable) file with one-shot byte content.
	File
	// Symlink holds the link target as its "content".
	Symlink
	// Conflict is a pre-materialized conflict marker blob.
	Conflict
	// GitSubmodule references a nested repository by commit id.
	GitSubmodule
	// Tree is a nested directory; a file-diff renderer must never see one.
	Tree
	// AccessDenied means reading the value failed with a retrievable error.
	AccessDenied
)

// ObjectID is a content-addressed object identifier: a 20-byte hash plus a
// flag recording whether it was set. It is its own type rather than go-git's
// plumbing.Hash, so a backend is not tied to go-git's hashing.
type ObjectID struct {
	hash [20]byte
	set  bool
}

// NewObjectID builds an ObjectID from raw bytes (up to 20).
func NewObjectID(b []byte) ObjectID {
	var id ObjectID
	copy(id.hash[:], b)
	id.set = true
	return id
}

// IsZero reports whether the id was never set (used for the "0000000000"
// dummy hash of absent/conflict sides in Git output).
func (id ObjectID) IsZero() bool { return !id.set }

// String returns the full lowercase hex encoding.
func (id ObjectID) String() string {
	if !id.set {
		return ""
	}
	return hex.EncodeToString(id.hash[:])
}

// Short returns the 10-character truncated lowercase hex form Git output
// uses for blob hashes, or the literal dummy hash for a zero id.
func (id ObjectID) Short() string {
	if !id.set {
		return "0000000000"
	}
	s := id.String()
	if len(s) < 10 {
		return s
	}
	return s[:10]
}

// Path is a repo-relative, slash-separated file path.
type Path string

// String implements fmt.Stringer for convenient formatting in error paths.
func (p Path) String() string { return string(p) }

// TreeValue is the materialized, tagged-union representation of a path's
// content on one side of a diff.
type TreeValue struct {
	Kind Kind

	ID         ObjectID
	Executable bool

	// Reader is a one-shot byte source for File values. Populated lazily by
	// the backend; nil for every other Kind.
	Reader ContentReader

	// SymlinkTarget holds the link text for Symlink values.
	SymlinkTarget []byte

	// ConflictContents holds the pre-materialized marker blob for Conflict
	// values.
	ConflictContents []byte

	// AccessErr holds the retrievable read error for AccessDenied values.
	AccessErr error
}

// ContentReader is a one-shot byte source for a File value's contents.
type ContentReader interface {
	ReadAll() ([]byte, error)
}

// BytesReader adapts an in-memory byte slice to ContentReader, for tests and
// for backends (like the directory-pair driver) that already hold content
// in memory.
type BytesReader []byte

// ReadAll implements ContentReader.
func (b BytesReader) ReadAll() ([]byte, error) { return []byte(b), nil }

// NewAbsent returns the Absent tree value.
func NewAbsent() TreeValue { return TreeValue{Kind: Absent} }

// NewFile returns a File tree value backed by the given reader.
func NewFile(id ObjectID, executable bool, r ContentReader) TreeValue {
	return TreeValue{Kind: File, ID: id, Executable: executable, Reader: r}
}

// NewSymlink returns a Symlink tree value with the given link target.
func NewSymlink(id ObjectID, target []byte) TreeValue {
	return TreeValue{Kind: Symlink, ID: id, SymlinkTarget: target}
}

// NewConflict returns a Conflict tree value with pre-materialized marker
// contents.
func NewConflict(id ObjectID, contents []byte, executable bool) TreeValue {
	return TreeValue{Kind: Conflict, ID: id, ConflictContents: contents, Executable: executable}
}

// NewGitSubmodule returns a GitSubmodule tree value referencing a commit id.
func NewGitSubmodule(id ObjectID) TreeValue { return TreeValue{Kind: GitSubmodule, ID: id} }

// NewTree returns a Tree tree value; file-diff renderers treat seeing one as
// a fatal invariant violation.
func NewTree(id ObjectID) TreeValue { return TreeValue{Kind: Tree, ID: id} }

// NewAccessDenied returns an AccessDenied tree value wrapping the read
// error.
func NewAccessDenied(err error) TreeValue { return TreeValue{Kind: AccessDenied, AccessErr: err} }

// Mode returns the Git file mode string for this value's Kind, per the
// mode/hash table used by the Git unified renderer.
func (v TreeValue) Mode() string {
	switch v.Kind {
	case File:
		if v.Executable {
			return "100755"
		}
		return "100644"
	case Symlink:
		return "120000"
	case GitSubmodule, Tree:
		return "040000"
	default:
		return "100644"
	}
}

// FileMode returns the go-git filemode.FileMode equivalent of Mode, for
// collaborators that need the typed form rather than the string.
func (v TreeValue) FileMode() filemode.FileMode {
	switch v.Kind {
	case File:
		if v.Executable {
			return filemode.Executable
		}
		return filemode.Regular
	case Symlink:
		return filemode.Symlink
	case GitSubmodule:
		return filemode.Submodule
	case Tree:
		return filemode.Dir
	default:
		return filemode.Regular
	}
}

// Label returns the human label of a value's kind, as used in color-words
// transition headers ("Added <label> <path>:"). Panics on Absent, since no
// caller should ever need the label of a side that doesn't exist.
func (v TreeValue) Label() string {
	switch v.Kind {
	case File:
		if v.Executable {
			return "executable file"
		}
		return "regular file"
	case Symlink:
		return "symlink"
	case GitSubmodule:
		return "Git submodule"
	case Conflict:
		return "conflict"
	case AccessDenied:
		return "access denied"
	case Absent:
		panic("store: Label called on Absent value")
	default:
		panic(fmt.Sprintf("store: Label called on unexpected kind %d", v.Kind))
	}
}
