package store

import "context"

// TreeDiffEntry is one entry of an asynchronous tree-diff stream: a path
// pair (equal except on renames/copies) and the materialized values on each
// side, or an error reading either side.
type TreeDiffEntry struct {
	SourcePath Path
	TargetPath Path
	Left       TreeValue
	Right      TreeValue
	Err        error

	// IsCopy distinguishes a copy from a rename when SourcePath != TargetPath:
	// true if the destination tree still contains the source path (a copy),
	// false if it does not (a rename, per §4.6 step 6). Meaningless when
	// SourcePath == TargetPath.
	IsCopy bool
}

// TreeDiffStream is a pull iterator over TreeDiffEntry values, matching
// design note "asynchronous stream, synchronous renderer": the only
// suspension point is asking for the next entry, never mid-render.
type TreeDiffStream interface {
	// Next returns the next entry. ok is false once the stream is
	// exhausted; err aborts iteration immediately.
	Next(ctx context.Context) (entry TreeDiffEntry, ok bool, err error)
}

// MergedTree is a pair of tree snapshots capable of producing a diff
// stream against another MergedTree, filtered by a path matcher.
type MergedTree interface {
	PathValue(p Path) TreeValue
	DiffStream(ctx context.Context, other MergedTree, matcher Matcher, copies *CopyRecords) TreeDiffStream
}

// SliceStream adapts a pre-built slice of entries to TreeDiffStream, for
// tests and for callers (rename/copy scenarios) that construct entries by
// hand rather than deriving them from two trees.
type SliceStream struct {
	entries []TreeDiffEntry
	pos     int
}

// NewSliceStream wraps entries as a TreeDiffStream.
func NewSliceStream(entries []TreeDiffEntry) *SliceStream {
	return &SliceStream{entries: entries}
}

// Next implements TreeDiffStream.
func (s *SliceStream) Next(ctx context.Context) (TreeDiffEntry, bool, error) {
	if err := ctx.Err(); err != nil {
		return TreeDiffEntry{}, false, err
	}
	if s.pos >= len(s.entries) {
		return TreeDiffEntry{}, false, nil
	}
	e := s.entries[s.pos]
	s.pos++
	return e, true, nil
}
