package store

import (
	"context"
	"crypto/sha1"
	"sort"
)

// MemTree is an in-memory MergedTree, used by tests and by the CLI when
// driven directly off two directory snapshots rather than a real VCS
// backend. It computes the path-set union diff itself (simple add / modify
// / remove classification) — per design, anything beyond that (similarity-
// based rename detection) is out of scope and arrives via CopyRecords
// instead.
type MemTree struct {
	entries map[Path]TreeValue
}

// NewMemTree builds a MemTree from a path -> TreeValue map.
func NewMemTree(entries map[Path]TreeValue) *MemTree {
	cp := make(map[Path]TreeValue, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	return &MemTree{entries: cp}
}

// PathValue implements MergedTree.
func (t *MemTree) PathValue(p Path) TreeValue {
	if v, ok := t.entries[p]; ok {
		return v
	}
	return NewAbsent()
}

// DiffStream implements MergedTree by unioning both trees' path sets and
// classifying each path present/absent on either side, filtered by matcher.
func (t *MemTree) DiffStream(_ context.Context, other MergedTree, matcher Matcher, copies *CopyRecords) TreeDiffStream {
	o, _ := other.(*MemTree)

	seen := make(map[Path]struct{})
	var paths []Path
	for p := range t.entries {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	if o != nil {
		for p := range o.entries {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				paths = append(paths, p)
			}
		}
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	var entries []TreeDiffEntry
	for _, p := range paths {
		if matcher != nil && !matcher.Matches(p) {
			continue
		}
		left := t.PathValue(p)
		var right TreeValue
		if o != nil {
			right = o.PathValue(p)
		} else {
			right = NewAbsent()
		}
		if left.Kind == Absent && right.Kind == Absent {
			continue
		}
		entries = append(entries, TreeDiffEntry{SourcePath: p, TargetPath: p, Left: left, Right: right})
	}

	if copies != nil {
		entries = applyCopyRenaming(entries, copies, t, o)
	}

	return NewSliceStream(entries)
}

// applyCopyRenaming re-targets entries so that a copy record's target entry
// carries both the source and target path (matching the tree-diff stream's
// documented shape: source and target differ only on renames/copies), with
// its left value read from the source path in the source tree, leaving the
// implicit delete at the source path for the driver's own suppression logic
// to drop. It also records whether the source path still exists elsewhere
// in the destination tree, distinguishing a copy from a rename.
func applyCopyRenaming(entries []TreeDiffEntry, copies *CopyRecords, source, destination *MemTree) []TreeDiffEntry {
	out := make([]TreeDiffEntry, 0, len(entries))
	for _, e := range entries {
		if src, ok := copies.TargetOf(e.TargetPath); ok && e.Left.Kind == Absent {
			e.SourcePath = src
			e.Left = source.PathValue(src)
			if destination != nil {
				e.IsCopy = destination.PathValue(src).Kind != Absent
			}
		}
		out = append(out, e)
	}
	return out
}

// HashContent computes a deterministic ObjectID for in-memory test content,
// so MemTree-backed scenarios exercise real (if synthetic) object ids rather
// than always-zero hashes.
func HashContent(b []byte) ObjectID {
	sum := sha1.Sum(b)
	return NewObjectID(sum[:])
}
