package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, s TreeDiffStream) []TreeDiffEntry {
	t.Helper()
	var out []TreeDiffEntry
	for {
		e, ok, err := s.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func TestMemTreeDiffStreamAddRemoveModify(t *testing.T) {
	left := NewMemTree(map[Path]TreeValue{
		"a.txt": NewFile(HashContent([]byte("one")), false, BytesReader("one")),
		"b.txt": NewFile(HashContent([]byte("same")), false, BytesReader("same")),
	})
	right := NewMemTree(map[Path]TreeValue{
		"b.txt": NewFile(HashContent([]byte("same")), false, BytesReader("same")),
		"c.txt": NewFile(HashContent([]byte("new")), false, BytesReader("new")),
	})

	entries := collect(t, left.DiffStream(context.Background(), right, AllMatcher{}, nil))
	require.Len(t, entries, 3)

	byPath := make(map[Path]TreeDiffEntry)
	for _, e := range entries {
		byPath[e.TargetPath] = e
	}

	assert.Equal(t, Absent, byPath["a.txt"].Right.Kind)
	assert.Equal(t, File, byPath["a.txt"].Left.Kind)
	assert.Equal(t, File, byPath["b.txt"].Left.Kind)
	assert.Equal(t, File, byPath["b.txt"].Right.Kind)
	assert.Equal(t, Absent, byPath["c.txt"].Left.Kind)
	assert.Equal(t, File, byPath["c.txt"].Right.Kind)
}

func TestMemTreeDiffStreamFiltersByMatcher(t *testing.T) {
	left := NewMemTree(map[Path]TreeValue{
		"keep/a.txt": NewFile(HashContent([]byte("x")), false, BytesReader("x")),
		"drop/b.txt": NewFile(HashContent([]byte("y")), false, BytesReader("y")),
	})
	right := NewMemTree(nil)

	entries := collect(t, left.DiffStream(context.Background(), right, PrefixMatcher{Prefixes: []string{"keep/"}}, nil))
	require.Len(t, entries, 1)
	assert.Equal(t, Path("keep/a.txt"), entries[0].TargetPath)
}

func TestMemTreeDiffStreamAppliesCopyRenaming(t *testing.T) {
	left := NewMemTree(map[Path]TreeValue{
		"old.txt": NewFile(HashContent([]byte("body")), false, BytesReader("body")),
	})
	right := NewMemTree(map[Path]TreeValue{
		"new.txt": NewFile(HashContent([]byte("body")), false, BytesReader("body")),
	})
	copies := NewCopyRecords([]CopyRecord{{Source: "old.txt", Target: "new.txt"}})

	entries := collect(t, left.DiffStream(context.Background(), right, AllMatcher{}, copies))

	var renameEntry *TreeDiffEntry
	for i := range entries {
		if entries[i].TargetPath == "new.txt" {
			renameEntry = &entries[i]
		}
	}
	require.NotNil(t, renameEntry)
	assert.Equal(t, Path("old.txt"), renameEntry.SourcePath)
	assert.False(t, renameEntry.IsCopy, "source no longer exists in destination: this is a rename")
}

func TestMemTreeDiffStreamDetectsCopyWhenSourceSurvives(t *testing.T) {
	left := NewMemTree(map[Path]TreeValue{
		"old.txt": NewFile(HashContent([]byte("body")), false, BytesReader("body")),
	})
	right := NewMemTree(map[Path]TreeValue{
		"old.txt": NewFile(HashContent([]byte("body")), false, BytesReader("body")),
		"new.txt": NewFile(HashContent([]byte("body")), false, BytesReader("body")),
	})
	copies := NewCopyRecords([]CopyRecord{{Source: "old.txt", Target: "new.txt"}})

	entries := collect(t, left.DiffStream(context.Background(), right, AllMatcher{}, copies))

	var copyEntry *TreeDiffEntry
	for i := range entries {
		if entries[i].TargetPath == "new.txt" {
			copyEntry = &entries[i]
		}
	}
	require.NotNil(t, copyEntry)
	assert.True(t, copyEntry.IsCopy, "source still exists in destination: this is a copy")
}

func TestCopyRecordsSourcesRespectsMatcher(t *testing.T) {
	records := NewCopyRecords([]CopyRecord{
		{Source: "a.txt", Target: "a2.txt"},
		{Source: "b.txt", Target: "excluded/b2.txt"},
	})
	sources := records.Sources(PrefixMatcher{Prefixes: []string{"a2.txt"}})
	_, hasA := sources["a.txt"]
	_, hasB := sources["b.txt"]
	assert.True(t, hasA)
	assert.False(t, hasB)
}

func TestObjectIDShortAndZero(t *testing.T) {
	var zero ObjectID
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0000000000", zero.Short())

	id := HashContent([]byte("hello"))
	assert.False(t, id.IsZero())
	assert.Len(t, id.Short(), 10)
	assert.Equal(t, id.String()[:10], id.Short())
}

func TestTreeValueModeAndFileMode(t *testing.T) {
	exe := NewFile(HashContent([]byte("x")), true, BytesReader("x"))
	assert.Equal(t, "100755", exe.Mode())

	plain := NewFile(HashContent([]byte("x")), false, BytesReader("x"))
	assert.Equal(t, "100644", plain.Mode())

	link := NewSymlink(HashContent([]byte("target")), []byte("target"))
	assert.Equal(t, "120000", link.Mode())

	sub := NewGitSubmodule(HashContent([]byte("commit")))
	assert.Equal(t, "040000", sub.Mode())
}

func TestTreeValueLabelPanicsOnAbsent(t *testing.T) {
	assert.Panics(t, func() {
		NewAbsent().Label()
	})
}

func TestPrefixMatcher(t *testing.T) {
	m := PrefixMatcher{Prefixes: []string{"src/", "docs/"}}
	assert.True(t, m.Matches("src/main.go"))
	assert.True(t, m.Matches("docs/readme.md"))
	assert.False(t, m.Matches("other/file.txt"))

	assert.True(t, AllMatcher{}.Matches("anything"))
}
