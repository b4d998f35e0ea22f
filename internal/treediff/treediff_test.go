package treediff

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/src-d/treediff/internal/formatter"
	"github.com/src-d/treediff/internal/store"
)

func newRendererWithBuf() (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRenderer(formatter.NewPlain(&buf), nil), &buf
}

func TestShowSummaryAddRemoveModifyRename(t *testing.T) {
	r, buf := newRendererWithBuf()

	added := store.NewFile(store.HashContent([]byte("a")), false, store.BytesReader("a"))
	removed := store.NewFile(store.HashContent([]byte("b")), false, store.BytesReader("b"))
	modifiedOld := store.NewFile(store.HashContent([]byte("c1")), false, store.BytesReader("c1"))
	modifiedNew := store.NewFile(store.HashContent([]byte("c2")), false, store.BytesReader("c2"))
	renamedContent := store.NewFile(store.HashContent([]byte("d")), false, store.BytesReader("d"))

	entries := []store.TreeDiffEntry{
		{SourcePath: "new.txt", TargetPath: "new.txt", Left: store.NewAbsent(), Right: added},
		{SourcePath: "gone.txt", TargetPath: "gone.txt", Left: removed, Right: store.NewAbsent()},
		{SourcePath: "mod.txt", TargetPath: "mod.txt", Left: modifiedOld, Right: modifiedNew},
		{SourcePath: "old-name.txt", TargetPath: "new-name.txt", Left: renamedContent, Right: renamedContent, IsCopy: false},
	}

	err := r.showSummary(context.Background(), store.NewSliceStream(entries), nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "A new.txt\n")
	assert.Contains(t, out, "D gone.txt\n")
	assert.Contains(t, out, "M mod.txt\n")
	assert.Contains(t, out, "R old-name.txt => new-name.txt\n")
}

func TestShowSummarySuppressesCopySourceDeletion(t *testing.T) {
	r, buf := newRendererWithBuf()
	content := store.NewFile(store.HashContent([]byte("x")), false, store.BytesReader("x"))
	entries := []store.TreeDiffEntry{
		{SourcePath: "src.txt", TargetPath: "src.txt", Left: content, Right: store.NewAbsent()},
	}
	copySources := map[store.Path]struct{}{"src.txt": {}}

	err := r.showSummary(context.Background(), store.NewSliceStream(entries), copySources)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestShowTypesMatrix(t *testing.T) {
	r, buf := newRendererWithBuf()
	file := store.NewFile(store.HashContent([]byte("a")), false, store.BytesReader("a"))
	link := store.NewSymlink(store.HashContent([]byte("a")), []byte("a"))

	entries := []store.TreeDiffEntry{
		{SourcePath: "f.txt", TargetPath: "f.txt", Left: store.NewAbsent(), Right: file},
		{SourcePath: "l.txt", TargetPath: "l.txt", Left: file, Right: link},
	}
	err := r.showTypes(context.Background(), store.NewSliceStream(entries), nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "-F f.txt\n")
	assert.Contains(t, out, "FL l.txt\n")
}

func TestShowNamesFallsBackToSourcePath(t *testing.T) {
	r, buf := newRendererWithBuf()
	file := store.NewFile(store.HashContent([]byte("a")), false, store.BytesReader("a"))
	entries := []store.TreeDiffEntry{
		{SourcePath: "removed.txt", TargetPath: "", Left: file, Right: store.NewAbsent()},
		{SourcePath: "x.txt", TargetPath: "x.txt", Left: store.NewAbsent(), Right: file},
	}
	err := r.showNames(context.Background(), store.NewSliceStream(entries))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "removed.txt\n")
	assert.Contains(t, out, "x.txt\n")
}

func TestShowGitNewFileHeaderAndHunk(t *testing.T) {
	r, buf := newRendererWithBuf()
	right := store.NewFile(store.HashContent([]byte("hello\n")), false, store.BytesReader("hello\n"))
	entries := []store.TreeDiffEntry{
		{SourcePath: "new.txt", TargetPath: "new.txt", Left: store.NewAbsent(), Right: right},
	}
	err := r.showGit(context.Background(), store.NewSliceStream(entries), nil, DefaultContextSize)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "diff --git a/new.txt b/new.txt\n")
	assert.Contains(t, out, "new file mode 100644\n")
	assert.Contains(t, out, "@@ -0,0 +1,1 @@\n")
	assert.Contains(t, out, "+hello\n")
}

func TestShowGitPureRenameEmitsNoHunk(t *testing.T) {
	r, buf := newRendererWithBuf()
	content := store.NewFile(store.HashContent([]byte("same\n")), false, store.BytesReader("same\n"))
	entries := []store.TreeDiffEntry{
		{SourcePath: "old.txt", TargetPath: "new.txt", Left: content, Right: content, IsCopy: false},
	}
	err := r.showGit(context.Background(), store.NewSliceStream(entries), nil, DefaultContextSize)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "rename from old.txt\n")
	assert.Contains(t, out, "rename to new.txt\n")
	assert.NotContains(t, out, "@@")
	assert.NotContains(t, out, "index ")
}

func TestShowGitConflictSideUsesZeroedIndexHash(t *testing.T) {
	r, buf := newRendererWithBuf()
	conflict := store.NewConflict(store.HashContent([]byte("<<<<<<<\n")), []byte("<<<<<<<\n"), false)
	file := store.NewFile(store.HashContent([]byte("resolved\n")), false, store.BytesReader("resolved\n"))
	entries := []store.TreeDiffEntry{
		{SourcePath: "f.txt", TargetPath: "f.txt", Left: conflict, Right: file},
	}
	err := r.showGit(context.Background(), store.NewSliceStream(entries), nil, DefaultContextSize)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "index 0000000000..")
	assert.NotContains(t, out, conflict.ID.Short(), "a conflict side's real object id must never appear in an index line")
}

func TestShowGitSuppressesImplicitDeleteHalfOfRename(t *testing.T) {
	r, buf := newRendererWithBuf()
	content := store.NewFile(store.HashContent([]byte("same\n")), false, store.BytesReader("same\n"))
	entries := []store.TreeDiffEntry{
		{SourcePath: "old.txt", TargetPath: "old.txt", Left: content, Right: store.NewAbsent()},
	}
	copySources := map[store.Path]struct{}{"old.txt": {}}

	err := r.showGit(context.Background(), store.NewSliceStream(entries), copySources, DefaultContextSize)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestShowStatHistogramAndSummaryLine(t *testing.T) {
	r, buf := newRendererWithBuf()
	left := store.NewFile(store.HashContent([]byte("a\nb\nc\n")), false, store.BytesReader("a\nb\nc\n"))
	right := store.NewFile(store.HashContent([]byte("a\nx\nc\n")), false, store.BytesReader("a\nx\nc\n"))

	entries := []store.TreeDiffEntry{
		{SourcePath: "f.txt", TargetPath: "f.txt", Left: left, Right: right},
	}
	err := r.showStat(context.Background(), store.NewSliceStream(entries), nil, 80)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "f.txt")
	assert.Contains(t, out, "file changed")
}

func TestClassifyTransitions(t *testing.T) {
	file := store.NewFile(store.HashContent([]byte("a")), false, store.BytesReader("a"))
	other := store.NewFile(store.HashContent([]byte("b")), false, store.BytesReader("b"))

	assert.Equal(t, transitionAdded, classify(store.NewAbsent(), file))
	assert.Equal(t, transitionRemoved, classify(file, store.NewAbsent()))
	assert.Equal(t, transitionModified, classify(file, other))
}

func TestShowColorWordsAddedHeaderAndContent(t *testing.T) {
	r, buf := newRendererWithBuf()
	right := store.NewFile(store.HashContent([]byte("hello\n")), false, store.BytesReader("hello\n"))
	entries := []store.TreeDiffEntry{
		{SourcePath: "new.txt", TargetPath: "new.txt", Left: store.NewAbsent(), Right: right},
	}
	err := r.showColorWords(context.Background(), store.NewSliceStream(entries), DefaultContextSize)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Added regular file new.txt:\n")
	assert.Contains(t, out, "hello")
}

func TestShowColorWordsExecutableBitChange(t *testing.T) {
	r, buf := newRendererWithBuf()
	left := store.NewFile(store.HashContent([]byte("x")), false, store.BytesReader("x"))
	right := store.NewFile(store.HashContent([]byte("x")), true, store.BytesReader("x"))
	entries := []store.TreeDiffEntry{
		{SourcePath: "run.sh", TargetPath: "run.sh", Left: left, Right: right},
	}
	err := r.showColorWords(context.Background(), store.NewSliceStream(entries), DefaultContextSize)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Executable bit set: run.sh:\n")
}

func TestParseDiffFormatRejectsTool(t *testing.T) {
	_, ok := ParseDiffFormat("tool", 3)
	assert.False(t, ok)

	f, ok := ParseDiffFormat("git", 5)
	require.True(t, ok)
	assert.Equal(t, Git, f.Kind)
	assert.Equal(t, 5, f.Context)
}
