package linediff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByLineAlternatesMatchingAndDifferent(t *testing.T) {
	left := []byte("a\nb\nc\n")
	right := []byte("a\nx\nc\n")
	hunks := ByLine(left, right, Options{})
	require := assert.New(t)
	require.True(len(hunks) >= 3)
	for i := 1; i < len(hunks); i++ {
		require.NotEqual(hunks[i-1].Kind, hunks[i].Kind, "hunks must alternate")
	}
}

func TestByLineNoChanges(t *testing.T) {
	content := []byte("same\ncontent\n")
	hunks := ByLine(content, content, Options{})
	require := assert.New(t)
	require.Len(hunks, 1)
	require.Equal(Matching, hunks[0].Kind)
}

func TestByLinePureInsertion(t *testing.T) {
	left := []byte("")
	right := []byte("hello\n")
	hunks := ByLine(left, right, Options{})
	require := assert.New(t)
	require.Len(hunks, 1)
	require.Equal(Different, hunks[0].Kind)
	require.Empty(hunks[0].Sides[0])
	require.Equal("hello\n", string(hunks[0].Sides[1]))
}

func TestByWordSplitsOnTokens(t *testing.T) {
	hunks := ByWord([]byte("the quick fox"), []byte("the slow fox"), Options{})
	require := assert.New(t)
	require.True(len(hunks) >= 3)
	var sawDifferent bool
	for _, h := range hunks {
		if h.Kind == Different {
			sawDifferent = true
		}
	}
	require.True(sawDifferent)
}

func TestPeekableHunksLookahead(t *testing.T) {
	p := NewPeekableHunks([]Hunk{
		{Kind: Matching, Sides: [][]byte{[]byte("a")}},
		{Kind: Different, Sides: [][]byte{[]byte("b"), []byte("c")}},
	})
	require := assert.New(t)

	peeked, ok := p.Peek()
	require.True(ok)
	require.Equal(Matching, peeked.Kind)

	next, ok := p.Next()
	require.True(ok)
	require.Equal(peeked, next)

	peeked, ok = p.Peek()
	require.True(ok)
	require.Equal(Different, peeked.Kind)

	require.True(p.HasNext())
	_, _ = p.Next()
	require.False(p.HasNext())

	_, ok = p.Next()
	require.False(ok)
}
