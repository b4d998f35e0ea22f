package textdiff

import (
	"bytes"
	"fmt"

	"github.com/src-d/treediff/internal/formatter"
	"github.com/src-d/treediff/internal/linediff"
)

// LineKind tags a unified-hunk line as context, removed, or added.
type LineKind int

const (
	// Context is a line identical on both sides, shown for readability.
	Context LineKind = iota
	// Removed is a line present only on the left side.
	Removed
	// Added is a line present only on the right side.
	Added
)

// UnifiedLine is one line of a unified hunk: its kind, its word-level
// tokens (Matching -> raw bytes; Different -> a "token"-labeled run), and
// whether it is the file's final line with no trailing newline.
type UnifiedLine struct {
	Kind           LineKind
	Tokens         []uToken
	NoNewlineAtEOF bool
}

// uToken is one word-diff-level run within a single unified-hunk line.
type uToken struct {
	Different bool
	Bytes     []byte
}

// Range is a half-open [Start, Start+Len) line range, 1-based.
type Range struct {
	Start uint32
	Len   uint32
}

// UnifiedHunk is a contiguous region of unified-diff output: a line range
// on each side and the interleaved context/removed/added lines between
// them. Non-empty on emission by construction.
type UnifiedHunk struct {
	LeftRange  Range
	RightRange Range
	Lines      []UnifiedLine
}

type unifiedBuilder struct {
	cursor LineNumberCursor
	hunks  []UnifiedHunk
	cur    *UnifiedHunk
}

func (b *unifiedBuilder) openHunk() {
	if b.cur == nil {
		b.cur = &UnifiedHunk{
			LeftRange:  Range{Start: b.cursor.Left},
			RightRange: Range{Start: b.cursor.Right},
		}
	}
}

func (b *unifiedBuilder) flush() {
	if b.cur != nil && len(b.cur.Lines) > 0 {
		h := *b.cur
		// Git's unified-diff convention reports a zero-length range's start
		// as the line before it (0 at the very start of a file), not the
		// position the next line would occupy.
		if h.LeftRange.Len == 0 && h.LeftRange.Start > 0 {
			h.LeftRange.Start--
		}
		if h.RightRange.Len == 0 && h.RightRange.Start > 0 {
			h.RightRange.Start--
		}
		b.hunks = append(b.hunks, h)
	}
	b.cur = nil
}

func (b *unifiedBuilder) appendContext(line []byte) {
	b.openHunk()
	b.cur.Lines = append(b.cur.Lines, UnifiedLine{
		Kind:           Context,
		Tokens:         []uToken{{Bytes: line}},
		NoNewlineAtEOF: !bytes.HasSuffix(line, []byte("\n")),
	})
	b.cur.LeftRange.Len++
	b.cur.RightRange.Len++
	b.cursor.Left++
	b.cursor.Right++
}

func (b *unifiedBuilder) skip() {
	b.cursor.Left++
	b.cursor.Right++
}

// BuildUnifiedHunks groups the line-level diff between left and right into
// Git-unified-style hunks with up to contextSize lines of surrounding
// context, per §4.5's greedy hunk-grouping algorithm.
func BuildUnifiedHunks(left, right []byte, contextSize int, opts linediff.Options) []UnifiedHunk {
	lineHunks := linediff.ByLine(left, right, opts)
	peek := linediff.NewPeekableHunks(lineHunks)

	b := &unifiedBuilder{cursor: NewLineNumberCursor()}

	for {
		h, ok := peek.Next()
		if !ok {
			break
		}

		switch h.Kind {
		case linediff.Matching:
			// Mirrors jj's take(N) front / rev().take(N) back / count()
			// middle structure: only split into two hunks when more than
			// 2N lines separate them (spec §4.5). A shorter gap is cheaper
			// to show in full than to elide, so it stays as context in a
			// single hunk.
			ml := splitLines(h.Sides[0])
			hasPrev := b.cur != nil
			hasNext := peek.HasNext()

			frontTake := 0
			if hasPrev {
				frontTake = minInt(contextSize, len(ml))
			}
			backTake := 0
			if hasNext {
				backTake = minInt(contextSize, len(ml)-frontTake)
			}
			numSkip := len(ml) - frontTake - backTake

			if numSkip <= 0 {
				for _, line := range ml {
					b.appendContext(line)
				}
				continue
			}

			for i := 0; i < frontTake; i++ {
				b.appendContext(ml[i])
			}
			if hasPrev {
				b.flush()
			}
			for i := 0; i < numSkip; i++ {
				b.skip()
			}
			for i := frontTake + numSkip; i < len(ml); i++ {
				b.appendContext(ml[i])
			}

		case linediff.Different:
			b.openHunk()
			wordHunks := linediff.ByWord(h.Sides[0], h.Sides[1], opts)
			for _, ln := range buildSideLines(wordHunks, 0) {
				b.cur.Lines = append(b.cur.Lines, UnifiedLine{Kind: Removed, Tokens: ln.tokens, NoNewlineAtEOF: ln.noNewline})
				b.cur.LeftRange.Len++
				b.cursor.Left++
			}
			for _, ln := range buildSideLines(wordHunks, 1) {
				b.cur.Lines = append(b.cur.Lines, UnifiedLine{Kind: Added, Tokens: ln.tokens, NoNewlineAtEOF: ln.noNewline})
				b.cur.RightRange.Len++
				b.cursor.Right++
			}
		}
	}
	b.flush()
	return b.hunks
}

type sideLine struct {
	tokens    []uToken
	noNewline bool
}

// buildSideLines reconstructs one side's per-line token vectors from a
// word-diff hunk sequence: matching tokens contribute raw bytes, different
// tokens contribute only this side's bytes, and a '\n'-terminated fragment
// flushes the current line.
func buildSideLines(hunks []linediff.Hunk, sideIndex int) []sideLine {
	var lines []sideLine
	var cur []uToken

	flush := func() {
		if len(cur) == 0 {
			return
		}
		last := cur[len(cur)-1]
		lines = append(lines, sideLine{tokens: cur, noNewline: !bytes.HasSuffix(last.Bytes, []byte("\n"))})
		cur = nil
	}

	appendBytes := func(different bool, data []byte) {
		start := 0
		for i := 0; i < len(data); i++ {
			if data[i] == '\n' {
				cur = append(cur, uToken{Different: different, Bytes: data[start : i+1]})
				flush()
				start = i + 1
			}
		}
		if start < len(data) {
			cur = append(cur, uToken{Different: different, Bytes: data[start:]})
		}
	}

	for _, h := range hunks {
		switch h.Kind {
		case linediff.Matching:
			if len(h.Sides[0]) > 0 {
				appendBytes(false, h.Sides[0])
			}
		case linediff.Different:
			if len(h.Sides[sideIndex]) > 0 {
				appendBytes(true, h.Sides[sideIndex])
			}
		}
	}
	flush()
	return lines
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// WriteUnifiedHunks emits hunk headers, sigil-prefixed lines, and
// "No newline at end of file" footers for a built hunk sequence.
func WriteUnifiedHunks(f formatter.Formatter, hunks []UnifiedHunk) {
	for _, h := range hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@\n", h.LeftRange.Start, h.LeftRange.Len, h.RightRange.Start, h.RightRange.Len)
		f.Labeled("hunk_header").Write([]byte(header))
		for _, line := range h.Lines {
			writeUnifiedLine(f, line)
		}
	}
}

func writeUnifiedLine(f formatter.Formatter, line UnifiedLine) {
	var sigil, label string
	switch line.Kind {
	case Context:
		sigil, label = " ", "context"
	case Removed:
		sigil, label = "-", "removed"
	case Added:
		sigil, label = "+", "added"
	}
	f.WithLabel(label, func(inner formatter.Formatter) error {
		inner.WriteBytes([]byte(sigil))
		for _, tok := range line.Tokens {
			if tok.Different {
				inner.WithLabel("token", func(t formatter.Formatter) error {
					t.WriteBytes(tok.Bytes)
					return nil
				})
			} else {
				inner.WriteBytes(tok.Bytes)
			}
		}
		return nil
	})
	if line.NoNewlineAtEOF {
		f.WriteBytes([]byte("\n\\ No newline at end of file\n"))
	}
}
