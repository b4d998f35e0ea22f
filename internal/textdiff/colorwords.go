package textdiff

import (
	"bytes"

	"github.com/src-d/treediff/internal/formatter"
	"github.com/src-d/treediff/internal/linediff"
)

// RenderColorWords renders the full color-words hunk sequence for a pair of
// file contents: alternating context-compressed matching blocks and
// inline-tokenized different blocks, followed by end-of-file newline
// handling.
func RenderColorWords(f formatter.Formatter, left, right []byte, contextSize int, opts linediff.Options) {
	hunks := linediff.ByLine(left, right, opts)
	peek := linediff.NewPeekableHunks(hunks)
	cursor := NewLineNumberCursor()

	lastEllipsis := false
	rendered := false
	index := 0
	for {
		h, ok := peek.Next()
		if !ok {
			break
		}
		isFirstHunk := index == 0
		isLastHunk := !peek.HasNext()
		index++

		switch h.Kind {
		case linediff.Matching:
			if isFirstHunk && isLastHunk {
				// The whole content is one matching block: no Different
				// hunk exists anywhere, so nothing is emitted at all (§8:
				// "no Different hunks" implies no non-header output). This
				// is also the last hunk, so the cursor is never read again.
				continue
			}
			numAfter, numBefore := contextSize, contextSize
			if isFirstHunk {
				numAfter = 0
			}
			if isLastHunk {
				numBefore = 0
			}
			lastEllipsis = CompressContext(f, &cursor, h.Sides[0], numAfter, numBefore)
			rendered = true

		case linediff.Different:
			renderDifferentLines(f, &cursor, h.Sides[0], h.Sides[1], opts)
			lastEllipsis = false
			rendered = true
		}
	}

	if rendered && !lastEllipsis && (len(left) > 0 || len(right) > 0) &&
		!bytes.HasSuffix(left, []byte("\n")) && !bytes.HasSuffix(right, []byte("\n")) {
		f.WriteBytes([]byte("\n"))
	}
}

func renderDifferentLines(f formatter.Formatter, cursor *LineNumberCursor, left, right []byte, opts linediff.Options) {
	for _, line := range Tokenize(left, right, opts) {
		var leftNo, rightNo uint32
		if line.HasLeft {
			leftNo = cursor.Left
			cursor.Left++
		}
		if line.HasRight {
			rightNo = cursor.Right
			cursor.Right++
		}
		WriteDiffLine(f, DiffLine{
			LeftNo: leftNo, RightNo: rightNo,
			HasLeft: line.HasLeft, HasRight: line.HasRight,
			Tokens: line.Tokens,
		})
	}
}
