package textdiff

import (
	"fmt"

	"github.com/src-d/treediff/internal/formatter"
)

// Side tags which side of a diff-line token a byte run came from.
type Side int

const (
	// SideBoth marks bytes identical on both sides (an untagged token).
	SideBoth Side = iota
	// SideLeft marks bytes present only on the left (removed) side.
	SideLeft
	// SideRight marks bytes present only on the right (added) side.
	SideRight
)

// SideToken is one byte run tagged with which side(s) it belongs to.
type SideToken struct {
	Side  Side
	Bytes []byte
}

// LineNumberCursor tracks the running left/right line numbers for
// color-words output. Starts at {1, 1}; monotonically non-decreasing.
type LineNumberCursor struct {
	Left  uint32
	Right uint32
}

// NewLineNumberCursor returns a cursor starting at {1, 1}.
func NewLineNumberCursor() LineNumberCursor {
	return LineNumberCursor{Left: 1, Right: 1}
}

// DiffLine is one line of color-words output: a pair of line numbers (each
// optional) and the sequence of tokens making up its content.
type DiffLine struct {
	LeftNo, RightNo   uint32
	HasLeft, HasRight bool
	Tokens            []SideToken
}

// writeLineNumberColumn writes a 4-char right-aligned line number, or four
// spaces if the line has no number on this side.
func writeLineNumberColumn(f formatter.Formatter, n uint32, has bool) {
	if has {
		f.Labeled("line_number").Write([]byte(fmt.Sprintf("%4d", n)))
	} else {
		f.Labeled("line_number").Write([]byte("    "))
	}
}

// WriteDiffLine renders one DiffLine in the layout:
//
//	<left col> <right col>: <tokens>
func WriteDiffLine(f formatter.Formatter, line DiffLine) {
	writeLineNumberColumn(f, line.LeftNo, line.HasLeft)
	f.WriteBytes([]byte(" "))
	writeLineNumberColumn(f, line.RightNo, line.HasRight)
	f.WriteBytes([]byte(": "))
	for _, tok := range line.Tokens {
		writeToken(f, tok)
	}
}

func writeToken(f formatter.Formatter, tok SideToken) {
	switch tok.Side {
	case SideBoth:
		f.WriteBytes(tok.Bytes)
	case SideLeft:
		f.WithLabel("token", func(inner formatter.Formatter) error {
			inner.Labeled("removed").Write(tok.Bytes)
			return nil
		})
	case SideRight:
		f.WithLabel("token", func(inner formatter.Formatter) error {
			inner.Labeled("added").Write(tok.Bytes)
			return nil
		})
	}
}

// splitLines splits content into lines, keeping the trailing '\n' attached
// to each line except a final unterminated line. Used by both the context
// compressor (over Matching hunk bytes) and the inline tokenizer (over a
// word-diff token's bytes, which may itself span or end at a newline).
func splitLines(content []byte) [][]byte {
	if len(content) == 0 {
		return nil
	}
	var lines [][]byte
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i+1])
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}
