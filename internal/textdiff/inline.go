package textdiff

import "github.com/src-d/treediff/internal/linediff"

// TokenLine is one line's worth of tagged tokens produced by the inline
// tokenizer, before line numbers are assigned. HasLeft/HasRight record
// whether the line carries content on that side at all (a line with only
// Right tokens, e.g. a pure insertion, has no left line number).
type TokenLine struct {
	HasLeft  bool
	HasRight bool
	Tokens   []SideToken
}

// Tokenize runs the word differ on left/right and regroups the resulting
// tokens into per-line vectors, preserving line breaks. A diff-line has a
// left line-number iff it contains any Both or Left token, and a right
// line-number iff it contains any Both or Right token (§4.4).
func Tokenize(left, right []byte, opts linediff.Options) []TokenLine {
	hunks := linediff.ByWord(left, right, opts)

	var raw []SideToken
	for _, h := range hunks {
		switch h.Kind {
		case linediff.Matching:
			if len(h.Sides[0]) > 0 {
				raw = append(raw, SideToken{Side: SideBoth, Bytes: h.Sides[0]})
			}
		case linediff.Different:
			if len(h.Sides[0]) > 0 {
				raw = append(raw, SideToken{Side: SideLeft, Bytes: h.Sides[0]})
			}
			if len(h.Sides[1]) > 0 {
				raw = append(raw, SideToken{Side: SideRight, Bytes: h.Sides[1]})
			}
		}
	}
	return groupTokensIntoLines(raw)
}

// groupTokensIntoLines splits each token's bytes on '\n': a newline-
// terminated fragment flushes the current line; fragments never split
// mid-token otherwise, so a token identical on both sides still contributes
// a single Both entry to as many lines as it spans.
func groupTokensIntoLines(raw []SideToken) []TokenLine {
	var lines []TokenLine
	var cur TokenLine

	flush := func() {
		if len(cur.Tokens) > 0 {
			lines = append(lines, cur)
		}
		cur = TokenLine{}
	}

	for _, tok := range raw {
		start := 0
		for i := 0; i < len(tok.Bytes); i++ {
			if tok.Bytes[i] == '\n' {
				frag := tok.Bytes[start : i+1]
				appendFragment(&cur, tok.Side, frag)
				flush()
				start = i + 1
			}
		}
		if start < len(tok.Bytes) {
			appendFragment(&cur, tok.Side, tok.Bytes[start:])
		}
	}
	flush()
	return lines
}

func appendFragment(line *TokenLine, side Side, frag []byte) {
	line.Tokens = append(line.Tokens, SideToken{Side: side, Bytes: frag})
	switch side {
	case SideBoth:
		line.HasLeft, line.HasRight = true, true
	case SideLeft:
		line.HasLeft = true
	case SideRight:
		line.HasRight = true
	}
}
