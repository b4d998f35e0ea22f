package textdiff

import "github.com/src-d/treediff/internal/formatter"

// CompressContext prints at most numAfter lines from the start of a
// matching block, then — if more than numAfter+numBefore lines remain — an
// ellipsis, then the last numBefore lines. It returns whether an ellipsis
// was emitted; the cursor is advanced in place.
//
// Call-site rule (§4.3): for the first matching block in a file,
// numAfter=0, numBefore=N; for middle blocks, numAfter=numBefore=N; for the
// last block, numAfter=N, numBefore=0.
func CompressContext(f formatter.Formatter, cursor *LineNumberCursor, matchingBytes []byte, numAfter, numBefore int) bool {
	lines := splitLines(matchingBytes)
	return compressContextLines(f, cursor, lines, numAfter, numBefore)
}

func compressContextLines(f formatter.Formatter, cursor *LineNumberCursor, lines [][]byte, numAfter, numBefore int) bool {
	emitContextLine := func(content []byte) {
		f.WithLabel("context", func(inner formatter.Formatter) error {
			WriteDiffLine(inner, DiffLine{
				LeftNo: cursor.Left, RightNo: cursor.Right,
				HasLeft: true, HasRight: true,
				Tokens: []SideToken{{Side: SideBoth, Bytes: content}},
			})
			return nil
		})
		cursor.Left++
		cursor.Right++
	}

	if len(lines) <= numAfter+numBefore {
		for _, l := range lines {
			emitContextLine(l)
		}
		return false
	}

	for i := 0; i < numAfter; i++ {
		emitContextLine(lines[i])
	}

	// hiddenLines is the number of matching lines that never get an
	// explicit per-line cursor increment because the ellipsis collapses
	// them into one logical jump (§8 boundary scenario 6: a 20-line block
	// with 3/3 printed jumps the cursor by 14, not 15).
	hiddenLines := len(lines) - numAfter - numBefore
	f.WithLabel("context", func(inner formatter.Formatter) error {
		inner.WriteBytes([]byte("    ...\n"))
		return nil
	})
	cursor.Left += uint32(hiddenLines)
	cursor.Right += uint32(hiddenLines)

	for i := len(lines) - numBefore; i < len(lines); i++ {
		emitContextLine(lines[i])
	}
	return true
}
