package treediff

import (
	"bytes"
	"context"
	"fmt"
	"math"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/src-d/treediff/internal/linediff"
	"github.com/src-d/treediff/internal/store"
	"github.com/src-d/treediff/internal/textdiff"
)

type statRow struct {
	path       string
	added      int
	removed    int
	isDeletion bool
}

// showStat implements §4.7: a stat histogram scaled to the available
// display width, followed by a pluralized summary line.
func (r *Renderer) showStat(ctx context.Context, stream store.TreeDiffStream, copySources map[store.Path]struct{}, displayWidth int) error {
	var rows []statRow
	maxPathWidth := 0
	maxDiffs := 0

	for {
		entry, ok, err := r.nextEntry(ctx, stream, false)
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		path := entry.TargetPath
		isDeletion := entry.Right.Kind == store.Absent
		if isDeletion {
			path = entry.SourcePath
			if isCopySource(path, copySources) {
				continue
			}
		}

		added, removed, err := diffLineCounts(entry)
		if err != nil {
			return err
		}

		row := statRow{path: string(path), added: added, removed: removed, isDeletion: isDeletion}
		rows = append(rows, row)

		width := runewidth.StringWidth(row.path)
		if width > maxPathWidth {
			maxPathWidth = width
		}
		if total := added + removed; total > maxDiffs {
			maxDiffs = total
		}
	}

	numberPadding := len(fmt.Sprintf("%d", maxDiffs))
	availableWidth := displayWidth - 4 - len(" | ") - numberPadding
	if availableWidth < 5 {
		availableWidth = 5
	}
	pathWidth := clampInt(maxPathWidth, 3, int(0.7*float64(availableWidth)))
	barMaxLength := availableWidth - pathWidth
	if barMaxLength < 1 {
		barMaxLength = 1
	}

	factor := 1.0
	if maxDiffs > 0 && barMaxLength < maxDiffs {
		factor = float64(barMaxLength) / float64(maxDiffs)
	}

	totalFiles, totalAdded, totalRemoved := 0, 0, 0
	for _, row := range rows {
		totalFiles++
		totalAdded += row.added
		totalRemoved += row.removed

		line := formatStatRow(row, pathWidth, numberPadding, factor)
		if _, err := r.Formatter.Labeled("stat-summary").Write([]byte(line)); err != nil {
			return newIoError(row.path, err)
		}
	}

	summary := fmt.Sprintf("%d file%s changed, %d insertion%s(+), %d deletion%s(−)\n",
		totalFiles, plural(totalFiles), totalAdded, plural(totalAdded), totalRemoved, plural(totalRemoved))
	if _, err := r.Formatter.Labeled("stat-summary").Write([]byte(summary)); err != nil {
		return newIoError("", err)
	}
	return nil
}

func formatStatRow(row statRow, pathWidth, numberPadding int, factor float64) string {
	displayPath := elidePath(row.path, pathWidth)
	total := row.added + row.removed

	addedBar := scaledBarLength(row.added, factor)
	removedBar := scaledBarLength(row.removed, factor)

	return fmt.Sprintf("%-*s | %*d %s%s\n",
		pathWidth, displayPath, numberPadding, total,
		repeat('+', addedBar), repeat('-', removedBar))
}

func scaledBarLength(count int, factor float64) int {
	if count == 0 {
		return 0
	}
	n := int(math.Round(float64(count) * factor))
	if n < 1 {
		n = 1
	}
	return n
}

func repeat(c byte, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}

func elidePath(path string, width int) string {
	if runewidth.StringWidth(path) <= width || width <= 3 {
		return path
	}
	r := []rune(path)
	// Elide from the start, keeping the tail that fits alongside the "..."
	// prefix (§4.7: "paths longer than path_width are elided from the start
	// with a ... prefix").
	for keep := len(r); keep > 0; keep-- {
		candidate := "..." + string(r[len(r)-keep:])
		if runewidth.StringWidth(candidate) <= width {
			return candidate
		}
	}
	return "..." + string(r[len(r)-1:])
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// diffLineCounts counts the lines contributed by Different hunks between
// the two sides of an entry, per §4.6 step 9 ("added/removed counted as
// lines inside Different hunks").
func diffLineCounts(entry store.TreeDiffEntry) (added, removed int, err error) {
	if entry.Left.Kind == store.Tree || entry.Right.Kind == store.Tree {
		return 0, 0, nil
	}
	leftContent, err := textdiff.ClassifyContent(entry.Left)
	if err != nil {
		return 0, 0, newBackendError(string(entry.SourcePath), err)
	}
	rightContent, err := textdiff.ClassifyContent(entry.Right)
	if err != nil {
		return 0, 0, newBackendError(string(entry.TargetPath), err)
	}
	if leftContent.IsBinary || rightContent.IsBinary {
		return 0, 0, nil
	}
	for _, h := range linediff.ByLine(leftContent.Contents, rightContent.Contents, linediff.Options{}) {
		if h.Kind != linediff.Different {
			continue
		}
		removed += countLines(h.Sides[0])
		added += countLines(h.Sides[1])
	}
	return added, removed, nil
}

func countLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	n := bytes.Count(content, []byte("\n"))
	if content[len(content)-1] != '\n' {
		n++
	}
	return n
}
