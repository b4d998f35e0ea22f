package treediff

import (
	"context"

	"github.com/src-d/treediff/internal/formatter"
	"github.com/src-d/treediff/internal/store"
)

// showSummary implements §4.6 step 6: one `M|A|D|R|C <path>` line per
// entry; a Removed entry whose source is a copy-source is suppressed
// (its deletion is implicit in the rename/copy pairing).
func (r *Renderer) showSummary(ctx context.Context, stream store.TreeDiffStream, copySources map[store.Path]struct{}) error {
	for {
		entry, ok, err := r.nextEntry(ctx, stream, false)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if entry.SourcePath != entry.TargetPath {
			code := byte('R')
			if entry.IsCopy {
				code = 'C'
			}
			if err := r.writeSummaryLine(code, string(entry.SourcePath)+" => "+string(entry.TargetPath)); err != nil {
				return newIoError(string(entry.TargetPath), err)
			}
			continue
		}

		switch classify(entry.Left, entry.Right) {
		case transitionAdded:
			if err := r.writeSummaryLine('A', string(entry.TargetPath)); err != nil {
				return newIoError(string(entry.TargetPath), err)
			}
		case transitionRemoved:
			if isCopySource(entry.SourcePath, copySources) {
				continue
			}
			if err := r.writeSummaryLine('D', string(entry.SourcePath)); err != nil {
				return newIoError(string(entry.SourcePath), err)
			}
		case transitionModified:
			if err := r.writeSummaryLine('M', string(entry.TargetPath)); err != nil {
				return newIoError(string(entry.TargetPath), err)
			}
		}
	}
}

func (r *Renderer) writeSummaryLine(code byte, rest string) error {
	return r.Formatter.WithLabel("modified", func(f formatter.Formatter) error {
		_, err := f.WriteBytes([]byte(string(code) + " " + rest + "\n"))
		return err
	})
}
