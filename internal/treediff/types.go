package treediff

import (
	"context"

	"github.com/src-d/treediff/internal/store"
)

// showTypes implements §4.6 step 7: `<lchar><rchar> <path>`, suppressing
// entries whose target is absent and whose source is a copy-source.
func (r *Renderer) showTypes(ctx context.Context, stream store.TreeDiffStream, copySources map[store.Path]struct{}) error {
	for {
		entry, ok, err := r.nextEntry(ctx, stream, false)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if entry.Right.Kind == store.Absent && isCopySource(entry.SourcePath, copySources) {
			continue
		}

		path := entry.TargetPath
		if path == "" {
			path = entry.SourcePath
		}
		line := string(typeChar(entry.Left)) + string(typeChar(entry.Right)) + " " + string(path) + "\n"
		if _, err := r.Formatter.Labeled("modified").Write([]byte(line)); err != nil {
			return newIoError(string(path), err)
		}
	}
}
