package treediff

import (
	"context"

	"github.com/src-d/treediff/internal/store"
)

// showNames implements §4.6 step 8: the right path only, one per line.
func (r *Renderer) showNames(ctx context.Context, stream store.TreeDiffStream) error {
	for {
		entry, ok, err := r.nextEntry(ctx, stream, false)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		path := entry.TargetPath
		if path == "" {
			path = entry.SourcePath
		}
		if _, err := r.Formatter.WriteBytes([]byte(string(path) + "\n")); err != nil {
			return newIoError(string(path), err)
		}
	}
}
