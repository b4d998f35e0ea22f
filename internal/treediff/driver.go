package treediff

import (
	"context"

	"github.com/src-d/treediff/internal/core"
	"github.com/src-d/treediff/internal/formatter"
	"github.com/src-d/treediff/internal/store"
)

// Renderer drives a tree diff through one or more requested formats. It
// holds no state between Render calls beyond its logger and formatter, per
// §5's single-threaded, cooperative concurrency model.
type Renderer struct {
	Formatter formatter.Formatter
	Logger    core.Logger
}

// NewRenderer builds a Renderer. A nil logger falls back to core.NewLogger.
func NewRenderer(f formatter.Formatter, logger core.Logger) *Renderer {
	if logger == nil {
		logger = core.NewLogger()
	}
	return &Renderer{Formatter: f, Logger: logger}
}

// Render drives from/to through each requested format in order, obtaining a
// fresh diff stream per format (§2: "for each format the driver re-obtains
// a fresh diff stream"), and concatenating their output in the order
// listed. Width is the output column width used by the stat renderer.
func (r *Renderer) Render(ctx context.Context, from, to store.MergedTree, matcher store.Matcher, copies *store.CopyRecords, width int, formats []DiffFormat) error {
	copySources := copies.Sources(matcher)

	for _, f := range formats {
		stream := from.DiffStream(ctx, to, matcher, copies)
		if err := r.renderOne(ctx, f, stream, copySources, width); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderOne(ctx context.Context, f DiffFormat, stream store.TreeDiffStream, copySources map[store.Path]struct{}, width int) error {
	switch f.Kind {
	case Summary:
		return r.showSummary(ctx, stream, copySources)
	case Types:
		return r.showTypes(ctx, stream, copySources)
	case NameOnly:
		return r.showNames(ctx, stream)
	case Stat:
		return r.showStat(ctx, stream, copySources, width)
	case Git:
		return r.showGit(ctx, stream, copySources, f.contextOrDefault())
	case ColorWords:
		return r.showColorWords(ctx, stream, f.contextOrDefault())
	case Tool:
		return r.showTool(ctx, stream, copySources, f.ToolConfig)
	default:
		return nil
	}
}

// nextEntry advances the stream and handles the two shared early-exits
// every per-format loop needs: stream errors and AccessDenied sides. It
// returns ok=false once the stream is exhausted. An entry with an
// AccessDenied side is returned as an error when hardAccessDenied is set;
// otherwise it is reported inline here and skipped, and the next entry is
// read.
func (r *Renderer) nextEntry(ctx context.Context, stream store.TreeDiffStream, hardAccessDenied bool) (store.TreeDiffEntry, bool, error) {
	for {
		entry, ok, err := stream.Next(ctx)
		if err != nil {
			return store.TreeDiffEntry{}, false, newBackendError("", err)
		}
		if !ok {
			return store.TreeDiffEntry{}, false, nil
		}
		if entry.Err != nil {
			return store.TreeDiffEntry{}, false, newBackendError(string(entry.TargetPath), entry.Err)
		}

		if entry.Left.Kind == store.AccessDenied || entry.Right.Kind == store.AccessDenied {
			denied := entry.Left
			if entry.Left.Kind != store.AccessDenied {
				denied = entry.Right
			}
			if hardAccessDenied {
				return store.TreeDiffEntry{}, false, newAccessDeniedError(string(entry.TargetPath), denied.AccessErr)
			}
			r.writeAccessDenied(entry, denied)
			continue
		}
		return entry, true, nil
	}
}

func (r *Renderer) writeAccessDenied(entry store.TreeDiffEntry, denied store.TreeValue) error {
	return r.Formatter.WithLabel("access-denied", func(f formatter.Formatter) error {
		path := entry.TargetPath
		if path == "" {
			path = entry.SourcePath
		}
		_, err := f.WriteBytes([]byte("Access denied to " + string(path) + ": " + denied.AccessErr.Error() + "\n"))
		return err
	})
}
