package treediff

import (
	"context"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"github.com/src-d/treediff/internal/exttool"
	"github.com/src-d/treediff/internal/store"
	"github.com/src-d/treediff/internal/textdiff"
)

// showTool implements §4.8: delegating entries to an external diff tool,
// either materializing both trees once (Dir mode) or per-entry (FileByFile
// mode), suppressing the implicit delete half of a rename/copy exactly as
// the Git renderer does.
func (r *Renderer) showTool(ctx context.Context, stream store.TreeDiffStream, copySources map[store.Path]struct{}, cfg *exttool.Config) error {
	if cfg == nil {
		return newDiffGenerateError(nil)
	}

	var entries []store.TreeDiffEntry
	for {
		entry, ok, err := r.nextEntry(ctx, stream, cfg.Mode != exttool.FileByFile)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if entry.Right.Kind == store.Absent && isCopySource(entry.SourcePath, copySources) {
			continue
		}
		entries = append(entries, entry)
	}

	if cfg.Mode == exttool.FileByFile {
		for _, entry := range entries {
			if err := r.runFileByFile(entry, cfg); err != nil {
				return err
			}
		}
		return nil
	}
	return r.runDir(entries, cfg)
}

func (r *Renderer) runFileByFile(entry store.TreeDiffEntry, cfg *exttool.Config) error {
	leftContent, err := textdiff.ClassifyContent(entry.Left)
	if err != nil {
		return newBackendError(string(entry.SourcePath), err)
	}
	rightContent, err := textdiff.ClassifyContent(entry.Right)
	if err != nil {
		return newBackendError(string(entry.TargetPath), err)
	}
	if err := exttool.RunFileByFile(*cfg, leftContent.Contents, rightContent.Contents,
		entry.Left.Kind != store.Absent, entry.Right.Kind != store.Absent); err != nil {
		return newDiffGenerateError(err)
	}
	return nil
}

func (r *Renderer) runDir(entries []store.TreeDiffEntry, cfg *exttool.Config) error {
	leftValues := make(map[string]store.TreeValue)
	rightValues := make(map[string]store.TreeValue)
	var leftPaths, rightPaths []string

	for _, entry := range entries {
		if entry.Left.Kind != store.Absent {
			p := string(entry.SourcePath)
			leftValues[p] = entry.Left
			leftPaths = append(leftPaths, p)
		}
		if entry.Right.Kind != store.Absent {
			p := string(entry.TargetPath)
			rightValues[p] = entry.Right
			rightPaths = append(rightPaths, p)
		}
	}

	materializeFrom := func(values map[string]store.TreeValue) exttool.Materializer {
		return func(fs billy.Filesystem, root, path string) error {
			v := values[path]
			content, err := textdiff.ClassifyContent(v)
			if err != nil {
				return err
			}
			if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			f, err := fs.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			_, err = f.Write(content.Contents)
			return err
		}
	}

	if err := exttool.RunDir(*cfg, r.Logger, leftPaths, rightPaths, materializeFrom(leftValues), materializeFrom(rightValues)); err != nil {
		return newDiffGenerateError(err)
	}
	return nil
}
