// Package formatter provides the labeled output sink renderers write
// through. Labels map to colors in a terminal (ANSI) or are dropped
// entirely (Plain) for non-terminal output, the same split teacher's
// cmd/hercules/root.go makes when deciding whether to draw a progress bar.
package formatter

import "io"

// Formatter is the external collaborator every renderer in this module
// writes through. Labels seen across the renderers: "file_header",
// "hunk_header", "context", "removed", "added", "token", "line_number",
// "header", "empty", "binary", "access-denied", "modified", "stat-summary".
type Formatter interface {
	// WriteBytes writes unlabeled bytes directly.
	WriteBytes(p []byte) (int, error)
	// WithLabel runs f with output wrapped under the given label.
	WithLabel(label string, f func(Formatter) error) error
	// Labeled returns a writer that tags every write with label.
	Labeled(label string) io.Writer
}
