package formatter

import (
	"io"

	"github.com/fatih/color"
)

// ANSI colors output by label, using github.com/fatih/color (promoted here
// from an indirect dependency of go-git's own transitive graph to a direct,
// deliberate one). The label -> attribute mapping follows the same pattern
// color's own README demonstrates: wrap an io.Writer, call
// color.New(attrs...).Fprint through it.
type ANSI struct {
	w io.Writer
}

// NewANSI wraps w as a label-coloring Formatter.
func NewANSI(w io.Writer) *ANSI { return &ANSI{w: w} }

// WriteBytes implements Formatter.
func (a *ANSI) WriteBytes(b []byte) (int, error) { return a.w.Write(b) }

// WithLabel implements Formatter.
func (a *ANSI) WithLabel(label string, f func(Formatter) error) error {
	return f(&ansiLabeled{w: a.w, label: label})
}

// Labeled implements Formatter.
func (a *ANSI) Labeled(label string) io.Writer {
	return &ansiLabeled{w: a.w, label: label}
}

// ansiLabeled colors every write with the attributes bound to its label.
type ansiLabeled struct {
	w     io.Writer
	label string
}

func (l *ansiLabeled) Write(p []byte) (int, error) {
	c := colorFor(l.label)
	if c == nil {
		return l.w.Write(p)
	}
	n, err := c.Fprint(l.w, string(p))
	if err != nil {
		return n, err
	}
	return len(p), nil
}

func (l *ansiLabeled) WriteBytes(p []byte) (int, error) { return l.Write(p) }

func (l *ansiLabeled) WithLabel(label string, f func(Formatter) error) error {
	return f(&ansiLabeled{w: l.w, label: label})
}

func (l *ansiLabeled) Labeled(label string) io.Writer {
	return &ansiLabeled{w: l.w, label: label}
}

func colorFor(label string) *color.Color {
	switch label {
	case "removed":
		return color.New(color.FgRed)
	case "added":
		return color.New(color.FgGreen)
	case "hunk_header":
		return color.New(color.FgCyan)
	case "file_header", "header":
		return color.New(color.FgYellow, color.Bold)
	case "line_number":
		return color.New(color.FgBlue)
	case "access-denied":
		return color.New(color.FgRed, color.Bold)
	case "renamed", "copied", "modified":
		return color.New(color.FgMagenta)
	case "binary", "empty":
		return color.New(color.Faint)
	default:
		return nil
	}
}
