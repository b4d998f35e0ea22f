package formatter

import "io"

// Plain writes straight through to an io.Writer, dropping all labels. Used
// for non-terminal output (piped/redirected stdout), chosen via
// golang.org/x/term.IsTerminal the same way teacher's root.go decides
// whether to draw its clone-progress bar.
type Plain struct {
	w io.Writer
}

// NewPlain wraps w as a label-dropping Formatter.
func NewPlain(w io.Writer) *Plain { return &Plain{w: w} }

// WriteBytes implements Formatter.
func (p *Plain) WriteBytes(b []byte) (int, error) { return p.w.Write(b) }

// WithLabel implements Formatter, ignoring the label.
func (p *Plain) WithLabel(_ string, f func(Formatter) error) error { return f(p) }

// Labeled implements Formatter, ignoring the label.
func (p *Plain) Labeled(_ string) io.Writer { return p.w }
