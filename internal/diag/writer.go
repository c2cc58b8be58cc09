package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	acceptColor  = color.New(color.FgGreen)
	skipColor    = color.New(color.FgYellow)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// WriterReporter prints one line per record, optionally coloring the verdict.
type WriterReporter struct {
	W     io.Writer
	Color bool
}

func (w WriterReporter) Report(r Record) {
	if w.W == nil {
		return
	}
	if !w.Color {
		fmt.Fprintln(w.W, r.String())
		return
	}
	var c *color.Color
	switch r.Verdict {
	case VerdictAccepted:
		c = acceptColor
	case VerdictSkipped:
		c = skipColor
	case VerdictWarning:
		c = warningColor
	case VerdictError:
		c = errorColor
	}
	if c == nil {
		fmt.Fprintln(w.W, r.String())
		return
	}
	fmt.Fprintln(w.W, c.Sprint(r.String()))
}
