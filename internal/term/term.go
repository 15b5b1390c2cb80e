package term

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// Writer renders runtime output. Color and prompts are enabled only
// when the underlying writer is an interactive terminal; a plain
// bytes.Buffer gets plain text, so tests and pipes see no escapes.
type Writer struct {
	out   io.Writer
	color bool
}

// NewWriter wraps out, detecting whether it is a TTY.
func NewWriter(out io.Writer) *Writer {
	w := &Writer{out: out}
	if f, ok := out.(*os.File); ok {
		w.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return w
}

// NewPlainWriter wraps out with color forced off.
func NewPlainWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Interactive() bool { return w.color }

func (w *Writer) Printf(format string, a ...interface{}) {
	fmt.Fprintf(w.out, format, a...)
}

func (w *Writer) Println(a ...interface{}) {
	fmt.Fprintln(w.out, a...)
}

// Headerf prints a bold line, used for section headings in summaries.
func (w *Writer) Headerf(format string, a ...interface{}) {
	if w.color {
		fmt.Fprintf(w.out, ansiBold+format+ansiReset+"\n", a...)
		return
	}
	fmt.Fprintf(w.out, format+"\n", a...)
}

// Dimf prints a de-emphasized line, used for axis labels and hints.
func (w *Writer) Dimf(format string, a ...interface{}) {
	if w.color {
		fmt.Fprintf(w.out, ansiDim+format+ansiReset+"\n", a...)
		return
	}
	fmt.Fprintf(w.out, format+"\n", a...)
}

func (w *Writer) accent(s string) string {
	if w.color {
		return ansiCyan + s + ansiReset
	}
	return s
}
