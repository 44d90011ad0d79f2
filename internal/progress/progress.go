// Package progress renders live feedback while the scheduler works through
// a mutation run: a bubbletea progress bar on an interactive terminal, a
// plain line-oriented fallback otherwise.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Display is the interface the mutate command drives as results stream in.
type Display interface {
	Start(total int)
	Update(completed, total int)
	Finish()
}

// New picks a TUI display when w is an interactive terminal and color
// isn't disabled, a plain writer otherwise — the same "two UI
// implementations behind one interface" split the teacher keeps between
// TUI and SimpleUI.
func New(w io.Writer, noColor bool) Display {
	if !noColor && isInteractive(w) {
		return newTeaDisplay(w)
	}

	return newLineDisplay(w)
}

func isInteractive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// lineDisplay prints one line per update — the fallback for non-tty output,
// redirected files, or --no-color runs.
type lineDisplay struct {
	w io.Writer
}

func newLineDisplay(w io.Writer) *lineDisplay {
	return &lineDisplay{w: w}
}

func (l *lineDisplay) Start(total int) {
	fmt.Fprintf(l.w, "running %d mutations\n", total)
}

func (l *lineDisplay) Update(completed, total int) {
	fmt.Fprintf(l.w, "completed %d/%d\n", completed, total)
}

func (l *lineDisplay) Finish() {
	fmt.Fprintln(l.w, "done")
}
