package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// teaDisplay drives a bubbletea progress bar (inline, not alt-screen),
// grounded on the teacher's tui.go mutationCountModel: a tea.Model fed by
// an external event stream, updated via tea.Program.Send.
type teaDisplay struct {
	program *tea.Program
	model   *barModel
	wg      sync.WaitGroup
}

func newTeaDisplay(w io.Writer) *teaDisplay {
	model := newBarModel()
	program := tea.NewProgram(model, tea.WithOutput(w))

	return &teaDisplay{program: program, model: model}
}

func (t *teaDisplay) Start(total int) {
	t.model.total = total

	t.wg.Add(1)

	go func() {
		defer t.wg.Done()

		_, _ = t.program.Run()
	}()
}

func (t *teaDisplay) Update(completed, total int) {
	t.program.Send(progressMsg{completed: completed, total: total})
}

func (t *teaDisplay) Finish() {
	t.program.Send(doneMsg{})
	t.wg.Wait()
}

type progressMsg struct {
	completed int
	total     int
}

type doneMsg struct{}

type barModel struct {
	bar       progress.Model
	completed int
	total     int
}

func newBarModel() *barModel {
	return &barModel{bar: progress.New(progress.WithDefaultGradient())}
}

func (b *barModel) Init() tea.Cmd {
	return nil
}

func (b *barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		b.completed = msg.completed
		b.total = msg.total

		if b.total > 0 && b.completed >= b.total {
			return b, tea.Quit
		}

		return b, nil
	case doneMsg:
		return b, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return b, tea.Quit
		}
	}

	return b, nil
}

func (b *barModel) View() string {
	ratio := 0.0
	if b.total > 0 {
		ratio = float64(b.completed) / float64(b.total)
	}

	return fmt.Sprintf("%s %d/%d\n", b.bar.ViewAs(ratio), b.completed, b.total)
}
