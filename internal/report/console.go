package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	m "gooze.dev/pkg/gooze/internal/model"
)

// ConsoleReporter renders a Run as a colored score, a status-count table,
// and one line per surviving mutation, grounded on the teacher's
// tablewriter-based renderEstimationTable.
type ConsoleReporter struct {
	NoColor bool
}

// NewConsoleReporter constructs a ConsoleReporter. noColor forces plain text
// even when the terminal would otherwise support ANSI color.
func NewConsoleReporter(noColor bool) *ConsoleReporter {
	if os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	return &ConsoleReporter{NoColor: noColor}
}

func (c *ConsoleReporter) Render(run m.Run, w io.Writer) error {
	score := run.Stats.Score()

	fmt.Fprintf(w, "Mutation score: %s\n\n", c.scoreStyle(score).Render(fmt.Sprintf("%.2f%%", score)))

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Total", "Killed", "Survived", "Timed Out", "Errors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.Append([]string{
		fmt.Sprintf("%d", run.Stats.Total),
		fmt.Sprintf("%d", run.Stats.Killed),
		fmt.Sprintf("%d", run.Stats.Survived),
		fmt.Sprintf("%d", run.Stats.TimedOut),
		fmt.Sprintf("%d", run.Stats.Errors),
	})
	table.Render()

	survivors := run.Survivors()
	if len(survivors) == 0 {
		return nil
	}

	fmt.Fprintf(w, "\nSurvived mutations:\n")

	survivorStyle := lipgloss.NewStyle()
	if !c.NoColor {
		survivorStyle = survivorStyle.Foreground(lipgloss.Color("3"))
	}

	for _, s := range survivors {
		line := fmt.Sprintf("  %s - %s", s.Mutation.Location.String(), s.Mutation.OperatorName)
		fmt.Fprintln(w, survivorStyle.Render(line))
	}

	return nil
}

func (c *ConsoleReporter) scoreStyle(score float64) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if c.NoColor {
		return style
	}

	switch {
	case score >= 80:
		return style.Foreground(lipgloss.Color("2")) // green
	case score >= 50:
		return style.Foreground(lipgloss.Color("3")) // yellow
	default:
		return style.Foreground(lipgloss.Color("1")) // red
	}
}
