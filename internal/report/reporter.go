// Package report implements the three reporters (C9): console, JSON, and
// HTML, all rendering the same model.Run.
package report

import (
	"io"

	m "gooze.dev/pkg/gooze/internal/model"
)

// Reporter renders a completed Run to w.
type Reporter interface {
	Render(run m.Run, w io.Writer) error
}

// ForName resolves the --output flag value to a concrete Reporter. Unknown
// names fall back to the console reporter, matching the teacher's
// permissive-default style elsewhere in cmd/config.go.
func ForName(name string, noColor bool) Reporter {
	switch name {
	case "json":
		return NewJSONReporter()
	case "html":
		return NewHTMLReporter()
	default:
		return NewConsoleReporter(noColor)
	}
}
