package report

import (
	"html/template"
	"io"

	m "gooze.dev/pkg/gooze/internal/model"
)

// HTMLReporter renders a Run as a single, self-contained HTML file: inline
// CSS, no external asset loads, auto-escaped mutation source text courtesy
// of html/template.
type HTMLReporter struct{}

// NewHTMLReporter constructs an HTMLReporter.
func NewHTMLReporter() *HTMLReporter { return &HTMLReporter{} }

type htmlViewModel struct {
	Generator string
	Score     float64
	Stats     m.Stats
	Results   []m.MutationResult
}

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Mutation report — {{.Generator}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; color: #1a1a1a; }
h1 { font-size: 1.4rem; }
.score { font-size: 2.5rem; font-weight: bold; }
.score.green { color: #1a7f37; }
.score.yellow { color: #9a6700; }
.score.red { color: #cf222e; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #d0d7de; padding: 0.4rem 0.8rem; text-align: left; }
.entry { border: 1px solid #d0d7de; border-radius: 6px; padding: 0.6rem 1rem; margin: 0.4rem 0; }
.entry.Killed { border-left: 4px solid #1a7f37; }
.entry.Survived { border-left: 4px solid #cf222e; }
.entry.Timeout { border-left: 4px solid #9a6700; }
.entry.Error { border-left: 4px solid #57606a; }
code { background: #f6f8fa; padding: 0.1rem 0.3rem; border-radius: 4px; }
</style>
</head>
<body>
<h1>Mutation report</h1>
<p class="score {{if ge .Score 80.0}}green{{else if ge .Score 50.0}}yellow{{else}}red{{end}}">{{printf "%.2f" .Score}}%</p>
<table>
<tr><th>Total</th><th>Killed</th><th>Survived</th><th>Timed Out</th><th>Errors</th></tr>
<tr><td>{{.Stats.Total}}</td><td>{{.Stats.Killed}}</td><td>{{.Stats.Survived}}</td><td>{{.Stats.TimedOut}}</td><td>{{.Stats.Errors}}</td></tr>
</table>
<h2>Mutations</h2>
{{range .Results}}
<div class="entry {{.Status}}">
  <strong>{{.Status}}</strong> — {{.Mutation.Location.File}}:{{.Mutation.Location.StartLine}}:{{.Mutation.Location.StartCol}} — {{.Mutation.OperatorName}}<br>
  <code>{{.Mutation.OriginalText}}</code> &rarr; <code>{{.Mutation.MutatedText}}</code>
  {{if .Message}}<p>{{.Message}}</p>{{end}}
</div>
{{end}}
</body>
</html>
`))

func (h *HTMLReporter) Render(run m.Run, w io.Writer) error {
	return htmlTmpl.Execute(w, htmlViewModel{
		Generator: run.Generator,
		Score:     run.Stats.Score(),
		Stats:     run.Stats,
		Results:   run.Results,
	})
}
