package report

import (
	"encoding/json"
	"io"
	"strconv"

	m "gooze.dev/pkg/gooze/internal/model"
)

// JSONReporter serializes a Run to the stable v1.0 JSON schema. It projects
// model types into dedicated wire structs rather than marshaling model.Run
// directly, so the wire format stays exact and stable even as the internal
// model grows fields the schema doesn't carry (e.g. Mutation.Description).
type JSONReporter struct{}

// NewJSONReporter constructs a JSONReporter.
func NewJSONReporter() *JSONReporter { return &JSONReporter{} }

type jsonReport struct {
	Version   string          `json:"version"`
	Generator string          `json:"generator"`
	Stats     jsonStats       `json:"stats"`
	Mutations []jsonMutResult `json:"mutations"`
}

type jsonStats struct {
	Total    int    `json:"total"`
	Killed   int    `json:"killed"`
	Survived int    `json:"survived"`
	TimedOut int    `json:"timedOut"`
	Errors   int    `json:"errors"`
	Score    string `json:"score"`
	TotalMs  int64  `json:"totalTime"`
}

type jsonMutation struct {
	ID       int             `json:"id"`
	File     string          `json:"file"`
	Location jsonLocation    `json:"location"`
	Original string          `json:"original"`
	Mutated  string          `json:"mutated"`
	Operator string          `json:"operator"`
}

type jsonLocation struct {
	File      string `json:"file"`
	StartLine int    `json:"startLine"`
	StartCol  int    `json:"startCol"`
	EndLine   int    `json:"endLine"`
	EndCol    int    `json:"endCol"`
}

type jsonMutResult struct {
	Mutation jsonMutation `json:"mutation"`
	Status   string       `json:"status"`
	Duration int64        `json:"duration"`
	Message  string       `json:"message"`
}

func (j *JSONReporter) Render(run m.Run, w io.Writer) error {
	report := jsonReport{
		Version:   "1.0",
		Generator: run.Generator,
		Stats: jsonStats{
			Total:    run.Stats.Total,
			Killed:   run.Stats.Killed,
			Survived: run.Stats.Survived,
			TimedOut: run.Stats.TimedOut,
			Errors:   run.Stats.Errors,
			Score:    strconv.FormatFloat(run.Stats.Score(), 'f', 2, 64),
			TotalMs:  run.Stats.TotalTimeMs,
		},
		Mutations: make([]jsonMutResult, 0, len(run.Results)),
	}

	for _, result := range run.Results {
		report.Mutations = append(report.Mutations, jsonMutResult{
			Mutation: jsonMutation{
				ID:   result.Mutation.ID,
				File: result.Mutation.File,
				Location: jsonLocation{
					File:      result.Mutation.Location.File,
					StartLine: result.Mutation.Location.StartLine,
					StartCol:  result.Mutation.Location.StartCol,
					EndLine:   result.Mutation.Location.EndLine,
					EndCol:    result.Mutation.Location.EndCol,
				},
				Original: result.Mutation.OriginalText,
				Mutated:  result.Mutation.MutatedText,
				Operator: result.Mutation.OperatorName,
			},
			Status:   string(result.Status),
			Duration: result.DurationMs,
			Message:  result.Message,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	return enc.Encode(report)
}

// LoadJSON reads back a report previously written by JSONReporter, for the
// `gooze view` command's re-render-without-re-running flow.
func LoadJSON(r io.Reader) (m.Run, error) {
	var parsed jsonReport

	if err := json.NewDecoder(r).Decode(&parsed); err != nil {
		return m.Run{}, err
	}

	run := m.Run{
		Generator: parsed.Generator,
		Version:   parsed.Version,
		Stats: m.Stats{
			Total:       parsed.Stats.Total,
			Killed:      parsed.Stats.Killed,
			Survived:    parsed.Stats.Survived,
			TimedOut:    parsed.Stats.TimedOut,
			Errors:      parsed.Stats.Errors,
			TotalTimeMs: parsed.Stats.TotalMs,
		},
		Results: make([]m.MutationResult, 0, len(parsed.Mutations)),
	}

	for _, mr := range parsed.Mutations {
		run.Results = append(run.Results, m.MutationResult{
			Mutation: m.Mutation{
				ID:   mr.Mutation.ID,
				File: mr.Mutation.File,
				Location: m.SourceLocation{
					File:      mr.Mutation.Location.File,
					StartLine: mr.Mutation.Location.StartLine,
					StartCol:  mr.Mutation.Location.StartCol,
					EndLine:   mr.Mutation.Location.EndLine,
					EndCol:    mr.Mutation.Location.EndCol,
				},
				OriginalText: mr.Mutation.Original,
				MutatedText:  mr.Mutation.Mutated,
				OperatorName: mr.Mutation.Operator,
			},
			Status:     m.MutationStatus(mr.Status),
			DurationMs: mr.Duration,
			Message:    mr.Message,
		})
	}

	return run, nil
}
