package model

// Stats is a straight fold over a MutationResult stream. It is commutative:
// folding results in any order yields the same struct, which is what lets the
// scheduler aggregate across workers without coordination.
type Stats struct {
	Total       int   `json:"total"`
	Killed      int   `json:"killed"`
	Survived    int   `json:"survived"`
	TimedOut    int   `json:"timedOut"`
	Errors      int   `json:"errors"`
	TotalTimeMs int64 `json:"totalTime"`
}

// Add folds a single result into the running stats. It does not touch
// TotalTimeMs, which is wall-clock of the whole schedule call, not a sum of
// per-mutant durations.
func (s *Stats) Add(r MutationResult) {
	s.Total++

	switch r.Status {
	case Killed:
		s.Killed++
	case Survived:
		s.Survived++
	case Timeout:
		s.TimedOut++
	case Error:
		s.Errors++
	case Pending:
	}
}

// Effective is total minus errors: the denominator of the mutation score.
func (s Stats) Effective() int {
	return s.Total - s.Errors
}

// Score is 100*killed/effective, with the empty-run convention that a run
// with no effective mutations scores 100 (vacuously perfect). Errors never
// move either the numerator or the denominator's penalty side: they are
// excluded from the denominator entirely rather than counted against it.
func (s Stats) Score() float64 {
	effective := s.Effective()
	if effective <= 0 {
		return 100
	}

	return 100 * float64(s.Killed) / float64(effective)
}
