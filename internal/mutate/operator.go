// Package mutate holds the operator registry (C2), the syntactic and
// source-pattern operators (C3/C4), and the traversal/codegen stage (C6)
// that turns a parsed tree and the raw source bytes into an ordered list of
// model.Mutation records.
package mutate

import "gooze.dev/pkg/gooze/internal/lean"

// Operator is the pure, side-effect-free contract every mutation operator
// satisfies. CanMutate is a predicate; Mutate returns a finite, stably
// ordered list of replacements. Mutate must never return a replacement whose
// text equals the node's own source text — that invariant is checked by
// Generate, not trusted blindly from each operator.
type Operator interface {
	Name() string
	Description() string
	CanMutate(n *lean.Node) bool
	Mutate(n *lean.Node, source []byte) []Replacement
}

// Replacement is one candidate textual substitution, paired with a
// human-readable description of what changed.
type Replacement struct {
	Text        string
	Description string
}
