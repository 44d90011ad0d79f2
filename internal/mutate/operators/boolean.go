// Package operators implements the syntactic (C3) mutation operators (the
// source-pattern pass lives in package mutate): one file per operator family, mirroring the teacher's
// internal/domain/mutagens layout.
package operators

import (
	"gooze.dev/pkg/gooze/internal/lean"
	"gooze.dev/pkg/gooze/internal/mutate"
)

// booleanFlip matches identifier nodes whose name is the literal true/false
// and emits the opposite literal.
type booleanFlip struct{}

// NewBooleanFlip constructs the boolean-flip operator.
func NewBooleanFlip() mutate.Operator { return booleanFlip{} }

func (booleanFlip) Name() string        { return "boolean-flip" }
func (booleanFlip) Description() string { return "flips boolean literals true/false" }

func (booleanFlip) CanMutate(n *lean.Node) bool {
	return n.Kind == lean.KindIdent && (n.Name == "true" || n.Name == "false")
}

func (booleanFlip) Mutate(n *lean.Node, _ []byte) []mutate.Replacement {
	opposite := "true"
	if n.Name == "true" {
		opposite = "false"
	}

	return []mutate.Replacement{{Text: opposite, Description: "flip boolean literal " + n.Name + " -> " + opposite}}
}

// booleanAndOr matches the binary logical-and/or operators in both ASCII and
// Unicode spellings and emits the opposite of the same width.
type booleanAndOr struct{}

// NewBooleanAndOr constructs the boolean-and-or operator.
func NewBooleanAndOr() mutate.Operator { return booleanAndOr{} }

func (booleanAndOr) Name() string        { return "boolean-and-or" }
func (booleanAndOr) Description() string { return "swaps && with || (and ∧ with ∨)" }

var andOrOpposite = map[string]string{
	"&&": "||",
	"||": "&&",
	"∧":  "∨",
	"∨":  "∧",
}

func (booleanAndOr) CanMutate(n *lean.Node) bool {
	if n.Kind != lean.KindNode || n.Tag != "binop" {
		return false
	}

	_, ok := andOrOpposite[n.Op]

	return ok
}

func (booleanAndOr) Mutate(n *lean.Node, _ []byte) []mutate.Replacement {
	opposite := andOrOpposite[n.Op]

	return []mutate.Replacement{{Text: opposite, Description: "swap " + n.Op + " -> " + opposite}}
}

// booleanNegationRemoval matches a unary negation applied to a
// sub-expression and emits the sub-expression, dropping the negation.
type booleanNegationRemoval struct{}

// NewBooleanNegationRemoval constructs the boolean-negation-removal operator.
func NewBooleanNegationRemoval() mutate.Operator { return booleanNegationRemoval{} }

func (booleanNegationRemoval) Name() string { return "boolean-negation" }

func (booleanNegationRemoval) Description() string {
	return "removes a boolean negation, keeping its operand"
}

func (booleanNegationRemoval) CanMutate(n *lean.Node) bool {
	if n.Kind != lean.KindNode || n.Tag != "unop" {
		return false
	}

	if n.Op != "!" && n.Op != "¬" {
		return false
	}

	return len(n.Children) == 1 && n.Children[0].Kind != lean.KindMissing
}

func (booleanNegationRemoval) Mutate(n *lean.Node, source []byte) []mutate.Replacement {
	operand := n.Children[0]
	text := string(source[operand.ByteStart:operand.ByteEnd])

	return []mutate.Replacement{{Text: text, Description: "remove negation " + n.Op}}
}
