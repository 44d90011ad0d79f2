package operators

import (
	"gooze.dev/pkg/gooze/internal/lean"
	"gooze.dev/pkg/gooze/internal/mutate"
)

// stringLiteral matches double-quoted string literals.
type stringLiteral struct{}

// NewStringLiteral constructs the string-literal operator.
func NewStringLiteral() mutate.Operator { return stringLiteral{} }

func (stringLiteral) Name() string        { return "string-literal" }
func (stringLiteral) Description() string { return "perturbs string literals to empty/placeholder text" }

func (stringLiteral) CanMutate(n *lean.Node) bool {
	return n.Kind == lean.KindAtom && n.Tag == "string"
}

func (stringLiteral) Mutate(n *lean.Node, _ []byte) []mutate.Replacement {
	if n.Text == `""` {
		return []mutate.Replacement{{Text: `"non-empty"`, Description: "empty string -> non-empty"}}
	}

	return []mutate.Replacement{
		{Text: `""`, Description: "string -> empty"},
		{Text: `"MUTATED"`, Description: "string -> placeholder"},
	}
}

// charLiteral matches single-quoted char literals.
type charLiteral struct{}

// NewCharLiteral constructs the char-literal operator.
func NewCharLiteral() mutate.Operator { return charLiteral{} }

func (charLiteral) Name() string        { return "char-literal" }
func (charLiteral) Description() string { return "perturbs char literals to boundary values" }

func (charLiteral) CanMutate(n *lean.Node) bool {
	return n.Kind == lean.KindAtom && n.Tag == "char"
}

func (charLiteral) Mutate(n *lean.Node, _ []byte) []mutate.Replacement {
	original := n.Text

	letterAlt := "'a'"
	if original == "'a'" {
		letterAlt = "'z'"
	}

	candidates := []mutate.Replacement{
		{Text: "' '", Description: "char -> space"},
		{Text: letterAlt, Description: "char -> " + letterAlt},
	}

	if isAlphabeticCharLiteral(original) {
		candidates = append(candidates, mutate.Replacement{Text: "'0'", Description: "char -> digit"})
	}

	out := make([]mutate.Replacement, 0, len(candidates))

	for _, c := range candidates {
		if c.Text != original {
			out = append(out, c)
		}
	}

	return out
}

func isAlphabeticCharLiteral(text string) bool {
	if len(text) != 3 {
		return false
	}

	c := text[1]

	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
