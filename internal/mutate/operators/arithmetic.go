package operators

import (
	"gooze.dev/pkg/gooze/internal/lean"
	"gooze.dev/pkg/gooze/internal/mutate"
)

// arithmeticAddSub matches binary + and - and emits the other of the pair.
type arithmeticAddSub struct{}

// NewArithmeticAddSub constructs the arithmetic-add-sub operator.
func NewArithmeticAddSub() mutate.Operator { return arithmeticAddSub{} }

func (arithmeticAddSub) Name() string        { return "arithmetic-add-sub" }
func (arithmeticAddSub) Description() string { return "swaps + with -" }

func (arithmeticAddSub) CanMutate(n *lean.Node) bool {
	return isBinop(n, "+", "-")
}

func (arithmeticAddSub) Mutate(n *lean.Node, _ []byte) []mutate.Replacement {
	opposite := "-"
	if n.Op == "-" {
		opposite = "+"
	}

	return []mutate.Replacement{{Text: opposite, Description: "swap " + n.Op + " -> " + opposite}}
}

// arithmeticMulDiv matches binary * and / and emits the other of the pair.
type arithmeticMulDiv struct{}

// NewArithmeticMulDiv constructs the arithmetic-mul-div operator.
func NewArithmeticMulDiv() mutate.Operator { return arithmeticMulDiv{} }

func (arithmeticMulDiv) Name() string        { return "arithmetic-mul-div" }
func (arithmeticMulDiv) Description() string { return "swaps * with /" }

func (arithmeticMulDiv) CanMutate(n *lean.Node) bool {
	return isBinop(n, "*", "/")
}

func (arithmeticMulDiv) Mutate(n *lean.Node, _ []byte) []mutate.Replacement {
	opposite := "/"
	if n.Op == "/" {
		opposite = "*"
	}

	return []mutate.Replacement{{Text: opposite, Description: "swap " + n.Op + " -> " + opposite}}
}

// arithmeticSwap ("all-swap") matches any of +, -, *, /, % and emits every
// cross-pair alternative. The modulus operator is special-cased per spec:
// it never survives as modulus, mapping only to * or /.
type arithmeticSwap struct{}

// NewArithmeticSwap constructs the arithmetic-swap (all-swap) operator.
func NewArithmeticSwap() mutate.Operator { return arithmeticSwap{} }

func (arithmeticSwap) Name() string        { return "arithmetic-swap" }
func (arithmeticSwap) Description() string { return "swaps any arithmetic operator across +,-,*,/,%" }

func (arithmeticSwap) CanMutate(n *lean.Node) bool {
	return isBinop(n, "+", "-", "*", "/", "%")
}

var crossPairAlternatives = []string{"+", "-", "*", "/"}

func (arithmeticSwap) Mutate(n *lean.Node, _ []byte) []mutate.Replacement {
	if n.Op == "%" {
		return []mutate.Replacement{
			{Text: "*", Description: "map % -> *"},
			{Text: "/", Description: "map % -> /"},
		}
	}

	var out []mutate.Replacement

	for _, alt := range crossPairAlternatives {
		if alt == n.Op {
			continue
		}

		out = append(out, mutate.Replacement{Text: alt, Description: "swap " + n.Op + " -> " + alt})
	}

	return out
}

// numericBoundary matches integer literals and emits off-by-one and
// zero-boundary mutations in the fixed order the spec demands.
type numericBoundary struct{}

// NewNumericBoundary constructs the numeric-boundary operator.
func NewNumericBoundary() mutate.Operator { return numericBoundary{} }

func (numericBoundary) Name() string        { return "numeric-boundary" }
func (numericBoundary) Description() string { return "perturbs integer literals to their boundaries" }

func (numericBoundary) CanMutate(n *lean.Node) bool {
	return n.Kind == lean.KindAtom && n.Tag == "number"
}

func (numericBoundary) Mutate(n *lean.Node, _ []byte) []mutate.Replacement {
	value := parseIntLiteral(n.Text)

	if value == 0 {
		return []mutate.Replacement{
			{Text: "1", Description: "boundary 0 -> 1"},
			{Text: "-1", Description: "boundary 0 -> -1"},
		}
	}

	return []mutate.Replacement{
		{Text: formatInt(value + 1), Description: "boundary n -> n+1"},
		{Text: formatInt(value - 1), Description: "boundary n -> n-1"},
		{Text: "0", Description: "boundary n -> 0"},
	}
}

func isBinop(n *lean.Node, ops ...string) bool {
	if n.Kind != lean.KindNode || n.Tag != "binop" {
		return false
	}

	for _, op := range ops {
		if n.Op == op {
			return true
		}
	}

	return false
}

func parseIntLiteral(text string) int {
	value := 0
	for _, r := range text {
		if r < '0' || r > '9' {
			continue
		}

		value = value*10 + int(r-'0')
	}

	return value
}

func formatInt(v int) string {
	if v < 0 {
		return "-" + formatInt(-v)
	}

	if v == 0 {
		return "0"
	}

	var digits []byte

	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}

	return string(digits)
}
