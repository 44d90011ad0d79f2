package operators

import "gooze.dev/pkg/gooze/internal/mutate"

// DefaultRegistry builds the registry with every built-in operator pushed in
// the fixed startup order the system must register them in.
func DefaultRegistry() *mutate.Registry {
	r := mutate.NewRegistry()

	r.Register(NewBooleanFlip())
	r.Register(NewBooleanAndOr())
	r.Register(NewBooleanNegationRemoval())
	r.Register(NewArithmeticAddSub())
	r.Register(NewArithmeticMulDiv())
	r.Register(NewArithmeticSwap())
	r.Register(NewNumericBoundary())
	r.Register(NewComparisonEquality())
	r.Register(NewComparisonRelational())
	r.Register(NewComparisonBoundary())
	r.Register(NewStringLiteral())
	r.Register(NewCharLiteral())

	return r
}
