package mutate

// Registry is an ordered collection of operators. It is the direct analog of
// the teacher's map of named mutation-generator functions, generalized to a
// slice plus a name index so registration order survives (a plain map
// cannot preserve it, and spec's getByNames/list-operators output both rely
// on stable order).
type Registry struct {
	operators []Operator
	byName    map[string]int // name -> index into operators
}

// NewRegistry returns an empty, ready-to-use registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register appends op to the registry. If an operator with the same name was
// already registered, it is replaced in place (last-registered wins) rather
// than appended a second time, so iteration order is unaffected by re-
// registration.
func (r *Registry) Register(op Operator) {
	if idx, ok := r.byName[op.Name()]; ok {
		r.operators[idx] = op
		return
	}

	r.byName[op.Name()] = len(r.operators)
	r.operators = append(r.operators, op)
}

// All returns every registered operator in registration order.
func (r *Registry) All() []Operator {
	out := make([]Operator, len(r.operators))
	copy(out, r.operators)

	return out
}

// ByNames filters the registry to the named operators, preserving
// registration order (not the order names were listed in). An empty list
// selects every operator; unknown names are silently dropped.
func (r *Registry) ByNames(names []string) []Operator {
	if len(names) == 0 {
		return r.All()
	}

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	var out []Operator

	for _, op := range r.operators {
		if _, ok := wanted[op.Name()]; ok {
			out = append(out, op)
		}
	}

	return out
}

// BuiltinOperatorOrder lists the built-in operator names in the exact
// startup order the system must register them in (spec §4.1).
var BuiltinOperatorOrder = []string{
	"boolean-flip",
	"boolean-and-or",
	"boolean-negation",
	"arithmetic-add-sub",
	"arithmetic-mul-div",
	"arithmetic-swap",
	"numeric-boundary",
	"comparison-equality",
	"comparison-relational",
	"comparison-boundary",
	"string-literal",
	"char-literal",
}
