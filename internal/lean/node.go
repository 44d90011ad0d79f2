// Package lean implements a minimal, hand-rolled lexer and recursive-descent
// parser for the surface syntax of Lean-style dependently-typed functional
// sources: commands (def, theorem, #guard, #eval), literals, identifiers,
// and the operator expressions mutation operators need to locate. It does not
// attempt to elaborate types; it exists only to locate mutation sites with
// byte-accurate positions, per the non-goal stated by the system this package
// serves.
package lean

// Kind tags the four variants of the syntax tree, matching the discriminated
// union: Node(info, kind, children) | Atom(info, text) | Identifier(info,
// name) | Missing. Go has no sum types, so the four variants share one
// struct and are told apart by Kind.
type Kind int

const (
	// KindNode is an interior node with a syntactic tag and children.
	KindNode Kind = iota
	// KindAtom is a leaf literal (number, string, char literal).
	KindAtom
	// KindIdent is a leaf identifier or keyword-as-identifier reference.
	KindIdent
	// KindMissing marks a recovery placeholder where the parser expected a
	// node but found none (used by the header/partial-recovery rule).
	KindMissing
)

// Node is the single tagged struct every syntax-tree variant is represented
// as. Traversal code reads ByteStart/ByteEnd, OpByteStart/OpByteEnd (binops),
// Kind, Tag, Text/Name, and Children.
type Node struct {
	Kind      Kind
	Tag       string // syntactic kind tag for KindNode (e.g. "binop", "ifThenElse", "command")
	Text      string // literal text for KindAtom (includes quotes for strings/chars)
	Name      string // identifier text for KindIdent
	ByteStart int
	ByteEnd   int
	Children  []*Node

	// Op carries the literal operator token text for binop/unop nodes
	// ("+", "&&", "∧", "==", ...), so operators can match on exact spelling
	// without re-lexing.
	Op string

	// OpByteStart and OpByteEnd span just the operator token itself for binop
	// nodes (e.g. the two bytes of "&&" in "a && b"), not the whole
	// subexpression. Operators that replace only the operator glyph derive
	// their candidate's byte range from this, not from ByteStart/ByteEnd.
	OpByteStart int
	OpByteEnd   int
}

// Walk performs a pre-order traversal over n and its descendants, calling fn
// on every node including n itself. Traversal order is deterministic:
// children are visited in parse order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}

	fn(n)

	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// ByteLen returns the byte length spanned by the node.
func (n *Node) ByteLen() int {
	return n.ByteEnd - n.ByteStart
}
