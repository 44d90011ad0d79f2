package lean

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_SimpleDef(t *testing.T) {
	root, err := Parse("t.lean", []byte(`def add (x y : Nat) : Nat := x + y`))
	require.NoError(t, err)
	require.NotNil(t, root)
	require.Equal(t, "file", root.Tag)
	require.Len(t, root.Children, 1)

	def := root.Children[0]
	require.Equal(t, "command:def", def.Tag)
	require.Len(t, def.Children, 1)

	body := def.Children[0]
	require.Equal(t, "binop", body.Tag)
	require.Equal(t, "+", body.Op)
}

func TestParse_TheoremAndDirectives(t *testing.T) {
	src := `theorem trivial (x : Nat) : Prop := x == x

#guard 1 == 1
#eval 2 + 2`

	root, err := Parse("t.lean", []byte(src))
	require.NoError(t, err)
	require.Len(t, root.Children, 3)

	require.Equal(t, "command:theorem", root.Children[0].Tag)
	require.Equal(t, "command:#guard", root.Children[1].Tag)
	require.Equal(t, "command:#eval", root.Children[2].Tag)
}

func TestParse_IfThenElse(t *testing.T) {
	root, err := Parse("t.lean", []byte(`def f (x : Int) : Int := if x < 0 then -x else x`))
	require.NoError(t, err)

	body := root.Children[0].Children[0]
	require.Equal(t, "ifThenElse", body.Tag)
	require.Len(t, body.Children, 3)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	root, err := Parse("t.lean", []byte(`def f (x : Nat) : Bool := x + 1 == 2 && x > 0`))
	require.NoError(t, err)

	body := root.Children[0].Children[0]
	require.Equal(t, "binop", body.Tag)
	require.Equal(t, "&&", body.Op)
}

func TestParse_EmptyFileYieldsEmptyRoot(t *testing.T) {
	root, err := Parse("t.lean", []byte(""))
	require.NoError(t, err)
	require.NotNil(t, root)
	require.Empty(t, root.Children)
}

func TestParse_HeaderFailureYieldsNilRoot(t *testing.T) {
	root, err := Parse("t.lean", []byte(`not a valid command`))
	require.Error(t, err)
	require.Nil(t, root)
}

func TestParse_PartialFailureRecoversPriorCommands(t *testing.T) {
	src := `def good (x : Nat) : Nat := x + 1

def broken (x : Nat) : Nat := x +
`

	root, err := Parse("t.lean", []byte(src))
	require.Error(t, err)
	require.NotNil(t, root)
	require.Len(t, root.Children, 1)
	require.Equal(t, "command:def", root.Children[0].Tag)
}

func TestParse_BytePositionsAreAccurate(t *testing.T) {
	src := []byte(`def f (x : Nat) : Nat := x + 1`)
	root, err := Parse("t.lean", src)
	require.NoError(t, err)

	body := root.Children[0].Children[0]
	require.Equal(t, "x + 1", string(src[body.ByteStart:body.ByteEnd]))
}

func TestNode_Walk(t *testing.T) {
	root, err := Parse("t.lean", []byte(`def f (x : Nat) : Nat := x + 1 * 2`))
	require.NoError(t, err)

	var tags []string
	root.Walk(func(n *Node) {
		if n.Tag != "" {
			tags = append(tags, n.Tag)
		}
	})

	require.Contains(t, tags, "file")
	require.Contains(t, tags, "command:def")
	require.Contains(t, tags, "binop")
}

func TestNode_ByteLen(t *testing.T) {
	n := &Node{ByteStart: 10, ByteEnd: 15}
	require.Equal(t, 5, n.ByteLen())
}

func TestParse_BinopOpByteRangeSpansOnlyTheOperatorToken(t *testing.T) {
	src := []byte(`def f (a b : Bool) : Bool := a && b`)
	root, err := Parse("t.lean", src)
	require.NoError(t, err)

	body := root.Children[0].Children[0]
	require.Equal(t, "binop", body.Tag)
	require.Equal(t, "&&", body.Op)

	require.Equal(t, "a && b", string(src[body.ByteStart:body.ByteEnd]))
	require.Equal(t, "&&", string(src[body.OpByteStart:body.OpByteEnd]))
}

func TestParse_BinopOpByteRangeWithAsymmetricSpacing(t *testing.T) {
	src := []byte(`def f (x : Nat) : Nat := x  +   1`)
	root, err := Parse("t.lean", src)
	require.NoError(t, err)

	body := root.Children[0].Children[0]
	require.Equal(t, "+", string(src[body.OpByteStart:body.OpByteEnd]))
}
