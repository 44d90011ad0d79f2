package mutate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratePatternMutations_MatchesPaddedOperator(t *testing.T) {
	src := []byte(`x + 1`)

	matches := generatePatternMutations(src)

	require.Len(t, matches, 1)
	require.Equal(t, "-", matches[0].MutatedText)
	require.Equal(t, "+", string(src[matches[0].ByteStart:matches[0].ByteEnd]))
}

func TestGeneratePatternMutations_SkipsUnpaddedOperator(t *testing.T) {
	matches := generatePatternMutations([]byte(`x+1`))
	require.Empty(t, matches)
}

func TestGeneratePatternMutations_PrefersLongerTokenOverShorterPrefix(t *testing.T) {
	matches := generatePatternMutations([]byte(`x <= y`))

	require.Len(t, matches, 1)
	require.Equal(t, ">=", matches[0].MutatedText)
}

func TestGeneratePatternMutations_MultipleMatches(t *testing.T) {
	matches := generatePatternMutations([]byte(`a + b - c`))
	require.Len(t, matches, 2)
}
