package mutate

import "sort"

// PatternMatch is one candidate produced by the source-pattern (C4) pass: a
// byte range in the raw source plus its proposed replacement text. Unlike
// syntactic operators, pattern operators never see a parsed Node — they scan
// the byte stream directly, which is why they have their own, simpler
// result type instead of reusing Operator/Replacement.
type PatternMatch struct {
	ByteStart    int
	ByteEnd      int
	MutatedText  string
	Description  string
	OperatorName string
}

// patternAlternative maps an infix token to the single replacement the
// source-pattern pass proposes for it. These mirror the syntactic operators'
// family-preserving choices, but the pattern pass only ever proposes one
// alternative per match (spec: "the padded alternative", singular).
var patternAlternative = map[string]string{
	"+": "-", "-": "+",
	"*": "/", "/": "*", "%": "*",
	"&&": "||", "||": "&&",
	"∧": "∨", "∨": "∧",
	"==": "!=", "!=": "==",
	"=": "≠", "≠": "=",
	"/=": "==",
	"<":  ">", ">": "<",
	"<=": ">=", ">=": "<=",
	"≤": "≥", "≥": "≤",
}

var patternTokens = sortedPatternTokens()

func sortedPatternTokens() []string {
	tokens := make([]string, 0, len(patternAlternative))
	for tok := range patternAlternative {
		tokens = append(tokens, tok)
	}

	sort.Slice(tokens, func(i, j int) bool { return len(tokens[i]) > len(tokens[j]) })

	return tokens
}

// generatePatternMutations implements the C4 source-pattern pass: it scans
// the raw source byte stream for space-padded infix tokens and emits one
// candidate per match. Space-padding is intentional — it keeps the scan from
// matching inside identifiers (e.g. "a+b" is not caught, "a + b" is), at the
// cost of missing unpadded operator usage, the pass's documented weakness
// relative to the syntactic operators.
func generatePatternMutations(source []byte) []PatternMatch {
	var matches []PatternMatch

	for i := 0; i < len(source); i++ {
		if source[i] != ' ' {
			continue
		}

		for _, tok := range patternTokens {
			padded := " " + tok + " "
			if i+len(padded) > len(source) {
				continue
			}

			if string(source[i:i+len(padded)]) != padded {
				continue
			}

			matches = append(matches, PatternMatch{
				ByteStart:    i + 1,
				ByteEnd:      i + 1 + len(tok),
				MutatedText:  patternAlternative[tok],
				Description:  "source-pattern swap " + tok + " -> " + patternAlternative[tok],
				OperatorName: "source-pattern",
			})

			break
		}
	}

	return matches
}
