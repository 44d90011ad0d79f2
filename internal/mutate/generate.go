package mutate

import (
	"sort"
	"strconv"
	"strings"

	"gooze.dev/pkg/gooze/internal/lean"
	m "gooze.dev/pkg/gooze/internal/model"
)

// Options controls one Generate call.
type Options struct {
	// Operators filters the registry (empty selects all).
	Operators []string
	// IncludePatterns enables the C4 source-pattern pass alongside the
	// syntactic (C3) pass.
	IncludePatterns bool
}

// newlineIndex is a cached cumulative index of newline byte offsets, used to
// compute line/column from a byte offset without rescanning the file per
// mutation.
type newlineIndex struct {
	offsets []int
}

func buildNewlineIndex(source []byte) *newlineIndex {
	idx := &newlineIndex{}

	for i, b := range source {
		if b == '\n' {
			idx.offsets = append(idx.offsets, i)
		}
	}

	return idx
}

// position returns the 1-based line/column for a byte offset.
func (idx *newlineIndex) position(offset int) (line, col int) {
	line = sort.SearchInts(idx.offsets, offset) + 1

	lineStart := 0
	if line > 1 {
		lineStart = idx.offsets[line-2] + 1
	}

	return line, offset - lineStart + 1
}

// candidate is an internal, pre-dedup mutation proposal, carrying enough
// information to run the C3/C4 merge rule before IDs are assigned.
type candidate struct {
	byteStart, byteEnd int
	mutatedText        string
	description        string
	operatorName       string
	syntactic          bool
}

// Generate walks the parsed tree in pre-order, consulting the registry for
// every enabled operator at every node, and (optionally) runs the C4
// source-pattern pass over the raw bytes. It returns mutations in a single,
// deterministic, traversal-ordered list with monotonic IDs assigned after
// the C3/C4 merge, per the dedup rule in spec §4.3/§9: identical
// (file,byteStart,byteEnd,mutatedText) tuples collapse to one; on
// overlapping-but-not-identical ranges the syntactic producer wins.
func Generate(registry *Registry, root *lean.Node, file string, source []byte, opts Options) []m.Mutation {
	idx := buildNewlineIndex(source)
	ops := registry.ByNames(opts.Operators)
	ignored := buildIgnoreIndex(source)

	var candidates []candidate

	if root != nil {
		root.Walk(func(n *lean.Node) {
			line, _ := idx.position(n.ByteStart)
			if ignored.skip(line) {
				return
			}

			candidates = append(candidates, syntacticCandidates(ops, n, source)...)
		})
	}

	if opts.IncludePatterns {
		for _, pm := range generatePatternMutations(source) {
			line, _ := idx.position(pm.ByteStart)
			if ignored.skip(line) {
				continue
			}

			candidates = append(candidates, candidate{
				byteStart:    pm.ByteStart,
				byteEnd:      pm.ByteEnd,
				mutatedText:  pm.MutatedText,
				description:  pm.Description,
				operatorName: pm.OperatorName,
				syntactic:    false,
			})
		}
	}

	kept := dedupCandidates(candidates)

	mutations := make([]m.Mutation, 0, len(kept))

	for id, c := range kept {
		startLine, startCol := idx.position(c.byteStart)
		endLine, endCol := idx.position(c.byteEnd)

		mutations = append(mutations, m.Mutation{
			ID:   id,
			File: file,
			Location: m.SourceLocation{
				File:      file,
				StartLine: startLine,
				StartCol:  startCol,
				EndLine:   endLine,
				EndCol:    endCol,
				ByteStart: c.byteStart,
				ByteEnd:   c.byteEnd,
			},
			OriginalText: string(source[c.byteStart:c.byteEnd]),
			MutatedText:  c.mutatedText,
			OperatorName: c.operatorName,
			Description:  c.description,
		})
	}

	return mutations
}

func syntacticCandidates(ops []Operator, n *lean.Node, source []byte) []candidate {
	var out []candidate

	// binop operators (boolean-and-or, arithmetic-*, comparison-*) emit a
	// replacement that is just the operator glyph, so their candidate's byte
	// range is the operator token's own span, not the whole subexpression —
	// otherwise applying the mutation would replace "a && b" with "||".
	byteStart, byteEnd := n.ByteStart, n.ByteEnd
	if n.Kind == lean.KindNode && n.Tag == "binop" {
		byteStart, byteEnd = n.OpByteStart, n.OpByteEnd
	}

	originalText := string(source[byteStart:byteEnd])

	for _, op := range ops {
		if !op.CanMutate(n) {
			continue
		}

		for _, repl := range op.Mutate(n, source) {
			if repl.Text == originalText {
				continue // no-op mutations are excluded, spec §8
			}

			out = append(out, candidate{
				byteStart:    byteStart,
				byteEnd:      byteEnd,
				mutatedText:  repl.Text,
				description:  repl.Description,
				operatorName: op.Name(),
				syntactic:    true,
			})
		}
	}

	return out
}

func dedupCandidates(candidates []candidate) []candidate {
	seen := make(map[string]bool)
	kept := make([]candidate, 0, len(candidates))

	for _, c := range candidates {
		key := dedupKey(c.byteStart, c.byteEnd, c.mutatedText)
		if seen[key] {
			continue
		}

		if !c.syntactic && overlapsSyntactic(candidates, c) {
			continue
		}

		seen[key] = true
		kept = append(kept, c)
	}

	return kept
}

func dedupKey(start, end int, mutated string) string {
	return strconv.Itoa(start) + "\x00" + strconv.Itoa(end) + "\x00" + mutated
}

func overlapsSyntactic(all []candidate, c candidate) bool {
	for _, other := range all {
		if !other.syntactic {
			continue
		}

		if rangesOverlap(c.byteStart, c.byteEnd, other.byteStart, other.byteEnd) {
			return true
		}
	}

	return false
}

func rangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// ignoreIndex records line numbers that mutation-ignore annotations have
// suppressed.
type ignoreIndex struct {
	lines map[int]bool
}

func (idx *ignoreIndex) skip(line int) bool {
	return idx.lines[line]
}

// buildIgnoreIndex scans source for "-- gooze:ignore" and
// "-- gooze:ignore-line" annotations. A bare "-- gooze:ignore" on its own
// line suppresses every following line until a blank line or EOF (an
// informal "rest of this definition" scope); "-- gooze:ignore-line"
// suppresses only the line it is attached to.
func buildIgnoreIndex(source []byte) *ignoreIndex {
	idx := &ignoreIndex{lines: make(map[int]bool)}

	lines := strings.Split(string(source), "\n")
	suppressing := false

	for i, text := range lines {
		lineNum := i + 1
		trimmed := strings.TrimSpace(text)

		switch {
		case strings.Contains(trimmed, "gooze:ignore-line"):
			idx.lines[lineNum] = true
		case strings.Contains(trimmed, "gooze:ignore"):
			suppressing = true
			idx.lines[lineNum] = true
		case trimmed == "":
			suppressing = false
		case suppressing:
			idx.lines[lineNum] = true
		}
	}

	return idx
}
