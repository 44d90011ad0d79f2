// Package model defines the pure data types shared by every stage of the
// mutation testing pipeline: locations, mutations, statuses, and aggregated
// statistics. Nothing in this package performs I/O.
package model

import "fmt"

// SourceLocation pinpoints a byte range inside a source file, along with its
// 1-based line/column rendering for human-readable output.
type SourceLocation struct {
	File      string `json:"file"`
	StartLine int    `json:"startLine"`
	StartCol  int    `json:"startCol"`
	EndLine   int    `json:"endLine"`
	EndCol    int    `json:"endCol"`
	ByteStart int    `json:"-"`
	ByteEnd   int    `json:"-"`
}

// String renders the location as "file:line:col", the form used by the
// console reporter's one-line survivor entries.
func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol)
}
