package lean

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokChar
	tokSymbol // punctuation and operators, spelled out verbatim in Text
)

type token struct {
	kind  tokenKind
	text  string
	start int
	end   int
}

// lexer is a stateless scanner: all state lives in the struct value, never at
// package scope, so Parse is safely reentrant across concurrent calls.
type lexer struct {
	src []byte
	pos int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src}
}

// symbols lists multi-byte operator spellings, longest first, so the
// tokenizer greedily matches "==" before "=" and "≥" before a bare byte scan
// would split its UTF-8 encoding.
var symbols = []string{
	"(", ")", ":=", "::", ":", ",",
	"&&", "||", "==", "!=", "/=", "<=", ">=", "<", ">", "=",
	"+", "-", "*", "/", "%", "!",
	"∧", "∨", "¬", "≠", "≤", "≥",
}

func (l *lexer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("lean: %s (offset %d)", fmt.Sprintf(format, args...), l.pos)
}

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}

	return l.src[l.pos]
}

func (l *lexer) skipTrivia() {
	for l.pos < len(l.src) {
		b := l.peekByte()

		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			l.pos++
		case b == '-' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '-':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9') || r == '_' || r == '\''
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// next scans and returns the next token, advancing the lexer's position.
func (l *lexer) next() (token, error) {
	l.skipTrivia()

	start := l.pos

	if l.pos >= len(l.src) {
		return token{kind: tokEOF, start: start, end: start}, nil
	}

	b := l.src[l.pos]

	switch {
	case isDigit(b):
		return l.lexNumber(start), nil
	case b == '"':
		return l.lexString(start)
	case b == '\'':
		return l.lexChar(start)
	}

	r, _ := utf8.DecodeRune(l.src[l.pos:])
	if isIdentStart(r) || r == '#' {
		return l.lexIdent(start), nil
	}

	for _, sym := range symbols {
		if strings.HasPrefix(string(l.src[l.pos:]), sym) {
			l.pos += len(sym)
			return token{kind: tokSymbol, text: sym, start: start, end: l.pos}, nil
		}
	}

	return token{}, l.errorf("unexpected character %q", string(r))
}

func (l *lexer) lexNumber(start int) token {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}

	return token{kind: tokNumber, text: string(l.src[start:l.pos]), start: start, end: l.pos}
}

func (l *lexer) lexIdent(start int) token {
	if l.src[l.pos] == '#' {
		l.pos++
	}

	for l.pos < len(l.src) {
		r, size := utf8.DecodeRune(l.src[l.pos:])
		if !isIdentCont(r) {
			break
		}

		l.pos += size
	}

	return token{kind: tokIdent, text: string(l.src[start:l.pos]), start: start, end: l.pos}
}

func (l *lexer) lexString(start int) (token, error) {
	l.pos++ // opening quote

	for l.pos < len(l.src) {
		if l.src[l.pos] == '\\' && l.pos+1 < len(l.src) {
			l.pos += 2
			continue
		}

		if l.src[l.pos] == '"' {
			l.pos++
			return token{kind: tokString, text: string(l.src[start:l.pos]), start: start, end: l.pos}, nil
		}

		l.pos++
	}

	return token{}, l.errorf("unterminated string literal")
}

func (l *lexer) lexChar(start int) (token, error) {
	l.pos++ // opening quote

	if l.pos < len(l.src) && l.src[l.pos] == '\\' && l.pos+1 < len(l.src) {
		l.pos += 2
	} else if l.pos < len(l.src) {
		_, size := utf8.DecodeRune(l.src[l.pos:])
		l.pos += size
	}

	if l.pos >= len(l.src) || l.src[l.pos] != '\'' {
		return token{}, l.errorf("unterminated char literal")
	}

	l.pos++

	return token{kind: tokChar, text: string(l.src[start:l.pos]), start: start, end: l.pos}, nil
}
