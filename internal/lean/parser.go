package lean

import "fmt"

// parser is per-call state; Parse allocates a fresh one every invocation so
// the package has no mutable state shared across calls (the reentrancy
// requirement of the C5 adapter contract).
type parser struct {
	toks []token
	pos  int
	src  []byte
}

// Parse consumes a UTF-8 source buffer and produces a single synthetic root
// node tagged "file" whose children are the top-level commands.
//
// Recovery rule: if the first command (the "header") fails to parse, no tree
// is returned at all. If the header succeeds but a later command fails, the
// commands parsed so far (including the header) are combined into the
// returned root alongside the error, so callers that only need mutation
// sites can still walk what was recovered. The whole buffer is tokenized
// before parsing, so a lexical error anywhere in the file returns no tree,
// even when the error lies after the header.
func Parse(filename string, src []byte) (*Node, error) {
	lx := newLexer(src)

	toks, err := tokenizeAll(lx)
	if err != nil {
		return nil, fmt.Errorf("lean: %s: %w", filename, err)
	}

	p := &parser{toks: toks, src: src}

	var children []*Node

	for !p.atEOF() {
		cmdStart := p.pos

		cmd, cmdErr := p.parseCommand()
		if cmdErr != nil {
			if len(children) == 0 {
				return nil, fmt.Errorf("lean: %s: %w", filename, cmdErr)
			}

			root := &Node{Kind: KindNode, Tag: "file", Children: children, ByteStart: children[0].ByteStart, ByteEnd: children[len(children)-1].ByteEnd}

			return root, fmt.Errorf("lean: %s: %w", filename, cmdErr)
		}

		if p.pos == cmdStart {
			// Defensive: never spin without consuming a token.
			p.pos++
			continue
		}

		children = append(children, cmd)
	}

	if len(children) == 0 {
		return &Node{Kind: KindNode, Tag: "file", ByteStart: 0, ByteEnd: len(src)}, nil
	}

	return &Node{Kind: KindNode, Tag: "file", Children: children, ByteStart: 0, ByteEnd: len(src)}, nil
}

func tokenizeAll(lx *lexer) ([]token, error) {
	var toks []token

	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.kind == tokEOF {
			return toks, nil
		}
	}
}

func (p *parser) atEOF() bool {
	return p.cur().kind == tokEOF
}

func (p *parser) cur() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}

	return p.toks[p.pos]
}

func (p *parser) advance() token {
	tok := p.cur()
	if tok.kind != tokEOF {
		p.pos++
	}

	return tok
}

func (p *parser) isSymbol(text string) bool {
	tok := p.cur()
	return tok.kind == tokSymbol && tok.text == text
}

func (p *parser) isKeyword(text string) bool {
	tok := p.cur()
	return tok.kind == tokIdent && tok.text == text
}

func (p *parser) expectSymbol(text string) (token, error) {
	if !p.isSymbol(text) {
		return token{}, fmt.Errorf("expected %q, got %q at offset %d", text, p.cur().text, p.cur().start)
	}

	return p.advance(), nil
}

// parseCommand parses one top-level command: a def/theorem binding or a
// #guard/#eval directive, which covers every shape appearing in the
// end-to-end scenarios this system must reproduce.
func (p *parser) parseCommand() (*Node, error) {
	start := p.cur().start

	switch {
	case p.isKeyword("def") || p.isKeyword("theorem"):
		return p.parseDef(start)
	case p.isKeyword("#guard"):
		return p.parseDirective(start, "#guard")
	case p.isKeyword("#eval"):
		return p.parseDirective(start, "#eval")
	default:
		return nil, fmt.Errorf("unrecognized command starting with %q at offset %d", p.cur().text, start)
	}
}

func (p *parser) parseDirective(start int, keyword string) (*Node, error) {
	p.advance() // consume keyword

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	end := body.ByteEnd

	return &Node{Kind: KindNode, Tag: "command:" + keyword, Children: []*Node{body}, ByteStart: start, ByteEnd: end}, nil
}

// parseDef parses `def name (params) : Type := expr` (and `theorem` with the
// same shape), skipping the signature down to `:=` since mutation operators
// only need the body expression's byte-accurate positions.
func (p *parser) parseDef(start int) (*Node, error) {
	kwTok := p.advance() // def | theorem

	if p.cur().kind != tokIdent {
		return nil, fmt.Errorf("expected name after %q at offset %d", kwTok.text, p.cur().start)
	}

	p.advance() // name

	for !p.isSymbol(":=") && !p.atEOF() {
		p.advance()
	}

	if _, err := p.expectSymbol(":="); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Node{Kind: KindNode, Tag: "command:" + kwTok.text, Children: []*Node{body}, ByteStart: start, ByteEnd: body.ByteEnd}, nil
}

// Expression grammar, precedence lowest to highest:
//
//	expr       := logicalOr
//	logicalOr  := logicalAnd (("||"|"∨") logicalAnd)*
//	logicalAnd := equality   (("&&"|"∧") equality)*
//	equality   := relational (("=="|"!="|"="|"≠"|"/=") relational)*
//	relational := additive   (("<"|"<="|"≤"|">"|">="|"≥") additive)*
//	additive   := multiplicative (("+"|"-") multiplicative)*
//	multiplicative := unary (("*"|"/"|"%") unary)*
//	unary      := ("!"|"¬"|"-")? application
//	application := primary primary*
//	primary    := number | string | char | ident | "(" expr ")" | ifThenElse
func (p *parser) parseExpr() (*Node, error) {
	return p.parseBinaryLevel(0)
}

var precedenceLevels = [][]string{
	{"||", "∨"},
	{"&&", "∧"},
	{"==", "!=", "=", "≠", "/="},
	{"<", "<=", "≤", ">", ">=", "≥"},
	{"+", "-"},
	{"*", "/", "%"},
}

func (p *parser) parseBinaryLevel(level int) (*Node, error) {
	if level >= len(precedenceLevels) {
		return p.parseUnary()
	}

	left, err := p.parseBinaryLevel(level + 1)
	if err != nil {
		return nil, err
	}

	for {
		opTok, ok := p.matchAny(precedenceLevels[level])
		if !ok {
			return left, nil
		}

		p.advance()

		right, err := p.parseBinaryLevel(level + 1)
		if err != nil {
			return nil, err
		}

		left = &Node{
			Kind:        KindNode,
			Tag:         "binop",
			Op:          opTok.text,
			Children:    []*Node{left, right},
			ByteStart:   left.ByteStart,
			ByteEnd:     right.ByteEnd,
			OpByteStart: opTok.start,
			OpByteEnd:   opTok.end,
		}
	}
}

func (p *parser) matchAny(ops []string) (token, bool) {
	tok := p.cur()
	if tok.kind != tokSymbol {
		return token{}, false
	}

	for _, op := range ops {
		if tok.text == op {
			return tok, true
		}
	}

	return token{}, false
}

func (p *parser) parseUnary() (*Node, error) {
	tok := p.cur()
	if tok.kind == tokSymbol && (tok.text == "!" || tok.text == "¬" || tok.text == "-") {
		p.advance()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &Node{Kind: KindNode, Tag: "unop", Op: tok.text, Children: []*Node{operand}, ByteStart: tok.start, ByteEnd: operand.ByteEnd}, nil
	}

	return p.parseApplication()
}

func (p *parser) parseApplication() (*Node, error) {
	first, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	args := []*Node{first}

	for p.startsPrimary() {
		arg, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	if len(args) == 1 {
		return first, nil
	}

	return &Node{Kind: KindNode, Tag: "apply", Children: args, ByteStart: args[0].ByteStart, ByteEnd: args[len(args)-1].ByteEnd}, nil
}

func (p *parser) startsPrimary() bool {
	tok := p.cur()

	switch tok.kind {
	case tokNumber, tokString, tokChar:
		return true
	case tokIdent:
		return tok.text != "then" && tok.text != "else" && !isKeyword(tok.text)
	case tokSymbol:
		return tok.text == "("
	default:
		return false
	}
}

func isKeyword(text string) bool {
	switch text {
	case "def", "theorem", "if", "then", "else", "#guard", "#eval":
		return true
	default:
		return false
	}
}

func (p *parser) parsePrimary() (*Node, error) {
	tok := p.cur()

	switch {
	case tok.kind == tokNumber:
		p.advance()
		return &Node{Kind: KindAtom, Tag: "number", Text: tok.text, ByteStart: tok.start, ByteEnd: tok.end}, nil

	case tok.kind == tokString:
		p.advance()
		return &Node{Kind: KindAtom, Tag: "string", Text: tok.text, ByteStart: tok.start, ByteEnd: tok.end}, nil

	case tok.kind == tokChar:
		p.advance()
		return &Node{Kind: KindAtom, Tag: "char", Text: tok.text, ByteStart: tok.start, ByteEnd: tok.end}, nil

	case tok.kind == tokIdent && tok.text == "if":
		return p.parseIfThenElse()

	case tok.kind == tokIdent:
		p.advance()
		return &Node{Kind: KindIdent, Name: tok.text, ByteStart: tok.start, ByteEnd: tok.end}, nil

	case tok.kind == tokSymbol && tok.text == "(":
		p.advance()

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expectSymbol(")"); err != nil {
			return nil, err
		}

		return inner, nil

	default:
		return &Node{Kind: KindMissing, ByteStart: tok.start, ByteEnd: tok.start}, fmt.Errorf("unexpected token %q at offset %d", tok.text, tok.start)
	}
}

func (p *parser) parseIfThenElse() (*Node, error) {
	ifTok, err := p.expectKeyword("if")
	if err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("then"); err != nil {
		return nil, err
	}

	thenExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("else"); err != nil {
		return nil, err
	}

	elseExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Node{
		Kind:      KindNode,
		Tag:       "ifThenElse",
		Children:  []*Node{cond, thenExpr, elseExpr},
		ByteStart: ifTok.start,
		ByteEnd:   elseExpr.ByteEnd,
	}, nil
}

func (p *parser) expectKeyword(text string) (token, error) {
	if !p.isKeyword(text) {
		return token{}, fmt.Errorf("expected %q, got %q at offset %d", text, p.cur().text, p.cur().start)
	}

	return p.advance(), nil
}
