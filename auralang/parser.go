package auralang

import (
	"fmt"
	"strings"
)

// Parse structures the token sequence into a Program. Parsing is
// single-pass; each construct owns its own terminator scan. Condition
// and loop-range text stays raw, to be substituted at generation time.
func Parse(tokens []*Token) (*Program, error) {
	p := &parser{tokens: tokens}
	prog := &Program{}

	for !p.atEnd() {
		start := p.idx
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
		} else if p.idx == start {
			// Declined without progress, skip the leading token.
			p.idx++
		}
	}

	return prog, nil
}

type parser struct {
	tokens []*Token
	idx    int
}

func (p *parser) atEnd() bool {
	return p.idx >= len(p.tokens)
}

func (p *parser) current() *Token {
	if p.atEnd() {
		return nil
	}
	return p.tokens[p.idx]
}

func (p *parser) advance() *Token {
	tok := p.current()
	if tok != nil {
		p.idx++
	}
	return tok
}

func (p *parser) atKeyword(text string) bool {
	tok := p.current()
	return tok != nil && tok.Kind == TokenKeyword && tok.Text == text
}

func (p *parser) atSymbol(text string) bool {
	tok := p.current()
	return tok != nil && tok.Kind == TokenSymbol && tok.Text == text
}

func (p *parser) parseStatement() (Node, error) {
	tok := p.current()

	if tok.Kind == TokenKeyword {
		switch tok.Text {
		case "create":
			return p.parseFunction()
		case "build":
			return p.parseClass()
		case "when", "unless":
			return p.parseConditional()
		case "loop", "repeat":
			return p.parseLoop()
		case "end":
			// Owned by the enclosing block, decline.
			return nil, nil
		}
	}

	if tok.Kind == TokenSymbol && tok.Text == ";" {
		return nil, nil
	}

	return p.parseExpression(), nil
}

// parseBlock parses statements until the literal "end" terminator,
// consuming it. Running out of tokens closes the block: the dialect
// has no unterminated-block failure, only the then/do scans fail.
func (p *parser) parseBlock() ([]Node, error) {
	var body []Node
	for !p.atEnd() {
		if p.atKeyword("end") {
			p.idx++
			break
		}
		start := p.idx
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			body = append(body, stmt)
		} else if p.idx == start {
			p.idx++
		}
	}
	return body, nil
}

func (p *parser) parseFunction() (Node, error) {
	intro := p.advance() // create

	// Skip filler words up to the next keyword, so forms like
	// "create a new function" still parse.
	for !p.atEnd() && p.current().Kind != TokenKeyword {
		p.idx++
	}
	if p.atEnd() {
		return nil, WithPos(fmt.Errorf(
			"%w: expected 'function' or 'method' after 'create'",
			ErrMissingConstructKeyword,
		), intro.Pos)
	}
	kw := p.advance()
	if kw.Text != "function" && kw.Text != "method" {
		return nil, WithPos(fmt.Errorf(
			"%w: expected 'function' or 'method', got '%s'",
			ErrMissingConstructKeyword, kw.Text,
		), kw.Pos)
	}

	name, err := p.requireIdentifier(kw.Pos, kw.Text+" name")
	if err != nil {
		return nil, err
	}

	var params []string
	if p.atSymbol("(") {
		p.idx++
		for !p.atEnd() && !p.atSymbol(")") {
			// Anything that is not an identifier (commas, stray
			// tokens) is skipped, not rejected.
			if tok := p.current(); tok.Kind == TokenIdentifier {
				params = append(params, tok.Text)
			}
			p.idx++
		}
		if p.atSymbol(")") {
			p.idx++
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FunctionDecl{
		NamePos: name.Pos,
		Name:    name.Text,
		Params:  params,
		Body:    body,
	}, nil
}

func (p *parser) parseClass() (Node, error) {
	intro := p.advance() // build

	for !p.atEnd() && p.current().Kind != TokenKeyword {
		p.idx++
	}
	if p.atEnd() {
		return nil, WithPos(fmt.Errorf(
			"%w: expected 'class' after 'build'",
			ErrMissingConstructKeyword,
		), intro.Pos)
	}
	kw := p.advance()
	if kw.Text != "class" {
		return nil, WithPos(fmt.Errorf(
			"%w: expected 'class', got '%s'",
			ErrMissingConstructKeyword, kw.Text,
		), kw.Pos)
	}

	name, err := p.requireIdentifier(kw.Pos, "class name")
	if err != nil {
		return nil, err
	}

	methods, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ClassDecl{
		NamePos: name.Pos,
		Name:    name.Text,
		Methods: methods,
	}, nil
}

func (p *parser) parseConditional() (Node, error) {
	intro := p.advance() // when or unless
	negate := intro.Text == "unless"

	cond, err := p.scanRawUntil("then", ErrUnterminatedConditional, intro.Pos)
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &Conditional{
		KwPos:  intro.Pos,
		Cond:   cond,
		Body:   body,
		Negate: negate,
	}, nil
}

func (p *parser) parseLoop() (Node, error) {
	intro := p.advance() // loop or repeat
	repeatForm := intro.Text == "repeat"

	cond, err := p.scanRawUntil("do", ErrUnterminatedLoop, intro.Pos)
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &Loop{
		KwPos:      intro.Pos,
		Cond:       cond,
		Body:       body,
		RepeatForm: repeatForm,
	}, nil
}

// parseExpression accumulates raw token text up to the next statement
// separator. The trailing ";" is consumed; a closing "end" is left for
// the enclosing block. Never fails: this is the fallback statement.
func (p *parser) parseExpression() Node {
	first := p.current()

	var parts []string
	for !p.atEnd() {
		tok := p.current()
		if tok.Kind == TokenKeyword && tok.Text == "end" {
			break
		}
		if tok.Kind == TokenSymbol && tok.Text == ";" {
			p.idx++
			break
		}
		parts = append(parts, tok.Raw())
		p.idx++
	}

	if len(parts) == 0 {
		return nil
	}
	return &ExprStmt{
		TextPos: first.Pos,
		Text:    strings.Join(parts, " "),
	}
}

func (p *parser) requireIdentifier(prev Pos, what string) (*Token, error) {
	tok := p.current()
	if tok == nil {
		return nil, WithPos(fmt.Errorf("%w: expected %s", ErrMissingIdentifier, what), prev)
	}
	if tok.Kind != TokenIdentifier {
		return nil, WithPos(fmt.Errorf(
			"%w: expected %s, got %s '%s'",
			ErrMissingIdentifier, what, tok.Kind, tok.Raw(),
		), tok.Pos)
	}
	p.idx++
	return tok, nil
}

func (p *parser) scanRawUntil(kw string, failure error, introPos Pos) (string, error) {
	var parts []string
	for {
		if p.atEnd() {
			return "", WithPos(failure, introPos)
		}
		tok := p.current()
		if tok.Kind == TokenKeyword && tok.Text == kw {
			p.idx++
			break
		}
		parts = append(parts, tok.Raw())
		p.idx++
	}
	return strings.Join(parts, " "), nil
}
