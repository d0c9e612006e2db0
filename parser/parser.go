/*
File    : tinyjs/parser/parser.go

Package parser converts a token stream into an ast.Program. The grammar is
deliberately flat: there is no precedence table, so a chain of binary
operators parses right-associatively (`a - b - c` is `a - (b - c)`).
Parsing fails fast — the first malformed construct returns a *tinyerr.Error
and parsing stops, rather than collecting a list of errors to report later.
*/
package parser

import (
	"tinyjs/ast"
	"tinyjs/lexer"
	"tinyjs/tinyerr"
	"tinyjs/token"
)

// Parser holds the current token and the one after it. Every grammar
// decision is made on curr: an Assignment or Increment is recognized by
// the operator token that follows an already-parsed operand.
type Parser struct {
	lex  *lexer.Lexer
	curr token.Token
	next token.Token
}

// New creates a Parser over src and primes the two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	p.advance()
	return p
}

// advance shifts the lookahead forward by one token.
func (p *Parser) advance() {
	p.curr = p.next
	p.next = p.lex.NextToken()
}

// expect verifies curr has the given type, consumes it, and advances past
// it. It returns a ParseError naming what was expected if it does not.
func (p *Parser) expect(typ token.Type) error {
	if p.curr.Type != typ {
		return p.errorf("expected %s, got %s", typ, p.curr.Type)
	}
	p.advance()
	return nil
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return tinyerr.NewAt(tinyerr.ParseError, p.curr.Line, p.curr.Column, format, args...)
}

// Parse consumes the entire token stream and returns the resulting program,
// or the first parse error encountered.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.curr.Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// skipSemi consumes one optional trailing semicolon. Statement terminators
// are not mandatory between every statement pair, mirroring the teacher's
// tolerant statement-separator handling.
func (p *Parser) skipSemi() {
	if p.curr.Type == token.SEMI {
		p.advance()
	}
}
