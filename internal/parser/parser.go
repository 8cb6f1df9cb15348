package parser

import (
	"fmt"

	"github.com/KimNorgaard/go-jsonc/ast"
	"github.com/KimNorgaard/go-jsonc/errors"
	"github.com/KimNorgaard/go-jsonc/internal/token"
)

// Option configures a Parser.
type Option func(*Parser)

// MaxDepth limits how deeply objects and arrays may nest. Zero or a
// negative n means no limit.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// Parser holds the state of the parser. Tokens are consumed strictly front
// to back; the parser never rewinds.
type Parser struct {
	tokens []token.Token
	pos    int
	eof    token.Token

	depth    int
	maxDepth int
}

// New creates a parser over a complete token sequence.
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens, eof: eofAfter(tokens)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses the document and returns its root, which is a
// *ast.Statement or an *ast.Array. Whitespace may surround the root; any
// other token after it is an error. The first grammar violation aborts
// parsing with a *errors.GrammarError.
func (p *Parser) Parse() (ast.Expr, error) {
	p.skipWhitespace()
	root, err := p.parseRoot()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if !p.curTokenIs(token.EOF) {
		return nil, p.unexpected("unexpected token after root value")
	}
	return root, nil
}

// The contract for all parse functions is that they are entered with
// curToken being the first token of the construct, and they return with
// curToken pointing to the token after it.

func (p *Parser) parseRoot() (ast.Expr, error) {
	switch p.curToken().Type {
	case token.LBRACK:
		return p.parseArray()
	case token.LBRACE:
		return p.parseObject()
	}
	return nil, p.unexpected("expected '{' or '['")
}

func (p *Parser) parseObject() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	obj := &ast.Statement{Children: []ast.Expr{}}
	p.nextToken() // Consume '{'

	for {
		member, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		if ast.IsNoOp(member) {
			break
		}
		obj.Children = append(obj.Children, member)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	return obj, nil
}

// parseMember returns a *ast.Pair, or NoOp once the closing brace has been
// consumed.
func (p *Parser) parseMember() (ast.Expr, error) {
	p.skipWhitespace()
	switch p.curToken().Type {
	case token.QUOTE:
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if p.curTokenIs(token.RBRACK) {
			return nil, p.unexpected(fmt.Sprintf("expected value for key %q", key))
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		return &ast.Pair{Key: key, Value: value}, nil
	case token.RBRACE:
		p.nextToken()
		return ast.NoOp{}, nil
	case token.LBRACE:
		return nil, p.unexpected("expected key, found a nested object without one")
	}
	return nil, p.unexpected("expected '\"' to open a key or '}'")
}

func (p *Parser) parseKey() (string, error) {
	if !p.curTokenIs(token.QUOTE) {
		return "", p.unexpected("expected '\"' to open a key")
	}
	p.nextToken()
	key, err := p.parseString()
	if err != nil {
		return "", err
	}

	p.skipWhitespace()
	if !p.curTokenIs(token.COLON) {
		return "", p.unexpected("expected ':' after key")
	}
	p.nextToken() // Consume ':'
	p.skipWhitespace()
	return key, nil
}

// parseValue returns NoOp when it meets ']', which is how the array loop
// learns that the array has ended.
func (p *Parser) parseValue() (ast.Expr, error) {
	p.skipWhitespace()
	tok := p.curToken()
	switch tok.Type {
	case token.LBRACE:
		return p.parseObject()
	case token.QUOTE:
		p.nextToken()
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		return &ast.Value{Raw: s}, nil
	case token.NUMBER, token.BOOLEAN:
		p.nextToken()
		p.skipWhitespace()
		return &ast.Value{Raw: tok.Literal}, nil
	case token.LBRACK:
		return p.parseArray()
	case token.RBRACK:
		p.nextToken()
		return ast.NoOp{}, nil
	}
	return nil, p.unexpected("expected a value")
}

func (p *Parser) parseArray() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	array := &ast.Array{Children: []ast.Expr{}}
	p.nextToken() // Consume '['

	for {
		start := p.curToken()
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		switch value.(type) {
		case ast.NoOp:
			return array, nil
		case *ast.Pair:
			return nil, p.errorAt(start, "arrays hold values, not keyed members")
		}
		array.Children = append(array.Children, value)

		p.skipWhitespace()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
}

// parseString is entered just after an opening quote. It joins the
// literal text of every token up to the next unescaped quote, which is
// consumed but not included.
func (p *Parser) parseString() (string, error) {
	start := p.pos
	for {
		switch p.curToken().Type {
		case token.EOF:
			return "", p.unexpected("unterminated string")
		case token.QUOTE:
			s := token.Join(p.tokens[start:p.pos])
			p.nextToken()
			return s, nil
		}
		p.nextToken()
	}
}

func (p *Parser) curToken() token.Token {
	if p.pos >= len(p.tokens) {
		return p.eof
	}
	return p.tokens[p.pos]
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken().Type == t
}

// skipWhitespace drops at most one token: whitespace runs are maximal, so
// two never follow each other.
func (p *Parser) skipWhitespace() {
	if p.curTokenIs(token.WHITESPACE) {
		p.nextToken()
	}
}

func (p *Parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return p.unexpected(fmt.Sprintf("maximum nesting depth of %d exceeded", p.maxDepth))
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) unexpected(msg string) error {
	return p.errorAt(p.curToken(), msg)
}

func (p *Parser) errorAt(tok token.Token, msg string) error {
	err := &errors.GrammarError{
		Message: msg,
		Offset:  tok.Offset,
		Line:    tok.Line,
		Column:  tok.Column,
	}
	if tok.Type == token.EOF {
		err.Message += ", reached end of input"
		return err
	}
	err.Found = string(tok.Type)
	err.Literal = tok.Literal
	return err
}

// eofAfter returns an EOF token positioned just past the last token.
func eofAfter(tokens []token.Token) token.Token {
	eof := token.Token{Type: token.EOF, Line: 1, Column: 1}
	if len(tokens) == 0 {
		return eof
	}
	last := tokens[len(tokens)-1]
	eof.Offset = last.Offset + len(last.Literal)
	eof.Line, eof.Column = last.Line, last.Column
	for _, r := range last.Literal {
		if r == '\n' {
			eof.Line++
			eof.Column = 1
		} else {
			eof.Column++
		}
	}
	return eof
}
