package parser

import (
	"fmt"

	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/KimNorgaard/go-jast/ast"
	"github.com/KimNorgaard/go-jast/errors"
	"github.com/KimNorgaard/go-jast/token"
)

// Parser turns a token sequence into a syntax tree by recursive descent.
// A Parser is not safe for concurrent use; create one per sequence.
type Parser struct {
	tokens []token.Token
	pos    int
	depth  int
	opts   options
}

// New creates a new parser over tokens. The slice is never modified.
func New(tokens []token.Token, opts ...Option) (*Parser, error) {
	p := &Parser{
		tokens: tokens,
		opts:   options{maxDepth: DefaultMaxDepth},
	}
	for _, opt := range opts {
		if err := opt(&p.opts); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Parse parses tokens and returns the root node.
func Parse(tokens []token.Token, opts ...Option) (ast.Node, error) {
	p, err := New(tokens, opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Parse parses a single value from the start of the sequence. The first
// error ends the parse and is returned as a *errors.ParseError; no partial
// tree is returned. Tokens after the value are not inspected.
//
// The sequence must be terminated (normally by a token.EOF) so that the
// parser never reads past its end; doing so is a programming error and
// panics.
func (p *Parser) Parse() (ast.Node, error) {
	p.pos = 0
	p.depth = 0
	return p.parseValue()
}

// The contract for all parse functions is that they are entered with p.pos
// at the first token of the construct, and they return with p.pos at the
// token after it.

func (p *Parser) parseValue() (ast.Node, error) {
	switch tok := p.cur(); tok.Type {
	case token.LBRACE:
		return p.parseObject()
	case token.LBRACK:
		return p.parseList()
	case token.STRING, token.NUMBER, token.TRUE, token.FALSE, token.NULL:
		p.pos++
		return &ast.Primary{Value: tok.Literal}, nil
	default:
		return nil, p.errorf(errors.UnknownLiteral, "no value starts with %s", tok)
	}
}

func (p *Parser) parseObject() (ast.Node, error) {
	open, err := p.expect(token.LBRACE, "`{`")
	if err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	props := p.newPropertyMap()
	if !p.curIs(token.RBRACE) {
		for {
			keyPos := p.pos
			prop, err := p.parseProperty()
			if err != nil {
				return nil, err
			}
			key := prop.KeyText()
			if _, found := props.Get(key); found {
				return nil, &errors.ParseError{
					Kind: errors.DuplicateKey,
					Msg:  fmt.Sprintf("key %q is already defined", key),
					Key:  key,
					Pos:  keyPos,
				}
			}
			props.Put(key, prop)

			if !p.curIs(token.COMMA) {
				break
			}
			p.pos++ // consume ','
		}
	}

	closing, err := p.expect(token.RBRACE, "`}`")
	if err != nil {
		return nil, err
	}

	obj := &ast.Object{Open: open, Close: closing, Properties: make([]*ast.Property, 0, props.Size())}
	for _, v := range props.Values() {
		obj.Properties = append(obj.Properties, v.(*ast.Property))
	}
	return obj, nil
}

// newPropertyMap returns the map used to detect duplicate keys. Its
// iteration order becomes the property order of the object: sorted by key
// unless source order was requested.
func (p *Parser) newPropertyMap() maps.Map {
	if p.opts.preserveOrder {
		return linkedhashmap.New()
	}
	return treemap.NewWithStringComparator()
}

func (p *Parser) parseProperty() (*ast.Property, error) {
	key, err := p.expect(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}
	colon, err := p.expect(token.COLON, "`:`")
	if err != nil {
		return nil, err
	}
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &ast.Property{Key: key, Colon: colon, Value: value}, nil
}

func (p *Parser) parseList() (ast.Node, error) {
	open, err := p.expect(token.LBRACK, "`[`")
	if err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	elements := []ast.Node{}
	if !p.curIs(token.RBRACK) {
		for {
			el, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)

			if !p.curIs(token.COMMA) {
				break
			}
			p.pos++ // consume ','
		}
	}

	closing, err := p.expect(token.RBRACK, "`]`")
	if err != nil {
		return nil, err
	}
	return &ast.List{Open: open, Elements: elements, Close: closing}, nil
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return p.errorf(errors.MaxDepth, "nesting deeper than %d", p.opts.maxDepth)
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		panic(fmt.Sprintf("parser: read past end of token sequence at index %d; terminate the sequence with %s", p.pos, token.EOF))
	}
	return p.tokens[p.pos]
}

func (p *Parser) curIs(t token.Type) bool {
	return p.cur().Type == t
}

// expect consumes the current token if it has type t.
func (p *Parser) expect(t token.Type, what string) (token.Token, error) {
	tok := p.cur()
	if tok.Type != t {
		return token.Token{}, p.errorf(errors.UnexpectedToken, "expected %s, got %s", what, tok)
	}
	p.pos++
	return tok, nil
}

func (p *Parser) errorf(kind errors.Kind, format string, args ...any) *errors.ParseError {
	return &errors.ParseError{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: p.pos}
}
