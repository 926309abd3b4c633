package ast

import (
	"bytes"

	"github.com/KimNorgaard/go-jast/token"
)

// Node is an entry in the syntax tree. The set of nodes is closed:
// *Primary, *Object, *Property and *List are the only implementations.
type Node interface {
	// TokenLiteral returns the literal text of the token that opens the node.
	TokenLiteral() string
	// String returns a compact debugging representation of the node.
	String() string

	node()
}

// Primary is a leaf scalar value.
type Primary struct {
	Value token.Literal
}

func (p *Primary) node()                {}
func (p *Primary) TokenLiteral() string { return p.Value.String() }
func (p *Primary) String() string       { return p.Value.Quoted() }

// Object is a brace-delimited set of properties. No two properties share a key.
type Object struct {
	Open       token.Token // the '{' token
	Properties []*Property
	Close      token.Token // the '}' token
}

func (o *Object) node()                {}
func (o *Object) TokenLiteral() string { return o.Open.Literal.String() }
func (o *Object) String() string {
	var out bytes.Buffer
	out.WriteString(o.Open.Literal.String())
	for i, p := range o.Properties {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString(o.Close.Literal.String())
	return out.String()
}

// Get returns the property with the given key, or nil.
func (o *Object) Get(key string) *Property {
	for _, p := range o.Properties {
		if p.KeyText() == key {
			return p
		}
	}
	return nil
}

// Keys returns the property keys in tree order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.Properties))
	for _, p := range o.Properties {
		keys = append(keys, p.KeyText())
	}
	return keys
}

// Property is a single key/value pair inside an Object.
type Property struct {
	Key   token.Token // the token.IDENT token
	Colon token.Token // the ':' token
	Value Node
}

func (p *Property) node()                {}
func (p *Property) TokenLiteral() string { return p.Key.Literal.String() }
func (p *Property) String() string {
	return p.Key.Literal.String() + p.Colon.Literal.String() + p.Value.String()
}

// KeyText returns the literal text of the key.
func (p *Property) KeyText() string { return p.Key.Literal.String() }

// List is a bracket-delimited sequence of values.
type List struct {
	Open     token.Token // the '[' token
	Elements []Node
	Close    token.Token // the ']' token
}

func (l *List) node()                {}
func (l *List) TokenLiteral() string { return l.Open.Literal.String() }
func (l *List) String() string {
	var out bytes.Buffer
	out.WriteString(l.Open.Literal.String())
	for i, el := range l.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.String())
	}
	out.WriteString(l.Close.Literal.String())
	return out.String()
}
