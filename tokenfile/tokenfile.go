// Package tokenfile reads token sequences serialized as YAML by an external
// tokenizer.
//
// A file is a sequence of mappings, one per token:
//
//	- {type: "{"}
//	- {type: identifier, value: name}
//	- {type: ":"}
//	- {type: number, value: 325.0}
//	- {type: "}"}
//	- {type: eof}
//
// The value may be omitted for delimiters (it defaults to the delimiter
// text), for true and false, and for null and eof.
package tokenfile

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-jast/token"
)

var typeNames = map[string]token.Type{
	"{":          token.LBRACE,
	"}":          token.RBRACE,
	"[":          token.LBRACK,
	"]":          token.RBRACK,
	":":          token.COLON,
	",":          token.COMMA,
	"identifier": token.IDENT,
	"ident":      token.IDENT,
	"string":     token.STRING,
	"number":     token.NUMBER,
	"null":       token.NULL,
	"true":       token.TRUE,
	"false":      token.FALSE,
	"eof":        token.EOF,
}

type item struct {
	Type  yaml.Node `yaml:"type"`
	Value yaml.Node `yaml:"value"`
}

// ReadFile decodes the token file at path.
func ReadFile(path string) ([]token.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open token file %s", path)
	}
	defer f.Close()

	toks, err := Decode(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "token file %s", path)
	}
	return toks, nil
}

// Decode reads a YAML token sequence from r. An EOF token is appended when
// the sequence does not end with one.
func Decode(r io.Reader) ([]token.Token, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []token.Token{token.EOFTok()}, nil
		}
		return nil, errors.Wrap(err, "failed to decode yaml")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, errors.Errorf("line %d: expected a sequence of tokens", root.Line)
	}

	toks := make([]token.Token, 0, len(root.Content)+1)
	for _, n := range root.Content {
		tok, err := decodeToken(n)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", n.Line)
		}
		toks = append(toks, tok)
	}
	if len(toks) == 0 || toks[len(toks)-1].Type != token.EOF {
		toks = append(toks, token.EOFTok())
	}
	return toks, nil
}

func decodeToken(n *yaml.Node) (token.Token, error) {
	var it item
	if err := n.Decode(&it); err != nil {
		return token.Token{}, errors.Wrap(err, "malformed token")
	}
	// Decoded as a node so that unquoted null, true and false keep their text.
	name := it.Type.Value
	typ, ok := typeNames[name]
	if !ok {
		typ, ok = typeNames[strings.ToLower(name)]
	}
	if !ok {
		return token.Token{}, errors.Errorf("unknown token type %q", name)
	}

	hasValue := it.Value.Kind != 0
	if hasValue && it.Value.Kind != yaml.ScalarNode {
		return token.Token{}, errors.Errorf("%s token value must be a scalar", name)
	}

	switch typ {
	case token.IDENT, token.STRING:
		if !hasValue {
			return token.Token{}, errors.Errorf("%s token requires a value", name)
		}
		return token.New(typ, token.String(it.Value.Value)), nil

	case token.NUMBER:
		if !hasValue {
			return token.Token{}, errors.New("number token requires a value")
		}
		var f float64
		if err := it.Value.Decode(&f); err != nil {
			return token.Token{}, errors.Wrapf(err, "invalid number %q", it.Value.Value)
		}
		return token.Num(f), nil

	case token.TRUE, token.FALSE:
		b := typ == token.TRUE
		if hasValue {
			if err := it.Value.Decode(&b); err != nil {
				return token.Token{}, errors.Wrapf(err, "invalid boolean %q", it.Value.Value)
			}
		}
		return token.New(typ, token.Bool(b)), nil

	case token.NULL, token.EOF:
		return token.New(typ, token.Null()), nil

	default:
		if hasValue {
			return token.New(typ, token.String(it.Value.Value)), nil
		}
		return token.Punct(typ), nil
	}
}
