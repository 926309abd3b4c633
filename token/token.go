package token

import (
	"strconv"
)

// Type is the type of a token.
type Type string

// Token represents a lexical token handed over by a tokenizer.
type Token struct {
	Type    Type
	Literal Literal
}

const (
	// Special tokens
	EOF Type = "EOF" // End of input

	// Literals
	IDENT  Type = "IDENT"  // key, name
	NUMBER Type = "NUMBER" // 123.45
	STRING Type = "STRING" // "hello world"

	// Delimiters
	LBRACE Type = "{"
	RBRACE Type = "}"
	LBRACK Type = "["
	RBRACK Type = "]"
	COMMA  Type = ","
	COLON  Type = ":"

	// Keywords
	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"
	NULL  Type = "NULL"
)

var keywords = map[string]Type{
	"true":  TRUE,
	"false": FALSE,
	"null":  NULL,
}

// LookupKeyword checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupKeyword(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsDelimiter reports whether t is one of the structural characters.
func (t Type) IsDelimiter() bool {
	switch t {
	case LBRACE, RBRACE, LBRACK, RBRACK, COMMA, COLON:
		return true
	}
	return false
}

// New returns a token of type t carrying lit.
func New(t Type, lit Literal) Token {
	return Token{Type: t, Literal: lit}
}

// Punct returns a delimiter token whose literal is the delimiter text.
func Punct(t Type) Token {
	return Token{Type: t, Literal: String(string(t))}
}

// Ident returns an identifier token.
func Ident(name string) Token { return Token{Type: IDENT, Literal: String(name)} }

// Str returns a string token.
func Str(s string) Token { return Token{Type: STRING, Literal: String(s)} }

// Num returns a number token.
func Num(f float64) Token { return Token{Type: NUMBER, Literal: Number(f)} }

// True returns a true keyword token.
func True() Token { return Token{Type: TRUE, Literal: Bool(true)} }

// False returns a false keyword token.
func False() Token { return Token{Type: FALSE, Literal: Bool(false)} }

// NullTok returns a null keyword token.
func NullTok() Token { return Token{Type: NULL, Literal: Null()} }

// EOFTok returns the end-of-input token.
func EOFTok() Token { return Token{Type: EOF, Literal: Null()} }

// String returns a short description of the token for diagnostics.
func (t Token) String() string {
	if t.Type.IsDelimiter() {
		return "`" + string(t.Type) + "`"
	}
	if t.Type == EOF {
		return "end of input"
	}
	return string(t.Type) + "(" + t.Literal.Quoted() + ")"
}

// LiteralKind discriminates the payload of a Literal.
type LiteralKind uint8

const (
	NullKind LiteralKind = iota
	StringKind
	NumberKind
	BoolKind
)

func (k LiteralKind) String() string {
	switch k {
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case BoolKind:
		return "bool"
	default:
		return "null"
	}
}

// Literal is a scalar value: a string, a number, a boolean or null.
// The zero value is null.
type Literal struct {
	kind LiteralKind
	str  string
	num  float64
	b    bool
}

// String returns a string literal.
func String(s string) Literal { return Literal{kind: StringKind, str: s} }

// Number returns a number literal.
func Number(f float64) Literal { return Literal{kind: NumberKind, num: f} }

// Bool returns a boolean literal.
func Bool(b bool) Literal { return Literal{kind: BoolKind, b: b} }

// Null returns the null literal.
func Null() Literal { return Literal{} }

// Kind returns the kind of the literal.
func (l Literal) Kind() LiteralKind { return l.kind }

// Str returns the string payload and whether l is a string literal.
func (l Literal) Str() (string, bool) { return l.str, l.kind == StringKind }

// Float returns the number payload and whether l is a number literal.
func (l Literal) Float() (float64, bool) { return l.num, l.kind == NumberKind }

// Boolean returns the bool payload and whether l is a boolean literal.
func (l Literal) Boolean() (bool, bool) { return l.b, l.kind == BoolKind }

// IsNull reports whether l is the null literal.
func (l Literal) IsNull() bool { return l.kind == NullKind }

// String returns the canonical text of the literal. Numbers use the
// shortest decimal form, so 325.0 renders as "325".
func (l Literal) String() string {
	switch l.kind {
	case StringKind:
		return l.str
	case NumberKind:
		return strconv.FormatFloat(l.num, 'f', -1, 64)
	case BoolKind:
		return strconv.FormatBool(l.b)
	default:
		return "null"
	}
}

// Quoted is like String but wraps string literals in double quotes.
// The contents are not escaped.
func (l Literal) Quoted() string {
	if l.kind == StringKind {
		return `"` + l.str + `"`
	}
	return l.String()
}
