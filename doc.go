/*
Package jast parses and prints a JSON-like data format from a sequence of
tokens produced by an external tokenizer.

The token model lives in package token, the syntax tree in package ast, the
recursive-descent parser in package parser and the two renderers in package
printer. This package ties them together:

	tokens := []token.Token{
		token.Punct(token.LBRACE),
		token.Ident("b"), token.Punct(token.COLON), token.Num(1), token.Punct(token.COMMA),
		token.Ident("a"), token.Punct(token.COLON), token.Str("x"),
		token.Punct(token.RBRACE),
		token.EOFTok(),
	}

	node, err := jast.Parse(tokens)
	if err != nil {
		// handle error
	}

	jast.Print(node)         // {a:"x"b:1}
	out, _ := jast.Format(node)
	// {
	//     "a": "x",
	//     "b": 1
	// }

# Objects

An object may not define the same key twice; the parser stops with a
duplicate-key error naming the key. Properties are ordered by key in the
resulting tree. Use KeepSourceOrder to keep them in the order they were
written.

# Printing

Print reproduces the delimiter text stored on the tokens and writes no
separators between siblings, so its output is for inspection only when a
container holds more than one child. Format inserts commas, newlines and
four spaces of indentation per level (see Indent) and its output can be
tokenized and parsed again. Neither printer escapes the contents of
strings.

# Errors

Parse failures are *errors.ParseError values carrying a Kind and the index
of the offending token; match them with errors.Is against
errors.ErrUnexpectedToken, errors.ErrUnknownLiteral, errors.ErrDuplicateKey
and errors.ErrMaxDepth. The token sequence must be terminated, normally by
token.EOF; reading past its end is a programming error and panics.

# Concurrency

A parsed tree is never modified, so any number of goroutines may print it.
ParseAll parses many independent token sequences concurrently.
*/
package jast
