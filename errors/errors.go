package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a parse failure.
type Kind uint8

const (
	// UnexpectedToken means the next token does not match what the
	// current production requires.
	UnexpectedToken Kind = iota + 1
	// UnknownLiteral means the next token cannot start any value.
	UnknownLiteral
	// DuplicateKey means an object contains two properties with the same key.
	DuplicateKey
	// MaxDepth means containers are nested deeper than allowed.
	MaxDepth
)

func (k Kind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnknownLiteral:
		return "unknown literal"
	case DuplicateKey:
		return "duplicate key"
	case MaxDepth:
		return "max depth exceeded"
	default:
		return "parse error"
	}
}

// Sentinels matched by errors.Is against a *ParseError of the same kind.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnknownLiteral  = errors.New("unknown literal")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrMaxDepth        = errors.New("max depth exceeded")
)

// ParseError represents the error that stopped a parse.
// It includes the index of the offending token.
type ParseError struct {
	Kind Kind
	Msg  string
	Key  string // offending key, set for DuplicateKey
	Pos  int    // index into the token sequence
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jast: %s at token %d: %s", e.Kind, e.Pos, e.Msg)
}

// Is reports whether target is the sentinel for e's kind.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrUnexpectedToken:
		return e.Kind == UnexpectedToken
	case ErrUnknownLiteral:
		return e.Kind == UnknownLiteral
	case ErrDuplicateKey:
		return e.Kind == DuplicateKey
	case ErrMaxDepth:
		return e.Kind == MaxDepth
	}
	return false
}

// As returns the *ParseError in err's chain, if any.
func As(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
