package errors_test

import (
	"errors"
	"fmt"
	"testing"

	jerrors "github.com/KimNorgaard/go-jast/errors"
	"github.com/stretchr/testify/require"
)

func TestParseErrorMessage(t *testing.T) {
	err := &jerrors.ParseError{Kind: jerrors.UnexpectedToken, Msg: "expected `:`", Pos: 3}
	require.Equal(t, "jast: unexpected token at token 3: expected `:`", err.Error())
}

func TestParseErrorIs(t *testing.T) {
	tests := []struct {
		kind     jerrors.Kind
		sentinel error
	}{
		{jerrors.UnexpectedToken, jerrors.ErrUnexpectedToken},
		{jerrors.UnknownLiteral, jerrors.ErrUnknownLiteral},
		{jerrors.DuplicateKey, jerrors.ErrDuplicateKey},
		{jerrors.MaxDepth, jerrors.ErrMaxDepth},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &jerrors.ParseError{Kind: tt.kind})
			require.ErrorIs(t, err, tt.sentinel)
			for _, other := range tests {
				if other.kind != tt.kind {
					require.NotErrorIs(t, err, other.sentinel)
				}
			}
		})
	}
}

func TestAs(t *testing.T) {
	pe, ok := jerrors.As(fmt.Errorf("ctx: %w", &jerrors.ParseError{Kind: jerrors.DuplicateKey, Key: "a"}))
	require.True(t, ok)
	require.Equal(t, "a", pe.Key)

	_, ok = jerrors.As(errors.New("plain"))
	require.False(t, ok)
}
