package testutil

import (
	"testing"

	"github.com/KimNorgaard/go-jast/token"
	"github.com/stretchr/testify/require"
)

func TestFixtures(t *testing.T) {
	names, err := Fixtures()
	require.NoError(t, err)
	require.Contains(t, names, "scalar")
	require.Contains(t, names, "nested")

	toks, err := Tokens("scalar")
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.Num(325), token.EOFTok()}, toks)

	_, err = Tokens("does-not-exist")
	require.Error(t, err)
}

func TestDiff(t *testing.T) {
	require.Empty(t, Diff("same", "same"))
	d := Diff("hello world", "hello there")
	require.NotEmpty(t, d)
	require.Contains(t, d, "hello ")
}
