package tokenfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-jast/token"
	"github.com/KimNorgaard/go-jast/tokenfile"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	input := `
- {type: "{"}
- {type: identifier, value: name}
- {type: ":"}
- {type: number, value: 325.0}
- {type: ","}
- {type: ident, value: flags}
- {type: ":"}
- {type: "["}
- {type: true}
- {type: ","}
- {type: false}
- {type: ","}
- {type: null}
- {type: ","}
- {type: string, value: "hello"}
- {type: "]"}
- {type: "}"}
- {type: eof}
`
	toks, err := tokenfile.Decode(strings.NewReader(input))
	require.NoError(t, err)

	expected := []token.Token{
		token.Punct(token.LBRACE),
		token.Ident("name"),
		token.Punct(token.COLON),
		token.Num(325),
		token.Punct(token.COMMA),
		token.Ident("flags"),
		token.Punct(token.COLON),
		token.Punct(token.LBRACK),
		token.True(),
		token.Punct(token.COMMA),
		token.False(),
		token.Punct(token.COMMA),
		token.NullTok(),
		token.Punct(token.COMMA),
		token.Str("hello"),
		token.Punct(token.RBRACK),
		token.Punct(token.RBRACE),
		token.EOFTok(),
	}
	require.Equal(t, expected, toks)
}

func TestDecodeAppendsEOF(t *testing.T) {
	toks, err := tokenfile.Decode(strings.NewReader(`- {type: number, value: 1}`))
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.Num(1), token.EOFTok()}, toks)

	toks, err = tokenfile.Decode(strings.NewReader(``))
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.EOFTok()}, toks)

	toks, err = tokenfile.Decode(strings.NewReader(`[]`))
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.EOFTok()}, toks)
}

func TestDecodeExplicitValues(t *testing.T) {
	input := `
- {type: "{", value: "{ "}
- {type: STRING, value: 42}
- {type: TRUE, value: false}
`
	toks, err := tokenfile.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, token.New(token.LBRACE, token.String("{ ")), toks[0])
	require.Equal(t, token.Str("42"), toks[1])
	require.Equal(t, token.New(token.TRUE, token.Bool(false)), toks[2])
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"not a sequence", `type: number`, "expected a sequence"},
		{"unknown type", "- {type: \"{\"}\n- {type: bogus}", "line 2: unknown token type \"bogus\""},
		{"missing string value", `- {type: string}`, "requires a value"},
		{"missing number value", `- {type: number}`, "requires a value"},
		{"bad number", `- {type: number, value: abc}`, "invalid number"},
		{"non-scalar value", `- {type: string, value: [1]}`, "must be a scalar"},
		{"malformed item", `- just-a-string`, "malformed token"},
		{"bad yaml", `- {type: [`, "failed to decode yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokenfile.Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- {type: \"[\"}\n- {type: \"]\"}\n"), 0o644))

	toks, err := tokenfile.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.Punct(token.LBRACK), token.Punct(token.RBRACK), token.EOFTok()}, toks)

	_, err = tokenfile.ReadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.yaml")
}
