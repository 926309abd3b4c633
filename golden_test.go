package jast_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-jast"
	"github.com/KimNorgaard/go-jast/internal/testutil"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// render produces the golden representation of a fixture: both printers
// for a successful parse, the error message otherwise.
func render(t *testing.T, name string) []byte {
	t.Helper()
	toks, err := testutil.Tokens(name)
	require.NoError(t, err)

	node, err := jast.Parse(toks)
	if err != nil {
		return []byte("error: " + err.Error() + "\n")
	}
	indented, err := jast.Format(node)
	require.NoError(t, err)
	return []byte("compact: " + jast.Print(node) + "\nindented:\n" + indented + "\n")
}

func TestGolden(t *testing.T) {
	names, err := testutil.Fixtures()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			actual := render(t, name)

			goldenFile := filepath.Join("testdata", name+".golden")
			// To refresh, run: go test -run TestGolden -update
			if *update {
				err := os.WriteFile(goldenFile, actual, 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			if diff := testutil.Diff(string(expected), string(actual)); diff != "" {
				t.Fatalf("output does not match %s:\n%s", goldenFile, diff)
			}
		})
	}
}
