package testutil

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/KimNorgaard/go-jast/token"
	"github.com/KimNorgaard/go-jast/tokenfile"
)

const fixtureSuffix = ".tokens.yaml"

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, fmt.Sprintf("testdata/%s", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Fixtures returns the names of the embedded token fixtures, without the
// .tokens.yaml suffix, sorted.
func Fixtures() ([]string, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*"+fixtureSuffix)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), fixtureSuffix))
	}
	sort.Strings(names)
	return names, nil
}

// Tokens decodes the named token fixture.
func Tokens(name string) ([]token.Token, error) {
	data, err := ReadTestData(name + fixtureSuffix)
	if err != nil {
		return nil, err
	}
	return tokenfile.Decode(bytes.NewReader(data))
}
