package mapper_test

import (
	"testing"

	"github.com/KimNorgaard/go-jast/ast"
	"github.com/KimNorgaard/go-jast/mapper"
	"github.com/KimNorgaard/go-jast/printer"
	"github.com/KimNorgaard/go-jast/token"
	"github.com/stretchr/testify/require"
)

func TestBuildScalars(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected token.Literal
	}{
		{"string", "s", token.String("s")},
		{"int", 42, token.Number(42)},
		{"uint8", uint8(7), token.Number(7)},
		{"float", 325.0, token.Number(325)},
		{"bool", true, token.Bool(true)},
		{"nil", nil, token.Null()},
		{"nil pointer", (*int)(nil), token.Null()},
		{"nil slice", []int(nil), token.Null()},
		{"nil map", map[string]int(nil), token.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := mapper.Build(tt.in)
			require.NoError(t, err)
			require.Equal(t, &ast.Primary{Value: tt.expected}, node)
		})
	}
}

func TestBuildMapSortsKeys(t *testing.T) {
	node, err := mapper.Build(map[string]any{"b": 1, "a": []any{true, nil}, "c": map[string]int{}})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, node.(*ast.Object).Keys())
	require.Equal(t, `{a:[truenull]b:1c:{}}`, printer.Print(node))
}

func TestBuildStruct(t *testing.T) {
	type inner struct {
		Y *string `jast:"y"`
	}
	type outer struct {
		X       []any  `jast:"x"`
		Skip    string `jast:"-"`
		Empty   string `jast:"empty,omitempty"`
		Name    string
		private int
	}

	node, err := mapper.Build(outer{X: []any{true, inner{}}, Skip: "s", Name: "n", private: 1})
	require.NoError(t, err)

	out, err := printer.Format(node)
	require.NoError(t, err)
	require.Equal(t, "{\n    \"x\": [\n        true,\n        {\n            \"y\": null\n        }\n    ],\n    \"Name\": \"n\"\n}", out)
}

func TestBuildErrors(t *testing.T) {
	_, err := mapper.Build(map[int]string{1: "a"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "map key type must be a string")

	_, err = mapper.Build(make(chan int))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported type")

	_, err = mapper.Build([]any{func() {}})
	require.Error(t, err)
}

func TestBuildThenMap(t *testing.T) {
	type config struct {
		Name  string   `jast:"name"`
		Ports []int    `jast:"ports"`
		Debug bool     `jast:"debug"`
		Ratio *float64 `jast:"ratio"`
	}
	ratio := 0.5
	in := config{Name: "svc", Ports: []int{80, 443}, Debug: true, Ratio: &ratio}

	node, err := mapper.Build(in)
	require.NoError(t, err)

	var out config
	require.NoError(t, mapper.Map(node, &out))
	require.Equal(t, in, out)
}
