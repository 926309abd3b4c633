package jast

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/KimNorgaard/go-jast/ast"
	"github.com/KimNorgaard/go-jast/mapper"
	"github.com/KimNorgaard/go-jast/parser"
	"github.com/KimNorgaard/go-jast/printer"
	"github.com/KimNorgaard/go-jast/token"
)

// Parse parses a terminated token sequence into a syntax tree.
// Failures are reported as *errors.ParseError.
func Parse(tokens []token.Token, opts ...Option) (ast.Node, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens, o.parserOpts...)
}

// Unmarshal parses tokens and stores the result in the value pointed to
// by v. See mapper.Map for how values are converted.
func Unmarshal(tokens []token.Token, v any, opts ...Option) error {
	node, err := Parse(tokens, opts...)
	if err != nil {
		return err
	}
	return mapper.Map(node, v)
}

// Marshal converts v into a tree and returns its indented rendering.
// See mapper.Build for how values are converted.
func Marshal(v any, opts ...Option) (string, error) {
	node, err := mapper.Build(v)
	if err != nil {
		return "", err
	}
	return Format(node, opts...)
}

// Print returns the compact, single-line rendering of node.
func Print(node ast.Node) string {
	return printer.Print(node)
}

// Format returns the indented rendering of node.
func Format(node ast.Node, opts ...Option) (string, error) {
	o, err := newOptions(opts)
	if err != nil {
		return "", err
	}
	return printer.Format(node, o.printerOpts...)
}

// A BufferError records the failure of one buffer passed to ParseAll.
type BufferError struct {
	Index int
	Err   error
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("buffer %d: %v", e.Index, e.Err)
}

func (e *BufferError) Unwrap() error { return e.Err }

// ParseAll parses independent token sequences concurrently, each with its
// own parser. The returned slice is in input order; a buffer that failed
// has a nil node and is reported in the returned error, which aggregates a
// *BufferError per failure. If ctx is cancelled, ParseAll stops starting
// new parses and returns ctx.Err().
func ParseAll(ctx context.Context, buffers [][]token.Token, opts ...Option) ([]ast.Node, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if _, err := parser.New(nil, o.parserOpts...); err != nil {
		return nil, err
	}

	nodes := make([]ast.Node, len(buffers))
	errs := make([]error, len(buffers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, toks := range buffers {
		if gctx.Err() != nil {
			break
		}
		i, toks := i, toks
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			node, err := parser.Parse(toks, o.parserOpts...)
			if err != nil {
				errs[i] = &BufferError{Index: i, Err: err}
				return nil
			}
			nodes[i] = node
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return nodes, result.ErrorOrNil()
}
