package jast

import (
	"fmt"
	"runtime"

	"github.com/KimNorgaard/go-jast/parser"
	"github.com/KimNorgaard/go-jast/printer"
)

type options struct {
	parserOpts  []parser.Option
	printerOpts []printer.Option
	concurrency int
}

// Option configures parsing and formatting. Options that do not apply to
// a call are ignored.
type Option func(*options) error

func newOptions(opts []Option) (*options, error) {
	o := &options{concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// KeepSourceOrder makes objects keep their properties in source order
// instead of sorting them by key.
func KeepSourceOrder() Option {
	return func(o *options) error {
		o.parserOpts = append(o.parserOpts, parser.PreserveOrder())
		return nil
	}
}

// MaxDepth sets the maximum nesting depth accepted by the parser.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("jast: max depth must be a positive integer")
		}
		o.parserOpts = append(o.parserOpts, parser.MaxDepth(n))
		return nil
	}
}

// Indent sets the number of spaces per level used by Format.
func Indent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return fmt.Errorf("jast: indent must not be negative")
		}
		o.printerOpts = append(o.printerOpts, printer.Indent(spaces))
		return nil
	}
}

// Concurrency bounds the number of buffers ParseAll parses at once.
func Concurrency(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("jast: concurrency must be a positive integer")
		}
		o.concurrency = n
		return nil
	}
}
