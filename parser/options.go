package parser

import "fmt"

// DefaultMaxDepth is the nesting limit used when MaxDepth is not given.
const DefaultMaxDepth = 1000

type options struct {
	preserveOrder bool
	maxDepth      int
}

// Option configures a Parser.
type Option func(*options) error

// PreserveOrder makes objects keep their properties in source order.
// By default properties come out sorted by key.
func PreserveOrder() Option {
	return func(o *options) error {
		o.preserveOrder = true
		return nil
	}
}

// MaxDepth returns an Option that sets the maximum nesting depth of
// objects and lists. Deeper input fails with a max-depth error instead
// of growing the stack without bound.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("parser: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
