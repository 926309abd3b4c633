package ast

import "fmt"

// Visitor computes a value of type T from each kind of node.
type Visitor[T any] interface {
	VisitPrimary(p *Primary) T
	VisitObject(o *Object) T
	VisitProperty(p *Property) T
	VisitList(l *List) T
}

// Accept dispatches n to the matching method of v.
// It panics if n is nil or not one of the four node kinds.
func Accept[T any](n Node, v Visitor[T]) T {
	switch n := n.(type) {
	case *Primary:
		return v.VisitPrimary(n)
	case *Object:
		return v.VisitObject(n)
	case *Property:
		return v.VisitProperty(n)
	case *List:
		return v.VisitList(n)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

// Inspect traverses the tree rooted at n in depth-first order, calling f
// for each node. Children are skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	switch n := n.(type) {
	case *Object:
		for _, p := range n.Properties {
			Inspect(p, f)
		}
	case *Property:
		Inspect(n.Value, f)
	case *List:
		for _, el := range n.Elements {
			Inspect(el, f)
		}
	}
}
