package printer

import (
	"strings"

	"github.com/KimNorgaard/go-jast/ast"
)

// Compact renders a tree on a single line using the delimiter text stored
// on its tokens. Separators are not part of the tree and are not written,
// so containers with more than one child do not re-parse. It is meant for
// structural and debugging output; use Formatter for re-parseable text.
type Compact struct{}

var _ ast.Visitor[string] = Compact{}

// Print returns the compact rendering of node.
func Print(node ast.Node) string {
	return ast.Accept[string](node, Compact{})
}

func (Compact) VisitPrimary(p *ast.Primary) string {
	return p.Value.Quoted()
}

func (c Compact) VisitObject(o *ast.Object) string {
	var out strings.Builder
	out.WriteString(o.Open.Literal.String())
	for _, p := range o.Properties {
		out.WriteString(ast.Accept[string](p, c))
	}
	out.WriteString(o.Close.Literal.String())
	return out.String()
}

func (c Compact) VisitProperty(p *ast.Property) string {
	return p.Key.Literal.String() + p.Colon.Literal.String() + ast.Accept[string](p.Value, c)
}

func (c Compact) VisitList(l *ast.List) string {
	var out strings.Builder
	out.WriteString(l.Open.Literal.String())
	for _, el := range l.Elements {
		out.WriteString(ast.Accept[string](el, c))
	}
	out.WriteString(l.Close.Literal.String())
	return out.String()
}
