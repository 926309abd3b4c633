package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-jast/ast"
	"github.com/KimNorgaard/go-jast/token"
)

const (
	defaultIndent = 4
)

// Option configures a Formatter.
type Option func(*Formatter) error

// Indent sets the number of spaces per nesting level. Zero puts the whole
// value on one line with ", " between siblings.
func Indent(spaces int) Option {
	return func(f *Formatter) error {
		if spaces < 0 {
			return fmt.Errorf("printer: indent must not be negative")
		}
		f.indent = strings.Repeat(" ", spaces)
		return nil
	}
}

// Formatter writes a tree to an output stream as indented text, one child
// per line, with commas between siblings. Unlike Compact its output can be
// tokenized and parsed back.
type Formatter struct {
	w      io.Writer
	indent string
}

// NewFormatter returns a new formatter that writes to w.
func NewFormatter(w io.Writer, opts ...Option) (*Formatter, error) {
	f := &Formatter{w: w, indent: strings.Repeat(" ", defaultIndent)}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Format returns the indented rendering of node.
func Format(node ast.Node, opts ...Option) (string, error) {
	var out strings.Builder
	f, err := NewFormatter(&out, opts...)
	if err != nil {
		return "", err
	}
	if err := f.Format(node); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Format writes the rendering of node, starting at depth 0.
func (f *Formatter) Format(node ast.Node) error {
	return f.writeNode(node, 0)
}

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) writeIndent(depth int) error {
	if f.indent == "" {
		return nil
	}
	return f.write(strings.Repeat(f.indent, depth))
}

func (f *Formatter) writeNode(node ast.Node, depth int) error {
	switch n := node.(type) {
	case *ast.Primary:
		return f.write(n.Value.Quoted())

	case *ast.Object:
		children := make([]ast.Node, len(n.Properties))
		for i, p := range n.Properties {
			children[i] = p
		}
		return f.writeContainer(n.Open, children, n.Close, depth)

	case *ast.List:
		return f.writeContainer(n.Open, n.Elements, n.Close, depth)

	case *ast.Property:
		// The key/value pair is indented by its parent.
		if err := f.write(`"` + n.KeyText() + `"` + n.Colon.Literal.String() + " "); err != nil {
			return err
		}
		return f.writeNode(n.Value, depth)

	default:
		return fmt.Errorf("printer: unsupported node type for formatting: %T", n)
	}
}

func (f *Formatter) writeContainer(open token.Token, children []ast.Node, closing token.Token, depth int) error {
	if err := f.write(open.Literal.String()); err != nil {
		return err
	}
	if len(children) == 0 {
		return f.write(closing.Literal.String())
	}

	if f.indent == "" {
		for i, child := range children {
			if i > 0 {
				if err := f.write(", "); err != nil {
					return err
				}
			}
			if err := f.writeNode(child, depth+1); err != nil {
				return err
			}
		}
		return f.write(closing.Literal.String())
	}

	if err := f.write("\n"); err != nil {
		return err
	}
	for i, child := range children {
		if err := f.writeIndent(depth + 1); err != nil {
			return err
		}
		if err := f.writeNode(child, depth+1); err != nil {
			return err
		}
		if i < len(children)-1 {
			if err := f.write(","); err != nil {
				return err
			}
		}
		if err := f.write("\n"); err != nil {
			return err
		}
	}
	if err := f.writeIndent(depth); err != nil {
		return err
	}
	return f.write(closing.Literal.String())
}
