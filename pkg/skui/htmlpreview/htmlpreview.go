// Package htmlpreview renders a parsed document as a static HTML page.
//
// The preview is a debugging aid: component names become lowercase
// tags, ids and classes carry over, matched style rules land on the
// style attribute, and inline properties become data attributes.
// Relative parameter references are resolved against the instantiation
// chain, the same way a real widget builder would.
package htmlpreview

import (
	"fmt"
	"io"
	"sort"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/markijohn/skui/pkg/skui/ast"
	"github.com/markijohn/skui/pkg/skui/scope"
	"github.com/markijohn/skui/pkg/skui/style"
)

// Render writes a complete HTML page for doc.
func Render(w io.Writer, doc *ast.Document) error {
	page := h.Doctype(
		h.HTML(
			h.Head(h.TitleEl(g.Text("skui preview"))),
			h.Body(Fragment(doc)),
		),
	)
	return page.Render(w)
}

// Fragment renders the document's root components without the
// surrounding page scaffolding.
func Fragment(doc *ast.Document) g.Node {
	r := &renderer{doc: doc, stack: scope.New()}
	nodes := make([]g.Node, 0, len(doc.Components))
	for _, c := range doc.Components {
		nodes = append(nodes, r.component(nil, c))
	}
	return g.Group(nodes)
}

type renderer struct {
	doc   *ast.Document
	stack *scope.Stack
}

func (r *renderer) component(ancestors []*ast.Component, c *ast.Component) g.Node {
	nodes := []g.Node{}

	if c.ID != "" {
		nodes = append(nodes, h.ID(c.ID))
	}
	if len(c.Classes) > 0 {
		nodes = append(nodes, h.Class(strings.Join(c.Classes, " ")))
	}
	if css := inlineStyle(r.doc, ancestors, c); css != "" {
		nodes = append(nodes, h.Style(css))
	}

	for _, key := range sortedPropKeys(c.Properties) {
		v, ok := r.stack.ResolveValue(c.Properties[key])
		if !ok {
			v = c.Properties[key]
		}
		nodes = append(nodes, g.Attr("data-"+strings.ToLower(key), valueText(v)))
	}

	// Positional string arguments render as text content.
	if !c.Params.Named {
		for _, arg := range c.Params.Args {
			v, ok := r.stack.ResolveValue(arg)
			if !ok {
				v = arg
			}
			if s, ok := ast.StringOf(v); ok {
				nodes = append(nodes, g.Text(s))
			}
		}
	}

	r.stack.Push(c.Params)
	childAncestors := append(ancestors, c)
	for _, child := range c.Children {
		nodes = append(nodes, r.component(childAncestors, child))
	}
	r.stack.Pop()

	return g.El(strings.ToLower(c.Name), nodes...)
}

// inlineStyle flattens the resolved cascade for c into a style
// attribute value, keys sorted for stable output.
func inlineStyle(doc *ast.Document, ancestors []*ast.Component, c *ast.Component) string {
	resolved := style.Resolve(doc, ancestors, c)
	if len(resolved) == 0 {
		return ""
	}
	keys := make([]string, 0, len(resolved))
	for k := range resolved {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		vals := make([]string, len(resolved[k]))
		for i, v := range resolved[k] {
			vals[i] = v.String()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(vals, " ")))
	}
	return strings.Join(parts, "; ")
}

func valueText(v ast.Value) string {
	if s, ok := ast.StringOf(v); ok {
		return s
	}
	return v.String()
}

func sortedPropKeys(m map[string]ast.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
