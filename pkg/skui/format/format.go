// Package format renders a parsed document for human inspection, either
// as an indented tree or as YAML.
package format

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/markijohn/skui/pkg/skui/ast"
)

// Tree renders doc as an indented text tree: styles first, then the
// component hierarchy.
func Tree(doc *ast.Document) string {
	var b strings.Builder
	for _, st := range doc.Styles {
		fmt.Fprintf(&b, "style %s\n", st.Selector.String())
		for _, prop := range st.Properties {
			parts := make([]string, len(prop.Values))
			for i, v := range prop.Values {
				parts[i] = v.String()
			}
			fmt.Fprintf(&b, "  %s: %s\n", prop.Key, strings.Join(parts, " "))
		}
	}
	for _, c := range doc.Components {
		writeComponent(&b, c, 0)
	}
	return b.String()
}

func writeComponent(b *strings.Builder, c *ast.Component, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(c.Name)

	if c.Params.Len() > 0 {
		b.WriteByte('(')
		if c.Params.Named {
			keys := sortedKeys(c.Params.Map)
			for i, k := range keys {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(b, "%s=%s", k, c.Params.Map[k].String())
			}
		} else {
			for i, v := range c.Params.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(v.String())
			}
		}
		b.WriteByte(')')
	} else {
		b.WriteString("()")
	}

	if c.ID != "" {
		b.WriteString(" #" + c.ID)
	}
	for _, cls := range c.Classes {
		b.WriteString(" ." + cls)
	}
	b.WriteByte('\n')

	for _, k := range sortedKeys(c.Properties) {
		fmt.Fprintf(b, "%s  %s: %s\n", indent, k, c.Properties[k].String())
	}
	for _, child := range c.Children {
		writeComponent(b, child, depth+1)
	}
}

// YAML renders doc as a YAML document with plain scalars and maps, so
// the output survives round-trips through generic YAML tooling.
func YAML(doc *ast.Document) (string, error) {
	out, err := yaml.Marshal(documentPlain(doc))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func documentPlain(doc *ast.Document) map[string]any {
	styles := make([]any, 0, len(doc.Styles))
	for _, st := range doc.Styles {
		props := make([]any, 0, len(st.Properties))
		for _, prop := range st.Properties {
			vals := make([]string, len(prop.Values))
			for i, v := range prop.Values {
				vals[i] = v.String()
			}
			props = append(props, map[string]any{prop.Key: vals})
		}
		styles = append(styles, map[string]any{
			"selector":   st.Selector.String(),
			"properties": props,
		})
	}

	comps := make([]any, 0, len(doc.Components))
	for _, c := range doc.Components {
		comps = append(comps, componentPlain(c))
	}

	return map[string]any{
		"styles":     styles,
		"components": comps,
	}
}

func componentPlain(c *ast.Component) map[string]any {
	out := map[string]any{"name": c.Name}

	if c.Params.Len() > 0 {
		if c.Params.Named {
			m := map[string]any{}
			for k, v := range c.Params.Map {
				m[k] = valuePlain(v)
			}
			out["params"] = m
		} else {
			args := make([]any, len(c.Params.Args))
			for i, v := range c.Params.Args {
				args[i] = valuePlain(v)
			}
			out["params"] = args
		}
	}
	if c.ID != "" {
		out["id"] = c.ID
	}
	if len(c.Classes) > 0 {
		out["classes"] = c.Classes
	}
	if len(c.Properties) > 0 {
		props := map[string]any{}
		for k, v := range c.Properties {
			props[k] = valuePlain(v)
		}
		out["properties"] = props
	}
	if len(c.Children) > 0 {
		children := make([]any, len(c.Children))
		for i, child := range c.Children {
			children[i] = componentPlain(child)
		}
		out["children"] = children
	}
	return out
}

func valuePlain(v ast.Value) any {
	switch val := v.(type) {
	case ast.Ident:
		return val.Name
	case ast.Bool:
		return val.Value
	case ast.Number:
		if val.IsFloat {
			return val.Float
		}
		return val.Int
	case ast.String:
		return val.Value
	case ast.Array:
		out := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			out[i] = valuePlain(e)
		}
		return out
	case ast.Map:
		out := map[string]any{}
		for k, e := range val.Entries {
			out[k] = valuePlain(e)
		}
		return out
	case ast.Relative:
		return val.String()
	case *ast.Component:
		return componentPlain(val)
	default:
		return nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
