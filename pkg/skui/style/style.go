// Package style matches parsed selectors against components and
// resolves the cascade.
//
// Matching is purely structural: pseudo-classes never gate a match
// here. A consumer with live interaction state reads the pseudo-class
// tag off each matched rule and decides for itself whether hover or
// focus values apply; Resolve and ResolvePseudo implement the two
// common layerings on top of that.
package style

import (
	"github.com/markijohn/skui/pkg/skui/ast"
)

// Matches reports whether sel matches c given its ancestor chain,
// ordered outermost first with the direct parent last. A nil chain
// means a root component.
func Matches(sel ast.Selector, ancestors []*ast.Component, c *ast.Component) bool {
	switch s := sel.(type) {
	case ast.SimpleSelector:
		return matchSimple(s, c)

	case ast.GroupSelector:
		for _, branch := range s.Selectors {
			if Matches(branch, ancestors, c) {
				return true
			}
		}
		return false

	case ast.DescendantSelector:
		if !Matches(s.Right, ancestors, c) {
			return false
		}
		for i := len(ancestors) - 1; i >= 0; i-- {
			if Matches(s.Left, ancestors[:i], ancestors[i]) {
				return true
			}
		}
		return false

	case ast.ChildSelector:
		if !Matches(s.Right, ancestors, c) {
			return false
		}
		if len(ancestors) == 0 {
			return false
		}
		parent := ancestors[len(ancestors)-1]
		return Matches(s.Left, ancestors[:len(ancestors)-1], parent)

	default:
		return false
	}
}

func matchSimple(s ast.SimpleSelector, c *ast.Component) bool {
	for _, part := range s.Parts {
		switch part.Kind {
		case ast.SelTag:
			if c.Name != part.Name {
				return false
			}
		case ast.SelID:
			if c.ID != part.Name {
				return false
			}
		case ast.SelClass:
			if !c.HasClass(part.Name) {
				return false
			}
		}
	}
	return true
}

// Collect returns every style rule in doc whose selector matches c, in
// declaration order.
func Collect(doc *ast.Document, ancestors []*ast.Component, c *ast.Component) []*ast.Style {
	var out []*ast.Style
	for _, st := range doc.Styles {
		if Matches(st.Selector, ancestors, c) {
			out = append(out, st)
		}
	}
	return out
}

// Resolve computes the effective base properties for c: matching rules
// without a pseudo-class apply in declaration order, later declarations
// of a key overwriting earlier ones.
func Resolve(doc *ast.Document, ancestors []*ast.Component, c *ast.Component) map[string][]ast.CssValue {
	return resolve(doc, ancestors, c, ast.PseudoNone)
}

// ResolvePseudo layers one pseudo-state over the base: base properties
// first, then matching rules tagged with the given pseudo-class, again
// last write winning per key.
func ResolvePseudo(doc *ast.Document, ancestors []*ast.Component, c *ast.Component, pseudo ast.PseudoClass) map[string][]ast.CssValue {
	out := resolve(doc, ancestors, c, ast.PseudoNone)
	if pseudo == ast.PseudoNone {
		return out
	}
	for _, st := range Collect(doc, ancestors, c) {
		if st.Selector.PseudoClass() != pseudo {
			continue
		}
		for _, prop := range st.Properties {
			out[prop.Key] = prop.Values
		}
	}
	return out
}

func resolve(doc *ast.Document, ancestors []*ast.Component, c *ast.Component, pseudo ast.PseudoClass) map[string][]ast.CssValue {
	out := map[string][]ast.CssValue{}
	for _, st := range Collect(doc, ancestors, c) {
		if st.Selector.PseudoClass() != pseudo {
			continue
		}
		for _, prop := range st.Properties {
			out[prop.Key] = prop.Values
		}
	}
	return out
}
