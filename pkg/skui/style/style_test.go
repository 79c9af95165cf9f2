package style

import (
	"testing"

	"github.com/markijohn/skui/pkg/skui/ast"
	"github.com/markijohn/skui/pkg/skui/parser"
)

func mustParse(t *testing.T, input string) *ast.Document {
	t.Helper()
	doc, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

// chainTo returns the ancestor chain from the document root down to
// target's parent.
func chainTo(t *testing.T, doc *ast.Document, target *ast.Component) []*ast.Component {
	t.Helper()
	for _, root := range doc.Components {
		var chain []*ast.Component
		if root.Find(&chain, target) {
			return chain
		}
	}
	t.Fatal("target not in document")
	return nil
}

func TestSimpleMatching(t *testing.T) {
	doc := mustParse(t, `
		Button { color: red }
		#submit { color: blue }
		.primary { color: green }

		Button() #submit .primary
	`)
	btn := doc.Components[0]

	for i, st := range doc.Styles {
		if !Matches(st.Selector, nil, btn) {
			t.Errorf("style %d should match", i)
		}
	}

	other := &ast.Component{Name: "Label"}
	if Matches(doc.Styles[0].Selector, nil, other) {
		t.Error("tag selector must not match a different name")
	}
}

func TestCompoundMatchesAllParts(t *testing.T) {
	doc := mustParse(t, `
		Button.primary#submit { color: red }
		Button() #submit .primary
		Button() .primary
	`)
	full := doc.Components[0]
	partial := doc.Components[1]

	if !Matches(doc.Styles[0].Selector, nil, full) {
		t.Error("compound should match when every part holds")
	}
	if Matches(doc.Styles[0].Selector, nil, partial) {
		t.Error("compound must not match when the id is missing")
	}
}

func TestDescendantMatching(t *testing.T) {
	doc := mustParse(t, `
		.container Button { color: red }
		Flex() .container { Grid(){ Button("deep") } Label("x") }
	`)
	flex := doc.Components[0]
	btn := flex.Children[0].Children[0]

	chain := chainTo(t, doc, btn)
	if !Matches(doc.Styles[0].Selector, chain, btn) {
		t.Error("descendant should match at any depth")
	}

	// the root itself has no ancestors
	if Matches(doc.Styles[0].Selector, nil, flex) {
		t.Error("selector needs a matching component on the right")
	}
}

func TestChildMatching(t *testing.T) {
	doc := mustParse(t, `
		.container > Button { color: red }
		Flex() .container { Grid(){ Button("deep") } Button("direct") }
	`)
	flex := doc.Components[0]
	deep := flex.Children[0].Children[0]
	direct := flex.Children[1]

	if Matches(doc.Styles[0].Selector, chainTo(t, doc, deep), deep) {
		t.Error("child combinator must not match across a level")
	}
	if !Matches(doc.Styles[0].Selector, chainTo(t, doc, direct), direct) {
		t.Error("child combinator should match a direct child")
	}
}

func TestGroupMatching(t *testing.T) {
	doc := mustParse(t, `
		.button, .link { color: red }
		Label() .link
	`)
	if !Matches(doc.Styles[0].Selector, nil, doc.Components[0]) {
		t.Error("group should match when any branch matches")
	}
}

func TestCascadeOverride(t *testing.T) {
	doc := mustParse(t, `
		Flex { padding: 1px }
		Flex { padding: 2px }
		Flex()
	`)
	flex := doc.Components[0]

	resolved := Resolve(doc, nil, flex)
	vals, ok := resolved["padding"]
	if !ok || len(vals) != 1 {
		t.Fatalf("padding missing: %v", resolved)
	}
	if vals[0].Kind != ast.CssPx || vals[0].Px != 2.0 {
		t.Fatalf("later declaration must win, got %v", vals[0])
	}
}

func TestCascadeMergesKeys(t *testing.T) {
	doc := mustParse(t, `
		Flex { padding: 1px; color: red }
		.wide { padding: 2px }
		Flex() .wide
	`)
	flex := doc.Components[0]

	resolved := Resolve(doc, nil, flex)
	if resolved["padding"][0].Px != 2.0 {
		t.Errorf("padding should come from the later rule: %v", resolved["padding"])
	}
	if resolved["color"][0].Ident != "red" {
		t.Errorf("color should survive from the earlier rule: %v", resolved["color"])
	}
}

func TestPseudoRulesDoNotLeakIntoBase(t *testing.T) {
	doc := mustParse(t, `
		Button { color: red }
		Button:hover { color: blue }
		Button()
	`)
	btn := doc.Components[0]

	base := Resolve(doc, nil, btn)
	if base["color"][0].Ident != "red" {
		t.Fatalf("base must ignore pseudo rules: %v", base["color"])
	}

	hovered := ResolvePseudo(doc, nil, btn, ast.PseudoHover)
	if hovered["color"][0].Ident != "blue" {
		t.Fatalf("hover layer must override base: %v", hovered["color"])
	}
}

func TestCollectOrder(t *testing.T) {
	doc := mustParse(t, `
		Flex { padding: 1px }
		.x { margin: 1px }
		Flex { padding: 2px }
		Flex() .x
	`)
	matched := Collect(doc, nil, doc.Components[0])
	if len(matched) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matched))
	}
	if matched[0] != doc.Styles[0] || matched[2] != doc.Styles[2] {
		t.Error("collect must preserve declaration order")
	}
}
