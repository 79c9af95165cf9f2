package parser

import (
	"github.com/markijohn/skui/pkg/skui/ast"
	"github.com/markijohn/skui/pkg/skui/cursor"
	"github.com/markijohn/skui/pkg/skui/errors"
	"github.com/markijohn/skui/pkg/skui/lexer"
)

// parseStyleItem parses `selector-list { declarations }`. The selector
// run is carved out with SplitUntil so the selector grammar sees a
// bounded cursor ending at the opening brace.
func (p *parser) parseStyleItem(cur cursor.Cursor) (cursor.Cursor, *ast.Style, error) {
	prefix, rest, ok := cur.SplitUntil(func(t lexer.Token) bool {
		return t.Kind == lexer.LBRACE
	})
	if !ok {
		return cur, nil, errors.New(errors.ExpectBraceBlock, cur.Span())
	}

	sel, err := p.parseSelectorList(prefix)
	if err != nil {
		return cur, nil, err
	}

	block, next, ok := rest.ConsumeDelimitedInner(lexer.LBRACE, lexer.RBRACE)
	if !ok {
		return cur, nil, errors.New(errors.ExpectBraceBlock, rest.Span())
	}
	props, err := p.parseStyleProperties(block)
	if err != nil {
		return cur, nil, err
	}
	return next, &ast.Style{Selector: sel, Properties: props}, nil
}

// parseSelectorList parses a bounded run of selector tokens into one
// Selector. Commas build a group, `>` builds a child combinator, and a
// plain gap between compounds builds a descendant combinator; the
// combinators chain left to right.
func (p *parser) parseSelectorList(cur cursor.Cursor) (ast.Selector, error) {
	var branches []ast.Selector
	var current ast.Selector
	childPending := false

	for !cur.IsEOF() {
		_, t := cur.Fork().Consume1()
		switch t.Kind {
		case lexer.COMMA:
			if current == nil || childPending {
				return nil, errors.New(errors.InvalidCssSelector, t.Span)
			}
			branches = append(branches, current)
			current = nil
			cur = cur.Skip(1)

		case lexer.GT:
			if current == nil || childPending {
				return nil, errors.New(errors.InvalidCssSelector, t.Span)
			}
			childPending = true
			cur = cur.Skip(1)

		case lexer.IDENT, lexer.ID, lexer.CLASS:
			next, simple, err := p.parseCompound(cur)
			if err != nil {
				return nil, err
			}
			cur = next
			switch {
			case current == nil:
				current = simple
			case childPending:
				current = ast.ChildSelector{Left: current, Right: simple}
				childPending = false
			default:
				current = ast.DescendantSelector{Left: current, Right: simple}
			}

		default:
			return nil, errors.New(errors.InvalidCssSelector, t.Span)
		}
	}

	if current == nil || childPending {
		return nil, errors.New(errors.InvalidCssSelector, cur.Span())
	}
	if len(branches) == 0 {
		return current, nil
	}
	branches = append(branches, current)
	return ast.GroupSelector{Selectors: branches}, nil
}

// parseCompound parses one simple selector: a run of byte-adjacent
// tag/#id/.class tokens, optionally followed by an adjacent
// `:pseudo-class`. `.a.b#id` is one compound; `.a .b` is two.
func (p *parser) parseCompound(cur cursor.Cursor) (cursor.Cursor, ast.SimpleSelector, error) {
	var simple ast.SimpleSelector

	cur, first := cur.Consume1()
	simple.Parts = append(simple.Parts, selectorPart(first))
	prev := first

	for {
		next, t := cur.Fork().Consume1()
		if !adjacent(prev, t) {
			break
		}
		switch t.Kind {
		case lexer.IDENT, lexer.ID, lexer.CLASS:
			simple.Parts = append(simple.Parts, selectorPart(t))
			cur = next
			prev = t
			continue
		case lexer.COLON:
			rest, name := next.Consume1()
			if name.Kind != lexer.IDENT || !adjacent(t, name) {
				return cur, simple, errors.New(errors.InvalidCssSelector, t.Span)
			}
			pseudo, ok := ast.PseudoClassByName(name.Text)
			if !ok {
				return cur, simple, errors.New(errors.InvalidCssSelector, name.Span)
			}
			simple.Pseudo = pseudo
			return rest, simple, nil
		}
		break
	}
	return cur, simple, nil
}

func selectorPart(t lexer.Token) ast.SelectorPart {
	switch t.Kind {
	case lexer.ID:
		return ast.SelectorPart{Kind: ast.SelID, Name: t.Text}
	case lexer.CLASS:
		return ast.SelectorPart{Kind: ast.SelClass, Name: t.Text}
	default:
		return ast.SelectorPart{Kind: ast.SelTag, Name: t.Text}
	}
}

// parseStyleProperties parses a bounded declaration block:
// `key : value... ;` with the semicolon optional before the closing
// brace. Every value token must coerce to a CSS value.
func (p *parser) parseStyleProperties(cur cursor.Cursor) ([]ast.StyleProperty, error) {
	var props []ast.StyleProperty
	for {
		cur = cur.IgnoreUntil(func(t lexer.Token) bool {
			return t.Kind != lexer.SEMICOLON
		})
		if cur.IsEOF() {
			return props, nil
		}

		span := cur.Span()
		next, key, colon := cur.Consume2()
		if key.Kind != lexer.IDENT || colon.Kind != lexer.COLON {
			return nil, errors.New(errors.ExpectIdent, span)
		}
		cur = next

		var values []ast.CssValue
		for !cur.IsEOF() {
			_, t := cur.Fork().Consume1()
			if t.Kind == lexer.SEMICOLON {
				break
			}
			cv, ok := cssValueFrom(t)
			if !ok {
				return nil, errors.New(errors.InvalidCssValue, t.Span)
			}
			values = append(values, cv)
			cur = cur.Skip(1)
		}
		props = append(props, ast.StyleProperty{Key: key.Text, Values: values})
	}
}

// cssValueFrom coerces one token into its CSS meaning. Booleans and
// em/pt lengths lex fine but have no CSS value form here.
func cssValueFrom(t lexer.Token) (ast.CssValue, bool) {
	switch t.Kind {
	case lexer.IDENT:
		switch t.Text {
		case "auto", "none", "inherit":
			return ast.CssValue{Kind: ast.CssKeyword, Keyword: t.Text}, true
		}
		return ast.CssValue{Kind: ast.CssIdent, Ident: t.Text}, true
	case lexer.PX:
		return ast.CssValue{Kind: ast.CssPx, Px: t.Float}, true
	case lexer.PERCENT:
		return ast.CssValue{Kind: ast.CssPercent, Percent: t.Float}, true
	case lexer.INT:
		return ast.CssValue{Kind: ast.CssNumber, Number: float64(t.Int)}, true
	case lexer.FLOAT:
		return ast.CssValue{Kind: ast.CssNumber, Number: t.Float}, true
	case lexer.RGB:
		return ast.CssValue{Kind: ast.CssRgb, R: t.R, G: t.G, B: t.B}, true
	case lexer.RGBA:
		return ast.CssValue{Kind: ast.CssRgba, R: t.R, G: t.G, B: t.B, A: t.A}, true
	case lexer.ID:
		return ast.CssValue{Kind: ast.CssHexColor, Hex: t.Text}, true
	case lexer.STRING:
		return ast.CssValue{Kind: ast.CssString, Str: t.Text}, true
	default:
		return ast.CssValue{}, false
	}
}
