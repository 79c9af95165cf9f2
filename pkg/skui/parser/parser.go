// Package parser builds a Document from skui source text.
//
// The grammar is recursive descent over a forkable token cursor.
// Alternatives are tried speculatively: a failed branch discards its
// fork and the caller retries from the cursor it still holds, so only
// the outermost failure ever reaches the Parse caller. A failed parse
// returns no partial document.
package parser

import (
	"strings"

	"github.com/markijohn/skui/pkg/skui/ast"
	"github.com/markijohn/skui/pkg/skui/cursor"
	"github.com/markijohn/skui/pkg/skui/errors"
	"github.com/markijohn/skui/pkg/skui/lexer"
)

// Parse parses source into a Document. On failure it returns a
// *errors.ParseError carrying the byte span of the failing construct.
func Parse(source string) (*ast.Document, error) {
	toks := lexer.Tokenize(source)
	for _, t := range toks {
		if t.Kind == lexer.ILLEGAL {
			return nil, errors.New(errors.UnknownToken, t.Span)
		}
	}

	// Whitespace tokens exist so spans cover the source exactly; the
	// grammar itself never consumes them. Decisions that depend on
	// adjacency (component heads, selector compounds) compare byte
	// spans instead.
	stream := make([]lexer.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind != lexer.WHITESPACE {
			stream = append(stream, t)
		}
	}

	p := &parser{source: source}
	doc := &ast.Document{}
	cur := cursor.New(stream)

	for !cur.IsEOF() {
		_, t1, t2 := cur.Fork().Consume2()
		switch {
		case isComponentHead(t1, t2):
			next, comp, err := p.parseComponent(cur)
			if err != nil {
				return nil, err
			}
			cur = next
			doc.Components = append(doc.Components, comp)

		case t1.Kind == lexer.IDENT || t1.Kind == lexer.ID || t1.Kind == lexer.CLASS:
			next, style, err := p.parseStyleItem(cur)
			if err != nil {
				return nil, err
			}
			cur = next
			doc.Styles = append(doc.Styles, style)

		default:
			return nil, errors.New(errors.UnknownStart, cur.Span())
		}
	}
	return doc, nil
}

type parser struct {
	source string
}

// isComponentHead reports an identifier immediately followed by an
// opening paren, with no gap between the two tokens. `Flex(` opens a
// component; `Flex (` does not.
func isComponentHead(t1, t2 lexer.Token) bool {
	return t1.Kind == lexer.IDENT && t2.Kind == lexer.LPAREN &&
		t1.Span.End == t2.Span.Start
}

func adjacent(a, b lexer.Token) bool {
	return a.Span.End == b.Span.Start
}

// parseComponent parses `Name(params) #id .class { body }` where
// everything after the parameter block is optional.
func (p *parser) parseComponent(cur cursor.Cursor) (cursor.Cursor, *ast.Component, error) {
	span := cur.Span()
	cur, name := cur.Consume1()
	if name.Kind != lexer.IDENT {
		return cur, nil, errors.New(errors.ExpectIdent, span)
	}

	paramBlock, next, ok := cur.ConsumeDelimitedInner(lexer.LPAREN, lexer.RPAREN)
	if !ok {
		return cur, nil, errors.New(errors.ExpectParentBlock, cur.Span())
	}
	cur = next
	params, err := p.parseParameters(paramBlock)
	if err != nil {
		return cur, nil, err
	}

	comp := &ast.Component{
		Name:       name.Text,
		Params:     params,
		Properties: map[string]ast.Value{},
	}

	// Attached #id/.class tokens. At most one id; classes keep first
	// occurrence and drop repeats.
	for {
		next, t := cur.Fork().Consume1()
		if t.Kind == lexer.ID {
			if comp.ID != "" {
				return cur, nil, errors.New(errors.IdAlreadyDefined, t.Span)
			}
			comp.ID = t.Text
			cur = next
			continue
		}
		if t.Kind == lexer.CLASS {
			if !comp.HasClass(t.Text) {
				comp.Classes = append(comp.Classes, t.Text)
			}
			cur = next
			continue
		}
		break
	}

	body, next, ok := cur.ConsumeDelimitedInner(lexer.LBRACE, lexer.RBRACE)
	if !ok {
		return cur, comp, nil
	}
	cur = next

	for !body.IsEOF() {
		span := body.Span()
		rest, t1, t2 := body.Fork().Consume2()
		switch {
		case t1.Kind == lexer.IDENT && t2.Kind == lexer.LPAREN:
			next, child, err := p.parseComponent(body)
			if err != nil {
				return cur, nil, err
			}
			body = next
			comp.Children = append(comp.Children, child)

		case t1.Kind == lexer.IDENT && t2.Kind == lexer.COLON:
			next, value, err := p.parseValue(rest)
			if err != nil {
				return cur, nil, err
			}
			body = next
			comp.Properties[t1.Text] = value

		default:
			return cur, nil, errors.New(errors.ExpectBraceBlock, span)
		}
	}
	return cur, comp, nil
}

// parseParameters parses the inside of a parameter block. An empty
// block is positional with no values. A non-empty block is tried as a
// named map first and as a positional list second; the whole block must
// parse as one or the other.
func (p *parser) parseParameters(cur cursor.Cursor) (ast.Parameters, error) {
	if cur.IsEOF() {
		return ast.NewArgs(nil), nil
	}
	if m, err := p.parseMapEntries(cur.Fork()); err == nil {
		return ast.NewNamed(m), nil
	}
	if arr, err := p.parseArrayElems(cur.Fork()); err == nil {
		return ast.NewArgs(arr), nil
	}
	return ast.Parameters{}, errors.New(errors.ExpectParameter, cur.Span())
}

// parseMapEntries parses a full cursor of `key = value` pairs with
// optional comma separators, trailing comma allowed.
func (p *parser) parseMapEntries(cur cursor.Cursor) (map[string]ast.Value, error) {
	entries := map[string]ast.Value{}
	for !cur.IsEOF() {
		span := cur.Span()
		next, t1, t2 := cur.Consume2()
		if t1.Kind != lexer.IDENT || t2.Kind != lexer.EQUAL {
			return nil, errors.New(errors.ExpectKeyValue, span)
		}
		next, value, err := p.parseValue(next)
		if err != nil {
			return nil, err
		}
		entries[t1.Text] = value
		cur, _ = next.Ignore(lexer.COMMA)
	}
	return entries, nil
}

// parseArrayElems parses a full cursor of comma-separated values.
func (p *parser) parseArrayElems(cur cursor.Cursor) ([]ast.Value, error) {
	var values []ast.Value
	for !cur.IsEOF() {
		next, value, err := p.parseValue(cur)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
		cur, _ = next.Ignore(lexer.COMMA)
	}
	return values, nil
}

// parseValue parses one value. Alternatives in order: a nested
// component literal, a brace-delimited map, a bracket-delimited array,
// then a single scalar token.
func (p *parser) parseValue(cur cursor.Cursor) (cursor.Cursor, ast.Value, error) {
	if next, comp, err := p.parseComponent(cur.Fork()); err == nil {
		return next, comp, nil
	}
	if block, next, ok := cur.ConsumeDelimitedInner(lexer.LBRACE, lexer.RBRACE); ok {
		m, err := p.parseMapEntries(block)
		if err != nil {
			return cur, nil, err
		}
		return next, ast.Map{Entries: m}, nil
	}
	if block, next, ok := cur.ConsumeDelimitedInner(lexer.LBRACKET, lexer.RBRACKET); ok {
		arr, err := p.parseArrayElems(block)
		if err != nil {
			return cur, nil, err
		}
		return next, ast.Array{Elements: arr}, nil
	}

	span := cur.Span()
	next, t := cur.Consume1()
	switch t.Kind {
	case lexer.STRING:
		return next, ast.String{Value: t.Text}, nil
	case lexer.IDENT:
		return next, ast.Ident{Name: t.Text}, nil
	case lexer.INT:
		return next, ast.Number{Int: t.Int}, nil
	case lexer.FLOAT:
		return next, ast.Number{IsFloat: true, Float: t.Float}, nil
	case lexer.TRUE:
		return next, ast.Bool{Value: true}, nil
	case lexer.FALSE:
		return next, ast.Bool{Value: false}, nil
	case lexer.RELATIVE:
		path, err := parseRelativePath(t.Text, t.Span)
		if err != nil {
			return cur, nil, err
		}
		return next, ast.Relative{Path: path}, nil
	default:
		return cur, nil, errors.New(errors.ExpectValue, span)
	}
}

// parseRelativePath validates and splits the inner text of a ${...}
// token: dot-separated segments, each a non-negative integer index or a
// bare name.
func parseRelativePath(text string, span lexer.Span) ([]ast.PathSeg, error) {
	parts := strings.Split(strings.TrimSpace(text), ".")
	segs := make([]ast.PathSeg, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch {
		case isIndexSeg(part):
			n := 0
			for i := 0; i < len(part); i++ {
				n = n*10 + int(part[i]-'0')
			}
			segs = append(segs, ast.PathSeg{IsIndex: true, Index: n})
		case isNameSeg(part):
			segs = append(segs, ast.PathSeg{Name: part})
		default:
			return nil, errors.New(errors.ExpectValue, span)
		}
	}
	return segs, nil
}

func isIndexSeg(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isNameSeg(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		alpha := 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
		digit := '0' <= ch && ch <= '9'
		if i == 0 && !alpha {
			return false
		}
		if !alpha && !digit && ch != '-' {
			return false
		}
	}
	return true
}
