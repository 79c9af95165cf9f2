package ast

import (
	"fmt"
	"strconv"
)

// CssKind tags the representation held by a CssValue.
type CssKind int

const (
	CssKeyword CssKind = iota
	CssPx
	CssNumber
	CssPercent
	CssIdent
	CssString
	CssHexColor
	CssRgb
	CssRgba
)

// CssValue is one token of a style declaration's value list, already
// coerced into its CSS meaning. Exactly one field group is meaningful,
// selected by Kind.
type CssValue struct {
	Kind CssKind

	Keyword string // CssKeyword: auto, none, inherit
	Px      float64
	Number  float64
	Percent float64
	Ident   string
	Str     string
	Hex     string // CssHexColor: name as written, without '#'

	R, G, B uint8
	A       uint8 // CssRgba only
}

func (v CssValue) String() string {
	switch v.Kind {
	case CssKeyword:
		return v.Keyword
	case CssPx:
		return strconv.FormatFloat(v.Px, 'g', -1, 64) + "px"
	case CssNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case CssPercent:
		return strconv.FormatFloat(v.Percent, 'g', -1, 64) + "%"
	case CssIdent:
		return v.Ident
	case CssString:
		return strconv.Quote(v.Str)
	case CssHexColor:
		return "#" + v.Hex
	case CssRgb:
		return fmt.Sprintf("rgb(%d,%d,%d)", v.R, v.G, v.B)
	case CssRgba:
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", v.R, v.G, v.B, v.A)
	default:
		return ""
	}
}

// StyleProperty is one declaration inside a style body: a key and its
// value tokens in source order.
type StyleProperty struct {
	Key    string
	Values []CssValue
}

// Style is one selector block: `selector { key: value; ... }`.
// Properties keep source order; duplicate keys survive here and are
// collapsed last-write-wins only when a consumer resolves the cascade.
type Style struct {
	Selector   Selector
	Properties []StyleProperty
}
