// Package ast defines the document tree produced by parsing skui source:
// components with parameters, inline properties and children, plus style
// rules with selectors and CSS-like values.
//
// Nodes are constructed bottom-up during parsing and are read-only once
// the document is returned. Component/Value nesting is a strict tree; a
// nested component value never references an ancestor, so plain owned
// recursion is all that is needed.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the tagged data unit used for component parameters and
// properties. Concrete types: Ident, Bool, Number, String, Array, Map,
// Relative, and *Component for nested component literals.
type Value interface {
	valueNode()
	String() string
}

// Ident is a bare identifier value, e.g. Vertical or MainFill.
type Ident struct {
	Name string
}

// Bool is a true/false literal.
type Bool struct {
	Value bool
}

// Number is an integer or float literal. Exactly one representation is
// active, selected by IsFloat.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

// String is a double-quoted string literal with escapes resolved.
type String struct {
	Value string
}

// Array is an ordered list of values.
type Array struct {
	Elements []Value
}

// Map is a named collection of values. Key order carries no meaning;
// duplicate keys are last-write-wins.
type Map struct {
	Entries map[string]Value
}

// PathSeg is one segment of a relative reference path: either a
// non-negative index into positional arguments or a name into named ones.
type PathSeg struct {
	IsIndex bool
	Index   int
	Name    string
}

func (s PathSeg) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Name
}

// Relative is a ${...} placeholder: a path resolved against the
// enclosing parameter scope chain at consumption time, not parse time.
type Relative struct {
	Path []PathSeg
}

func (Ident) valueNode()      {}
func (Bool) valueNode()       {}
func (Number) valueNode()     {}
func (String) valueNode()     {}
func (Array) valueNode()      {}
func (Map) valueNode()        {}
func (Relative) valueNode()   {}
func (*Component) valueNode() {}

func (v Ident) String() string { return v.Name }

func (v Bool) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}

func (v Number) String() string {
	if v.IsFloat {
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(v.Int, 10)
}

func (v String) String() string { return strconv.Quote(v.Value) }

func (v Array) String() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v Map) String() string {
	parts := make([]string, 0, len(v.Entries))
	for k, e := range v.Entries {
		parts = append(parts, k+"="+e.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (v Relative) String() string {
	parts := make([]string, len(v.Path))
	for i, s := range v.Path {
		parts[i] = s.String()
	}
	return "${" + strings.Join(parts, ".") + "}"
}

// IntOf unwraps an integer-valued number.
func IntOf(v Value) (int64, bool) {
	n, ok := v.(Number)
	if !ok || n.IsFloat {
		return 0, false
	}
	return n.Int, true
}

// FloatOf unwraps a numeric value as float64, converting integers.
func FloatOf(v Value) (float64, bool) {
	n, ok := v.(Number)
	if !ok {
		return 0, false
	}
	if n.IsFloat {
		return n.Float, true
	}
	return float64(n.Int), true
}

// StringOf unwraps a string value.
func StringOf(v Value) (string, bool) {
	s, ok := v.(String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// BoolOf unwraps a boolean value.
func BoolOf(v Value) (bool, bool) {
	b, ok := v.(Bool)
	if !ok {
		return false, false
	}
	return b.Value, true
}

// ComponentOf unwraps a nested component literal.
func ComponentOf(v Value) (*Component, bool) {
	c, ok := v.(*Component)
	return c, ok
}

// Parameters is a component's argument block: positional Args or named
// entries, never both within one block.
type Parameters struct {
	Named bool
	Args  []Value
	Map   map[string]Value
}

// NewArgs creates a positional parameter block.
func NewArgs(args []Value) Parameters {
	return Parameters{Args: args}
}

// NewNamed creates a named parameter block.
func NewNamed(entries map[string]Value) Parameters {
	return Parameters{Named: true, Map: entries}
}

// Get looks a value up by whichever addressing mode the block holds:
// name for a named block, index for a positional one.
func (p Parameters) Get(idx int, name string) (Value, bool) {
	if p.Named {
		v, ok := p.Map[name]
		return v, ok
	}
	if idx < 0 || idx >= len(p.Args) {
		return nil, false
	}
	return p.Args[idx], true
}

// GetSeg looks a value up by a single path segment.
func (p Parameters) GetSeg(seg PathSeg) (Value, bool) {
	if seg.IsIndex {
		if p.Named {
			return nil, false
		}
		if seg.Index < 0 || seg.Index >= len(p.Args) {
			return nil, false
		}
		return p.Args[seg.Index], true
	}
	if !p.Named {
		return nil, false
	}
	v, ok := p.Map[seg.Name]
	return v, ok
}

// Len is the number of values in the block.
func (p Parameters) Len() int {
	if p.Named {
		return len(p.Map)
	}
	return len(p.Args)
}

// Component is a named UI-tree node.
//
// ID is empty when no #id is attached; a component carries at most one.
// Classes preserve first-occurrence order with duplicates dropped.
// Properties hold inline key:value pairs, last write winning on
// duplicate keys.
type Component struct {
	Name       string
	Params     Parameters
	ID         string
	Classes    []string
	Children   []*Component
	Properties map[string]Value
}

func (c *Component) String() string {
	return fmt.Sprintf("%s(%d args)", c.Name, c.Params.Len())
}

// HasClass reports whether the component carries the given class.
func (c *Component) HasClass(name string) bool {
	for _, cls := range c.Classes {
		if cls == name {
			return true
		}
	}
	return false
}

// Find locates target within c's subtree and fills chain with the
// ancestor path from c down to target's parent. It reports whether the
// target was found; on failure chain is left truncated.
func (c *Component) Find(chain *[]*Component, target *Component) bool {
	if c == target {
		return true
	}
	*chain = append(*chain, c)
	for _, child := range c.Children {
		if child.Find(chain, target) {
			return true
		}
	}
	*chain = (*chain)[:len(*chain)-1]
	return false
}

// Document is the result of a successful parse: style rules and root
// components in source order. It is immutable and safe to share across
// goroutines.
type Document struct {
	Styles     []*Style
	Components []*Component
}

// Component returns the first root component with the given name.
func (d *Document) Component(name string) (*Component, bool) {
	for _, c := range d.Components {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}
