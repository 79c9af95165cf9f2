package ast

import "strings"

// PseudoClass is a recognized selector pseudo-class. Pseudo-classes are
// parsed and retained on the selector; whether one applies is decided by
// the consumer at cascade time, since the parser has no interaction
// state.
type PseudoClass int

const (
	PseudoNone PseudoClass = iota
	PseudoHover
	PseudoActive
	PseudoFocus
	PseudoDisabled
)

var pseudoNames = map[string]PseudoClass{
	"hover":    PseudoHover,
	"active":   PseudoActive,
	"focus":    PseudoFocus,
	"disabled": PseudoDisabled,
}

// PseudoClassByName maps a pseudo-class name to its tag. Unknown names
// report false.
func PseudoClassByName(name string) (PseudoClass, bool) {
	p, ok := pseudoNames[name]
	return p, ok
}

func (p PseudoClass) String() string {
	switch p {
	case PseudoHover:
		return "hover"
	case PseudoActive:
		return "active"
	case PseudoFocus:
		return "focus"
	case PseudoDisabled:
		return "disabled"
	default:
		return ""
	}
}

// SelectorPartKind distinguishes the constraints inside one compound
// selector.
type SelectorPartKind int

const (
	SelTag SelectorPartKind = iota
	SelID
	SelClass
)

// SelectorPart is a single constraint: a tag name, an #id, or a .class.
type SelectorPart struct {
	Kind SelectorPartKind
	Name string
}

func (p SelectorPart) String() string {
	switch p.Kind {
	case SelID:
		return "#" + p.Name
	case SelClass:
		return "." + p.Name
	default:
		return p.Name
	}
}

// Selector matches components during the cascade. Concrete types:
// SimpleSelector, GroupSelector, DescendantSelector, ChildSelector.
type Selector interface {
	selectorNode()
	String() string

	// PseudoClass reports the pseudo-class attached to the selector
	// position that must finally match (the rightmost simple selector),
	// or PseudoNone.
	PseudoClass() PseudoClass
}

// SimpleSelector is a compound of adjacent parts that must all hold on
// one component, e.g. Button.primary#submit:hover.
type SimpleSelector struct {
	Parts  []SelectorPart
	Pseudo PseudoClass
}

// GroupSelector is a comma list; it matches when any branch matches.
type GroupSelector struct {
	Selectors []Selector
}

// DescendantSelector matches Right on a component that has an ancestor
// matching Left at any depth.
type DescendantSelector struct {
	Left  Selector
	Right Selector
}

// ChildSelector matches Right on a component whose direct parent
// matches Left.
type ChildSelector struct {
	Left  Selector
	Right Selector
}

func (SimpleSelector) selectorNode()     {}
func (GroupSelector) selectorNode()      {}
func (DescendantSelector) selectorNode() {}
func (ChildSelector) selectorNode()      {}

func (s SimpleSelector) String() string {
	var b strings.Builder
	for _, p := range s.Parts {
		b.WriteString(p.String())
	}
	if s.Pseudo != PseudoNone {
		b.WriteByte(':')
		b.WriteString(s.Pseudo.String())
	}
	return b.String()
}

func (s GroupSelector) String() string {
	parts := make([]string, len(s.Selectors))
	for i, sel := range s.Selectors {
		parts[i] = sel.String()
	}
	return strings.Join(parts, ", ")
}

func (s DescendantSelector) String() string {
	return s.Left.String() + " " + s.Right.String()
}

func (s ChildSelector) String() string {
	return s.Left.String() + " > " + s.Right.String()
}

func (s SimpleSelector) PseudoClass() PseudoClass { return s.Pseudo }

// PseudoClass on a group only reports a pseudo-class shared by every
// branch; mixed groups report PseudoNone and consumers must inspect the
// branches individually.
func (s GroupSelector) PseudoClass() PseudoClass {
	if len(s.Selectors) == 0 {
		return PseudoNone
	}
	p := s.Selectors[0].PseudoClass()
	for _, sel := range s.Selectors[1:] {
		if sel.PseudoClass() != p {
			return PseudoNone
		}
	}
	return p
}

func (s DescendantSelector) PseudoClass() PseudoClass { return s.Right.PseudoClass() }
func (s ChildSelector) PseudoClass() PseudoClass      { return s.Right.PseudoClass() }
