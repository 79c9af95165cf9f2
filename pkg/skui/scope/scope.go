// Package scope resolves ${...} relative references against a stack of
// parameter scopes. A consumer instantiating nested components pushes
// each component's arguments as it descends; a placeholder inside an
// inner definition then resolves against the caller's concrete values.
//
// Stacks are transient per traversal and never stored in the parsed
// document.
package scope

import (
	"github.com/markijohn/skui/pkg/skui/ast"
)

// Stack is a chain of parameter scopes, innermost last. The zero value
// is an empty stack.
type Stack struct {
	scopes []ast.Parameters
}

// New creates a stack from outermost to innermost scope.
func New(scopes ...ast.Parameters) *Stack {
	return &Stack{scopes: scopes}
}

// Push adds a new innermost scope.
func (s *Stack) Push(p ast.Parameters) {
	s.scopes = append(s.scopes, p)
}

// Pop removes the innermost scope.
func (s *Stack) Pop() {
	if len(s.scopes) > 0 {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}
}

// Depth is the number of scopes on the stack.
func (s *Stack) Depth() int {
	return len(s.scopes)
}

// Resolve looks up a relative value on the stack. The head segment
// searches the chain innermost-out; when the value found is itself
// relative, its path is re-resolved against the scopes outside the one
// that held it, until a concrete value appears or the chain runs out.
// Remaining segments index directly into the resolved composite with no
// further chaining.
func (s *Stack) Resolve(rel ast.Relative) (ast.Value, bool) {
	return s.resolvePath(len(s.scopes)-1, rel.Path)
}

// ResolveValue resolves v if it is relative and returns any other value
// unchanged.
func (s *Stack) ResolveValue(v ast.Value) (ast.Value, bool) {
	if rel, ok := v.(ast.Relative); ok {
		return s.Resolve(rel)
	}
	return v, true
}

func (s *Stack) resolvePath(depth int, path []ast.PathSeg) (ast.Value, bool) {
	if len(path) == 0 || depth < 0 {
		return nil, false
	}
	v, ok := s.resolveSeg(depth, path[0])
	if !ok {
		return nil, false
	}
	for _, seg := range path[1:] {
		v, ok = indexInto(v, seg)
		if !ok {
			return nil, false
		}
	}
	return v, true
}

func (s *Stack) resolveSeg(depth int, seg ast.PathSeg) (ast.Value, bool) {
	for i := depth; i >= 0; i-- {
		v, ok := s.scopes[i].GetSeg(seg)
		if !ok {
			continue
		}
		if rel, isRel := v.(ast.Relative); isRel {
			return s.resolvePath(i-1, rel.Path)
		}
		return v, true
	}
	return nil, false
}

// indexInto descends one path segment into a composite value: a name
// into a map, an index into an array.
func indexInto(v ast.Value, seg ast.PathSeg) (ast.Value, bool) {
	switch cv := v.(type) {
	case ast.Map:
		if seg.IsIndex {
			return nil, false
		}
		out, ok := cv.Entries[seg.Name]
		return out, ok
	case ast.Array:
		if !seg.IsIndex || seg.Index >= len(cv.Elements) {
			return nil, false
		}
		return cv.Elements[seg.Index], true
	default:
		return nil, false
	}
}
