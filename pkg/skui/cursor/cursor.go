// Package cursor provides an immutable, cheaply-copied view over a token
// slice. Every operation returns a new cursor; a failed grammar branch
// simply discards its fork and the caller retries from the cursor it
// still holds, so speculative parsing needs no rollback bookkeeping.
package cursor

import (
	"github.com/markijohn/skui/pkg/skui/lexer"
)

// Cursor is a position within a token stream. The zero value is an empty
// cursor. Copies are O(1): a cursor is an offset plus a subslice.
type Cursor struct {
	base int
	end  int // byte offset reported by Span at EOF
	toks []lexer.Token
}

// New creates a root cursor over toks.
func New(toks []lexer.Token) Cursor {
	end := 0
	if len(toks) > 0 {
		end = toks[len(toks)-1].Span.End
	}
	return Cursor{toks: toks, end: end}
}

// Fork returns an independent cursor at the same position.
func (c Cursor) Fork() Cursor {
	return c
}

// IsEOF reports whether the cursor has no tokens left.
func (c Cursor) IsEOF() bool {
	return len(c.toks) == 0
}

// Pos is the index of the cursor within the root stream.
func (c Cursor) Pos() int {
	return c.base
}

// Len is the number of tokens remaining.
func (c Cursor) Len() int {
	return len(c.toks)
}

// Span is the byte span of the token at the cursor. At EOF it returns a
// zero-width span at the end of the previous content, so error reporting
// for truncated input still points somewhere sensible.
func (c Cursor) Span() lexer.Span {
	if len(c.toks) > 0 {
		return c.toks[0].Span
	}
	return lexer.Span{Start: c.end, End: c.end}
}

// Skip returns a cursor advanced by up to n tokens.
func (c Cursor) Skip(n int) Cursor {
	if n > len(c.toks) {
		n = len(c.toks)
	}
	return Cursor{base: c.base + n, end: c.end, toks: c.toks[n:]}
}

// Consume returns a cursor past n tokens and the n tokens taken. When the
// stream is shorter the result is padded with zero-value sentinel tokens;
// callers must treat a NONE kind as absent.
func (c Cursor) Consume(n int) (Cursor, []lexer.Token) {
	out := make([]lexer.Token, n)
	taken := n
	if taken > len(c.toks) {
		taken = len(c.toks)
	}
	copy(out, c.toks[:taken])
	return c.Skip(taken), out
}

// Consume1 takes a single token, NONE at EOF.
func (c Cursor) Consume1() (Cursor, lexer.Token) {
	if len(c.toks) == 0 {
		return c, lexer.Token{}
	}
	return c.Skip(1), c.toks[0]
}

// Consume2 takes two tokens, padding with NONE.
func (c Cursor) Consume2() (Cursor, lexer.Token, lexer.Token) {
	next, ts := c.Consume(2)
	return next, ts[0], ts[1]
}

// Ignore advances past the next tokens iff their kinds equal the given
// literal pattern; otherwise the cursor is returned unchanged.
func (c Cursor) Ignore(kinds ...lexer.TokenKind) (Cursor, bool) {
	if len(kinds) > len(c.toks) {
		return c, false
	}
	for i, k := range kinds {
		if c.toks[i].Kind != k {
			return c, false
		}
	}
	return c.Skip(len(kinds)), true
}

// IgnoreUntil advances to the first token satisfying pred, or to EOF.
func (c Cursor) IgnoreUntil(pred func(lexer.Token) bool) Cursor {
	for i, t := range c.toks {
		if pred(t) {
			return c.Skip(i)
		}
	}
	return c.Skip(len(c.toks))
}

// SplitUntil scans forward to the first token satisfying pred and returns
// the prefix as its own bounded cursor plus the cursor positioned at the
// matching token. ok is false when no token matches before EOF.
func (c Cursor) SplitUntil(pred func(lexer.Token) bool) (prefix, next Cursor, ok bool) {
	for i, t := range c.toks {
		if pred(t) {
			return Cursor{base: c.base, end: t.Span.Start, toks: c.toks[:i]}, c.Skip(i), true
		}
	}
	return Cursor{}, Cursor{}, false
}

// ConsumeDelimitedInner extracts the contents of a balanced open/close
// block. The cursor must be positioned at an open token; nesting of the
// same delimiter kind is tracked by depth. It returns the strictly-inner
// cursor and the cursor positioned after the matching close. ok is false
// when not at open, or when EOF arrives before the block closes.
func (c Cursor) ConsumeDelimitedInner(open, close lexer.TokenKind) (inner, next Cursor, ok bool) {
	if open == close || open == lexer.NONE || close == lexer.NONE {
		panic("cursor: delimiter pair must be two distinct token kinds")
	}
	if len(c.toks) == 0 || c.toks[0].Kind != open {
		return Cursor{}, Cursor{}, false
	}
	depth := 1
	for i := 1; i < len(c.toks); i++ {
		switch c.toks[i].Kind {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				inner = Cursor{base: c.base + 1, end: c.toks[i].Span.Start, toks: c.toks[1:i]}
				return inner, c.Skip(i + 1), true
			}
		}
	}
	return Cursor{}, Cursor{}, false
}
