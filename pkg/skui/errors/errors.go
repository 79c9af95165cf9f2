// Package errors defines the structured parse error for the skui
// language and a caret-annotated snippet renderer for diagnostics.
//
// A parse either yields a complete document or exactly one ParseError;
// speculative grammar branches discard their failures internally and only
// the outermost failure surfaces here.
package errors

import (
	"fmt"
	"strings"

	"github.com/markijohn/skui/pkg/skui/lexer"
)

// Kind categorizes a parse failure.
type Kind int

const (
	ExpectIdent Kind = iota
	ExpectValue
	InvalidCssValue
	InvalidCssSelector
	ExpectKeyValue
	ExpectParameter
	ExpectBraceBlock
	ExpectParentBlock
	UnknownStart
	IdAlreadyDefined
	// UnknownToken reports an unrecognized character at the lexer level.
	UnknownToken
)

// String returns a string representation of the error kind
func (k Kind) String() string {
	switch k {
	case ExpectIdent:
		return "ExpectIdent"
	case ExpectValue:
		return "ExpectValue"
	case InvalidCssValue:
		return "InvalidCssValue"
	case InvalidCssSelector:
		return "InvalidCssSelector"
	case ExpectKeyValue:
		return "ExpectKeyValue"
	case ExpectParameter:
		return "ExpectParameter"
	case ExpectBraceBlock:
		return "ExpectBraceBlock"
	case ExpectParentBlock:
		return "ExpectParentBlock"
	case UnknownStart:
		return "UnknownStart"
	case IdAlreadyDefined:
		return "IdAlreadyDefined"
	case UnknownToken:
		return "UnknownToken"
	default:
		return "UNKNOWN"
	}
}

// message returns the human-readable description with usage examples.
func (k Kind) message() string {
	switch k {
	case ExpectIdent:
		return "expected an identifier. e.g. name, button, flex"
	case ExpectValue:
		return `expected a value. e.g. myident, Component(), 123, 123.456, "mytext..", [4,5], {key=value}, true, false, ${0}`
	case InvalidCssValue:
		return `invalid CSS value. e.g. 123px, 123.456, 50%, "mytext..", auto, #ff0000, rgb(255,0,0)`
	case InvalidCssSelector:
		return "invalid CSS selector. e.g. #myid, .myclass, TagName, TagName:hover"
	case ExpectKeyValue:
		return "expected a key-value pair. e.g. key=value,key2=value2"
	case ExpectParameter:
		return `expected a parameter. e.g. (param1,2,"text"), (key=1,key2=2)`
	case ExpectBraceBlock:
		return "expected a brace block. e.g. '{ ... }'"
	case ExpectParentBlock:
		return "expected a parent block. e.g. '( ... )'"
	case UnknownStart:
		return "unexpected start of statement. style { }, #id { }, .class { }, Component()"
	case IdAlreadyDefined:
		return "id already defined"
	case UnknownToken:
		return "unrecognized character"
	default:
		return "unknown parse error"
	}
}

// ParseError is the single error type produced by parsing. Span is a byte
// range into the source that was handed to Parse.
type ParseError struct {
	Kind Kind
	Span lexer.Span
}

// New creates a ParseError for the given kind and span.
func New(kind Kind, span lexer.Span) *ParseError {
	return &ParseError{Kind: kind, Span: span}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Kind.message()
}

// Position resolves the error span to a 1-based line and column within
// source. Columns count runes, not bytes.
func (e *ParseError) Position(source string) (line, column int) {
	line = 1
	lineStart := 0
	for i, ch := range source {
		if i >= e.Span.Start {
			break
		}
		if ch == '\n' {
			line++
			lineStart = i + 1
		}
	}
	column = len([]rune(source[lineStart:min(e.Span.Start, len(source))])) + 1
	return line, column
}

// Pretty returns a multi-line report: location, message, and a snippet
// with the offending range underlined.
func (e *ParseError) Pretty(source string) string {
	line, column := e.Position(source)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("parse error: line %d, column %d: %s\n", line, column, e.Kind.message()))
	sb.WriteString(RenderSnippet(source, e.Span, 2))
	return sb.String()
}

// lineInfo locates the line containing a byte position.
type lineInfo struct {
	no    int // 1-based
	start int // byte index of line start
	end   int // byte index of line end, newline excluded
}

func findLine(source string, pos int) lineInfo {
	if pos > len(source) {
		pos = len(source)
	}
	no := 1
	start := 0
	for i := 0; i < pos; i++ {
		if source[i] == '\n' {
			no++
			start = i + 1
		}
	}
	end := len(source)
	if i := strings.IndexByte(source[start:], '\n'); i >= 0 {
		end = start + i
	}
	return lineInfo{no: no, start: start, end: end}
}

func byteToColumn(line string, byteOffset int) int {
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	return len([]rune(line[:byteOffset]))
}

// RenderSnippet produces a caret-annotated excerpt of source around span:
// up to contextLines numbered lines of leading context, the offending
// line, and a ^-underline covering the span's columns.
func RenderSnippet(source string, span lexer.Span, contextLines int) string {
	line := findLine(source, span.Start)

	var out string

	cur := line.start
	for i := 0; i < contextLines && cur > 0; i++ {
		prev := findLine(source, cur-1)
		out = fmt.Sprintf("%4d | %s\n%s", prev.no, source[prev.start:prev.end], out)
		cur = prev.start
	}

	lineText := source[line.start:line.end]
	out += fmt.Sprintf("%4d | %s\n", line.no, lineText)

	colStart := byteToColumn(lineText, span.Start-line.start)
	end := span.End
	if end > line.end {
		end = line.end
	}
	colEnd := byteToColumn(lineText, end-line.start)
	if colEnd <= colStart {
		colEnd = colStart + 1
	}

	out += "     | " + strings.Repeat(" ", colStart) + strings.Repeat("^", colEnd-colStart) + "\n"
	return out
}
