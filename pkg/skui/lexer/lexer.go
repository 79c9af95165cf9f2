// Package lexer turns skui source text into a flat token stream.
//
// Every token carries a byte span into the original source; spans are
// non-overlapping and monotonic, and together the tokens of a successful
// scan cover the input exactly. Whitespace is emitted as its own token
// kind because selector parsing is whitespace-sensitive (a gap between
// two simple selectors means descendant).
package lexer

import (
	"strconv"
	"strings"
)

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	// NONE is the zero-value sentinel returned by cursor reads past the
	// end of the stream. It never appears in a scanned stream.
	NONE TokenKind = iota

	ILLEGAL // unrecognized input, surfaced as a parse error

	IDENT    // Flex, background-color, auto
	STRING   // "text"
	INT      // 42, -7
	FLOAT    // 1.5, -0.25
	TRUE     // true
	FALSE    // false
	ID       // #myId, #ff0000
	CLASS    // .myClass
	PX       // 12px
	EM       // 1.5em
	PT       // 10pt
	PERCENT  // 50%
	RGB      // rgb(255, 0, 0)
	RGBA     // rgba(255, 0, 0, 128)
	RELATIVE // ${0.title}

	LBRACE    // {
	RBRACE    // }
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	COLON     // :
	SEMICOLON // ;
	COMMA     // ,
	EQUAL     // =
	LT        // <
	GT        // >
	PIPE      // |

	WHITESPACE // runs of space, tab, CR, LF
)

// String returns a string representation of the token kind
func (tk TokenKind) String() string {
	switch tk {
	case NONE:
		return "NONE"
	case ILLEGAL:
		return "ILLEGAL"
	case IDENT:
		return "IDENT"
	case STRING:
		return "STRING"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case ID:
		return "ID"
	case CLASS:
		return "CLASS"
	case PX:
		return "PX"
	case EM:
		return "EM"
	case PT:
		return "PT"
	case PERCENT:
		return "PERCENT"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case RELATIVE:
		return "RELATIVE"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACKET:
		return "LBRACKET"
	case RBRACKET:
		return "RBRACKET"
	case COLON:
		return "COLON"
	case SEMICOLON:
		return "SEMICOLON"
	case COMMA:
		return "COMMA"
	case EQUAL:
		return "EQUAL"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case PIPE:
		return "PIPE"
	case WHITESPACE:
		return "WHITESPACE"
	default:
		return "UNKNOWN"
	}
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// Token is a single lexical unit with its source span.
//
// Text holds the token's semantic text: the unquoted string body, the
// id/class name without its sigil, or the inner path of a ${...} token.
// Number carries the parsed value for INT/FLOAT and the unit kinds, and
// R/G/B/A carry the channels for RGB/RGBA.
type Token struct {
	Kind  TokenKind
	Text  string
	Int   int64
	Float float64
	R     uint8
	G     uint8
	B     uint8
	A     uint8
	Span  Span
}

// keywords that lex to their own kinds rather than IDENT
var keywords = map[string]TokenKind{
	"true":  TRUE,
	"false": FALSE,
}

// Lexer scans skui source one token at a time.
type Lexer struct {
	input string
	pos   int
}

// New creates a lexer over the given source text.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize scans the whole input. Unrecognized characters produce an
// ILLEGAL token covering the offending byte; the stream is still complete
// so callers can report the error with a precise span.
func Tokenize(input string) []Token {
	l := New(input)
	var toks []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekAt(off int) byte {
	if l.pos+off >= len(l.input) {
		return 0
	}
	return l.input[l.pos+off]
}

// Next returns the next token, or ok=false at end of input.
func (l *Lexer) Next() (Token, bool) {
	if l.eof() {
		return Token{}, false
	}

	start := l.pos
	ch := l.peek()

	switch {
	case isSpace(ch):
		for !l.eof() && isSpace(l.peek()) {
			l.pos++
		}
		return l.emit(WHITESPACE, start), true

	case ch == '"':
		return l.readString(start), true

	case ch == '$' && l.peekAt(1) == '{':
		return l.readRelative(start), true

	case ch == '#':
		return l.readSigiled(start, ID), true

	case ch == '.' && isIdentStart(l.peekAt(1)):
		return l.readSigiled(start, CLASS), true

	case isDigit(ch) || (ch == '-' && isDigit(l.peekAt(1))):
		return l.readNumber(start), true

	case isIdentStart(ch):
		// rgb(...)/rgba(...) are single tokens when the full pattern
		// matches; otherwise the name lexes as an ordinary identifier.
		if tok, ok := l.tryReadColorFunc(start); ok {
			return tok, true
		}
		return l.readIdent(start), true
	}

	if kind, ok := delimiters[ch]; ok {
		l.pos++
		tok := l.emit(kind, start)
		tok.Text = string(ch)
		return tok, true
	}

	l.pos++
	return l.emit(ILLEGAL, start), true
}

var delimiters = map[byte]TokenKind{
	'{': LBRACE,
	'}': RBRACE,
	'(': LPAREN,
	')': RPAREN,
	'[': LBRACKET,
	']': RBRACKET,
	':': COLON,
	';': SEMICOLON,
	',': COMMA,
	'=': EQUAL,
	'<': LT,
	'>': GT,
	'|': PIPE,
}

func (l *Lexer) emit(kind TokenKind, start int) Token {
	return Token{Kind: kind, Span: Span{Start: start, End: l.pos}}
}

// readString scans a double-quoted string, handling backslash escapes.
// An unterminated string becomes an ILLEGAL token spanning to EOF.
func (l *Lexer) readString(start int) Token {
	l.pos++ // opening quote
	var sb strings.Builder
	for !l.eof() {
		ch := l.peek()
		if ch == '"' {
			l.pos++
			tok := l.emit(STRING, start)
			tok.Text = sb.String()
			return tok
		}
		if ch == '\\' {
			l.pos++
			if l.eof() {
				break
			}
			switch l.peek() {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				sb.WriteByte(l.peek())
			}
			l.pos++
			continue
		}
		sb.WriteByte(ch)
		l.pos++
	}
	return l.emit(ILLEGAL, start)
}

// readRelative scans ${...} into a single token carrying the inner path
// text. The path is validated by the parser, not here.
func (l *Lexer) readRelative(start int) Token {
	l.pos += 2 // ${
	inner := l.pos
	for !l.eof() && l.peek() != '}' {
		l.pos++
	}
	if l.eof() {
		return l.emit(ILLEGAL, start)
	}
	text := l.input[inner:l.pos]
	l.pos++ // }
	tok := l.emit(RELATIVE, start)
	tok.Text = text
	return tok
}

// readSigiled scans #name or .name; Text is the name without the sigil.
// Hex colors lex as ID tokens too: the parser decides from context.
func (l *Lexer) readSigiled(start int, kind TokenKind) Token {
	l.pos++ // sigil
	nameStart := l.pos
	if l.eof() || !isIdentPart(l.peek()) || l.peek() == '-' {
		l.pos = nameStart
		return l.emit(ILLEGAL, start)
	}
	for !l.eof() && isIdentPart(l.peek()) {
		l.pos++
	}
	tok := l.emit(kind, start)
	tok.Text = l.input[nameStart:l.pos]
	return tok
}

// readNumber scans an integer or float, then applies unit suffixes with
// maximal munch: px/em/pt/% bind tighter than a bare number. Units only
// attach to non-negative numbers.
func (l *Lexer) readNumber(start int) Token {
	neg := l.peek() == '-'
	if neg {
		l.pos++
	}
	for !l.eof() && isDigit(l.peek()) {
		l.pos++
	}
	isFloat := false
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		l.pos++
		for !l.eof() && isDigit(l.peek()) {
			l.pos++
		}
	}
	lit := l.input[start:l.pos]

	if !neg {
		if kind, width := l.unitSuffix(); kind != NONE {
			l.pos += width
			tok := l.emit(kind, start)
			tok.Float, _ = strconv.ParseFloat(lit, 64)
			return tok
		}
	}

	if isFloat {
		tok := l.emit(FLOAT, start)
		tok.Float, _ = strconv.ParseFloat(lit, 64)
		return tok
	}
	tok := l.emit(INT, start)
	tok.Int, _ = strconv.ParseInt(lit, 10, 64)
	return tok
}

// unitSuffix reports the unit kind starting at the current position and
// its byte width, or NONE. A two-letter unit only wins on an exact
// boundary: "10pxx" is the number 10 followed by the identifier pxx.
func (l *Lexer) unitSuffix() (TokenKind, int) {
	if l.peek() == '%' {
		return PERCENT, 1
	}
	two := ""
	if l.pos+2 <= len(l.input) {
		two = l.input[l.pos : l.pos+2]
	}
	if isIdentPart(l.peekAt(2)) {
		return NONE, 0
	}
	switch two {
	case "px":
		return PX, 2
	case "em":
		return EM, 2
	case "pt":
		return PT, 2
	}
	return NONE, 0
}

func (l *Lexer) readIdent(start int) Token {
	for !l.eof() && isIdentPart(l.peek()) {
		l.pos++
	}
	lit := l.input[start:l.pos]
	kind := IDENT
	if kw, ok := keywords[lit]; ok {
		kind = kw
	}
	tok := l.emit(kind, start)
	tok.Text = lit
	return tok
}

// tryReadColorFunc attempts to scan rgb(...) or rgba(...) as one token.
// The whole pattern must match, channels included; otherwise the lexer
// position is restored and the caller lexes an identifier instead.
func (l *Lexer) tryReadColorFunc(start int) (Token, bool) {
	rest := l.input[l.pos:]
	var kind TokenKind
	var nchan int
	switch {
	case strings.HasPrefix(rest, "rgba("):
		kind, nchan = RGBA, 4
	case strings.HasPrefix(rest, "rgb("):
		kind, nchan = RGB, 3
	default:
		return Token{}, false
	}

	save := l.pos
	l.pos += strings.Index(rest, "(") + 1

	var chans [4]uint8
	for i := 0; i < nchan; i++ {
		if i > 0 {
			l.skipInlineSpace()
			if l.peek() != ',' {
				l.pos = save
				return Token{}, false
			}
			l.pos++
		}
		l.skipInlineSpace()
		v, ok := l.readChannel()
		if !ok {
			l.pos = save
			return Token{}, false
		}
		chans[i] = v
	}
	l.skipInlineSpace()
	if l.peek() != ')' {
		l.pos = save
		return Token{}, false
	}
	l.pos++

	tok := l.emit(kind, start)
	tok.R, tok.G, tok.B = chans[0], chans[1], chans[2]
	if kind == RGBA {
		tok.A = chans[3]
	}
	return tok, true
}

func (l *Lexer) skipInlineSpace() {
	for !l.eof() && isSpace(l.peek()) {
		l.pos++
	}
}

// readChannel reads a 0..255 decimal channel value.
func (l *Lexer) readChannel() (uint8, bool) {
	start := l.pos
	for !l.eof() && isDigit(l.peek()) {
		l.pos++
	}
	if l.pos == start {
		return 0, false
	}
	v, err := strconv.ParseUint(l.input[start:l.pos], 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '-'
}
