package lexer

import (
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `Flex(MainFill) #myFlex .bg {
	padding: 1px;
	title: "hello\nworld"
	weight: 1.5
	count: -7
	visible: true
	color: rgb(255, 0, 0)
	shade: rgba(0, 128, 255, 64)
	ratio: 50%
	src: ${0.title}
}`

	tests := []struct {
		expectedKind TokenKind
		expectedText string
	}{
		{IDENT, "Flex"},
		{LPAREN, "("},
		{IDENT, "MainFill"},
		{RPAREN, ")"},
		{ID, "myFlex"},
		{CLASS, "bg"},
		{LBRACE, "{"},
		{IDENT, "padding"},
		{COLON, ":"},
		{PX, ""},
		{SEMICOLON, ";"},
		{IDENT, "title"},
		{COLON, ":"},
		{STRING, "hello\nworld"},
		{IDENT, "weight"},
		{COLON, ":"},
		{FLOAT, ""},
		{IDENT, "count"},
		{COLON, ":"},
		{INT, ""},
		{IDENT, "visible"},
		{COLON, ":"},
		{TRUE, "true"},
		{IDENT, "color"},
		{COLON, ":"},
		{RGB, ""},
		{IDENT, "shade"},
		{COLON, ":"},
		{RGBA, ""},
		{IDENT, "ratio"},
		{COLON, ":"},
		{PERCENT, ""},
		{IDENT, "src"},
		{COLON, ":"},
		{RELATIVE, "0.title"},
		{RBRACE, "}"},
	}

	var toks []Token
	for _, tok := range Tokenize(input) {
		if tok.Kind != WHITESPACE {
			toks = append(toks, tok)
		}
	}

	if len(toks) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(toks))
	}
	for i, tt := range tests {
		if toks[i].Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%q, got=%q (%q)",
				i, tt.expectedKind, toks[i].Kind, input[toks[i].Span.Start:toks[i].Span.End])
		}
		if tt.expectedText != "" && toks[i].Text != tt.expectedText {
			t.Fatalf("tests[%d] - text wrong. expected=%q, got=%q",
				i, tt.expectedText, toks[i].Text)
		}
	}
}

func TestNumbersAndUnits(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
		i     int64
		f     float64
	}{
		{"42", INT, 42, 0},
		{"-7", INT, -7, 0},
		{"1.5", FLOAT, 0, 1.5},
		{"-0.25", FLOAT, 0, -0.25},
		{"12px", PX, 0, 12},
		{"1.5em", EM, 0, 1.5},
		{"10pt", PT, 0, 10},
		{"50%", PERCENT, 0, 50},
		{"12.5%", PERCENT, 0, 12.5},
	}

	for _, tt := range tests {
		toks := Tokenize(tt.input)
		if len(toks) != 1 {
			t.Fatalf("%q: expected 1 token, got %d", tt.input, len(toks))
		}
		tok := toks[0]
		if tok.Kind != tt.kind {
			t.Errorf("%q: kind wrong. expected=%q, got=%q", tt.input, tt.kind, tok.Kind)
		}
		if tok.Int != tt.i {
			t.Errorf("%q: int wrong. expected=%d, got=%d", tt.input, tt.i, tok.Int)
		}
		if tok.Float != tt.f {
			t.Errorf("%q: float wrong. expected=%v, got=%v", tt.input, tt.f, tok.Float)
		}
	}
}

func TestUnitBoundaries(t *testing.T) {
	// A unit only attaches on an exact boundary, and never to a
	// negative number.
	toks := Tokenize("10pxx")
	if len(toks) != 2 || toks[0].Kind != INT || toks[1].Kind != IDENT || toks[1].Text != "pxx" {
		t.Fatalf("10pxx lexed wrong: %v", kinds(toks))
	}

	toks = Tokenize("-5px")
	if len(toks) != 2 || toks[0].Kind != INT || toks[0].Int != -5 || toks[1].Kind != IDENT {
		t.Fatalf("-5px lexed wrong: %v", kinds(toks))
	}
}

func TestColorFunctions(t *testing.T) {
	toks := Tokenize("rgb(255, 0, 0)")
	if len(toks) != 1 || toks[0].Kind != RGB {
		t.Fatalf("rgb not a single token: %v", kinds(toks))
	}
	if toks[0].R != 255 || toks[0].G != 0 || toks[0].B != 0 {
		t.Fatalf("rgb channels wrong: %d %d %d", toks[0].R, toks[0].G, toks[0].B)
	}

	toks = Tokenize("rgba(1,2,3,4)")
	if len(toks) != 1 || toks[0].Kind != RGBA || toks[0].A != 4 {
		t.Fatalf("rgba lexed wrong: %v", kinds(toks))
	}

	// Out-of-range channel: the name falls back to an identifier and the
	// rest lexes as ordinary tokens.
	toks = Tokenize("rgb(256, 0, 0)")
	if toks[0].Kind != IDENT || toks[0].Text != "rgb" {
		t.Fatalf("rgb(256,...) should fall back to ident, got %v", kinds(toks))
	}
}

func TestSigiledNames(t *testing.T) {
	toks := Tokenize("#myId .myClass #ff0000")
	var got []Token
	for _, tok := range toks {
		if tok.Kind != WHITESPACE {
			got = append(got, tok)
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(got))
	}
	if got[0].Kind != ID || got[0].Text != "myId" {
		t.Errorf("id wrong: %q %q", got[0].Kind, got[0].Text)
	}
	if got[1].Kind != CLASS || got[1].Text != "myClass" {
		t.Errorf("class wrong: %q %q", got[1].Kind, got[1].Text)
	}
	// hex colors lex as ID; the parser decides from context
	if got[2].Kind != ID || got[2].Text != "ff0000" {
		t.Errorf("hex color wrong: %q %q", got[2].Kind, got[2].Text)
	}
}

func TestStringEscapes(t *testing.T) {
	toks := Tokenize(`"a\tb\"c"`)
	if len(toks) != 1 || toks[0].Kind != STRING {
		t.Fatalf("expected 1 string token, got %v", kinds(toks))
	}
	if toks[0].Text != "a\tb\"c" {
		t.Fatalf("escape handling wrong: %q", toks[0].Text)
	}
}

func TestIllegalTokens(t *testing.T) {
	tests := []string{"@", `"unterminated`, "${unclosed", "#"}
	for _, input := range tests {
		found := false
		for _, tok := range Tokenize(input) {
			if tok.Kind == ILLEGAL {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: expected an ILLEGAL token", input)
		}
	}
}

// Spans must tile the input exactly: no gaps, no overlaps.
func TestSpanCoverage(t *testing.T) {
	inputs := []string{
		"Flex(MainFill) #myFlex { padding: 1px; }",
		".a.b#id { border: 1px solid #000000 }",
		`Button("OK") Button("Cancel")`,
		"x: ${0.title} y: rgba(1,2,3,4) 50% 1.5em",
	}
	for _, input := range inputs {
		pos := 0
		for _, tok := range Tokenize(input) {
			if tok.Span.Start != pos {
				t.Fatalf("%q: gap or overlap at byte %d (token %q)", input, pos, tok.Kind)
			}
			if tok.Span.End < tok.Span.Start {
				t.Fatalf("%q: inverted span %v", input, tok.Span)
			}
			pos = tok.Span.End
		}
		if pos != len(input) {
			t.Fatalf("%q: tokens end at %d, input ends at %d", input, pos, len(input))
		}
	}
}

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}
