package errors

import (
	"strings"
	"testing"

	"github.com/markijohn/skui/pkg/skui/lexer"
)

func TestPosition(t *testing.T) {
	source := "Flex()\nButton(\n"
	err := New(ExpectParentBlock, lexer.Span{Start: 13, End: 14})

	line, column := err.Position(source)
	if line != 2 {
		t.Errorf("line wrong: %d", line)
	}
	if column != 7 {
		t.Errorf("column wrong: %d", column)
	}
}

func TestRenderSnippet(t *testing.T) {
	source := "line one\nline two\nbad token here\nline four"
	// span covers "token" on line 3
	span := lexer.Span{Start: 22, End: 27}

	out := RenderSnippet(source, span, 2)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 2 context lines + line + caret, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "line one") || !strings.HasPrefix(lines[0], "   1 |") {
		t.Errorf("context line wrong: %q", lines[0])
	}
	if !strings.Contains(lines[2], "bad token here") {
		t.Errorf("offending line wrong: %q", lines[2])
	}
	caret := lines[3]
	if !strings.Contains(caret, "^^^^^") {
		t.Errorf("caret underline wrong: %q", caret)
	}
	if strings.Count(caret, "^") != 5 {
		t.Errorf("caret width should cover the span: %q", caret)
	}
}

func TestRenderSnippetAtStart(t *testing.T) {
	source := "@"
	out := RenderSnippet(source, lexer.Span{Start: 0, End: 1}, 2)
	if !strings.Contains(out, "   1 | @") {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "| ^") {
		t.Errorf("missing caret:\n%s", out)
	}
}

func TestZeroWidthSpan(t *testing.T) {
	// truncated input: the span sits at EOF and still gets one caret
	source := "Flex("
	out := RenderSnippet(source, lexer.Span{Start: 5, End: 5}, 0)
	if !strings.Contains(out, "^") {
		t.Errorf("zero-width span needs a caret:\n%s", out)
	}
}

func TestKindMessages(t *testing.T) {
	kinds := []Kind{
		ExpectIdent, ExpectValue, InvalidCssValue, InvalidCssSelector,
		ExpectKeyValue, ExpectParameter, ExpectBraceBlock,
		ExpectParentBlock, UnknownStart, IdAlreadyDefined, UnknownToken,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		err := New(k, lexer.Span{})
		if err.Error() == "" {
			t.Errorf("%v: empty message", k)
		}
		if seen[err.Error()] {
			t.Errorf("%v: duplicate message %q", k, err.Error())
		}
		seen[err.Error()] = true
	}
}
