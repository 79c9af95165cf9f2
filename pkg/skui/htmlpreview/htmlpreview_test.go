package htmlpreview

import (
	"strings"
	"testing"

	"github.com/markijohn/skui/pkg/skui/parser"
)

func render(t *testing.T, input string) string {
	t.Helper()
	doc, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var sb strings.Builder
	if err := Fragment(doc).Render(&sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return sb.String()
}

func TestBasicStructure(t *testing.T) {
	out := render(t, `Flex(Vertical) #main .wide { Button("OK") }`)

	for _, want := range []string{
		"<flex", `id="main"`, `class="wide"`, "<button>OK</button>", "</flex>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStyleAttribute(t *testing.T) {
	out := render(t, `
		Button { color: red; padding: 2px }
		Button("OK")
	`)
	if !strings.Contains(out, `style="color: red; padding: 2px"`) {
		t.Errorf("resolved cascade missing from style attribute:\n%s", out)
	}
}

func TestPropertiesBecomeDataAttributes(t *testing.T) {
	out := render(t, `Flex(){ Weight: 2 }`)
	if !strings.Contains(out, `data-weight="2"`) {
		t.Errorf("property missing:\n%s", out)
	}
}

func TestRelativeResolution(t *testing.T) {
	// the inner label's placeholder resolves against the arguments of
	// the component that contains it
	out := render(t, `Flex("hello"){ Label(${0}) }`)
	if !strings.Contains(out, "<label>hello</label>") {
		t.Errorf("relative argument not resolved:\n%s", out)
	}
}

func TestDescendantStylesApply(t *testing.T) {
	out := render(t, `
		Flex Button { color: blue }
		Flex(){ Grid(){ Button("deep") } }
	`)
	if !strings.Contains(out, `<button style="color: blue">deep</button>`) {
		t.Errorf("descendant rule not applied:\n%s", out)
	}
}

func TestFullPage(t *testing.T) {
	doc, err := parser.Parse(`Button("OK")`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var sb strings.Builder
	if err := Render(&sb, doc); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "<!doctype html>") {
		t.Errorf("missing doctype:\n%s", out)
	}
	if !strings.Contains(out, "<title>skui preview</title>") {
		t.Errorf("missing title:\n%s", out)
	}
}
