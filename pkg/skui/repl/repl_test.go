package repl

import (
	"testing"
)

func TestNeedsMoreInput(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{`Button("OK")`, false},
		{"Flex(Vertical){", true},
		{"Flex(Vertical){ Button(\"OK\")", true},
		{"Flex(Vertical){ Button(\"OK\") }", false},
		{"[1, 2,", true},
		{`"a string with { inside"`, false},
		{`"escaped \" quote {"`, false},
		{".myBtn {", true},
		{".myBtn { border: 2px }", false},
	}

	for _, tt := range tests {
		if got := needsMoreInput(tt.input); got != tt.want {
			t.Errorf("needsMoreInput(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFilterCompletions(t *testing.T) {
	got := filterCompletions("Fl")
	if len(got) == 0 {
		t.Fatal("expected completions for Fl")
	}
	for _, c := range got {
		if c != "Flex" && c != "FlexItem" {
			t.Errorf("unexpected completion %q", c)
		}
	}

	// completions keep the text before the word being completed
	got = filterCompletions("Flex(Vert")
	if len(got) != 1 || got[0] != "Flex(Vertical" {
		t.Errorf("prefix handling wrong: %v", got)
	}

	if got := filterCompletions("Flex( "); got != nil {
		t.Errorf("trailing space must not complete: %v", got)
	}
	if got := filterCompletions(""); got != nil {
		t.Errorf("empty line must not complete: %v", got)
	}
}
