// Package repl implements the interactive skui shell with line editing,
// history, and tab completion.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/markijohn/skui/pkg/skui/errors"
	"github.com/markijohn/skui/pkg/skui/format"
	"github.com/markijohn/skui/pkg/skui/parser"
)

const PROMPT = ">> "
const CONTINUATION_PROMPT = ".. "

const LOGO = `
█▀ █▄▀ █░█ █
▄█ █░█ █▄█ █ `

// completion vocabulary: common component names, style keywords, and
// CSS property names that come up in UI descriptions
var completionWords = []string{
	"Flex", "FlexItem", "Grid", "Button", "Label", "Input", "Image",
	"Vertical", "Horizontal", "MainFill", "Center",
	"true", "false",
	"auto", "none", "inherit",
	"background-color", "border", "color", "margin", "padding",
	"width", "height",
	"hover", "active", "focus", "disabled",
}

// Start runs the REPL until exit or Ctrl+D.
func Start(out io.Writer, version string) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(filterCompletions)

	historyFile := filepath.Join(os.TempDir(), ".skui_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintf(out, "%s", LOGO)
	fmt.Fprintln(out, "v", version)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit")
	fmt.Fprintln(out, "Use Tab for completion, ↑↓ for history")
	fmt.Fprintln(out, "Type ':help' for REPL commands")
	fmt.Fprintln(out, "")

	var inputBuffer strings.Builder
	yamlMode := false

	for {
		currentPrompt := PROMPT
		if inputBuffer.Len() > 0 {
			currentPrompt = CONTINUATION_PROMPT
		}
		input, err := line.Prompt(currentPrompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				if inputBuffer.Len() > 0 {
					fmt.Fprintln(out, "^C (cleared)")
				} else {
					fmt.Fprintln(out, "^C")
				}
				inputBuffer.Reset()
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if inputBuffer.Len() == 0 && (trimmed == "exit" || trimmed == "quit") {
			fmt.Fprintln(out, "Goodbye!")
			return
		}

		if inputBuffer.Len() == 0 && strings.HasPrefix(trimmed, ":") {
			yamlMode = handleReplCommand(trimmed, out, yamlMode)
			continue
		}

		if inputBuffer.Len() == 0 && trimmed == "" {
			continue
		}

		if inputBuffer.Len() > 0 {
			inputBuffer.WriteString("\n")
		}
		inputBuffer.WriteString(input)

		fullInput := inputBuffer.String()
		if needsMoreInput(fullInput) {
			continue
		}

		if trimmed != "" {
			line.AppendHistory(fullInput)
		}

		doc, err := parser.Parse(fullInput)
		if err != nil {
			printParseError(out, fullInput, err)
			inputBuffer.Reset()
			continue
		}

		if yamlMode {
			text, err := format.YAML(doc)
			if err != nil {
				fmt.Fprintf(out, "Error rendering YAML: %v\n", err)
			} else {
				io.WriteString(out, text)
			}
		} else {
			io.WriteString(out, format.Tree(doc))
		}

		inputBuffer.Reset()
	}
}

func handleReplCommand(cmd string, out io.Writer, yamlMode bool) bool {
	switch cmd {
	case ":help", ":h", ":?":
		fmt.Fprintln(out, "REPL Commands:")
		fmt.Fprintln(out, "  :help, :h, :?   Show this help")
		fmt.Fprintln(out, "  :yaml           Toggle YAML output mode")
		fmt.Fprintln(out, "  exit, quit      Exit the REPL")
		return yamlMode

	case ":yaml":
		if !yamlMode {
			fmt.Fprintln(out, "YAML output mode ON")
		} else {
			fmt.Fprintln(out, "YAML output mode OFF (tree output)")
		}
		return !yamlMode

	default:
		fmt.Fprintf(out, "Unknown command: %s (type :help for commands)\n", cmd)
		return yamlMode
	}
}

func printParseError(out io.Writer, source string, err error) {
	perr, ok := err.(*errors.ParseError)
	if !ok {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	io.WriteString(out, perr.Pretty(source))
}

// filterCompletions suggests completions for the word being typed.
func filterCompletions(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	if line[len(line)-1] == ' ' || line[len(line)-1] == '\t' {
		return nil
	}

	words := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '(' || r == '{' || r == '[' ||
			r == ',' || r == ':' || r == ';'
	})
	if len(words) == 0 {
		return nil
	}
	lastWord := words[len(words)-1]
	prefix := line[:len(line)-len(lastWord)]

	var matches []string
	for _, word := range completionWords {
		if strings.HasPrefix(word, lastWord) {
			matches = append(matches, prefix+word)
		}
	}
	return matches
}

// needsMoreInput reports whether input still has unclosed braces,
// brackets, or parentheses outside of strings.
func needsMoreInput(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	braceCount := 0
	bracketCount := 0
	parenCount := 0
	inString := false
	escapeNext := false

	for i := 0; i < len(input); i++ {
		ch := input[i]

		if escapeNext {
			escapeNext = false
			continue
		}
		if ch == '\\' {
			escapeNext = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			braceCount++
		case '}':
			braceCount--
		case '[':
			bracketCount++
		case ']':
			bracketCount--
		case '(':
			parenCount++
		case ')':
			parenCount--
		}
	}

	return braceCount > 0 || bracketCount > 0 || parenCount > 0
}
