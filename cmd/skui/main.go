package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/markijohn/skui/pkg/skui/errors"
	"github.com/markijohn/skui/pkg/skui/format"
	"github.com/markijohn/skui/pkg/skui/htmlpreview"
	"github.com/markijohn/skui/pkg/skui/parser"
	"github.com/markijohn/skui/pkg/skui/repl"
)

// Version is set at compile time via -ldflags
var Version = "0.3.0"

var (
	// Display flags
	helpFlag        = flag.Bool("h", false, "Show help message")
	helpLongFlag    = flag.Bool("help", false, "Show help message")
	versionFlag     = flag.Bool("V", false, "Show version information")
	versionLongFlag = flag.Bool("version", false, "Show version information")

	// Evaluation flags
	evalFlag     = flag.String("e", "", "Parse a source string")
	evalLongFlag = flag.String("eval", "", "Parse a source string")
	checkFlag    = flag.Bool("check", false, "Check syntax without printing the tree")

	// Output flags
	yamlFlag = flag.Bool("yaml", false, "Print the document as YAML")
	htmlFlag = flag.Bool("html", false, "Print the document as an HTML preview page")
)

func main() {
	flag.Usage = printHelp
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}
	if *versionFlag || *versionLongFlag {
		fmt.Printf("skui version %s\n", Version)
		os.Exit(0)
	}

	// Prefer -e over --eval if both set
	evalCode := *evalFlag
	if evalCode == "" {
		evalCode = *evalLongFlag
	}

	switch {
	case evalCode != "":
		os.Exit(run("<eval>", evalCode))
	case *checkFlag:
		files := flag.Args()
		if len(files) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --check requires at least one file")
			os.Exit(2)
		}
		os.Exit(checkFiles(files))
	case len(flag.Args()) > 0:
		filename := flag.Args()[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file '%s': %v\n", filename, err)
			os.Exit(1)
		}
		os.Exit(run(filename, string(content)))
	default:
		repl.Start(os.Stdout, Version)
	}
}

// run parses source and prints the selected rendering. It returns the
// process exit code.
func run(filename, source string) int {
	doc, err := parser.Parse(source)
	if err != nil {
		printParseError(filename, source, err)
		return 1
	}

	switch {
	case *checkFlag:
		// Syntax only
	case *htmlFlag:
		if err := htmlpreview.Render(os.Stdout, doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering HTML: %v\n", err)
			return 1
		}
		fmt.Println()
	case *yamlFlag:
		text, err := format.YAML(doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering YAML: %v\n", err)
			return 1
		}
		fmt.Print(text)
	default:
		fmt.Print(format.Tree(doc))
	}
	return 0
}

// checkFiles checks the syntax of one or more files.
func checkFiles(files []string) int {
	hasErrors := false
	for _, filename := range files {
		content, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", filename, err)
			return 2
		}
		if _, err := parser.Parse(string(content)); err != nil {
			printParseError(filename, string(content), err)
			hasErrors = true
		}
	}
	if hasErrors {
		return 1
	}
	return 0
}

func printParseError(filename, source string, err error) {
	perr, ok := err.(*errors.ParseError)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return
	}
	line, column := perr.Position(source)
	fmt.Fprintf(os.Stderr, "%s: line %d, column %d: %s\n", filename, line, column, perr.Error())
	fmt.Fprint(os.Stderr, errors.RenderSnippet(source, perr.Span, 2))
}

func printHelp() {
	fmt.Printf(`skui - declarative UI description parser version %s

Usage:
  skui [options] [file]
  skui -e "source"
  skui --check <file>...

Display Options:
  -h, --help            Show this help message
  -V, --version         Show version information

Evaluation Options:
  -e, --eval <source>   Parse a source string
  --check               Check syntax without printing the tree

Output Options:
  --yaml                Print the parsed document as YAML
  --html                Print the parsed document as an HTML preview page

Examples:
  skui                       Start interactive REPL
  skui layout.skui           Parse a file and print the tree
  skui --yaml layout.skui    Parse a file and print YAML
  skui --html layout.skui    Render a static HTML preview
  skui -e 'Button("OK")'     Parse inline source
  skui --check *.skui        Check multiple files
`, Version)
}
