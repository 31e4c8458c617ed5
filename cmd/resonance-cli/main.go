package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cognicore/resonance/pkg/resonance"
	"github.com/cognicore/resonance/pkg/resonance/internalerr"
	"github.com/cognicore/resonance/pkg/resonance/lexicon"
)

func main() {
	var (
		input       = flag.String("input", "", "Path to a text file (default: stdin)")
		lexiconPath = flag.String("lexicon", "", "Optional lexicon override YAML")
		pretty      = flag.Bool("pretty", true, "Indent JSON output")
	)
	flag.Parse()

	text, err := readInput(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		log.Fatalf("read input: %v: no text to analyze", internalerr.ErrInvalidInput)
	}

	lex := lexicon.Default()
	if *lexiconPath != "" {
		lex, err = lexicon.LoadFromYAML(*lexiconPath)
		if err != nil {
			log.Fatalf("load lexicon: %v", err)
		}
	}

	engine := resonance.New(resonance.Options{Lexicons: lex})
	result, err := engine.Analyze(text)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encode result: %v", err)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
