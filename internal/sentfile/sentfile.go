package sentfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/justinb91011/wearley/grammar"
)

// Sentence is one line of the batch: its raw text plus the tokens split
// from it.
type Sentence struct {
	Text   string
	Tokens []grammar.Symbol
}

// ReadAll reads every non-empty line from r as a Sentence.
func ReadAll(r io.Reader) ([]Sentence, error) {
	var out []Sentence
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		tokens := make([]grammar.Symbol, len(fields))
		for i, f := range fields {
			tokens[i] = grammar.Symbol(f)
		}
		out = append(out, Sentence{Text: line, Tokens: tokens})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Load reads the sentence batch at path.
func Load(path string) ([]Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sentfile: opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadAll(f)
}
