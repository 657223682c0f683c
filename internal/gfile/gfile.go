package gfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/justinb91011/wearley/grammar"
)

// tracer traces with key 'wearley.gfile'.
func tracer() tracing.Trace {
	return tracing.Select("wearley.gfile")
}

// Reader is a grammar.RuleSource backed by a line-oriented grammar file.
// Create one with NewReader or Load a grammar directly.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	err     error
}

var _ grammar.RuleSource = (*Reader)(nil)

// NewReader wraps r as a grammar.RuleSource.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next implements grammar.RuleSource: it scans forward past blank and
// comment-only lines and parses the next tab-delimited rule line.
func (rd *Reader) Next() (prob float64, lhs grammar.Symbol, rhs []grammar.Symbol, line int, ok bool) {
	for rd.scanner.Scan() {
		rd.line++
		raw := rd.scanner.Text()
		if hash := strings.IndexByte(raw, '#'); hash >= 0 {
			raw = raw[:hash]
		}
		raw = strings.TrimRight(raw, " \t\r\n")
		if raw == "" {
			continue
		}
		fields := strings.Split(raw, "\t")
		if len(fields) < 3 {
			rd.err = &grammar.FormatError{Line: rd.line, Reason: fmt.Sprintf("expected 3 tab-separated fields, got %d", len(fields))}
			tracer().Errorf("%v", rd.err)
			return 0, "", nil, rd.line, false
		}
		p, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			rd.err = &grammar.FormatError{Line: rd.line, Reason: fmt.Sprintf("non-numeric probability %q", fields[0])}
			tracer().Errorf("%v", rd.err)
			return 0, "", nil, rd.line, false
		}
		rhsFields := strings.Fields(fields[2])
		if len(rhsFields) == 0 {
			rd.err = &grammar.FormatError{Line: rd.line, Reason: "empty right-hand side"}
			tracer().Errorf("%v", rd.err)
			return 0, "", nil, rd.line, false
		}
		rhs = make([]grammar.Symbol, len(rhsFields))
		for i, f := range rhsFields {
			rhs[i] = grammar.Symbol(f)
		}
		tracer().Debugf("grammar line %d: %v\t%s\t%v", rd.line, p, fields[1], rhs)
		return p, grammar.Symbol(fields[1]), rhs, rd.line, true
	}
	if err := rd.scanner.Err(); err != nil {
		rd.err = err
	}
	return 0, "", nil, rd.line, false
}

// Err returns the first error encountered while scanning, if any.
func (rd *Reader) Err() error {
	return rd.err
}

// Load reads a grammar file from path and builds a Grammar with the
// given start symbol.
func Load(path string, start grammar.Symbol) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gfile: opening %s: %w", path, err)
	}
	defer f.Close()

	rd := NewReader(f)
	b := grammar.NewBuilder(start).AddSource(rd)
	if rd.Err() != nil {
		return nil, rd.Err()
	}
	g, err := b.Build()
	if err != nil {
		return nil, err
	}
	return g, nil
}
