package grammar

import (
	"fmt"
	"math"
)

// FormatError reports a malformed rule: a probability outside (0, 1], or
// a rule source that could not be turned into (probability, lhs, rhs).
type FormatError struct {
	Line   int // 1-based line or record number, 0 if not applicable
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("grammar: line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("grammar: %s", e.Reason)
}

// RuleSource yields (probability, lhs, rhs) triples to be folded into a
// Grammar under construction. internal/gfile implements one backed by a
// grammar file; tests and the programmatic Builder API can use literal
// slices instead.
type RuleSource interface {
	// Next returns the next triple, or ok == false when exhausted. Line
	// is a 1-based source line number for error reporting, or 0 if the
	// source has no natural notion of lines.
	Next() (prob float64, lhs Symbol, rhs []Symbol, line int, ok bool)
}

// Grammar is an immutable weighted context-free grammar: a mapping from
// left-hand-side Symbol to the ordered Rules that expand it, plus a
// designated start symbol. Every rule's lhs is present as a key, even if
// that lhs has exactly the rules stored there and nothing else refers to
// it.
type Grammar struct {
	start      Symbol
	expansions map[Symbol][]*Rule
	rules      []*Rule // all rules, in the order they were added, for reproducible enumeration
}

// Start returns the grammar's designated start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Expansions returns all rules with the given left-hand side, in
// insertion order. It returns an empty (nil) slice if lhs is a terminal
// (or simply unknown to this grammar).
func (g *Grammar) Expansions(lhs Symbol) []*Rule {
	return g.expansions[lhs]
}

// IsNonterminal reports whether lhs has at least one rule expanding it.
func (g *Grammar) IsNonterminal(sym Symbol) bool {
	return len(g.expansions[sym]) > 0
}

// Rules returns every rule in the grammar, in insertion order.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Len returns the number of rules in the grammar.
func (g *Grammar) Len() int {
	return len(g.rules)
}

// weightFromProbability converts a probability in (0, 1] to a
// nonnegative weight via −log2(p).
func weightFromProbability(p float64) (float64, error) {
	if math.IsNaN(p) || p <= 0 || p > 1 {
		return 0, fmt.Errorf("probability %v is not in (0, 1]", p)
	}
	return -math.Log2(p), nil
}

// Builder assembles a Grammar from a start symbol and zero or more rule
// sources. Construction is two-phase (Builder, then Build) so that
// internal/gfile (via AddSource) and the programmatic Rule method share
// one code path for validation and weight derivation.
type Builder struct {
	start Symbol
	g     *Grammar
	err   error
}

// NewBuilder creates a Builder for a grammar with the given start
// symbol.
func NewBuilder(start Symbol) *Builder {
	return &Builder{
		start: start,
		g: &Grammar{
			start:      start,
			expansions: make(map[Symbol][]*Rule),
		},
	}
}

// Rule adds a single production to the grammar under construction. prob
// must lie in (0, 1]; it is converted to a weight via −log2(p). Errors
// are sticky: once Rule has failed, subsequent calls and Build are
// no-ops that return the same error.
func (b *Builder) Rule(prob float64, lhs Symbol, rhs ...Symbol) *Builder {
	return b.addRule(prob, lhs, rhs, 0)
}

// AddSource folds every triple yielded by src into the grammar under
// construction.
func (b *Builder) AddSource(src RuleSource) *Builder {
	if b.err != nil {
		return b
	}
	for {
		prob, lhs, rhs, line, ok := src.Next()
		if !ok {
			break
		}
		if b.addRule(prob, lhs, rhs, line); b.err != nil {
			return b
		}
	}
	return b
}

func (b *Builder) addRule(prob float64, lhs Symbol, rhs []Symbol, line int) *Builder {
	if b.err != nil {
		return b
	}
	if lhs == "" {
		b.err = &FormatError{Line: line, Reason: "empty left-hand side"}
		return b
	}
	weight, err := weightFromProbability(prob)
	if err != nil {
		b.err = &FormatError{Line: line, Reason: err.Error()}
		return b
	}
	rhsCopy := make([]Symbol, len(rhs))
	copy(rhsCopy, rhs)
	r := &Rule{
		ID:     len(b.g.rules),
		LHS:    lhs,
		RHS:    rhsCopy,
		Weight: weight,
	}
	b.g.rules = append(b.g.rules, r)
	b.g.expansions[lhs] = append(b.g.expansions[lhs], r)
	return b
}

// Build finalizes the grammar, returning any error encountered while
// adding rules. The invariant "every lhs is present as a key" is
// enforced here for the start symbol, which must head at least one rule.
func (b *Builder) Build() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if _, ok := b.g.expansions[b.start]; !ok {
		return nil, &FormatError{Reason: fmt.Sprintf("start symbol %q has no rules", b.start)}
	}
	return b.g, nil
}
