package earley

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"

	"github.com/justinb91011/wearley/grammar"
	"github.com/justinb91011/wearley/internal/assert"
)

// Backpointer is the two-variant sum described in the engine's design
// notes: either a reference to a child Item that witnessed a nonterminal
// in the rule's rhs, or a sentinel recording that a terminal was
// consumed at a given input column. It is expressed as an explicit
// discriminated union rather than a nullable *Item, so that "terminal at
// column k" doesn't have to masquerade as a non-existent child item.
type Backpointer struct {
	Child    *Item // non-nil iff this backpointer witnesses a nonterminal
	Terminal bool  // true iff this backpointer is a scanned-terminal sentinel
	Column   int   // for a terminal sentinel: the column the terminal was scanned at
}

func childBackpointer(it *Item) Backpointer {
	return Backpointer{Child: it}
}

func terminalBackpointer(column int) Backpointer {
	return Backpointer{Terminal: true, Column: column}
}

// Item is a partially matched rule at a given start column: rule, dot
// position, start position, aggregate weight, and the backpointers that
// witness the prefix matched so far. Items are never mutated after
// creation — the PREDICT/SCAN/ATTACH constructors newPredicted,
// advanceScan and advanceAttach always return a new Item.
type Item struct {
	Rule         *grammar.Rule
	Dot          int
	Start        int
	Weight       float64
	Backpointers []Backpointer
}

// newPredicted creates a fresh item for rule at dot 0, start position i,
// with the rule's own weight counted exactly once, as the spec's
// weight-accounting convention requires.
func newPredicted(rule *grammar.Rule, start int) *Item {
	return &Item{Rule: rule, Dot: 0, Start: start, Weight: rule.Weight}
}

// NextSymbol returns the rhs symbol immediately after the dot, and
// whether one exists (false means the item is complete).
func (it *Item) NextSymbol() (grammar.Symbol, bool) {
	assert.Invariant(it.Dot >= 0 && it.Dot <= len(it.Rule.RHS), "dot position %d out of range for %s", it.Dot, it.Rule)
	if it.Dot == len(it.Rule.RHS) {
		return "", false
	}
	return it.Rule.RHS[it.Dot], true
}

// Complete reports whether the dot has reached the end of the rhs.
func (it *Item) Complete() bool {
	_, hasNext := it.NextSymbol()
	return !hasNext
}

// advanceScan returns a new item with the dot moved past a scanned
// terminal at column i. SCAN adds nothing to the weight.
func (it *Item) advanceScan(i int) *Item {
	_, hasNext := it.NextSymbol()
	assert.Invariant(hasNext, "cannot scan past a complete item")
	bps := append(append([]Backpointer{}, it.Backpointers...), terminalBackpointer(i))
	return &Item{Rule: it.Rule, Dot: it.Dot + 1, Start: it.Start, Weight: it.Weight, Backpointers: bps}
}

// advanceAttach returns a new item with the dot moved past the
// nonterminal witnessed by child, whose own weight (already the sum of
// its own subtree) is added to this item's running weight.
func (it *Item) advanceAttach(child *Item) *Item {
	_, hasNext := it.NextSymbol()
	assert.Invariant(hasNext, "cannot attach past a complete item")
	bps := append(append([]Backpointer{}, it.Backpointers...), childBackpointer(child))
	return &Item{Rule: it.Rule, Dot: it.Dot + 1, Start: it.Start, Weight: it.Weight + child.Weight, Backpointers: bps}
}

// identity is the hashable (rule, dot, start) triple dedup keys off of —
// weight and backpointers are deliberately excluded, since they are the
// relaxable payload, not the identity.
type identity struct {
	RuleID int
	Dot    int
	Start  int
}

// key computes a structural hash of the item's identity, in the manner
// of the teacher's own backlink keying: a small identity struct run
// through structhash rather than hand-rolled string concatenation.
func (it *Item) key() string {
	h, err := structhash.Hash(identity{RuleID: it.Rule.ID, Dot: it.Dot, Start: it.Start}, 1)
	assert.Invariant(err == nil, "structhash of a plain identity struct cannot fail: %v", err)
	return h
}

func (it *Item) String() string {
	parts := make([]string, 0, len(it.Rule.RHS)+1)
	for i, s := range it.Rule.RHS {
		if i == it.Dot {
			parts = append(parts, "·")
		}
		parts = append(parts, string(s))
	}
	if it.Dot == len(it.Rule.RHS) {
		parts = append(parts, "·")
	}
	return fmt.Sprintf("(%d, %s → %s, w=%.4f)", it.Start, it.Rule.LHS, strings.Join(parts, " "), it.Weight)
}
