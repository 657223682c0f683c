package earley

import (
	"strings"

	"github.com/justinb91011/wearley/grammar"
	"github.com/justinb91011/wearley/internal/assert"
)

// Tree is a node in a derivation tree. Token is true only for a genuine
// leaf holding literal input text — a nonterminal that happens to have
// no children (an epsilon derivation) is a different thing and still
// renders with parentheses, so leafhood is tracked explicitly rather
// than inferred from an empty Children slice.
type Tree struct {
	Symbol   grammar.Symbol
	Children []*Tree
	Token    bool
}

// String renders the tree in the required output format: a non-terminal
// node as "(LHS child1 child2 …)", and a preterminal holding a token as
// "(POS token)".
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Tree) write(b *strings.Builder) {
	if t.Token {
		b.WriteString(string(t.Symbol))
		return
	}
	b.WriteString("(")
	b.WriteString(string(t.Symbol))
	for _, c := range t.Children {
		b.WriteString(" ")
		c.write(b)
	}
	b.WriteString(")")
}

// Yield returns the tree's left-to-right terminal sequence, i.e. the
// input tokens it covers.
func (t *Tree) Yield() []grammar.Symbol {
	if t.Token {
		return []grammar.Symbol{t.Symbol}
	}
	var out []grammar.Symbol
	for _, c := range t.Children {
		out = append(out, c.Yield()...)
	}
	return out
}

// buildTree reconstructs the optimal derivation tree from the goal
// item's backpointer graph by a straightforward post-order walk. It
// terminates because every backpointer strictly reduces the (column,
// dot_position) measure of its parent: a Child backpointer points at an
// item completed earlier, and a terminal sentinel has no further
// children at all.
func buildTree(chart *Chart, goal *Item) *Tree {
	return walk(chart, goal)
}

func walk(chart *Chart, it *Item) *Tree {
	assert.Invariant(it.Complete(), "buildTree called on an incomplete item: %s", it)
	assert.Invariant(len(it.Backpointers) == it.Dot, "item %s has %d backpointers, want %d", it, len(it.Backpointers), it.Dot)
	node := &Tree{Symbol: it.Rule.LHS}
	for _, bp := range it.Backpointers {
		if bp.Terminal {
			assert.Invariant(bp.Column >= 0 && bp.Column < len(chart.tokens), "terminal backpointer column %d out of range", bp.Column)
			node.Children = append(node.Children, &Tree{Symbol: chart.tokens[bp.Column], Token: true})
			continue
		}
		node.Children = append(node.Children, walk(chart, bp.Child))
	}
	return node
}
