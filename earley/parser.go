package earley

import (
	"github.com/justinb91011/wearley/grammar"
)

// Chart is the vector of Columns built while parsing one sentence: one
// column per inter-token position, 0…N for N input tokens.
type Chart struct {
	tokens  []grammar.Symbol
	columns []*Column
}

// Parser drives the chart to completion for a fixed Grammar. A Parser
// holds no per-sentence state of its own — all of it lives in the Chart
// returned by Parse — so one Parser (or, equivalently, the Grammar it
// wraps) may be shared across goroutines parsing different sentences
// concurrently, as long as each call gets its own Chart.
type Parser struct {
	g *grammar.Grammar
}

// NewParser creates a Parser bound to an immutable Grammar.
func NewParser(g *grammar.Grammar) *Parser {
	return &Parser{g: g}
}

// Result is the outcome of parsing one sentence: the optimal derivation
// tree and its weight, or Accepted == false if no derivation exists.
type Result struct {
	Tree     *Tree
	Weight   float64
	Accepted bool
}

// Parse runs the chart-parsing engine over tokens and returns the
// lowest-weight derivation rooted at the grammar's start symbol spanning
// the whole input, if one exists.
func (p *Parser) Parse(tokens []grammar.Symbol) Result {
	chart := p.newChart(tokens)
	var goal *Item

	n := len(tokens)
	for i := 0; i <= n; i++ {
		col := chart.columns[i]
		for !col.Empty() {
			item, err := col.Pop()
			if err != nil {
				break
			}
			sym, hasNext := item.NextSymbol()
			switch {
			case !hasNext:
				tracer().Debugf("%s => ATTACH", item)
				p.attach(chart, item, i)
				if item.Rule.LHS == p.g.Start() && item.Start == 0 && i == n {
					if goal == nil || item.Weight < goal.Weight {
						goal = item
					}
				}
			case p.g.IsNonterminal(sym):
				tracer().Debugf("%s => PREDICT", item)
				p.predict(col, sym, i)
				// A zero-width completion of sym in this column (an epsilon
				// derivation) may already have been processed before this
				// customer arrived; the re-prediction above is deduplicated
				// away, so attach such completions here directly.
				for _, done := range col.All() {
					if done.Start == i && done.Rule.LHS == sym && done.Complete() {
						col.Push(item.advanceAttach(done))
					}
				}
			default:
				tracer().Debugf("%s => SCAN", item)
				p.scan(chart, item, sym, i)
			}
		}
		dumpColumn(col, "drained")
	}

	if goal == nil {
		return Result{Accepted: false}
	}
	return Result{Tree: buildTree(chart, goal), Weight: goal.Weight, Accepted: true}
}

func (p *Parser) newChart(tokens []grammar.Symbol) *Chart {
	n := len(tokens)
	c := &Chart{tokens: tokens, columns: make([]*Column, n+1)}
	for i := range c.columns {
		c.columns[i] = NewColumn(i)
	}
	p.seed(c.columns[0])
	return c
}

// seed pushes a fresh item for every rule with lhs equal to the start
// symbol into column 0, as spec.md §4.3 "Seeding" requires.
func (p *Parser) seed(col0 *Column) {
	for _, rule := range p.g.Expansions(p.g.Start()) {
		col0.Push(newPredicted(rule, 0))
	}
}

// predict pushes a fresh item for every rule expanding nonterminal into
// column i. Re-pushing an already-present prediction is a no-op by
// virtue of Column.Push's dedup, so repeated PREDICTs of the same
// nonterminal in the same column are idempotent.
func (p *Parser) predict(col *Column, nonterminal grammar.Symbol, i int) {
	for _, rule := range p.g.Expansions(nonterminal) {
		col.Push(newPredicted(rule, i))
	}
}

// scan advances item past the terminal following its dot into column
// i+1, if that terminal matches the token actually at position i. There
// is no token at position i and no column i+1 once i == len(tokens), so
// a SCAN dispatched from the last column returns without pushing.
func (p *Parser) scan(chart *Chart, item *Item, terminal grammar.Symbol, i int) {
	if i >= len(chart.tokens) {
		return
	}
	if chart.tokens[i] != terminal {
		return
	}
	chart.columns[i+1].Push(item.advanceScan(i))
}

// attach combines the just-completed item with every customer waiting on
// its lhs in the column the item started in, producing new items in
// column i.
//
// The customer list is re-fetched on every iteration rather than ranged
// over once: when mid == i (a zero-width completion, e.g. an epsilon
// rule, completing in the very column it starts in), the attach loop can
// itself push fresh customers into the list it is scanning, and those
// must be seen in the same pass rather than waiting for some later event
// that would never come.
func (p *Parser) attach(chart *Chart, completed *Item, i int) {
	mid := chart.columns[completed.Start]
	for idx := 0; ; idx++ {
		customers := mid.WaitingFor(completed.Rule.LHS)
		if idx >= len(customers) {
			break
		}
		chart.columns[i].Push(customers[idx].advanceAttach(completed))
	}
}
