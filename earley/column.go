package earley

import (
	"errors"

	"github.com/emirpasic/gods/queue/linkedlistqueue"

	"github.com/justinb91011/wearley/grammar"
	"github.com/justinb91011/wearley/internal/iteratable"
)

// ErrAgendaEmpty is returned by Column.Pop when there is nothing left to
// process.
var ErrAgendaEmpty = errors.New("earley: agenda is empty")

// Column is both the unprocessed-work queue and the already-processed
// witness set for one position in the chart. It implements the
// dedup-and-relax semantics described in the engine's design: pushing an
// item with an identity already present either discards it (no
// improvement), relaxes the stored representative and re-enqueues it
// (strict improvement), or adds it fresh.
//
// The FIFO queue of unprocessed work is backed by gods' linked-list
// queue; the "every item ever accepted, keyed by identity" witness set is
// backed by internal/iteratable.Set, mirroring the teacher's own
// "destructive container" idiom for scanner/parser bookkeeping.
type Column struct {
	index    int
	latest   *iteratable.Set[*Item] // identity key -> current best item
	pending  *linkedlistqueue.Queue // FIFO of *Item awaiting processing
	all      []*Item                // every item ever accepted by push, in push order
	bySymbol map[grammar.Symbol][]*Item
}

// NewColumn creates an empty column for chart position i.
func NewColumn(i int) *Column {
	return &Column{
		index:    i,
		latest:   iteratable.New[*Item](),
		pending:  linkedlistqueue.New(),
		bySymbol: make(map[grammar.Symbol][]*Item),
	}
}

// Index returns this column's position in the chart.
func (c *Column) Index() int {
	return c.index
}

// Push implements the relaxation step: a new identity is appended and
// queued; a strictly lower-weight duplicate replaces the stored
// representative and is re-queued; anything else is discarded.
func (c *Column) Push(it *Item) {
	key := it.key()
	existing, seen := c.latest.Get(key)
	if seen && it.Weight >= existing.Weight {
		return
	}
	c.latest.Set(key, it)
	c.pending.Enqueue(it)
	c.all = append(c.all, it)
	if sym, ok := it.NextSymbol(); ok {
		c.bySymbol[sym] = append(c.bySymbol[sym], it)
	}
}

// Pop dequeues the next unprocessed item in FIFO order.
func (c *Column) Pop() (*Item, error) {
	v, ok := c.pending.Dequeue()
	if !ok {
		return nil, ErrAgendaEmpty
	}
	return v.(*Item), nil
}

// Len returns the number of items still waiting to be popped.
func (c *Column) Len() int {
	return c.pending.Size()
}

// Empty reports whether the column has no unprocessed items left.
func (c *Column) Empty() bool {
	return c.pending.Empty()
}

// All returns every item ever accepted into this column by Push, in push
// order — including items later superseded by a relaxation. ATTACH finds
// customers of a just-completed item through WaitingFor, which keeps its
// own per-symbol index of the same items.
func (c *Column) All() []*Item {
	return c.all
}

// WaitingFor returns every item (in push order, including superseded
// ones — see All) whose next expected symbol is sym. This is the
// production-quality index the spec's design notes call out as optional:
// it turns ATTACH's customer scan from O(column size) into a map lookup
// at the cost of bookkeeping on every push.
func (c *Column) WaitingFor(sym grammar.Symbol) []*Item {
	return c.bySymbol[sym]
}

// best returns the current best (lowest-weight) item stored under it's
// identity, if any has ever been pushed.
func (c *Column) best(it *Item) (*Item, bool) {
	return c.latest.Get(it.key())
}
