package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Transaction batches the candidate digits scheduled for removal from
// one cell. Multiple deduction passes can add to the same Transaction
// before it is committed; duplicate digits are deduped as they are added.
type Transaction struct {
	position   Position
	candidates map[int]bool
}

func newTransaction(p Position) *Transaction {
	return &Transaction{position: p, candidates: map[int]bool{}}
}

// Position returns the cell position this transaction targets.
func (t *Transaction) Position() Position { return t.position }

// Candidates returns the pending removal digits in ascending order.
func (t *Transaction) Candidates() []int {
	out := make([]int, 0, len(t.candidates))
	for d := range t.candidates {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

func (t *Transaction) add(digits []int) {
	for _, d := range digits {
		t.candidates[d] = true
	}
}

func (t *Transaction) String() string {
	return fmt.Sprintf("<Transaction cell:%s candidates:%v>", t.position, t.Candidates())
}

// TransactionSet collects pending candidate-removal transactions keyed
// by cell position, preserving first-insertion order so eliminations
// apply deterministically.
type TransactionSet struct {
	order []Position
	byPos map[Position]*Transaction
}

// NewTransactionSet returns an empty TransactionSet.
func NewTransactionSet() *TransactionSet {
	return &TransactionSet{byPos: map[Position]*Transaction{}}
}

// Add schedules digits for removal from the cell at p. Safe to call
// repeatedly for the same position; digits accumulate and dedupe.
func (ts *TransactionSet) Add(p Position, digits ...int) {
	t, ok := ts.byPos[p]
	if !ok {
		t = newTransaction(p)
		ts.byPos[p] = t
		ts.order = append(ts.order, p)
	}
	t.add(digits)
}

// Extend merges another TransactionSet's entries into this one.
func (ts *TransactionSet) Extend(other *TransactionSet) {
	for _, p := range other.order {
		t := other.byPos[p]
		ts.Add(p, t.Candidates()...)
	}
}

// Len returns the number of distinct cells with pending transactions.
func (ts *TransactionSet) Len() int {
	return len(ts.order)
}

// Transactions returns the pending transactions in insertion order.
func (ts *TransactionSet) Transactions() []*Transaction {
	out := make([]*Transaction, 0, len(ts.order))
	for _, p := range ts.order {
		out = append(out, ts.byPos[p])
	}
	return out
}

// Clear discards every pending transaction.
func (ts *TransactionSet) Clear() {
	ts.order = nil
	ts.byPos = map[Position]*Transaction{}
}

// String renders the pending transactions for debug-level logging.
func (ts *TransactionSet) String() string {
	lines := make([]string, 0, len(ts.order)+1)
	lines = append(lines, fmt.Sprintf("# of transactions:%d", ts.Len()))
	for _, t := range ts.Transactions() {
		lines = append(lines, t.String())
	}
	return strings.Join(lines, "\n")
}
