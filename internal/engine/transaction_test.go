package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionSetDedupesAndOrders(t *testing.T) {
	ts := NewTransactionSet()
	ts.Add(Position{Row: 1, Col: 1}, 3, 4)
	ts.Add(Position{Row: 0, Col: 0}, 9)
	ts.Add(Position{Row: 1, Col: 1}, 4, 5)

	assert.Equal(t, 2, ts.Len())
	txns := ts.Transactions()
	assert.Equal(t, Position{Row: 1, Col: 1}, txns[0].Position())
	assert.Equal(t, []int{3, 4, 5}, txns[0].Candidates())
	assert.Equal(t, Position{Row: 0, Col: 0}, txns[1].Position())
}

func TestTransactionSetExtend(t *testing.T) {
	a := NewTransactionSet()
	a.Add(Position{Row: 0, Col: 0}, 1)

	b := NewTransactionSet()
	b.Add(Position{Row: 0, Col: 0}, 2)
	b.Add(Position{Row: 1, Col: 1}, 3)

	a.Extend(b)
	assert.Equal(t, 2, a.Len())
	first := a.Transactions()[0]
	assert.Equal(t, []int{1, 2}, first.Candidates())
}

func TestTransactionSetClear(t *testing.T) {
	ts := NewTransactionSet()
	ts.Add(Position{Row: 0, Col: 0}, 1)
	ts.Clear()
	assert.Equal(t, 0, ts.Len())
}
