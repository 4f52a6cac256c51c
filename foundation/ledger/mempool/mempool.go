// Package mempool maintains the pool of transactions waiting to be mined
// into a block.
package mempool

import (
	"sync"

	"github.com/ledgermint/ledgermint/foundation/ledger/database"
)

// Mempool represents the set of submitted transactions not yet included in
// a sealed block. Insertion order is preserved since it becomes the mining
// order inside the next block.
type Mempool struct {
	pool []database.Tx
	mu   sync.RWMutex
}

// New constructs a new mempool for pending transactions.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Add appends a transaction to the pool. No duplicate or replay checking is
// performed.
func (mp *Mempool) Add(tx database.Tx) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)
}

// Copy returns all the transactions in the pool in insertion order.
func (mp *Mempool) Copy() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	txs := make([]database.Tx, len(mp.pool))
	copy(txs, mp.pool)

	return txs
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}
