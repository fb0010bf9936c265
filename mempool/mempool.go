package mempool

import (
	"sync"

	"github.com/chalkcoin/chalkcoin/types"
)

// Mempool is the pending transaction batch: every intake lands here and
// stays until a seal drains the whole batch into a block. It owns its
// backing slice exclusively; callers only ever see copies.
type Mempool struct {
	mu  sync.Mutex
	txs []types.Transaction
}

// NewMempool creates a new, empty mempool.
func NewMempool() *Mempool {
	return &Mempool{
		txs: make([]types.Transaction, 0),
	}
}

// Add pushes a transaction into the mempool.
func (m *Mempool) Add(tx types.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs = append(m.txs, tx.Clone())
}

// Len returns the number of transactions in the mempool.
func (m *Mempool) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.txs)
}

// Snapshot returns a copy of the current batch, in intake order.
func (m *Mempool) Snapshot() []types.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.Transaction, len(m.txs))
	for i := range m.txs {
		out[i] = m.txs[i].Clone()
	}
	return out
}

// Drain takes the whole batch and resets the pool to a fresh backing
// slice. The returned slice is owned by the caller; nothing else aliases
// it afterwards.
func (m *Mempool) Drain() []types.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.txs
	m.txs = make([]types.Transaction, 0)
	return out
}

// Reset discards the batch, e.g. after a wholesale chain replacement.
func (m *Mempool) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs = make([]types.Transaction, 0)
}
