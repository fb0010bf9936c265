package ledger

import (
	"github.com/chalkcoin/chalkcoin/types"
)

// Balance replays every sealed transaction involving addr, crediting
// receipts and debiting sends. Unless the ledger is configured
// sealed-only, the pending batch is replayed too, so an unsealed debit
// shows up immediately.
func (l *Ledger) Balance(addr string) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	balance := 0.0
	apply := func(tx *types.Transaction) {
		if tx.Recipient == addr {
			balance += tx.Amount
		}
		if tx.Sender == addr {
			balance -= tx.Amount
		}
	}
	l.replay(apply)
	return balance
}

// AllBalances aggregates the same replay per address. The mint sentinel
// is excluded from the result set; coins it issued still show up on the
// recipient side.
func (l *Ledger) AllBalances() map[string]float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	balances := make(map[string]float64)
	l.replay(func(tx *types.Transaction) {
		balances[tx.Recipient] += tx.Amount
		balances[tx.Sender] -= tx.Amount
	})
	delete(balances, types.MintSender)
	return balances
}

// replay walks the sealed chain in order, then the pending batch unless
// configured sealed-only. Caller holds at least the read lock.
func (l *Ledger) replay(apply func(tx *types.Transaction)) {
	for _, b := range l.chain {
		for i := range b.Transactions {
			apply(&b.Transactions[i])
		}
	}
	if l.cfg.BalanceSealedOnly {
		return
	}
	pending := l.pending.Snapshot()
	for i := range pending {
		apply(&pending[i])
	}
}
