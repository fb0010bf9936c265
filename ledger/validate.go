package ledger

import (
	"fmt"

	"github.com/chalkcoin/chalkcoin/errors"
	"github.com/chalkcoin/chalkcoin/logx"
	"github.com/chalkcoin/chalkcoin/monitoring"
	"github.com/chalkcoin/chalkcoin/types"
)

// Verify walks the chain and checks, for every non-genesis block, that
// its previous_hash matches the predecessor's stored hash and that its
// stored hash matches its recomputed content digest. On failure it
// returns the index of the first offending block, so a broken chain is
// diagnosed at one block rather than as chain-wide ambiguity.
func (l *Ledger) Verify() (bool, uint64) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := 1; i < len(l.chain); i++ {
		b := l.chain[i]
		prev := l.chain[i-1]
		if b.PrevHash != prev.Hash {
			monitoring.IncreaseValidationFailureCount()
			logx.Warn("LEDGER", "Broken link at block ", i)
			return false, uint64(i)
		}
		if b.Hash != b.ComputeHash() {
			monitoring.IncreaseValidationFailureCount()
			logx.Warn("LEDGER", "Stale hash at block ", i)
			return false, uint64(i)
		}
	}
	return true, 0
}

// Validate reports chain integrity as a plain boolean. A chain of length
// one (genesis only) is trivially valid.
func (l *Ledger) Validate() bool {
	ok, _ := l.Verify()
	return ok
}

// Tamper overwrites the transaction content of an already sealed block.
// Genesis is immutable and out-of-range targets are rejected. With
// recompute false the stored hash goes stale and Validate fails at the
// target block. With recompute true the block is re-hashed and the
// change cascades forward, rewriting every later link, after which
// Validate passes again: link validity alone proves nothing against a
// party willing to redo all downstream hashing.
func (l *Ledger) Tamper(index uint64, txs []types.Transaction, recompute bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index == 0 {
		return errors.NewError(errors.ErrCodeInvalidIndex, errors.ErrMsgGenesisImmutable)
	}
	if index >= uint64(len(l.chain)) {
		return errors.NewError(errors.ErrCodeInvalidIndex,
			fmt.Sprintf("block index %d is outside [1, %d]", index, len(l.chain)-1))
	}

	b := l.chain[index]
	b.Transactions = types.CloneTransactions(txs)
	if b.Transactions == nil {
		b.Transactions = []types.Transaction{}
	}
	if recompute {
		b.Reseal()
		for j := int(index) + 1; j < len(l.chain); j++ {
			l.chain[j].PrevHash = l.chain[j-1].Hash
			l.chain[j].Reseal()
		}
	}
	monitoring.IncreaseTamperCount()
	logx.Warn("LEDGER", fmt.Sprintf("Tampered block %d (recompute=%t)", index, recompute))
	return nil
}
