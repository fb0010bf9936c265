package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chalkcoin/chalkcoin/block"
	"github.com/chalkcoin/chalkcoin/config"
	"github.com/chalkcoin/chalkcoin/logx"
	"github.com/chalkcoin/chalkcoin/mempool"
	"github.com/chalkcoin/chalkcoin/monitoring"
	"github.com/chalkcoin/chalkcoin/pow"
	"github.com/chalkcoin/chalkcoin/types"
)

// Ledger owns the sealed chain and the pending batch. It is built for a
// single logical owner; every mutating operation still serializes behind
// one lock because Seal reads and writes chain and pending as one step.
type Ledger struct {
	mu      sync.RWMutex
	chain   []*block.Block
	pending *mempool.Mempool
	engine  *pow.Engine
	cfg     config.LedgerConfig
}

// New creates a ledger with a synthesized genesis block and an unbounded
// proof search. A nil cfg selects the defaults.
func New(cfg *config.LedgerConfig) *Ledger {
	return NewWithPow(cfg, nil)
}

// NewWithPow additionally applies mining tuning (iteration cap).
func NewWithPow(cfg *config.LedgerConfig, powCfg *config.PowConfig) *Ledger {
	if cfg == nil {
		cfg = config.DefaultLedgerConfig()
	}
	var maxIterations uint64
	if powCfg != nil {
		maxIterations = powCfg.MaxIterations
	}
	engine := pow.NewEngine(pow.Config{
		Difficulty:       cfg.Difficulty,
		DifficultyPrefix: cfg.DifficultyPrefix,
		MaxIterations:    maxIterations,
	})

	l := &Ledger{
		chain:   make([]*block.Block, 0, 1),
		pending: mempool.NewMempool(),
		engine:  engine,
		cfg:     *cfg,
	}
	genesis := block.New(0, nil, config.GenesisProof, config.GenesisPrevHash)
	l.chain = append(l.chain, genesis)
	monitoring.SetChainHeight(len(l.chain))
	logx.Info("LEDGER", "Created ledger, genesis hash ", genesis.Hash)
	return l
}

// AddTransaction validates tx and queues it into the pending batch. It
// returns the index of the block the transaction will be sealed into.
// Balance sufficiency is deliberately not checked here; that is the
// caller's pre-check to make.
func (l *Ledger) AddTransaction(tx types.Transaction) (uint64, error) {
	if err := tx.Validate(); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending.Add(tx)
	monitoring.SetPendingSize(l.pending.Len())
	next := l.lastBlock().Index + 1
	logx.Debug("LEDGER", "Queued tx ", tx.Hash()[:8], " for block ", next)
	return next, nil
}

// Seal runs the proof-of-work search against the last sealed proof and,
// on success, drains the whole pending batch into a new linked block. The
// search has no deadline of its own; cancel ctx or configure an iteration
// cap to bound it.
func (l *Ledger) Seal(ctx context.Context) (*block.Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	last := l.lastBlock()
	start := time.Now()
	proof, iterations, err := l.engine.FindProof(ctx, last.Proof)
	if err != nil {
		return nil, err
	}
	monitoring.ObserveSealDuration(start)
	monitoring.ObserveProofIterations(iterations)

	blk := block.New(last.Index+1, l.pending.Drain(), proof, last.Hash)
	l.chain = append(l.chain, blk)

	monitoring.SetChainHeight(len(l.chain))
	monitoring.SetPendingSize(0)
	monitoring.IncreaseSealedBlockCount()
	logx.Info("LEDGER", fmt.Sprintf("Sealed block %d with %d txs, proof %d after %d iterations",
		blk.Index, len(blk.Transactions), proof, iterations))
	return blk.Clone(), nil
}

// lastBlock assumes the caller holds the lock. The chain always has at
// least the genesis block.
func (l *Ledger) lastBlock() *block.Block {
	return l.chain[len(l.chain)-1]
}

// Height returns the number of sealed blocks, genesis included.
func (l *Ledger) Height() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.chain)
}

// LastBlock returns a copy of the most recently sealed block.
func (l *Ledger) LastBlock() *block.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lastBlock().Clone()
}

// Blocks returns a copy of the whole sealed chain.
func (l *Ledger) Blocks() []*block.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*block.Block, len(l.chain))
	for i, b := range l.chain {
		out[i] = b.Clone()
	}
	return out
}

// PendingTransactions returns a snapshot of the unsealed batch. It is a
// copy taken at read time, never a live handle into the pool.
func (l *Ledger) PendingTransactions() []types.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pending.Snapshot()
}

// PendingLen returns the size of the unsealed batch.
func (l *Ledger) PendingLen() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pending.Len()
}

// Config returns the configuration the ledger was built with.
func (l *Ledger) Config() config.LedgerConfig {
	return l.cfg
}
