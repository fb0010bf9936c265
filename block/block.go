package block

import (
	"github.com/chalkcoin/chalkcoin/hasher"
	"github.com/chalkcoin/chalkcoin/types"
	"github.com/chalkcoin/chalkcoin/utils"
)

// Block is one sealed entry of the chain. It is assembled once, at seal
// time, and never mutated afterwards except through the ledger's explicit
// tamper operation.
type Block struct {
	Index        uint64              `json:"index"`          // Position in the chain, genesis is 0
	Timestamp    float64             `json:"timestamp"`      // Seconds since epoch at assembly
	Transactions []types.Transaction `json:"transactions"`   // The batch sealed into this block
	Proof        uint64              `json:"proof"`          // Nonce satisfying the difficulty predicate
	PrevHash     string              `json:"previous_hash"`  // Digest of the previous block (sentinel for genesis)
	Hash         string              `json:"hash,omitempty"` // Digest of this block's own content
}

// New assembles a block from a copied transaction batch and computes its
// content hash. txs is cloned, the caller keeps ownership of its slice.
func New(index uint64, txs []types.Transaction, proof uint64, prevHash string) *Block {
	b := &Block{
		Index:        index,
		Timestamp:    utils.NowSeconds(),
		Transactions: types.CloneTransactions(txs),
		Proof:        proof,
		PrevHash:     prevHash,
	}
	if b.Transactions == nil {
		b.Transactions = []types.Transaction{}
	}
	b.Hash = b.ComputeHash()
	return b
}

// canonical returns the content field map, excluding the block's own hash.
func (b *Block) canonical() map[string]interface{} {
	txs := make([]map[string]interface{}, len(b.Transactions))
	for i := range b.Transactions {
		txs[i] = b.Transactions[i].Canonical()
	}
	return map[string]interface{}{
		"index":         b.Index,
		"timestamp":     b.Timestamp,
		"transactions":  txs,
		"proof":         b.Proof,
		"previous_hash": b.PrevHash,
	}
}

// ComputeHash digests the block's canonical content. It does not touch the
// stored Hash field, so callers can compare the two to detect staleness.
func (b *Block) ComputeHash() string {
	data, err := hasher.CanonicalBytes(b.canonical())
	if err != nil {
		// Only plain strings, floats and ints reach the encoder.
		panic("block: canonical encoding failed: " + err.Error())
	}
	return hasher.Digest(data)
}

// Reseal recomputes and stores the content hash. Used by the tamper
// cascade, never during normal sealing.
func (b *Block) Reseal() {
	b.Hash = b.ComputeHash()
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	out := *b
	out.Transactions = types.CloneTransactions(b.Transactions)
	return &out
}
