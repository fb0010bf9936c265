package types

import (
	"crypto/sha256"
	"encoding/hex"
	"math"

	"github.com/chalkcoin/chalkcoin/errors"
	"github.com/chalkcoin/chalkcoin/jsonx"
)

// MintSender is the sentinel sender address of a minting / reward
// transaction. Transfers from it credit the recipient without debiting
// any account, and it is excluded from balance reports.
const MintSender = "0"

// Transaction is a single value transfer. Once the batch holding it is
// sealed into a block it never changes. Metadata is the closed optional
// field set; absent keys and a nil map canonicalize identically.
type Transaction struct {
	Sender    string            `json:"sender"`
	Recipient string            `json:"recipient"`
	Amount    float64           `json:"amount"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// NewTransfer builds a plain transfer transaction.
func NewTransfer(sender, recipient string, amount float64) Transaction {
	return Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}
}

// NewMint builds a reward transaction from the mint sentinel.
func NewMint(recipient string, amount float64) Transaction {
	return Transaction{
		Sender:    MintSender,
		Recipient: recipient,
		Amount:    amount,
	}
}

// IsMint reports whether the transaction issues new coins.
func (tx *Transaction) IsMint() bool {
	return tx.Sender == MintSender
}

// Validate enforces the intake contract: finite, non-negative amount and
// non-empty addresses. Silent acceptance of either corrupts balance
// accounting with no diagnostic.
func (tx *Transaction) Validate() error {
	if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) || tx.Amount < 0 {
		return errors.NewError(errors.ErrCodeInvalidAmount, errors.ErrMsgInvalidAmount)
	}
	if tx.Sender == "" || tx.Recipient == "" {
		return errors.NewError(errors.ErrCodeInvalidAddress, errors.ErrMsgInvalidAddress)
	}
	return nil
}

// Canonical returns the sorted-key field map used for block hashing.
func (tx *Transaction) Canonical() map[string]interface{} {
	fields := map[string]interface{}{
		"sender":    tx.Sender,
		"recipient": tx.Recipient,
		"amount":    tx.Amount,
	}
	if len(tx.Metadata) > 0 {
		fields["metadata"] = tx.Metadata
	}
	return fields
}

// Clone returns an independent copy, including the metadata map.
func (tx *Transaction) Clone() Transaction {
	out := *tx
	if tx.Metadata != nil {
		out.Metadata = make(map[string]string, len(tx.Metadata))
		for k, v := range tx.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

func (tx *Transaction) Bytes() []byte {
	b, _ := jsonx.MarshalCanonical(tx.Canonical())
	return b
}

// Hash returns the hex digest identifying the transaction content.
func (tx *Transaction) Hash() string {
	sum256 := sha256.Sum256(tx.Bytes())
	return hex.EncodeToString(sum256[:])
}

// CloneTransactions deep-copies a batch. Sealing and snapshots hand out
// copies only, never the live slice.
func CloneTransactions(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}
	out := make([]Transaction, len(txs))
	for i := range txs {
		out[i] = txs[i].Clone()
	}
	return out
}
