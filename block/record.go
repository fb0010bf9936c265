package block

import (
	"fmt"

	"github.com/chalkcoin/chalkcoin/errors"
	"github.com/chalkcoin/chalkcoin/jsonx"
	"github.com/chalkcoin/chalkcoin/types"
)

// Record is the wire shape of a block at the export/import boundary. The
// hash field is optional on import; depending on ledger configuration it is
// either trusted as supplied or recomputed from content.
type Record struct {
	Index        uint64              `json:"index"`
	Timestamp    float64             `json:"timestamp"`
	Transactions []types.Transaction `json:"transactions"`
	Proof        uint64              `json:"proof"`
	PrevHash     string              `json:"previous_hash"`
	Hash         string              `json:"hash,omitempty"`
}

// requiredRecordKeys must all be present for a JSON object to count as
// block-shaped. The hash key stays optional.
var requiredRecordKeys = []string{"index", "timestamp", "transactions", "proof", "previous_hash"}

// FromRecord reconstructs a sealed block from its wire shape. With
// trustHash and a supplied hash the stored digest is taken as-is,
// otherwise it is recomputed from content.
func FromRecord(rec Record, trustHash bool) *Block {
	b := &Block{
		Index:        rec.Index,
		Timestamp:    rec.Timestamp,
		Transactions: types.CloneTransactions(rec.Transactions),
		Proof:        rec.Proof,
		PrevHash:     rec.PrevHash,
	}
	if b.Transactions == nil {
		b.Transactions = []types.Transaction{}
	}
	if trustHash && rec.Hash != "" {
		b.Hash = rec.Hash
	} else {
		b.Hash = b.ComputeHash()
	}
	return b
}

// ToRecord copies the block into its wire shape.
func (b *Block) ToRecord() Record {
	return Record{
		Index:        b.Index,
		Timestamp:    b.Timestamp,
		Transactions: types.CloneTransactions(b.Transactions),
		Proof:        b.Proof,
		PrevHash:     b.PrevHash,
		Hash:         b.Hash,
	}
}

// ParseRecords decodes an exported chain document. It fails with a
// malformed_input error when data is not an ordered sequence of
// block-shaped objects or a required field is missing.
func ParseRecords(data []byte) ([]Record, error) {
	var raw []map[string]interface{}
	if err := jsonx.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewError(errors.ErrCodeMalformedInput, errors.ErrMsgMalformedInput)
	}
	for i, obj := range raw {
		for _, key := range requiredRecordKeys {
			if _, ok := obj[key]; !ok {
				return nil, errors.NewError(errors.ErrCodeMalformedInput,
					fmt.Sprintf("block record %d is missing required field %q", i, key))
			}
		}
	}
	var records []Record
	if err := jsonx.Unmarshal(data, &records); err != nil {
		return nil, errors.NewError(errors.ErrCodeMalformedInput, errors.ErrMsgMalformedInput)
	}
	return records, nil
}
