package ledger

import (
	"github.com/chalkcoin/chalkcoin/block"
	"github.com/chalkcoin/chalkcoin/errors"
	"github.com/chalkcoin/chalkcoin/jsonx"
	"github.com/chalkcoin/chalkcoin/logx"
	"github.com/chalkcoin/chalkcoin/monitoring"
)

// Replace swaps the whole chain for an externally supplied sequence of
// block records and clears the pending batch, so transaction epochs never
// mix. Hashes are recomputed from content unless the ledger is configured
// to trust supplied ones. Replace does not validate the result; callers
// wanting integrity assurance run Validate afterwards.
func (l *Ledger) Replace(records []block.Record) error {
	if len(records) == 0 {
		return errors.NewError(errors.ErrCodeMalformedInput, errors.ErrMsgMalformedInput)
	}

	newChain := make([]*block.Block, len(records))
	for i, rec := range records {
		newChain[i] = block.FromRecord(rec, l.cfg.ImportTrustHash)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.chain = newChain
	l.pending.Reset()
	monitoring.SetChainHeight(len(l.chain))
	monitoring.SetPendingSize(0)
	logx.Info("LEDGER", "Replaced chain, new height ", len(l.chain))
	return nil
}

// ReplaceJSON imports a chain from its exported JSON document.
func (l *Ledger) ReplaceJSON(data []byte) error {
	records, err := block.ParseRecords(data)
	if err != nil {
		return err
	}
	return l.Replace(records)
}

// Export copies the sealed chain into its wire shape, stored hashes
// included.
func (l *Ledger) Export() []block.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := make([]block.Record, len(l.chain))
	for i, b := range l.chain {
		records[i] = b.ToRecord()
	}
	return records
}

// ExportJSON serializes the sealed chain as the import/export document.
func (l *Ledger) ExportJSON() ([]byte, error) {
	return jsonx.MarshalIndent(l.Export(), "", "  ")
}
