package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalkcoin/chalkcoin/errors"
	"github.com/chalkcoin/chalkcoin/types"
)

func testBatch() []types.Transaction {
	return []types.Transaction{
		types.NewTransfer("A", "B", 5),
		types.NewMint("B", 1),
	}
}

func TestNewComputesHash(t *testing.T) {
	b := New(1, testBatch(), 226, "aabbcc")
	require.NotEmpty(t, b.Hash)
	assert.Equal(t, b.Hash, b.ComputeHash(), "stored hash must match recomputed content digest")
	assert.Len(t, b.Transactions, 2)

	empty := New(0, nil, 100, "1")
	assert.NotNil(t, empty.Transactions, "genesis carries an empty batch, not nil")
	assert.Empty(t, empty.Transactions)
}

func TestHashIsPure(t *testing.T) {
	b := New(1, testBatch(), 226, "aabbcc")
	first := b.ComputeHash()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, b.ComputeHash())
	}
}

func TestAnyFieldChangeChangesHash(t *testing.T) {
	base := New(1, testBatch(), 226, "aabbcc")
	baseHash := base.ComputeHash()

	mutations := map[string]func(b *Block){
		"index":     func(b *Block) { b.Index = 2 },
		"timestamp": func(b *Block) { b.Timestamp += 0.001 },
		"proof":     func(b *Block) { b.Proof = 227 },
		"prev hash": func(b *Block) { b.PrevHash = "ddeeff" },
		"tx amount": func(b *Block) { b.Transactions[0].Amount = 6 },
		"tx sender": func(b *Block) { b.Transactions[0].Sender = "C" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			b := base.Clone()
			mutate(b)
			assert.NotEqual(t, baseHash, b.ComputeHash())
		})
	}
}

func TestNewCopiesBatch(t *testing.T) {
	batch := testBatch()
	b := New(1, batch, 226, "aabbcc")
	batch[0].Amount = 999
	assert.Equal(t, 5.0, b.Transactions[0].Amount, "block must not alias the caller's slice")
}

func TestCloneIndependence(t *testing.T) {
	b := New(1, testBatch(), 226, "aabbcc")
	clone := b.Clone()
	clone.Transactions[0].Amount = 999
	clone.Proof = 1
	assert.Equal(t, 5.0, b.Transactions[0].Amount)
	assert.Equal(t, uint64(226), b.Proof)
}

func TestRecordRoundTrip(t *testing.T) {
	b := New(1, testBatch(), 226, "aabbcc")
	rec := b.ToRecord()
	restored := FromRecord(rec, true)
	assert.Equal(t, b, restored)
}

func TestFromRecordHashModes(t *testing.T) {
	b := New(1, testBatch(), 226, "aabbcc")
	rec := b.ToRecord()
	rec.Hash = "bogus"

	trusted := FromRecord(rec, true)
	assert.Equal(t, "bogus", trusted.Hash, "trust mode keeps the supplied hash")

	recomputed := FromRecord(rec, false)
	assert.Equal(t, b.Hash, recomputed.Hash, "recompute mode derives the hash from content")

	rec.Hash = ""
	trustedMissing := FromRecord(rec, true)
	assert.Equal(t, b.Hash, trustedMissing.Hash, "missing hash is always recomputed")
}

func TestParseRecords(t *testing.T) {
	valid := `[{"index":0,"timestamp":1.5,"transactions":[],"proof":100,"previous_hash":"1"}]`
	records, err := ParseRecords([]byte(valid))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, uint64(100), records[0].Proof)

	cases := map[string]string{
		"not a sequence":  `{"index":0}`,
		"not json":        `chalk`,
		"missing field":   `[{"index":0,"timestamp":1.5,"proof":100,"previous_hash":"1"}]`,
		"wrong tx type":   `[{"index":0,"timestamp":1.5,"transactions":7,"proof":100,"previous_hash":"1"}]`,
		"malformed block": `[42]`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRecords([]byte(input))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeMalformedInput), "got %v", err)
		})
	}
}
