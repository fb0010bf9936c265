package mempool

import (
	"testing"

	"github.com/chalkcoin/chalkcoin/types"
)

func TestAddAndLen(t *testing.T) {
	m := NewMempool()
	if m.Len() != 0 {
		t.Fatalf("new mempool not empty: %d", m.Len())
	}
	m.Add(types.NewTransfer("A", "B", 5))
	m.Add(types.NewMint("B", 1))
	if m.Len() != 2 {
		t.Errorf("expected 2 pending, got %d", m.Len())
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	m := NewMempool()
	m.Add(types.NewTransfer("A", "B", 5))

	snap := m.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 tx in snapshot, got %d", len(snap))
	}
	snap[0].Amount = 999
	if m.Snapshot()[0].Amount != 5 {
		t.Error("snapshot aliases the live batch")
	}
}

func TestDrainTakesAllInOrder(t *testing.T) {
	m := NewMempool()
	m.Add(types.NewTransfer("A", "B", 1))
	m.Add(types.NewTransfer("B", "C", 2))
	m.Add(types.NewTransfer("C", "A", 3))

	drained := m.Drain()
	if len(drained) != 3 {
		t.Fatalf("expected 3 drained txs, got %d", len(drained))
	}
	for i, want := range []float64{1, 2, 3} {
		if drained[i].Amount != want {
			t.Errorf("tx %d out of order: amount %g, want %g", i, drained[i].Amount, want)
		}
	}
	if m.Len() != 0 {
		t.Errorf("mempool not empty after drain: %d", m.Len())
	}
}

func TestDrainReturnsFreshContainer(t *testing.T) {
	m := NewMempool()
	m.Add(types.NewTransfer("A", "B", 1))

	drained := m.Drain()
	m.Add(types.NewTransfer("B", "C", 2))

	// The drained slice belongs to the caller; later intake must not
	// show up in it.
	if len(drained) != 1 || drained[0].Amount != 1 {
		t.Errorf("drained slice changed after new intake: %+v", drained)
	}
	if m.Len() != 1 {
		t.Errorf("expected 1 pending after re-add, got %d", m.Len())
	}
}

func TestReset(t *testing.T) {
	m := NewMempool()
	m.Add(types.NewTransfer("A", "B", 1))
	m.Reset()
	if m.Len() != 0 {
		t.Errorf("mempool not empty after reset: %d", m.Len())
	}
}
