package hasher

import (
	"strings"
	"testing"
)

func TestDigestKnownValue(t *testing.T) {
	got := Digest([]byte("hello"))
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got != want {
		t.Errorf("Digest mismatch: got %s, want %s", got, want)
	}
}

func TestCanonicalBytesSortsKeys(t *testing.T) {
	fields := map[string]interface{}{
		"proof":         uint64(100),
		"index":         uint64(0),
		"previous_hash": "1",
	}
	data, err := CanonicalBytes(fields)
	if err != nil {
		t.Fatalf("CanonicalBytes failed: %v", err)
	}
	want := `{"index":0,"previous_hash":"1","proof":100}`
	if string(data) != want {
		t.Errorf("canonical encoding mismatch: got %s, want %s", data, want)
	}
}

func TestCanonicalBytesDeterministic(t *testing.T) {
	fields := map[string]interface{}{
		"timestamp":    1700000000.25,
		"transactions": []map[string]interface{}{{"sender": "A", "recipient": "B", "amount": 5.0}},
		"index":        uint64(1),
	}
	first, err := CanonicalBytes(fields)
	if err != nil {
		t.Fatalf("CanonicalBytes failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := CanonicalBytes(fields)
		if err != nil {
			t.Fatalf("CanonicalBytes failed: %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("encoding changed between calls: %s vs %s", again, first)
		}
	}
}

func TestProofDigest(t *testing.T) {
	// Smallest nonce carrying two leading zeros against last proof 100.
	if got := ProofDigest(100, 226); !strings.HasPrefix(got, "00") {
		t.Errorf("ProofDigest(100, 226) = %s, want 00 prefix", got)
	}
	if ProofDigest(100, 0) == ProofDigest(100, 1) {
		t.Error("different nonces produced the same digest")
	}
	if ProofDigest(100, 226) != ProofDigest(100, 226) {
		t.Error("ProofDigest is not deterministic")
	}
}
