package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/chalkcoin/chalkcoin/jsonx"
)

// CanonicalBytes serializes a field map to sorted-key JSON. Same logical
// content always yields the same bytes, whatever order the map was built in.
func CanonicalBytes(fields map[string]interface{}) ([]byte, error) {
	return jsonx.MarshalCanonical(fields)
}

// Digest returns the hex SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ProofDigest hashes the previous proof concatenated with a candidate nonce.
// This is the quantity the difficulty predicate is evaluated against.
func ProofDigest(lastProof, proof uint64) string {
	guess := strconv.FormatUint(lastProof, 10) + strconv.FormatUint(proof, 10)
	return Digest([]byte(guess))
}
