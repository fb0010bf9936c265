package pow

import (
	"context"
	"strings"

	"github.com/chalkcoin/chalkcoin/errors"
	"github.com/chalkcoin/chalkcoin/hasher"
)

// Config tunes the proof-of-work engine. Difficulty counts leading zero
// hex digits; DifficultyPrefix is the alternative explicit-prefix form and
// wins when both are set. MaxIterations of 0 means the search is unbounded.
type Config struct {
	Difficulty       int
	DifficultyPrefix string
	MaxIterations    uint64
}

// Engine brute-forces nonces against the difficulty predicate. It carries
// no mutable state, one engine can serve any number of searches.
type Engine struct {
	prefix        string
	maxIterations uint64
}

func NewEngine(cfg Config) *Engine {
	prefix := cfg.DifficultyPrefix
	if prefix == "" {
		prefix = strings.Repeat("0", cfg.Difficulty)
	}
	return &Engine{
		prefix:        prefix,
		maxIterations: cfg.MaxIterations,
	}
}

// Prefix returns the digest prefix a valid proof must produce.
func (e *Engine) Prefix() string {
	return e.prefix
}

// ValidProof is the cheap verifier side of the puzzle: it checks whether
// the digest of lastProof concatenated with proof carries the required
// prefix.
func (e *Engine) ValidProof(lastProof, proof uint64) bool {
	return strings.HasPrefix(hasher.ProofDigest(lastProof, proof), e.prefix)
}

// FindProof scans nonces from 0 upward until one satisfies the predicate,
// so the first valid nonce is always the smallest. The context is checked
// every iteration; with a configured iteration cap an unsatisfied search
// fails with proof_search_exhausted instead of spinning forever.
func (e *Engine) FindProof(ctx context.Context, lastProof uint64) (proof uint64, iterations uint64, err error) {
	for proof = 0; ; proof++ {
		select {
		case <-ctx.Done():
			return 0, iterations, ctx.Err()
		default:
		}
		if e.maxIterations > 0 && iterations >= e.maxIterations {
			return 0, iterations, errors.NewError(errors.ErrCodeProofSearchExhausted, errors.ErrMsgProofSearchExhausted)
		}
		iterations++
		if e.ValidProof(lastProof, proof) {
			return proof, iterations, nil
		}
	}
}
