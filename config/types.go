package config

// LedgerConfig holds the tunable behavior of one ledger instance.
type LedgerConfig struct {
	// Difficulty is the number of leading zero hex digits a proof digest
	// must carry. DifficultyPrefix is the explicit-prefix alternative and
	// takes precedence when non-empty.
	Difficulty       int    `yaml:"difficulty"`
	DifficultyPrefix string `yaml:"difficulty_prefix"`

	// BalanceSealedOnly restricts balance replay to sealed blocks. The
	// default replay includes the pending batch.
	BalanceSealedOnly bool `yaml:"balance_sealed_only"`

	// ImportTrustHash makes Replace keep a supplied hash field as-is
	// instead of recomputing it from content.
	ImportTrustHash bool `yaml:"import_trust_hash"`
}

// ConfigFile is the top-level structure for ledger.yml
type ConfigFile struct {
	Ledger LedgerConfig `yaml:"ledger"`
}

// PowConfig holds the mining tuning section of the .ini file.
type PowConfig struct {
	// MaxIterations caps the nonce search; 0 leaves it unbounded.
	MaxIterations uint64 `ini:"max_iterations"`
}
