package config

const (
	// GenesisProof is the fixed proof of the synthesized first block.
	GenesisProof uint64 = 100

	// GenesisPrevHash is the previous-hash sentinel of the first block.
	GenesisPrevHash = "1"

	// DefaultDifficulty matches the reference deployment.
	DefaultDifficulty = 3

	// DefaultMineReward is the amount minted to the miner per sealed block.
	DefaultMineReward float64 = 1
)
