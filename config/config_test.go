package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLedgerConfig(t *testing.T) {
	path := writeTemp(t, "ledger.yml", `
ledger:
  difficulty: 4
  balance_sealed_only: true
  import_trust_hash: true
`)
	cfg, err := LoadLedgerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Difficulty)
	assert.Empty(t, cfg.DifficultyPrefix)
	assert.True(t, cfg.BalanceSealedOnly)
	assert.True(t, cfg.ImportTrustHash)
}

func TestLoadLedgerConfigPrefixForm(t *testing.T) {
	path := writeTemp(t, "ledger.yml", `
ledger:
  difficulty_prefix: "000"
`)
	cfg, err := LoadLedgerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "000", cfg.DifficultyPrefix)
	assert.Equal(t, 0, cfg.Difficulty, "prefix form needs no zero-digit count")
}

func TestLoadLedgerConfigDefaults(t *testing.T) {
	path := writeTemp(t, "ledger.yml", `
ledger: {}
`)
	cfg, err := LoadLedgerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDifficulty, cfg.Difficulty)
	assert.False(t, cfg.BalanceSealedOnly)
	assert.False(t, cfg.ImportTrustHash)
}

func TestLoadLedgerConfigMissingFile(t *testing.T) {
	_, err := LoadLedgerConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadPowConfig(t *testing.T) {
	path := writeTemp(t, "pow.ini", `
[pow]
max_iterations = 500000
`)
	cfg, err := LoadPowConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(500000), cfg.MaxIterations)
}

func TestLoadPowConfigEmptySection(t *testing.T) {
	path := writeTemp(t, "pow.ini", "")
	cfg, err := LoadPowConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cfg.MaxIterations, "absent cap means unbounded search")
}
