package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/chalkcoin/chalkcoin/logx"
)

// DefaultLedgerConfig returns the configuration the reference deployment
// runs with.
func DefaultLedgerConfig() *LedgerConfig {
	return &LedgerConfig{
		Difficulty: DefaultDifficulty,
	}
}

// LoadLedgerConfig reads and parses the ledger.yml file
func LoadLedgerConfig(path string) (*LedgerConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open ledger config %s", path)
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		return nil, errors.Wrapf(err, "decode ledger config %s", path)
	}

	cfg := cfgFile.Ledger
	if cfg.Difficulty <= 0 && cfg.DifficultyPrefix == "" {
		cfg.Difficulty = DefaultDifficulty
	}
	logx.Info("CONFIG", "Loaded ledger config: difficulty=", cfg.Difficulty,
		" prefix=", cfg.DifficultyPrefix, " sealed_only=", cfg.BalanceSealedOnly,
		" trust_hash=", cfg.ImportTrustHash)
	return &cfg, nil
}

// LoadPowConfig reads mining tuning from an .ini file
func LoadPowConfig(path string) (*PowConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load pow config %s", path)
	}
	powSection := cfg.Section("pow")
	powCfg := &PowConfig{}
	if err := powSection.MapTo(powCfg); err != nil {
		return nil, errors.Wrapf(err, "map pow section of %s", path)
	}
	return powCfg, nil
}
