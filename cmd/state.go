package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/chalkcoin/chalkcoin/block"
	"github.com/chalkcoin/chalkcoin/config"
	"github.com/chalkcoin/chalkcoin/jsonx"
	"github.com/chalkcoin/chalkcoin/ledger"
	"github.com/chalkcoin/chalkcoin/types"
)

// ledgerState is what persists between CLI invocations: the exported
// chain, the unsealed batch and the node identity rewards are minted to.
type ledgerState struct {
	NodeID  string              `json:"node_id"`
	Chain   []block.Record      `json:"chain"`
	Pending []types.Transaction `json:"pending"`
}

func newNodeID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func loadConfigs() (*config.LedgerConfig, *config.PowConfig, error) {
	cfg := config.DefaultLedgerConfig()
	if configFile != "" {
		loaded, err := config.LoadLedgerConfig(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	var powCfg *config.PowConfig
	if powFile != "" {
		loaded, err := config.LoadPowConfig(powFile)
		if err != nil {
			return nil, nil, err
		}
		powCfg = loaded
	}
	return cfg, powCfg, nil
}

// loadLedger rebuilds the ledger from the state file: the chain goes in
// through the import boundary, pending transactions re-enter through
// normal intake.
func loadLedger() (*ledger.Ledger, string, error) {
	cfg, powCfg, err := loadConfigs()
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(stateFile)
	if err != nil {
		return nil, "", fmt.Errorf("read state file %s (run init first): %w", stateFile, err)
	}
	var state ledgerState
	if err := jsonx.Unmarshal(data, &state); err != nil {
		return nil, "", fmt.Errorf("parse state file %s: %w", stateFile, err)
	}

	// State restore must reproduce the chain byte-for-byte, a tampered
	// block's stale hash included, so stored hashes are always trusted
	// here regardless of the import config.
	restoreCfg := *cfg
	restoreCfg.ImportTrustHash = true
	lg := ledger.NewWithPow(&restoreCfg, powCfg)
	if err := lg.Replace(state.Chain); err != nil {
		return nil, "", err
	}
	for _, tx := range state.Pending {
		if _, err := lg.AddTransaction(tx); err != nil {
			return nil, "", err
		}
	}
	return lg, state.NodeID, nil
}

func saveLedger(lg *ledger.Ledger, nodeID string) error {
	state := ledgerState{
		NodeID:  nodeID,
		Chain:   lg.Export(),
		Pending: lg.PendingTransactions(),
	}
	data, err := jsonx.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(stateFile, data, 0o644)
}
