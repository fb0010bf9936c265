package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chalkcoin/chalkcoin/ledger"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a fresh ledger with a genesis block",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(stateFile); err == nil && !initForce {
			return fmt.Errorf("state file %s already exists, pass --force to overwrite", stateFile)
		}

		cfg, powCfg, err := loadConfigs()
		if err != nil {
			return err
		}
		lg := ledger.NewWithPow(cfg, powCfg)
		nodeID := newNodeID()
		if err := saveLedger(lg, nodeID); err != nil {
			return err
		}
		fmt.Println("Created ledger at", stateFile)
		fmt.Println("Node ID:", nodeID)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing state file")
	rootCmd.AddCommand(initCmd)
}
