package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chalkcoin/chalkcoin/config"
	"github.com/chalkcoin/chalkcoin/exception"
	"github.com/chalkcoin/chalkcoin/logx"
	"github.com/chalkcoin/chalkcoin/monitoring"
	"github.com/chalkcoin/chalkcoin/types"
	"github.com/chalkcoin/chalkcoin/utils"
)

var mineNoReward bool

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Seal the pending batch into a new block",
	Long:  "Runs the proof-of-work search and seals the pending batch, minting the block reward to this node. Ctrl-C cancels the search.",
	RunE: func(cmd *cobra.Command, args []string) error {
		lg, nodeID, err := loadLedger()
		if err != nil {
			return err
		}

		if metricsAddr != "" {
			exception.SafeGo("metrics", func() {
				if err := monitoring.Serve(metricsAddr); err != nil {
					logx.Error("MONITORING", "Metrics endpoint failed:", err)
				}
			})
		}

		if !mineNoReward {
			if _, err := lg.AddTransaction(types.NewMint(nodeID, config.DefaultMineReward)); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		blk, err := lg.Seal(ctx)
		if err != nil {
			return fmt.Errorf("mining failed: %w", err)
		}
		if err := saveLedger(lg, nodeID); err != nil {
			return err
		}

		fmt.Printf("Block %d mined at %s\n", blk.Index, utils.FormatSeconds(blk.Timestamp))
		fmt.Printf("  proof:         %d\n", blk.Proof)
		fmt.Printf("  transactions:  %d\n", len(blk.Transactions))
		fmt.Printf("  previous hash: %s\n", blk.PrevHash)
		fmt.Printf("  hash:          %s\n", blk.Hash)
		return nil
	},
}

func init() {
	mineCmd.Flags().BoolVar(&mineNoReward, "no-reward", false, "seal without minting the block reward")
	rootCmd.AddCommand(mineCmd)
}
