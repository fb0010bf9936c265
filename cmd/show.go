package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chalkcoin/chalkcoin/utils"
)

var (
	showCount int
	showFull  bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show recent blocks and the pending batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		lg, nodeID, err := loadLedger()
		if err != nil {
			return err
		}

		if showFull {
			data, err := lg.ExportJSON()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		cfg := lg.Config()
		fmt.Println("Node ID:", nodeID)
		fmt.Println("Chain height:", lg.Height())
		fmt.Println("Pending transactions:", lg.PendingLen())
		if cfg.DifficultyPrefix != "" {
			fmt.Println("Difficulty prefix:", cfg.DifficultyPrefix)
		} else {
			fmt.Println("Difficulty:", cfg.Difficulty)
		}
		fmt.Println()

		blocks := lg.Blocks()
		start := len(blocks) - showCount
		if start < 0 {
			start = 0
		}
		for i := len(blocks) - 1; i >= start; i-- {
			b := blocks[i]
			fmt.Printf("Block %d — proof %d — %s\n", b.Index, b.Proof, utils.FormatSeconds(b.Timestamp))
			fmt.Printf("  previous hash: %s\n", b.PrevHash)
			fmt.Printf("  hash:          %s\n", b.Hash)
			for _, tx := range b.Transactions {
				fmt.Printf("  tx: %s -> %s  %g\n", tx.Sender, tx.Recipient, tx.Amount)
			}
		}
		return nil
	},
}

func init() {
	showCmd.Flags().IntVar(&showCount, "count", 5, "number of recent blocks to show")
	showCmd.Flags().BoolVar(&showFull, "full", false, "dump the full chain as its export JSON")
	rootCmd.AddCommand(showCmd)
}
