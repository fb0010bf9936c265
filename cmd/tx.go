package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chalkcoin/chalkcoin/types"
)

var (
	txNote  string
	txForce bool
)

var txCmd = &cobra.Command{
	Use:   "tx <sender> <recipient> <amount>",
	Short: "Queue a transfer into the pending batch",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[2], err)
		}

		lg, nodeID, err := loadLedger()
		if err != nil {
			return err
		}

		tx := types.NewTransfer(args[0], args[1], amount)
		if txNote != "" {
			tx.Metadata = map[string]string{"note": txNote}
		}

		// Same pre-check the reference transfer form does. The ledger
		// itself accepts overdrafts.
		if !txForce && !tx.IsMint() && lg.Balance(tx.Sender) < amount {
			return fmt.Errorf("not enough balance: %s has %g", tx.Sender, lg.Balance(tx.Sender))
		}

		index, err := lg.AddTransaction(tx)
		if err != nil {
			return err
		}
		if err := saveLedger(lg, nodeID); err != nil {
			return err
		}
		fmt.Printf("Transaction queued, will be included in block %d\n", index)
		return nil
	},
}

var rewardCmd = &cobra.Command{
	Use:   "reward <recipient> <amount>",
	Short: "Queue a teacher reward for a student address",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[1], err)
		}

		lg, nodeID, err := loadLedger()
		if err != nil {
			return err
		}
		index, err := lg.AddTransaction(types.NewTransfer("Teacher", args[0], amount))
		if err != nil {
			return err
		}
		if err := saveLedger(lg, nodeID); err != nil {
			return err
		}
		fmt.Printf("Reward queued, will be included in block %d\n", index)
		return nil
	},
}

func init() {
	txCmd.Flags().StringVar(&txNote, "note", "", "attach a note to the transaction")
	txCmd.Flags().BoolVar(&txForce, "force", false, "skip the sender balance pre-check")
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(rewardCmd)
}
