package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chalkcoin/chalkcoin/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every block's hash and link to its predecessor",
	RunE: func(cmd *cobra.Command, args []string) error {
		lg, _, err := loadLedger()
		if err != nil {
			return err
		}
		if ok, badIndex := lg.Verify(); !ok {
			fmt.Printf("Chain INVALID: check fails at block %d\n", badIndex)
			return nil
		}
		fmt.Println("Chain valid")
		return nil
	},
}

var (
	tamperSender    string
	tamperRecipient string
	tamperAmount    float64
	tamperRecompute bool
)

var tamperCmd = &cobra.Command{
	Use:   "tamper <index>",
	Short: "Overwrite a sealed block's transactions (integrity demo)",
	Long: "Replaces the transactions of a sealed block with a single transfer. " +
		"Without --recompute the block's stored hash goes stale and validate fails there; " +
		"with --recompute every later block is re-hashed and validate passes again.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid block index %q: %w", args[0], err)
		}

		lg, nodeID, err := loadLedger()
		if err != nil {
			return err
		}
		txs := []types.Transaction{types.NewTransfer(tamperSender, tamperRecipient, tamperAmount)}
		if err := lg.Tamper(index, txs, tamperRecompute); err != nil {
			return err
		}
		if err := saveLedger(lg, nodeID); err != nil {
			return err
		}
		fmt.Printf("Tampered block %d (recompute=%t)\n", index, tamperRecompute)
		return nil
	},
}

func init() {
	tamperCmd.Flags().StringVar(&tamperSender, "sender", "Mallory", "sender of the injected transaction")
	tamperCmd.Flags().StringVar(&tamperRecipient, "recipient", "Mallory", "recipient of the injected transaction")
	tamperCmd.Flags().Float64Var(&tamperAmount, "amount", 1000, "amount of the injected transaction")
	tamperCmd.Flags().BoolVar(&tamperRecompute, "recompute", false, "re-hash the block and cascade forward")
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tamperCmd)
}
