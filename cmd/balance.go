package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Show the balance of an address (default: this node)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lg, nodeID, err := loadLedger()
		if err != nil {
			return err
		}
		addr := nodeID
		if len(args) == 1 {
			addr = args[0]
		}
		fmt.Printf("Balance for %s: %g coins\n", addr, lg.Balance(addr))
		return nil
	},
}

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Show the balance of every address seen on the chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		lg, _, err := loadLedger()
		if err != nil {
			return err
		}
		balances := lg.AllBalances()
		addrs := make([]string, 0, len(balances))
		for addr := range balances {
			addrs = append(addrs, addr)
		}
		sort.Strings(addrs)
		for _, addr := range addrs {
			fmt.Printf("%-44s %g\n", addr, balances[addr])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(balancesCmd)
}
