package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chalkcoin/chalkcoin/common"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a fresh wallet address",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := common.NewAddress()
		if err != nil {
			return err
		}
		fmt.Println(addr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}
