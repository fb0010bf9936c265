package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chalkcoin/chalkcoin/logx"
)

var (
	stateFile   string
	configFile  string
	powFile     string
	metricsAddr string
)

var rootCmd = &cobra.Command{
	Use:   "chalkcoin",
	Short: "chalkcoin classroom ledger CLI",
	Long:  "Command line interface for running and inspecting a chalkcoin teaching ledger.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&stateFile, "state", "chalkcoin.json", "ledger state file")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "ledger YAML config file")
	rootCmd.PersistentFlags().StringVar(&powFile, "pow-config", "", "mining tuning INI file")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
