package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vbp",
		Short: "A lossless parser toolchain for classic BASIC sources",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newScanCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
