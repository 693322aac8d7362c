package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the ledger, creating the genesis block if needed",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openLedger()
		if err != nil {
			return err
		}
		defer c.Close()

		fmt.Printf("ledger ready, tip %s\n", c.Tip())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
