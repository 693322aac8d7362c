package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appendCmd = &cobra.Command{
	Use:   "append <payload> [payload...]",
	Short: "Append one or more payloads to the ledger",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openLedger()
		if err != nil {
			return err
		}
		defer c.Close()

		for _, payload := range args {
			if err := c.Append([]byte(payload)); err != nil {
				return err
			}
			fmt.Printf("appended %s\n", c.Tip())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(appendCmd)
}
