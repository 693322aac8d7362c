package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Print the current tip hash",
	Long: "Prints the hash of the most recently appended block. Retain this " +
		"value externally as a checkpoint: it is the only way to detect a " +
		"rewritten tip block, which has no descendant to betray it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openLedger()
		if err != nil {
			return err
		}
		defer c.Close()

		fmt.Println(c.Tip())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tipCmd)
}
