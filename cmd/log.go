package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chainvault/block"
	"chainvault/jsonx"
)

var (
	logJSON  bool
	logLimit int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print ledger records, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openLedger()
		if err != nil {
			return err
		}
		defer c.Close()

		printed := 0
		walkErr := c.Walk(func(b *block.Block) bool {
			if logLimit > 0 && printed >= logLimit {
				return false
			}
			printed++

			if logJSON {
				out, err := jsonx.MarshalIndent(b, "", "  ")
				if err != nil {
					return false
				}
				fmt.Println(string(out))
				return true
			}

			ts := time.UnixMilli(int64(b.Timestamp)).UTC().Format(time.RFC3339)
			fmt.Printf("hash %s prev %s time %s payload %q\n", b.Hash, b.PrevHash, ts, b.Payload)
			return true
		})
		return walkErr
	},
}

func init() {
	logCmd.Flags().BoolVar(&logJSON, "json", false, "Print records as JSON")
	logCmd.Flags().IntVar(&logLimit, "limit", 0, "Stop after this many records (0 = all)")
	rootCmd.AddCommand(logCmd)
}
