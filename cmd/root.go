package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"chainvault/chain"
	"chainvault/config"
	"chainvault/db"
	"chainvault/logx"
)

var (
	cfgPath    string
	tuningPath string
)

var rootCmd = &cobra.Command{
	Use:   "chainvault",
	Short: "chainvault tamper-evident ledger CLI",
	Long:  "Command line interface for appending to and verifying a chainvault ledger.",

	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config/config.yml", "Path to node config file")
	rootCmd.PersistentFlags().StringVar(&tuningPath, "tuning", "config/tuning.ini", "Path to validation tuning file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed: ", err)
		os.Exit(1)
	}
}

// openLedger wires config, provider and chain for a subcommand. The
// caller owns the returned chain and must Close it.
func openLedger() (*chain.Chain, error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	tuning, err := config.LoadValidationConfig(tuningPath)
	if err != nil {
		return nil, err
	}

	provider, err := db.NewProvider(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	opts := []chain.Option{}
	if cfg.Genesis.Payload != "" {
		opts = append(opts, chain.WithGenesisPayload([]byte(cfg.Genesis.Payload)))
	}
	if tuning.MaxDepth > 0 {
		opts = append(opts, chain.WithMaxDepth(tuning.MaxDepth))
	}

	c, err := chain.Open(provider, opts...)
	if err != nil {
		provider.Close()
		return nil, err
	}
	return c, nil
}
