package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/pawdex/app"
)

const flagChainID = "chain-id"

// InitCmd returns a command that writes the default config and initializes
// the ledger from a genesis document.
func InitCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [genesis-file]",
		Short: "Initialize configuration and ledger state from genesis",
		Long: `Write config/app.toml and initialize the ledger from a genesis file. Without
a file the default genesis is written to config/genesis.json and used.

Example:
  pawdex init ./genesis.json --home ~/.pawdex`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home := v.GetString(FlagHome)
			cfg := app.DefaultConfig()
			cfg.Home = home
			if chainID, _ := cmd.Flags().GetString(flagChainID); chainID != "" {
				cfg.ChainID = chainID
			}
			if err := app.WriteDefaultConfig(cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			a, err := openApp(cmd, v)
			if err != nil {
				return err
			}
			defer a.Close()

			var genesis []byte
			if len(args) == 1 {
				if genesis, err = os.ReadFile(args[0]); err != nil {
					return fmt.Errorf("failed to read genesis: %w", err)
				}
			} else {
				if genesis, err = json.MarshalIndent(a.DefaultGenesis(), "", "  "); err != nil {
					return err
				}
				path := filepath.Join(home, "config", "genesis.json")
				if err := os.WriteFile(path, genesis, 0o644); err != nil {
					return fmt.Errorf("failed to write genesis: %w", err)
				}
			}

			if err := a.InitChain(genesis, time.Now().UTC()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s at height %d\n", home, a.LastBlockHeight())
			return nil
		},
	}

	cmd.Flags().String(flagChainID, "", "Chain id written to app.toml")
	return cmd
}
