package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ExportCmd returns a command that prints the committed state as genesis.
func ExportCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export ledger state as a genesis document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd, v)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.LastBlockHeight() == 0 {
				return errors.New("chain is not initialized; run pawdex init first")
			}

			bz, err := a.ExportGenesis()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}
}
