package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/pawdex/app"
	"github.com/paw-chain/pawdex/x/dex/client/cli"
)

const (
	FlagHome     = "home"
	FlagLogLevel = "log-level"
)

// NewRootCmd creates the pawdex root command.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(app.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "pawdex",
		Short: "PAW constant-product liquidity pools",
		Long: `pawdex runs the PAW liquidity-pool engine against a local ledger database.
Every transaction is executed and committed as its own block.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// set the default command outputs
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			return v.BindPFlags(cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().String(FlagHome, app.DefaultNodeHome, "Directory for config and data")
	rootCmd.PersistentFlags().String(FlagLogLevel, "", "Log level (trace|debug|info|warn|error); overrides app.toml")

	open := func(cmd *cobra.Command) (cli.Host, error) {
		a, err := openApp(cmd, v)
		if err != nil {
			return nil, err
		}
		if a.LastBlockHeight() == 0 {
			_ = a.Close()
			return nil, errors.New("chain is not initialized; run pawdex init first")
		}
		return a, nil
	}

	rootCmd.AddCommand(
		InitCmd(v),
		ExportCmd(v),
		cli.GetTxCmd(open),
		cli.GetQueryCmd(open),
	)

	return rootCmd
}

// readConfig loads app.toml from the configured home and applies the
// --log-level override.
func readConfig(v *viper.Viper) (app.Config, error) {
	cfg, err := app.ReadConfig(v.GetString(FlagHome))
	if err != nil {
		return app.Config{}, err
	}
	if level := v.GetString(FlagLogLevel); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

func openApp(cmd *cobra.Command, v *viper.Viper) (*app.App, error) {
	cfg, err := readConfig(v)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := app.OpenDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a, err := app.New(logger, db, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func newLogger(out io.Writer, level string) (log.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewLogger(out, log.LevelOption(lvl), log.ColorOption(false)), nil
}
