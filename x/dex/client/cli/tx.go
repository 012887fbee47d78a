package cli

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/paw-chain/pawdex/x/dex/keeper"
	"github.com/paw-chain/pawdex/x/dex/types"
)

// GetTxCmd returns the transaction commands for the dex module
func GetTxCmd(open HostOpener) *cobra.Command {
	dexTxCmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "DEX transaction subcommands",
		SuggestionsMinimumDistance: 2,
	}

	dexTxCmd.AddCommand(
		CmdAddLiquidity(open),
		CmdRemoveLiquidity(open),
		CmdSwap(open),
	)

	return dexTxCmd
}

// CmdAddLiquidity returns a CLI command handler for adding liquidity to a pool
func CmdAddLiquidity(open HostOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [amount-0] [asset-0] [amount-1] [asset-1]",
		Short: "Deposit a pair of assets, creating the pool if needed",
		Long: `Deposit both assets of a pair into its pool. The first deposit sets the
price; later deposits take amount-0 as exact and use at most amount-1.

Example:
  $ pawdex tx add-liquidity 20000 0 10000 1 --from paw1...`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount0, err := parseAmount("amount-0", args[0])
			if err != nil {
				return err
			}
			asset0, err := parseAssetID("asset-0", args[1])
			if err != nil {
				return err
			}
			amount1, err := parseAmount("amount-1", args[2])
			if err != nil {
				return err
			}
			asset1, err := parseAssetID("asset-1", args[3])
			if err != nil {
				return err
			}
			from, deadline, err := readTxFlags(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgAddLiquidity(from, amount0, asset0, amount1, asset1, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return withHost(cmd, open, func(host Host) error {
				var res *types.MsgAddLiquidityResponse
				err := host.Deliver(time.Now().UTC(), func(ctx sdk.Context) error {
					var err error
					res, err = keeper.NewMsgServerImpl(*host.GetDexKeeper()).AddLiquidity(ctx, msg)
					return err
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, res)
			})
		},
	}

	addTxFlags(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for removing liquidity from a pool
func CmdRemoveLiquidity(open HostOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [shares] [asset-0] [asset-1]",
		Short: "Burn pool shares for a proportional part of the reserves",
		Long: `Burn pool shares and receive both assets in proportion to the shares.

Example:
  $ pawdex tx remove-liquidity 20000 0 1 --from paw1...`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := parseAmount("shares", args[0])
			if err != nil {
				return err
			}
			asset0, err := parseAssetID("asset-0", args[1])
			if err != nil {
				return err
			}
			asset1, err := parseAssetID("asset-1", args[2])
			if err != nil {
				return err
			}
			from, deadline, err := readTxFlags(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgRemoveLiquidity(from, shares, asset0, asset1, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return withHost(cmd, open, func(host Host) error {
				var res *types.MsgRemoveLiquidityResponse
				err := host.Deliver(time.Now().UTC(), func(ctx sdk.Context) error {
					var err error
					res, err = keeper.NewMsgServerImpl(*host.GetDexKeeper()).RemoveLiquidity(ctx, msg)
					return err
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, res)
			})
		},
	}

	addTxFlags(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for executing a token swap
func CmdSwap(open HostOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [amount] [asset] [other]",
		Short: "Sell an amount of one asset for the other asset of its pool",
		Long: `Sell amount of asset to the pool for the pair (asset, other).

Example:
  $ pawdex tx swap 10000 0 1 --from paw1...`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[0])
			if err != nil {
				return err
			}
			asset, err := parseAssetID("asset", args[1])
			if err != nil {
				return err
			}
			other, err := parseAssetID("other", args[2])
			if err != nil {
				return err
			}
			from, deadline, err := readTxFlags(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgSwap(from, amount, asset, other, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return withHost(cmd, open, func(host Host) error {
				var res *types.MsgSwapResponse
				err := host.Deliver(time.Now().UTC(), func(ctx sdk.Context) error {
					var err error
					res, err = keeper.NewMsgServerImpl(*host.GetDexKeeper()).Swap(ctx, msg)
					return err
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, res)
			})
		},
	}

	addTxFlags(cmd)
	return cmd
}
