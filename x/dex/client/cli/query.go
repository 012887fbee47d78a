package cli

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// PoolResponse describes a pool and its current state.
type PoolResponse struct {
	ShareAsset  types.AssetID     `json:"share_asset"`
	Pair        types.Pair        `json:"pair"`
	Account     string            `json:"account"`
	Reserve0    types.AssetAmount `json:"reserve_0"`
	Reserve1    types.AssetAmount `json:"reserve_1"`
	ShareSupply math.Int          `json:"share_supply"`
}

// GetQueryCmd returns the cli query commands for the dex module
func GetQueryCmd(open HostOpener) *cobra.Command {
	dexQueryCmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Querying commands for the dex module",
		SuggestionsMinimumDistance: 2,
	}

	dexQueryCmd.AddCommand(
		GetCmdQueryPrice(open),
		GetCmdQueryPool(open),
		GetCmdQueryBalance(open),
		GetCmdQueryParams(open),
	)

	return dexQueryCmd
}

// GetCmdQueryPrice returns the command to quote a swap
func GetCmdQueryPrice(open HostOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "price [amount] [asset] [other]",
		Short: "Quote how much of other an amount of asset is worth",
		Long: `Quote a swap against current reserves without executing it.

Example:
  $ pawdex query price 5000 0 1`,
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

			return withHost(cmd, open, func(host Host) error {
				var price math.Int
				err := host.Query(func(ctx sdk.Context) error {
					var err error
					price, err = host.GetDexKeeper().Price(ctx, amount, asset, other)
					return err
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, types.NewAssetAmount(price, other))
			})
		},
	}
}

// GetCmdQueryPool returns the command to query the pool for a pair
func GetCmdQueryPool(open HostOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "pool [asset-0] [asset-1]",
		Short: "Query the pool for an asset pair",
		Long: `Query the pool registered for a pair, in either order.

Example:
  $ pawdex query pool 0 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset0, err := parseAssetID("asset-0", args[0])
			if err != nil {
				return err
			}
			asset1, err := parseAssetID("asset-1", args[1])
			if err != nil {
				return err
			}

			return withHost(cmd, open, func(host Host) error {
				var res PoolResponse
				err := host.Query(func(ctx sdk.Context) error {
					k := host.GetDexKeeper()
					pool, found, err := k.GetPool(ctx, asset0, asset1)
					if err != nil {
						return err
					}
					if !found {
						return types.ErrNoPool.Wrapf("no pool for %s", types.Canonicalize(asset0, asset1))
					}
					r0, r1, err := k.Reserves(ctx, pool)
					if err != nil {
						return err
					}
					res = PoolResponse{
						ShareAsset:  pool.ShareAsset,
						Pair:        pool.Pair,
						Account:     pool.Account().String(),
						Reserve0:    types.NewAssetAmount(r0, pool.Pair.Low),
						Reserve1:    types.NewAssetAmount(r1, pool.Pair.High),
						ShareSupply: k.ShareSupply(ctx, pool),
					}
					return nil
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, res)
			})
		},
	}
}

// GetCmdQueryBalance returns the command to query an account's balance
func GetCmdQueryBalance(open HostOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address] [asset]",
		Short: "Query an account's balance of an asset",
		Long: `Query an account's balance of an asset, including pool-share assets and
the native asset.

Example:
  $ pawdex query balance paw1... 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			who, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			asset, err := parseAssetID("asset", args[1])
			if err != nil {
				return err
			}

			return withHost(cmd, open, func(host Host) error {
				var balance math.Int
				err := host.Query(func(ctx sdk.Context) error {
					var err error
					balance, err = host.GetDexKeeper().AccountBalance(ctx, asset, who)
					return err
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, types.NewAssetAmount(balance, asset))
			})
		},
	}
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams(open HostOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Query the current dex module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withHost(cmd, open, func(host Host) error {
				var params types.Params
				err := host.Query(func(ctx sdk.Context) error {
					var err error
					params, err = host.GetDexKeeper().GetParams(ctx)
					return err
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, params)
			})
		},
	}
}
