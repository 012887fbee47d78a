package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// RegisterInvariants registers all DEX invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-assets", PoolAssetInvariant(k))
}

// AllInvariants runs all invariants of the DEX module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ShareSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return PoolAssetInvariant(k)(ctx)
	}
}

// ShareSupplyInvariant checks that a pool has outstanding shares exactly when
// both of its reserves are non-zero.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "share-supply", err.Error()), true
		}
		for _, pool := range pools {
			r0, r1, err := k.Reserves(ctx, pool)
			if err != nil {
				count++
				msg += fmt.Sprintf("pool %s: %v\n", pool.Pair, err)
				continue
			}
			supply := k.ShareSupply(ctx, pool)

			empty := supply.IsZero()
			if empty != r0.IsZero() || empty != r1.IsZero() {
				count++
				msg += fmt.Sprintf("pool %s: share supply %s with reserves %s/%s\n",
					pool.Pair, supply, r0, r1)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-supply",
			fmt.Sprintf("found %d pools with inconsistent share supply\n%s", count, msg),
		), broken
	}
}

// PoolAssetInvariant checks that every registered pool is keyed by a
// canonical pair and that its share asset exists on the ledger.
func PoolAssetInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-assets", err.Error()), true
		}
		for _, pool := range pools {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %s: %v\n", pool.Pair, err)
			}
			if !k.assets.Exists(ctx, pool.ShareAsset) {
				count++
				msg += fmt.Sprintf("pool %s: share asset %d does not exist\n", pool.Pair, pool.ShareAsset)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-assets",
			fmt.Sprintf("found %d invalid pool records\n%s", count, msg),
		), broken
	}
}
