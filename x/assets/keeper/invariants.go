package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets/types"
)

// RegisterInvariants registers the assets module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "total-supply", TotalSupplyInvariant(k))
}

// TotalSupplyInvariant checks that every asset's recorded issuance equals the
// sum of its balances.
func TotalSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		var assets []types.Asset
		k.IterateAssets(ctx, func(asset types.Asset) bool {
			assets = append(assets, asset)
			return false
		})

		for _, asset := range assets {
			sum := math.ZeroInt()
			k.IterateBalances(ctx, asset.ID, func(_ sdk.AccAddress, amount math.Int) bool {
				sum = sum.Add(amount)
				return false
			})
			if supply := k.TotalIssuance(ctx, asset.ID); !supply.Equal(sum) {
				count++
				msg += fmt.Sprintf("asset %d: issuance %s, balances sum to %s\n", asset.ID, supply, sum)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "total-supply",
			fmt.Sprintf("found %d assets with mismatched supply\n%s", count, msg),
		), broken
	}
}
