package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// The helpers below route the configured native asset id to the native
// currency keeper and every other id to the asset ledger.

func (k Keeper) balance(ctx context.Context, params types.Params, id types.AssetID, who sdk.AccAddress) math.Int {
	if id == params.NativeAssetID {
		return k.native.GetNativeBalance(ctx, who)
	}
	return k.assets.Balance(ctx, id, who)
}

func (k Keeper) transfer(ctx context.Context, params types.Params, id types.AssetID, from, to sdk.AccAddress, amount math.Int) error {
	if id == params.NativeAssetID {
		return k.native.SendNative(ctx, from, to, amount)
	}
	return k.assets.Transfer(ctx, id, from, to, amount)
}

func (k Keeper) assetExists(ctx context.Context, params types.Params, id types.AssetID) bool {
	return id == params.NativeAssetID || k.assets.Exists(ctx, id)
}

func (k Keeper) assetSymbol(ctx context.Context, params types.Params, id types.AssetID) string {
	if id == params.NativeAssetID {
		return k.native.NativeSymbol(ctx)
	}
	return k.assets.Symbol(ctx, id)
}

// AccountBalance returns who's balance of any asset the dex can settle in,
// the native asset included.
func (k Keeper) AccountBalance(ctx context.Context, id types.AssetID, who sdk.AccAddress) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	return k.balance(ctx, params, id, who), nil
}
