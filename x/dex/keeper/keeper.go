package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/dex/types"
)

var _ types.Exchange = Keeper{}

// Keeper of the dex store
type Keeper struct {
	storeKey storetypes.StoreKey
	assets   types.AssetsKeeper
	native   types.NativeCurrencyKeeper
	metrics  *DEXMetrics
}

// NewKeeper creates a new dex Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	assets types.AssetsKeeper,
	native types.NativeCurrencyKeeper,
) *Keeper {
	return &Keeper{
		storeKey: key,
		assets:   assets,
		native:   native,
		metrics:  GetDEXMetrics(),
	}
}

// getStore returns the KVStore for the dex module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
