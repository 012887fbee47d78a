package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets/types"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

var (
	_ dextypes.AssetsKeeper         = Keeper{}
	_ dextypes.NativeCurrencyKeeper = Keeper{}
)

// Keeper of the assets store
type Keeper struct {
	storeKey storetypes.StoreKey
}

// NewKeeper creates a new assets Keeper instance
func NewKeeper(key storetypes.StoreKey) Keeper {
	return Keeper{storeKey: key}
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) getInt(ctx context.Context, key []byte) math.Int {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return math.ZeroInt()
	}
	var v math.Int
	if err := v.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupt amount under key %X: %w", key, err))
	}
	return v
}

func (k Keeper) setInt(ctx context.Context, key []byte, v math.Int) error {
	store := k.getStore(ctx)
	if v.IsZero() {
		store.Delete(key)
		return nil
	}
	bz, err := v.Marshal()
	if err != nil {
		return err
	}
	store.Set(key, bz)
	return nil
}

func (k Keeper) getJSON(ctx context.Context, key []byte, out any) bool {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return false
	}
	if err := json.Unmarshal(bz, out); err != nil {
		panic(fmt.Errorf("corrupt record under key %X: %w", key, err))
	}
	return true
}

func (k Keeper) setJSON(ctx context.Context, key []byte, v any) error {
	bz, err := json.Marshal(v)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(key, bz)
	return nil
}
