package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// GetNextShareAssetID returns the id the allocator will hand out next.
func (k Keeper) GetNextShareAssetID(ctx context.Context) types.AssetID {
	bz := k.getStore(ctx).Get(types.NextShareAssetIDKey)
	if bz == nil {
		return types.MaxAssetID
	}
	return types.AssetID(binary.BigEndian.Uint32(bz))
}

// SetNextShareAssetID sets the allocator position.
func (k Keeper) SetNextShareAssetID(ctx context.Context, id types.AssetID) {
	k.getStore(ctx).Set(types.NextShareAssetIDKey, types.AssetIDToBytes(id))
}

// AllocateShareAssetID hands out the next pool-share asset id. Ids count down
// from MaxAssetID; an id already taken on the ledger is not skipped but fails
// with ErrAssetAlreadyExists. Allocated ids are never handed back.
func (k Keeper) AllocateShareAssetID(ctx context.Context) (types.AssetID, error) {
	candidate := k.GetNextShareAssetID(ctx)
	if k.assets.Exists(ctx, candidate) {
		return 0, types.ErrAssetAlreadyExists.Wrapf("share asset id %d is already registered", candidate)
	}
	if candidate == 0 {
		return 0, types.ErrAssetAlreadyExists.Wrap("share asset id space exhausted")
	}
	k.SetNextShareAssetID(ctx, candidate-1)
	return candidate, nil
}

// GetPool looks up the pool for an asset pair in either order.
func (k Keeper) GetPool(ctx context.Context, a, b types.AssetID) (types.Pool, bool, error) {
	bz := k.getStore(ctx).Get(types.PoolKey(types.Canonicalize(a, b)))
	if bz == nil {
		return types.Pool{}, false, nil
	}
	pool, err := types.UnmarshalPool(bz)
	if err != nil {
		return types.Pool{}, false, fmt.Errorf("GetPool: %w", err)
	}
	return pool, true, nil
}

// SetPool saves a pool to the registry.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	k.getStore(ctx).Set(types.PoolKey(pool.Pair), pool.Marshal())
	return nil
}

// IteratePools iterates over all pools in pair order.
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		pool, err := types.UnmarshalPool(iterator.Value())
		if err != nil {
			return fmt.Errorf("IteratePools: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns every registered pool.
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}

// CreatePool allocates a share asset for the pair, registers it on the ledger
// owned by the pool account, and adds the pool to the registry. The pool holds
// nothing until its first deposit.
func (k Keeper) CreatePool(ctx context.Context, pair types.Pair) (types.Pool, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Pool{}, err
	}

	shareAsset, err := k.AllocateShareAssetID(ctx)
	if err != nil {
		return types.Pool{}, err
	}
	pool := types.Pool{ShareAsset: shareAsset, Pair: pair}
	if err := pool.Validate(); err != nil {
		return types.Pool{}, types.ErrAssetAlreadyExists.Wrap(err.Error())
	}

	if err := k.assets.Create(ctx, shareAsset, pool.Account(), true, params.ShareMinBalance); err != nil {
		return types.Pool{}, types.ErrAssetAlreadyExists.Wrapf("create share asset %d: %v", shareAsset, err)
	}

	symbol := k.assetSymbol(ctx, params, pair.Low) + k.assetSymbol(ctx, params, pair.High)
	if err := k.assets.SetMetadata(ctx, shareAsset, symbol, symbol, uint8(params.ShareDecimals)); err != nil {
		return types.Pool{}, fmt.Errorf("CreatePool: set share metadata: %w", err)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return types.Pool{}, fmt.Errorf("CreatePool: save pool: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyShareAsset, assetLabel(shareAsset)),
			sdk.NewAttribute(types.AttributeKeyPoolAccount, pool.Account().String()),
			sdk.NewAttribute(types.AttributeKeyAsset0, assetLabel(pair.Low)),
			sdk.NewAttribute(types.AttributeKeyAsset1, assetLabel(pair.High)),
			sdk.NewAttribute(types.AttributeKeySymbol, symbol),
		),
	)
	k.metrics.PoolsCreated.Inc()
	k.Logger(ctx).Info("pool created", "pair", pair.String(), "share_asset", shareAsset)

	return pool, nil
}
