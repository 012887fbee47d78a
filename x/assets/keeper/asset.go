package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets/types"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

// Exists reports whether an asset is registered.
func (k Keeper) Exists(ctx context.Context, id dextypes.AssetID) bool {
	return k.getStore(ctx).Has(types.AssetKey(id))
}

// GetAsset returns an asset's registration details.
func (k Keeper) GetAsset(ctx context.Context, id dextypes.AssetID) (types.Asset, bool) {
	var asset types.Asset
	found := k.getJSON(ctx, types.AssetKey(id), &asset)
	return asset, found
}

// Create registers a new asset with zero supply.
func (k Keeper) Create(ctx context.Context, id dextypes.AssetID, owner sdk.AccAddress, isSufficient bool, minBalance math.Int) error {
	if k.Exists(ctx, id) {
		return types.ErrAssetExists.Wrapf("asset %d", id)
	}
	if minBalance.IsNil() || !minBalance.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("asset %d: min balance must be positive", id)
	}

	asset := types.Asset{
		ID:           id,
		Owner:        owner,
		IsSufficient: isSufficient,
		MinBalance:   minBalance,
	}
	if err := k.setJSON(ctx, types.AssetKey(id), asset); err != nil {
		return fmt.Errorf("Create: store asset %d: %w", id, err)
	}

	k.Logger(ctx).Debug("asset created", "id", id, "owner", owner.String())
	return nil
}

// SetMetadata records an asset's name, symbol and decimals.
func (k Keeper) SetMetadata(ctx context.Context, id dextypes.AssetID, name, symbol string, decimals uint8) error {
	if !k.Exists(ctx, id) {
		return types.ErrUnknownAsset.Wrapf("asset %d", id)
	}
	md := types.Metadata{Name: name, Symbol: symbol, Decimals: decimals}
	if err := k.setJSON(ctx, types.MetadataKey(id), md); err != nil {
		return fmt.Errorf("SetMetadata: store metadata %d: %w", id, err)
	}
	return nil
}

// GetMetadata returns an asset's metadata.
func (k Keeper) GetMetadata(ctx context.Context, id dextypes.AssetID) (types.Metadata, bool) {
	var md types.Metadata
	found := k.getJSON(ctx, types.MetadataKey(id), &md)
	return md, found
}

// Symbol returns an asset's symbol, or the empty string when none is set.
func (k Keeper) Symbol(ctx context.Context, id dextypes.AssetID) string {
	md, _ := k.GetMetadata(ctx, id)
	return md.Symbol
}

// TotalIssuance returns the outstanding supply of an asset.
func (k Keeper) TotalIssuance(ctx context.Context, id dextypes.AssetID) math.Int {
	return k.getInt(ctx, types.SupplyKey(id))
}

// IterateAssets walks every registered asset in id order.
func (k Keeper) IterateAssets(ctx context.Context, cb func(asset types.Asset) (stop bool)) {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.AssetKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var asset types.Asset
		if err := json.Unmarshal(iterator.Value(), &asset); err != nil {
			panic(fmt.Errorf("corrupt asset record %X: %w", iterator.Key(), err))
		}
		if cb(asset) {
			break
		}
	}
}
