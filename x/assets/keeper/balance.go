package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets/types"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

// Balance returns an account's balance of an asset.
func (k Keeper) Balance(ctx context.Context, id dextypes.AssetID, who sdk.AccAddress) math.Int {
	return k.getInt(ctx, types.BalanceKey(id, who))
}

// Mint creates new units of an asset in an account.
func (k Keeper) Mint(ctx context.Context, id dextypes.AssetID, to sdk.AccAddress, amount math.Int) error {
	asset, found := k.GetAsset(ctx, id)
	if !found {
		return types.ErrUnknownAsset.Wrapf("asset %d", id)
	}
	if err := validateAmount(amount); err != nil {
		return err
	}

	supply, err := k.TotalIssuance(ctx, id).SafeAdd(amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrapf("supply overflow minting %s of asset %d", amount, id)
	}
	if err := k.credit(ctx, asset, to, amount); err != nil {
		return err
	}
	return k.setInt(ctx, types.SupplyKey(id), supply)
}

// BurnFrom destroys units of an asset held by an account.
func (k Keeper) BurnFrom(ctx context.Context, id dextypes.AssetID, from sdk.AccAddress, amount math.Int) error {
	if !k.Exists(ctx, id) {
		return types.ErrUnknownAsset.Wrapf("asset %d", id)
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	if err := k.debit(ctx, id, from, amount); err != nil {
		return err
	}

	supply, err := k.TotalIssuance(ctx, id).SafeSub(amount)
	if err != nil || supply.IsNegative() {
		return fmt.Errorf("BurnFrom: supply of asset %d below burned amount %s", id, amount)
	}
	return k.setInt(ctx, types.SupplyKey(id), supply)
}

// Transfer moves units of an asset between accounts.
func (k Keeper) Transfer(ctx context.Context, id dextypes.AssetID, from, to sdk.AccAddress, amount math.Int) error {
	asset, found := k.GetAsset(ctx, id)
	if !found {
		return types.ErrUnknownAsset.Wrapf("asset %d", id)
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount.IsZero() || from.Equals(to) {
		return nil
	}
	if balance := k.Balance(ctx, id, from); balance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("asset %d: %s has %s, needs %s", id, from, balance, amount)
	}
	// a rejected credit must leave the sender untouched
	if err := k.credit(ctx, asset, to, amount); err != nil {
		return err
	}
	return k.debit(ctx, id, from, amount)
}

// IterateBalances walks every non-zero balance of an asset.
func (k Keeper) IterateBalances(ctx context.Context, id dextypes.AssetID, cb func(who sdk.AccAddress, amount math.Int) (stop bool)) {
	prefix := types.BalancePrefix(id)
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		// key layout: prefix | len | address
		addrBz := iterator.Key()[len(prefix)+1:]
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Errorf("corrupt balance %X: %w", iterator.Key(), err))
		}
		if cb(sdk.AccAddress(addrBz), amount) {
			break
		}
	}
}

func (k Keeper) debit(ctx context.Context, id dextypes.AssetID, from sdk.AccAddress, amount math.Int) error {
	balance := k.Balance(ctx, id, from)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("asset %d: %s has %s, needs %s", id, from, balance, amount)
	}
	return k.setInt(ctx, types.BalanceKey(id, from), balance.Sub(amount))
}

// credit adds amount to an account; the resulting balance must reach the
// asset's minimum balance.
func (k Keeper) credit(ctx context.Context, asset types.Asset, to sdk.AccAddress, amount math.Int) error {
	if err := sdk.VerifyAddressFormat(to); err != nil {
		return fmt.Errorf("credit: %w", err)
	}
	balance, err := k.Balance(ctx, asset.ID, to).SafeAdd(amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrapf("balance overflow crediting %s of asset %d", amount, asset.ID)
	}
	if balance.IsPositive() && balance.LT(asset.MinBalance) {
		return types.ErrBelowMinBalance.Wrapf("asset %d: balance %s below minimum %s", asset.ID, balance, asset.MinBalance)
	}
	return k.setInt(ctx, types.BalanceKey(asset.ID, to), balance)
}

func validateAmount(amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}
	return nil
}
