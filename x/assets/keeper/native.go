package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets/types"
)

// GetNativeBalance returns an account's native currency balance.
func (k Keeper) GetNativeBalance(ctx context.Context, who sdk.AccAddress) math.Int {
	return k.getInt(ctx, types.NativeBalanceKey(who))
}

// SendNative moves native currency between accounts.
func (k Keeper) SendNative(ctx context.Context, from, to sdk.AccAddress, amount math.Int) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount.IsZero() || from.Equals(to) {
		return nil
	}

	fromBalance := k.GetNativeBalance(ctx, from)
	if fromBalance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("native: %s has %s, needs %s", from, fromBalance, amount)
	}
	toBalance, err := k.GetNativeBalance(ctx, to).SafeAdd(amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrapf("native balance overflow crediting %s", amount)
	}

	if err := k.setInt(ctx, types.NativeBalanceKey(from), fromBalance.Sub(amount)); err != nil {
		return err
	}
	return k.setInt(ctx, types.NativeBalanceKey(to), toBalance)
}

// MintNative credits native currency to an account. Only genesis and tests
// issue native currency.
func (k Keeper) MintNative(ctx context.Context, to sdk.AccAddress, amount math.Int) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	balance, err := k.GetNativeBalance(ctx, to).SafeAdd(amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrapf("native balance overflow crediting %s", amount)
	}
	return k.setInt(ctx, types.NativeBalanceKey(to), balance)
}

// NativeSymbol returns the native currency's symbol.
func (k Keeper) NativeSymbol(ctx context.Context) string {
	return string(k.getStore(ctx).Get(types.NativeSymbolKey))
}

// SetNativeSymbol sets the native currency's symbol.
func (k Keeper) SetNativeSymbol(ctx context.Context, symbol string) {
	k.getStore(ctx).Set(types.NativeSymbolKey, []byte(symbol))
}

// IterateNativeBalances walks every non-zero native balance.
func (k Keeper) IterateNativeBalances(ctx context.Context, cb func(who sdk.AccAddress, amount math.Int) (stop bool)) {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.NativeBalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		addrBz := iterator.Key()[len(types.NativeBalanceKeyPrefix)+1:]
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Errorf("corrupt native balance %X: %w", iterator.Key(), err))
		}
		if cb(sdk.AccAddress(addrBz), amount) {
			break
		}
	}
}
