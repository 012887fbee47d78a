package keeper

import (
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/hashicorp/go-metrics"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// Reserves returns the pool account's balances of the pair, low side first.
func (k Keeper) Reserves(ctx context.Context, pool types.Pool) (math.Int, math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	account := pool.Account()
	return k.balance(ctx, params, pool.Pair.Low, account), k.balance(ctx, params, pool.Pair.High, account), nil
}

// ShareSupply returns the outstanding pool-share tokens.
func (k Keeper) ShareSupply(ctx context.Context, pool types.Pool) math.Int {
	return k.assets.TotalIssuance(ctx, pool.ShareAsset)
}

// Deposit adds liquidity to a pool. amount0 and amount1 are denominated in
// pool.Pair.Low and pool.Pair.High respectively.
//
// The first deposit into an empty pool mints amount0 shares and sets the
// price. Later deposits take amount0 as authoritative: the matching amount of
// the other asset is amount0*r1/r0 and must not exceed amount1, and the
// provider receives amount0*supply/r0 shares.
func (k Keeper) Deposit(ctx context.Context, pool types.Pool, amount0, amount1 math.Int, provider sdk.AccAddress) (math.Int, error) {
	if !amount0.IsPositive() || !amount1.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("liquidity amounts must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	account := pool.Account()
	supply := k.ShareSupply(ctx, pool)

	shares := amount0
	required1 := amount1
	if !supply.IsZero() {
		r0 := k.balance(ctx, params, pool.Pair.Low, account)
		r1 := k.balance(ctx, params, pool.Pair.High, account)
		if r0.IsZero() {
			return math.ZeroInt(), fmt.Errorf("Deposit: pool %d has %s shares but no %d reserve",
				pool.ShareAsset, supply, pool.Pair.Low)
		}

		if required1, err = mulDiv(amount0, r1, r0); err != nil {
			return math.ZeroInt(), err
		}
		if shares, err = mulDiv(amount0, supply, r0); err != nil {
			return math.ZeroInt(), err
		}
		if required1.GT(amount1) {
			return math.ZeroInt(), types.ErrInvalidAmount.Wrapf(
				"deposit of %s asset %d requires %s of asset %d, only %s offered",
				amount0, pool.Pair.Low, required1, pool.Pair.High, amount1)
		}
		if shares.IsZero() {
			return math.ZeroInt(), types.ErrInvalidAmount.Wrapf("deposit of %s mints no shares", amount0)
		}
	}

	if err := k.assets.Mint(ctx, pool.ShareAsset, provider, shares); err != nil {
		return math.ZeroInt(), fmt.Errorf("Deposit: mint shares: %w", err)
	}
	if err := k.transfer(ctx, params, pool.Pair.Low, provider, account, amount0); err != nil {
		return math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("transfer asset %d: %v", pool.Pair.Low, err)
	}
	if err := k.transfer(ctx, params, pool.Pair.High, provider, account, required1); err != nil {
		return math.ZeroInt(), types.ErrInsufficientBalance.Wrapf("transfer asset %d: %v", pool.Pair.High, err)
	}

	pairLabel := pool.Pair.String()
	k.metrics.LiquidityAdded.WithLabelValues(pairLabel, assetLabel(pool.Pair.Low)).Add(amountToFloat(amount0))
	k.metrics.LiquidityAdded.WithLabelValues(pairLabel, assetLabel(pool.Pair.High)).Add(amountToFloat(required1))
	telemetry.IncrCounterWithLabels([]string{types.ModuleName, "add_liquidity"}, 1,
		[]metrics.Label{telemetry.NewLabel("pair", pairLabel)})
	k.recordReserves(ctx, params, pool)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyShareAsset, assetLabel(pool.ShareAsset)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAsset0, assetLabel(pool.Pair.Low)),
			sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
			sdk.NewAttribute(types.AttributeKeyAsset1, assetLabel(pool.Pair.High)),
			sdk.NewAttribute(types.AttributeKeyAmount1, required1.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return shares, nil
}

// Withdraw burns shares and pays the provider its proportional part of each
// reserve, truncated. Burning the whole supply empties the pool.
func (k Keeper) Withdraw(ctx context.Context, pool types.Pool, shares math.Int, provider sdk.AccAddress) (types.AssetAmount, types.AssetAmount, error) {
	var none types.AssetAmount
	if !shares.IsPositive() {
		return none, none, types.ErrInvalidAmount.Wrap("shares must be positive")
	}

	supply := k.ShareSupply(ctx, pool)
	if supply.IsZero() {
		return none, none, types.ErrEmptyPool.Wrapf("pool %s has no shares", pool.Pair)
	}
	held := k.assets.Balance(ctx, pool.ShareAsset, provider)
	if held.LT(shares) {
		return none, none, types.ErrInsufficientBalance.Wrapf("have %s shares, need %s", held, shares)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return none, none, err
	}
	account := pool.Account()
	r0 := k.balance(ctx, params, pool.Pair.Low, account)
	r1 := k.balance(ctx, params, pool.Pair.High, account)

	amount0, err := mulDiv(shares, r0, supply)
	if err != nil {
		return none, none, err
	}
	amount1, err := mulDiv(shares, r1, supply)
	if err != nil {
		return none, none, err
	}

	if err := k.transfer(ctx, params, pool.Pair.Low, account, provider, amount0); err != nil {
		return none, none, fmt.Errorf("Withdraw: transfer asset %d: %w", pool.Pair.Low, err)
	}
	if err := k.transfer(ctx, params, pool.Pair.High, account, provider, amount1); err != nil {
		return none, none, fmt.Errorf("Withdraw: transfer asset %d: %w", pool.Pair.High, err)
	}
	if err := k.assets.BurnFrom(ctx, pool.ShareAsset, provider, shares); err != nil {
		return none, none, fmt.Errorf("Withdraw: burn shares: %w", err)
	}

	pairLabel := pool.Pair.String()
	k.metrics.LiquidityRemoved.WithLabelValues(pairLabel, assetLabel(pool.Pair.Low)).Add(amountToFloat(amount0))
	k.metrics.LiquidityRemoved.WithLabelValues(pairLabel, assetLabel(pool.Pair.High)).Add(amountToFloat(amount1))
	telemetry.IncrCounterWithLabels([]string{types.ModuleName, "remove_liquidity"}, 1,
		[]metrics.Label{telemetry.NewLabel("pair", pairLabel)})
	k.recordReserves(ctx, params, pool)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyShareAsset, assetLabel(pool.ShareAsset)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAsset0, assetLabel(pool.Pair.Low)),
			sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
			sdk.NewAttribute(types.AttributeKeyAsset1, assetLabel(pool.Pair.High)),
			sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return types.NewAssetAmount(amount0, pool.Pair.Low), types.NewAssetAmount(amount1, pool.Pair.High), nil
}

func (k Keeper) recordReserves(ctx context.Context, params types.Params, pool types.Pool) {
	account := pool.Account()
	k.metrics.recordReserves(pool.Pair.String(),
		assetLabel(pool.Pair.Low), assetLabel(pool.Pair.High),
		k.balance(ctx, params, pool.Pair.Low, account),
		k.balance(ctx, params, pool.Pair.High, account),
	)
}

func assetLabel(id types.AssetID) string {
	return strconv.FormatUint(uint64(id), 10)
}
