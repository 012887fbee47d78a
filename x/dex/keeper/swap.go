package keeper

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/hashicorp/go-metrics"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// Calculate prices amountIn against the given reserves using the configured
// swap fee.
func (k Keeper) Calculate(ctx context.Context, amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	return types.CalculateOutput(amountIn, reserveIn, reserveOut, params.SwapFeeNumerator, params.SwapFeeDenominator)
}

// PoolPrice quotes how much of the pair's other asset in.Amount of in.Asset
// is worth. The input reserve is reduced by the amount before pricing,
// saturating at zero. Nothing is written.
func (k Keeper) PoolPrice(ctx context.Context, pool types.Pool, in types.AssetAmount) (math.Int, error) {
	if !pool.Pair.Contains(in.Asset) {
		return math.ZeroInt(), types.ErrInvalidAsset.Wrapf("asset %d is not in pool %s", in.Asset, pool.Pair)
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	account := pool.Account()
	reserveIn := saturatingSub(k.balance(ctx, params, in.Asset, account), in.Amount)
	reserveOut := k.balance(ctx, params, pool.Pair.Other(in.Asset), account)
	return types.CalculateOutput(in.Amount, reserveIn, reserveOut, params.SwapFeeNumerator, params.SwapFeeDenominator)
}

// ExecuteSwap sells in.Amount of in.Asset to the pool for the other asset of
// the pair. The buyer pays in before being paid out.
func (k Keeper) ExecuteSwap(ctx context.Context, pool types.Pool, in types.AssetAmount, buyer sdk.AccAddress) (types.AssetAmount, error) {
	defer telemetry.MeasureSince(time.Now(), types.ModuleName, "swap")

	var none types.AssetAmount
	if !in.Amount.IsPositive() {
		return none, types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}
	if !pool.Pair.Contains(in.Asset) {
		return none, types.ErrInvalidAsset.Wrapf("asset %d is not in pool %s", in.Asset, pool.Pair)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return none, err
	}
	outAsset := pool.Pair.Other(in.Asset)
	account := pool.Account()
	reserveIn := k.balance(ctx, params, in.Asset, account)
	reserveOut := k.balance(ctx, params, outAsset, account)
	pairLabel := pool.Pair.String()

	if reserveIn.LTE(in.Amount) || reserveOut.IsZero() {
		k.metrics.SwapsTotal.WithLabelValues(pairLabel, "failed").Inc()
		return none, types.ErrInsufficientBalance.Wrapf(
			"pool %s reserves %s/%s cannot fill %s", pool.Pair, reserveIn, reserveOut, in)
	}

	amountOut, err := types.CalculateOutput(in.Amount, reserveIn.Sub(in.Amount), reserveOut,
		params.SwapFeeNumerator, params.SwapFeeDenominator)
	if err != nil {
		k.metrics.SwapsTotal.WithLabelValues(pairLabel, "failed").Inc()
		return none, err
	}
	if amountOut.IsZero() {
		k.metrics.SwapsTotal.WithLabelValues(pairLabel, "failed").Inc()
		return none, types.ErrInvalidAmount.Wrapf("swap of %s yields nothing", in)
	}

	if err := k.transfer(ctx, params, in.Asset, buyer, account, in.Amount); err != nil {
		k.metrics.SwapsTotal.WithLabelValues(pairLabel, "failed").Inc()
		return none, types.ErrInsufficientBalance.Wrapf("transfer asset %d: %v", in.Asset, err)
	}
	if err := k.transfer(ctx, params, outAsset, account, buyer, amountOut); err != nil {
		k.metrics.SwapsTotal.WithLabelValues(pairLabel, "failed").Inc()
		return none, fmt.Errorf("ExecuteSwap: transfer asset %d: %w", outAsset, err)
	}

	k.metrics.SwapsTotal.WithLabelValues(pairLabel, "success").Inc()
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "swap"},
		1,
		[]metrics.Label{
			telemetry.NewLabel("pair", pairLabel),
			telemetry.NewLabel("asset_in", assetLabel(in.Asset)),
		},
	)
	k.metrics.SwapVolume.WithLabelValues(pairLabel, assetLabel(in.Asset)).Add(amountToFloat(in.Amount))
	k.recordReserves(ctx, params, pool)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyShareAsset, assetLabel(pool.ShareAsset)),
			sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
			sdk.NewAttribute(types.AttributeKeyAssetIn, assetLabel(in.Asset)),
			sdk.NewAttribute(types.AttributeKeyAmountIn, in.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyAssetOut, assetLabel(outAsset)),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)

	return types.NewAssetAmount(amountOut, outAsset), nil
}
