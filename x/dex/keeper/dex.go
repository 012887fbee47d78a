package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// AddLiquidity deposits into the pool for (asset0, asset1), creating the pool
// on first use, and returns the shares minted to provider. The amounts travel
// with their assets whatever order the pair is given in.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	amount0 math.Int, asset0 types.AssetID,
	amount1 math.Int, asset1 types.AssetID,
	provider sdk.AccAddress,
	deadline time.Time,
) (math.Int, error) {
	if err := checkDistinct(asset0, asset1); err != nil {
		return math.ZeroInt(), err
	}
	if !isPositive(amount0) || !isPositive(amount1) {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("liquidity amounts must be positive")
	}
	if err := checkDeadline(ctx, deadline); err != nil {
		return math.ZeroInt(), err
	}
	return k.addLiquidity(ctx, types.NewAssetAmount(amount0, asset0), types.NewAssetAmount(amount1, asset1), provider)
}

// addLiquidity runs AddLiquidity from the registration check onward. Genesis
// seeding enters here since it has no deadline.
func (k Keeper) addLiquidity(ctx context.Context, x, y types.AssetAmount, provider sdk.AccAddress) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if err := k.checkRegistered(ctx, params, x.Asset, y.Asset); err != nil {
		return math.ZeroInt(), err
	}
	for _, in := range []types.AssetAmount{x, y} {
		if err := k.checkBalance(ctx, params, in, provider); err != nil {
			return math.ZeroInt(), err
		}
	}

	low, high := types.CanonicalizeAmounts(x, y)
	pair := types.Pair{Low: low.Asset, High: high.Asset}

	var shares math.Int
	err = k.atomically(ctx, func(cacheCtx sdk.Context) error {
		pool, found, err := k.GetPool(cacheCtx, pair.Low, pair.High)
		if err != nil {
			return err
		}
		if !found {
			if pool, err = k.CreatePool(cacheCtx, pair); err != nil {
				return err
			}
		}
		shares, err = k.Deposit(cacheCtx, pool, low.Amount, high.Amount, provider)
		return err
	})
	if err != nil {
		return math.ZeroInt(), err
	}

	k.Logger(ctx).Debug("liquidity added", "pair", pair.String(), "provider", provider.String(), "shares", shares.String())
	return shares, nil
}

// RemoveLiquidity burns shares of the (asset0, asset1) pool and returns what
// was paid out, low asset first.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	shares math.Int,
	asset0, asset1 types.AssetID,
	provider sdk.AccAddress,
	deadline time.Time,
) (types.AssetAmount, types.AssetAmount, error) {
	var none types.AssetAmount
	if err := checkDistinct(asset0, asset1); err != nil {
		return none, none, err
	}
	if !isPositive(shares) {
		return none, none, types.ErrInvalidAmount.Wrap("shares must be positive")
	}
	if err := checkDeadline(ctx, deadline); err != nil {
		return none, none, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return none, none, err
	}
	if err := k.checkRegistered(ctx, params, asset0, asset1); err != nil {
		return none, none, err
	}

	pool, err := k.lookupPool(ctx, asset0, asset1)
	if err != nil {
		return none, none, err
	}

	var out0, out1 types.AssetAmount
	err = k.atomically(ctx, func(cacheCtx sdk.Context) error {
		var err error
		out0, out1, err = k.Withdraw(cacheCtx, pool, shares, provider)
		return err
	})
	if err != nil {
		return none, none, err
	}

	k.Logger(ctx).Debug("liquidity removed", "pair", pool.Pair.String(), "provider", provider.String(), "shares", shares.String())
	return out0, out1, nil
}

// Swap sells amount of asset for other on behalf of buyer.
func (k Keeper) Swap(
	ctx context.Context,
	amount math.Int,
	asset, other types.AssetID,
	buyer sdk.AccAddress,
	deadline time.Time,
) (types.AssetAmount, error) {
	var none types.AssetAmount
	if err := checkDistinct(asset, other); err != nil {
		return none, err
	}
	if !isPositive(amount) {
		return none, types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}
	if err := checkDeadline(ctx, deadline); err != nil {
		return none, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return none, err
	}
	if err := k.checkRegistered(ctx, params, asset, other); err != nil {
		return none, err
	}
	in := types.NewAssetAmount(amount, asset)
	if err := k.checkBalance(ctx, params, in, buyer); err != nil {
		return none, err
	}

	pool, err := k.lookupPool(ctx, asset, other)
	if err != nil {
		return none, err
	}

	var out types.AssetAmount
	err = k.atomically(ctx, func(cacheCtx sdk.Context) error {
		var err error
		out, err = k.ExecuteSwap(cacheCtx, pool, in, buyer)
		return err
	})
	if err != nil {
		return none, err
	}

	k.Logger(ctx).Debug("swap executed", "pair", pool.Pair.String(), "buyer", buyer.String(), "in", in.String(), "out", out.String())
	return out, nil
}

// Price quotes amount of asset in units of other without touching state.
func (k Keeper) Price(ctx context.Context, amount math.Int, asset, other types.AssetID) (math.Int, error) {
	if err := checkDistinct(asset, other); err != nil {
		return math.ZeroInt(), err
	}
	if !isPositive(amount) {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("price amount must be positive")
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if err := k.checkRegistered(ctx, params, asset, other); err != nil {
		return math.ZeroInt(), err
	}

	pool, err := k.lookupPool(ctx, asset, other)
	if err != nil {
		return math.ZeroInt(), err
	}
	return k.PoolPrice(ctx, pool, types.NewAssetAmount(amount, asset))
}

// atomically runs fn against a cached branch of ctx and commits the branch,
// events included, only when fn succeeds.
func (k Keeper) atomically(ctx context.Context, fn func(cacheCtx sdk.Context) error) error {
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

func (k Keeper) lookupPool(ctx context.Context, a, b types.AssetID) (types.Pool, error) {
	pool, found, err := k.GetPool(ctx, a, b)
	if err != nil {
		return types.Pool{}, err
	}
	if !found {
		return types.Pool{}, types.ErrNoPool.Wrapf("no pool for %s", types.Canonicalize(a, b))
	}
	return pool, nil
}

func (k Keeper) checkRegistered(ctx context.Context, params types.Params, ids ...types.AssetID) error {
	for _, id := range ids {
		if !k.assetExists(ctx, params, id) {
			return types.ErrInvalidAsset.Wrapf("asset %d is not registered", id)
		}
	}
	return nil
}

func (k Keeper) checkBalance(ctx context.Context, params types.Params, need types.AssetAmount, who sdk.AccAddress) error {
	if have := k.balance(ctx, params, need.Asset, who); have.LT(need.Amount) {
		return types.ErrInsufficientBalance.Wrapf("%s holds %s of asset %d, needs %s", who, have, need.Asset, need.Amount)
	}
	return nil
}

func checkDistinct(a, b types.AssetID) error {
	if a == b {
		return types.ErrIdenticalAssets.Wrapf("asset %d", a)
	}
	return nil
}

// checkDeadline requires the deadline to be strictly after the block time.
func checkDeadline(ctx context.Context, deadline time.Time) error {
	now := sdk.UnwrapSDKContext(ctx).BlockTime()
	if !deadline.After(now) {
		return types.ErrDeadlinePassed.Wrapf("deadline %s, block time %s", deadline.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339))
	}
	return nil
}

func isPositive(amount math.Int) bool {
	return !amount.IsNil() && amount.IsPositive()
}
