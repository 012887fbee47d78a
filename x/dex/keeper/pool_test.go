package keeper_test

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawdex/testutil/keeper"
	assetskeeper "github.com/paw-chain/pawdex/x/assets/keeper"
	"github.com/paw-chain/pawdex/x/dex/types"
)

// failingLedger refuses transfers of one asset.
type failingLedger struct {
	assetskeeper.Keeper
	failAsset types.AssetID
}

func (l failingLedger) Transfer(ctx context.Context, id types.AssetID, from, to sdk.AccAddress, amount math.Int) error {
	if id == l.failAsset {
		return errors.New("transfer refused")
	}
	return l.Keeper.Transfer(ctx, id, from, to, amount)
}

func TestAllocator_CountsDown(t *testing.T) {
	f := setup(t)
	deadline := keepertest.Deadline(f.ctx)

	pairs := [][2]types.AssetID{{assetA, assetB}, {assetC, assetA}, {assetB, assetC}}
	for i, p := range pairs {
		_, err := f.k.AddLiquidity(f.ctx, math.NewInt(1_000), p[0], math.NewInt(1_000), p[1], lp, deadline)
		require.NoError(t, err)
		require.Equal(t, types.MaxAssetID-types.AssetID(i), f.pool(t, p[0], p[1]).ShareAsset)
	}
	require.Equal(t, types.MaxAssetID-3, f.k.GetNextShareAssetID(f.ctx))

	pools, err := f.k.GetAllPools(f.ctx)
	require.NoError(t, err)
	require.Len(t, pools, 3)
	// registry iterates in pair order
	require.Equal(t, types.Pair{Low: assetA, High: assetB}, pools[0].Pair)
	require.Equal(t, types.Pair{Low: assetA, High: assetC}, pools[1].Pair)
	require.Equal(t, types.Pair{Low: assetB, High: assetC}, pools[2].Pair)

	// a second deposit reuses the pool
	_, err = f.k.AddLiquidity(f.ctx, math.NewInt(10), assetB, math.NewInt(10), assetA, lp, deadline)
	require.NoError(t, err)
	require.Equal(t, types.MaxAssetID-3, f.k.GetNextShareAssetID(f.ctx))
}

func TestAllocator_Collision(t *testing.T) {
	f := setup(t)
	deadline := keepertest.Deadline(f.ctx)
	f.seedPool(t)

	// someone else already registered the next id
	keepertest.CreateAsset(t, f.ledger, f.ctx, types.MaxAssetID-1, "SQUAT")

	_, err := f.k.AddLiquidity(f.ctx, math.NewInt(1_000), assetA, math.NewInt(1_000), assetC, lp, deadline)
	require.ErrorIs(t, err, types.ErrAssetAlreadyExists)

	_, found, err := f.k.GetPool(f.ctx, assetA, assetC)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, types.MaxAssetID-1, f.k.GetNextShareAssetID(f.ctx))
	require.Equal(t, math.NewInt(100_000), f.balance(assetC, lp))

	// the allocator does not skip ahead on its own
	_, err = f.k.AddLiquidity(f.ctx, math.NewInt(1_000), assetB, math.NewInt(1_000), assetC, lp, deadline)
	require.ErrorIs(t, err, types.ErrAssetAlreadyExists)
}

func TestAllocator_Exhausted(t *testing.T) {
	f := setup(t)
	f.k.SetNextShareAssetID(f.ctx, 0)

	_, err := f.k.AllocateShareAssetID(f.ctx)
	require.ErrorIs(t, err, types.ErrAssetAlreadyExists)
}

func TestAddLiquidity_RollsBackOnFailure(t *testing.T) {
	k, ledger, ctx := keepertest.DexKeeperWithLedger(t, func(l assetskeeper.Keeper) types.AssetsKeeper {
		return failingLedger{Keeper: l, failAsset: assetB}
	})
	f := fixture{k: k, ledger: ledger, ctx: ctx}
	f.registerAssets(t)

	// pool creation, the share mint and the low-side transfer all happen
	// before the high-side transfer fails
	_, err := f.k.AddLiquidity(f.ctx, math.NewInt(1_000), assetA, math.NewInt(1_000), assetB, lp, keepertest.Deadline(f.ctx))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	_, found, err := f.k.GetPool(f.ctx, assetA, assetB)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, types.MaxAssetID, f.k.GetNextShareAssetID(f.ctx))
	require.False(t, f.ledger.Exists(f.ctx, types.MaxAssetID))
	require.Equal(t, math.NewInt(100_000), f.balance(assetA, lp))
	require.Equal(t, math.NewInt(100_000), f.balance(assetB, lp))

	for _, ev := range f.ctx.EventManager().Events() {
		require.NotEqual(t, types.EventTypePoolCreated, ev.Type)
	}

	// unaffected pairs still work
	_, err = f.k.AddLiquidity(f.ctx, math.NewInt(1_000), assetA, math.NewInt(1_000), assetC, lp, keepertest.Deadline(f.ctx))
	require.NoError(t, err)
	require.Equal(t, types.MaxAssetID, f.pool(t, assetA, assetC).ShareAsset)
}

func TestCreatePool_Event(t *testing.T) {
	f := setup(t)
	f.seedPool(t)
	pool := f.pool(t, assetA, assetB)

	var attrs map[string]string
	for _, ev := range f.ctx.EventManager().Events() {
		if ev.Type == types.EventTypePoolCreated {
			attrs = map[string]string{}
			for _, a := range ev.Attributes {
				attrs[a.Key] = a.Value
			}
		}
	}
	require.NotNil(t, attrs, "no pool_created event")
	require.Equal(t, "4294967295", attrs[types.AttributeKeyShareAsset])
	require.Equal(t, pool.Account().String(), attrs[types.AttributeKeyPoolAccount])
	require.Equal(t, "DOTUSDT", attrs[types.AttributeKeySymbol])
}

func TestSetPool_RejectsBadRecords(t *testing.T) {
	f := setup(t)

	err := f.k.SetPool(f.ctx, types.Pool{ShareAsset: 100, Pair: types.Pair{Low: assetB, High: assetA}})
	require.Error(t, err)

	err = f.k.SetPool(f.ctx, types.Pool{ShareAsset: assetA, Pair: types.Pair{Low: assetA, High: assetB}})
	require.Error(t, err)

	pools, err := f.k.GetAllPools(f.ctx)
	require.NoError(t, err)
	require.Empty(t, pools)
}

func TestPoolAccountsAreDistinct(t *testing.T) {
	f := setup(t)
	deadline := keepertest.Deadline(f.ctx)
	_, err := f.k.AddLiquidity(f.ctx, math.NewInt(1_000), assetA, math.NewInt(1_000), assetB, lp, deadline)
	require.NoError(t, err)
	_, err = f.k.AddLiquidity(f.ctx, math.NewInt(1_000), assetA, math.NewInt(1_000), assetC, lp, deadline)
	require.NoError(t, err)

	ab := f.pool(t, assetA, assetB)
	ac := f.pool(t, assetA, assetC)
	require.NotEqual(t, ab.Account(), ac.Account())
	require.Equal(t, math.NewInt(1_000), f.balance(assetA, ab.Account()))
	require.Equal(t, math.NewInt(1_000), f.balance(assetA, ac.Account()))
}
