package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawdex/testutil/keeper"
	"github.com/paw-chain/pawdex/x/dex/keeper"
	"github.com/paw-chain/pawdex/x/dex/types"
)

func TestInvariants_Hold(t *testing.T) {
	f := setup(t)
	f.seedPool(t)
	keepertest.Fund(t, f.ledger, f.ctx, assetA, buyer, 10_000)
	_, err := f.k.Swap(f.ctx, math.NewInt(10_000), assetA, assetB, buyer, keepertest.Deadline(f.ctx))
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(*f.k)(f.ctx)
	require.False(t, broken, msg)

	// an emptied pool is consistent too
	_, _, err = f.k.RemoveLiquidity(f.ctx, math.NewInt(20_000), assetA, assetB, lp, keepertest.Deadline(f.ctx))
	require.NoError(t, err)
	msg, broken = keeper.AllInvariants(*f.k)(f.ctx)
	require.False(t, broken, msg)
}

func TestShareSupplyInvariant_Broken(t *testing.T) {
	f := setup(t)
	f.seedPool(t)
	_, _, err := f.k.RemoveLiquidity(f.ctx, math.NewInt(20_000), assetA, assetB, lp, keepertest.Deadline(f.ctx))
	require.NoError(t, err)

	// shares minted around the pool leave supply without reserves
	pool := f.pool(t, assetA, assetB)
	require.NoError(t, f.ledger.Mint(f.ctx, pool.ShareAsset, buyer, math.NewInt(5)))

	msg, broken := keeper.ShareSupplyInvariant(*f.k)(f.ctx)
	require.True(t, broken)
	require.Contains(t, msg, "found 1 pools")
}

func TestPoolAssetInvariant_Broken(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.k.SetPool(f.ctx, types.Pool{ShareAsset: 1_000, Pair: types.Pair{Low: assetA, High: assetB}}))

	msg, broken := keeper.PoolAssetInvariant(*f.k)(f.ctx)
	require.True(t, broken)
	require.Contains(t, msg, "share asset 1000 does not exist")
}
