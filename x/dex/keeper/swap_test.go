package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawdex/testutil/keeper"
	"github.com/paw-chain/pawdex/x/dex/keeper"
	"github.com/paw-chain/pawdex/x/dex/types"
)

func TestSwap_SellLowAsset(t *testing.T) {
	f := setup(t)
	f.seedPool(t)
	keepertest.Fund(t, f.ledger, f.ctx, assetA, buyer, 10_000)

	out, err := f.k.Swap(f.ctx, math.NewInt(10_000), assetA, assetB, buyer, keepertest.Deadline(f.ctx))
	require.NoError(t, err)
	require.Equal(t, types.NewAssetAmount(math.NewInt(4_992), assetB), out)

	r0, r1 := f.reserves(t, assetA, assetB)
	require.Equal(t, math.NewInt(30_000), r0)
	require.Equal(t, math.NewInt(5_008), r1)
	require.True(t, f.balance(assetA, buyer).IsZero())
	require.Equal(t, math.NewInt(4_992), f.balance(assetB, buyer))

	// shares are untouched by swaps
	require.Equal(t, math.NewInt(20_000), f.k.ShareSupply(f.ctx, f.pool(t, assetA, assetB)))
}

func TestSwap_SellHighAsset(t *testing.T) {
	f := setup(t)
	f.seedPool(t)
	keepertest.Fund(t, f.ledger, f.ctx, assetB, buyer, 1_000)

	out, err := f.k.Swap(f.ctx, math.NewInt(1_000), assetB, assetA, buyer, keepertest.Deadline(f.ctx))
	require.NoError(t, err)
	// 1000*997*20000 / (9000*1000 + 1000*997)
	require.Equal(t, types.NewAssetAmount(math.NewInt(1_994), assetA), out)

	r0, r1 := f.reserves(t, assetA, assetB)
	require.Equal(t, math.NewInt(18_006), r0)
	require.Equal(t, math.NewInt(11_000), r1)
}

func TestSwap_EmitsEvent(t *testing.T) {
	f := setup(t)
	f.seedPool(t)
	keepertest.Fund(t, f.ledger, f.ctx, assetA, buyer, 10_000)

	_, err := f.k.Swap(f.ctx, math.NewInt(10_000), assetA, assetB, buyer, keepertest.Deadline(f.ctx))
	require.NoError(t, err)

	var found bool
	for _, ev := range f.ctx.EventManager().Events() {
		if ev.Type != types.EventTypeSwap {
			continue
		}
		found = true
		attrs := map[string]string{}
		for _, a := range ev.Attributes {
			attrs[a.Key] = a.Value
		}
		require.Equal(t, buyer.String(), attrs[types.AttributeKeyBuyer])
		require.Equal(t, "1", attrs[types.AttributeKeyAssetIn])
		require.Equal(t, "10000", attrs[types.AttributeKeyAmountIn])
		require.Equal(t, "2", attrs[types.AttributeKeyAssetOut])
		require.Equal(t, "4992", attrs[types.AttributeKeyAmountOut])
	}
	require.True(t, found, "no swap event emitted")
}

func TestSwap_Errors(t *testing.T) {
	f := setup(t)
	deadline := keepertest.Deadline(f.ctx)
	keepertest.Fund(t, f.ledger, f.ctx, assetA, buyer, 30_000)

	_, err := f.k.Swap(f.ctx, math.NewInt(10), assetA, assetA, buyer, deadline)
	require.ErrorIs(t, err, types.ErrIdenticalAssets)

	_, err = f.k.Swap(f.ctx, math.ZeroInt(), assetA, assetB, buyer, deadline)
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = f.k.Swap(f.ctx, math.NewInt(10), assetA, 99, buyer, deadline)
	require.ErrorIs(t, err, types.ErrInvalidAsset)

	_, err = f.k.Swap(f.ctx, math.NewInt(30_001), assetA, assetB, buyer, deadline)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	_, err = f.k.Swap(f.ctx, math.NewInt(10), assetA, assetB, buyer, deadline)
	require.ErrorIs(t, err, types.ErrNoPool)

	f.seedPool(t)

	// the pool cannot take in as much as it already holds
	_, err = f.k.Swap(f.ctx, math.NewInt(20_000), assetA, assetB, buyer, deadline)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
	require.Equal(t, math.NewInt(30_000), f.balance(assetA, buyer))

	r0, r1 := f.reserves(t, assetA, assetB)
	require.Equal(t, math.NewInt(20_000), r0)
	require.Equal(t, math.NewInt(10_000), r1)
}

func TestSwap_DustYieldsNothing(t *testing.T) {
	f := setup(t)
	keepertest.Fund(t, f.ledger, f.ctx, assetA, lp, 1_000_000)
	_, err := f.k.AddLiquidity(f.ctx, math.NewInt(1_000_000), assetA, math.NewInt(1_000), assetB, lp, keepertest.Deadline(f.ctx))
	require.NoError(t, err)

	keepertest.Fund(t, f.ledger, f.ctx, assetA, buyer, 1)
	_, err = f.k.Swap(f.ctx, math.OneInt(), assetA, assetB, buyer, keepertest.Deadline(f.ctx))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
	require.Equal(t, math.OneInt(), f.balance(assetA, buyer))
}

func TestSwap_EmptiedPool(t *testing.T) {
	f := setup(t)
	f.seedPool(t)
	_, _, err := f.k.RemoveLiquidity(f.ctx, math.NewInt(20_000), assetA, assetB, lp, keepertest.Deadline(f.ctx))
	require.NoError(t, err)

	keepertest.Fund(t, f.ledger, f.ctx, assetA, buyer, 100)
	_, err = f.k.Swap(f.ctx, math.NewInt(100), assetA, assetB, buyer, keepertest.Deadline(f.ctx))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

func TestPrice(t *testing.T) {
	f := setup(t)
	_, err := f.k.AddLiquidity(f.ctx, math.NewInt(10_000), assetA, math.NewInt(20_000), assetB, lp, keepertest.Deadline(f.ctx))
	require.NoError(t, err)

	price, err := f.k.Price(f.ctx, math.NewInt(5_000), assetA, assetB)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_984), price)

	// quoting is read-only
	r0, r1 := f.reserves(t, assetA, assetB)
	require.Equal(t, math.NewInt(10_000), r0)
	require.Equal(t, math.NewInt(20_000), r1)

	// the input reserve saturates at zero, which prices at zero
	for _, amount := range []int64{10_000, 50_000} {
		price, err = f.k.Price(f.ctx, math.NewInt(amount), assetA, assetB)
		require.NoError(t, err)
		require.True(t, price.IsZero(), "amount %d", amount)
	}
}

func TestPrice_Errors(t *testing.T) {
	f := setup(t)

	_, err := f.k.Price(f.ctx, math.NewInt(5_000), assetA, assetA)
	require.ErrorIs(t, err, types.ErrIdenticalAssets)

	_, err = f.k.Price(f.ctx, math.ZeroInt(), assetA, assetB)
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = f.k.Price(f.ctx, math.NewInt(5_000), 99, assetB)
	require.ErrorIs(t, err, types.ErrInvalidAsset)

	_, err = f.k.Price(f.ctx, math.NewInt(5_000), assetA, assetB)
	require.ErrorIs(t, err, types.ErrNoPool)
}

func TestPoolPrice_AssetOutsidePair(t *testing.T) {
	f := setup(t)
	f.seedPool(t)

	_, err := f.k.PoolPrice(f.ctx, f.pool(t, assetA, assetB), types.NewAssetAmount(math.NewInt(10), assetC))
	require.ErrorIs(t, err, types.ErrInvalidAsset)

	_, err = f.k.ExecuteSwap(f.ctx, f.pool(t, assetA, assetB), types.NewAssetAmount(math.NewInt(10), assetC), buyer)
	require.ErrorIs(t, err, types.ErrInvalidAsset)
}

func TestExchangeInterface(t *testing.T) {
	f := setup(t)
	f.seedPool(t)
	keepertest.Fund(t, f.ledger, f.ctx, assetA, buyer, 10_000)

	var exchange types.Exchange = *f.k
	quote, err := exchange.Price(f.ctx, math.NewInt(10_000), assetA, assetB)
	require.NoError(t, err)

	out, err := exchange.Swap(f.ctx, math.NewInt(10_000), assetA, assetB, buyer, keepertest.Deadline(f.ctx))
	require.NoError(t, err)
	// price and swap both reduce the input reserve by the amount first
	require.Equal(t, quote, out.Amount)
}

func TestSwapMetrics(t *testing.T) {
	f := setup(t)
	f.seedPool(t)
	keepertest.Fund(t, f.ledger, f.ctx, assetA, buyer, 30_000)

	m := keeper.GetDEXMetrics()
	success := m.SwapsTotal.WithLabelValues("1/2", "success")
	failed := m.SwapsTotal.WithLabelValues("1/2", "failed")
	successBefore := testutil.ToFloat64(success)
	failedBefore := testutil.ToFloat64(failed)

	_, err := f.k.Swap(f.ctx, math.NewInt(20_000), assetA, assetB, buyer, keepertest.Deadline(f.ctx))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
	_, err = f.k.Swap(f.ctx, math.NewInt(10_000), assetA, assetB, buyer, keepertest.Deadline(f.ctx))
	require.NoError(t, err)

	require.Equal(t, successBefore+1, testutil.ToFloat64(success))
	require.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
	require.Equal(t, float64(5_008), testutil.ToFloat64(m.PoolReserves.WithLabelValues("1/2", "2")))
}
