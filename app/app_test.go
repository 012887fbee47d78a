package app_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/pawdex/app"
	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
	dexkeeper "github.com/paw-chain/pawdex/x/dex/keeper"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

var (
	genesisTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	provider    = sdk.AccAddress([]byte("provider____________"))
	buyer       = sdk.AccAddress([]byte("buyer_______________"))
)

func testConfig(t *testing.T) app.Config {
	cfg := app.DefaultConfig()
	cfg.Home = t.TempDir()
	cfg.DBBackend = string(dbm.MemDBBackend)
	return cfg
}

func newApp(t *testing.T, db dbm.DB) *app.App {
	a, err := app.New(log.NewNopLogger(), db, testConfig(t))
	require.NoError(t, err)
	return a
}

// testGenesis registers DOT (1) and USDT (2), funds the provider and buyer,
// and seeds a 20,000 DOT / 10,000 USDT pool.
func testGenesis(t *testing.T, a *app.App) []byte {
	genesis := a.DefaultGenesis()

	assetsGen := assetstypes.DefaultGenesis()
	for _, md := range []assetstypes.GenesisMetadata{
		{ID: 1, Metadata: assetstypes.Metadata{Name: "Polkadot", Symbol: "DOT", Decimals: 10}},
		{ID: 2, Metadata: assetstypes.Metadata{Name: "Tether", Symbol: "USDT", Decimals: 6}},
	} {
		assetsGen.Assets = append(assetsGen.Assets, assetstypes.Asset{ID: md.ID, Owner: provider, IsSufficient: true, MinBalance: math.OneInt()})
		assetsGen.Metadata = append(assetsGen.Metadata, md)
		assetsGen.Balances = append(assetsGen.Balances, assetstypes.GenesisBalance{ID: md.ID, Address: provider.String(), Amount: math.NewInt(100_000)})
	}
	assetsGen.Balances = append(assetsGen.Balances, assetstypes.GenesisBalance{ID: 1, Address: buyer.String(), Amount: math.NewInt(10_000)})

	dexGen := dextypes.DefaultGenesis()
	dexGen.LiquiditySeeds = []dextypes.LiquiditySeed{{
		Amount0:  dextypes.NewAssetAmount(math.NewInt(20_000), 1),
		Amount1:  dextypes.NewAssetAmount(math.NewInt(10_000), 2),
		Provider: provider.String(),
	}}

	var err error
	genesis[assetstypes.ModuleName], err = json.Marshal(assetsGen)
	require.NoError(t, err)
	genesis[dextypes.ModuleName], err = json.Marshal(dexGen)
	require.NoError(t, err)

	bz, err := json.Marshal(genesis)
	require.NoError(t, err)
	return bz
}

func swap(a *app.App, blockTime time.Time) (dextypes.AssetAmount, error) {
	var out dextypes.AssetAmount
	err := a.Deliver(blockTime, func(ctx sdk.Context) error {
		resp, err := dexkeeper.NewMsgServerImpl(*a.DexKeeper).Swap(ctx,
			dextypes.NewMsgSwap(buyer.String(), math.NewInt(10_000), 1, 2, blockTime.Add(time.Minute)))
		if err != nil {
			return err
		}
		out = resp.Output
		return nil
	})
	return out, err
}

func reserves(t *testing.T, a *app.App) (math.Int, math.Int) {
	var r0, r1 math.Int
	require.NoError(t, a.Query(func(ctx sdk.Context) error {
		pool, found, err := a.DexKeeper.GetPool(ctx, 1, 2)
		if err != nil {
			return err
		}
		require.True(t, found)
		r0, r1, err = a.DexKeeper.Reserves(ctx, pool)
		return err
	}))
	return r0, r1
}

func TestInitChainSeedsPools(t *testing.T) {
	a := newApp(t, dbm.NewMemDB())
	require.NoError(t, a.InitChain(testGenesis(t, a), genesisTime))
	require.Equal(t, int64(1), a.LastBlockHeight())

	r0, r1 := reserves(t, a)
	require.Equal(t, math.NewInt(20_000), r0)
	require.Equal(t, math.NewInt(10_000), r1)

	err := a.InitChain(testGenesis(t, a), genesisTime)
	require.True(t, errors.Is(err, app.ErrAlreadyInitialized))
}

func TestInitChainRejectsInvalidGenesis(t *testing.T) {
	a := newApp(t, dbm.NewMemDB())
	genesis := a.DefaultGenesis()
	genesis[dextypes.ModuleName] = json.RawMessage(`{"params":{"swap_fee_numerator":"1","swap_fee_denominator":"0","share_min_balance":"1"}}`)
	bz, err := json.Marshal(genesis)
	require.NoError(t, err)

	require.Error(t, a.InitChain(bz, genesisTime))
	require.Equal(t, int64(0), a.LastBlockHeight())
}

func TestDeliverCommitsBlocks(t *testing.T) {
	a := newApp(t, dbm.NewMemDB())
	require.NoError(t, a.InitChain(testGenesis(t, a), genesisTime))

	out, err := swap(a, genesisTime.Add(5*time.Second))
	require.NoError(t, err)
	require.Equal(t, dextypes.NewAssetAmount(math.NewInt(4_992), 2), out)
	require.Equal(t, int64(2), a.LastBlockHeight())

	r0, r1 := reserves(t, a)
	require.Equal(t, math.NewInt(30_000), r0)
	require.Equal(t, math.NewInt(5_008), r1)

	// the buyer has nothing left to sell; the failed block is not committed
	_, err = swap(a, genesisTime.Add(10*time.Second))
	require.ErrorIs(t, err, dextypes.ErrInsufficientBalance)
	require.Equal(t, int64(2), a.LastBlockHeight())
}

func TestStateSurvivesRestart(t *testing.T) {
	db := dbm.NewMemDB()
	a := newApp(t, db)
	require.NoError(t, a.InitChain(testGenesis(t, a), genesisTime))
	_, err := swap(a, genesisTime.Add(5*time.Second))
	require.NoError(t, err)

	restarted := newApp(t, db)
	require.Equal(t, int64(2), restarted.LastBlockHeight())
	r0, r1 := reserves(t, restarted)
	require.Equal(t, math.NewInt(30_000), r0)
	require.Equal(t, math.NewInt(5_008), r1)

	require.NoError(t, restarted.Query(func(ctx sdk.Context) error {
		pool, _, err := restarted.DexKeeper.GetPool(ctx, 2, 1)
		require.NoError(t, err)
		require.Equal(t, dextypes.DeriveAccount(pool.ShareAsset), pool.Account())
		require.Equal(t, math.NewInt(4_992), restarted.AssetsKeeper.Balance(ctx, 2, buyer))
		return nil
	}))
}

func TestExportGenesisReimports(t *testing.T) {
	a := newApp(t, dbm.NewMemDB())
	require.NoError(t, a.InitChain(testGenesis(t, a), genesisTime))
	_, err := swap(a, genesisTime.Add(5*time.Second))
	require.NoError(t, err)

	exported, err := a.ExportGenesis()
	require.NoError(t, err)

	b := newApp(t, dbm.NewMemDB())
	require.NoError(t, b.InitChain(exported, genesisTime.Add(time.Hour)))
	r0, r1 := reserves(t, b)
	require.Equal(t, math.NewInt(30_000), r0)
	require.Equal(t, math.NewInt(5_008), r1)

	reexported, err := b.ExportGenesis()
	require.NoError(t, err)
	require.JSONEq(t, string(exported), string(reexported))
}

func TestCommitChecksInvariants(t *testing.T) {
	a := newApp(t, dbm.NewMemDB())
	require.NoError(t, a.InitChain(testGenesis(t, a), genesisTime))

	// shares minted outside the dex break the share-supply invariant once
	// the pool is drained
	err := a.Deliver(genesisTime.Add(time.Second), func(ctx sdk.Context) error {
		pool, _, err := a.DexKeeper.GetPool(ctx, 1, 2)
		if err != nil {
			return err
		}
		if _, _, err := a.DexKeeper.Withdraw(ctx, pool, math.NewInt(20_000), provider); err != nil {
			return err
		}
		return a.AssetsKeeper.Mint(ctx, pool.ShareAsset, buyer, math.NewInt(7))
	})
	require.ErrorContains(t, err, "share-supply")
}
