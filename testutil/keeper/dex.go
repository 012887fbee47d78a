package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	assetskeeper "github.com/paw-chain/pawdex/x/assets/keeper"
	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
	"github.com/paw-chain/pawdex/x/dex/keeper"
	"github.com/paw-chain/pawdex/x/dex/types"
)

// GenesisTime is the block time of contexts returned by DexKeeper.
var GenesisTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// DexKeeper creates a dex keeper backed by a real asset ledger, both mounted
// on an in-memory store.
func DexKeeper(t testing.TB) (*keeper.Keeper, assetskeeper.Keeper, sdk.Context) {
	return DexKeeperWithLedger(t, func(k assetskeeper.Keeper) types.AssetsKeeper { return k })
}

// DexKeeperWithLedger is DexKeeper with the dex keeper's view of the asset
// ledger replaced by wrap(ledger). Tests use it to inject ledger failures.
func DexKeeperWithLedger(t testing.TB, wrap func(assetskeeper.Keeper) types.AssetsKeeper) (*keeper.Keeper, assetskeeper.Keeper, sdk.Context) {
	dexKey := storetypes.NewKVStoreKey(types.StoreKey)
	assetsKey := storetypes.NewKVStoreKey(assetstypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(dexKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(assetsKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ledger := assetskeeper.NewKeeper(assetsKey)
	k := keeper.NewKeeper(dexKey, wrap(ledger), ledger)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime, Height: 1}, false, log.NewNopLogger())

	require.NoError(t, ledger.InitGenesis(ctx, *assetstypes.DefaultGenesis()))
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ledger, ctx
}

// CreateAsset registers a sufficient asset with min balance 1 and the given
// symbol.
func CreateAsset(t testing.TB, ledger assetskeeper.Keeper, ctx sdk.Context, id types.AssetID, symbol string) {
	owner := sdk.AccAddress("asset-owner_________")
	require.NoError(t, ledger.Create(ctx, id, owner, true, math.OneInt()))
	require.NoError(t, ledger.SetMetadata(ctx, id, symbol, symbol, 12))
}

// Fund mints amount of asset id to who.
func Fund(t testing.TB, ledger assetskeeper.Keeper, ctx sdk.Context, id types.AssetID, who sdk.AccAddress, amount int64) {
	require.NoError(t, ledger.Mint(ctx, id, who, math.NewInt(amount)))
}

// Deadline returns a deadline one minute after the context's block time.
func Deadline(ctx sdk.Context) time.Time {
	return ctx.BlockTime().Add(time.Minute)
}

// TestAddr returns a deterministic 20-byte account address for name.
func TestAddr(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}
