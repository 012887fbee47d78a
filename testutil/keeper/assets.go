package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	assetskeeper "github.com/paw-chain/pawdex/x/assets/keeper"
	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
)

// AssetsKeeper creates an asset ledger on an in-memory store, initialized
// with the default genesis.
func AssetsKeeper(t testing.TB) (assetskeeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(assetstypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := assetskeeper.NewKeeper(storeKey)
	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime, Height: 1}, false, log.NewNopLogger())
	require.NoError(t, k.InitGenesis(ctx, *assetstypes.DefaultGenesis()))

	return k, ctx
}
