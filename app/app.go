package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets"
	assetskeeper "github.com/paw-chain/pawdex/x/assets/keeper"
	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
	"github.com/paw-chain/pawdex/x/dex"
	dexkeeper "github.com/paw-chain/pawdex/x/dex/keeper"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

// ErrAlreadyInitialized is returned by InitChain on a database that already
// holds committed state.
var ErrAlreadyInitialized = errors.New("chain already initialized")

// module is what the app needs from each of its modules.
type module interface {
	Name() string
	DefaultGenesis() json.RawMessage
	ValidateGenesis(json.RawMessage) error
	InitGenesis(sdk.Context, json.RawMessage) error
	ExportGenesis(sdk.Context) (json.RawMessage, error)
	RegisterInvariants(sdk.InvariantRegistry)
}

// App is a minimal state machine hosting the assets and dex modules. Blocks
// are executed one at a time; each Deliver call is one committed block.
type App struct {
	logger log.Logger
	db     dbm.DB
	cms    storetypes.CommitMultiStore
	cfg    Config

	keys map[string]*storetypes.KVStoreKey

	AssetsKeeper assetskeeper.Keeper
	DexKeeper    *dexkeeper.Keeper

	// modules in genesis order
	modules    []module
	invariants invariantRegistry
}

// New wires the keepers and loads the latest committed state from db.
func New(logger log.Logger, db dbm.DB, cfg Config) (*App, error) {
	keys := storetypes.NewKVStoreKeys(assetstypes.StoreKey, dextypes.StoreKey)

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load latest version: %w", err)
	}

	app := &App{
		logger: logger,
		db:     db,
		cms:    cms,
		cfg:    cfg,
		keys:   keys,
	}

	app.AssetsKeeper = assetskeeper.NewKeeper(keys[assetstypes.StoreKey])
	app.DexKeeper = dexkeeper.NewKeeper(keys[dextypes.StoreKey], app.AssetsKeeper, app.AssetsKeeper)

	app.modules = []module{
		assets.NewAppModule(app.AssetsKeeper),
		dex.NewAppModule(app.DexKeeper),
	}
	for _, m := range app.modules {
		m.RegisterInvariants(&app.invariants)
	}

	return app, nil
}

// LastBlockHeight returns the height of the last committed block.
func (app *App) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

// DefaultGenesis returns the default genesis document.
func (app *App) DefaultGenesis() GenesisState {
	genesis := make(GenesisState, len(app.modules))
	for _, m := range app.modules {
		genesis[m.Name()] = m.DefaultGenesis()
	}
	return genesis
}

// InitChain validates genesis, initializes every module in order and commits
// the first block. Modules missing from the document start from their
// defaults.
func (app *App) InitChain(genesisJSON []byte, genesisTime time.Time) error {
	if app.LastBlockHeight() != 0 {
		return ErrAlreadyInitialized
	}

	var genesis GenesisState
	if err := json.Unmarshal(genesisJSON, &genesis); err != nil {
		return fmt.Errorf("failed to unmarshal genesis: %w", err)
	}
	for _, m := range app.modules {
		if _, ok := genesis[m.Name()]; !ok {
			genesis[m.Name()] = m.DefaultGenesis()
		}
		if err := m.ValidateGenesis(genesis[m.Name()]); err != nil {
			return fmt.Errorf("invalid %s genesis: %w", m.Name(), err)
		}
	}

	ctx := app.NewContext(genesisTime)
	for _, m := range app.modules {
		if err := m.InitGenesis(ctx, genesis[m.Name()]); err != nil {
			return fmt.Errorf("failed to init %s genesis: %w", m.Name(), err)
		}
	}

	_, err := app.Commit()
	return err
}

// NewContext returns a context for the next block at blockTime. Writes made
// through it are persisted by the next Commit.
func (app *App) NewContext(blockTime time.Time) sdk.Context {
	header := cmtproto.Header{
		ChainID: app.cfg.ChainID,
		Height:  app.LastBlockHeight() + 1,
		Time:    blockTime,
	}
	return sdk.NewContext(app.cms, header, false, app.logger)
}

// Deliver executes fn as a block at blockTime and commits it. When fn fails
// nothing it wrote is kept and no block is committed.
func (app *App) Deliver(blockTime time.Time, fn func(ctx sdk.Context) error) error {
	ctx, write := app.NewContext(blockTime).CacheContext()
	if err := fn(ctx); err != nil {
		return err
	}
	write()

	_, err := app.Commit()
	return err
}

// Query runs fn against the latest committed state. Anything fn writes is
// discarded.
func (app *App) Query(fn func(ctx sdk.Context) error) error {
	header := cmtproto.Header{
		ChainID: app.cfg.ChainID,
		Height:  app.LastBlockHeight(),
		Time:    time.Now().UTC(),
	}
	ctx := sdk.NewContext(app.cms.CacheMultiStore(), header, false, app.logger)
	return fn(ctx)
}

// Commit persists the current block and, when configured, asserts every
// registered invariant against the committed state.
func (app *App) Commit() (storetypes.CommitID, error) {
	commitID := app.cms.Commit()
	app.logger.Info("committed block", "height", commitID.Version, "hash", fmt.Sprintf("%X", commitID.Hash))

	if app.cfg.CheckInvariants {
		if err := app.AssertInvariants(); err != nil {
			return commitID, err
		}
	}
	return commitID, nil
}

// AssertInvariants runs every registered invariant and reports the first
// broken one.
func (app *App) AssertInvariants() error {
	return app.Query(func(ctx sdk.Context) error {
		for _, route := range app.invariants.routes {
			if msg, broken := route.invariant(ctx); broken {
				app.logger.Error("invariant broken", "module", route.module, "route", route.route)
				return fmt.Errorf("invariant %s/%s broken: %s", route.module, route.route, msg)
			}
		}
		return nil
	})
}

// ExportGenesis returns the committed state as a genesis document.
func (app *App) ExportGenesis() ([]byte, error) {
	genesis := make(GenesisState, len(app.modules))
	err := app.Query(func(ctx sdk.Context) error {
		for _, m := range app.modules {
			bz, err := m.ExportGenesis(ctx)
			if err != nil {
				return fmt.Errorf("failed to export %s genesis: %w", m.Name(), err)
			}
			genesis[m.Name()] = bz
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(genesis, "", "  ")
}

// Close releases the database.
func (app *App) Close() error {
	return app.db.Close()
}

// GetDexKeeper returns the dex keeper.
func (app *App) GetDexKeeper() *dexkeeper.Keeper {
	return app.DexKeeper
}
