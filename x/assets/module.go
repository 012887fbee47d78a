package assets

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets/keeper"
	"github.com/paw-chain/pawdex/x/assets/types"
)

// AppModuleBasic defines the stateless parts of the assets module.
type AppModuleBasic struct{}

// Name returns the assets module's name.
func (AppModuleBasic) Name() string {
	return types.ModuleName
}

// DefaultGenesis returns default genesis state as raw bytes for the assets
// module.
func (AppModuleBasic) DefaultGenesis() json.RawMessage {
	bz, err := json.Marshal(types.DefaultGenesis())
	if err != nil {
		panic(err)
	}
	return bz
}

// ValidateGenesis performs genesis state validation for the assets module.
func (AppModuleBasic) ValidateGenesis(bz json.RawMessage) error {
	var genState types.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return genState.Validate()
}

// AppModule implements an application module for the assets module.
type AppModule struct {
	AppModuleBasic

	keeper keeper.Keeper
}

// NewAppModule creates a new AppModule object
func NewAppModule(keeper keeper.Keeper) AppModule {
	return AppModule{keeper: keeper}
}

// RegisterInvariants registers the assets module invariants.
func (am AppModule) RegisterInvariants(ir sdk.InvariantRegistry) {
	keeper.RegisterInvariants(ir, am.keeper)
}

// InitGenesis performs genesis initialization for the assets module.
func (am AppModule) InitGenesis(ctx sdk.Context, gs json.RawMessage) error {
	var genState types.GenesisState
	if err := json.Unmarshal(gs, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return am.keeper.InitGenesis(ctx, genState)
}

// ExportGenesis returns the exported genesis state as raw bytes for the
// assets module.
func (am AppModule) ExportGenesis(ctx sdk.Context) (json.RawMessage, error) {
	return json.Marshal(am.keeper.ExportGenesis(ctx))
}
