package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// InitGenesis initializes the dex module's state from a genesis state. The
// asset ledger must already be initialized. Liquidity seeds run through the
// add-liquidity path in order and a failing seed panics.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	if genState.NextShareAssetID != 0 {
		k.SetNextShareAssetID(ctx, genState.NextShareAssetID)
	}

	for _, pool := range genState.Pools {
		if !k.assets.Exists(ctx, pool.ShareAsset) {
			return types.ErrInvalidGenesis.Wrapf("pool %s: share asset %d is not on the ledger", pool.Pair, pool.ShareAsset)
		}
		if err := k.SetPool(ctx, pool); err != nil {
			return fmt.Errorf("failed to set pool %s: %w", pool.Pair, err)
		}
	}

	for i, seed := range genState.LiquiditySeeds {
		if err := seed.Validate(); err != nil {
			panic(fmt.Sprintf("liquidity seed %d: %v", i, err))
		}
		provider := sdk.MustAccAddressFromBech32(seed.Provider)
		if _, err := k.addLiquidity(ctx, seed.Amount0, seed.Amount1, provider); err != nil {
			panic(fmt.Sprintf("liquidity seed %d: %v", i, err))
		}
	}

	k.Logger(ctx).Info("dex genesis initialized", "pools", len(genState.Pools), "seeds", len(genState.LiquiditySeeds))
	return nil
}

// ExportGenesis returns the dex module's exported genesis. Seeded liquidity
// shows up as pools plus ledger balances, so no seeds are exported.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pools: %w", err)
	}
	if pools == nil {
		pools = []types.Pool{}
	}

	return &types.GenesisState{
		Params:           params,
		NextShareAssetID: k.GetNextShareAssetID(ctx),
		Pools:            pools,
		LiquiditySeeds:   []types.LiquiditySeed{},
	}, nil
}
