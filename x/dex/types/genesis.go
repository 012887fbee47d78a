package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the dex module's genesis state.
type GenesisState struct {
	Params Params `json:"params"`
	// NextShareAssetID is the next pool-share asset id to allocate. Zero means
	// the allocator has never run and starts from MaxAssetID.
	NextShareAssetID AssetID `json:"next_share_asset_id"`
	// Pools are registry records restored as-is; their balances live in the
	// asset ledger's genesis.
	Pools []Pool `json:"pools"`
	// LiquiditySeeds are deposits applied through add-liquidity at genesis.
	LiquiditySeeds []LiquiditySeed `json:"liquidity_seeds"`
}

// LiquiditySeed is one bootstrap deposit.
type LiquiditySeed struct {
	Amount0  AssetAmount `json:"amount_0"`
	Amount1  AssetAmount `json:"amount_1"`
	Provider string      `json:"provider"`
}

// DefaultGenesis returns the default genesis state for the DEX module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:         DefaultParams(),
		Pools:          []Pool{},
		LiquiditySeeds: []LiquiditySeed{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	pairs := make(map[Pair]struct{}, len(gs.Pools))
	shares := make(map[AssetID]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return ErrInvalidGenesis.Wrap(err.Error())
		}
		if _, dup := pairs[pool.Pair]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate pool for pair %s", pool.Pair)
		}
		if _, dup := shares[pool.ShareAsset]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate share asset %d", pool.ShareAsset)
		}
		if gs.NextShareAssetID != 0 && pool.ShareAsset <= gs.NextShareAssetID {
			return ErrInvalidGenesis.Wrapf("share asset %d not below allocator position %d",
				pool.ShareAsset, gs.NextShareAssetID)
		}
		pairs[pool.Pair] = struct{}{}
		shares[pool.ShareAsset] = struct{}{}
	}

	for i, seed := range gs.LiquiditySeeds {
		if err := seed.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("liquidity seed %d: %s", i, err)
		}
	}
	return nil
}

// Validate performs the stateless checks of an add-liquidity call.
func (s LiquiditySeed) Validate() error {
	if _, err := sdk.AccAddressFromBech32(s.Provider); err != nil {
		return fmt.Errorf("invalid provider %q: %w", s.Provider, err)
	}
	if s.Amount0.Asset == s.Amount1.Asset {
		return ErrIdenticalAssets.Wrapf("asset %d", s.Amount0.Asset)
	}
	if s.Amount0.Amount.IsNil() || !s.Amount0.Amount.IsPositive() ||
		s.Amount1.Amount.IsNil() || !s.Amount1.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("seed amounts must be positive")
	}
	return nil
}
