package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets/types"
)

// InitGenesis initializes the assets module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	if genState.NativeSymbol != "" {
		k.SetNativeSymbol(ctx, genState.NativeSymbol)
	}

	for _, asset := range genState.Assets {
		if err := k.Create(ctx, asset.ID, asset.Owner, asset.IsSufficient, asset.MinBalance); err != nil {
			return fmt.Errorf("failed to create asset %d: %w", asset.ID, err)
		}
	}

	for _, md := range genState.Metadata {
		if err := k.SetMetadata(ctx, md.ID, md.Name, md.Symbol, md.Decimals); err != nil {
			return fmt.Errorf("failed to set metadata for asset %d: %w", md.ID, err)
		}
	}

	for _, b := range genState.Balances {
		who, err := sdk.AccAddressFromBech32(b.Address)
		if err != nil {
			return fmt.Errorf("invalid balance address %s: %w", b.Address, err)
		}
		if b.Amount.IsZero() {
			continue
		}
		if err := k.Mint(ctx, b.ID, who, b.Amount); err != nil {
			return fmt.Errorf("failed to mint asset %d to %s: %w", b.ID, b.Address, err)
		}
	}

	for _, b := range genState.NativeBalances {
		who, err := sdk.AccAddressFromBech32(b.Address)
		if err != nil {
			return fmt.Errorf("invalid native balance address %s: %w", b.Address, err)
		}
		if err := k.MintNative(ctx, who, b.Amount); err != nil {
			return fmt.Errorf("failed to credit native balance to %s: %w", b.Address, err)
		}
	}

	return nil
}

// ExportGenesis exports the assets module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	gs := types.DefaultGenesis()
	gs.NativeSymbol = k.NativeSymbol(ctx)

	k.IterateAssets(ctx, func(asset types.Asset) bool {
		gs.Assets = append(gs.Assets, asset)
		return false
	})

	for _, asset := range gs.Assets {
		if md, found := k.GetMetadata(ctx, asset.ID); found {
			gs.Metadata = append(gs.Metadata, types.GenesisMetadata{ID: asset.ID, Metadata: md})
		}
		k.IterateBalances(ctx, asset.ID, func(who sdk.AccAddress, amount math.Int) bool {
			gs.Balances = append(gs.Balances, types.GenesisBalance{
				ID:      asset.ID,
				Address: who.String(),
				Amount:  amount,
			})
			return false
		})
	}

	k.IterateNativeBalances(ctx, func(who sdk.AccAddress, amount math.Int) bool {
		gs.NativeBalances = append(gs.NativeBalances, types.NativeBalance{
			Address: who.String(),
			Amount:  amount,
		})
		return false
	})

	return gs
}
