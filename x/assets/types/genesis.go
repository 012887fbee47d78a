package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

// GenesisState defines the assets module's genesis state.
type GenesisState struct {
	NativeSymbol   string            `json:"native_symbol"`
	Assets         []Asset           `json:"assets"`
	Metadata       []GenesisMetadata `json:"metadata"`
	Balances       []GenesisBalance  `json:"balances"`
	NativeBalances []NativeBalance   `json:"native_balances"`
}

// GenesisMetadata attaches metadata to an asset id.
type GenesisMetadata struct {
	ID dextypes.AssetID `json:"id"`
	Metadata
}

// GenesisBalance is an account's balance of one asset.
type GenesisBalance struct {
	ID      dextypes.AssetID `json:"id"`
	Address string           `json:"address"`
	Amount  math.Int         `json:"amount"`
}

// NativeBalance is an account's native currency balance.
type NativeBalance struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

// DefaultGenesis returns an empty ledger with the native symbol set.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		NativeSymbol:   "PAW",
		Assets:         []Asset{},
		Metadata:       []GenesisMetadata{},
		Balances:       []GenesisBalance{},
		NativeBalances: []NativeBalance{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	known := make(map[dextypes.AssetID]struct{}, len(gs.Assets))
	for _, a := range gs.Assets {
		if _, dup := known[a.ID]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate asset %d", a.ID)
		}
		if a.MinBalance.IsNil() || !a.MinBalance.IsPositive() {
			return ErrInvalidGenesis.Wrapf("asset %d: min balance must be positive", a.ID)
		}
		known[a.ID] = struct{}{}
	}
	for _, m := range gs.Metadata {
		if _, ok := known[m.ID]; !ok {
			return ErrInvalidGenesis.Wrapf("metadata for unknown asset %d", m.ID)
		}
	}
	for _, b := range gs.Balances {
		if _, ok := known[b.ID]; !ok {
			return ErrInvalidGenesis.Wrapf("balance for unknown asset %d", b.ID)
		}
		if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
			return ErrInvalidGenesis.Wrapf("balance address %q: %s", b.Address, err)
		}
		if b.Amount.IsNil() || b.Amount.IsNegative() {
			return ErrInvalidGenesis.Wrapf("negative balance for %s", b.Address)
		}
	}
	for _, b := range gs.NativeBalances {
		if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
			return ErrInvalidGenesis.Wrapf("native balance address %q: %s", b.Address, err)
		}
		if b.Amount.IsNil() || b.Amount.IsNegative() {
			return ErrInvalidGenesis.Wrapf("negative native balance for %s", b.Address)
		}
	}
	return nil
}
