package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

// Asset holds the registration details of a fungible asset.
type Asset struct {
	ID           dextypes.AssetID `json:"id"`
	Owner        sdk.AccAddress   `json:"owner"`
	IsSufficient bool             `json:"is_sufficient"`
	MinBalance   math.Int         `json:"min_balance"`
}

// Metadata is the descriptive data attached to an asset.
type Metadata struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}
