package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "assets"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	AssetKeyPrefix         = []byte{0x01} // id -> asset details
	MetadataKeyPrefix      = []byte{0x02} // id -> metadata
	SupplyKeyPrefix        = []byte{0x03} // id -> total issuance
	BalanceKeyPrefix       = []byte{0x04} // id | len | address -> balance
	NativeBalanceKeyPrefix = []byte{0x05} // address -> native balance
	NativeSymbolKey        = []byte{0x06}
)

// AssetKey returns the store key for an asset's details.
func AssetKey(id dextypes.AssetID) []byte {
	return append(append([]byte{}, AssetKeyPrefix...), dextypes.AssetIDToBytes(id)...)
}

// MetadataKey returns the store key for an asset's metadata.
func MetadataKey(id dextypes.AssetID) []byte {
	return append(append([]byte{}, MetadataKeyPrefix...), dextypes.AssetIDToBytes(id)...)
}

// SupplyKey returns the store key for an asset's total issuance.
func SupplyKey(id dextypes.AssetID) []byte {
	return append(append([]byte{}, SupplyKeyPrefix...), dextypes.AssetIDToBytes(id)...)
}

// BalancePrefix returns the prefix shared by every balance of an asset.
func BalancePrefix(id dextypes.AssetID) []byte {
	return append(append([]byte{}, BalanceKeyPrefix...), dextypes.AssetIDToBytes(id)...)
}

// BalanceKey returns the store key for an account's balance of an asset.
func BalanceKey(id dextypes.AssetID, who sdk.AccAddress) []byte {
	return append(BalancePrefix(id), address.MustLengthPrefix(who)...)
}

// NativeBalanceKey returns the store key for an account's native balance.
func NativeBalanceKey(who sdk.AccAddress) []byte {
	return append(append([]byte{}, NativeBalanceKeyPrefix...), address.MustLengthPrefix(who)...)
}
