package types

const (
	// ModuleName defines the module name
	ModuleName = "dex"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes
var (
	PoolKeyPrefix       = []byte{0x01} // canonical pair -> pool record
	NextShareAssetIDKey = []byte{0x02} // next pool-share asset id to hand out
	ParamsKey           = []byte{0x03} // module parameters
)

// PoolKey returns the registry key for a canonical pair.
func PoolKey(pair Pair) []byte {
	key := make([]byte, 0, len(PoolKeyPrefix)+2*AssetIDLength)
	key = append(key, PoolKeyPrefix...)
	key = append(key, AssetIDToBytes(pair.Low)...)
	return append(key, AssetIDToBytes(pair.High)...)
}
