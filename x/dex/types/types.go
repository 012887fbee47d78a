package types

import (
	"encoding/binary"
	"fmt"
	stdmath "math"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// AssetID identifies a fungible asset on the ledger, including the native
// asset alias and pool-share tokens.
type AssetID uint32

const (
	// MaxAssetID is the first pool-share asset id handed out. Share ids are
	// allocated downwards from here so they stay clear of ordinary assets.
	MaxAssetID AssetID = stdmath.MaxUint32

	// AssetIDLength is the encoded size of an AssetID.
	AssetIDLength = 4
)

// AssetIDToBytes encodes an asset id big-endian so that store keys sort by id.
func AssetIDToBytes(id AssetID) []byte {
	bz := make([]byte, AssetIDLength)
	binary.BigEndian.PutUint32(bz, uint32(id))
	return bz
}

// AssetIDFromBytes decodes an asset id written by AssetIDToBytes.
func AssetIDFromBytes(bz []byte) (AssetID, error) {
	if len(bz) != AssetIDLength {
		return 0, fmt.Errorf("asset id must be %d bytes, got %d", AssetIDLength, len(bz))
	}
	return AssetID(binary.BigEndian.Uint32(bz)), nil
}

// AssetAmount is an amount paired with the asset it is denominated in.
type AssetAmount struct {
	Amount math.Int `json:"amount"`
	Asset  AssetID  `json:"asset"`
}

// NewAssetAmount returns an AssetAmount.
func NewAssetAmount(amount math.Int, asset AssetID) AssetAmount {
	return AssetAmount{Amount: amount, Asset: asset}
}

func (a AssetAmount) String() string {
	return fmt.Sprintf("%s#%d", a.Amount, a.Asset)
}

// Pair is a canonical asset pair: Low < High for any pair built by Canonicalize
// from two distinct ids.
type Pair struct {
	Low  AssetID `json:"low"`
	High AssetID `json:"high"`
}

// Canonicalize orders two asset ids so the lower one comes first. Equal ids are
// not rejected here; callers check for identical assets themselves.
func Canonicalize(a, b AssetID) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{Low: a, High: b}
}

// CanonicalizeAmounts orders two amounts by their asset ids. Each amount stays
// attached to its asset.
func CanonicalizeAmounts(x, y AssetAmount) (AssetAmount, AssetAmount) {
	if x.Asset > y.Asset {
		return y, x
	}
	return x, y
}

// IsCanonical reports whether the pair is strictly ordered.
func (p Pair) IsCanonical() bool {
	return p.Low < p.High
}

// Contains reports whether id is one side of the pair.
func (p Pair) Contains(id AssetID) bool {
	return p.Low == id || p.High == id
}

// Other returns the side of the pair opposite to id. id must be in the pair.
func (p Pair) Other(id AssetID) AssetID {
	if id == p.Low {
		return p.High
	}
	return p.Low
}

func (p Pair) String() string {
	return fmt.Sprintf("%d/%d", p.Low, p.High)
}

// Pool describes a liquidity pool for one canonical pair. Reserves are not
// stored here: they are the pool account's balances on the ledger, and the
// share supply is the ledger's total issuance of ShareAsset.
type Pool struct {
	ShareAsset AssetID `json:"share_asset"`
	Pair       Pair    `json:"pair"`
}

// Account returns the ledger account holding the pool's reserves.
func (p Pool) Account() sdk.AccAddress {
	return DeriveAccount(p.ShareAsset)
}

// Marshal encodes the pool record as share|low|high.
func (p Pool) Marshal() []byte {
	bz := make([]byte, 0, 3*AssetIDLength)
	bz = append(bz, AssetIDToBytes(p.ShareAsset)...)
	bz = append(bz, AssetIDToBytes(p.Pair.Low)...)
	return append(bz, AssetIDToBytes(p.Pair.High)...)
}

// UnmarshalPool decodes a record written by Pool.Marshal.
func UnmarshalPool(bz []byte) (Pool, error) {
	if len(bz) != 3*AssetIDLength {
		return Pool{}, fmt.Errorf("pool record must be %d bytes, got %d", 3*AssetIDLength, len(bz))
	}
	return Pool{
		ShareAsset: AssetID(binary.BigEndian.Uint32(bz[0:4])),
		Pair: Pair{
			Low:  AssetID(binary.BigEndian.Uint32(bz[4:8])),
			High: AssetID(binary.BigEndian.Uint32(bz[8:12])),
		},
	}, nil
}

// Validate checks the pool record is internally consistent.
func (p Pool) Validate() error {
	if !p.Pair.IsCanonical() {
		return fmt.Errorf("pool %d: pair %s is not canonical", p.ShareAsset, p.Pair)
	}
	if p.Pair.Contains(p.ShareAsset) {
		return fmt.Errorf("pool %d: share asset collides with pair %s", p.ShareAsset, p.Pair)
	}
	return nil
}

// DeriveAccount returns the pool account for a share asset id. It depends on
// nothing but the id, so a pool keeps its account across restarts.
func DeriveAccount(shareAsset AssetID) sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, []byte("pool"), AssetIDToBytes(shareAsset)))
}
