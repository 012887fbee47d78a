package types

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetsKeeper is the fungible asset ledger the DEX settles against.
type AssetsKeeper interface {
	Exists(ctx context.Context, id AssetID) bool
	Create(ctx context.Context, id AssetID, owner sdk.AccAddress, isSufficient bool, minBalance math.Int) error
	SetMetadata(ctx context.Context, id AssetID, name, symbol string, decimals uint8) error
	Symbol(ctx context.Context, id AssetID) string

	Balance(ctx context.Context, id AssetID, who sdk.AccAddress) math.Int
	TotalIssuance(ctx context.Context, id AssetID) math.Int

	Mint(ctx context.Context, id AssetID, to sdk.AccAddress, amount math.Int) error
	BurnFrom(ctx context.Context, id AssetID, from sdk.AccAddress, amount math.Int) error
	Transfer(ctx context.Context, id AssetID, from, to sdk.AccAddress, amount math.Int) error
}

// NativeCurrencyKeeper holds balances of the chain's native currency. The DEX
// routes the configured native asset id here instead of to AssetsKeeper.
type NativeCurrencyKeeper interface {
	GetNativeBalance(ctx context.Context, who sdk.AccAddress) math.Int
	SendNative(ctx context.Context, from, to sdk.AccAddress, amount math.Int) error
	NativeSymbol(ctx context.Context) string
}

// Pricer quotes asset conversions.
type Pricer interface {
	// Price returns how much of other the given amount of asset is worth.
	Price(ctx context.Context, amount math.Int, asset, other AssetID) (math.Int, error)
}

// Swapper converts one asset into another on behalf of a buyer.
type Swapper interface {
	Swap(ctx context.Context, amount math.Int, asset, other AssetID, buyer sdk.AccAddress, deadline time.Time) (AssetAmount, error)
}

// Exchange is the capability set other modules depend on when they need to
// convert assets.
type Exchange interface {
	Pricer
	Swapper
}
