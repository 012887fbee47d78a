package types

// Event types for the DEX module
const (
	EventTypePoolCreated     = "pool_created"
	EventTypeAddLiquidity    = "add_liquidity"
	EventTypeRemoveLiquidity = "remove_liquidity"
	EventTypeSwap            = "swap"

	AttributeKeyShareAsset  = "share_asset"
	AttributeKeyPoolAccount = "pool_account"
	AttributeKeyProvider    = "provider"
	AttributeKeyBuyer       = "buyer"
	AttributeKeyAsset0      = "asset_0"
	AttributeKeyAsset1      = "asset_1"
	AttributeKeyAmount0     = "amount_0"
	AttributeKeyAmount1     = "amount_1"
	AttributeKeyShares      = "shares"
	AttributeKeyAssetIn     = "asset_in"
	AttributeKeyAssetOut    = "asset_out"
	AttributeKeyAmountIn    = "amount_in"
	AttributeKeyAmountOut   = "amount_out"
	AttributeKeySymbol      = "symbol"
)
