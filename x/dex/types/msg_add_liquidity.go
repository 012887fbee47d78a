package types

import (
	"time"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgAddLiquidity deposits a pair of assets into the pool for that pair,
// creating the pool on first deposit.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	Amount0  math.Int `json:"amount_0"`
	Asset0   AssetID  `json:"asset_0"`
	Amount1  math.Int `json:"amount_1"`
	Asset1   AssetID  `json:"asset_1"`
	// Deadline is a unix timestamp in seconds; the block time must be before it.
	Deadline int64 `json:"deadline"`
}

// MsgAddLiquidityResponse reports the pool and the shares minted.
type MsgAddLiquidityResponse struct {
	ShareAsset AssetID  `json:"share_asset"`
	Shares     math.Int `json:"shares"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, amount0 math.Int, asset0 AssetID, amount1 math.Int, asset1 AssetID, deadline time.Time) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		Amount0:  amount0,
		Asset0:   asset0,
		Amount1:  amount1,
		Asset1:   asset1,
		Deadline: deadline.Unix(),
	}
}

// Type returns the message type
func (msg MsgAddLiquidity) Type() string {
	return "add_liquidity"
}

// GetSigners returns the provider
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs stateless checks
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.Asset0 == msg.Asset1 {
		return sdkerrors.Wrapf(ErrIdenticalAssets, "asset %d", msg.Asset0)
	}
	if msg.Amount0.IsNil() || !msg.Amount0.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount 0 must be positive")
	}
	if msg.Amount1.IsNil() || !msg.Amount1.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount 1 must be positive")
	}
	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrDeadlinePassed, "deadline must be set")
	}
	return nil
}
