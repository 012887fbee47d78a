package types

import (
	"time"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgRemoveLiquidity burns pool shares in exchange for the underlying reserves.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
	Asset0   AssetID  `json:"asset_0"`
	Asset1   AssetID  `json:"asset_1"`
	Deadline int64    `json:"deadline"`
}

// MsgRemoveLiquidityResponse reports what was paid out, in canonical order.
type MsgRemoveLiquidityResponse struct {
	Amount0 AssetAmount `json:"amount_0"`
	Amount1 AssetAmount `json:"amount_1"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, shares math.Int, asset0, asset1 AssetID, deadline time.Time) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		Shares:   shares,
		Asset0:   asset0,
		Asset1:   asset1,
		Deadline: deadline.Unix(),
	}
}

// Type returns the message type
func (msg MsgRemoveLiquidity) Type() string {
	return "remove_liquidity"
}

// GetSigners returns the provider
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs stateless checks
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.Asset0 == msg.Asset1 {
		return sdkerrors.Wrapf(ErrIdenticalAssets, "asset %d", msg.Asset0)
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "shares must be positive")
	}
	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrDeadlinePassed, "deadline must be set")
	}
	return nil
}
