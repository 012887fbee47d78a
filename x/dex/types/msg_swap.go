package types

import (
	"time"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSwap sells Amount of Asset for Other through the pool for that pair.
type MsgSwap struct {
	Buyer    string   `json:"buyer"`
	Amount   math.Int `json:"amount"`
	Asset    AssetID  `json:"asset"`
	Other    AssetID  `json:"other"`
	Deadline int64    `json:"deadline"`
}

// MsgSwapResponse reports the amount received.
type MsgSwapResponse struct {
	Output AssetAmount `json:"output"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(buyer string, amount math.Int, asset, other AssetID, deadline time.Time) *MsgSwap {
	return &MsgSwap{
		Buyer:    buyer,
		Amount:   amount,
		Asset:    asset,
		Other:    other,
		Deadline: deadline.Unix(),
	}
}

// Type returns the message type
func (msg MsgSwap) Type() string {
	return "swap"
}

// GetSigners returns the buyer
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{buyer}
}

// ValidateBasic performs stateless checks
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid buyer address: %s", err)
	}
	if msg.Asset == msg.Other {
		return sdkerrors.Wrapf(ErrIdenticalAssets, "cannot swap asset %d for itself", msg.Asset)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "swap amount must be positive")
	}
	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrDeadlinePassed, "deadline must be set")
	}
	return nil
}
