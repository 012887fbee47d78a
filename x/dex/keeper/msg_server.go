package keeper

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/dex/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the dex MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// AddLiquidity handles a deposit, creating the pool on first use
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}

	shares, err := ms.Keeper.AddLiquidity(goCtx, msg.Amount0, msg.Asset0, msg.Amount1, msg.Asset1, provider, time.Unix(msg.Deadline, 0))
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	pool, _, err := ms.Keeper.GetPool(goCtx, msg.Asset0, msg.Asset1)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		ShareAsset: pool.ShareAsset,
		Shares:     shares,
	}, nil
}

// RemoveLiquidity handles a withdrawal
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}

	amount0, amount1, err := ms.Keeper.RemoveLiquidity(goCtx, msg.Shares, msg.Asset0, msg.Asset1, provider, time.Unix(msg.Deadline, 0))
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		Amount0: amount0,
		Amount1: amount1,
	}, nil
}

// Swap handles a token swap
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid buyer address: %w", err)
	}

	output, err := ms.Keeper.Swap(goCtx, msg.Amount, msg.Asset, msg.Other, buyer, time.Unix(msg.Deadline, 0))
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	return &types.MsgSwapResponse{Output: output}, nil
}
