package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// GetParams returns the module parameters, or the defaults if none are stored.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("GetParams: unmarshal: %w", err)
	}
	return params, nil
}

// SetParams validates and stores the module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}
	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}
