package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params defines the DEX module parameters.
type Params struct {
	// SwapFeeNumerator / SwapFeeDenominator is the share of every swap input that
	// is priced; the rest stays in the pool as the liquidity providers' fee.
	SwapFeeNumerator   math.Int `json:"swap_fee_numerator"`
	SwapFeeDenominator math.Int `json:"swap_fee_denominator"`

	// ShareMinBalance is the minimum balance of a freshly created pool-share asset.
	ShareMinBalance math.Int `json:"share_min_balance"`
	// ShareDecimals is the decimal precision recorded for pool-share assets.
	ShareDecimals uint32 `json:"share_decimals"`

	// NativeAssetID is the asset id that aliases the native currency.
	NativeAssetID AssetID `json:"native_asset_id"`
}

// DefaultParams returns default parameters for the dex module
func DefaultParams() Params {
	return Params{
		SwapFeeNumerator:   math.NewInt(997), // 0.3% fee
		SwapFeeDenominator: math.NewInt(1000),
		ShareMinBalance:    math.OneInt(),
		ShareDecimals:      0,
		NativeAssetID:      0,
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.SwapFeeDenominator.IsNil() || !p.SwapFeeDenominator.IsPositive() {
		return ErrInvalidParams.Wrap("swap fee denominator must be positive")
	}
	if p.SwapFeeNumerator.IsNil() || p.SwapFeeNumerator.IsNegative() {
		return ErrInvalidParams.Wrap("swap fee numerator must be non-negative")
	}
	if p.SwapFeeNumerator.GT(p.SwapFeeDenominator) {
		return ErrInvalidParams.Wrapf("swap fee numerator %s exceeds denominator %s",
			p.SwapFeeNumerator, p.SwapFeeDenominator)
	}
	if p.ShareMinBalance.IsNil() || !p.ShareMinBalance.IsPositive() {
		return ErrInvalidParams.Wrap("share min balance must be positive")
	}
	if p.ShareDecimals > 255 {
		return ErrInvalidParams.Wrapf("share decimals %d out of range", p.ShareDecimals)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("fee=%s/%s share_min_balance=%s share_decimals=%d native=%d",
		p.SwapFeeNumerator, p.SwapFeeDenominator, p.ShareMinBalance, p.ShareDecimals, p.NativeAssetID)
}
