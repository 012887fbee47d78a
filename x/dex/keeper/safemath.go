package keeper

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// mulDiv computes a * b / c truncated toward zero. Overflow of the product and
// division by zero are reported as ErrOverflow.
func mulDiv(a, b, c math.Int) (math.Int, error) {
	product, err := a.SafeMul(b)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("%s * %s", a, b)
	}
	result, err := product.SafeQuo(c)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("%s / %s: %v", product, c, err)
	}
	return result, nil
}

// saturatingSub returns a - b, or zero when b exceeds a.
func saturatingSub(a, b math.Int) math.Int {
	if b.GTE(a) {
		return math.ZeroInt()
	}
	return a.Sub(b)
}
