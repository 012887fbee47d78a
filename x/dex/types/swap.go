package types

import (
	"cosmossdk.io/math"
)

// CalculateOutput prices amountIn against a pair of reserves with the
// constant-product formula, taking the fee from the input side:
//
//	out = in*feeNum*reserveOut / (reserveIn*feeDen + in*feeNum)
//
// The result is truncated. Either reserve being zero yields zero rather than an
// error. Overflow of any intermediate product is reported as ErrOverflow.
func CalculateOutput(amountIn, reserveIn, reserveOut, feeNum, feeDen math.Int) (math.Int, error) {
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.ZeroInt(), nil
	}

	inputWithFee, err := amountIn.SafeMul(feeNum)
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("input with fee: %s * %s", amountIn, feeNum)
	}
	numerator, err := inputWithFee.SafeMul(reserveOut)
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("numerator: %s * %s", inputWithFee, reserveOut)
	}
	scaledReserve, err := reserveIn.SafeMul(feeDen)
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("scaled reserve: %s * %s", reserveIn, feeDen)
	}
	denominator, err := scaledReserve.SafeAdd(inputWithFee)
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("denominator: %s + %s", scaledReserve, inputWithFee)
	}
	if denominator.IsZero() {
		return math.ZeroInt(), nil
	}

	out, err := numerator.SafeQuo(denominator)
	if err != nil {
		return math.ZeroInt(), ErrOverflow.Wrapf("output: %s / %s", numerator, denominator)
	}
	return out, nil
}
