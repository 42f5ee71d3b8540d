package mathutil

import (
	"github.com/shopspring/decimal"
)

var (
	// FeeSafetyMargin is applied to estimated fees when deciding how much of
	// the balance can be spent without running out of mana.
	FeeSafetyMargin = decimal.NewFromFloat(1.5)
	// RcLimitMargin is applied on top of the rc used by a dry-run.
	RcLimitMargin = decimal.NewFromFloat(1.1)
	// ProbeRcShare is the share of the probe account's rc offered as limit.
	ProbeRcShare = decimal.NewFromFloat(0.9)
)

// PlusMargin returns ceil(amount * margin).
func PlusMargin(amount uint64, margin decimal.Decimal) uint64 {
	return MulCeil(amount, margin)
}

// LessFee returns amount minus the fee scaled by FeeSafetyMargin, floored
// at zero. The subtracted fee is returned as well.
func LessFee(amount, fee uint64) (withoutFee, calculatedFee uint64) {
	calculatedFee = MulCeil(fee, FeeSafetyMargin)
	return SubFloor(amount, calculatedFee), calculatedFee
}
