package domain

import (
	"github.com/kwallet-network/kwallet/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// vhpFeeReserve is how many estimated fees of mana a VHP sender should hold
// to pay on its own.
var vhpFeeReserve = decimal.NewFromInt(3)

// SponsorshipOpts is the struct given to ShouldSponsor method
type SponsorshipOpts struct {
	Token        Token
	Amount       uint64
	CurrentMana  uint64
	EstimatedFee uint64
	// SponsorMana and Threshold gate the proposal: the sponsor must hold
	// strictly more mana than Threshold.
	SponsorMana uint64
	Threshold   uint64
}

// ShouldSponsor tells whether fee sponsorship should be proposed for a
// transfer. For KOIN that's when the amount plus 1.5 fees exceeds the
// current mana, for VHP when mana is below 3 fees.
func ShouldSponsor(opts SponsorshipOpts) bool {
	if opts.SponsorMana <= opts.Threshold {
		return false
	}

	switch opts.Token {
	case TokenKOIN:
		reserved := mathutil.PlusMargin(opts.EstimatedFee, mathutil.FeeSafetyMargin)
		// summed as decimals, the amount may be close to the uint64 range
		needed := mathutil.Add(opts.Amount, reserved)
		return needed.GreaterThan(mathutil.Add(opts.CurrentMana, 0))
	case TokenVHP:
		return opts.CurrentMana < mathutil.MulCeil(opts.EstimatedFee, vhpFeeReserve)
	default:
		return false
	}
}
