package domain

import (
	"time"

	"github.com/kwallet-network/kwallet/pkg/mathutil"
)

type maxState int

const (
	maxStateNone maxState = iota
	maxStateCapped
	maxStateFull
)

// MaxAmountCycleOpts is the struct given to NewMaxAmountCycle method
type MaxAmountCycleOpts struct {
	Token Token
	// Balance is the balance of the token being sent.
	Balance      uint64
	Mana         Mana
	EstimatedFee uint64
	// Sponsored is true when the fee is not paid with the sender's mana.
	Sponsored   bool
	RegenWindow time.Duration
}

// MaxAmount is the amount proposed by one press of the MAX button.
type MaxAmount struct {
	Amount uint64
	// Warning is set when Amount exceeds the current mana, in which case the
	// transfer can't be sent before WaitTime has passed.
	Warning  bool
	WaitTime time.Duration
}

// MaxAmountCycle alternates between the amount that can be sent right now
// and the whole balance. Any manual edit of the amount restarts the cycle.
type MaxAmountCycle struct {
	opts  MaxAmountCycleOpts
	state maxState
}

// NewMaxAmountCycle ...
func NewMaxAmountCycle(opts MaxAmountCycleOpts) *MaxAmountCycle {
	if opts.RegenWindow <= 0 {
		opts.RegenWindow = DefaultManaRegenWindow
	}
	return &MaxAmountCycle{opts: opts}
}

// Press advances the cycle and returns the amount to show.
func (c *MaxAmountCycle) Press() MaxAmount {
	if c.state == maxStateCapped {
		c.state = maxStateFull
		return c.full()
	}
	c.state = maxStateCapped
	return c.capped()
}

// Edit resets the cycle, the next press proposes the capped amount.
func (c *MaxAmountCycle) Edit() {
	c.state = maxStateNone
}

// SetSponsored updates the fee mode the capped amount is computed for.
func (c *MaxAmountCycle) SetSponsored(sponsored bool) {
	c.opts.Sponsored = sponsored
}

func (c *MaxAmountCycle) capped() MaxAmount {
	if c.opts.Token != TokenKOIN {
		return MaxAmount{Amount: c.opts.Balance}
	}

	amount := mathutil.Min(c.opts.Mana.Current, c.opts.Balance)
	if !c.opts.Sponsored {
		amount, _ = mathutil.LessFee(amount, c.opts.EstimatedFee)
	}
	return MaxAmount{Amount: amount}
}

func (c *MaxAmountCycle) full() MaxAmount {
	amount := MaxAmount{Amount: c.opts.Balance}
	if c.opts.Token != TokenKOIN || c.opts.Balance <= c.opts.Mana.Current {
		return amount
	}

	amount.Warning = true
	amount.WaitTime, _ = c.opts.Mana.TimeToReach(c.opts.Balance, c.opts.RegenWindow)
	return amount
}
