package domain

import (
	"strings"

	"github.com/kwallet-network/kwallet/pkg/mathutil"
	"github.com/kwallet-network/kwallet/pkg/wallet"
)

// Token identifies one of the two transferable tokens.
type Token int

const (
	// TokenKOIN is the native token, its balance is the mana capacity.
	TokenKOIN Token = iota
	// TokenVHP is the secondary token.
	TokenVHP
)

func (t Token) String() string {
	switch t {
	case TokenKOIN:
		return "KOIN"
	case TokenVHP:
		return "VHP"
	default:
		return "UNKNOWN"
	}
}

// ParseToken ...
func ParseToken(str string) (Token, error) {
	switch strings.ToUpper(strings.TrimSpace(str)) {
	case "KOIN":
		return TokenKOIN, nil
	case "VHP":
		return TokenVHP, nil
	default:
		return 0, ErrUnknownToken
	}
}

// FeeMode tells who pays the resources of a transfer.
type FeeMode int

const (
	// FeeModeSelfPay makes the sender pay with its own mana.
	FeeModeSelfPay FeeMode = iota
	// FeeModeSponsored makes the sponsor contract pay.
	FeeModeSponsored
	// FeeModeAuto picks one of the above with ShouldSponsor.
	FeeModeAuto
)

func (m FeeMode) String() string {
	switch m {
	case FeeModeSelfPay:
		return "self"
	case FeeModeSponsored:
		return "sponsored"
	case FeeModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseFeeMode ...
func ParseFeeMode(str string) (FeeMode, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "self", "self_pay", "selfpay":
		return FeeModeSelfPay, nil
	case "sponsored", "sponsor":
		return FeeModeSponsored, nil
	case "", "auto":
		return FeeModeAuto, nil
	default:
		return 0, ErrUnknownFeeMode
	}
}

// TransferIntent is what the user asks for. It's never persisted.
type TransferIntent struct {
	Token   Token
	From    string
	To      string
	Amount  string
	FeeMode FeeMode
}

// Validate checks the intent and returns the amount in base units.
func (t TransferIntent) Validate() (uint64, error) {
	if t.Token != TokenKOIN && t.Token != TokenVHP {
		return 0, ErrUnknownToken
	}
	if t.FeeMode < FeeModeSelfPay || t.FeeMode > FeeModeAuto {
		return 0, ErrUnknownFeeMode
	}
	if !wallet.IsValidAddress(t.From) {
		return 0, ErrInvalidSender
	}
	if !wallet.IsValidAddress(t.To) {
		return 0, ErrInvalidRecipient
	}
	amount, err := mathutil.ParseUnits(t.Amount)
	if err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, ErrZeroAmount
	}
	return amount, nil
}
