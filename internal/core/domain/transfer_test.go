package domain_test

import (
	"testing"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/kwallet-network/kwallet/pkg/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	senderAddress   = "1DFF1akeStY8SfomzFsSYsZPesQcbnF1vR"
	receiverAddress = "15n9ZbL3xmLBCUFtVQUzXKox5WhFnyAba3"
)

func TestParseToken(t *testing.T) {
	for str, expected := range map[string]domain.Token{
		"KOIN": domain.TokenKOIN, "koin": domain.TokenKOIN, " vhp ": domain.TokenVHP,
	} {
		token, err := domain.ParseToken(str)
		require.NoError(t, err)
		assert.Equal(t, expected, token)
	}
	_, err := domain.ParseToken("BTC")
	assert.Equal(t, domain.ErrUnknownToken, err)
	assert.Equal(t, "VHP", domain.TokenVHP.String())
}

func TestParseFeeMode(t *testing.T) {
	for str, expected := range map[string]domain.FeeMode{
		"self": domain.FeeModeSelfPay, "SPONSORED": domain.FeeModeSponsored,
		"": domain.FeeModeAuto, "auto": domain.FeeModeAuto,
	} {
		mode, err := domain.ParseFeeMode(str)
		require.NoError(t, err)
		assert.Equal(t, expected, mode)
	}
	_, err := domain.ParseFeeMode("free")
	assert.Equal(t, domain.ErrUnknownFeeMode, err)
}

func TestTransferIntentValidate(t *testing.T) {
	valid := domain.TransferIntent{
		Token:   domain.TokenKOIN,
		From:    senderAddress,
		To:      receiverAddress,
		Amount:  "1.5",
		FeeMode: domain.FeeModeSelfPay,
	}
	amount, err := valid.Validate()
	require.NoError(t, err)
	assert.Equal(t, uint64(150000000), amount)

	tests := []struct {
		name   string
		mutate func(i *domain.TransferIntent)
		err    error
	}{
		{"unknown token", func(i *domain.TransferIntent) { i.Token = 5 }, domain.ErrUnknownToken},
		{"unknown fee mode", func(i *domain.TransferIntent) { i.FeeMode = 9 }, domain.ErrUnknownFeeMode},
		{"invalid sender", func(i *domain.TransferIntent) { i.From = "abc" }, domain.ErrInvalidSender},
		{"invalid recipient", func(i *domain.TransferIntent) { i.To = "0OIl0OIl0OIl0OIl0OIl0OIl0OIl" }, domain.ErrInvalidRecipient},
		{"zero amount", func(i *domain.TransferIntent) { i.Amount = "0" }, domain.ErrZeroAmount},
		{"negative amount", func(i *domain.TransferIntent) { i.Amount = "-1" }, mathutil.ErrInvalidAmount},
		{"too precise", func(i *domain.TransferIntent) { i.Amount = "0.000000001" }, mathutil.ErrTooManyDecimals},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := valid
			tt.mutate(&intent)
			_, err := intent.Validate()
			assert.Equal(t, tt.err, err)
		})
	}
}

func TestErrors(t *testing.T) {
	manaErr := &domain.InsufficientManaError{
		Amount: 1593000000, Available: 200000000, WaitTime: 52 * 3600 * 1e9, CanRegenerate: true,
	}
	assert.Contains(t, manaErr.Error(), "15.93000000")
	assert.Contains(t, manaErr.Error(), "2.00000000")
	assert.Contains(t, manaErr.Error(), "2d 4h")

	rejection := &domain.OnChainRejectionError{TxID: "0x1220ab", Logs: []string{"balance too low"}}
	assert.Equal(t, "transaction 0x1220ab reverted: balance too low", rejection.Error())
}
