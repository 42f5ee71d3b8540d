package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		address string
		valid   bool
	}{
		{"1DFF1akeStY8SfomzFsSYsZPesQcbnF1vR", true},
		{"15n9ZbL3xmLBCUFtVQUzXKox5WhFnyAba3", true},
		{"19GYjDBVXU7keLbYvMLazsGQn3GTWHjHkK", true},
		{"", false},
		{"1DFF1ake", false},
		{"1DFF1akeStY8SfomzFsSYsZPesQcbnF1vR1DFF1ake", false},
		{"0DFF1akeStY8SfomzFsSYsZPesQcbnF1vR", false},
		{"1DFF1akeStY8SfomzFsSYsZPesQcbnF1vO", false},
		{"1DFF1akeStY8SfomzFsSYsZPesQcbnF1vl", false},
		{"1DFF1akeStY8SfomzFsSYsZPesQcbnF1v ", false},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidAddress(tt.address))
		})
	}
}

func TestDecodeAddress(t *testing.T) {
	address := "1DFF1akeStY8SfomzFsSYsZPesQcbnF1vR"

	raw, err := DecodeAddress(address)
	require.NoError(t, err)
	assert.Len(t, raw, 25)
	assert.Equal(t, byte(0x00), raw[0])
	assert.Equal(t, address, EncodeAddress(raw))

	// syntactically fine, wrong checksum
	_, err = DecodeAddress("1DFF1akeStY8SfomzFsSYsZPesQcbnF1vS")
	assert.Equal(t, ErrInvalidAddress, err)

	_, err = DecodeAddress("not an address")
	assert.Equal(t, ErrInvalidAddress, err)
}
