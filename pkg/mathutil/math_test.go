package mathutil_test

import (
	"math"
	"testing"

	"github.com/kwallet-network/kwallet/pkg/mathutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnits(t *testing.T) {
	tests := []struct {
		amount   string
		expected uint64
	}{
		{"0", 0},
		{"1", 100000000},
		{"12.5", 1250000000},
		{"0.00000001", 1},
		{" 15.93 ", 1593000000},
		{"1.10000000000", 110000000},
		{"184467440737.09551615", math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			units, err := mathutil.ParseUnits(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, units)
		})
	}
}

func TestFailingParseUnits(t *testing.T) {
	tests := []struct {
		amount string
		err    error
	}{
		{"", mathutil.ErrInvalidAmount},
		{"abc", mathutil.ErrInvalidAmount},
		{"-1", mathutil.ErrInvalidAmount},
		{"0.000000001", mathutil.ErrTooManyDecimals},
		{"184467440737.09551616", mathutil.ErrAmountOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			_, err := mathutil.ParseUnits(tt.amount)
			assert.Equal(t, tt.err, err)
		})
	}
}

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		units    uint64
		expected string
	}{
		{0, "0.00000000"},
		{1, "0.00000001"},
		{100000000, "1.00000000"},
		{1593000000, "15.93000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, mathutil.FormatUnits(tt.units))
	}
}

func TestMargins(t *testing.T) {
	assert.Equal(t, uint64(110), mathutil.PlusMargin(100, mathutil.RcLimitMargin))
	assert.Equal(t, uint64(112), mathutil.PlusMargin(101, mathutil.RcLimitMargin))
	assert.Equal(t, uint64(90), mathutil.MulFloor(100, mathutil.ProbeRcShare))
	assert.Equal(t, uint64(9), mathutil.MulFloor(11, mathutil.ProbeRcShare))
	assert.Equal(t, uint64(3), mathutil.MulCeil(2, decimal.NewFromFloat(1.2)))

	withoutFee, fee := mathutil.LessFee(1000, 100)
	assert.Equal(t, uint64(850), withoutFee)
	assert.Equal(t, uint64(150), fee)

	withoutFee, _ = mathutil.LessFee(100, 100)
	assert.Zero(t, withoutFee)

	assert.Equal(t, uint64(3), mathutil.Min(3, 4))
	assert.Zero(t, mathutil.SubFloor(3, 4))
}
